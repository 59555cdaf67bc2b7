package aggregate

import (
	"fmt"
	"time"

	"yieldScope/internal/model"
)

// EpochSummary holds the averaged statistics of one pool.
type EpochSummary struct {
	PoolSymbol         string    `json:"pool_symbol"`
	TotalEpochs        int       `json:"total_epochs"`
	DateRange          DateRange `json:"date_range"`
	AvgFees            *float64  `json:"avg_fees"`
	AvgFeeAPR          *float64  `json:"avg_fee_apr"`
	AvgBribeAPR        *float64  `json:"avg_bribe_apr"`
	MostCommonBribe    string    `json:"most_common_bribe_token"`
	AvgTVL             *float64  `json:"avg_tvl"`
	AvgSwaps           *float64  `json:"avg_swaps"`
	AvgSwapFees        *float64  `json:"avg_swap_fees"`
	AvgEmission        *float64  `json:"avg_emission"`
	AvgEmissionValue   *float64  `json:"avg_emission_value"`
	AvgYieldAPR        *float64  `json:"avg_yield_apr"`
	AvgVolume          *float64  `json:"avg_volume"`
	FeeAPRVolatility   float64   `json:"fee_apr_volatility"`
	BribeAPRVolatility float64   `json:"bribe_apr_volatility"`
	YieldAPRVolatility float64   `json:"yield_apr_volatility"`
}

// Epochs aggregates a pool series. The series must be non-empty.
func Epochs(series model.EpochSeries, now time.Time) (EpochSummary, error) {
	if len(series) == 0 {
		return EpochSummary{}, fmt.Errorf("%w: empty epoch series", model.ErrInvalidInput)
	}

	var (
		fees          = NewAccumulator(PerPeriod)
		feeAPR        = NewAccumulator(PerPresent)
		bribeAPR      = NewAccumulator(PerPresent)
		tvl           = NewAccumulator(PerPeriod)
		swaps         = NewAccumulator(PerPeriod)
		swapFees      = NewAccumulator(PerPeriod)
		emission      = NewAccumulator(PerPeriod)
		emissionValue = NewAccumulator(PerPeriod)
		yieldAPR      = NewAccumulator(PerPresent)
		volume        = NewAccumulator(PerPeriod)
		bribes        = NewTokenTally()
	)

	for _, epoch := range series {
		fees.Add(epoch.Fees)
		feeAPR.Add(epoch.FeesAPR)
		bribeAPR.Add(epoch.BribesAPR)
		tvl.Add(epoch.TVL)
		swaps.Add(epoch.SwapCount)
		swapFees.Add(epoch.SwapFees)
		emission.Add(epoch.Emission)
		emissionValue.Add(epoch.EmissionValue)
		yieldAPR.Add(epoch.YieldAPR)
		volume.Add(epoch.Volume)
		if epoch.BribeTokensList != nil {
			bribes.AddList(*epoch.BribeTokensList)
		}
	}

	mostCommon, _ := bribes.MostCommon()

	return EpochSummary{
		PoolSymbol:         series.Symbol(),
		TotalEpochs:        len(series),
		DateRange:          epochRange(series, now),
		AvgFees:            fees.Mean(),
		AvgFeeAPR:          feeAPR.Mean(),
		AvgBribeAPR:        bribeAPR.Mean(),
		MostCommonBribe:    mostCommon,
		AvgTVL:             tvl.Mean(),
		AvgSwaps:           swaps.Mean(),
		AvgSwapFees:        swapFees.Mean(),
		AvgEmission:        emission.Mean(),
		AvgEmissionValue:   emissionValue.Mean(),
		AvgYieldAPR:        yieldAPR.Mean(),
		AvgVolume:          volume.Mean(),
		FeeAPRVolatility:   feeAPR.Volatility(),
		BribeAPRVolatility: bribeAPR.Volatility(),
		YieldAPRVolatility: yieldAPR.Volatility(),
	}, nil
}

// epochRange uses the recorded epoch timestamps when both ends carry one.
func epochRange(series model.EpochSeries, now time.Time) DateRange {
	first, last := series[0].Timestamp, series[len(series)-1].Timestamp
	if first == nil || last == nil {
		return SyntheticRange(len(series), now)
	}
	return DateRange{
		Start: time.Unix(*first, 0).UTC(),
		End:   time.Unix(*last, 0).UTC().Add(EpochLength),
	}
}
