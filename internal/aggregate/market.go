package aggregate

import (
	"fmt"

	"yieldScope/internal/model"
)

// MarketSummary holds the averaged APY of one lending market.
type MarketSummary struct {
	UniqueKey  string   `json:"unique_key"`
	Label      string   `json:"label"`
	Periods    int      `json:"periods"`
	Observed   int      `json:"observed"`
	AvgAPY     *float64 `json:"avg_apy"`
	Volatility float64  `json:"apy_volatility"`
}

// Market aggregates the APY history of one market. Every point must carry a timestamp.
func Market(history model.MarketHistory) (MarketSummary, error) {
	apy := NewAccumulator(PerPresent)
	for i, point := range history.Points {
		if point.X == nil {
			return MarketSummary{}, fmt.Errorf("%w: market %s point %d missing timestamp", model.ErrInvalidInput, history.UniqueKey, i)
		}
		apy.Add(point.Y)
	}

	return MarketSummary{
		UniqueKey:  history.UniqueKey,
		Periods:    apy.Periods,
		Observed:   apy.Present,
		AvgAPY:     apy.Mean(),
		Volatility: apy.Volatility(),
	}, nil
}
