package report

import (
	"strconv"

	"yieldScope/internal/aggregate"
	"yieldScope/internal/model"
	"yieldScope/internal/table"
)

func epochMetric(get func(model.EpochRecord) *float64, format func(*float64) (string, bool)) func(model.EpochRecord) (string, bool) {
	return func(r model.EpochRecord) (string, bool) {
		return format(get(r))
	}
}

var epochDetailColumns = []table.Column[model.EpochRecord]{
	{Header: "Epoch", Format: func(r model.EpochRecord) (string, bool) { return table.Text(r.Epoch.String()) }},
	{Header: "Fees ($)", Format: epochMetric(func(r model.EpochRecord) *float64 { return r.Fees }, table.Fixed)},
	{Header: "Fee APR (%)", Format: epochMetric(func(r model.EpochRecord) *float64 { return r.FeesAPR }, table.Percent)},
	{Header: "Bribe APR (%)", Format: epochMetric(func(r model.EpochRecord) *float64 { return r.BribesAPR }, table.Percent)},
	{Header: "TVL ($)", Format: epochMetric(func(r model.EpochRecord) *float64 { return r.TVL }, table.Fixed)},
	{Header: "Number of Swaps", Format: epochMetric(func(r model.EpochRecord) *float64 { return r.SwapCount }, table.Fixed)},
	{Header: "Swap Fees ($)", Format: epochMetric(func(r model.EpochRecord) *float64 { return r.SwapFees }, table.Fixed)},
	{Header: "Emission", Format: epochMetric(func(r model.EpochRecord) *float64 { return r.Emission }, table.Fixed)},
	{Header: "Emission Value ($)", Format: epochMetric(func(r model.EpochRecord) *float64 { return r.EmissionValue }, table.Fixed)},
	{Header: "Yield APR (%)", Format: epochMetric(func(r model.EpochRecord) *float64 { return r.YieldAPR }, table.Percent)},
	{Header: "Volume ($)", Format: epochMetric(func(r model.EpochRecord) *float64 { return r.Volume }, table.Fixed)},
}

// RenderEpochDetail renders one row per epoch of a pool.
func RenderEpochDetail(series model.EpochSeries) string {
	return table.Render(epochDetailColumns, []model.EpochRecord(series))
}

type summaryRow = aggregate.EpochSummary

func volatility(v float64) (string, bool) {
	return strconv.FormatFloat(v, 'f', 2, 64), true
}

var epochSummaryColumns = []table.Column[summaryRow]{
	{Header: "Pool Symbol", Format: func(s summaryRow) (string, bool) { return table.Text(s.PoolSymbol) }},
	{Header: "Total Epochs Considered", Format: func(s summaryRow) (string, bool) { return strconv.Itoa(s.TotalEpochs), true }},
	{Header: "Date Range", Format: func(s summaryRow) (string, bool) { return s.DateRange.String(), true }},
	{Header: "Average Fees ($)", Format: func(s summaryRow) (string, bool) { return table.Fixed(s.AvgFees) }},
	{Header: "Average Fee APR (%)", Format: func(s summaryRow) (string, bool) { return table.Percent(s.AvgFeeAPR) }},
	{Header: "Average Bribe APR (%)", Format: func(s summaryRow) (string, bool) { return table.Percent(s.AvgBribeAPR) }},
	{Header: "Most Common Bribe Token", Format: func(s summaryRow) (string, bool) { return table.Text(s.MostCommonBribe) }},
	{Header: "Average TVL ($)", Format: func(s summaryRow) (string, bool) { return table.Fixed(s.AvgTVL) }},
	{Header: "Average Number of Swaps", Format: func(s summaryRow) (string, bool) { return table.Fixed(s.AvgSwaps) }},
	{Header: "Average Swap Fees ($)", Format: func(s summaryRow) (string, bool) { return table.Fixed(s.AvgSwapFees) }},
	{Header: "Average Emission", Format: func(s summaryRow) (string, bool) { return table.Fixed(s.AvgEmission) }},
	{Header: "Average Emission Value ($)", Format: func(s summaryRow) (string, bool) { return table.Fixed(s.AvgEmissionValue) }},
	{Header: "Average Yield APR (%)", Format: func(s summaryRow) (string, bool) { return table.Percent(s.AvgYieldAPR) }},
	{Header: "Average Volume ($)", Format: func(s summaryRow) (string, bool) { return table.Fixed(s.AvgVolume) }},
	{Header: "Fee APR Volatility (%)", Format: func(s summaryRow) (string, bool) { return volatility(s.FeeAPRVolatility) }},
	{Header: "Bribe APR Volatility (%)", Format: func(s summaryRow) (string, bool) { return volatility(s.BribeAPRVolatility) }},
	{Header: "Yield APR Volatility (%)", Format: func(s summaryRow) (string, bool) { return volatility(s.YieldAPRVolatility) }},
}

// RenderEpochSummary renders one row per pool, in the given order.
func RenderEpochSummary(summaries []aggregate.EpochSummary) string {
	return table.Render(epochSummaryColumns, summaries)
}
