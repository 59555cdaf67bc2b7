package report

import (
	"fmt"
	"strings"
	"time"

	"yieldScope/internal/aggregate"
	"yieldScope/internal/market"
	"yieldScope/internal/model"
	"yieldScope/internal/table"
)

var apyDetailColumns = []table.Column[model.APYPoint]{
	{Header: "Date", Width: 10, Format: func(p model.APYPoint) (string, bool) {
		if p.X == nil {
			return "", false
		}
		return time.Unix(*p.X, 0).UTC().Format(time.DateOnly), true
	}},
	{Header: "APY (%)", Format: func(p model.APYPoint) (string, bool) { return table.Percent(p.Y) }},
}

// RenderMarketDetail renders the heading, average line and APY table of one market.
func RenderMarketDetail(summary aggregate.MarketSummary, history model.MarketHistory) string {
	var sb strings.Builder

	average, ok := table.Percent(summary.AvgAPY)
	if !ok {
		average = table.NotAvailable
	}
	collateral, loan := market.SplitLabel(summary.Label)
	if loan == "" {
		loan = table.NotAvailable
	}

	sb.WriteString(fmt.Sprintf("\n### Pool: %s\n**Average APY**: %s%%\n\n", summary.Label, average))
	sb.WriteString(fmt.Sprintf("\n**Collateral Token**: %s, **Loan Token**: %s\n\n", collateral, loan))
	table.Write(&sb, apyDetailColumns, history.Points)
	return sb.String()
}
