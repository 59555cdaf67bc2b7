package report

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"yieldScope/internal/aggregate"
	"yieldScope/internal/market"
	"yieldScope/internal/model"
)

// Generator builds markdown reports from loaded series.
type Generator struct {
	registry *market.Registry
	logger   *zap.Logger
	now      func() time.Time
}

// NewGenerator creates a generator. The registry is only needed for APY reports.
func NewGenerator(registry *market.Registry, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		registry: registry,
		logger:   logger,
		now:      time.Now,
	}
}

// WithClock sets the clock used for synthetic date ranges.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// EpochReport is a rendered epoch report with its computed summaries.
type EpochReport struct {
	Summaries []aggregate.EpochSummary
	Markdown  string
}

// Epochs renders one detail table per pool followed by the averaged summary table.
// Nothing is returned if any pool fails to aggregate.
func (g *Generator) Epochs(pools []model.EpochSeries) (*EpochReport, error) {
	if len(pools) == 0 {
		return nil, fmt.Errorf("%w: no pools in epoch data", model.ErrInvalidInput)
	}

	now := g.now()
	summaries := make([]aggregate.EpochSummary, 0, len(pools))
	var sb strings.Builder

	for i, series := range pools {
		summary, err := aggregate.Epochs(series, now)
		if err != nil {
			return nil, fmt.Errorf("pool %d: %w", i, err)
		}
		summaries = append(summaries, summary)

		sb.WriteString(fmt.Sprintf("\n### Pool: %s\n\n", summary.PoolSymbol))
		sb.WriteString(RenderEpochDetail(series))

		g.logger.Debug("pool aggregated",
			zap.String("pool", summary.PoolSymbol),
			zap.Int("epochs", summary.TotalEpochs),
		)
	}

	sb.WriteString("\n### Averaged Data for All Pools\n\n")
	sb.WriteString(RenderEpochSummary(summaries))

	return &EpochReport{Summaries: summaries, Markdown: sb.String()}, nil
}

// APYReport is a rendered lending market report with its computed summaries.
type APYReport struct {
	Summaries []aggregate.MarketSummary
	Matrix    *Matrix
	Markdown  string
}

// APY renders one table per market followed by the asset relationship matrix.
func (g *Generator) APY(histories []model.MarketHistory) (*APYReport, error) {
	matrix := NewMatrix(market.Assets)
	summaries := make([]aggregate.MarketSummary, 0, len(histories))
	var sb strings.Builder

	for _, history := range histories {
		summary, err := aggregate.Market(history)
		if err != nil {
			return nil, err
		}

		label, ok := g.registry.Label(history.UniqueKey)
		if !ok {
			g.logger.Warn("unmapped market", zap.String("unique_key", history.UniqueKey))
		}
		summary.Label = label
		summaries = append(summaries, summary)

		sb.WriteString(RenderMarketDetail(summary, history))

		if summary.AvgAPY != nil {
			collateral, loan := market.SplitLabel(label)
			matrix.Set(collateral, loan, *summary.AvgAPY)
		}
	}

	sb.WriteString("\n### Assets Relationship Matrix - 2 month average APY\n\n")
	sb.WriteString(RenderMatrix(matrix))

	return &APYReport{Summaries: summaries, Matrix: matrix, Markdown: sb.String()}, nil
}
