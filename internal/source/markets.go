package source

import (
	"fmt"
	"io"
	"os"
	"strings"

	"yieldScope/internal/model"
)

// LoadMarkets reads a lending market export: a JSON array of query responses,
// each carrying one market's weekly borrow APY history.
func LoadMarkets(path string) ([]model.MarketHistory, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer file.Close()

	return DecodeMarkets(file)
}

// DecodeMarkets decodes and validates a lending market export.
func DecodeMarkets(r io.Reader) ([]model.MarketHistory, error) {
	var envelopes []model.MarketEnvelope
	if err := decodeStrict(r, &envelopes); err != nil {
		return nil, err
	}

	histories := make([]model.MarketHistory, 0, len(envelopes))
	for i, env := range envelopes {
		if env.Data == nil || env.Data.Test == nil {
			return nil, fmt.Errorf("%w: market %d missing data.test", model.ErrInvalidInput, i)
		}
		test := env.Data.Test
		if strings.TrimSpace(test.UniqueKey) == "" {
			return nil, fmt.Errorf("%w: market %d missing uniqueKey", model.ErrInvalidInput, i)
		}
		if test.HistoricalState == nil {
			return nil, fmt.Errorf("%w: market %s missing historicalState", model.ErrInvalidInput, test.UniqueKey)
		}
		histories = append(histories, model.MarketHistory{
			UniqueKey: test.UniqueKey,
			Points:    test.HistoricalState.WeeklyBorrowApy,
		})
	}
	return histories, nil
}
