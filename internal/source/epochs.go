package source

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"yieldScope/internal/model"
)

// LoadEpochs reads an epoch export: a JSON array with one array of epochs per pool.
func LoadEpochs(path string) ([]model.EpochSeries, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer file.Close()

	return DecodeEpochs(file)
}

// DecodeEpochs decodes and validates an epoch export.
func DecodeEpochs(r io.Reader) ([]model.EpochSeries, error) {
	var pools []model.EpochSeries
	if err := decodeStrict(r, &pools); err != nil {
		return nil, err
	}

	for i, series := range pools {
		if len(series) == 0 {
			return nil, fmt.Errorf("%w: pool %d has no epochs", model.ErrInvalidInput, i)
		}
		for j, record := range series {
			if strings.TrimSpace(record.PoolSymbol) == "" {
				return nil, fmt.Errorf("%w: pool %d epoch %d missing Pool Symbol", model.ErrInvalidInput, i, j)
			}
		}
	}
	return pools, nil
}

func decodeStrict(r io.Reader, v interface{}) error {
	dec := json.NewDecoder(r)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: decode json: %v", model.ErrInvalidInput, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: trailing data after json document", model.ErrInvalidInput)
	}
	return nil
}

// FilterPools keeps the series whose symbol is listed in pools, in the order of
// pools. An empty pools list keeps every series in input order.
func FilterPools(series []model.EpochSeries, pools []string) []model.EpochSeries {
	if len(pools) == 0 {
		return series
	}

	bySymbol := make(map[string]model.EpochSeries, len(series))
	for _, s := range series {
		if _, ok := bySymbol[s.Symbol()]; !ok {
			bySymbol[s.Symbol()] = s
		}
	}

	out := make([]model.EpochSeries, 0, len(pools))
	seen := make(map[string]bool, len(pools))
	for _, pool := range pools {
		s, ok := bySymbol[pool]
		if !ok || seen[pool] {
			continue
		}
		seen[pool] = true
		out = append(out, s)
	}
	return out
}
