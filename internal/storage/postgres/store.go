package postgres

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"yieldScope/internal/model"
)

const loadEpochsQuery = `
	SELECT pool_symbol, epoch, epoch_start_ts,
		fees, fees_apr, bribes_apr, tvl, swap_count, swap_fees,
		emission, emission_value, yield_apr, volume, bribe_tokens
	FROM pool_epoch_stats
	WHERE $1::text[] IS NULL OR pool_symbol = ANY($1)
	ORDER BY array_position($1::text[], pool_symbol), pool_symbol,
		epoch_start_ts NULLS LAST, length(epoch), epoch
`

// Store reads materialized epoch statistics from Postgres.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("pg dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// LoadEpochSeries returns one series per pool. An empty pools list loads every pool.
func (s *Store) LoadEpochSeries(ctx context.Context, pools []string) ([]model.EpochSeries, error) {
	var filter []string
	if len(pools) > 0 {
		filter = pools
	}

	rows, err := s.pool.Query(ctx, loadEpochsQuery, filter)
	if err != nil {
		return nil, fmt.Errorf("query epochs: %w", err)
	}

	records, err := pgx.CollectRows(rows, scanEpoch)
	if err != nil {
		return nil, fmt.Errorf("scan epochs: %w", err)
	}
	SortEpochs(records, pools)
	return GroupSeries(records), nil
}

func scanEpoch(row pgx.CollectableRow) (model.EpochRecord, error) {
	var (
		rec   model.EpochRecord
		epoch string
	)
	err := row.Scan(
		&rec.PoolSymbol,
		&epoch,
		&rec.Timestamp,
		&rec.Fees,
		&rec.FeesAPR,
		&rec.BribesAPR,
		&rec.TVL,
		&rec.SwapCount,
		&rec.SwapFees,
		&rec.Emission,
		&rec.EmissionValue,
		&rec.YieldAPR,
		&rec.Volume,
		&rec.BribeTokensList,
	)
	rec.Epoch = model.Label(epoch)
	return rec, err
}

// GroupSeries splits records into per-pool series, keeping the order in which
// pools first appear and the record order within each pool.
func GroupSeries(records []model.EpochRecord) []model.EpochSeries {
	index := make(map[string]int)
	var out []model.EpochSeries
	for _, rec := range records {
		i, ok := index[rec.PoolSymbol]
		if !ok {
			i = len(out)
			index[rec.PoolSymbol] = i
			out = append(out, nil)
		}
		out[i] = append(out[i], rec)
	}
	return out
}

// SortEpochs orders records by pool, then by epoch start, then by epoch label.
// Pools follow their position in pools when given, otherwise their symbol.
// Records without a start time come last within a pool; numeric labels compare
// as numbers.
func SortEpochs(records []model.EpochRecord, pools []string) {
	rank := make(map[string]int, len(pools))
	for i, pool := range pools {
		if _, ok := rank[pool]; !ok {
			rank[pool] = i
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.PoolSymbol != b.PoolSymbol {
			ra, aok := rank[a.PoolSymbol]
			rb, bok := rank[b.PoolSymbol]
			if aok && bok && ra != rb {
				return ra < rb
			}
			if aok != bok {
				return aok
			}
			return a.PoolSymbol < b.PoolSymbol
		}
		switch {
		case a.Timestamp != nil && b.Timestamp != nil:
			if *a.Timestamp != *b.Timestamp {
				return *a.Timestamp < *b.Timestamp
			}
		case a.Timestamp != nil:
			return true
		case b.Timestamp != nil:
			return false
		}
		return epochLess(a.Epoch.String(), b.Epoch.String())
	})
}

func epochLess(a, b string) bool {
	na, errA := strconv.ParseInt(a, 10, 64)
	nb, errB := strconv.ParseInt(b, 10, 64)
	if errA == nil && errB == nil {
		return na < nb
	}
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}
