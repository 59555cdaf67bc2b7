package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"yieldScope/internal/config"
	"yieldScope/internal/model"
	"yieldScope/internal/report"
	"yieldScope/internal/source"
	"yieldScope/internal/storage"
	"yieldScope/internal/storage/postgres"
)

func runEpochs(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadEpochs(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	now, err := config.ParseTimestamp(cfg.Now)
	if err != nil {
		return fmt.Errorf("parse now: %w", err)
	}

	logger.Info("epochs start",
		zap.String("input", cfg.Input),
		zap.String("pg_dsn", redactDSN(cfg.PGDSN)),
		zap.Strings("pools", cfg.Pools),
		zap.String("out", cfg.Out),
	)

	pools, err := loadEpochs(cfg)
	if err != nil {
		return err
	}

	gen := report.NewGenerator(nil, logger)
	if !now.IsZero() {
		gen.WithClock(func() time.Time { return now })
	}

	rep, err := gen.Epochs(pools)
	if err != nil {
		return fmt.Errorf("build epoch report: %w", err)
	}

	if err := storage.WriteText(cfg.Out, os.Stdout, rep.Markdown); err != nil {
		return err
	}
	if cfg.SummaryOut != "" {
		if err := storage.NewJsonlStorage(cfg.SummaryOut).PutSummaries(storage.Records(rep.Summaries)); err != nil {
			return err
		}
	}

	logger.Info("epochs complete",
		zap.Int("pools", len(rep.Summaries)),
		zap.String("summary_out", cfg.SummaryOut),
	)
	return nil
}

func loadEpochs(cfg config.EpochsConfig) ([]model.EpochSeries, error) {
	if cfg.PGDSN == "" {
		if cfg.Input == "" {
			return nil, fmt.Errorf("input path is required")
		}
		pools, err := source.LoadEpochs(cfg.Input)
		if err != nil {
			return nil, err
		}
		return source.FilterPools(pools, cfg.Pools), nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := postgres.NewStore(ctx, cfg.PGDSN)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	defer store.Close()

	return store.LoadEpochSeries(ctx, cfg.Pools)
}
