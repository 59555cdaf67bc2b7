package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"yieldScope/internal/config"
	"yieldScope/internal/market"
	"yieldScope/internal/report"
	"yieldScope/internal/source"
	"yieldScope/internal/storage"
)

func runAPY(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadAPY(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.Input == "" {
		return fmt.Errorf("input path is required")
	}

	registry, err := market.NewRegistry(market.MergeLabels(cfg.Markets))
	if err != nil {
		return fmt.Errorf("build market registry: %w", err)
	}

	logger.Info("apy start",
		zap.String("input", cfg.Input),
		zap.Int("markets", registry.Len()),
		zap.String("out", cfg.Out),
	)

	histories, err := source.LoadMarkets(cfg.Input)
	if err != nil {
		return err
	}

	rep, err := report.NewGenerator(registry, logger).APY(histories)
	if err != nil {
		return fmt.Errorf("build apy report: %w", err)
	}

	if err := storage.WriteText(cfg.Out, os.Stdout, rep.Markdown); err != nil {
		return err
	}
	if cfg.SummaryOut != "" {
		if err := storage.NewJsonlStorage(cfg.SummaryOut).PutSummaries(storage.Records(rep.Summaries)); err != nil {
			return err
		}
	}

	logger.Info("apy complete",
		zap.Int("markets", len(rep.Summaries)),
		zap.String("summary_out", cfg.SummaryOut),
	)
	return nil
}
