package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	root := &cobra.Command{
		Use:          "report",
		Short:        "Pool epoch and lending market APY reports",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	epochsCmd := &cobra.Command{
		Use:   "epochs",
		Short: "Render pool epoch statistics as markdown",
		RunE:  runEpochs,
	}

	epochsCmd.Flags().String("in", "./aerodrome-data.json", "input epoch data JSON")
	epochsCmd.Flags().String("out", "", "markdown output path (default stdout)")
	epochsCmd.Flags().String("summary-out", "", "optional JSONL export of pool summaries")
	epochsCmd.Flags().String("pg-dsn", "", "Postgres DSN; reads pool_epoch_stats instead of --in")
	epochsCmd.Flags().StringSlice("pool", nil, "pool symbols to report, in order (comma-separated)")
	epochsCmd.Flags().String("now", "", "reference time for synthetic date ranges (unix seconds or RFC3339)")
	epochsCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(epochsCmd)

	apyCmd := &cobra.Command{
		Use:   "apy",
		Short: "Render lending market borrow APY history as markdown",
		RunE:  runAPY,
	}

	apyCmd.Flags().String("in", "./morpho-data.json", "input market history JSON")
	apyCmd.Flags().String("out", "", "markdown output path (default stdout)")
	apyCmd.Flags().String("summary-out", "", "optional JSONL export of market summaries")
	apyCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(apyCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stderr"}

	return cfg.Build()
}

func redactDSN(dsn string) string {
	if dsn == "" {
		return dsn
	}
	return "***"
}
