package config

import "github.com/spf13/pflag"

// EpochsConfig holds configuration for the epoch report.
type EpochsConfig struct {
	Input      string
	Out        string
	SummaryOut string
	PGDSN      string
	Pools      []string
	Now        string
	LogLevel   string
}

// LoadEpochs merges config file, environment variables, and flags into EpochsConfig.
func LoadEpochs(cfgFile string, flags *pflag.FlagSet) (EpochsConfig, error) {
	v, err := load(cfgFile, flags, map[string]interface{}{
		"in": "./aerodrome-data.json",
	})
	if err != nil {
		return EpochsConfig{}, err
	}

	return EpochsConfig{
		Input:      v.GetString("in"),
		Out:        v.GetString("out"),
		SummaryOut: v.GetString("summary-out"),
		PGDSN:      v.GetString("pg-dsn"),
		Pools:      stringList(v, "pool"),
		Now:        v.GetString("now"),
		LogLevel:   v.GetString("log-level"),
	}, nil
}
