package config

import "github.com/spf13/pflag"

// APYConfig holds configuration for the lending market APY report.
type APYConfig struct {
	Input      string
	Out        string
	SummaryOut string
	Markets    map[string]string
	LogLevel   string
}

// LoadAPY merges config file, environment variables, and flags into APYConfig.
// Market labels come from the "markets" key (map of unique key to "Collateral/Loan").
func LoadAPY(cfgFile string, flags *pflag.FlagSet) (APYConfig, error) {
	v, err := load(cfgFile, flags, map[string]interface{}{
		"in": "./morpho-data.json",
	})
	if err != nil {
		return APYConfig{}, err
	}

	return APYConfig{
		Input:      v.GetString("in"),
		Out:        v.GetString("out"),
		SummaryOut: v.GetString("summary-out"),
		Markets:    stringMap(v, "markets"),
		LogLevel:   v.GetString("log-level"),
	}, nil
}
