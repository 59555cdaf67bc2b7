package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables read by every command.
const EnvPrefix = "REPORT"

// load merges config file, environment variables, and flags into a viper instance.
func load(cfgFile string, flags *pflag.FlagSet, defaults map[string]interface{}) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("log-level", "info")
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	return v, nil
}

// stringList reads a list value. Environment variables arrive as one
// comma-separated string; flags and config files arrive as lists.
func stringList(v *viper.Viper, key string) []string {
	raw := v.Get(key)
	if text, ok := raw.(string); ok {
		return cleanStrings(strings.Split(text, ","))
	}
	return cleanStrings(cast.ToStringSlice(raw))
}

func cleanStrings(items []string) []string {
	var out []string
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// stringMap reads a key/value table. Environment variables use "k=v,k2=v2".
func stringMap(v *viper.Viper, key string) map[string]string {
	raw := v.Get(key)
	if text, ok := raw.(string); ok {
		return parsePairs(text)
	}

	out := make(map[string]string)
	for k, val := range cast.ToStringMapString(raw) {
		k, val = strings.TrimSpace(k), strings.TrimSpace(val)
		if k != "" && val != "" {
			out[k] = val
		}
	}
	return out
}

func parsePairs(input string) map[string]string {
	out := make(map[string]string)
	for _, pair := range strings.Split(input, ",") {
		key, value, ok := strings.Cut(pair, "=")
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		if !ok || key == "" || value == "" {
			continue
		}
		out[key] = value
	}
	return out
}
