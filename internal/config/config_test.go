package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestLoadEpochsFlagsAndEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("REPORT_PG_DSN", "postgres://localhost/report")

	flags := pflag.NewFlagSet("epochs", pflag.ContinueOnError)
	flags.String("in", "./aerodrome-data.json", "")
	flags.String("out", "", "")
	flags.StringSlice("pool", nil, "")
	if err := flags.Parse([]string{"--in", "data/epochs.json", "--pool", "a, b,,c"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := LoadEpochs("", flags)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Input != "data/epochs.json" {
		t.Fatalf("input mismatch: %s", cfg.Input)
	}
	if cfg.PGDSN != "postgres://localhost/report" {
		t.Fatalf("dsn mismatch: %s", cfg.PGDSN)
	}
	if len(cfg.Pools) != 3 || cfg.Pools[1] != "b" {
		t.Fatalf("pools mismatch: %v", cfg.Pools)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("log level default mismatch: %s", cfg.LogLevel)
	}
}

func TestLoadAPYMarketsFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.yaml")
	content := "in: ./custom.json\nmarkets:\n  \"0xabc\": \"DAI/USDC\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadAPY(path, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Input != "./custom.json" {
		t.Fatalf("input mismatch: %s", cfg.Input)
	}
	if cfg.Markets["0xabc"] != "DAI/USDC" {
		t.Fatalf("markets mismatch: %v", cfg.Markets)
	}
}

func TestLoadAPYDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := LoadAPY("", nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Input != "./morpho-data.json" || len(cfg.Markets) != 0 {
		t.Fatalf("defaults mismatch: %+v", cfg)
	}
}

func TestParsePairs(t *testing.T) {
	got := parsePairs("0x01=A/B, bad ,0x02 = C/D,=x")
	if len(got) != 2 || got["0x01"] != "A/B" || got["0x02"] != "C/D" {
		t.Fatalf("map mismatch: %v", got)
	}
}

func TestParseTimestamp(t *testing.T) {
	got, err := ParseTimestamp("1728950400")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !got.Equal(time.Date(2024, time.October, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unix mismatch: %v", got)
	}

	got, err = ParseTimestamp("2024-10-16T12:00:00Z")
	if err != nil || got.Day() != 16 {
		t.Fatalf("rfc3339 mismatch: %v %v", got, err)
	}

	if got, err := ParseTimestamp(""); err != nil || !got.IsZero() {
		t.Fatalf("empty mismatch: %v %v", got, err)
	}
	if _, err := ParseTimestamp("yesterday"); err == nil {
		t.Fatalf("expected error")
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoadEpochsPoolsFromEnvAndFile(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("REPORT_POOL", " vAMM-WETH/USDC ,sAMM-USDC/USDbC,")

	cfg, err := LoadEpochs("", nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Pools) != 2 || cfg.Pools[0] != "vAMM-WETH/USDC" || cfg.Pools[1] != "sAMM-USDC/USDbC" {
		t.Fatalf("env pools mismatch: %v", cfg.Pools)
	}

	path := filepath.Join(t.TempDir(), "report.yaml")
	if err := os.WriteFile(path, []byte("pool:\n  - a\n  - \" b \"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("REPORT_POOL", "")

	cfg, err = LoadEpochs(path, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Pools) != 2 || cfg.Pools[1] != "b" {
		t.Fatalf("file pools mismatch: %v", cfg.Pools)
	}
}

func TestLoadAPYMarketsFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("REPORT_MARKETS", "0xabc=DAI/USDC,broken")

	cfg, err := LoadAPY("", nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Markets) != 1 || cfg.Markets["0xabc"] != "DAI/USDC" {
		t.Fatalf("markets mismatch: %v", cfg.Markets)
	}
}
