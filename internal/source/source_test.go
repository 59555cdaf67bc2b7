package source

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yieldScope/internal/model"
)

const epochFixture = `[
  [
    {"Pool Symbol": "vAMM-WETH/USDC", "Epoch": 1, "Fees": 10.5, "Fees APR": 0.12, "Bribes APR": null,
     "TVL": 1000000, "# Swap": 321, "Swap Fees": 10.5, "Emission": 500, "Emission Value": 450.2,
     "Yield APR": 0.3, "Volume": 35000, "Bribe Tokens List": "AERO USDC"},
    {"Pool Symbol": "vAMM-WETH/USDC", "Epoch": 2, "Fees": null, "Fees APR": null, "Bribes APR": null,
     "TVL": null, "# Swap": null, "Swap Fees": null, "Emission": null, "Emission Value": null,
     "Yield APR": null, "Volume": null, "Bribe Tokens List": null}
  ],
  [
    {"Pool Symbol": "sAMM-USDC/USDbC", "Epoch": "2024-10-03", "Fees": 1}
  ]
]`

const marketFixture = `[
  {"data": {"test": {"uniqueKey": "0x8793cf302b8ffd655ab97bd1c695dbd967807e8367a65cb2f4edaf1380ba1bda",
    "historicalState": {"weeklyBorrowApy": [{"x": 1727740800, "y": 0.051}, {"x": 1728345600, "y": null}]}}}}
]`

func TestDecodeEpochs(t *testing.T) {
	pools, err := DecodeEpochs(strings.NewReader(epochFixture))
	require.NoError(t, err)
	require.Len(t, pools, 2)

	assert.Equal(t, "vAMM-WETH/USDC", pools[0].Symbol())
	require.Len(t, pools[0], 2)
	assert.Nil(t, pools[0][0].BribesAPR)
	require.NotNil(t, pools[0][0].SwapCount)
	assert.Equal(t, 321.0, *pools[0][0].SwapCount)
	assert.Nil(t, pools[0][1].Fees)
	assert.Equal(t, model.Label("2024-10-03"), pools[1][0].Epoch)
}

func TestDecodeEpochsInvalid(t *testing.T) {
	cases := map[string]string{
		"malformed":      `[[{"Pool Symbol": "x"}`,
		"empty pool":     `[[]]`,
		"missing symbol": `[[{"Epoch": 1, "Fees": 2}]]`,
		"wrong shape":    `{"Pool Symbol": "x"}`,
		"trailing":       `[] []`,
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeEpochs(strings.NewReader(input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, model.ErrInvalidInput), "got %v", err)
		})
	}
}

func TestDecodeMarkets(t *testing.T) {
	histories, err := DecodeMarkets(strings.NewReader(marketFixture))
	require.NoError(t, err)
	require.Len(t, histories, 1)

	h := histories[0]
	assert.Equal(t, "0x8793cf302b8ffd655ab97bd1c695dbd967807e8367a65cb2f4edaf1380ba1bda", h.UniqueKey)
	require.Len(t, h.Points, 2)
	require.NotNil(t, h.Points[0].X)
	assert.Equal(t, int64(1727740800), *h.Points[0].X)
	assert.Nil(t, h.Points[1].Y)
}

func TestDecodeMarketsInvalid(t *testing.T) {
	cases := map[string]string{
		"no data":    `[{}]`,
		"no test":    `[{"data": {}}]`,
		"no key":     `[{"data": {"test": {"historicalState": {"weeklyBorrowApy": []}}}}]`,
		"no history": `[{"data": {"test": {"uniqueKey": "0x01"}}}]`,
		"not json":   `nope`,
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeMarkets(strings.NewReader(input))
			assert.True(t, errors.Is(err, model.ErrInvalidInput), "got %v", err)
		})
	}
}

func TestLoadEpochsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aerodrome-data.json")
	require.NoError(t, os.WriteFile(path, []byte(epochFixture), 0o644))

	pools, err := LoadEpochs(path)
	require.NoError(t, err)
	assert.Len(t, pools, 2)

	_, err = LoadMarkets(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestFilterPools(t *testing.T) {
	pools, err := DecodeEpochs(strings.NewReader(epochFixture))
	require.NoError(t, err)

	assert.Len(t, FilterPools(pools, nil), 2)

	got := FilterPools(pools, []string{"sAMM-USDC/USDbC", "missing", "vAMM-WETH/USDC", "sAMM-USDC/USDbC"})
	require.Len(t, got, 2)
	assert.Equal(t, "sAMM-USDC/USDbC", got[0].Symbol())
	assert.Equal(t, "vAMM-WETH/USDC", got[1].Symbol())

	assert.Empty(t, FilterPools(pools, []string{"missing"}))
}
