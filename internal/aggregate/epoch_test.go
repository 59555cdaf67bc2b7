package aggregate

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yieldScope/internal/model"
)

func s(v string) *string {
	return &v
}

var fixedNow = time.Date(2024, time.October, 16, 12, 0, 0, 0, time.UTC)

func TestEpochsMeanDenominators(t *testing.T) {
	series := model.EpochSeries{
		{PoolSymbol: "vAMM-WETH/USDC", Epoch: "1", Fees: f(10), FeesAPR: f(10)},
		{PoolSymbol: "vAMM-WETH/USDC", Epoch: "2"},
		{PoolSymbol: "vAMM-WETH/USDC", Epoch: "3", Fees: f(20), FeesAPR: f(20)},
	}

	summary, err := Epochs(series, fixedNow)
	require.NoError(t, err)

	require.NotNil(t, summary.AvgFeeAPR)
	assert.Equal(t, 15.0, *summary.AvgFeeAPR)
	require.NotNil(t, summary.AvgFees)
	assert.Equal(t, 10.0, *summary.AvgFees)
	assert.Equal(t, 3, summary.TotalEpochs)
	assert.Equal(t, "vAMM-WETH/USDC", summary.PoolSymbol)
}

func TestEpochsAbsentMetricIsNotAvailable(t *testing.T) {
	series := model.EpochSeries{
		{PoolSymbol: "sAMM-USDC/USDbC", Epoch: "1", Fees: f(1)},
		{PoolSymbol: "sAMM-USDC/USDbC", Epoch: "2", Fees: f(3)},
	}

	summary, err := Epochs(series, fixedNow)
	require.NoError(t, err)

	assert.Nil(t, summary.AvgBribeAPR)
	assert.Nil(t, summary.AvgVolume)
	assert.Nil(t, summary.AvgYieldAPR)
	assert.Equal(t, 0.0, summary.BribeAPRVolatility)
	assert.Equal(t, "", summary.MostCommonBribe)
}

func TestEpochsMostCommonBribeToken(t *testing.T) {
	series := model.EpochSeries{
		{PoolSymbol: "p", BribeTokensList: s("A B")},
		{PoolSymbol: "p", BribeTokensList: s("A")},
		{PoolSymbol: "p", BribeTokensList: s("B B")},
	}

	summary, err := Epochs(series, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "B", summary.MostCommonBribe)
}

func TestEpochsVolatilityOverPresentValues(t *testing.T) {
	series := model.EpochSeries{
		{PoolSymbol: "p", YieldAPR: f(100)},
		{PoolSymbol: "p"},
		{PoolSymbol: "p", YieldAPR: f(110)},
		{PoolSymbol: "p", YieldAPR: f(99)},
	}

	summary, err := Epochs(series, fixedNow)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, summary.YieldAPRVolatility, 1e-9)
}

func TestEpochsEmptySeries(t *testing.T) {
	_, err := Epochs(nil, fixedNow)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInvalidInput))
}

func TestEpochsSyntheticDateRange(t *testing.T) {
	series := model.EpochSeries{{PoolSymbol: "p"}, {PoolSymbol: "p"}}

	summary, err := Epochs(series, fixedNow)
	require.NoError(t, err)

	assert.True(t, summary.DateRange.Synthetic)
	assert.Equal(t, "From Wed Oct 02 2024 to Wed Oct 16 2024", summary.DateRange.String())
}

func TestEpochsRecordedDateRange(t *testing.T) {
	start := time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC).Unix()
	last := time.Date(2024, time.August, 8, 0, 0, 0, 0, time.UTC).Unix()
	series := model.EpochSeries{
		{PoolSymbol: "p", Timestamp: &start},
		{PoolSymbol: "p", Timestamp: &last},
	}

	summary, err := Epochs(series, fixedNow)
	require.NoError(t, err)

	assert.False(t, summary.DateRange.Synthetic)
	assert.Equal(t, "From Thu Aug 01 2024 to Thu Aug 15 2024", summary.DateRange.String())
}
