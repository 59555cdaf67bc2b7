package model

// EpochRecord is one epoch of pool statistics as exported by the epoch data source.
// Metrics are nil when the export carries null for that epoch.
type EpochRecord struct {
	PoolSymbol      string   `json:"Pool Symbol"`
	Epoch           Label    `json:"Epoch"`
	Timestamp       *int64   `json:"Timestamp,omitempty"`
	Fees            *float64 `json:"Fees"`
	FeesAPR         *float64 `json:"Fees APR"`
	BribesAPR       *float64 `json:"Bribes APR"`
	TVL             *float64 `json:"TVL"`
	SwapCount       *float64 `json:"# Swap"`
	SwapFees        *float64 `json:"Swap Fees"`
	Emission        *float64 `json:"Emission"`
	EmissionValue   *float64 `json:"Emission Value"`
	YieldAPR        *float64 `json:"Yield APR"`
	Volume          *float64 `json:"Volume"`
	BribeTokensList *string  `json:"Bribe Tokens List"`
}

// EpochSeries is the ordered list of epochs for a single pool.
type EpochSeries []EpochRecord

// Symbol returns the pool symbol of the series, taken from its first record.
func (s EpochSeries) Symbol() string {
	if len(s) == 0 {
		return ""
	}
	return s[0].PoolSymbol
}
