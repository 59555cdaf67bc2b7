package model

// APYPoint is a single weekly borrow APY observation.
type APYPoint struct {
	X *int64   `json:"x"`
	Y *float64 `json:"y"`
}

// MarketHistory is the APY history of one lending market.
type MarketHistory struct {
	UniqueKey string
	Points    []APYPoint
}

// MarketEnvelope mirrors the wrapper object of the lending market export.
type MarketEnvelope struct {
	Data *struct {
		Test *struct {
			UniqueKey       string `json:"uniqueKey"`
			HistoricalState *struct {
				WeeklyBorrowApy []APYPoint `json:"weeklyBorrowApy"`
			} `json:"historicalState"`
		} `json:"test"`
	} `json:"data"`
}
