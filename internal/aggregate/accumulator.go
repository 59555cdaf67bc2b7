package aggregate

// Denominator selects how a metric average is divided.
type Denominator int

const (
	// PerPresent divides by the number of periods that reported the metric.
	PerPresent Denominator = iota
	// PerPeriod divides by the total number of periods in the series.
	PerPeriod
)

// Accumulator holds running totals for one metric of one entity.
type Accumulator struct {
	Denominator Denominator
	Sum         float64
	Present     int
	Periods     int
	Values      []*float64
}

func NewAccumulator(denom Denominator) *Accumulator {
	return &Accumulator{Denominator: denom}
}

// Add records one period. A nil or non-finite value counts toward the period total only.
func (a *Accumulator) Add(value *float64) {
	a.Periods++
	if !usable(value) {
		return
	}
	v := *value
	a.Sum += v
	a.Present++
	a.Values = append(a.Values, &v)
}

// Mean returns the metric average, or nil when no period reported a value.
func (a *Accumulator) Mean() *float64 {
	if a.Present == 0 {
		return nil
	}
	if a.Denominator == PerPeriod {
		return ratio(a.Sum, a.Periods)
	}
	return ratio(a.Sum, a.Present)
}

// Volatility returns the volatility of the present values in period order.
func (a *Accumulator) Volatility() float64 {
	return Volatility(a.Values)
}
