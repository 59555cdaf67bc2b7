package aggregate

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Volatility returns the population standard deviation of the period-over-period
// percentage changes of values. Only adjacent pairs where both values are present
// contribute a change; pairs whose previous value is zero are skipped, as are
// changes that overflow. Fewer than two changes, or a result that is not finite,
// is reported as 0.
func Volatility(values []*float64) float64 {
	changes := make([]float64, 0, len(values))
	for i := 1; i < len(values); i++ {
		prev, cur := values[i-1], values[i]
		if !usable(prev) || !usable(cur) || *prev == 0 {
			continue
		}
		change := 100 * (*cur - *prev) / *prev
		if !finite(change) {
			continue
		}
		changes = append(changes, change)
	}

	if len(changes) < 2 {
		return 0
	}

	_, std := stat.PopMeanStdDev(changes, nil)
	if !finite(std) {
		return 0
	}
	return std
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func usable(v *float64) bool {
	return v != nil && finite(*v)
}

// ratio divides sum by denom, returning nil when the average is not available.
func ratio(sum float64, denom int) *float64 {
	if denom <= 0 || !finite(sum) {
		return nil
	}
	val := sum / float64(denom)
	if !finite(val) {
		return nil
	}
	return &val
}
