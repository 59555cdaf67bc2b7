package aggregate

import (
	"fmt"
	"time"
)

// EpochLength is the fixed length of one epoch.
const EpochLength = 7 * 24 * time.Hour

const dateLayout = "Mon Jan 02 2006"

// DateRange is the period covered by a series.
type DateRange struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Synthetic bool      `json:"synthetic"`
}

// SyntheticRange approximates the covered period as count epochs ending at now.
// It ignores gaps and the real epoch boundaries.
func SyntheticRange(count int, now time.Time) DateRange {
	return DateRange{
		Start:     now.Add(-time.Duration(count) * EpochLength),
		End:       now,
		Synthetic: true,
	}
}

func (r DateRange) String() string {
	return fmt.Sprintf("From %s to %s", r.Start.Format(dateLayout), r.End.Format(dateLayout))
}
