package timelog

import (
	"fmt"
	"time"

	"timelog/internal/timeutil"
)

// DefaultResolution is the grid size used by the shipped report.
const DefaultResolution = 15 * time.Minute

const day = 24 * time.Hour

// Quantize maps an instant onto the period of the fixed-size grid that
// contains it. The grid is anchored at local midnight of the instant's own
// calendar day, so quantize(t, R).Start() <= t < quantize(t, R).End() and the
// resulting duration is always exactly R.
//
// The resolution must be positive, shorter than one day, and divide one day
// evenly; violating that is a programming error and panics.
func Quantize(t time.Time, resolution time.Duration) Period {
	if resolution <= 0 || resolution >= day {
		panic(fmt.Sprintf("timelog: quantize resolution %s out of range (0, 24h)", resolution))
	}
	if day%resolution != 0 {
		panic(fmt.Sprintf("timelog: quantize resolution %s does not divide one day evenly", resolution))
	}

	midnight := timeutil.StartOfDay(t)
	fromMidnight := t.Sub(midnight)
	start := midnight.Add(fromMidnight - fromMidnight%resolution)
	return Period{start: start, duration: resolution}
}
