package timelog

import (
	"fmt"
	"sort"
	"time"
)

// Period is an immutable half-open span of time [Start, End) defined by a
// start instant and a non-negative duration. Construct only via New, Between
// or Exact; the zero value is a valid empty period.
type Period struct {
	start    time.Time
	duration time.Duration
}

// Key identifies a Period for map-based deduplication. Two periods have the
// same Key exactly when Equal reports true for them.
type Key struct {
	StartUnixNano int64
	Duration      time.Duration
}

// New returns a period starting at start and lasting duration.
func New(start time.Time, duration time.Duration) (Period, error) {
	if duration < 0 {
		return Period{}, fmt.Errorf("period duration must not be negative, got %s", duration)
	}
	return Period{start: start, duration: duration}, nil
}

// Between returns the period from start to end, deriving the duration.
func Between(start, end time.Time) (Period, error) {
	if end.Before(start) {
		return Period{}, fmt.Errorf("period end %s must not be before start %s", end, start)
	}
	return Period{start: start, duration: end.Sub(start)}, nil
}

// Exact returns a period from all three values and fails unless they are
// mutually consistent (start + duration == end).
func Exact(start time.Time, duration time.Duration, end time.Time) (Period, error) {
	if !start.Add(duration).Equal(end) {
		return Period{}, fmt.Errorf("period duration %s does not match end - start (%s)", duration, end.Sub(start))
	}
	return New(start, duration)
}

func (p Period) Start() time.Time        { return p.start }
func (p Period) Duration() time.Duration { return p.duration }

// End returns the derived exclusive end instant, start + duration.
func (p Period) End() time.Time {
	return p.start.Add(p.duration)
}

// Hours returns the duration expressed in hours.
func (p Period) Hours() float64 {
	return p.duration.Hours()
}

// WithStart returns a copy with the given start and the receiver's duration.
func (p Period) WithStart(start time.Time) (Period, error) {
	return New(start, p.duration)
}

// WithDuration returns a copy with the given duration and the receiver's start.
func (p Period) WithDuration(duration time.Duration) (Period, error) {
	return New(p.start, duration)
}

// WithEnd returns a copy keeping the receiver's start and deriving a new
// duration from the given end.
func (p Period) WithEnd(end time.Time) (Period, error) {
	return Between(p.start, end)
}

// Equal reports whether both periods describe the same (start, duration)
// pair. Starts are compared as instants, so representations in different
// zones of the same moment are equal.
func (p Period) Equal(other Period) bool {
	return p.start.Equal(other.start) && p.duration == other.duration
}

// Key returns the comparable dedup key for this period.
func (p Period) Key() Key {
	return Key{StartUnixNano: p.start.UnixNano(), Duration: p.duration}
}

// Contains reports whether t falls within the period, inclusive of start and
// exclusive of end.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.start) && t.Before(p.End())
}

func (p Period) String() string {
	return fmt.Sprintf("[%s] to [%s] (%s)", p.start.Format(time.RFC3339), p.End().Format(time.RFC3339), p.duration)
}

// SortByStart sorts periods ascending by start in place. The sort is stable,
// so periods with equal starts keep their relative order.
func SortByStart(periods []Period) {
	sort.SliceStable(periods, func(i, j int) bool {
		return periods[i].start.Before(periods[j].start)
	})
}

// Dedupe returns the periods with duplicates (per Equal) removed, keeping the
// first occurrence of each. Order of first occurrences is preserved.
func Dedupe(periods []Period) []Period {
	seen := make(map[Key]struct{}, len(periods))
	result := make([]Period, 0, len(periods))
	for _, p := range periods {
		key := p.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, p)
	}
	return result
}
