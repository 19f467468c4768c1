package stats

import (
	"time"

	"timelog/timelog"
)

// Report bundles every shipped statistic for one run, in the fixed order in
// which they are rendered and exported.
type Report struct {
	Months     *Table
	Weeks      *Table
	Days       *Table
	DaysOfWeek []WeekdayRow
	Session    timelog.Period
	HasSession bool
}

// Build computes all statistics from the canonical sorted, deduplicated
// period sequence. The now argument fixes the Days window so callers and
// tests get deterministic caps.
func Build(periods []timelog.Period, resolution time.Duration, now time.Time) *Report {
	report := &Report{
		Months:     Months().Make(periods),
		Weeks:      Weeks().Make(periods),
		Days:       Days(now).Make(periods),
		DaysOfWeek: DaysOfWeek(periods),
	}
	report.Session, report.HasSession = LongestSession(periods, resolution)
	return report
}
