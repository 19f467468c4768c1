package stats

import (
	"fmt"
	"math"
	"time"

	"timelog/internal/timeutil"
	"timelog/timelog"
)

// Row is one aggregated group of a tabular statistic.
type Row struct {
	Label string
	Hours float64
}

// Table is an ordered mapping from formatted group key to aggregated value.
type Table struct {
	Name string
	Rows []Row
}

// Definition configures one tabular statistic for the generic aggregator. Key
// produces the formatted group key and must be non-decreasing over the
// start-sorted canonical sequence. Limit caps the number of groups kept, in
// encounter order; zero or negative means unlimited. A nil Aggregate defaults
// to Hours.
type Definition struct {
	Name      string
	Key       func(timelog.Period) string
	Limit     int
	Aggregate func([]timelog.Period) float64
}

// Hours is the default aggregation: the total duration of the group in
// hours, unrounded.
func Hours(group []timelog.Period) float64 {
	total := 0.0
	for _, p := range group {
		total += p.Hours()
	}
	return total
}

type group struct {
	key     string
	periods []timelog.Period
}

// groupAdjacent splits periods into runs of equal consecutive keys. Equal but
// non-consecutive keys form separate groups.
func groupAdjacent(periods []timelog.Period, key func(timelog.Period) string) []group {
	groups := make([]group, 0)
	for _, p := range periods {
		k := key(p)
		if n := len(groups); n > 0 && groups[n-1].key == k {
			groups[n-1].periods = append(groups[n-1].periods, p)
			continue
		}
		groups = append(groups, group{key: k, periods: []timelog.Period{p}})
	}
	return groups
}

// Make runs the statistic over the canonical sorted period sequence.
func (d Definition) Make(periods []timelog.Period) *Table {
	aggregate := d.Aggregate
	if aggregate == nil {
		aggregate = Hours
	}

	groups := groupAdjacent(periods, d.Key)
	if d.Limit > 0 && len(groups) > d.Limit {
		groups = groups[:d.Limit]
	}

	rows := make([]Row, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, Row{Label: g.key, Hours: aggregate(g.periods)})
	}
	return &Table{Name: d.Name, Rows: rows}
}

// Months groups by calendar month, formatted YYYY-MM, unlimited.
func Months() Definition {
	return Definition{
		Name: "Months",
		Key: func(p timelog.Period) string {
			return p.Start().Format("2006-01")
		},
	}
}

// Weeks groups by ISO calendar week, formatted YYYY-Wnn, capped at 8 groups.
// The cap keeps the first 8 weeks in ascending start order, i.e. the
// chronologically oldest weeks present in the log, not the most recent ones.
func Weeks() Definition {
	return Definition{
		Name: "Weeks",
		Key: func(p timelog.Period) string {
			year, week := p.Start().ISOWeek()
			return fmt.Sprintf("%d-W%02d", year, week)
		},
		Limit: 8,
	}
}

// Days groups by calendar date with the abbreviated weekday name. The cap is
// the ISO weekday number of now plus one full week, sized to roughly cover
// this week and last. It counts groups, not calendar days, so gaps in
// activity widen the covered date range.
func Days(now time.Time) Definition {
	return Definition{
		Name: "Days",
		Key: func(p timelog.Period) string {
			return p.Start().Format("2006-01-02 Mon")
		},
		Limit: timeutil.ISOWeekday(now) + 7,
	}
}

// WeekdayRow reports the per-occurrence average and the exact total of hours
// for one weekday bucket.
type WeekdayRow struct {
	Label string
	Avg   float64
	Sum   float64
}

// DaysOfWeek buckets group-adjacent runs by weekday (0 Sun through 6 Sat) and
// accumulates every run's hour total into its weekday, across the whole log.
// The average per bucket is rounded to two decimals; the sum is exact. Rows
// appear in first-encounter order.
func DaysOfWeek(periods []timelog.Period) []WeekdayRow {
	key := func(p timelog.Period) string {
		start := p.Start()
		return fmt.Sprintf("%d %s", int(start.Weekday()), start.Format("Mon"))
	}

	order := make([]string, 0, 7)
	totals := make(map[string][]float64, 7)
	for _, g := range groupAdjacent(periods, key) {
		if _, seen := totals[g.key]; !seen {
			order = append(order, g.key)
		}
		totals[g.key] = append(totals[g.key], Hours(g.periods))
	}

	rows := make([]WeekdayRow, 0, len(order))
	for _, label := range order {
		runs := totals[label]
		sum := 0.0
		for _, hours := range runs {
			sum += hours
		}
		rows = append(rows, WeekdayRow{
			Label: label,
			Avg:   roundHours(sum / float64(len(runs))),
			Sum:   sum,
		})
	}
	return rows
}

// LongestSession merges the canonical sequence into continuous sessions and
// returns the longest one. The merge tolerance is one resolution unit short
// of two full units, so a single skipped grid slot does not break a session
// but two do. The second return is false when the log is empty.
func LongestSession(periods []timelog.Period, resolution time.Duration) (timelog.Period, bool) {
	maxGap := 2*resolution - time.Microsecond
	sessions := timelog.Combine(periods, maxGap)
	if len(sessions) == 0 {
		return timelog.Period{}, false
	}

	longest := sessions[0]
	for _, session := range sessions[1:] {
		if session.Duration() > longest.Duration() {
			longest = session
		}
	}
	return longest, true
}

func roundHours(value float64) float64 {
	return math.Round(value*100) / 100
}
