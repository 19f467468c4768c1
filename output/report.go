package output

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"timelog/stats"
)

const timestampFormat = time.RFC3339

// RenderText prints the human-readable report: one titled block per
// statistic, in fixed order.
func RenderText(w io.Writer, report *stats.Report) error {
	for _, table := range []*stats.Table{report.Months, report.Weeks, report.Days} {
		if err := renderTable(w, table); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, "DaysOfWeek:"); err != nil {
		return err
	}
	if len(report.DaysOfWeek) == 0 {
		if _, err := fmt.Fprintln(w, "  (none)"); err != nil {
			return err
		}
	}
	for _, row := range report.DaysOfWeek {
		_, err := fmt.Fprintf(w, "  %s: avg %s, sum %s\n", row.Label, formatHours(row.Avg), formatHours(row.Sum))
		if err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "LongestSession:"); err != nil {
		return err
	}
	if report.HasSession {
		if _, err := fmt.Fprintf(w, "  %s\n", report.Session); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintln(w, "  (no sessions)"); err != nil {
			return err
		}
	}

	return nil
}

func renderTable(w io.Writer, table *stats.Table) error {
	if _, err := fmt.Fprintf(w, "%s:\n", table.Name); err != nil {
		return err
	}
	if len(table.Rows) == 0 {
		if _, err := fmt.Fprintln(w, "  (none)"); err != nil {
			return err
		}
	}
	for _, row := range table.Rows {
		if _, err := fmt.Fprintf(w, "  %s: %s\n", row.Label, formatHours(row.Hours)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

func formatHours(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
