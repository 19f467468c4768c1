package output

import (
	"encoding/csv"
	"fmt"
	"os"

	"timelog/stats"
)

type CSVWriter struct{}

// Write renders the report as one CSV file with a section per statistic,
// separated by blank rows.
func (w *CSVWriter) Write(path string, report *stats.Report) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv output %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	for _, table := range []*stats.Table{report.Months, report.Weeks, report.Days} {
		if err := writeTableSection(writer, table); err != nil {
			return err
		}
	}

	if err := writer.Write([]string{"DaysOfWeek", "avg", "sum"}); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}
	for _, row := range report.DaysOfWeek {
		record := []string{row.Label, formatHours(row.Avg), formatHours(row.Sum)}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	if err := writer.Write([]string{}); err != nil {
		return fmt.Errorf("write csv separator: %w", err)
	}

	if err := writer.Write([]string{"LongestSession", "start", "end", "hours"}); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}
	if report.HasSession {
		session := report.Session
		record := []string{
			"longest",
			session.Start().Format(timestampFormat),
			session.End().Format(timestampFormat),
			formatHours(session.Hours()),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv output: %w", err)
	}

	return nil
}

func writeTableSection(writer *csv.Writer, table *stats.Table) error {
	if err := writer.Write([]string{table.Name, "hours"}); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}
	for _, row := range table.Rows {
		if err := writer.Write([]string{row.Label, formatHours(row.Hours)}); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	if err := writer.Write([]string{}); err != nil {
		return fmt.Errorf("write csv separator: %w", err)
	}
	return nil
}
