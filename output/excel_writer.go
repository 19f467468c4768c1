package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"timelog/stats"
)

type ExcelWriter struct{}

// Write renders the report as a workbook with one sheet per statistic.
func (w *ExcelWriter) Write(path string, report *stats.Report) error {
	file := excelize.NewFile()
	defer file.Close()

	first := true
	for _, table := range []*stats.Table{report.Months, report.Weeks, report.Days} {
		rows := make([][]interface{}, 0, len(table.Rows)+1)
		rows = append(rows, []interface{}{table.Name, "Hours"})
		for _, row := range table.Rows {
			rows = append(rows, []interface{}{row.Label, row.Hours})
		}
		if err := writeSheet(file, table.Name, rows, first); err != nil {
			return err
		}
		first = false
	}

	weekdayRows := make([][]interface{}, 0, len(report.DaysOfWeek)+1)
	weekdayRows = append(weekdayRows, []interface{}{"Weekday", "Avg", "Sum"})
	for _, row := range report.DaysOfWeek {
		weekdayRows = append(weekdayRows, []interface{}{row.Label, row.Avg, row.Sum})
	}
	if err := writeSheet(file, "DaysOfWeek", weekdayRows, false); err != nil {
		return err
	}

	sessionRows := [][]interface{}{{"Start", "End", "Hours"}}
	if report.HasSession {
		session := report.Session
		sessionRows = append(sessionRows, []interface{}{
			session.Start().Format(timestampFormat),
			session.End().Format(timestampFormat),
			session.Hours(),
		})
	}
	if err := writeSheet(file, "LongestSession", sessionRows, false); err != nil {
		return err
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save excel output %s: %w", path, err)
	}

	return nil
}

func writeSheet(file *excelize.File, name string, rows [][]interface{}, reuseDefault bool) error {
	if reuseDefault {
		if err := file.SetSheetName(file.GetSheetName(0), name); err != nil {
			return fmt.Errorf("rename excel sheet %s: %w", name, err)
		}
	} else {
		if _, err := file.NewSheet(name); err != nil {
			return fmt.Errorf("create excel sheet %s: %w", name, err)
		}
	}

	for i, row := range rows {
		for col, value := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+1)
			if err := file.SetCellValue(name, cell, value); err != nil {
				return fmt.Errorf("set excel value %s!%s: %w", name, cell, err)
			}
		}
	}
	return nil
}
