package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"timelog/stats"
)

// ReportStore persists one computed report snapshot to a SQLite file. Saving
// replaces any previous snapshot; the store never accumulates history.
type ReportStore struct {
	db *sql.DB
}

var ErrStatNotFound = errors.New("statistic not found in snapshot")

func OpenSQLite(path string) (*ReportStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &ReportStore{db: db}
	if err := store.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *ReportStore) Close() error {
	return s.db.Close()
}

func (s *ReportStore) ensureSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS stat_rows (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	stat TEXT NOT NULL,
	label TEXT NOT NULL,
	hours REAL NOT NULL,
	position INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS weekday_rows (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	label TEXT NOT NULL,
	avg_hours REAL NOT NULL,
	sum_hours REAL NOT NULL,
	position INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS sessions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	start_datetime TEXT NOT NULL,
	end_datetime TEXT NOT NULL,
	hours REAL NOT NULL
);
`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	return nil
}

// SaveReport writes the report snapshot in one transaction, replacing the
// previous snapshot if the file already held one.
func (s *ReportStore) SaveReport(report *stats.Report) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := saveReportTx(tx, report); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}
	return nil
}

func saveReportTx(tx *sql.Tx, report *stats.Report) error {
	for _, table := range []string{"stat_rows", "weekday_rows", "sessions"} {
		if _, err := tx.Exec("DELETE FROM " + table + ";"); err != nil {
			return fmt.Errorf("clear previous snapshot from %s: %w", table, err)
		}
	}

	insertStat, err := tx.Prepare(`INSERT INTO stat_rows (stat, label, hours, position) VALUES (?, ?, ?, ?);`)
	if err != nil {
		return fmt.Errorf("prepare stat insert: %w", err)
	}
	defer insertStat.Close()

	for _, table := range []*stats.Table{report.Months, report.Weeks, report.Days} {
		for position, row := range table.Rows {
			if _, err := insertStat.Exec(table.Name, row.Label, row.Hours, position); err != nil {
				return fmt.Errorf("insert %s row %q: %w", table.Name, row.Label, err)
			}
		}
	}

	insertWeekday, err := tx.Prepare(`INSERT INTO weekday_rows (label, avg_hours, sum_hours, position) VALUES (?, ?, ?, ?);`)
	if err != nil {
		return fmt.Errorf("prepare weekday insert: %w", err)
	}
	defer insertWeekday.Close()

	for position, row := range report.DaysOfWeek {
		if _, err := insertWeekday.Exec(row.Label, row.Avg, row.Sum, position); err != nil {
			return fmt.Errorf("insert weekday row %q: %w", row.Label, err)
		}
	}

	if report.HasSession {
		session := report.Session
		_, err := tx.Exec(
			`INSERT INTO sessions (start_datetime, end_datetime, hours) VALUES (?, ?, ?);`,
			session.Start().Format(time.RFC3339),
			session.End().Format(time.RFC3339),
			session.Hours(),
		)
		if err != nil {
			return fmt.Errorf("insert session row: %w", err)
		}
	}

	return nil
}

// ListStatRows returns the saved rows of one tabular statistic in snapshot
// order. ErrStatNotFound is returned when the snapshot has no such statistic.
func (s *ReportStore) ListStatRows(stat string) ([]stats.Row, error) {
	rows, err := s.db.Query(
		`SELECT label, hours FROM stat_rows WHERE stat = ? ORDER BY position;`, stat)
	if err != nil {
		return nil, fmt.Errorf("query stat rows: %w", err)
	}
	defer rows.Close()

	result := make([]stats.Row, 0)
	for rows.Next() {
		var row stats.Row
		if err := rows.Scan(&row.Label, &row.Hours); err != nil {
			return nil, fmt.Errorf("scan stat row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stat rows: %w", err)
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrStatNotFound, stat)
	}

	return result, nil
}
