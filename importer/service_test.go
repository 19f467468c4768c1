package importer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeLog(t *testing.T, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "log.txt")
	if err := os.WriteFile(path, []byte(lines), 0o600); err != nil {
		t.Fatalf("write log file: %v", err)
	}
	return path
}

func TestRun_CollapsesSameSlotAndSortsByStart(t *testing.T) {
	// Three unsorted timestamps inside one 15-minute slot plus one later slot.
	path := writeLog(t, "2020-01-01T09:00:00+00:00\n2020-01-01T09:10:00+00:00\n2020-01-01T09:05:00+00:00\n2020-01-01T08:30:00+00:00\n")

	result, err := Run(path, 15*time.Minute)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if result.LinesRead != 4 {
		t.Fatalf("expected 4 lines read, got %d", result.LinesRead)
	}
	if len(result.Periods) != 2 {
		t.Fatalf("expected 2 canonical periods, got %d", len(result.Periods))
	}

	wantFirst := time.Date(2020, 1, 1, 8, 30, 0, 0, time.UTC)
	wantSecond := time.Date(2020, 1, 1, 9, 0, 0, 0, time.UTC)
	if !result.Periods[0].Start().Equal(wantFirst) {
		t.Fatalf("expected first period at %s, got %s", wantFirst, result.Periods[0].Start())
	}
	if !result.Periods[1].Start().Equal(wantSecond) {
		t.Fatalf("expected second period at %s, got %s", wantSecond, result.Periods[1].Start())
	}
	for _, p := range result.Periods {
		if p.Duration() != 15*time.Minute {
			t.Fatalf("expected 15m slots, got %s", p.Duration())
		}
	}
}

func TestRun_TrimsSurroundingWhitespace(t *testing.T) {
	path := writeLog(t, "  2020-01-01T09:00:00+00:00\t\n")

	result, err := Run(path, 15*time.Minute)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(result.Periods) != 1 {
		t.Fatalf("expected 1 period, got %d", len(result.Periods))
	}
}

func TestRun_AbortsOnBlankLine(t *testing.T) {
	path := writeLog(t, "2020-01-01T09:00:00+00:00\n\n2020-01-01T10:00:00+00:00\n")

	_, err := Run(path, 15*time.Minute)
	if err == nil {
		t.Fatal("expected parse error for blank line")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if parseErr.Line != 2 {
		t.Fatalf("expected failure on line 2, got %d", parseErr.Line)
	}
}

func TestRun_MissingFileFails(t *testing.T) {
	_, err := Run(filepath.Join(t.TempDir(), "nope.txt"), 15*time.Minute)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped not-exist error, got %v", err)
	}
}

func TestRun_EmptyFileYieldsEmptyWorkingSet(t *testing.T) {
	path := writeLog(t, "")

	result, err := Run(path, 15*time.Minute)
	if err != nil {
		t.Fatalf("empty file must not be an error: %v", err)
	}
	if result.LinesRead != 0 || len(result.Periods) != 0 {
		t.Fatalf("expected empty result, got %d lines / %d periods", result.LinesRead, len(result.Periods))
	}
}
