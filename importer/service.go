package importer

import (
	"time"

	"timelog/timelog"
)

// Result carries the outcome of one ingest run.
type Result struct {
	LinesRead int
	// Periods is the canonical working set: one period per occupied grid
	// slot, deduplicated and sorted ascending by start.
	Periods []timelog.Period
}

// Run reads the log file at path and produces the canonical period sequence:
// every line is parsed into an instant, quantized onto the resolution grid,
// and the resulting slots are deduplicated and sorted by start. The first
// unparseable line aborts the whole run.
func Run(path string, resolution time.Duration) (*Result, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return nil, err
	}

	instants, err := ParseTimestamps(lines)
	if err != nil {
		return nil, err
	}

	periods := make([]timelog.Period, 0, len(instants))
	for _, instant := range instants {
		periods = append(periods, timelog.Quantize(instant, resolution))
	}
	periods = timelog.Dedupe(periods)
	timelog.SortByStart(periods)

	return &Result{LinesRead: len(lines), Periods: periods}, nil
}
