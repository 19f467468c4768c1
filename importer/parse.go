package importer

import (
	"fmt"
	"regexp"
	"time"
)

// timestampLayout accepts the expected grammar once the offset colon has been
// stripped: YYYY-MM-DDTHH:MM:SS±HHMM.
const timestampLayout = "2006-01-02T15:04:05-0700"

// tzColonPattern matches a full timestamp whose UTC offset carries a colon.
// The colon is only removed when it sits in this unambiguous position.
var tzColonPattern = regexp.MustCompile(
	`^(\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}[-+]\d{2}):(\d{2})$`,
)

// ParseError reports the first input line that did not match the expected
// timestamp grammar.
type ParseError struct {
	Line  int    // 1-based line number
	Input string // the offending line, already trimmed
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse timestamp on line %d (%q): %v", e.Line, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// normalizeOffsetColon removes the colon inside the UTC offset suffix so the
// line can be parsed with a fixed %z-style layout. Lines not matching the
// colon variant are returned unchanged.
func normalizeOffsetColon(line string) string {
	return tzColonPattern.ReplaceAllString(line, "$1$2")
}

// ParseTimestamps converts trimmed input lines into offset-aware instants, in
// input order. It fails with a *ParseError on the first line that does not
// conform to the grammar even after offset-colon normalization; blank lines
// are such failures. No sortedness of the input is assumed.
func ParseTimestamps(lines []string) ([]time.Time, error) {
	instants := make([]time.Time, 0, len(lines))
	for i, line := range lines {
		parsed, err := time.Parse(timestampLayout, normalizeOffsetColon(line))
		if err != nil {
			return nil, &ParseError{Line: i + 1, Input: line, Err: err}
		}
		instants = append(instants, parsed)
	}
	return instants, nil
}
