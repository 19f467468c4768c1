package timeutil

import "time"

// StartOfDay returns midnight of value's own calendar day, in its location.
func StartOfDay(value time.Time) time.Time {
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, value.Location())
}

func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// ISOWeekday returns the ISO-8601 weekday number of value, Monday=1 through
// Sunday=7.
func ISOWeekday(value time.Time) int {
	weekday := int(value.Weekday())
	if weekday == 0 {
		return 7
	}
	return weekday
}

// Today returns midnight of the current UTC day.
func Today() time.Time {
	return StartOfDay(time.Now().UTC())
}
