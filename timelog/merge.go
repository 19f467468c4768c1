package timelog

import "time"

// Merge collapses a start-sorted sequence of periods into maximal contiguous
// runs. Two neighbours merge when first.End() + maxGap >= second.Start(), so a
// zero gap merges touching or overlapping periods, a positive gap bridges
// breaks up to that size, and a negative gap demands an overlap larger than
// its magnitude. A period wholly contained in the accumulator leaves it
// unchanged.
//
// The input must already be sorted by start; Merge does not re-sort. Use
// Combine when sortedness is not guaranteed.
func Merge(periods []Period, maxGap time.Duration) []Period {
	if len(periods) == 0 {
		return nil
	}

	merged := make([]Period, 0, len(periods))
	current := periods[0]
	for _, next := range periods[1:] {
		first, second := current, next
		if next.start.Before(current.start) {
			first, second = next, current
		}
		if !first.End().Add(maxGap).Before(second.start) {
			end := first.End()
			if second.End().After(end) {
				end = second.End()
			}
			current = Period{start: first.start, duration: end.Sub(first.start)}
			continue
		}
		merged = append(merged, current)
		current = next
	}
	return append(merged, current)
}

// Combine sorts a copy of the periods by start and merges them. This is the
// defensive variant for callers that cannot guarantee sorted input.
func Combine(periods []Period, maxGap time.Duration) []Period {
	if len(periods) == 0 {
		return nil
	}
	sorted := make([]Period, len(periods))
	copy(sorted, periods)
	SortByStart(sorted)
	return Merge(sorted, maxGap)
}
