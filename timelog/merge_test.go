package timelog

import (
	"testing"
	"time"
)

func TestMerge_EmptyInputYieldsEmptyOutput(t *testing.T) {
	if merged := Merge(nil, 0); len(merged) != 0 {
		t.Fatalf("expected no periods, got %d", len(merged))
	}
}

func TestMerge_JoinsTouchingPeriodsAtZeroGap(t *testing.T) {
	periods := []Period{
		mustPeriod(t, "2020-01-01T09:00:00+00:00", 15*time.Minute),
		mustPeriod(t, "2020-01-01T09:15:00+00:00", 15*time.Minute),
	}

	merged := Merge(periods, 0)
	if len(merged) != 1 {
		t.Fatalf("expected 1 merged period, got %d", len(merged))
	}
	if merged[0].Duration() != 30*time.Minute {
		t.Fatalf("expected 30m coverage, got %s", merged[0].Duration())
	}
}

func TestMerge_KeepsSeparateRunsBeyondGap(t *testing.T) {
	periods := []Period{
		mustPeriod(t, "2020-01-01T09:00:00+00:00", 15*time.Minute),
		mustPeriod(t, "2020-01-01T10:00:00+00:00", 15*time.Minute),
		mustPeriod(t, "2020-01-01T10:15:00+00:00", 15*time.Minute),
	}

	merged := Merge(periods, 30*time.Minute-time.Microsecond)
	if len(merged) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(merged))
	}
	// The period that broke the first run starts the second one.
	if !merged[1].Start().Equal(mustParse(t, "2020-01-01T10:00:00+00:00")) {
		t.Fatalf("second run starts at %s", merged[1].Start())
	}
	if merged[1].Duration() != 30*time.Minute {
		t.Fatalf("second run covers %s", merged[1].Duration())
	}
}

func TestMerge_BridgesGapWithinTolerance(t *testing.T) {
	// One empty 15-minute slot between the two periods.
	periods := []Period{
		mustPeriod(t, "2020-01-01T09:00:00+00:00", 15*time.Minute),
		mustPeriod(t, "2020-01-01T09:30:00+00:00", 15*time.Minute),
	}

	merged := Merge(periods, 30*time.Minute-time.Microsecond)
	if len(merged) != 1 {
		t.Fatalf("expected bridged run, got %d periods", len(merged))
	}
	if merged[0].Duration() != 45*time.Minute {
		t.Fatalf("expected 45m span, got %s", merged[0].Duration())
	}
}

func TestMerge_NegativeGapRequiresOverlap(t *testing.T) {
	touching := []Period{
		mustPeriod(t, "2020-01-01T09:00:00+00:00", 15*time.Minute),
		mustPeriod(t, "2020-01-01T09:15:00+00:00", 15*time.Minute),
	}
	overlapping := []Period{
		mustPeriod(t, "2020-01-01T09:00:00+00:00", 15*time.Minute),
		mustPeriod(t, "2020-01-01T09:05:00+00:00", 15*time.Minute),
	}

	if merged := Merge(touching, -5*time.Minute); len(merged) != 2 {
		t.Fatalf("touching periods must not merge at negative gap, got %d", len(merged))
	}
	if merged := Merge(overlapping, -5*time.Minute); len(merged) != 1 {
		t.Fatalf("10m overlap must merge at -5m gap, got %d periods", len(merged))
	}
}

func TestMerge_ContainedPeriodLeavesAccumulatorUnchanged(t *testing.T) {
	periods := []Period{
		mustPeriod(t, "2020-01-01T09:00:00+00:00", 2*time.Hour),
		mustPeriod(t, "2020-01-01T09:30:00+00:00", 15*time.Minute),
	}

	merged := Merge(periods, 0)
	if len(merged) != 1 {
		t.Fatalf("expected 1 period, got %d", len(merged))
	}
	if !merged[0].Equal(periods[0]) {
		t.Fatalf("containing period changed: %s", merged[0])
	}
}

func TestMerge_OutputIsMaximal(t *testing.T) {
	periods := []Period{
		mustPeriod(t, "2020-01-01T09:00:00+00:00", 15*time.Minute),
		mustPeriod(t, "2020-01-01T09:20:00+00:00", 15*time.Minute),
		mustPeriod(t, "2020-01-01T11:00:00+00:00", 15*time.Minute),
		mustPeriod(t, "2020-01-01T13:00:00+00:00", 15*time.Minute),
		mustPeriod(t, "2020-01-01T13:10:00+00:00", 15*time.Minute),
	}
	gap := 10 * time.Minute

	merged := Merge(periods, gap)
	for i := 1; i < len(merged); i++ {
		previous, next := merged[i-1], merged[i]
		if !previous.End().Add(gap).Before(next.Start()) {
			t.Fatalf("output periods %s and %s still satisfy the merge condition", previous, next)
		}
	}
}

func TestMerge_ConservesCoverageAtZeroGap(t *testing.T) {
	periods := []Period{
		mustPeriod(t, "2020-01-01T09:00:00+00:00", 30*time.Minute),
		mustPeriod(t, "2020-01-01T09:15:00+00:00", 30*time.Minute),
		mustPeriod(t, "2020-01-01T10:30:00+00:00", 15*time.Minute),
	}
	// Union of the inputs: [09:00, 09:45) plus [10:30, 10:45).
	wantCovered := 60 * time.Minute

	covered := time.Duration(0)
	for _, p := range Merge(periods, 0) {
		covered += p.Duration()
	}
	if covered != wantCovered {
		t.Fatalf("expected %s covered, got %s", wantCovered, covered)
	}
}

func TestCombine_SortsBeforeMerging(t *testing.T) {
	periods := []Period{
		mustPeriod(t, "2020-01-01T09:30:00+00:00", 15*time.Minute),
		mustPeriod(t, "2020-01-01T09:00:00+00:00", 15*time.Minute),
		mustPeriod(t, "2020-01-01T09:15:00+00:00", 15*time.Minute),
	}

	merged := Combine(periods, 0)
	if len(merged) != 1 {
		t.Fatalf("expected 1 merged period, got %d", len(merged))
	}
	if !merged[0].Start().Equal(mustParse(t, "2020-01-01T09:00:00+00:00")) || merged[0].Duration() != 45*time.Minute {
		t.Fatalf("unexpected merged period %s", merged[0])
	}

	// The input slice order is untouched.
	if !periods[0].Start().Equal(mustParse(t, "2020-01-01T09:30:00+00:00")) {
		t.Fatal("combine mutated its input")
	}
}
