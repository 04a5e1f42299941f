package streak

import "testing"

func TestCompute_Empty(t *testing.T) {
	if got := Compute(nil); got != 0 {
		t.Errorf("Expected streak 0 for no dates, got %d", got)
	}
	if got := Compute([]string{}); got != 0 {
		t.Errorf("Expected streak 0 for empty dates, got %d", got)
	}
}

func TestCompute_SingleDay(t *testing.T) {
	if got := Compute([]string{"2025-03-10"}); got != 1 {
		t.Errorf("Expected streak 1 for a single date, got %d", got)
	}
}

func TestCompute_ConsecutiveRun(t *testing.T) {
	dates := []string{"2025-03-08", "2025-03-09", "2025-03-10"}
	if got := Compute(dates); got != 3 {
		t.Errorf("Expected streak 3 for three consecutive days, got %d", got)
	}
}

func TestCompute_UnsortedInput(t *testing.T) {
	dates := []string{"2025-03-10", "2025-03-08", "2025-03-09"}
	if got := Compute(dates); got != 3 {
		t.Errorf("Expected streak 3 regardless of input order, got %d", got)
	}
}

func TestCompute_GapBreaksRun(t *testing.T) {
	// 2025-03-07 is separated from the 09/10 pair by a missing 08
	dates := []string{"2025-03-07", "2025-03-09", "2025-03-10"}
	if got := Compute(dates); got != 2 {
		t.Errorf("Expected streak 2 when a gap breaks the run, got %d", got)
	}
}

func TestCompute_EndsAtMostRecentRecordedDay(t *testing.T) {
	// The run ends at the newest recorded date even if that date is long
	// past. There is no anchoring to the caller's today.
	dates := []string{"2020-01-01", "2020-01-02", "2020-01-03"}
	if got := Compute(dates); got != 3 {
		t.Errorf("Expected a stale run to still count 3, got %d", got)
	}
}

func TestCompute_DuplicatesIgnored(t *testing.T) {
	dates := []string{"2025-03-09", "2025-03-09", "2025-03-10"}
	if got := Compute(dates); got != 2 {
		t.Errorf("Expected duplicates to count once, got %d", got)
	}
}

func TestCompute_UnparseableEntriesIgnored(t *testing.T) {
	dates := []string{"not-a-date", "2025-03-10", ""}
	if got := Compute(dates); got != 1 {
		t.Errorf("Expected malformed entries to be skipped, got %d", got)
	}

	if got := Compute([]string{"garbage", "???"}); got != 0 {
		t.Errorf("Expected streak 0 when nothing parses, got %d", got)
	}
}

func TestCompute_MonthBoundary(t *testing.T) {
	dates := []string{"2025-02-28", "2025-03-01"}
	if got := Compute(dates); got != 2 {
		t.Errorf("Expected adjacency across a month boundary, got %d", got)
	}
}
