package uihelpers

import "testing"

func TestComputeTrackWidth(t *testing.T) {
	cases := []struct{ in, want int }{
		{100, 400},
		{400, 400},
		{1000, 1000},
		{1600, 1600},
		{5000, 1600},
	}
	for _, c := range cases {
		if got := ComputeTrackWidth(c.in); got != c.want {
			t.Fatalf("ComputeTrackWidth(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestComputeOverviewHeight(t *testing.T) {
	if got := ComputeOverviewHeight(400); got != 100 {
		t.Fatalf("min clamp: got %d", got)
	}
	if got := ComputeOverviewHeight(1600); got != 200 {
		t.Fatalf("max clamp: got %d", got)
	}
	if got := ComputeOverviewHeight(900); got != 150 {
		t.Fatalf("mid: got %d", got)
	}
}

func TestFormatHoverSummary(t *testing.T) {
	if got := FormatHoverSummary(nil, 3); got != "" {
		t.Fatalf("empty input should yield empty string, got %q", got)
	}
	if got := FormatHoverSummary([]string{"1-100-A-T"}, 3); got != "1-100-A-T" {
		t.Fatalf("single: got %q", got)
	}
	got := FormatHoverSummary([]string{"a", "b", "c", "d", "e"}, 3)
	if got != "a, b, c (+2 more)" {
		t.Fatalf("capped: got %q", got)
	}
}
