package media

import "testing"

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("  Plan-To-Watch ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != StatusPlanToWatch {
		t.Fatalf("expected plan-to-watch, got %s", s)
	}
	if _, err := ParseStatus("binging"); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}

func TestStatusKind(t *testing.T) {
	if StatusReading.Kind() != KindManga {
		t.Fatalf("reading should be manga")
	}
	if StatusPlanToWatch.Kind() != KindAnime {
		t.Fatalf("plan-to-watch should be anime")
	}
	if !StatusRead.Terminal() || StatusWatching.Terminal() {
		t.Fatalf("terminal classification wrong")
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		progress, total, want int
	}{
		{-3, 12, 0},
		{5, 12, 5},
		{40, 12, 12},
		{40, 0, 40}, // unknown total, no upper bound
		{-1, 0, 0},
	}
	for _, tc := range cases {
		if got := Clamp(tc.progress, tc.total); got != tc.want {
			t.Fatalf("Clamp(%d, %d) = %d, want %d", tc.progress, tc.total, got, tc.want)
		}
	}
}

func TestCompleted(t *testing.T) {
	e := &Entry{Ref: Ref{Total: 12}, Progress: 12}
	if !e.Completed() {
		t.Fatalf("progress == total should be completed")
	}
	e.Progress = 11
	if e.Completed() {
		t.Fatalf("progress below total should not be completed")
	}
	e = &Entry{Ref: Ref{Total: 0}, Progress: 100}
	if e.Completed() {
		t.Fatalf("unknown total can never be completed")
	}
}

func TestCanonicalID(t *testing.T) {
	if (Ref{ID: 7, AltID: 9}).CanonicalID() != 7 {
		t.Fatalf("primary id should win")
	}
	if (Ref{AltID: 9}).CanonicalID() != 9 {
		t.Fatalf("expected fallback to alternate id")
	}
}
