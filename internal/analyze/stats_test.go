package analyze

import (
	"testing"
	"time"
)

func TestLLMStats_EmptySnapshot(t *testing.T) {
	s := NewLLMStats(time.Hour)
	snap := s.Snapshot()
	if snap.Count != 0 || snap.AvgMs != 0 {
		t.Errorf("expected zero snapshot, got %+v", snap)
	}
}

func TestLLMStats_Percentiles(t *testing.T) {
	s := NewLLMStats(time.Hour)
	for _, ms := range []int64{100, 200, 300, 400, 500} {
		s.Record(ms, false)
	}

	snap := s.Snapshot()
	if snap.Count != 5 {
		t.Fatalf("count = %d, want 5", snap.Count)
	}
	if snap.MinMs != 100 || snap.MaxMs != 500 {
		t.Errorf("min/max = %d/%d", snap.MinMs, snap.MaxMs)
	}
	if snap.AvgMs != 300 {
		t.Errorf("avg = %f, want 300", snap.AvgMs)
	}
	if snap.P50Ms != 300 {
		t.Errorf("p50 = %f, want 300", snap.P50Ms)
	}
	if snap.P95Ms != 480 {
		t.Errorf("p95 = %f, want 480", snap.P95Ms)
	}
	if snap.P99Ms != 496 {
		t.Errorf("p99 = %f, want 496", snap.P99Ms)
	}
}

func TestLLMStats_CountsErrors(t *testing.T) {
	s := NewLLMStats(time.Hour)
	s.Record(100, false)
	s.Record(200, true)
	s.Record(300, true)

	snap := s.Snapshot()
	if snap.Count != 3 || snap.Errors != 2 {
		t.Errorf("count/errors = %d/%d, want 3/2", snap.Count, snap.Errors)
	}
}

func TestLLMStats_NegativeClampedToZero(t *testing.T) {
	s := NewLLMStats(time.Hour)
	s.Record(-50, false)
	snap := s.Snapshot()
	if snap.MinMs != 0 {
		t.Errorf("min = %d, want 0", snap.MinMs)
	}
}

func TestPercentile_Bounds(t *testing.T) {
	values := []int64{10, 20, 30}
	if got := percentile(values, 0); got != 10 {
		t.Errorf("p0 = %f, want 10", got)
	}
	if got := percentile(values, 100); got != 30 {
		t.Errorf("p100 = %f, want 30", got)
	}
	if got := percentile(nil, 50); got != 0 {
		t.Errorf("empty = %f, want 0", got)
	}
}
