package profiling

import (
	"strings"
	"testing"
	"time"
)

func TestTopNOrdersByDuration(t *testing.T) {
	Reset()
	mu.Lock()
	frameTotals["a"] = 2 * time.Millisecond
	frameTotals["b"] = 4200 * time.Microsecond
	frameTotals["c"] = time.Millisecond
	mu.Unlock()

	if got := TopN(2); got != "b:4.2ms, a:2ms" {
		t.Errorf("Unexpected TopN: %q", got)
	}
	if got := TopN(10); strings.Count(got, ",") != 2 {
		t.Errorf("Expected all three entries, got %q", got)
	}

	ResetFrame()
	if len(Snapshot()) != 0 {
		t.Errorf("Expected empty snapshot after ResetFrame")
	}
}

func TestTrackAccumulates(t *testing.T) {
	Reset()
	Track("x")()
	Track("x")()
	if _, ok := Snapshot()["x"]; !ok {
		t.Errorf("Expected x to be tracked")
	}
}

func TestSummary(t *testing.T) {
	Reset()
	if Summary() != "no frames rendered" {
		t.Errorf("Unexpected empty summary: %q", Summary())
	}
	FrameDone(10 * time.Millisecond)
	FrameDone(20 * time.Millisecond)
	if got := Summary(); got != "2 frames, avg 15ms, worst 20ms" {
		t.Errorf("Unexpected summary: %q", got)
	}
}
