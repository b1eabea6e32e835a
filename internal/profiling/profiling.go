package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Per-frame CPU timings plus whole-run frame statistics. Safe to read from
// other goroutines, e.g. a shutdown hook.

var (
	mu          sync.Mutex
	frameTotals = make(map[string]time.Duration)

	frames     int
	frameTime  time.Duration
	worstFrame time.Duration
)

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer profiling.Track("subsystem.Operation")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		frameTotals[name] += d
		mu.Unlock()
	}
}

// ResetFrame clears current per-frame totals. Call at the start of each frame.
func ResetFrame() {
	mu.Lock()
	clear(frameTotals)
	mu.Unlock()
}

// Snapshot returns a copy of current per-frame totals.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(frameTotals))
	for k, v := range frameTotals {
		out[k] = v
	}
	return out
}

// TopN formats top N durations from the current frame totals.
// Example: "renderer.Render:4.2ms, cube.Render:2.1ms"
func TopN(n int) string {
	ss := Snapshot()
	type pair struct {
		name string
		dur  time.Duration
	}
	list := make([]pair, 0, len(ss))
	for k, v := range ss {
		list = append(list, pair{name: k, dur: v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].dur == list[j].dur {
			return list[i].name < list[j].name
		}
		return list[i].dur > list[j].dur
	})
	if n > len(list) {
		n = len(list)
	}
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		parts = append(parts, list[i].name+":"+formatMs(list[i].dur))
	}
	return strings.Join(parts, ", ")
}

// FrameDone records the duration of a completed frame.
func FrameDone(d time.Duration) {
	mu.Lock()
	frames++
	frameTime += d
	if d > worstFrame {
		worstFrame = d
	}
	mu.Unlock()
}

// Summary describes every frame recorded so far.
func Summary() string {
	mu.Lock()
	defer mu.Unlock()
	if frames == 0 {
		return "no frames rendered"
	}
	avg := frameTime / time.Duration(frames)
	return fmt.Sprintf("%d frames, avg %s, worst %s", frames, formatMs(avg), formatMs(worstFrame))
}

// Reset forgets all per-frame and whole-run statistics.
func Reset() {
	mu.Lock()
	clear(frameTotals)
	frames, frameTime, worstFrame = 0, 0, 0
	mu.Unlock()
}

func formatMs(d time.Duration) string {
	ms := float64(d.Microseconds()) / 1000.0
	s := fmt.Sprintf("%.1f", ms)
	return strings.TrimSuffix(s, ".0") + "ms"
}
