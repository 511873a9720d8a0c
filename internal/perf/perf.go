// Package perf collects render and animation timings when DAYTONE_PROFILE
// is set, and periodically writes a summary to the log.
package perf

import (
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/daytone/daytone/internal/logging"
)

const (
	sampleWindow      = 128
	defaultIntervalMs = 5000
)

// Stat summarizes the samples recorded under one name since the last
// snapshot.
type Stat struct {
	Name  string
	Count int64
	Avg   time.Duration
	Max   time.Duration
	P95   time.Duration
}

// Counter is a named event count since the last snapshot.
type Counter struct {
	Name  string
	Value int64
}

type series struct {
	count   int64
	total   time.Duration
	max     time.Duration
	samples [sampleWindow]time.Duration
	n       int
}

var (
	enabled     atomic.Bool
	logInterval atomic.Int64
	lastLog     atomic.Int64

	mu       sync.Mutex
	stats    = map[string]*series{}
	counters = map[string]int64{}
)

func init() {
	enabled.Store(envEnabled())
	logInterval.Store(int64(envInterval()))
}

// Enabled reports whether collection is on.
func Enabled() bool { return enabled.Load() }

// Time returns a function that records the time elapsed until it is called.
func Time(name string) func() {
	if !enabled.Load() {
		return func() {}
	}
	start := time.Now()
	return func() { Record(name, time.Since(start)) }
}

// Record adds one duration sample.
func Record(name string, d time.Duration) {
	if !enabled.Load() {
		return
	}
	mu.Lock()
	s, ok := stats[name]
	if !ok {
		s = &series{}
		stats[name] = s
	}
	s.count++
	s.total += d
	s.max = max(s.max, d)
	s.samples[s.n%sampleWindow] = d
	s.n++
	mu.Unlock()
	maybeLog()
}

// Count adds delta to a named counter.
func Count(name string, delta int64) {
	if !enabled.Load() {
		return
	}
	mu.Lock()
	counters[name] += delta
	mu.Unlock()
	maybeLog()
}

// Snapshot returns everything recorded since the last snapshot, sorted by
// name, and resets it.
func Snapshot() ([]Stat, []Counter) {
	mu.Lock()
	defer mu.Unlock()

	out := make([]Stat, 0, len(stats))
	for name, s := range stats {
		n := min(s.n, sampleWindow)
		out = append(out, Stat{
			Name:  name,
			Count: s.count,
			Avg:   s.total / time.Duration(s.count),
			Max:   s.max,
			P95:   p95(s.samples[:n]),
		})
	}
	cs := make([]Counter, 0, len(counters))
	for name, v := range counters {
		cs = append(cs, Counter{Name: name, Value: v})
	}
	stats = map[string]*series{}
	counters = map[string]int64{}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	sort.Slice(cs, func(i, j int) bool { return cs[i].Name < cs[j].Name })
	return out, cs
}

// Flush logs and resets the current figures.
func Flush(reason string) {
	if !enabled.Load() {
		return
	}
	write("PERF SUMMARY "+reason, Snapshot)
}

func maybeLog() {
	interval := time.Duration(logInterval.Load())
	if interval <= 0 {
		return
	}
	now := time.Now().UnixNano()
	last := lastLog.Load()
	if last != 0 && time.Duration(now-last) < interval {
		return
	}
	if !lastLog.CompareAndSwap(last, now) {
		return
	}
	write("PERF", Snapshot)
}

func write(prefix string, snapshot func() ([]Stat, []Counter)) {
	prefix = strings.TrimSpace(prefix)
	ss, cs := snapshot()
	for _, s := range ss {
		logging.Info("%s %s count=%d avg=%s p95=%s max=%s", prefix, s.Name, s.Count, s.Avg, s.P95, s.Max)
	}
	for _, c := range cs {
		logging.Info("%s %s count=%d", prefix, c.Name, c.Value)
	}
}

func p95(samples []time.Duration) time.Duration {
	if len(samples) == 0 {
		return 0
	}
	window := append([]time.Duration(nil), samples...)
	sort.Slice(window, func(i, j int) bool { return window[i] < window[j] })
	pos := int(math.Ceil(0.95*float64(len(window)))) - 1
	return window[max(0, min(pos, len(window)-1))]
}

func envEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("DAYTONE_PROFILE"))) {
	case "", "0", "false", "no":
		return false
	}
	return true
}

func envInterval() time.Duration {
	ms := defaultIntervalMs
	if raw := strings.TrimSpace(os.Getenv("DAYTONE_PROFILE_INTERVAL_MS")); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			ms = v
		}
	}
	return time.Duration(ms) * time.Millisecond
}
