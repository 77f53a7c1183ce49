package cellmodel

import (
	"sync"
)

// TrackingCapacity bounds the cellular tracking history; the oldest sample
// is evicted once the buffer is full.
const TrackingCapacity = 1000

// TrackingSample is one cellular-tracking update retained for
// introspection of past analyses.
type TrackingSample struct {
	Time       float64 `json:"time"`       // [s]
	CellSize   float64 `json:"cellSize"`   // [m]
	WaveSpeed  float64 `json:"waveSpeed"`  // [m/s]
	Regularity float64 `json:"regularity"` // [0,1]
}

// trackingRing is a fixed-capacity ring buffer. The predictor may be shared
// between concurrent analysis requests, so writes and snapshots are guarded
// by a mutex; everything else in the predictor is read-only after
// construction.
type trackingRing struct {
	mu    sync.Mutex
	buf   [TrackingCapacity]TrackingSample
	head  int // next write position
	count int
}

func (t *trackingRing) push(s TrackingSample) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buf[t.head] = s
	t.head = (t.head + 1) % TrackingCapacity
	if t.count < TrackingCapacity {
		t.count++
	}
}

func (t *trackingRing) snapshot() []TrackingSample {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]TrackingSample, t.count)
	start := t.head - t.count
	if start < 0 {
		start += TrackingCapacity
	}
	for i := 0; i < t.count; i++ {
		out[i] = t.buf[(start+i)%TrackingCapacity]
	}
	return out
}

// RecordTracking appends a tracking sample, evicting the oldest entry when
// the buffer is at capacity.
func (p *Predictor) RecordTracking(s TrackingSample) {
	p.tracking.push(s)
}

// TrackingHistory returns the retained samples, oldest first.
func (p *Predictor) TrackingHistory() []TrackingSample {
	return p.tracking.snapshot()
}
