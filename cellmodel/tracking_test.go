package cellmodel

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackingHistory(t *testing.T) {
	p := NewPredictor()
	assert.Empty(t, p.TrackingHistory())

	for i := 0; i < 3; i++ {
		p.RecordTracking(TrackingSample{Time: float64(i), CellSize: 0.001})
	}
	history := p.TrackingHistory()
	assert.Equal(t, 3, len(history))
	assert.Equal(t, 0., history[0].Time)
	assert.Equal(t, 2., history[2].Time)
}

func TestTrackingEviction(t *testing.T) {
	p := NewPredictor()
	n := TrackingCapacity + 250
	for i := 0; i < n; i++ {
		p.RecordTracking(TrackingSample{Time: float64(i)})
	}
	history := p.TrackingHistory()
	assert.Equal(t, TrackingCapacity, len(history))
	// Oldest surviving sample is the first one not evicted
	assert.Equal(t, float64(n-TrackingCapacity), history[0].Time)
	assert.Equal(t, float64(n-1), history[len(history)-1].Time)
}

func TestTrackingConcurrency(t *testing.T) {
	p := NewPredictor()
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				p.RecordTracking(TrackingSample{Time: float64(i)})
				_ = p.TrackingHistory()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, TrackingCapacity, len(p.TrackingHistory()))
}
