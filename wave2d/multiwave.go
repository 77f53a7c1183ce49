package wave2d

import (
	"math"
	"sort"

	"github.com/notargets/gorde/rde"
)

// Wave pattern classifications
const (
	PatternSingleWave      = "single_wave"
	PatternCoRotating      = "co_rotating"
	PatternMixed           = "mixed"
	PatternCounterRotating = "counter_rotating"
)

// collisionSpeedThreshold flags two waves as a collision pair when their
// mean propagation speeds are closer than this. A proximity heuristic, not
// a time-to-collision computation: near-equal speeds mean neither wave can
// outrun a disturbance between them.
const collisionSpeedThreshold = 50.0 // [m/s]

// WaveSpacing is the angular gap from one wave's leading point to the next.
type WaveSpacing struct {
	Theta   float64 `json:"theta"`   // leading point [rad]
	Spacing float64 `json:"spacing"` // to next wave [rad]
}

// CollisionPair indexes two waves flagged as collision candidates.
type CollisionPair struct {
	I int `json:"i"`
	J int `json:"j"`
}

// MultiWaveSystem summarizes the interaction of all waves in the chamber.
// For N ≥ 2 waves there are exactly N spacing entries and they sum to the
// domain angle.
type MultiWaveSystem struct {
	WaveCount int                 `json:"waveCount"`
	Waves     []WavePropagation2D `json:"waves"`

	WaveSpacings   []WaveSpacing `json:"waveSpacings"`
	WavePattern    string        `json:"wavePattern"`
	StabilityIndex float64       `json:"stabilityIndex"` // [0,1]

	SystemFrequency float64         `json:"systemFrequency"` // [Hz]
	CollisionPairs  []CollisionPair `json:"collisionPairs"`
}

// AnalyzeMultiWave classifies the wave pattern from the deviation of the
// angular spacings from the ideal uniform spacing: under 10% of ideal is a
// clean co-rotating mode, under 30% a mixed mode, anything worse is
// treated as counter-rotating. A single wave is always single_wave.
func (e *Engine) AnalyzeMultiWave(g rde.Geometry, chem rde.Chemistry,
	waves []WavePropagation2D) (s MultiWaveSystem) {

	s.WaveCount = len(waves)
	s.Waves = waves
	if s.WaveCount == 0 || g.DomainAngle <= 0 {
		return
	}

	meanSpeed := 0.0
	for _, w := range waves {
		meanSpeed += w.PropagationSpeed
	}
	meanSpeed /= float64(s.WaveCount)
	if c := g.MeanCircumference(); c > 0 {
		s.SystemFrequency = meanSpeed * float64(s.WaveCount) / c
	}

	if s.WaveCount == 1 {
		s.WavePattern = PatternSingleWave
		s.StabilityIndex = 0.8
		return
	}

	s.WaveSpacings = waveSpacings(g, waves)

	ideal := g.DomainAngle / float64(s.WaveCount)
	deviation := 0.0
	for _, sp := range s.WaveSpacings {
		deviation += math.Abs(sp.Spacing - ideal)
	}
	deviation /= float64(len(s.WaveSpacings))

	switch {
	case deviation < 0.1*ideal:
		s.WavePattern = PatternCoRotating
		s.StabilityIndex = 0.9
	case deviation < 0.3*ideal:
		s.WavePattern = PatternMixed
		s.StabilityIndex = 0.6
	default:
		s.WavePattern = PatternCounterRotating
		s.StabilityIndex = 0.4
	}

	for i := 0; i < s.WaveCount; i++ {
		for j := i + 1; j < s.WaveCount; j++ {
			if math.Abs(waves[i].PropagationSpeed-waves[j].PropagationSpeed) < collisionSpeedThreshold {
				s.CollisionPairs = append(s.CollisionPairs, CollisionPair{I: i, J: j})
			}
		}
	}
	return
}

// waveSpacings computes the circular gaps between consecutive leading
// points, sorted by angle so the N entries always tile the domain.
func waveSpacings(g rde.Geometry, waves []WavePropagation2D) (spacings []WaveSpacing) {
	leads := make([]float64, 0, len(waves))
	for _, w := range waves {
		if p, ok := w.LeadingPoint(); ok {
			leads = append(leads, g.WrapAngle(p.Theta))
		}
	}
	if len(leads) < 2 {
		return
	}
	sort.Float64s(leads)
	for k, theta := range leads {
		next := leads[(k+1)%len(leads)]
		spacing := next - theta
		if spacing <= 0 {
			spacing += g.DomainAngle
		}
		spacings = append(spacings, WaveSpacing{Theta: theta, Spacing: spacing})
	}
	return
}
