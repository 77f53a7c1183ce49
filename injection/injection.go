// Package injection evaluates the coupling between discrete fuel injectors
// and passing detonation waves: phase alignment, momentum coupling and a
// reinforcing/opposing/neutral classification per injector.
package injection

import (
	"math"

	"github.com/notargets/gorde/rde"
	"github.com/notargets/gorde/wave2d"
)

// Interaction classifications
const (
	Reinforcing = "reinforcing"
	Opposing    = "opposing"
	Neutral     = "neutral"
)

// referenceWaveInertia scales the detonation velocity into the effective
// momentum flux a passing wave presents to an injector jet [kg/m³].
const referenceWaveInertia = 1000.0

// Interaction is one injector's coupling record for a passing wave.
type Interaction struct {
	InjectorIndex int     `json:"injectorIndex"`
	InjectorTheta float64 `json:"injectorPositionTheta"` // [rad]

	// WavePhase is position-proportional: 2π·θ/domainAngle. A simplified
	// phase model kept for compatibility, not a transit-time phase.
	WavePhase float64 `json:"wavePhaseAtInjection"` // [rad]

	MomentumCoupling    float64 `json:"momentumCoupling"`
	PressureDisturbance float64 `json:"pressureDisturbance"` // [Pa]
	InteractionType     string  `json:"interactionType"`
	PenetrationDepth    float64 `json:"penetrationDepth"` // [m]
}

// Analyze produces one record per injector. Zero injectors yield an empty
// result, not an error.
func Analyze(g rde.Geometry, chem rde.Chemistry, wave wave2d.WavePropagation2D) (out []Interaction) {
	waveSpeed := wave.PropagationSpeed
	if waveSpeed <= 0 {
		waveSpeed = chem.DetonationVelocity
	}

	for i, theta := range g.InjectorPositions {
		ia := Interaction{
			InjectorIndex:       i,
			InjectorTheta:       theta,
			PressureDisturbance: 0.1 * chem.DetonationPressure,
			PenetrationDepth:    g.InjectionDepth,
			InteractionType:     classify(g.InjectionAngle),
		}
		if g.DomainAngle > 0 {
			ia.WavePhase = 2.0 * math.Pi * (theta / g.DomainAngle)
		}
		if waveSpeed > 0 {
			// unit-density injection momentum against the wave's inertia
			ia.MomentumCoupling = chem.InjectionVelocity / (referenceWaveInertia * waveSpeed)
		}
		out = append(out, ia)
	}
	return
}

// classify types the interaction by injection angle: near-perpendicular
// injection is neutral, forward injection reinforces the wave, backward
// injection opposes it.
func classify(angleDegrees float64) string {
	switch {
	case angleDegrees >= 80 && angleDegrees <= 100:
		return Neutral
	case angleDegrees < 80:
		return Reinforcing
	default:
		return Opposing
	}
}
