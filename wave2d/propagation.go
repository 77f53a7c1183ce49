package wave2d

import (
	"math"

	"github.com/notargets/gorde/rde"
)

const (
	// Angular sampling increment around the annulus, ~6 degrees
	angularStep = 0.1 // [rad]

	// Fraction of wave energy dissipated per revolution
	revolutionDissipation = 0.05
)

// CollisionPoint is a predicted (r, θ) wave interaction location.
type CollisionPoint struct {
	R     float64 `json:"r"`
	Theta float64 `json:"theta"`
}

// WavePropagation2D is one wave's trajectory around the annulus plus its
// kinematic summary. The trajectory is time-ascending and bounded to one
// revolution of samples; continuation analyses restart from its tail.
type WavePropagation2D struct {
	Trajectory []Wave2DPoint `json:"waveTrajectory"`

	PropagationSpeed float64   `json:"propagationSpeed"` // mean [m/s]
	SpeedVariation   float64   `json:"speedVariation"`   // [m/s]
	LocalWaveSpeeds  []float64 `json:"localWaveSpeeds"`  // at angularStep increments

	WaveThickness     float64          `json:"waveThickness"` // [m]
	CollisionPoints   []CollisionPoint `json:"waveCollisionPoints"`
	EnergyDissipation float64          `json:"energyDissipation"`
}

// LeadingPoint is the wave front reference sample used for spacing
// analysis, the first sample of the trajectory.
func (w WavePropagation2D) LeadingPoint() (Wave2DPoint, bool) {
	if len(w.Trajectory) == 0 {
		return Wave2DPoint{}, false
	}
	return w.Trajectory[0], true
}

// TrackPropagation advances a wave around the annulus for up to simTime
// seconds or one full revolution of samples, whichever ends first. A
// non-empty initialWave restarts the trajectory from its last sample. The
// local speed is the mean detonation velocity modulated by a 4-lobe ±10%
// sinusoid emulating flow-field inhomogeneity around the circumference.
func (e *Engine) TrackPropagation(g rde.Geometry, chem rde.Chemistry,
	initialWave []Wave2DPoint, simTime float64) (w WavePropagation2D) {

	w.PropagationSpeed = chem.DetonationVelocity
	w.SpeedVariation = 0.10 * w.PropagationSpeed
	w.EnergyDissipation = revolutionDissipation

	if g.DomainAngle <= 0 {
		return
	}

	numPoints := int(g.DomainAngle / angularStep)
	w.LocalWaveSpeeds = make([]float64, numPoints)
	for i := range w.LocalWaveSpeeds {
		w.LocalWaveSpeeds[i] = localSpeed(w.PropagationSpeed, float64(i)*angularStep)
	}

	lambda := e.predictor.PredictCellSize(chem)
	w.WaveThickness = 3.0 * lambda
	localCellSize := lambda * (1.0 + CurvatureEffect(g.MeanRadius(), lambda))

	// Start position and clock: fresh at θ=0, or the tail of a previous pass.
	var startTheta, startTime float64
	if len(initialWave) != 0 {
		w.Trajectory = append(w.Trajectory, initialWave...)
		tail := initialWave[len(initialWave)-1]
		startTheta, startTime = g.WrapAngle(tail.Theta), tail.Time
	}

	var (
		rMean = g.MeanRadius()
		arc   = rMean * angularStep
		t     = startTime
	)
	for i := 0; i < numPoints; i++ {
		theta := g.WrapAngle(startTheta + float64(i)*angularStep)
		speed := localSpeed(w.PropagationSpeed, theta)
		if speed > 0 {
			t += arc / speed
		}
		if simTime > 0 && t > startTime+simTime {
			break
		}
		w.Trajectory = append(w.Trajectory, Wave2DPoint{
			R:             rMean,
			Theta:         theta,
			Time:          t,
			Temperature:   chem.DetonationTemperature,
			Pressure:      chem.DetonationPressure,
			VelocityTheta: speed,
			WaveSpeed:     speed,
			CellSize:      localCellSize,
			WaveFront:     true,
		})
	}

	// Waves meeting head-on would do so diametrically opposite each seed
	// point of the incoming front.
	for _, p := range initialWave {
		w.CollisionPoints = append(w.CollisionPoints, CollisionPoint{
			R:     rMean,
			Theta: g.WrapAngle(p.Theta + math.Pi),
		})
	}
	return
}

func localSpeed(mean, theta float64) float64 {
	return mean * (1.0 + 0.1*math.Sin(4.0*theta))
}
