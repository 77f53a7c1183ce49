package wave2d

import (
	"math"
	"testing"

	"github.com/ghodss/yaml"
	"github.com/stretchr/testify/assert"

	"github.com/notargets/gorde/cellmodel"
	"github.com/notargets/gorde/rde"
)

func testEngine() *Engine {
	return NewEngine(cellmodel.NewPredictor())
}

func testCase() (rde.Geometry, rde.Chemistry) {
	g := rde.NewAnnulus(0.04, 0.06, 0.1, 0)
	chem := rde.NewChemistry("hydrogen", "air", 1.0, 101325., 300., 100.)
	return g, chem
}

func TestCurvatureEffect(t *testing.T) {
	// Negligible once the radius exceeds 100 cell sizes
	assert.Equal(t, 0., CurvatureEffect(0.2, 0.001))
	// Capped at 0.3 for tightly curved channels
	assert.Equal(t, 0.3, CurvatureEffect(0.0001, 1.0))
	// In between: 0.5·exp(-(r/λ)/10)
	assert.InDeltaf(t, 0.5*math.Exp(-4.0), CurvatureEffect(0.04, 0.001), 1.e-12, "")
	// Degenerate cell size
	assert.Equal(t, 0., CurvatureEffect(0.05, 0))
}

func TestAnalyzeStructure(t *testing.T) {
	e := testEngine()
	g, chem := testCase()
	s := e.AnalyzeStructure(g, chem)

	base := cellmodel.NewPredictor().PredictCellSize(chem)
	assert.True(t, s.CurvatureEffect > 0)
	assert.InDeltaf(t, base*(1.0+s.CurvatureEffect), s.MeanCellSize, 1.e-12, "")

	assert.Equal(t, FieldRadialPoints, len(s.CellSizeField))
	for _, row := range s.CellSizeField {
		assert.Equal(t, FieldAngularPoints, len(row))
	}

	// Cells thin near the walls: 10% at the inner wall, 5% at the outer
	mid := FieldAngularPoints / 2
	assert.InDeltaf(t, 0.9*s.MeanCellSize, s.CellSizeField[0][mid], 1.e-12, "")
	assert.InDeltaf(t, 0.95*s.MeanCellSize, s.CellSizeField[FieldRadialPoints-1][mid], 1.e-12, "")
	assert.InDeltaf(t, s.MeanCellSize, s.CellSizeField[10][mid], 1.e-12, "")

	assert.Equal(t, 0.75, s.StructureRegularity)
	assert.Equal(t, 0.35, s.WaveAngle)
}

func TestInjectorPerturbation(t *testing.T) {
	e := testEngine()
	_, chem := testCase()
	g := rde.NewAnnulus(0.04, 0.06, 0.1, 1) // single injector at θ=0
	s := e.AnalyzeStructure(g, chem)

	// Cells grow right at the injector and relax far from it
	mid := FieldAngularPoints / 2
	assert.InDeltaf(t, 1.2*s.MeanCellSize, s.CellSizeField[10][0], 1.e-12, "")
	assert.InDeltaf(t, s.MeanCellSize, s.CellSizeField[10][mid], 1.e-12, "")
}

func TestTriplePoints(t *testing.T) {
	e := testEngine()
	_, chem := testCase()
	g := rde.NewAnnulus(0.04, 0.06, 0.1, 8)
	s := e.AnalyzeStructure(g, chem)

	assert.Equal(t, 8, len(s.TriplePoints))
	for k, tp := range s.TriplePoints {
		assert.True(t, tp.WaveFront)
		assert.Equal(t, 3500., tp.Temperature)
		assert.InDeltaf(t, 3.0*chem.DetonationPressure, tp.Pressure, 1.e-6, "")
		assert.InDeltaf(t, g.WrapAngle(g.InjectorPositions[k]+0.1), tp.Theta, 1.e-12, "")
	}

	// Each triple point lands on a distinct occupancy cell
	occ := e.TriplePointOccupancy(s, g)
	assert.Equal(t, 8, occ.NNZ())
}

func TestTrackPropagation(t *testing.T) {
	e := testEngine()
	g, chem := testCase()
	w := e.TrackPropagation(g, chem, nil, 0)

	assert.Equal(t, chem.DetonationVelocity, w.PropagationSpeed)
	assert.InDeltaf(t, 0.1*chem.DetonationVelocity, w.SpeedVariation, 1.e-9, "")
	assert.Equal(t, 0.05, w.EnergyDissipation)

	// One revolution of samples at ~0.1 rad increments
	numPoints := int(g.DomainAngle / 0.1)
	assert.Equal(t, numPoints, len(w.Trajectory))
	assert.Equal(t, numPoints, len(w.LocalWaveSpeeds))

	// Local speeds follow the ±10% 4-lobe modulation
	for i, v := range w.LocalWaveSpeeds {
		assert.True(t, v >= 0.9*w.PropagationSpeed && v <= 1.1*w.PropagationSpeed)
		theta := float64(i) * 0.1
		assert.InDeltaf(t, w.PropagationSpeed*(1.0+0.1*math.Sin(4.0*theta)), v, 1.e-9, "")
	}

	// Trajectory is time-ascending with wrapped angles
	for i, p := range w.Trajectory {
		assert.True(t, p.Theta >= 0 && p.Theta < g.DomainAngle)
		assert.True(t, p.WaveFront)
		if i > 0 {
			assert.True(t, p.Time > w.Trajectory[i-1].Time)
		}
	}

	// Wave front thickness spans ~3 cells
	lambda := cellmodel.NewPredictor().PredictCellSize(chem)
	assert.InDeltaf(t, 3.0*lambda, w.WaveThickness, 1.e-12, "")

	// Fresh waves have no incoming front, hence no collision points
	assert.Empty(t, w.CollisionPoints)
}

func TestTrackPropagationTimeLimit(t *testing.T) {
	e := testEngine()
	g, chem := testCase()
	w := e.TrackPropagation(g, chem, nil, 1.e-5)
	full := int(g.DomainAngle / 0.1)
	assert.True(t, len(w.Trajectory) > 0)
	assert.True(t, len(w.Trajectory) < full)
}

func TestTrackPropagationRestart(t *testing.T) {
	e := testEngine()
	g, chem := testCase()

	seed := []Wave2DPoint{{R: g.MeanRadius(), Theta: 1.0, Time: 0.001, WaveFront: true}}
	w := e.TrackPropagation(g, chem, seed, 0)

	// The previous pass is retained and the clock continues from its tail
	assert.Equal(t, seed[0], w.Trajectory[0])
	for _, p := range w.Trajectory[1:] {
		assert.True(t, p.Time > 0.001)
	}
	assert.InDeltaf(t, 1.0, w.Trajectory[1].Theta, 1.e-12, "")

	// Head-on collisions are predicted opposite each seed point
	assert.Equal(t, 1, len(w.CollisionPoints))
	assert.InDeltaf(t, g.WrapAngle(1.0+math.Pi), w.CollisionPoints[0].Theta, 1.e-12, "")
}

func TestTrackPropagationDegenerate(t *testing.T) {
	e := testEngine()
	_, chem := testCase()
	g := rde.Geometry{InnerRadius: 0.04, OuterRadius: 0.06} // zero domain angle
	w := e.TrackPropagation(g, chem, nil, 0)
	assert.Empty(t, w.Trajectory)
	assert.Equal(t, chem.DetonationVelocity, w.PropagationSpeed)
}

func seedWave(theta, speed float64) WavePropagation2D {
	return WavePropagation2D{
		Trajectory:       []Wave2DPoint{{Theta: theta, WaveFront: true}},
		PropagationSpeed: speed,
	}
}

func TestAnalyzeMultiWaveUniform(t *testing.T) {
	e := testEngine()
	g, chem := testCase()

	waves := []WavePropagation2D{
		seedWave(0, 1800),
		seedWave(2*math.Pi/3, 1800),
		seedWave(4*math.Pi/3, 1800),
	}
	s := e.AnalyzeMultiWave(g, chem, waves)

	assert.Equal(t, 3, s.WaveCount)
	assert.Equal(t, PatternCoRotating, s.WavePattern)
	assert.Equal(t, 0.9, s.StabilityIndex)
	assert.InDeltaf(t, 1800.*3./g.MeanCircumference(), s.SystemFrequency, 1.e-9, "")

	// Three spacings tiling the full domain
	assert.Equal(t, 3, len(s.WaveSpacings))
	sum := 0.0
	for _, sp := range s.WaveSpacings {
		sum += sp.Spacing
	}
	assert.InDeltaf(t, g.DomainAngle, sum, 1.e-12, "")

	// Equal speeds: every pair is a collision candidate
	assert.Equal(t, 3, len(s.CollisionPairs))
}

func TestAnalyzeMultiWavePatterns(t *testing.T) {
	e := testEngine()
	g, chem := testCase()

	// Moderately uneven spacing classifies as mixed
	mixed := []WavePropagation2D{
		seedWave(0, 1800),
		seedWave(2*math.Pi/3+0.5, 1800),
		seedWave(4*math.Pi/3, 1800),
	}
	s := e.AnalyzeMultiWave(g, chem, mixed)
	assert.Equal(t, PatternMixed, s.WavePattern)
	assert.Equal(t, 0.6, s.StabilityIndex)

	// Heavily clustered waves classify as counter-rotating
	clustered := []WavePropagation2D{
		seedWave(0, 1800),
		seedWave(0.2, 1800),
		seedWave(0.4, 1800),
	}
	s = e.AnalyzeMultiWave(g, chem, clustered)
	assert.Equal(t, PatternCounterRotating, s.WavePattern)
	assert.Equal(t, 0.4, s.StabilityIndex)

	// One wave is always the single-wave mode
	s = e.AnalyzeMultiWave(g, chem, []WavePropagation2D{seedWave(0, 1800)})
	assert.Equal(t, PatternSingleWave, s.WavePattern)
	assert.Equal(t, 0.8, s.StabilityIndex)
	assert.Empty(t, s.WaveSpacings)

	// No waves yields the zero summary
	s = e.AnalyzeMultiWave(g, chem, nil)
	assert.Equal(t, 0, s.WaveCount)
	assert.Equal(t, "", s.WavePattern)
}

func TestCollisionPairs(t *testing.T) {
	e := testEngine()
	g, chem := testCase()

	// 40 m/s apart: collision candidates
	s := e.AnalyzeMultiWave(g, chem, []WavePropagation2D{
		seedWave(0, 1800),
		seedWave(math.Pi, 1840),
	})
	assert.Equal(t, []CollisionPair{{I: 0, J: 1}}, s.CollisionPairs)

	// 100 m/s apart: the faster wave sweeps past, no pairing
	s = e.AnalyzeMultiWave(g, chem, []WavePropagation2D{
		seedWave(0, 1800),
		seedWave(math.Pi, 1900),
	})
	assert.Empty(t, s.CollisionPairs)
}

func TestWaveSerializationRoundTrip(t *testing.T) {
	e := testEngine()
	g, chem := testCase()
	w := e.TrackPropagation(g, chem, nil, 0)

	data, err := yaml.Marshal(w)
	assert.NoError(t, err)

	var back WavePropagation2D
	assert.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, w, back)
}
