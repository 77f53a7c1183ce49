// Package wave2d models detonation waves traveling circumferentially in an
// annular chamber: the 2D cellular field, per-wave trajectories with local
// speed variation, and multi-wave pattern classification. The model is
// closed-form kinematics, not a discretized flow solve; every operation is
// a total function over well-formed geometry and chemistry, and degenerate
// inputs yield empty or zero-valued results rather than errors.
package wave2d

import (
	"math"

	"github.com/notargets/gorde/cellmodel"
	"github.com/notargets/gorde/rde"
	"github.com/notargets/gorde/utils"
)

const (
	// Reference resolution of the synthesized (r, θ) cell size field
	FieldRadialPoints  = 20
	FieldAngularPoints = 40
)

// Engine evaluates annular wave dynamics on top of a cell size predictor.
type Engine struct {
	predictor *cellmodel.Predictor
}

func NewEngine(p *cellmodel.Predictor) *Engine {
	return &Engine{predictor: p}
}

// Wave2DPoint is one space-time sample of a wave front in cylindrical
// coordinates. Theta is always normalized into [0, domainAngle).
type Wave2DPoint struct {
	R             float64 `json:"r"`     // [m]
	Theta         float64 `json:"theta"` // [rad]
	Time          float64 `json:"time"`  // [s]
	Temperature   float64 `json:"temperature"`
	Pressure      float64 `json:"pressure"`
	VelocityR     float64 `json:"velocityR"`
	VelocityTheta float64 `json:"velocityTheta"`
	WaveSpeed     float64 `json:"waveSpeed"` // local [m/s]
	CellSize      float64 `json:"cellSize"`  // local λ [m]
	WaveFront     bool    `json:"isWaveFront"`
}

// CellularStructure2D is the annular cellular field, computed fresh per
// analysis request and never mutated after construction.
type CellularStructure2D struct {
	MeanCellSize             float64 `json:"meanCellSize"` // [m]
	RadialVariation          float64 `json:"radialVariation"`
	CircumferentialVariation float64 `json:"circumferentialVariation"`
	StructureRegularity      float64 `json:"structureRegularity"` // [0,1]

	CellSizeField [][]float64   `json:"cellSizeField"` // [radial][angular]
	TriplePoints  []Wave2DPoint `json:"triplePoints"`

	CurvatureEffect float64 `json:"curvatureEffect"`
	WaveAngle       float64 `json:"waveAngle"` // mean, relative to radial [rad]
}

// CurvatureEffect is the empirical annular correction on cell size,
// min(0.5·exp(-(r/λ)/10), 0.3), negligible once r/λ exceeds 100.
func CurvatureEffect(radius, cellSize float64) float64 {
	if cellSize <= 0 {
		return 0
	}
	ratio := radius / cellSize
	if ratio > 100.0 {
		return 0
	}
	return math.Min(0.5*math.Exp(-ratio/10.0), 0.3)
}

// AnalyzeStructure predicts the 2D cellular field for the chamber: the
// curvature-corrected mean cell size, boundary-layer thinning near the
// walls, and localized perturbations around each injector.
func (e *Engine) AnalyzeStructure(g rde.Geometry, chem rde.Chemistry) (s CellularStructure2D) {
	base := e.predictor.PredictCellSize(chem)
	s.CurvatureEffect = CurvatureEffect(g.MeanRadius(), base)
	s.MeanCellSize = base * (1.0 + s.CurvatureEffect)

	s.RadialVariation = 0.15
	s.CircumferentialVariation = 0.10
	s.StructureRegularity = 0.75
	s.WaveAngle = 0.35

	if g.DomainAngle <= 0 || g.AnnularGap() <= 0 {
		return
	}

	field := e.synthesizeField(g, s.MeanCellSize)
	s.CellSizeField = make([][]float64, FieldRadialPoints)
	for i := range s.CellSizeField {
		s.CellSizeField[i] = field.Row(i).RawData()
	}

	s.TriplePoints = triplePoints(g, chem)
	return
}

// synthesizeField builds the R×Θ grid of local cell sizes: 10% thinner in
// the innermost tenth of the gap, 5% thinner in the outermost tenth, and a
// +20% peak exponential perturbation decaying over ~0.1 rad around each
// injector.
func (e *Engine) synthesizeField(g rde.Geometry, mean float64) utils.Matrix {
	var (
		gap   = g.AnnularGap()
		field = utils.NewMatrix(FieldRadialPoints, FieldAngularPoints)
	)
	for i := 0; i < FieldRadialPoints; i++ {
		r := g.InnerRadius + float64(i)*gap/float64(FieldRadialPoints-1)
		wall := 1.0
		if r < g.InnerRadius+0.1*gap {
			wall = 0.9
		} else if r > g.OuterRadius-0.1*gap {
			wall = 0.95
		}
		for j := 0; j < FieldAngularPoints; j++ {
			theta := float64(j) * g.DomainAngle / float64(FieldAngularPoints-1)
			cellSize := mean * wall
			for _, injTheta := range g.InjectorPositions {
				d := g.AngularDistance(theta, injTheta)
				if d < 0.2 {
					cellSize *= 1.0 + 0.2*math.Exp(-d/0.1)
				}
			}
			field.Set(i, j, cellSize)
		}
	}
	return field
}

// triplePoints seeds one marker per injector, offset downstream of the
// injection disturbance at the mean radius.
func triplePoints(g rde.Geometry, chem rde.Chemistry) (pts []Wave2DPoint) {
	for _, injTheta := range g.InjectorPositions {
		pts = append(pts, Wave2DPoint{
			R:           g.MeanRadius(),
			Theta:       g.WrapAngle(injTheta + 0.1),
			Time:        0,
			Temperature: 3500.0,
			Pressure:    3.0 * chem.DetonationPressure,
			WaveFront:   true,
		})
	}
	return
}

// TriplePointOccupancy marks each triple point's nearest grid cell on a
// sparse (r, θ) occupancy map matching the cell size field's resolution.
func (e *Engine) TriplePointOccupancy(s CellularStructure2D, g rde.Geometry) utils.DOK {
	occ := utils.NewDOK(FieldRadialPoints, FieldAngularPoints)
	if g.DomainAngle <= 0 || g.AnnularGap() <= 0 {
		return occ
	}
	for _, tp := range s.TriplePoints {
		i := int(math.Round((tp.R - g.InnerRadius) / g.AnnularGap() * float64(FieldRadialPoints-1)))
		j := int(math.Round(g.WrapAngle(tp.Theta) / g.DomainAngle * float64(FieldAngularPoints-1)))
		if i >= 0 && i < FieldRadialPoints && j >= 0 && j < FieldAngularPoints {
			occ.Set(i, j, tp.Temperature)
		}
	}
	return occ
}
