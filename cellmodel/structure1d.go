package cellmodel

import (
	"math"

	"github.com/notargets/gorde/rde"
)

// CellularStructure1D is the pre-annular estimate of the cellular pattern:
// cell dimensions, irregularity and passage frequency, with a sampled
// distribution of expected cell sizes.
type CellularStructure1D struct {
	CellSize     float64 `json:"cellSize"`   // λ [m]
	CellWidth    float64 `json:"cellWidth"`  // [m]
	CellHeight   float64 `json:"cellHeight"` // [m]
	Irregularity float64 `json:"irregularity"`
	Frequency    float64 `json:"frequency"` // cell passage [Hz]

	CellSizeDistribution []float64 `json:"cellSizeDistribution"` // [m]
}

// AnalyzeStructure1D estimates the cellular structure of a mixture before
// any annular geometry effects. Cells are roughly rectangular, λ wide by
// 0.5λ tall; irregularity grows with the distance from stoichiometric.
func (p *Predictor) AnalyzeStructure1D(chem rde.Chemistry) (s CellularStructure1D) {
	s.CellSize = p.PredictCellSize(chem)
	s.CellWidth = s.CellSize
	s.CellHeight = 0.5 * s.CellSize

	phiDeviation := math.Abs(chem.EquivalenceRatio - 1.0)
	s.Irregularity = 1.0 + 0.3*phiDeviation

	if s.CellSize > 0 {
		s.Frequency = chem.DetonationVelocity / s.CellSize
	}

	s.CellSizeDistribution = make([]float64, 100)
	for i := range s.CellSizeDistribution {
		factor := 1.0 + float64(i-50)/50.0*0.3*s.Irregularity
		s.CellSizeDistribution[i] = s.CellSize * factor
	}
	return
}
