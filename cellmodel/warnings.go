package cellmodel

import (
	"github.com/notargets/gorde/rde"
)

// ModelWarning is an advisory condition attached to an analysis. Warnings
// never abort an analysis; results are always returned alongside them.
type ModelWarning int

const (
	WarnMeshTooCoarse ModelWarning = iota
	WarnChemistryOutsideValidity
	WarnExperimentalDataMissing
	WarnPredictionUncertain
)

func (w ModelWarning) String() string {
	switch w {
	case WarnMeshTooCoarse:
		return "mesh resolution is too coarse for cellular structure (Δx > λ/10)"
	case WarnChemistryOutsideValidity:
		return "operating conditions are outside validated range"
	case WarnExperimentalDataMissing:
		return "no experimental validation data available for this fuel"
	case WarnPredictionUncertain:
		return "cell size prediction has high uncertainty"
	}
	return "unknown warning"
}

const (
	// MeshSafetyFraction is the λ/10 rule: Δx ≤ λ·MeshSafetyFraction.
	MeshSafetyFraction = 0.1
	// CellSizeTolerance is the relative deviation from experiment above
	// which a prediction is flagged uncertain.
	CellSizeTolerance = 0.2
)

// ValidateInputs checks a chemistry against the model's envelope and
// returns the advisory warnings. chem.CellSize, when positive, is treated
// as the candidate mesh resolution for the λ/10 check.
func (p *Predictor) ValidateInputs(chem rde.Chemistry) (warnings []ModelWarning) {
	lambda := p.PredictCellSize(chem)

	if chem.CellSize > 0 && chem.CellSize > lambda*MeshSafetyFraction {
		warnings = append(warnings, WarnMeshTooCoarse)
	}

	fd := rde.FuelProperties(chem.FuelType)
	if chem.ChamberPressure < fd.ValidPressure[0] || chem.ChamberPressure > fd.ValidPressure[1] ||
		chem.EquivalenceRatio < fd.ValidPhi[0] || chem.EquivalenceRatio > fd.ValidPhi[1] ||
		chem.InjectionTemperature < fd.ValidTemperature[0] || chem.InjectionTemperature > fd.ValidTemperature[1] {
		warnings = append(warnings, WarnChemistryOutsideValidity)
	}

	if len(p.recordsForFuel(chem.FuelType)) == 0 {
		warnings = append(warnings, WarnExperimentalDataMissing)
	}

	if p.PredictionUncertainty(chem) > CellSizeTolerance {
		warnings = append(warnings, WarnPredictionUncertain)
	}
	return
}
