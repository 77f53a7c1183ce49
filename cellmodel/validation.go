package cellmodel

import (
	"math"

	"github.com/notargets/gorde/rde"
)

// ValidationRecord is a single experimental cell size measurement. Records
// are loaded once at construction and only read afterwards.
type ValidationRecord struct {
	Source           string  `json:"source"`
	FuelType         string  `json:"fuelType"`
	Pressure         float64 `json:"pressure"`         // [Pa]
	EquivalenceRatio float64 `json:"equivalenceRatio"` //
	Temperature      float64 `json:"temperature"`      // [K]
	MeasuredCellSize float64 `json:"measuredCellSize"` // [m]
	Uncertainty      float64 `json:"uncertainty"`      // [m]
}

// DefaultValidationRecords is the built-in experimental dataset.
func DefaultValidationRecords() []ValidationRecord {
	return []ValidationRecord{
		{"NASA_Glenn", "hydrogen", 101325, 1.0, 298, 0.001, 0.0002},
		{"NASA_Glenn", "hydrogen", 200000, 1.0, 298, 0.0007, 0.0001},
		{"Purdue_DRONE", "methane", 101325, 1.0, 298, 0.01, 0.002},
		{"Purdue_DRONE", "methane", 150000, 1.0, 298, 0.008, 0.0015},
		{"NRL", "propane", 101325, 1.0, 298, 0.02, 0.004},
	}
}

// recordsForFuel filters the dataset on fuel type.
func (p *Predictor) recordsForFuel(fuel string) (out []ValidationRecord) {
	for _, r := range p.records {
		if r.FuelType == fuel {
			out = append(out, r)
		}
	}
	return
}

// PredictionUncertainty reports the relative deviation between the
// correlation-based estimate and the nearest experimental record, found by
// L1 distance over normalized pressure/φ/temperature deviations. The
// correlation branch is compared (not the network prediction) so the
// uncertainty signal never feeds back into the prediction itself. Returns
// 1.0 when the fuel has no experimental data.
func (p *Predictor) PredictionUncertainty(chem rde.Chemistry) float64 {
	records := p.recordsForFuel(chem.FuelType)
	if len(records) == 0 {
		return 1.0
	}
	if chem.ChamberPressure <= 0 || chem.EquivalenceRatio <= 0 ||
		chem.InjectionTemperature <= 0 {
		return 1.0
	}

	var nearest *ValidationRecord
	minDistance := math.MaxFloat64
	for i, r := range records {
		d := math.Abs(r.Pressure-chem.ChamberPressure)/chem.ChamberPressure +
			math.Abs(r.EquivalenceRatio-chem.EquivalenceRatio)/chem.EquivalenceRatio +
			math.Abs(r.Temperature-chem.InjectionTemperature)/chem.InjectionTemperature
		if d < minDistance {
			minDistance = d
			nearest = &records[i]
		}
	}
	if nearest == nil || nearest.MeasuredCellSize <= 0 {
		return 0.5
	}
	estimate := p.CorrelationCellSize(chem)
	return math.Abs(estimate-nearest.MeasuredCellSize) / nearest.MeasuredCellSize
}
