package cellmodel

import (
	"math"

	"github.com/notargets/gorde/rde"
	"github.com/notargets/gorde/utils"
)

// Predictor estimates the detonation cell size λ for a mixture from three
// derived features (induction length, C-J Mach number, maximum thermicity)
// through a fixed-weight inference network, falling back to fuel-specific
// power-law correlations when inference fails. Prediction is a pure
// function of the chemistry; the only state is the bounded tracking buffer.
type Predictor struct {
	net      *Network
	netErr   error
	records  []ValidationRecord
	tracking trackingRing
}

func NewPredictor() *Predictor {
	return NewPredictorWithWeights(DefaultWeights())
}

func NewPredictorWithWeights(w NetworkWeights) (p *Predictor) {
	p = &Predictor{
		records: DefaultValidationRecords(),
	}
	p.net, p.netErr = NewNetwork(w)
	return
}

// PredictCellSize returns λ in meters. If the cellular model is disabled
// the chemistry's supplied cell size is passed through. Inference errors
// select the correlation branch; the method never fails.
func (p *Predictor) PredictCellSize(chem rde.Chemistry) float64 {
	if !chem.UseCellularModel && chem.CellSize > 0 {
		return chem.CellSize
	}
	if p.netErr != nil {
		return p.CorrelationCellSize(chem)
	}
	lambda, err := p.net.Infer(p.NormalizedFeatures(chem))
	if err != nil {
		return p.CorrelationCellSize(chem)
	}
	return lambda
}

// InductionLength is ΔI: the fuel base length scaled by pressure^-0.5 and
// temperature^0.3.
func (p *Predictor) InductionLength(chem rde.Chemistry) float64 {
	fd := rde.FuelProperties(chem.FuelType)
	pr := chem.ChamberPressure / rde.ReferencePressure
	tr := chem.InjectionTemperature / rde.ReferenceTemperature
	return fd.BaseInductionLength * math.Pow(pr, -0.5) * math.Pow(tr, 0.3)
}

// CJMachNumber is the detonation velocity over the unburned-gas sound speed.
func (p *Predictor) CJMachNumber(chem rde.Chemistry) float64 {
	a := chem.SoundSpeed()
	if a <= 0 {
		return 0
	}
	return chem.DetonationVelocity / a
}

// MaxThermicity is σ̇max: the fuel base rate scaled by a parabolic penalty
// peaking at φ=1 (floored at 10% of peak) and by pressure^0.3.
func (p *Predictor) MaxThermicity(chem rde.Chemistry) float64 {
	fd := rde.FuelProperties(chem.FuelType)
	phiFactor := 1.0 - (chem.EquivalenceRatio-1.0)*(chem.EquivalenceRatio-1.0)
	phiFactor = math.Max(phiFactor, 0.1)
	pr := chem.ChamberPressure / rde.ReferencePressure
	return fd.BaseThermicity * phiFactor * math.Pow(pr, 0.3)
}

// NormalizedFeatures maps the three features into [0,1] with the fixed
// log/linear calibrations, clamping out-of-range values to the boundary.
func (p *Predictor) NormalizedFeatures(chem rde.Chemistry) (inputs [3]float64) {
	// Induction length: 1e-6 to 1e-3 m, log scale
	inputs[0] = utils.Clamp(math.Log10(p.InductionLength(chem)+1e-8)/6.0+1.0, 0, 1)
	// C-J Mach number: 3 to 10, linear
	inputs[1] = utils.Clamp((p.CJMachNumber(chem)-3.0)/7.0, 0, 1)
	// Max thermicity: 1e4 to 1e7 1/s, log scale
	inputs[2] = utils.Clamp((math.Log10(p.MaxThermicity(chem)+1e-8)-4.0)/3.0, 0, 1)
	return
}

// CorrelationCellSize is the deterministic fallback: a fuel-specific
// power law in pressure ratio, φ-deviation and temperature ratio.
func (p *Predictor) CorrelationCellSize(chem rde.Chemistry) float64 {
	fd := rde.FuelProperties(chem.FuelType)
	pr := chem.ChamberPressure / rde.ReferencePressure
	tr := chem.InjectionTemperature / rde.ReferenceTemperature
	dphi := chem.EquivalenceRatio - 1.0
	phiFactor := 1.0 / (1.0 + fd.CorrPhiWeight*dphi*dphi)
	return fd.CorrLead * math.Pow(pr, fd.CorrPressureExp) * phiFactor *
		math.Pow(tr, fd.CorrTempExp)
}

// Annotate fills the chemistry's derived cellular parameters in place and
// returns the updated copy.
func (p *Predictor) Annotate(chem rde.Chemistry) rde.Chemistry {
	chem.InductionLength = p.InductionLength(chem)
	chem.CJMachNumber = p.CJMachNumber(chem)
	chem.MaxThermicity = p.MaxThermicity(chem)
	chem.CellSize = p.PredictCellSize(chem)
	return chem
}
