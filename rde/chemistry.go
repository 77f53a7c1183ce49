package rde

import (
	"math"
)

const (
	UniversalGasConstant = 8314.0   // J/(kmol·K)
	GasConstantAir       = 287.0    // J/(kg·K)
	ReferencePressure    = 101325.0 // Pa
	ReferenceTemperature = 298.15   // K
	AirMolecularWeight   = 29.0     // kg/kmol
)

// Chemistry holds the mixture definition, operating conditions and the
// derived Chapman-Jouguet state for an annular detonation chamber.
type Chemistry struct {
	FuelType         string  `json:"fuelType"`
	OxidizerType     string  `json:"oxidizerType"`
	EquivalenceRatio float64 `json:"equivalenceRatio"`

	ChamberPressure      float64 `json:"chamberPressure"`      // [Pa]
	InjectionTemperature float64 `json:"injectionTemperature"` // [K]
	InjectionVelocity    float64 `json:"injectionVelocity"`    // [m/s]

	DetonationVelocity    float64 `json:"detonationVelocity"`    // C-J velocity [m/s]
	DetonationPressure    float64 `json:"detonationPressure"`    // C-J pressure [Pa]
	DetonationTemperature float64 `json:"detonationTemperature"` // C-J temperature [K]

	// Cellular parameters, filled in by cellmodel.Predictor
	CellSize         float64 `json:"cellSize"`         // λ [m]
	InductionLength  float64 `json:"inductionLength"`  // ΔI [m]
	CJMachNumber     float64 `json:"cjMachNumber"`     // M_CJ
	MaxThermicity    float64 `json:"maxThermicity"`    // σ̇max [1/s]
	UseCellularModel bool    `json:"useCellularModel"`
}

// NewChemistry derives the C-J state for the given mixture and operating
// point. The cellular parameters are left zero until a predictor runs.
func NewChemistry(fuel, oxidizer string, phi, pressure, injTemp, injVel float64) (c Chemistry) {
	c = Chemistry{
		FuelType:             fuel,
		OxidizerType:         oxidizer,
		EquivalenceRatio:     phi,
		ChamberPressure:      pressure,
		InjectionTemperature: injTemp,
		InjectionVelocity:    injVel,
		UseCellularModel:     true,
	}
	c.DetonationVelocity = CJVelocity(fuel, phi)
	c.DetonationPressure = CJPressure(c)
	c.DetonationTemperature = CJTemperature(c)
	return
}

// CJVelocity evaluates the simplified C-J velocity relation
// U_CJ = sqrt(2γQφ / ((γ+1)(1+φ))), capped at the measured C-J speed for
// the fuel so the energy-balance estimate cannot run away at high Q.
func CJVelocity(fuel string, phi float64) float64 {
	var (
		gamma = 1.3
		fd    = FuelProperties(fuel)
	)
	if phi <= 0 || fd.HeatOfCombustion <= 0 {
		return fd.CJVelocityCap
	}
	u := math.Sqrt(2.0 * gamma * fd.HeatOfCombustion * phi /
		((gamma + 1.0) * (1.0 + phi)))
	return math.Min(u, fd.CJVelocityCap)
}

// CJPressure evaluates P_CJ = P0 + ρ0·U_CJ²/γ with ρ0 from ideal gas at
// injection conditions.
func CJPressure(c Chemistry) float64 {
	var (
		gamma = 1.3
	)
	if c.InjectionTemperature <= 0 {
		return c.ChamberPressure
	}
	rho0 := c.ChamberPressure / (GasConstantAir * c.InjectionTemperature)
	return c.ChamberPressure + rho0*c.DetonationVelocity*c.DetonationVelocity/gamma
}

// CJTemperature scales the injection temperature with the C-J pressure
// ratio and an isentropic-like exponent.
func CJTemperature(c Chemistry) float64 {
	var (
		gamma = 1.3
	)
	if c.ChamberPressure <= 0 {
		return c.InjectionTemperature
	}
	ratio := (c.DetonationPressure / c.ChamberPressure) *
		math.Pow(gamma/(gamma+1.0), gamma)
	return c.InjectionTemperature * ratio
}

// SoundSpeed is the unburned-gas sound speed at injection conditions,
// γ=1.4 ideal gas with air molecular weight.
func (c Chemistry) SoundSpeed() float64 {
	var (
		gamma     = 1.4
		rSpecific = UniversalGasConstant / AirMolecularWeight
	)
	if c.InjectionTemperature <= 0 {
		return 0
	}
	return math.Sqrt(gamma * rSpecific * c.InjectionTemperature)
}
