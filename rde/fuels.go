package rde

// FuelData collects the per-fuel constants used by the cellular model:
// feature base values, correlation exponents and the validated operating
// envelope the correlations were fit over.
type FuelData struct {
	Name             string
	HeatOfCombustion float64 // Q [J/kg]
	CJVelocityCap    float64 // measured C-J speed ceiling [m/s]

	BaseInductionLength float64 // ΔI at reference conditions [m]
	BaseThermicity      float64 // σ̇max at reference conditions [1/s]

	// Cell-size correlation λ = Lead · pr^PressureExp · (1+PhiWeight(φ-1)²)⁻¹ · tr^TempExp
	CorrLead        float64
	CorrPressureExp float64
	CorrPhiWeight   float64
	CorrTempExp     float64

	ValidPressure    [2]float64 // [Pa]
	ValidPhi         [2]float64
	ValidTemperature [2]float64 // [K]
}

var fuelDatabase = map[string]FuelData{
	"hydrogen": {
		Name:                "hydrogen",
		HeatOfCombustion:    120e6,
		CJVelocityCap:       1968,
		BaseInductionLength: 1e-5,
		BaseThermicity:      1e6,
		CorrLead:            0.001,
		CorrPressureExp:     -0.6,
		CorrPhiWeight:       1.0,
		CorrTempExp:         0.2,
		ValidPressure:       [2]float64{50000, 2000000},
		ValidPhi:            [2]float64{0.4, 2.0},
		ValidTemperature:    [2]float64{250, 800},
	},
	"methane": {
		Name:                "methane",
		HeatOfCombustion:    50e6,
		CJVelocityCap:       1801,
		BaseInductionLength: 5e-5,
		BaseThermicity:      5e5,
		CorrLead:            0.01,
		CorrPressureExp:     -0.5,
		CorrPhiWeight:       2.0,
		CorrTempExp:         0.3,
		ValidPressure:       [2]float64{50000, 1000000},
		ValidPhi:            [2]float64{0.5, 1.8},
		ValidTemperature:    [2]float64{280, 600},
	},
	"propane": {
		Name:                "propane",
		HeatOfCombustion:    46e6,
		CJVelocityCap:       1798,
		BaseInductionLength: 1e-4,
		BaseThermicity:      2e5,
		CorrLead:            0.02,
		CorrPressureExp:     -0.4,
		CorrPhiWeight:       1.5,
		CorrTempExp:         0.25,
		ValidPressure:       [2]float64{50000, 800000},
		ValidPhi:            [2]float64{0.6, 1.6},
		ValidTemperature:    [2]float64{290, 500},
	},
}

// defaultFuel is the generic correlation λ = 29.4mm · pr^-0.5 used for
// fuels without a calibrated entry.
var defaultFuel = FuelData{
	Name:                "unknown",
	HeatOfCombustion:    0,
	CJVelocityCap:       1800,
	BaseInductionLength: 1e-4,
	BaseThermicity:      1e5,
	CorrLead:            0.0294,
	CorrPressureExp:     -0.5,
	CorrPhiWeight:       0,
	CorrTempExp:         0,
	ValidPressure:       [2]float64{50000, 1000000},
	ValidPhi:            [2]float64{0.5, 2.0},
	ValidTemperature:    [2]float64{250, 800},
}

// FuelProperties returns the calibrated data for fuel, or the generic
// default when the fuel is not in the database.
func FuelProperties(fuel string) FuelData {
	if fd, ok := fuelDatabase[fuel]; ok {
		return fd
	}
	return defaultFuel
}

// KnownFuel reports whether fuel has a calibrated database entry.
func KnownFuel(fuel string) bool {
	_, ok := fuelDatabase[fuel]
	return ok
}
