package rde

import (
	"math"
)

// OperatingPoint is the advisory performance summary for a chamber and
// mixture: wave kinematics plus momentum-theory thrust estimates.
type OperatingPoint struct {
	NumberOfWaves int     `json:"numberOfWaves"`
	WaveSpeed     float64 `json:"waveSpeed"`     // [m/s]
	WaveFrequency float64 `json:"waveFrequency"` // [Hz]

	MassFlowRate         float64 `json:"massFlowRate"`         // [kg/s]
	Thrust               float64 `json:"thrust"`               // [N]
	SpecificImpulse      float64 `json:"specificImpulse"`      // [s]
	PressureGain         float64 `json:"pressureGain"`         // P_CJ / P0
	CombustionEfficiency float64 `json:"combustionEfficiency"` // [0,1]
	PressureOscillations float64 `json:"pressureOscillations"` // RMS fraction
}

// ComputeOperatingPoint evaluates single-wave operation. RDEs run below the
// ideal C-J speed; 0.8·U_CJ is the usual operating estimate.
func ComputeOperatingPoint(g Geometry, c Chemistry) (op OperatingPoint) {
	const (
		g0                 = 9.81
		characteristicTime = 1e-4 // hydrogen-class combustion time [s]
	)
	op.NumberOfWaves = 1
	op.WaveSpeed = 0.8 * c.DetonationVelocity

	circumference := g.MeanCircumference()
	if circumference > 0 {
		op.WaveFrequency = op.WaveSpeed / circumference
	}

	if c.InjectionTemperature <= 0 || g.ChamberLength <= 0 {
		return
	}

	injectionArea := float64(g.NumInjectors) * g.InjectorWidth * g.ChamberLength
	rho0 := c.ChamberPressure / (GasConstantAir * c.InjectionTemperature)
	op.MassFlowRate = rho0 * c.InjectionVelocity * injectionArea

	if c.DetonationPressure > ReferencePressure && rho0 > 0 {
		exitVelocity := math.Sqrt(2.0 * (c.DetonationPressure - ReferencePressure) / rho0)
		op.Thrust = op.MassFlowRate * exitVelocity
	}
	if op.MassFlowRate > 0 {
		op.SpecificImpulse = op.Thrust / (op.MassFlowRate * g0)
	}
	if c.ChamberPressure > 0 {
		op.PressureGain = c.DetonationPressure / c.ChamberPressure
	}

	if c.InjectionVelocity > 0 {
		residenceTime := g.ChamberLength / c.InjectionVelocity
		op.CombustionEfficiency = math.Min(1.0-math.Exp(-residenceTime/characteristicTime), 0.98)
	}
	op.PressureOscillations = 0.1 * (1.0 + float64(op.NumberOfWaves)*0.1)
	return
}
