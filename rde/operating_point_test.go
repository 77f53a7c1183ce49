package rde

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperatingPoint(t *testing.T) {
	g := NewAnnulus(0.04, 0.06, 0.1, 8)
	c := NewChemistry("hydrogen", "air", 1.0, 101325., 300., 100.)
	op := ComputeOperatingPoint(g, c)

	assert.Equal(t, 1, op.NumberOfWaves)
	assert.InDeltaf(t, 0.8*1968., op.WaveSpeed, 1.e-12, "")
	assert.InDeltaf(t, op.WaveSpeed/g.MeanCircumference(), op.WaveFrequency, 1.e-12, "")

	assert.True(t, op.MassFlowRate > 0)
	assert.True(t, op.Thrust > 0)
	assert.True(t, op.SpecificImpulse > 0)
	assert.True(t, op.PressureGain > 10.)
	assert.True(t, op.CombustionEfficiency > 0 && op.CombustionEfficiency <= 0.98)
	assert.InDeltaf(t, 0.11, op.PressureOscillations, 1.e-12, "")

	// Isp is thrust over weight flow
	assert.InDeltaf(t, op.Thrust/(op.MassFlowRate*9.81), op.SpecificImpulse, 1.e-9, "")
}

func TestOperatingPointDegenerate(t *testing.T) {
	// No chamber length: kinematics only, no flow quantities
	g := NewAnnulus(0.04, 0.06, 0, 8)
	c := NewChemistry("hydrogen", "air", 1.0, 101325., 300., 100.)
	op := ComputeOperatingPoint(g, c)
	assert.True(t, op.WaveFrequency > 0)
	assert.Equal(t, 0., op.MassFlowRate)
	assert.Equal(t, 0., op.Thrust)
}
