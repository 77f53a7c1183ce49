package meshcheck

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/gorde/rde"
)

func TestRequiredMeshSize(t *testing.T) {
	assert.InDeltaf(t, 0.0001, RequiredMeshSize(0.001), 1.e-15, "")
	assert.InDeltaf(t, 0.0002, RequiredMeshSize(0.001, 0.2), 1.e-15, "")
}

func TestValidateCoarseRadial(t *testing.T) {
	// λ=1mm with a safety factor of 10 requires Δx ≤ 0.1mm. 50 radial
	// cells over a 20mm gap give Δx = 0.4mm: fail, and 200 cells needed.
	g := rde.NewAnnulus(0.03, 0.05, 0.1, 0)
	counts := CellCounts{Radial: 50, Circumferential: 4000, Axial: 1000}
	r := Validate(counts, g, 0.001, 10)

	assert.InDeltaf(t, 0.0001, r.RequiredMeshSize, 1.e-15, "")
	assert.False(t, r.Radial.Pass)
	assert.InDeltaf(t, 0.0004, r.Radial.CellSize, 1.e-15, "")
	assert.Equal(t, 200, r.Radial.MinCells)
	assert.True(t, r.Axial.Pass)
	assert.False(t, r.Pass)
}

func TestValidateEqualityPasses(t *testing.T) {
	// Exactly Δx = λ/safetyFactor satisfies the constraint
	g := rde.NewAnnulus(0.03, 0.05, 0.1, 0)
	counts := CellCounts{
		Radial:          200,
		Circumferential: int(math.Ceil(g.MeanCircumference() / 0.0001)),
		Axial:           1000,
	}
	r := Validate(counts, g, 0.001, 10)
	assert.True(t, r.Radial.Pass)
	assert.True(t, r.Circumferential.Pass)
	assert.True(t, r.Axial.Pass)
	assert.True(t, r.Pass)
}

func TestValidateCircumferentialExtent(t *testing.T) {
	// The circumferential extent is the arc at the mean radius
	g := rde.NewAnnulus(0.04, 0.06, 0.1, 0)
	r := Validate(CellCounts{Radial: 200, Circumferential: 10, Axial: 1000}, g, 0.001, 10)
	assert.InDeltaf(t, g.MeanCircumference(), r.Circumferential.Extent, 1.e-12, "")
	assert.False(t, r.Circumferential.Pass)
}

func TestValidateDegenerate(t *testing.T) {
	g := rde.NewAnnulus(0.04, 0.06, 0.1, 0)

	// Non-positive λ or safety factor yields a failing, empty report
	r := Validate(CellCounts{Radial: 200}, g, 0, 10)
	assert.False(t, r.Pass)
	r = Validate(CellCounts{Radial: 200}, g, 0.001, 0)
	assert.False(t, r.Pass)

	// A zero-length axial extent has nothing to resolve and passes
	flat := g
	flat.ChamberLength = 0
	r = Validate(CellCounts{Radial: 200, Circumferential: 4000, Axial: 0}, flat, 0.001, 10)
	assert.True(t, r.Axial.Pass)
	assert.True(t, r.Pass)

	// Zero cell count on a real axis fails with the corrective minimum
	r = Validate(CellCounts{Radial: 0, Circumferential: 4000, Axial: 1000}, g, 0.001, 10)
	assert.False(t, r.Radial.Pass)
	assert.Equal(t, 200, r.Radial.MinCells)
}
