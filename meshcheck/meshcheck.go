// Package meshcheck converts a predicted detonation cell size into the
// spatial resolution a solver mesh must meet, and checks candidate cell
// counts against it. The rule is Δx ≤ λ/10 in every axis: coarser meshes
// cannot resolve the cellular structure the model predicts.
package meshcheck

import (
	"math"

	"github.com/notargets/gorde/rde"
	"github.com/notargets/gorde/utils"
)

// DefaultSafetyFraction is the Δx/λ ratio of the λ/10 rule.
const DefaultSafetyFraction = 0.1

// RequiredMeshSize is the maximum admissible mesh cell dimension for a
// detonation cell size lambda. safetyFraction defaults to 0.1 (λ/10).
func RequiredMeshSize(lambda float64, safetyFraction ...float64) float64 {
	sf := DefaultSafetyFraction
	if len(safetyFraction) != 0 {
		sf = safetyFraction[0]
	}
	return lambda * sf
}

// CellCounts is a candidate mesh resolution for the annular chamber.
type CellCounts struct {
	Radial          int `json:"radialCells"`
	Circumferential int `json:"circumferentialCells"`
	Axial           int `json:"axialCells"`
}

// AxisCheck is the per-axis outcome: the achieved cell dimension, whether
// it satisfies the constraint, and the corrective minimum count when not.
type AxisCheck struct {
	Name     string  `json:"name"`
	Extent   float64 `json:"extent"` // axis length [m]
	Cells    int     `json:"cells"`
	CellSize float64 `json:"cellSize"` // achieved Δx [m]
	Pass     bool    `json:"pass"`
	MinCells int     `json:"minCells"` // smallest count satisfying the rule
}

// Report is the full validation outcome for a candidate mesh.
type Report struct {
	Lambda           float64   `json:"lambda"`           // [m]
	RequiredMeshSize float64   `json:"requiredMeshSize"` // Δx_max [m]
	Radial           AxisCheck `json:"radial"`
	Circumferential  AxisCheck `json:"circumferential"`
	Axial            AxisCheck `json:"axial"`
	Pass             bool      `json:"pass"`
}

// Validate checks the candidate counts against the cellular constraint.
// safetyFactor is the λ/Δx ratio (10 means Δx ≤ λ/10). The circumferential
// extent is the domain arc length at the mean annulus radius. Equality
// counts as a pass.
func Validate(counts CellCounts, g rde.Geometry, lambda, safetyFactor float64) (r Report) {
	r.Lambda = lambda
	if safetyFactor <= 0 || lambda <= 0 {
		return
	}
	r.RequiredMeshSize = lambda / safetyFactor

	r.Radial = checkAxis("radial", g.AnnularGap(), counts.Radial, r.RequiredMeshSize)
	r.Circumferential = checkAxis("circumferential", g.MeanCircumference(),
		counts.Circumferential, r.RequiredMeshSize)
	r.Axial = checkAxis("axial", g.ChamberLength, counts.Axial, r.RequiredMeshSize)

	r.Pass = r.Radial.Pass && r.Circumferential.Pass && r.Axial.Pass
	return
}

func checkAxis(name string, extent float64, cells int, required float64) (a AxisCheck) {
	a.Name = name
	a.Extent = extent
	a.Cells = cells
	if extent <= 0 {
		// degenerate axis: nothing to resolve
		a.Pass = true
		return
	}
	// NODETOL absorbs roundoff so exact λ/safetyFactor resolutions pass
	a.MinCells = int(math.Ceil(extent / required * (1.0 - utils.NODETOL)))
	if cells <= 0 {
		return
	}
	a.CellSize = extent / float64(cells)
	a.Pass = a.CellSize <= required*(1.0+utils.NODETOL)
	return
}
