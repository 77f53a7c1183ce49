package rde

import (
	"math"
)

// Geometry describes an annular combustion chamber, possibly a partial
// annulus (DomainAngle < 2π), with discrete injectors at fixed angular
// positions. Invariant: OuterRadius > InnerRadius.
type Geometry struct {
	InnerRadius   float64 `json:"innerRadius"`   // [m]
	OuterRadius   float64 `json:"outerRadius"`   // [m]
	ChamberLength float64 `json:"chamberLength"` // axial length [m]
	DomainAngle   float64 `json:"domainAngle"`   // angular extent [rad], ≤ 2π

	InjectorPositions []float64 `json:"injectorPositions"` // θ each in [0, DomainAngle)
	NumInjectors      int       `json:"numInjectors"`
	InjectorWidth     float64   `json:"injectorWidth"`        // slot width [m]
	InjectionAngle    float64   `json:"injectionAngle"`       // [degrees]
	InjectionDepth    float64   `json:"injectionPenetration"` // [m]
}

// NewAnnulus builds a full annulus with nInjectors evenly spaced injectors.
func NewAnnulus(inner, outer, length float64, nInjectors int) (g Geometry) {
	g = Geometry{
		InnerRadius:    inner,
		OuterRadius:    outer,
		ChamberLength:  length,
		DomainAngle:    2 * math.Pi,
		NumInjectors:   nInjectors,
		InjectorWidth:  0.002,
		InjectionAngle: 90,
		InjectionDepth: 0.005,
	}
	if nInjectors > 0 {
		g.InjectorPositions = make([]float64, nInjectors)
		for i := range g.InjectorPositions {
			g.InjectorPositions[i] = float64(i) * g.DomainAngle / float64(nInjectors)
		}
	}
	return
}

func (g Geometry) AnnularGap() float64 {
	return g.OuterRadius - g.InnerRadius
}

func (g Geometry) MeanRadius() float64 {
	return 0.5 * (g.InnerRadius + g.OuterRadius)
}

// MeanCircumference is the arc length of the domain at the mean radius.
func (g Geometry) MeanCircumference() float64 {
	return g.MeanRadius() * g.DomainAngle
}

// WrapAngle normalizes theta into [0, DomainAngle).
func (g Geometry) WrapAngle(theta float64) float64 {
	if g.DomainAngle <= 0 {
		return 0
	}
	th := math.Mod(theta, g.DomainAngle)
	if th < 0 {
		th += g.DomainAngle
	}
	return th
}

// AngularDistance is the shortest wrapped angular distance between two
// positions in the domain.
func (g Geometry) AngularDistance(a, b float64) float64 {
	if g.DomainAngle <= 0 {
		return 0
	}
	d := math.Abs(g.WrapAngle(a) - g.WrapAngle(b))
	if d > g.DomainAngle/2 {
		d = g.DomainAngle - d
	}
	return d
}

// CylindricalToCartesian maps (r, θ) to (x, y).
func CylindricalToCartesian(r, theta float64) (x, y float64) {
	x = r * math.Cos(theta)
	y = r * math.Sin(theta)
	return
}

// CartesianToCylindrical maps (x, y) to (r, θ) with θ in [0, 2π).
func CartesianToCylindrical(x, y float64) (r, theta float64) {
	r = math.Hypot(x, y)
	theta = math.Atan2(y, x)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	return
}
