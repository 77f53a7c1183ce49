package InputParameters

import (
	"fmt"
	"math"

	"github.com/ghodss/yaml"

	"github.com/notargets/gorde/meshcheck"
	"github.com/notargets/gorde/rde"
)

// Parameters obtained from the YAML case input file
type CaseParameters struct {
	Title string `json:"Title"`

	// Mixture and operating conditions
	Fuel                 string  `json:"Fuel"`
	Oxidizer             string  `json:"Oxidizer"`
	EquivalenceRatio     float64 `json:"EquivalenceRatio"`
	ChamberPressure      float64 `json:"ChamberPressure"`
	InjectionTemperature float64 `json:"InjectionTemperature"`
	InjectionVelocity    float64 `json:"InjectionVelocity"`

	// Annular chamber
	InnerRadius    float64 `json:"InnerRadius"`
	OuterRadius    float64 `json:"OuterRadius"`
	ChamberLength  float64 `json:"ChamberLength"`
	DomainAngle    float64 `json:"DomainAngle"` // 0 means full annulus
	NumInjectors   int     `json:"NumInjectors"`
	InjectionAngle float64 `json:"InjectionAngle"` // [degrees]

	// Candidate mesh resolution
	RadialCells          int     `json:"RadialCells"`
	CircumferentialCells int     `json:"CircumferentialCells"`
	AxialCells           int     `json:"AxialCells"`
	SafetyFactor         float64 `json:"SafetyFactor"` // λ/Δx ratio

	// Wave analysis
	WaveCount      int     `json:"WaveCount"`
	SimulationTime float64 `json:"SimulationTime"` // [s]
}

func (cp *CaseParameters) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, cp); err != nil {
		return err
	}
	if cp.OuterRadius <= cp.InnerRadius {
		return fmt.Errorf("outer radius (%v) must exceed inner radius (%v)",
			cp.OuterRadius, cp.InnerRadius)
	}
	if cp.SafetyFactor == 0 {
		cp.SafetyFactor = 1.0 / meshcheck.DefaultSafetyFraction
	}
	if cp.WaveCount == 0 {
		cp.WaveCount = 1
	}
	return nil
}

func (cp *CaseParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", cp.Title)
	fmt.Printf("[%s / %s]\t= Mixture\n", cp.Fuel, cp.Oxidizer)
	fmt.Printf("%8.5f\t\t= EquivalenceRatio\n", cp.EquivalenceRatio)
	fmt.Printf("%8.1f\t\t= ChamberPressure\n", cp.ChamberPressure)
	fmt.Printf("%8.2f\t\t= InjectionTemperature\n", cp.InjectionTemperature)
	fmt.Printf("%8.2f\t\t= InjectionVelocity\n", cp.InjectionVelocity)
	fmt.Printf("%8.5f / %8.5f\t= InnerRadius / OuterRadius\n", cp.InnerRadius, cp.OuterRadius)
	fmt.Printf("%8.5f\t\t= ChamberLength\n", cp.ChamberLength)
	fmt.Printf("[%d]\t\t\t= NumInjectors\n", cp.NumInjectors)
	fmt.Printf("[%d x %d x %d]\t= Radial x Circumferential x Axial cells\n",
		cp.RadialCells, cp.CircumferentialCells, cp.AxialCells)
	fmt.Printf("[%d]\t\t\t= WaveCount\n", cp.WaveCount)
}

// Chemistry derives the C-J state for the case's mixture.
func (cp *CaseParameters) Chemistry() rde.Chemistry {
	return rde.NewChemistry(cp.Fuel, cp.Oxidizer, cp.EquivalenceRatio,
		cp.ChamberPressure, cp.InjectionTemperature, cp.InjectionVelocity)
}

// Geometry builds the annulus with evenly spaced injectors.
func (cp *CaseParameters) Geometry() rde.Geometry {
	g := rde.NewAnnulus(cp.InnerRadius, cp.OuterRadius, cp.ChamberLength, cp.NumInjectors)
	if cp.DomainAngle > 0 && cp.DomainAngle <= 2*math.Pi {
		g.DomainAngle = cp.DomainAngle
		for i := range g.InjectorPositions {
			g.InjectorPositions[i] = float64(i) * g.DomainAngle / float64(cp.NumInjectors)
		}
	}
	if cp.InjectionAngle > 0 {
		g.InjectionAngle = cp.InjectionAngle
	}
	return g
}

// CellCounts returns the candidate mesh resolution.
func (cp *CaseParameters) CellCounts() meshcheck.CellCounts {
	return meshcheck.CellCounts{
		Radial:          cp.RadialCells,
		Circumferential: cp.CircumferentialCells,
		Axial:           cp.AxialCells,
	}
}
