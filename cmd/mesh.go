/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/spf13/cobra"

	"github.com/notargets/gorde/InputParameters"
	"github.com/notargets/gorde/cellmodel"
	"github.com/notargets/gorde/meshcheck"
)

// meshCmd represents the mesh command
var meshCmd = &cobra.Command{
	Use:   "mesh",
	Short: "Validate a candidate mesh against the cellular constraint",
	Long: `
Checks candidate radial/circumferential/axial cell counts against the λ/10
cellular resolution rule, reporting per-axis pass/fail and the corrective
minimum counts.

gorde mesh -I case.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		cp := processCaseInput(cmd)
		chem := cp.Chemistry()
		geom := cp.Geometry()

		p := cellmodel.NewPredictor()
		lambda := p.PredictCellSize(chem)

		report := meshcheck.Validate(cp.CellCounts(), geom, lambda, cp.SafetyFactor)
		fmt.Printf("Cell size λ        = %8.3e m\n", report.Lambda)
		fmt.Printf("Required mesh size = %8.3e m (λ/%g)\n", report.RequiredMeshSize, cp.SafetyFactor)
		for _, a := range []meshcheck.AxisCheck{report.Radial, report.Circumferential, report.Axial} {
			status := "PASS"
			if !a.Pass {
				status = "FAIL"
			}
			fmt.Printf("%-16s cells = %6d, Δx = %8.3e m -> %s", a.Name, a.Cells, a.CellSize, status)
			if !a.Pass {
				fmt.Printf(" (minimum %d cells)", a.MinCells)
			}
			fmt.Println()
		}
		if report.Pass {
			fmt.Println("Overall validation: PASS")
		} else {
			fmt.Println("Overall validation: FAIL")
		}
	},
}

func init() {
	rootCmd.AddCommand(meshCmd)
	meshCmd.Flags().StringP("inputFile", "I", "", "YAML case input file")
}

func processCaseInput(cmd *cobra.Command) (cp *InputParameters.CaseParameters) {
	fileName, _ := cmd.Flags().GetString("inputFile")
	if len(fileName) == 0 {
		fmt.Printf("error: must supply a case input file (-I, --inputFile) in YAML format\n")
		exampleFile := `
########################################
Title: "H2-Air RDE"
Fuel: hydrogen
Oxidizer: air
EquivalenceRatio: 1.0
ChamberPressure: 101325.
InjectionTemperature: 300.
InjectionVelocity: 100.
InnerRadius: 0.03
OuterRadius: 0.05
ChamberLength: 0.1
NumInjectors: 12
RadialCells: 50
CircumferentialCells: 200
AxialCells: 100
SafetyFactor: 10.
WaveCount: 1
SimulationTime: 0.001
########################################
`
		fmt.Printf("Example YAML case input file:%s\n", exampleFile)
		os.Exit(1)
	}
	data, err := ioutil.ReadFile(fileName)
	if err != nil {
		fmt.Printf("error reading input file %s: %s\n", fileName, err.Error())
		os.Exit(1)
	}
	cp = &InputParameters.CaseParameters{}
	if err = cp.Parse(data); err != nil {
		fmt.Printf("error parsing input file %s: %s\n", fileName, err.Error())
		os.Exit(1)
	}
	cp.Print()
	return
}
