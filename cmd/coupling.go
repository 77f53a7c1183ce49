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

	"github.com/spf13/cobra"

	"github.com/notargets/gorde/cellmodel"
	"github.com/notargets/gorde/injection"
	"github.com/notargets/gorde/wave2d"
)

// couplingCmd represents the coupling command
var couplingCmd = &cobra.Command{
	Use:   "coupling",
	Short: "Analyze injection-wave coupling per injector",
	Long: `
Evaluates the interaction between each discrete fuel injector and a passing
detonation wave: phase alignment, momentum coupling and the
reinforcing/opposing/neutral classification.

gorde coupling -I case.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		cp := processCaseInput(cmd)
		chem := cp.Chemistry()
		geom := cp.Geometry()

		engine := wave2d.NewEngine(cellmodel.NewPredictor())
		seed := []wave2d.Wave2DPoint{{R: geom.MeanRadius(), WaveFront: true}}
		wave := engine.TrackPropagation(geom, chem, seed, cp.SimulationTime)

		interactions := injection.Analyze(geom, chem, wave)
		if len(interactions) == 0 {
			fmt.Println("No injectors configured")
			return
		}
		for _, ia := range interactions {
			fmt.Printf("injector %2d at θ = %6.3f rad: %-11s phase = %6.3f rad, "+
				"momentum coupling = %8.3e, ΔP = %8.3e Pa\n",
				ia.InjectorIndex, ia.InjectorTheta, ia.InteractionType,
				ia.WavePhase, ia.MomentumCoupling, ia.PressureDisturbance)
		}
	},
}

func init() {
	rootCmd.AddCommand(couplingCmd)
	couplingCmd.Flags().StringP("inputFile", "I", "", "YAML case input file")
}
