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
	"github.com/notargets/gorde/rde"
	"github.com/notargets/gorde/wave2d"
)

// wavesCmd represents the waves command
var wavesCmd = &cobra.Command{
	Use:   "waves",
	Short: "Analyze annular wave dynamics and multi-wave interaction",
	Long: `
Synthesizes the 2D cellular field, tracks one or more detonation waves
around the annulus and classifies the multi-wave pattern.

gorde waves -I case.yaml -w 3`,
	Run: func(cmd *cobra.Command, args []string) {
		cp := processCaseInput(cmd)
		if n, _ := cmd.Flags().GetInt("waves"); n > 0 {
			cp.WaveCount = n
		}
		graph, _ := cmd.Flags().GetBool("graph")

		chem := cp.Chemistry()
		geom := cp.Geometry()
		p := cellmodel.NewPredictor()
		engine := wave2d.NewEngine(p)

		structure := engine.AnalyzeStructure(geom, chem)
		fmt.Printf("Mean cell size (2D)    = %8.3e m\n", structure.MeanCellSize)
		fmt.Printf("Curvature effect       = %5.1f%%\n", structure.CurvatureEffect*100)
		fmt.Printf("Structure regularity   = %5.2f\n", structure.StructureRegularity)
		occ := engine.TriplePointOccupancy(structure, geom)
		fmt.Printf("Triple point grid cells = %d\n", occ.NNZ())

		waves := make([]wave2d.WavePropagation2D, cp.WaveCount)
		for k := range waves {
			seed := []wave2d.Wave2DPoint{{
				R:         geom.MeanRadius(),
				Theta:     float64(k) * geom.DomainAngle / float64(cp.WaveCount),
				WaveFront: true,
			}}
			waves[k] = engine.TrackPropagation(geom, chem, seed, cp.SimulationTime)
		}

		system := engine.AnalyzeMultiWave(geom, chem, waves)
		fmt.Printf("Wave count       = %d\n", system.WaveCount)
		fmt.Printf("Wave pattern     = %s\n", system.WavePattern)
		fmt.Printf("Stability index  = %5.2f\n", system.StabilityIndex)
		fmt.Printf("System frequency = %8.1f Hz\n", system.SystemFrequency)
		fmt.Printf("Collision pairs  = %d\n", len(system.CollisionPairs))

		op := rde.ComputeOperatingPoint(geom, chem)
		fmt.Printf("Operating wave speed = %8.1f m/s at %8.1f Hz\n", op.WaveSpeed, op.WaveFrequency)
		fmt.Printf("Pressure gain        = %8.2f\n", op.PressureGain)

		if graph {
			wave2d.PlotAnnulusTrajectories(geom, waves)
		}
	},
}

func init() {
	rootCmd.AddCommand(wavesCmd)
	wavesCmd.Flags().StringP("inputFile", "I", "", "YAML case input file")
	wavesCmd.Flags().IntP("waves", "w", 0, "number of waves (overrides case file)")
	wavesCmd.Flags().BoolP("graph", "g", false, "display the annulus trajectory plot")
}
