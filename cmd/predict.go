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
)

// predictCmd represents the predict command
var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict the detonation cell size for a mixture",
	Long: `
Predicts the detonation cell size λ from mixture chemistry and operating
conditions using the fixed-weight inference model, and reports the
correlation estimate, the validation uncertainty and any advisory warnings.

gorde predict --fuel hydrogen --phi 1.0`,
	Run: func(cmd *cobra.Command, args []string) {
		fuel, _ := cmd.Flags().GetString("fuel")
		oxidizer, _ := cmd.Flags().GetString("oxidizer")
		phi, _ := cmd.Flags().GetFloat64("phi")
		pressure, _ := cmd.Flags().GetFloat64("pressure")
		temperature, _ := cmd.Flags().GetFloat64("temperature")
		velocity, _ := cmd.Flags().GetFloat64("velocity")

		chem := rde.NewChemistry(fuel, oxidizer, phi, pressure, temperature, velocity)
		p := cellmodel.NewPredictor()
		warnings := p.ValidateInputs(chem)
		chem = p.Annotate(chem)

		fmt.Printf("Mixture: %s / %s, phi = %.3f\n", chem.FuelType, chem.OxidizerType, chem.EquivalenceRatio)
		fmt.Printf("C-J velocity    = %8.1f m/s\n", chem.DetonationVelocity)
		fmt.Printf("C-J pressure    = %8.3e Pa\n", chem.DetonationPressure)
		fmt.Printf("C-J temperature = %8.1f K\n", chem.DetonationTemperature)
		fmt.Printf("Induction length ΔI = %8.3e m\n", chem.InductionLength)
		fmt.Printf("C-J Mach number     = %8.3f\n", chem.CJMachNumber)
		fmt.Printf("Max thermicity      = %8.3e 1/s\n", chem.MaxThermicity)
		fmt.Printf("Predicted cell size λ = %8.3e m\n", chem.CellSize)
		fmt.Printf("Correlation estimate  = %8.3e m\n", p.CorrelationCellSize(chem))
		fmt.Printf("Validation uncertainty = %5.1f%%\n", p.PredictionUncertainty(chem)*100)

		for _, w := range warnings {
			fmt.Printf("warning: %s\n", w)
		}
	},
}

func init() {
	rootCmd.AddCommand(predictCmd)
	predictCmd.Flags().StringP("fuel", "f", "hydrogen", "fuel type: hydrogen, methane, propane")
	predictCmd.Flags().StringP("oxidizer", "o", "air", "oxidizer type")
	predictCmd.Flags().Float64P("phi", "p", 1.0, "equivalence ratio")
	predictCmd.Flags().Float64("pressure", rde.ReferencePressure, "chamber pressure [Pa]")
	predictCmd.Flags().Float64("temperature", 300, "injection temperature [K]")
	predictCmd.Flags().Float64("velocity", 100, "injection velocity [m/s]")
}
