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

	"github.com/zcl-maker/snrblast/model_problems/SNRBlast"
)

// probeCmd represents the probe command
var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Evaluate the initial state at a single coordinate",
	Long: `
Evaluates the blast wave initial condition at one coordinate and prints the
primitive state, handy for sanity checking a parameter file before
committing to a full grid.

snrblast probe -I blast.yaml --x1 0.2 --x2 0. --x3 0.`,
	Run: func(cmd *cobra.Command, args []string) {
		icFile, _ := cmd.Flags().GetString("inputConditionsFile")
		x1, _ := cmd.Flags().GetFloat64("x1")
		x2, _ := cmd.Flags().GetFloat64("x2")
		x3, _ := cmd.Flags().GetFloat64("x3")
		bp := processInput(icFile)
		bl, err := SNRBlast.NewBlast(bp)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			return
		}
		s := bl.Init(x1, x2, x3)
		fmt.Printf("State at (%g, %g, %g):\n", x1, x2, x3)
		fmt.Printf("%12.5e\t= Rho\n", s.Rho)
		fmt.Printf("%12.5e\t= VX1\n%12.5e\t= VX2\n%12.5e\t= VX3\n", s.V[0], s.V[1], s.V[2])
		fmt.Printf("%12.5e\t= Prs\n", s.Prs)
		fmt.Printf("%12.5e\t= BX1\n%12.5e\t= BX2\n%12.5e\t= BX3\n", s.B[0], s.B[1], s.B[2])
		fmt.Printf("%12.5e\t= AX1\n%12.5e\t= AX2\n%12.5e\t= AX3\n", s.A[0], s.A[1], s.A[2])
		if bl.SplitField {
			B0 := bl.BackgroundField(x1, x2, x3)
			fmt.Printf("%12.5e\t= Background BX1\n%12.5e\t= Background BX2\n%12.5e\t= Background BX3\n",
				B0[0], B0[1], B0[2])
		}
	},
}

func init() {
	rootCmd.AddCommand(probeCmd)
	probeCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file holding the blast parameters")
	probeCmd.Flags().Float64("x1", 0, "x1 coordinate")
	probeCmd.Flags().Float64("x2", 0, "x2 coordinate")
	probeCmd.Flags().Float64("x3", 0, "x3 coordinate")
}
