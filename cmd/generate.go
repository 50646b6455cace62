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
	"os"
	"path/filepath"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/zcl-maker/snrblast/InputParameters"
	"github.com/zcl-maker/snrblast/model_problems/SNRBlast"
	"github.com/zcl-maker/snrblast/readfiles"
)

type GenerateModel struct {
	ICFile    string
	OutputDir string
	Nx        [3]int
	Xmin      [3]float64
	Xmax      [3]float64
	NP        int
	Profile   bool
}

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Sample the blast profile over a uniform grid and write the fields",
	Long: `
Samples the blast wave initial condition at every cell center of a uniform
grid and writes one PLUTO style .dbl file per primitive variable, plus the
grid description, into the output directory.

snrblast generate -I blast.yaml -o out --nx 128 --ny 128 --nz 128`,
	Run: func(cmd *cobra.Command, args []string) {
		gm := &GenerateModel{}
		gm.ICFile, _ = cmd.Flags().GetString("inputConditionsFile")
		gm.OutputDir, _ = cmd.Flags().GetString("outputDir")
		gm.Nx[0], _ = cmd.Flags().GetInt("nx")
		gm.Nx[1], _ = cmd.Flags().GetInt("ny")
		gm.Nx[2], _ = cmd.Flags().GetInt("nz")
		ext, _ := cmd.Flags().GetFloat64("extent")
		for d := 0; d < 3; d++ {
			gm.Xmin[d], gm.Xmax[d] = -ext, ext
		}
		gm.NP, _ = cmd.Flags().GetInt("nproc")
		gm.Profile, _ = cmd.Flags().GetBool("profile")
		bp := processInput(gm.ICFile)
		RunGenerate(gm, bp)
	},
}

func processInput(icFile string) (bp *InputParameters.BlastParameters) {
	var (
		err error
	)
	if len(icFile) == 0 {
		err = fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "CTB 109"
Profile: blast          # or freeExpansion
Geometry: cartesian     # or cylindrical
EjectaEnergy: 1.
EjectaMass: 1.
EjectaRadius: 0.5
HydrogenDensity: 1.
MeanMolecularWeight: 1.4
EjectaFraction: 0.3
DensityExponent: 2.
Bmag: 0.01
Theta: 30.
Phi: 45.
Temperature: 1.e4
Gamma: 1.667
BackgroundField: false
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	var data []byte
	if data, err = os.ReadFile(icFile); err != nil {
		panic(err)
	}
	bp = InputParameters.NewBlastParameters()
	if err = bp.Parse(data); err != nil {
		fmt.Printf("error in %s: %s\n", icFile, err.Error())
		os.Exit(1)
	}
	return
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file holding the blast parameters")
	generateCmd.Flags().StringP("outputDir", "o", ".", "directory receiving grid.out and the .dbl field files")
	generateCmd.Flags().Int("nx", 64, "number of cells along x1")
	generateCmd.Flags().Int("ny", 64, "number of cells along x2")
	generateCmd.Flags().Int("nz", 64, "number of cells along x3")
	generateCmd.Flags().Float64("extent", 1.0, "domain half width, the grid covers [-extent, extent] per dimension")
	generateCmd.Flags().IntP("nproc", "p", 0, "number of parallel workers, 0 = NumCPU")
	generateCmd.Flags().Bool("profile", false, "write a CPU profile of the grid fill")
}

func RunGenerate(gm *GenerateModel, bp *InputParameters.BlastParameters) {
	bp.Print()
	bl, err := SNRBlast.NewBlast(bp)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	g, err := SNRBlast.NewGrid(gm.Nx, gm.Xmin, gm.Xmax)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	fmt.Printf("Sampling %d cells on [%g,%g]^3, core radius %8.5f, expansion time %8.5f\n",
		g.NumCells(), gm.Xmin[0], gm.Xmax[0], bl.RCore, bl.Time0)

	if gm.Profile {
		defer profile.Start(profile.CPUProfile).Stop()
	}
	f := bl.FillGrid(g, gm.NP)

	sum := f.Summarize(g.CellVolume(), bl.Gamma)
	sum.Print()

	if err = writeFields(gm.OutputDir, g, f); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	fmt.Printf("Fields written to %s\n", gm.OutputDir)
}

func writeFields(dir string, g *SNRBlast.Grid, f *SNRBlast.Fields) (err error) {
	if err = os.MkdirAll(dir, 0755); err != nil {
		return
	}
	if err = readfiles.WriteGridFile(filepath.Join(dir, "grid.out"), g.Edges); err != nil {
		return
	}
	for _, name := range SNRBlast.VarNames {
		var v []float64
		if v, err = f.Var(name); err != nil {
			return
		}
		if err = readfiles.WriteDBLFile(filepath.Join(dir, name+".dbl"), v); err != nil {
			return
		}
	}
	return
}
