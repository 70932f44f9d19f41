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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/notargets/geomesh/mesh"
	"github.com/notargets/geomesh/meshgen"
	"github.com/notargets/geomesh/readfiles"
)

// StructuredCmd represents the structured command
var StructuredCmd = &cobra.Command{
	Use:   "structured",
	Short: "Triangulate a plain nx x ny structured lattice",
	Long: `
Generates the raw right-triangle lattice of a structured grid without any
clipping or rescaling, with a selectable quad diagonal orientation.
Useful for inspecting the generator output that feeds the rect builder.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			nx, _       = cmd.Flags().GetInt("nx")
			ny, _       = cmd.Flags().GetInt("ny")
			diag, _     = cmd.Flags().GetString("diagonal")
			shear, _    = cmd.Flags().GetBool("equilateral")
			edges, _    = cmd.Flags().GetBool("buildEdges")
			outFile, _  = cmd.Flags().GetString("outputFile")
			policy, err = meshgen.ParseDiagonalPolicy(diag)
		)
		if err != nil {
			log.Fatal(err)
		}
		if nx < 2 || ny < 2 {
			log.Fatalf("need at least a 2x2 lattice, got nx=%d ny=%d", nx, ny)
		}

		grid := meshgen.StructuredGrid{
			X: meshgen.LinearSpacing(0, float64(nx), nx, false),
			Y: meshgen.LinearSpacing(0, float64(ny), ny, false),
		}
		m := meshgen.Generator{Diagonal: policy}.Generate(grid)
		if shear {
			meshgen.EquilateralTransform(m)
		}
		if edges {
			mesh.BuildEdges(m)
		}
		m.PrintStatistics()
		if len(outFile) != 0 {
			if err = readfiles.WriteGmsh(m, outFile); err != nil {
				log.Fatal(err)
			}
			fmt.Printf("wrote %s\n", outFile)
		}
	},
}

func init() {
	rootCmd.AddCommand(StructuredCmd)
	StructuredCmd.Flags().IntP("nx", "x", 0, "lattice points along x")
	StructuredCmd.Flags().IntP("ny", "n", 0, "lattice points along y")
	StructuredCmd.Flags().StringP("diagonal", "d", "alternating", "quad diagonal policy: alternating, upright or upleft")
	StructuredCmd.Flags().Bool("equilateral", false, "apply the equilateral shear transform")
	StructuredCmd.Flags().BoolP("buildEdges", "e", false, "derive edge elements and connectivity tables")
	StructuredCmd.Flags().StringP("outputFile", "o", "", "write the mesh in Gmsh 2.2 ASCII format")
}
