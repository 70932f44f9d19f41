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

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/notargets/geomesh/InputParameters"
	"github.com/notargets/geomesh/mesh"
	"github.com/notargets/geomesh/meshgen"
	"github.com/notargets/geomesh/readfiles"
)

// RectCmd represents the rect command
var RectCmd = &cobra.Command{
	Use:   "rect",
	Short: "Generate a rectangular strip of equilateral triangles",
	Long: `
Generates a strip mesh of ny rows of equilateral triangles, roughly twice
as wide as tall, centered on the origin with a y extent of 180 degrees.
Parameters come from flags or a YAML parameters file (-I).`,
	Run: func(cmd *cobra.Command, args []string) {
		mp := processMeshInput(cmd)
		if prof, _ := cmd.Flags().GetBool("profile"); prof {
			defer profile.Start(profile.CPUProfile).Stop()
		}
		runRect(mp)
	},
}

func processMeshInput(cmd *cobra.Command) (mp *InputParameters.MeshParameters) {
	mp = &InputParameters.MeshParameters{}
	paramFile, _ := cmd.Flags().GetString("parametersFile")
	if len(paramFile) != 0 {
		data, err := ioutil.ReadFile(paramFile)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		if err = mp.Parse(data); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		mp.Print()
	}
	if ny, _ := cmd.Flags().GetInt("ny"); ny != 0 {
		mp.NY = ny
	}
	if out, _ := cmd.Flags().GetString("outputFile"); len(out) != 0 {
		mp.OutputFile = out
	}
	if be, _ := cmd.Flags().GetBool("buildEdges"); be {
		mp.BuildEdges = true
	}
	return
}

func runRect(mp *InputParameters.MeshParameters) {
	m, err := meshgen.BuildRectMesh(mp.NY)
	if err != nil {
		log.Fatal(err)
	}
	if mp.BuildEdges {
		mesh.BuildEdges(m)
	}
	m.PrintStatistics()
	if len(mp.OutputFile) != 0 {
		if err = readfiles.WriteGmsh(m, mp.OutputFile); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("wrote %s\n", mp.OutputFile)
	}
}

func init() {
	rootCmd.AddCommand(RectCmd)
	RectCmd.Flags().IntP("ny", "n", 0, "number of triangle rows, nx = 3*ny")
	RectCmd.Flags().StringP("parametersFile", "I", "", "YAML file for mesh parameters like:\n\t- NY\n\t- OutputFile")
	RectCmd.Flags().StringP("outputFile", "o", "", "write the mesh in Gmsh 2.2 ASCII format")
	RectCmd.Flags().BoolP("buildEdges", "e", false, "derive edge elements and connectivity tables")
	RectCmd.Flags().Bool("profile", false, "write a CPU profile of the generation")
}
