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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/notargets/geomesh/mesh"
	"github.com/notargets/geomesh/readfiles"
)

// ImportCmd represents the import command
var ImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import an ICON grid from a NetCDF file",
	Long: `
Reads an unstructured triangle grid in the ICON NetCDF convention. By
default only nodes and cells are imported; --complete also requires the
edge and neighbor connectivity tables.`,
	Run: func(cmd *cobra.Command, args []string) {
		gridFile, _ := cmd.Flags().GetString("gridFile")
		if len(gridFile) == 0 {
			fmt.Printf("error: must supply a grid file (-F, --gridFile) in ICON NetCDF format\n")
			os.Exit(1)
		}
		complete, _ := cmd.Flags().GetBool("complete")
		outFile, _ := cmd.Flags().GetString("outputFile")
		runImport(gridFile, outFile, complete)
	},
}

func runImport(gridFile, outFile string, complete bool) {
	var (
		m   *mesh.Mesh
		err error
	)
	if complete {
		m, err = readfiles.ReadICONComplete(gridFile)
	} else {
		m, err = readfiles.ReadICONMinimal(gridFile)
	}
	if err != nil {
		log.Fatal(err)
	}
	m.PrintStatistics()
	if len(outFile) != 0 {
		if err = readfiles.WriteGmsh(m, outFile); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("wrote %s\n", outFile)
	}
}

func init() {
	rootCmd.AddCommand(ImportCmd)
	ImportCmd.Flags().StringP("gridFile", "F", "", "grid file to read in ICON NetCDF format")
	ImportCmd.Flags().StringP("outputFile", "o", "", "write the imported mesh in Gmsh 2.2 ASCII format")
	ImportCmd.Flags().BoolP("complete", "c", false, "require edge and neighbor tables")
}
