package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type MeshParameters struct {
	Title      string `yaml:"Title"`
	NY         int    `yaml:"NY"`       // Rows of the rectangular strip, nx = 3*ny
	BuildEdges bool   `yaml:"BuildEdges"`
	OutputFile string `yaml:"OutputFile"`
}

func (mp *MeshParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, mp)
}

func (mp *MeshParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", mp.Title)
	fmt.Printf("[%d]\t\t\t= NY\n", mp.NY)
	fmt.Printf("[%v]\t\t\t= BuildEdges\n", mp.BuildEdges)
	fmt.Printf("[%s]\t\t= OutputFile\n", mp.OutputFile)
}
