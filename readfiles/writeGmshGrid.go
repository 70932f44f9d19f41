package readfiles

import (
	"bufio"
	"fmt"
	"os"

	"github.com/notargets/geomesh/mesh"
)

// WriteGmsh writes the mesh in Gmsh 2.2 ASCII format for inspection in
// external viewers. Nodes get a zero z coordinate; triangles are element
// type 2 with two zero tags. Node and element ids are 1-based per the
// format.
func WriteGmsh(m *mesh.Mesh, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrGridIO, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "$MeshFormat\n2.2 0 8\n$EndMeshFormat\n")

	fmt.Fprintf(w, "$Nodes\n%d\n", m.Nodes.Count())
	for nodeIdx := 0; nodeIdx < m.Nodes.Count(); nodeIdx++ {
		fmt.Fprintf(w, "%d %.17g %.17g 0\n",
			nodeIdx+1, m.Nodes.X[nodeIdx], m.Nodes.Y[nodeIdx])
	}
	fmt.Fprintf(w, "$EndNodes\n")

	fmt.Fprintf(w, "$Elements\n%d\n", m.Cells.Count())
	for cellIdx := 0; cellIdx < m.Cells.Count(); cellIdx++ {
		fmt.Fprintf(w, "%d 2 2 0 0 %d %d %d\n", cellIdx+1,
			m.Cells.NodeConnectivity.At(cellIdx, 0)+1,
			m.Cells.NodeConnectivity.At(cellIdx, 1)+1,
			m.Cells.NodeConnectivity.At(cellIdx, 2)+1)
	}
	fmt.Fprintf(w, "$EndElements\n")

	if err = w.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrGridIO, err)
	}
	return nil
}
