package meshgen

import (
	"fmt"

	"github.com/notargets/geomesh/mesh"
)

// DiagonalPolicy selects the diagonal orientation used when a structured
// grid quad is split into two triangles.
type DiagonalPolicy int

const (
	// DiagonalAlternating orients the diagonal by the sign of the quad's
	// lower y coordinate: up-right at y >= 0, up-left below. On a grid
	// that lies entirely in y >= 0 every quad comes out up-right.
	DiagonalAlternating DiagonalPolicy = iota
	// DiagonalUpRight always connects the quad's lower-left corner to its
	// upper-right corner.
	DiagonalUpRight
	// DiagonalUpLeft always connects the quad's lower-right corner to its
	// upper-left corner.
	DiagonalUpLeft
)

func (d DiagonalPolicy) String() string {
	return [...]string{"Alternating", "UpRight", "UpLeft"}[d]
}

// ParseDiagonalPolicy converts a configuration string to a DiagonalPolicy.
func ParseDiagonalPolicy(label string) (DiagonalPolicy, error) {
	switch label {
	case "", "alternating":
		return DiagonalAlternating, nil
	case "upright":
		return DiagonalUpRight, nil
	case "upleft":
		return DiagonalUpLeft, nil
	default:
		return 0, fmt.Errorf("unknown diagonal policy: %s", label)
	}
}

// StructuredGrid is a lattice of points addressable by 2D integer indices,
// defined by its per-axis sample positions.
type StructuredGrid struct {
	X, Y []float64
}

// Generator triangulates a StructuredGrid into an unstructured mesh, two
// triangles per lattice quad.
type Generator struct {
	Diagonal DiagonalPolicy
}

// Generate builds the triangulated mesh for grid. Nodes are numbered
// row-major (y-major: node j*nx+i sits at (X[i], Y[j])); quads are visited
// row-major and contribute two cells each, so cell numbering is
// deterministic. All elements carry single-partition housekeeping.
func (g Generator) Generate(grid StructuredGrid) *mesh.Mesh {
	var (
		nx = len(grid.X)
		ny = len(grid.Y)
		m  = mesh.NewMesh()
	)
	m.Nodes.Resize(nx * ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			nodeIdx := j*nx + i
			m.Nodes.X[nodeIdx] = grid.X[i]
			m.Nodes.Y[nodeIdx] = grid.Y[j]
		}
	}

	numQuads := 0
	if nx > 1 && ny > 1 {
		numQuads = (nx - 1) * (ny - 1)
	}
	m.Cells.AddTriangles(2 * numQuads)

	cellIdx := 0
	for j := 0; j < ny-1; j++ {
		for i := 0; i < nx-1; i++ {
			var (
				v00 = j*nx + i
				v10 = j*nx + i + 1
				v01 = (j+1)*nx + i
				v11 = (j+1)*nx + i + 1
			)
			upRight := true
			switch g.Diagonal {
			case DiagonalAlternating:
				upRight = grid.Y[j] >= 0
			case DiagonalUpLeft:
				upRight = false
			}
			if upRight {
				m.Cells.NodeConnectivity.SetRow(cellIdx, []int{v00, v10, v11})
				m.Cells.NodeConnectivity.SetRow(cellIdx+1, []int{v00, v11, v01})
			} else {
				m.Cells.NodeConnectivity.SetRow(cellIdx, []int{v00, v10, v01})
				m.Cells.NodeConnectivity.SetRow(cellIdx+1, []int{v10, v11, v01})
			}
			cellIdx += 2
		}
	}
	return m
}
