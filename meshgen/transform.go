package meshgen

import (
	"math"

	"github.com/notargets/geomesh/mesh"
)

// EquilateralTransform rewrites every node coordinate in place with the
// shear and vertical scale
//
//	x' = x - 0.5*y
//	y' = y * sqrt(3)/2
//
// which maps a unit-spaced right-triangle lattice onto a lattice of
// equilateral triangles with unit edge length. Topology is untouched. The
// equilateral property only holds when the input coordinates are the raw
// integer lattice positions of a unit-spaced structured grid.
func EquilateralTransform(m *mesh.Mesh) {
	c := math.Sqrt(3) / 2
	for nodeIdx := range m.Nodes.X {
		x, y := m.Nodes.X[nodeIdx], m.Nodes.Y[nodeIdx]
		m.Nodes.X[nodeIdx] = x - 0.5*y
		m.Nodes.Y[nodeIdx] = y * c
	}
}
