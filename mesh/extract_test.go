package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// twoQuadMesh builds a 3x2 lattice triangulated into 4 cells for the
// extraction tests:
//
//	3---4---5
//	| / | / |
//	0---1---2
func twoQuadMesh() *Mesh {
	m := NewMesh()
	m.Nodes.Resize(6)
	copy(m.Nodes.X, []float64{0, 1, 2, 0, 1, 2})
	copy(m.Nodes.Y, []float64{0, 0, 0, 1, 1, 1})
	m.Cells.AddTriangles(4)
	m.Cells.NodeConnectivity.SetRow(0, []int{0, 1, 4})
	m.Cells.NodeConnectivity.SetRow(1, []int{0, 4, 3})
	m.Cells.NodeConnectivity.SetRow(2, []int{1, 2, 5})
	m.Cells.NodeConnectivity.SetRow(3, []int{1, 5, 4})
	return m
}

func TestExtractSubmesh(t *testing.T) {
	m := twoQuadMesh()
	sub := ExtractSubmesh(m, []int{2, 3})

	// Cells renumbered in the given order, nodes in order of first
	// appearance: 1, 2, 5, 4
	assert.Equal(t, 2, sub.Cells.Count())
	assert.Equal(t, 4, sub.Nodes.Count())
	assert.Equal(t, []int{0, 1, 2}, sub.Cells.NodeConnectivity.Row(0))
	assert.Equal(t, []int{0, 2, 3}, sub.Cells.NodeConnectivity.Row(1))

	assert.Equal(t, []float64{1, 2, 2, 1}, sub.Nodes.X)
	assert.Equal(t, []float64{0, 0, 1, 1}, sub.Nodes.Y)

	// Dense housekeeping on the new index space
	assert.Equal(t, []int{0, 1, 2, 3}, sub.Nodes.GlobalIndex)
	assert.Equal(t, []int{0, 1}, sub.Cells.GlobalIndex)
}

func TestExtractSubmeshOrderMatters(t *testing.T) {
	m := twoQuadMesh()
	sub := ExtractSubmesh(m, []int{3, 2})

	// First kept cell is old cell 3, so its nodes claim numbers first
	assert.Equal(t, []int{0, 1, 2}, sub.Cells.NodeConnectivity.Row(0))
	assert.Equal(t, []float64{1, 2, 1, 2}, sub.Nodes.X)
	assert.Equal(t, []float64{0, 1, 1, 0}, sub.Nodes.Y)
}

func TestExtractSubmeshAll(t *testing.T) {
	m := twoQuadMesh()
	sub := ExtractSubmesh(m, []int{0, 1, 2, 3})
	assert.Equal(t, m.Cells.Count(), sub.Cells.Count())
	assert.Equal(t, m.Nodes.Count(), sub.Nodes.Count())
}

func TestExtractSubmeshEmpty(t *testing.T) {
	m := twoQuadMesh()
	sub := ExtractSubmesh(m, nil)
	assert.Equal(t, 0, sub.Cells.Count())
	assert.Equal(t, 0, sub.Nodes.Count())
}
