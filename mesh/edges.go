package mesh

import (
	"github.com/james-bowman/sparse"
)

// BuildEdges derives the unique edges of a triangle mesh from its
// cell-to-node connectivity and fills the edge-to-node, edge-to-cell and
// cell-to-edge tables. Existing edge data is replaced.
//
// Each triangle contributes 3 half-edges; half-edge k of a cell connects
// the cell's local nodes k and (k+1)%3. Two half-edges describe the same
// interior edge iff they share both endpoints, which is detected through
// the incidence product: with H the (half-edge x node) 0/1 incidence
// matrix, (H*Hᵀ)(i,j) == 2 exactly for such pairs. Unpaired half-edges are
// boundary edges with a single adjacent cell.
func BuildEdges(m *Mesh) {
	numCells := m.Cells.Count()
	numHalf := 3 * numCells

	incidence := sparse.NewDOK(numHalf, m.Nodes.Count())
	for cellIdx := 0; cellIdx < numCells; cellIdx++ {
		for k := 0; k < 3; k++ {
			half := 3*cellIdx + k
			incidence.Set(half, m.Cells.NodeConnectivity.At(cellIdx, k), 1)
			incidence.Set(half, m.Cells.NodeConnectivity.At(cellIdx, (k+1)%3), 1)
		}
	}

	shared := sparse.NewCSR(numHalf, numHalf, nil, nil, nil)
	hh := incidence.ToCSR()
	shared.Mul(hh, hh.T())

	partner := make([]int, numHalf)
	for i := range partner {
		partner[i] = MissingValue
	}
	shared.DoNonZero(func(i, j int, v float64) {
		if i != j && v == 2 {
			partner[i] = j
		}
	})

	// Number the unique edges in half-edge order: each edge is claimed by
	// its lowest-numbered half-edge.
	edgeOf := make([]int, numHalf)
	numEdges := 0
	for half := 0; half < numHalf; half++ {
		if p := partner[half]; p != MissingValue && p < half {
			edgeOf[half] = edgeOf[p]
			continue
		}
		edgeOf[half] = numEdges
		numEdges++
	}

	m.Edges.AddLines(numEdges)
	m.Cells.EdgeConnectivity = NewConnectivity(numCells, 3)

	for half := 0; half < numHalf; half++ {
		cellIdx, k := half/3, half%3
		edgeIdx := edgeOf[half]
		m.Cells.EdgeConnectivity.Set(cellIdx, k, edgeIdx)
		if p := partner[half]; p != MissingValue && p < half {
			// Second visit of an interior edge: record the other cell.
			m.Edges.CellConnectivity.Set(edgeIdx, 1, cellIdx)
			continue
		}
		m.Edges.NodeConnectivity.Set(edgeIdx, 0, m.Cells.NodeConnectivity.At(cellIdx, k))
		m.Edges.NodeConnectivity.Set(edgeIdx, 1, m.Cells.NodeConnectivity.At(cellIdx, (k+1)%3))
		m.Edges.CellConnectivity.Set(edgeIdx, 0, cellIdx)
	}
}
