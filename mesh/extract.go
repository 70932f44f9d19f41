package mesh

// ExtractSubmesh builds a new mesh containing exactly the listed cells,
// renumbered 0..len(cells)-1 in the given order, and exactly the nodes
// those cells reference, renumbered 0..m-1 in order of first appearance.
// Cell-to-node connectivity is rewritten to the new node numbering; node
// housekeeping (ghost flag, partition, topology flags) carries over, with
// global and remote indices reassigned densely. Edge elements and neighbor
// tables of the source mesh are not carried into the extraction.
func ExtractSubmesh(m *Mesh, cells []int) *Mesh {
	out := NewMesh()

	// First pass over the kept cells assigns new node numbers in order of
	// first appearance.
	nodeMap := make(map[int]int)
	keptNodes := make([]int, 0)
	for _, cellIdx := range cells {
		for col := 0; col < 3; col++ {
			nodeIdx := m.Cells.NodeConnectivity.At(cellIdx, col)
			if _, seen := nodeMap[nodeIdx]; !seen {
				nodeMap[nodeIdx] = len(keptNodes)
				keptNodes = append(keptNodes, nodeIdx)
			}
		}
	}

	out.Nodes.Resize(len(keptNodes))
	for newIdx, oldIdx := range keptNodes {
		out.Nodes.X[newIdx] = m.Nodes.X[oldIdx]
		out.Nodes.Y[newIdx] = m.Nodes.Y[oldIdx]
		out.Nodes.Partition[newIdx] = m.Nodes.Partition[oldIdx]
		out.Nodes.Ghost[newIdx] = m.Nodes.Ghost[oldIdx]
		out.Nodes.Flags[newIdx] = m.Nodes.Flags[oldIdx]
	}

	out.Cells.AddTriangles(len(cells))
	var tri [3]int
	for newIdx, cellIdx := range cells {
		for col := 0; col < 3; col++ {
			tri[col] = nodeMap[m.Cells.NodeConnectivity.At(cellIdx, col)]
		}
		out.Cells.NodeConnectivity.SetRow(newIdx, tri[:])
		out.Cells.Partition[newIdx] = m.Cells.Partition[cellIdx]
	}

	return out
}
