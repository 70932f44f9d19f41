package mesh

import "fmt"

// MissingValue marks unset entries in fixed-stride connectivity tables,
// e.g. the padding in a node-to-cell table where a boundary node has
// fewer neighbors than the table stride.
const MissingValue = -1

// DefaultPartition is the partition id assigned to every element. Only
// single-partition meshes are supported: remote indices equal global
// indices and no ghost elements exist.
const DefaultPartition = 0

// Nodes holds the per-node data of a mesh. Coordinates are planar (x, y);
// for imported geophysical grids they are lon/lat in degrees.
type Nodes struct {
	X, Y []float64

	GlobalIndex []int
	RemoteIndex []int
	Partition   []int
	Ghost       []bool
	Flags       []int

	// Optional neighbor tables, nil until built or imported
	CellConnectivity *Connectivity
	EdgeConnectivity *Connectivity
}

// Count returns the number of nodes.
func (n *Nodes) Count() int {
	return len(n.X)
}

// Resize grows the node set to count entries with single-partition
// housekeeping defaults: global index == remote index == position,
// partition 0, no ghosts, cleared flags.
func (n *Nodes) Resize(count int) {
	n.X = make([]float64, count)
	n.Y = make([]float64, count)
	n.GlobalIndex = make([]int, count)
	n.RemoteIndex = make([]int, count)
	n.Partition = make([]int, count)
	n.Ghost = make([]bool, count)
	n.Flags = make([]int, count)
	for i := 0; i < count; i++ {
		n.GlobalIndex[i] = i
		n.RemoteIndex[i] = i
		n.Partition[i] = DefaultPartition
	}
}

// Cells holds the triangle elements. NodeConnectivity has stride 3.
type Cells struct {
	NodeConnectivity *Connectivity
	EdgeConnectivity *Connectivity

	GlobalIndex []int
	Partition   []int
}

// Count returns the number of cells.
func (c *Cells) Count() int {
	if c.NodeConnectivity == nil {
		return 0
	}
	return c.NodeConnectivity.Rows()
}

// AddTriangles appends count triangle cells with unset node connectivity
// and dense global indices.
func (c *Cells) AddTriangles(count int) {
	c.NodeConnectivity = NewConnectivity(count, 3)
	c.GlobalIndex = make([]int, count)
	c.Partition = make([]int, count)
	for i := 0; i < count; i++ {
		c.GlobalIndex[i] = i
		c.Partition[i] = DefaultPartition
	}
}

// Edges holds the line elements connecting node pairs. NodeConnectivity
// has stride 2; CellConnectivity lists up to 2 adjacent cells.
type Edges struct {
	NodeConnectivity *Connectivity
	CellConnectivity *Connectivity

	GlobalIndex []int
	Partition   []int
}

// Count returns the number of edges.
func (e *Edges) Count() int {
	if e.NodeConnectivity == nil {
		return 0
	}
	return e.NodeConnectivity.Rows()
}

// AddLines appends count edge elements with unset connectivity and dense
// global indices.
func (e *Edges) AddLines(count int) {
	e.NodeConnectivity = NewConnectivity(count, 2)
	e.CellConnectivity = NewConnectivity(count, 2)
	e.GlobalIndex = make([]int, count)
	e.Partition = make([]int, count)
	for i := 0; i < count; i++ {
		e.GlobalIndex[i] = i
		e.Partition[i] = DefaultPartition
	}
}

// Mesh is an unstructured triangular mesh: nodes with planar coordinates,
// triangle cells, and optional edges and neighbor tables. A Mesh is built
// by a generator or importer and owned by the caller afterwards; no
// internal state is shared between meshes.
type Mesh struct {
	Nodes Nodes
	Cells Cells
	Edges Edges
}

// NewMesh creates an empty mesh.
func NewMesh() *Mesh {
	return &Mesh{}
}

// HasEdges reports whether edge elements are present.
func (m *Mesh) HasEdges() bool {
	return m.Edges.Count() > 0
}

// PrintStatistics prints element counts and coordinate extent.
func (m *Mesh) PrintStatistics() {
	fmt.Printf("Mesh Statistics:\n")
	fmt.Printf("  Nodes: %d\n", m.Nodes.Count())
	fmt.Printf("  Cells: %d\n", m.Cells.Count())
	fmt.Printf("  Edges: %d\n", m.Edges.Count())
}
