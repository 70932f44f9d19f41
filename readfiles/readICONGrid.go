package readfiles

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/ctessum/cdf"
	"github.com/ctessum/sparse"
	log "github.com/sirupsen/logrus"

	"github.com/notargets/geomesh/mesh"
)

// Import failures fall into two categories, distinguishable with
// errors.Is: the file does not describe the expected kind of grid, or the
// file could not be read at all. Neither is ever raised as a panic.
var (
	// ErrMalformedGrid marks files readable as NetCDF but not holding an
	// ICON triangle grid of the expected shape.
	ErrMalformedGrid = errors.New("malformed ICON grid")
	// ErrGridIO marks files that could not be opened or decoded.
	ErrGridIO = errors.New("ICON grid read fault")
)

// Neighbor-table cardinalities of the ICON grid convention. Six is the
// maximum node degree; nodes with fewer neighbors are padded with a
// missing-value sentinel in the file.
const (
	verticesPerEdge = 2
	cellsPerEdge    = 2
	cellsPerNode    = 6
	edgesPerNode    = 6
	edgesPerCell    = 3
)

// ReadICONMinimal imports the nodes and triangle cells of an ICON NetCDF
// grid file: coordinates from vlon/vlat (radians, converted to degrees)
// and the cell-to-node table from vertex_of_cell (1-based, converted to
// 0-based). All elements get single-partition housekeeping. The error, if
// any, wraps ErrMalformedGrid or ErrGridIO.
func ReadICONMinimal(filename string) (*mesh.Mesh, error) {
	f, file, err := openGrid(filename)
	if err != nil {
		log.WithField("file", filename).Warn(err)
		return nil, err
	}
	defer f.Close()

	m := mesh.NewMesh()
	if err = nodesFromFile(file, m); err != nil {
		log.WithField("file", filename).Warn(err)
		return nil, err
	}
	if err = cellsFromFile(file, m); err != nil {
		log.WithField("file", filename).Warn(err)
		return nil, err
	}
	return m, nil
}

// ReadICONComplete imports an ICON grid including its edge elements and
// the neighbor tables adjacent_cell_of_edge, edge_vertices,
// cells_of_vertex, edges_of_vertex and edge_of_cell. A file that passes
// ReadICONMinimal but has no edge data yields a malformed-grid error.
func ReadICONComplete(filename string) (*mesh.Mesh, error) {
	m, err := ReadICONMinimal(filename)
	if err != nil {
		return nil, err
	}

	f, file, err := openGrid(filename)
	if err != nil {
		log.WithField("file", filename).Warn(err)
		return nil, err
	}
	defer f.Close()

	// DWD base grids carry edge_index, grids cut by the web interface only
	// elat; either one's length is the edge count.
	numEdges := fieldLength(file, "edge_index")
	if n := fieldLength(file, "elat"); n > numEdges {
		numEdges = n
	}
	if numEdges == 0 {
		err = fmt.Errorf("%w: no edges found in %s", ErrMalformedGrid, filename)
		log.WithField("file", filename).Warn(err)
		return nil, err
	}

	m.Edges.AddLines(numEdges)
	m.Nodes.CellConnectivity = mesh.NewConnectivity(m.Nodes.Count(), cellsPerNode)
	m.Nodes.EdgeConnectivity = mesh.NewConnectivity(m.Nodes.Count(), edgesPerNode)
	m.Cells.EdgeConnectivity = mesh.NewConnectivity(m.Cells.Count(), edgesPerCell)

	for _, table := range []struct {
		variable string
		conn     *mesh.Connectivity
	}{
		{"adjacent_cell_of_edge", m.Edges.CellConnectivity},
		{"edge_vertices", m.Edges.NodeConnectivity},
		{"cells_of_vertex", m.Nodes.CellConnectivity},
		{"edges_of_vertex", m.Nodes.EdgeConnectivity},
		{"edge_of_cell", m.Cells.EdgeConnectivity},
	} {
		if err = addNeighborList(file, table.variable, table.conn); err != nil {
			log.WithField("file", filename).Warn(err)
			return nil, err
		}
	}
	return m, nil
}

func openGrid(filename string) (*os.File, *cdf.File, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrGridIO, err)
	}
	file, err := cdf.Open(f)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrGridIO, filename, err)
	}
	return f, file, nil
}

func nodesFromFile(file *cdf.File, m *mesh.Mesh) error {
	lon, err := loadField(file, "vlon")
	if err != nil {
		return err
	}
	lat, err := loadField(file, "vlat")
	if err != nil {
		return err
	}
	if len(lon) == 0 || len(lat) == 0 {
		return fmt.Errorf("%w: lat / lon variable not found", ErrMalformedGrid)
	}
	if len(lon) != len(lat) {
		return fmt.Errorf("%w: lat / lon not of consistent sizes", ErrMalformedGrid)
	}

	m.Nodes.Resize(len(lon))
	for nodeIdx := range lon {
		m.Nodes.X[nodeIdx] = lon[nodeIdx] / math.Pi * 180
		m.Nodes.Y[nodeIdx] = lat[nodeIdx] / (0.5 * math.Pi) * 90
	}
	return nil
}

func cellsFromFile(file *cdf.File, m *mesh.Mesh) error {
	cellToVertex, err := load2DField(file, "vertex_of_cell")
	if err != nil {
		return err
	}
	if cellToVertex == nil || cellToVertex.Shape[0] != 3 {
		return fmt.Errorf("%w: not a triangle mesh", ErrMalformedGrid)
	}

	numCells := cellToVertex.Shape[1]
	m.Cells.AddTriangles(numCells)
	var tri [3]int
	for cellIdx := 0; cellIdx < numCells; cellIdx++ {
		// indices in the file are 1-based, data is column major
		for col := 0; col < 3; col++ {
			tri[col] = int(cellToVertex.Get(col, cellIdx)) - 1
		}
		m.Cells.NodeConnectivity.SetRow(cellIdx, tri[:])
	}
	return nil
}

// addNeighborList fills conn from the named [stride, n] table, converting
// the file's 1-based indices to 0-based. The ICON padding value 0 becomes
// mesh.MissingValue.
func addNeighborList(file *cdf.File, variable string, conn *mesh.Connectivity) error {
	xToY, err := load2DField(file, variable)
	if err != nil {
		return err
	}
	if xToY == nil {
		return fmt.Errorf("%w: neighbor table %s not found", ErrMalformedGrid, variable)
	}
	if xToY.Shape[0] != conn.Stride() {
		return fmt.Errorf("%w: %s: number of neighbors per element not as expected: %d != %d",
			ErrMalformedGrid, variable, xToY.Shape[0], conn.Stride())
	}
	if xToY.Shape[1] != conn.Rows() {
		return fmt.Errorf("%w: %s: element count not as expected: %d != %d",
			ErrMalformedGrid, variable, xToY.Shape[1], conn.Rows())
	}
	for elemIdx := 0; elemIdx < conn.Rows(); elemIdx++ {
		for innerIdx := 0; innerIdx < conn.Stride(); innerIdx++ {
			conn.Set(elemIdx, innerIdx, int(xToY.Get(innerIdx, elemIdx))-1)
		}
	}
	return nil
}

// loadField reads a 1D variable into a float64 slice; a variable that is
// not in the file yields a nil slice, not an error.
func loadField(file *cdf.File, variable string) ([]float64, error) {
	dims := file.Header.Lengths(variable)
	if len(dims) == 0 {
		return nil, nil
	}
	if len(dims) != 1 {
		return nil, fmt.Errorf("%w: %s is not 1-dimensional", ErrMalformedGrid, variable)
	}
	return readVariable(file, variable, dims[0])
}

// load2DField reads a 2D variable into a DenseArray carrying its shape; a
// variable that is not in the file yields nil, not an error.
func load2DField(file *cdf.File, variable string) (*sparse.DenseArray, error) {
	dims := file.Header.Lengths(variable)
	if len(dims) == 0 {
		return nil, nil
	}
	if len(dims) != 2 {
		return nil, fmt.Errorf("%w: %s is not 2-dimensional", ErrMalformedGrid, variable)
	}
	elements, err := readVariable(file, variable, dims[0]*dims[1])
	if err != nil {
		return nil, err
	}
	data := sparse.ZerosDense(dims...)
	copy(data.Elements, elements)
	return data, nil
}

// fieldLength returns the first-dimension length of a variable, or 0 when
// the variable is not in the file.
func fieldLength(file *cdf.File, variable string) int {
	dims := file.Header.Lengths(variable)
	if len(dims) == 0 {
		return 0
	}
	return dims[0]
}

func readVariable(file *cdf.File, variable string, n int) ([]float64, error) {
	r := file.Reader(variable, nil, nil)
	buf := r.Zero(n)
	if _, err := r.Read(buf); err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrGridIO, variable, err)
	}
	out := make([]float64, n)
	switch vals := buf.(type) {
	case []float64:
		copy(out, vals)
	case []float32:
		for i, v := range vals {
			out[i] = float64(v)
		}
	case []int32:
		for i, v := range vals {
			out[i] = float64(v)
		}
	case []int16:
		for i, v := range vals {
			out[i] = float64(v)
		}
	case []int8:
		for i, v := range vals {
			out[i] = float64(v)
		}
	default:
		return nil, fmt.Errorf("%w: %s has unsupported type %T", ErrMalformedGrid, variable, buf)
	}
	return out, nil
}
