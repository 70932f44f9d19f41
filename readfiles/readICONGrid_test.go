package readfiles

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ctessum/cdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/geomesh/mesh"
)

type fixtureVar struct {
	name string
	dims []string
	data interface{} // []float64 or []int32
}

// writeGridFile writes a NetCDF classic file with the given dimensions and
// variables into a temp dir and returns its path.
func writeGridFile(t *testing.T, dims []string, lengths []int, vars []fixtureVar) string {
	t.Helper()

	h := cdf.NewHeader(dims, lengths)
	for _, v := range vars {
		switch v.data.(type) {
		case []float64:
			h.AddVariable(v.name, v.dims, []float64{0})
		case []int32:
			h.AddVariable(v.name, v.dims, []int32{0})
		default:
			t.Fatalf("unsupported fixture type %T", v.data)
		}
	}
	h.Define()

	path := filepath.Join(t.TempDir(), "grid.nc")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	cf, err := cdf.Create(f, h)
	require.NoError(t, err)
	for _, v := range vars {
		end := cf.Header.Lengths(v.name)
		start := make([]int, len(end))
		w := cf.Writer(v.name, start, end)
		_, err = w.Write(v.data)
		require.NoError(t, err, "writing %s", v.name)
	}
	require.NoError(t, cdf.UpdateNumRecs(f))
	return path
}

// The fixture grid is a quad split into two triangles:
//
//	3---4
//	| \ |    cells (1-based): 1 = (1,2,3), 2 = (2,4,3)
//	1---2    edges (1-based): 1=(1,2) 2=(1,3) 3=(2,3) 4=(2,4) 5=(3,4)
//
// with 1-based, column-major connectivity as written by the ICON tooling.
func minimalVars() []fixtureVar {
	return []fixtureVar{
		{"vlon", []string{"vertex"}, []float64{0, math.Pi / 2, math.Pi, math.Pi / 4}},
		{"vlat", []string{"vertex"}, []float64{0, math.Pi / 4, -math.Pi / 2, 0}},
		{"vertex_of_cell", []string{"nv", "cell"}, []int32{
			1, 2,
			2, 4,
			3, 3,
		}},
	}
}

func completeVars() []fixtureVar {
	return append(minimalVars(),
		fixtureVar{"edge_index", []string{"edge"}, []int32{1, 2, 3, 4, 5}},
		fixtureVar{"edge_vertices", []string{"nc", "edge"}, []int32{
			1, 1, 2, 2, 3,
			2, 3, 3, 4, 4,
		}},
		fixtureVar{"adjacent_cell_of_edge", []string{"nc", "edge"}, []int32{
			1, 1, 1, 2, 2,
			0, 0, 2, 0, 0,
		}},
		fixtureVar{"cells_of_vertex", []string{"ne", "vertex"}, []int32{
			1, 1, 1, 2,
			0, 2, 2, 0,
			0, 0, 0, 0,
			0, 0, 0, 0,
			0, 0, 0, 0,
			0, 0, 0, 0,
		}},
		fixtureVar{"edges_of_vertex", []string{"ne", "vertex"}, []int32{
			1, 1, 2, 4,
			2, 3, 3, 5,
			0, 4, 5, 0,
			0, 0, 0, 0,
			0, 0, 0, 0,
			0, 0, 0, 0,
		}},
		fixtureVar{"edge_of_cell", []string{"nv", "cell"}, []int32{
			1, 3,
			2, 4,
			3, 5,
		}},
	)
}

var fixtureDims = []string{"vertex", "cell", "edge", "nv", "nc", "ne"}
var fixtureLengths = []int{4, 2, 5, 3, 2, 6}

func TestReadICONMinimal(t *testing.T) {
	path := writeGridFile(t, fixtureDims, fixtureLengths, minimalVars())

	m, err := ReadICONMinimal(path)
	require.NoError(t, err)

	assert.Equal(t, 4, m.Nodes.Count())
	assert.Equal(t, 2, m.Cells.Count())
	assert.False(t, m.HasEdges())

	// Radians to degrees
	assert.InDelta(t, 90., m.Nodes.X[1], 1e-12)
	assert.InDelta(t, 180., m.Nodes.X[2], 1e-12)
	assert.InDelta(t, 45., m.Nodes.Y[1], 1e-12)
	assert.InDelta(t, -90., m.Nodes.Y[2], 1e-12)

	// 1-based column-major to 0-based rows
	assert.Equal(t, []int{0, 1, 2}, m.Cells.NodeConnectivity.Row(0))
	assert.Equal(t, []int{1, 3, 2}, m.Cells.NodeConnectivity.Row(1))

	// Single-partition housekeeping
	for nodeIdx := 0; nodeIdx < m.Nodes.Count(); nodeIdx++ {
		assert.Equal(t, nodeIdx, m.Nodes.GlobalIndex[nodeIdx])
		assert.Equal(t, nodeIdx, m.Nodes.RemoteIndex[nodeIdx])
		assert.Equal(t, mesh.DefaultPartition, m.Nodes.Partition[nodeIdx])
	}
}

func TestReadICONComplete(t *testing.T) {
	path := writeGridFile(t, fixtureDims, fixtureLengths, completeVars())

	m, err := ReadICONComplete(path)
	require.NoError(t, err)
	assert.Equal(t, 5, m.Edges.Count())

	// Edge 2 is the shared diagonal (2,3): nodes 1,2 and both cells
	assert.Equal(t, []int{1, 2}, m.Edges.NodeConnectivity.Row(2))
	assert.Equal(t, []int{0, 1}, m.Edges.CellConnectivity.Row(2))

	// The ICON padding value 0 maps onto the missing-value sentinel
	assert.Equal(t, []int{0, mesh.MissingValue}, m.Edges.CellConnectivity.Row(0))
	assert.Equal(t, []int{0, mesh.MissingValue, mesh.MissingValue,
		mesh.MissingValue, mesh.MissingValue, mesh.MissingValue},
		m.Nodes.CellConnectivity.Row(0))
	assert.Equal(t, []int{0, 1, mesh.MissingValue, mesh.MissingValue,
		mesh.MissingValue, mesh.MissingValue},
		m.Nodes.CellConnectivity.Row(1))

	assert.Equal(t, []int{0, 1, 2}, m.Cells.EdgeConnectivity.Row(0))
	assert.Equal(t, []int{2, 3, 4}, m.Cells.EdgeConnectivity.Row(1))

	assert.Equal(t, []int{0, 1, mesh.MissingValue, mesh.MissingValue,
		mesh.MissingValue, mesh.MissingValue},
		m.Nodes.EdgeConnectivity.Row(0))
}

func TestReadICONCompleteElatConvention(t *testing.T) {
	// Web-interface grids carry elat instead of edge_index
	vars := completeVars()
	vars[3] = fixtureVar{"elat", []string{"edge"}, []float64{0, 0, 0, 0, 0}}
	path := writeGridFile(t, fixtureDims, fixtureLengths, vars)

	m, err := ReadICONComplete(path)
	require.NoError(t, err)
	assert.Equal(t, 5, m.Edges.Count())
}

func TestReadICONMissingCoordinates(t *testing.T) {
	vars := minimalVars()[1:] // drop vlon
	path := writeGridFile(t, fixtureDims, fixtureLengths, vars)

	_, err := ReadICONMinimal(path)
	assert.ErrorIs(t, err, ErrMalformedGrid)
}

func TestReadICONInconsistentCoordinates(t *testing.T) {
	vars := minimalVars()
	// vlat on the wrong dimension: 2 values against 4 vlon values
	vars[1] = fixtureVar{"vlat", []string{"cell"}, []float64{0, 0}}
	path := writeGridFile(t, fixtureDims, fixtureLengths, vars)

	_, err := ReadICONMinimal(path)
	assert.ErrorIs(t, err, ErrMalformedGrid)
}

func TestReadICONNotATriangleMesh(t *testing.T) {
	vars := minimalVars()
	vars[2] = fixtureVar{"vertex_of_cell", []string{"nv4", "cell"}, []int32{
		1, 2,
		2, 4,
		3, 3,
		4, 1,
	}}
	path := writeGridFile(t, append(fixtureDims, "nv4"), append(fixtureLengths, 4), vars)

	_, err := ReadICONMinimal(path)
	assert.ErrorIs(t, err, ErrMalformedGrid)
}

func TestReadICONCompleteOnMinimalFile(t *testing.T) {
	path := writeGridFile(t, fixtureDims, fixtureLengths, minimalVars())

	_, err := ReadICONMinimal(path)
	require.NoError(t, err)

	_, err = ReadICONComplete(path)
	assert.ErrorIs(t, err, ErrMalformedGrid)
}

func TestReadICONMissingNeighborTable(t *testing.T) {
	vars := completeVars()
	path := writeGridFile(t, fixtureDims, fixtureLengths, vars[:len(vars)-1]) // drop edge_of_cell

	_, err := ReadICONComplete(path)
	assert.ErrorIs(t, err, ErrMalformedGrid)
}

func TestReadICONWrongCardinality(t *testing.T) {
	vars := completeVars()
	// adjacent_cell_of_edge with 3 cells per edge instead of 2
	vars[5] = fixtureVar{"adjacent_cell_of_edge", []string{"nv", "edge"}, []int32{
		1, 1, 1, 2, 2,
		0, 0, 2, 0, 0,
		0, 0, 0, 0, 0,
	}}
	path := writeGridFile(t, fixtureDims, fixtureLengths, vars)

	_, err := ReadICONComplete(path)
	assert.ErrorIs(t, err, ErrMalformedGrid)
}

func TestReadICONFileFaults(t *testing.T) {
	t.Run("Missing", func(t *testing.T) {
		_, err := ReadICONMinimal(filepath.Join(t.TempDir(), "nope.nc"))
		assert.ErrorIs(t, err, ErrGridIO)
	})
	t.Run("Garbage", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "garbage.nc")
		require.NoError(t, os.WriteFile(path, []byte("this is not netcdf"), 0644))
		_, err := ReadICONMinimal(path)
		assert.ErrorIs(t, err, ErrGridIO)
	})
}
