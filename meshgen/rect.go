package meshgen

import (
	"fmt"
	"math"

	"github.com/notargets/geomesh/geometry2D"
	"github.com/notargets/geomesh/mesh"
)

// TriangleInBB reports whether ANY of the cell's three vertices lies
// strictly inside the box. The any-vertex test deliberately over-includes:
// triangles straddling the boundary are retained as long as one vertex is
// interior, which is why BuildRectMesh pads its selection box instead of
// trusting exact bounds. cellIdx must be a valid cell index.
func TriangleInBB(m *mesh.Mesh, cellIdx int, box *geometry2D.BoundingBox) bool {
	for col := 0; col < 3; col++ {
		nodeIdx := m.Cells.NodeConnectivity.At(cellIdx, col)
		if box.PointInsideStrict(m.Nodes.X[nodeIdx], m.Nodes.Y[nodeIdx]) {
			return true
		}
	}
	return false
}

// BuildRectMesh generates a rectangular strip of equilateral triangles,
// ny rows tall and roughly twice as wide as tall, re-centered on the
// origin and scaled to a y-extent of exactly TargetHeight degrees. All
// triangles come out equilateral with edge length TargetHeight/(ny-1).
//
// The strip is cut from a sheared structured grid: an nx x ny lattice
// (nx = 3*ny) of unit right triangles is mapped to equilateral form by
// EquilateralTransform, cells are selected against an approximate
// bounding box, and the exact final geometry is recomputed from the
// surviving nodes by NormalizeExtent. The selection box is unbounded in y
// and padded in x by 10% of one grid column to counteract the strict
// any-vertex-inside under-selection at the exact boundary.
func BuildRectMesh(ny int) (*mesh.Mesh, error) {
	if ny < 2 {
		// A single row has zero y-extent and no scale is defined.
		return nil, fmt.Errorf("rect mesh needs at least 2 rows, got ny=%d", ny)
	}
	nx := 3 * ny

	grid := StructuredGrid{
		X: LinearSpacing(0, float64(nx), nx, false),
		Y: LinearSpacing(0, float64(ny), ny, false),
	}
	m := Generator{Diagonal: DiagonalAlternating}.Generate(grid)

	EquilateralTransform(m)

	var (
		newHeight = float64(ny-1) * math.Sqrt(3) / 2
		length    = 2 * newHeight
		box       = &geometry2D.BoundingBox{
			XMin: [2]float64{0, math.Inf(-1)},
			XMax: [2]float64{length + length/float64(nx)*0.1, math.Inf(1)},
		}
	)
	keep := make([]int, 0, m.Cells.Count())
	for cellIdx := 0; cellIdx < m.Cells.Count(); cellIdx++ {
		if TriangleInBB(m, cellIdx, box) {
			keep = append(keep, cellIdx)
		}
	}

	rectMesh := mesh.ExtractSubmesh(m, keep)
	NormalizeExtent(rectMesh, TargetHeight)
	return rectMesh, nil
}
