package meshgen

import (
	"github.com/notargets/geomesh/mesh"

	"github.com/notargets/geomesh/geometry2D"
)

// TargetHeight is the y-extent, in degrees, that NormalizeExtent maps a
// mesh onto, so the output can be read as a lat/lon-like range.
const TargetHeight = 180.

// NormalizeExtent re-centers the mesh so its bounding-box center (not the
// node centroid) sits at the origin, then applies the single scale factor
// target/yExtent to BOTH axes. One scalar for both axes keeps the
// triangle edge-length ratios intact; independent per-axis scaling would
// distort equilateral triangles. The result is undefined when all nodes
// share one y value (zero y-extent); BuildRectMesh guards that case.
func NormalizeExtent(m *mesh.Mesh, target float64) {
	var (
		box      = geometry2D.NewBoundingBox(m.Nodes.X, m.Nodes.Y)
		centroid = box.Centroid()
		_, lY    = box.Extent()
		scale    = target / lY
	)
	for nodeIdx := range m.Nodes.X {
		m.Nodes.X[nodeIdx] = (m.Nodes.X[nodeIdx] - centroid.X[0]) * scale
		m.Nodes.Y[nodeIdx] = (m.Nodes.Y[nodeIdx] - centroid.X[1]) * scale
	}
}
