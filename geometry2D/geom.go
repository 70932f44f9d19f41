package geometry2D

import (
	"gonum.org/v1/gonum/floats"
)

type Point struct {
	X [2]float64
}

func NewPoint(x, y float64) Point {
	return Point{X: [2]float64{x, y}}
}

func (pt Point) Minus(rhs Point) (res Point) {
	for i := 0; i < 2; i++ {
		res.X[i] = pt.X[i] - rhs.X[i]
	}
	return
}

func (pt Point) Plus(rhs Point) (res Point) {
	for i := 0; i < 2; i++ {
		res.X[i] = pt.X[i] + rhs.X[i]
	}
	return
}

// Distance returns the Euclidean distance between two points.
func (pt Point) Distance(rhs Point) float64 {
	d := pt.Minus(rhs)
	return floats.Norm(d.X[:], 2)
}

type BoundingBox struct {
	XMin [2]float64
	XMax [2]float64
}

// NewBoundingBox computes the axis-aligned bounding box of the given
// coordinate slices. X and Y must have equal, nonzero length.
func NewBoundingBox(X, Y []float64) (box *BoundingBox) {
	box = new(BoundingBox)
	box.XMin[0], box.XMax[0] = floats.Min(X), floats.Max(X)
	box.XMin[1], box.XMax[1] = floats.Min(Y), floats.Max(Y)
	return
}

func (bb *BoundingBox) Centroid() (centroid Point) {
	for i := 0; i < 2; i++ {
		centroid.X[i] = bb.XMin[i] + 0.5*(bb.XMax[i]-bb.XMin[i])
	}
	return
}

// Extent returns the box widths along x and y.
func (bb *BoundingBox) Extent() (lX, lY float64) {
	return bb.XMax[0] - bb.XMin[0], bb.XMax[1] - bb.XMin[1]
}

// PointInsideStrict reports whether (x, y) lies strictly inside the box,
// excluding the boundary on all four sides.
func (bb *BoundingBox) PointInsideStrict(x, y float64) bool {
	return x > bb.XMin[0] && x < bb.XMax[0] && y > bb.XMin[1] && y < bb.XMax[1]
}
