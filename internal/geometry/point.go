// Package geometry holds the point-cloud data model shared by the room
// sampler, the slice extractor and the renderers.
package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Point3D is a sample location in the room frame.
// Coordinate convention: Y=up, X and Z span the horizontal plane.
type Point3D struct {
	X, Y, Z float64
}

// String formats the point with millimetre precision for logs.
func (p Point3D) String() string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", p.X, p.Y, p.Z)
}

// ApproxEqual reports whether each coordinate of p and q differs by at most tol.
func (p Point3D) ApproxEqual(q Point3D, tol float64) bool {
	return math.Abs(p.X-q.X) <= tol &&
		math.Abs(p.Y-q.Y) <= tol &&
		math.Abs(p.Z-q.Z) <= tol
}

// PointSet is an ordered collection of samples. Once produced it is treated
// as read-only; operations that derive a subset return a new PointSet.
type PointSet []Point3D

// Len returns the number of points.
func (ps PointSet) Len() int { return len(ps) }

// Empty reports whether the set holds no points (nil or zero length).
func (ps PointSet) Empty() bool { return len(ps) == 0 }

// Clone returns a copy backed by a new array.
func (ps PointSet) Clone() PointSet {
	if ps == nil {
		return nil
	}
	out := make(PointSet, len(ps))
	copy(out, ps)
	return out
}

// Contains reports whether any point lies within tol of p on every axis.
func (ps PointSet) Contains(p Point3D, tol float64) bool {
	for _, q := range ps {
		if q.ApproxEqual(p, tol) {
			return true
		}
	}
	return false
}

// Columns splits the set into parallel X, Y and Z slices,
// the layout gonum and the chart renderers expect.
func (ps PointSet) Columns() (xs, ys, zs []float64) {
	xs = make([]float64, len(ps))
	ys = make([]float64, len(ps))
	zs = make([]float64, len(ps))
	for i, p := range ps {
		xs[i], ys[i], zs[i] = p.X, p.Y, p.Z
	}
	return xs, ys, zs
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min Point3D
	Max Point3D
}

// Size returns the extent along each axis.
func (b Bounds) Size() Point3D {
	return Point3D{X: b.Max.X - b.Min.X, Y: b.Max.Y - b.Min.Y, Z: b.Max.Z - b.Min.Z}
}

// Within reports whether p lies inside the box, boundaries included.
func (b Bounds) Within(p Point3D) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Bounds computes the bounding box of the set. ok is false for an empty set.
func (ps PointSet) Bounds() (b Bounds, ok bool) {
	if len(ps) == 0 {
		return Bounds{}, false
	}
	xs, ys, zs := ps.Columns()
	b.Min = Point3D{X: floats.Min(xs), Y: floats.Min(ys), Z: floats.Min(zs)}
	b.Max = Point3D{X: floats.Max(xs), Y: floats.Max(ys), Z: floats.Max(zs)}
	return b, true
}
