package room

import (
	"fmt"

	"github.com/banshee-data/floorplan/internal/geometry"
	"gonum.org/v1/gonum/floats"
)

// ladders holds the evenly spaced coordinates along each axis of a Spec.
type ladders struct {
	x, y, z []float64
}

// ladder returns n evenly spaced values from 0 to extent inclusive.
// The first rung is exactly 0 and the last is exactly extent.
// It returns nil when n is below MinResolution.
func ladder(extent float64, n int) []float64 {
	if n < MinResolution {
		return nil
	}
	rungs := floats.Span(make([]float64, n), 0, extent)
	rungs[0] = 0
	rungs[n-1] = extent
	return rungs
}

func newLadders(spec Spec) ladders {
	return ladders{
		x: ladder(spec.Width, spec.ResolutionX),
		y: ladder(spec.Height, spec.ResolutionY),
		z: ladder(spec.Length, spec.ResolutionZ),
	}
}

func (l ladders) along(a axis) []float64 {
	switch a {
	case axisX:
		return l.x
	case axisY:
		return l.y
	default:
		return l.z
	}
}

// appendSurface appends the grid samples of one surface to dst.
func (l ladders) appendSurface(dst geometry.PointSet, spec Spec, s Surface) geometry.PointSet {
	lay, ok := s.grid(spec)
	if !ok {
		return dst
	}
	for _, u := range l.along(lay.outer) {
		for _, v := range l.along(lay.inner) {
			dst = append(dst, lay.place(u, v, lay.fixed))
		}
	}
	return dst
}

// Generate samples all six surfaces of the room described by spec.
// The result holds exactly ExpectedCount(spec) points, every one inside
// [0,Width]x[0,Height]x[0,Length]. Points on shared edges and corners appear
// once per surface that touches them. No PointSet is returned on error.
func Generate(spec Spec) (geometry.PointSet, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	l := newLadders(spec)
	points := make(geometry.PointSet, 0, ExpectedCount(spec))
	for _, s := range Surfaces() {
		points = l.appendSurface(points, spec, s)
	}
	return points, nil
}

// SampleSurface samples a single face of the room.
func SampleSurface(spec Spec, s Surface) (geometry.PointSet, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if _, ok := s.grid(spec); !ok {
		return nil, fmt.Errorf("unknown surface %d", int(s))
	}
	l := newLadders(spec)
	return l.appendSurface(nil, spec, s), nil
}

// Bounds returns the room box as geometry bounds.
func (s Spec) Bounds() geometry.Bounds {
	return geometry.Bounds{
		Max: geometry.Point3D{X: s.Width, Y: s.Height, Z: s.Length},
	}
}

// Corners returns the eight corners of the room box.
func (s Spec) Corners() []geometry.Point3D {
	corners := make([]geometry.Point3D, 0, 8)
	for _, x := range []float64{0, s.Width} {
		for _, y := range []float64{0, s.Height} {
			for _, z := range []float64{0, s.Length} {
				corners = append(corners, geometry.Point3D{X: x, Y: y, Z: z})
			}
		}
	}
	return corners
}
