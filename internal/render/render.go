// Package render draws room point clouds and floor-plan slices.
//
// Renderers are terminal sinks: they consume a PointSet and return only an
// error. The geometry packages never import this package.
package render

import (
	"errors"
	"fmt"

	"github.com/banshee-data/floorplan/internal/geometry"
)

// ErrNothingToDraw is returned when a renderer is handed an empty PointSet.
var ErrNothingToDraw = errors.New("no points to draw")

// Renderer3D draws a full point cloud.
type Renderer3D interface {
	Render3D(points geometry.PointSet) error
}

// Renderer2D draws a point set projected onto two axes.
type Renderer2D interface {
	Render2D(points geometry.PointSet, axes AxisPair) error
}

// Axis names one coordinate of a Point3D.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String returns the axis letter.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return "?"
	}
}

// Of returns the coordinate of p along a.
func (a Axis) Of(p geometry.Point3D) float64 {
	switch a {
	case AxisY:
		return p.Y
	case AxisZ:
		return p.Z
	default:
		return p.X
	}
}

// AxisPair selects the horizontal and vertical axes of a 2D plot.
type AxisPair struct {
	Horizontal Axis
	Vertical   Axis
}

// PlanAxes is the top-down floor-plan projection: X across, Z up the page.
var PlanAxes = AxisPair{Horizontal: AxisX, Vertical: AxisZ}

// Project maps p onto the pair.
func (ap AxisPair) Project(p geometry.Point3D) (h, v float64) {
	return ap.Horizontal.Of(p), ap.Vertical.Of(p)
}

// Validate rejects a pair that uses the same axis twice.
func (ap AxisPair) Validate() error {
	if ap.Horizontal == ap.Vertical {
		return fmt.Errorf("axis pair uses %s twice", ap.Horizontal)
	}
	for _, a := range []Axis{ap.Horizontal, ap.Vertical} {
		if a < AxisX || a > AxisZ {
			return fmt.Errorf("unknown axis %d", int(a))
		}
	}
	return nil
}

// squareRange returns equal-length ranges covering both spans with a small
// padding, so that a square canvas shows the plan without distortion.
func squareRange(hMin, hMax, vMin, vMax float64) (h0, h1, v0, v1 float64) {
	span := hMax - hMin
	if vs := vMax - vMin; vs > span {
		span = vs
	}
	half := span * 1.05 / 2
	if half == 0 {
		half = 1.0
	}
	hc := (hMin + hMax) / 2
	vc := (vMin + vMax) / 2
	return hc - half, hc + half, vc - half, vc + half
}
