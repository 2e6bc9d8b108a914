package room

import "github.com/banshee-data/floorplan/internal/geometry"

// Surface identifies one of the six bounding faces of the room.
type Surface int

const (
	Floor Surface = iota
	Ceiling
	FrontWall
	BackWall
	LeftWall
	RightWall
)

// Surfaces returns every face in emission order.
func Surfaces() []Surface {
	return []Surface{Floor, Ceiling, FrontWall, BackWall, LeftWall, RightWall}
}

// String returns the string representation of a Surface.
func (s Surface) String() string {
	switch s {
	case Floor:
		return "floor"
	case Ceiling:
		return "ceiling"
	case FrontWall:
		return "front_wall"
	case BackWall:
		return "back_wall"
	case LeftWall:
		return "left_wall"
	case RightWall:
		return "right_wall"
	default:
		return "unknown"
	}
}

// axis names a room axis; used to pick ladders for a surface.
type axis int

const (
	axisX axis = iota
	axisY
	axisZ
)

// layout describes how a surface is sampled: the outer and inner ladder
// axes and the fixed third coordinate.
type layout struct {
	outer, inner axis
	fixed        float64
	// place maps (outer, inner) rungs to a point on the surface.
	place func(u, v, fixed float64) geometry.Point3D
}

// grid returns the sampling layout of s within spec. ok is false for an
// unknown Surface.
func (s Surface) grid(spec Spec) (layout, bool) {
	switch s {
	case Floor, Ceiling:
		fixed := 0.0
		if s == Ceiling {
			fixed = spec.Height
		}
		return layout{outer: axisX, inner: axisZ, fixed: fixed, place: func(x, z, y float64) geometry.Point3D {
			return geometry.Point3D{X: x, Y: y, Z: z}
		}}, true
	case FrontWall, BackWall:
		fixed := 0.0
		if s == BackWall {
			fixed = spec.Length
		}
		return layout{outer: axisY, inner: axisX, fixed: fixed, place: func(y, x, z float64) geometry.Point3D {
			return geometry.Point3D{X: x, Y: y, Z: z}
		}}, true
	case LeftWall, RightWall:
		fixed := 0.0
		if s == RightWall {
			fixed = spec.Width
		}
		return layout{outer: axisY, inner: axisZ, fixed: fixed, place: func(y, z, x float64) geometry.Point3D {
			return geometry.Point3D{X: x, Y: y, Z: z}
		}}, true
	default:
		return layout{}, false
	}
}
