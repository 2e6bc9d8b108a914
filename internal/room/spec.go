// Package room synthesizes point clouds over the interior surfaces of an
// axis-aligned rectangular room.
package room

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidSpec is returned when a Spec cannot describe a sampleable room:
// a non-positive or non-finite extent, or fewer than two samples on an axis.
var ErrInvalidSpec = errors.New("invalid room spec")

// MinResolution is the smallest per-axis sample count that still yields a
// ladder with distinct first and last rungs.
const MinResolution = 2

// MaxResolution bounds each per-axis sample count. Products of two axes stay
// far below the int64 range at this limit.
const MaxResolution = 100000

// MaxPoints bounds the total number of points a Spec may generate
// (about 480MB of Point3D values).
const MaxPoints = 20000000

// Spec describes the room box [0,Width]x[0,Height]x[0,Length] and the number
// of evenly spaced samples along each axis.
type Spec struct {
	Width  float64 // X extent (metres)
	Length float64 // Z extent (metres)
	Height float64 // Y extent (metres), Y is up

	ResolutionX int
	ResolutionY int
	ResolutionZ int
}

// DefaultSpec returns a 5m x 7m room, 3m high, sampled 20 times per axis.
func DefaultSpec() Spec {
	return NewSpec(5, 7, 3, 20)
}

// NewSpec builds a Spec with the same resolution applied to every axis.
func NewSpec(width, length, height float64, resolution int) Spec {
	return Spec{
		Width:       width,
		Length:      length,
		Height:      height,
		ResolutionX: resolution,
		ResolutionY: resolution,
		ResolutionZ: resolution,
	}
}

// Validate checks that every extent is positive and finite, every resolution
// is within [MinResolution, MaxResolution] and the total point count does not
// exceed MaxPoints.
func (s Spec) Validate() error {
	extents := []struct {
		name string
		v    float64
	}{
		{"width", s.Width},
		{"length", s.Length},
		{"height", s.Height},
	}
	for _, e := range extents {
		if math.IsNaN(e.v) || math.IsInf(e.v, 0) || e.v <= 0 {
			return fmt.Errorf("%w: %s must be positive and finite, got %v", ErrInvalidSpec, e.name, e.v)
		}
	}

	resolutions := []struct {
		name string
		v    int
	}{
		{"resolution_x", s.ResolutionX},
		{"resolution_y", s.ResolutionY},
		{"resolution_z", s.ResolutionZ},
	}
	for _, r := range resolutions {
		if r.v < MinResolution {
			return fmt.Errorf("%w: %s must be >= %d, got %d", ErrInvalidSpec, r.name, MinResolution, r.v)
		}
		if r.v > MaxResolution {
			return fmt.Errorf("%w: %s must be <= %d, got %d", ErrInvalidSpec, r.name, MaxResolution, r.v)
		}
	}

	if n := expectedCount64(s); n > MaxPoints {
		return fmt.Errorf("%w: %d points exceeds the limit of %d", ErrInvalidSpec, n, MaxPoints)
	}
	return nil
}

// expectedCount64 is ExpectedCount in int64, safe for resolutions up to MaxResolution.
func expectedCount64(s Spec) int64 {
	rx, ry, rz := int64(s.ResolutionX), int64(s.ResolutionY), int64(s.ResolutionZ)
	return 2 * (rx*rz + ry*rx + ry*rz)
}

// ExpectedCount returns the number of points Generate emits for s:
// 2*(Rx*Rz) + 2*(Ry*Rx) + 2*(Ry*Rz). It is only meaningful for a Spec that
// passes Validate, which caps the result at MaxPoints.
func ExpectedCount(s Spec) int {
	return int(expectedCount64(s))
}
