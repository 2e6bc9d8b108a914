// Package slice extracts horizontal cross-sections from room point clouds.
package slice

import (
	"errors"
	"fmt"
	"math"

	"github.com/banshee-data/floorplan/internal/geometry"
)

var (
	// ErrEmptyInput is returned when there is nothing to slice. Callers
	// report it and skip downstream stages; it is never fatal.
	ErrEmptyInput = errors.New("no points to slice")

	// ErrInvalidQuery is returned for a non-positive tolerance or a NaN height.
	ErrInvalidQuery = errors.New("invalid slice query")
)

// Query selects points whose height lies in the open band
// (Height-Tolerance, Height+Tolerance).
type Query struct {
	Height    float64
	Tolerance float64
}

// DefaultQuery returns a 1.5m slice with a 0.1m tolerance.
func DefaultQuery() Query {
	return Query{Height: 1.5, Tolerance: 0.1}
}

// Validate checks the tolerance is positive and the height is a number.
// An infinite tolerance is allowed and selects every point.
func (q Query) Validate() error {
	if math.IsNaN(q.Height) {
		return fmt.Errorf("%w: height is NaN", ErrInvalidQuery)
	}
	if math.IsNaN(q.Tolerance) || q.Tolerance <= 0 {
		return fmt.Errorf("%w: tolerance must be positive, got %v", ErrInvalidQuery, q.Tolerance)
	}
	return nil
}

// Contains reports whether p falls inside the band: |p.Y - Height| < Tolerance.
func (q Query) Contains(p geometry.Point3D) bool {
	return math.Abs(p.Y-q.Height) < q.Tolerance
}

// Extract returns the points of in that fall inside the band of q, in input
// order. The result never shares storage with in. An empty result is not an
// error; an empty or nil input is.
func Extract(in geometry.PointSet, q Query) (geometry.PointSet, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if in.Empty() {
		return nil, ErrEmptyInput
	}

	out := make(geometry.PointSet, 0, len(in)/4)
	for _, p := range in {
		if q.Contains(p) {
			out = append(out, p)
		}
	}
	return out, nil
}
