// Package testutil provides shared test utilities and fixtures.
package testutil

import (
	"errors"
	"math"
	"testing"

	"github.com/banshee-data/floorplan/internal/geometry"
)

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// AssertErrorIs fails the test unless errors.Is(err, target).
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("error = %v, want %v", err, target)
	}
}

// AssertNear fails the test if got and want differ by more than tol.
func AssertNear(t *testing.T, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("got %v, want %v (tol %v)", got, want, tol)
	}
}

// BoxPoints returns the eight corners of [0,w]x[0,h]x[0,l] followed by one
// point per vertical level in levels at (w/2, y, l/2). It is a small
// hand-built cloud for slice tests.
func BoxPoints(w, h, l float64, levels ...float64) geometry.PointSet {
	pts := geometry.PointSet{
		{X: 0, Y: 0, Z: 0}, {X: w, Y: 0, Z: 0}, {X: 0, Y: 0, Z: l}, {X: w, Y: 0, Z: l},
		{X: 0, Y: h, Z: 0}, {X: w, Y: h, Z: 0}, {X: 0, Y: h, Z: l}, {X: w, Y: h, Z: l},
	}
	for _, y := range levels {
		pts = append(pts, geometry.Point3D{X: w / 2, Y: y, Z: l / 2})
	}
	return pts
}
