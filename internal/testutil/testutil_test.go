package testutil

import (
	"errors"
	"fmt"
	"testing"
)

func TestAssertNoError(t *testing.T) {
	t.Parallel()
	AssertNoError(t, nil)
}

func TestAssertError(t *testing.T) {
	t.Parallel()
	AssertError(t, errors.New("boom"))
}

func TestAssertErrorIs(t *testing.T) {
	t.Parallel()
	sentinel := errors.New("sentinel")
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", sentinel), sentinel)
}

func TestAssertNear(t *testing.T) {
	t.Parallel()
	AssertNear(t, 1.0000001, 1.0, 1e-6)
}

func TestBoxPoints(t *testing.T) {
	t.Parallel()

	pts := BoxPoints(2, 3, 4, 1.0, 1.5)
	if len(pts) != 10 {
		t.Fatalf("len = %d, want 10", len(pts))
	}
	b, ok := pts.Bounds()
	if !ok {
		t.Fatal("expected bounds for non-empty set")
	}
	if b.Max.X != 2 || b.Max.Y != 3 || b.Max.Z != 4 {
		t.Errorf("bounds max = %v, want (2,3,4)", b.Max)
	}
	if pts[9].Y != 1.5 || pts[9].X != 1 || pts[9].Z != 2 {
		t.Errorf("level point = %v, want (1, 1.5, 2)", pts[9])
	}
}
