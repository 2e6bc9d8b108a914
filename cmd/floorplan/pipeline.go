package main

import (
	"fmt"
	"io"

	"github.com/banshee-data/floorplan/internal/geometry"
	"github.com/banshee-data/floorplan/internal/monitoring"
	"github.com/banshee-data/floorplan/internal/render"
	"github.com/banshee-data/floorplan/internal/room"
	"github.com/banshee-data/floorplan/internal/slice"
)

// floorPlan owns the sampled room for the duration of a run. Stages borrow
// the points read-only.
type floorPlan struct {
	points geometry.PointSet
	slice  geometry.PointSet
}

// pipeline runs generate -> render3D -> extract -> render2D.
// A nil renderer skips its stage.
type pipeline struct {
	spec  room.Spec
	query slice.Query
	axes  render.AxisPair

	r3 render.Renderer3D
	r2 render.Renderer2D

	out io.Writer
}

// run executes the stages. Only an invalid spec or query and renderer
// failures are returned as errors; stages with nothing to show are reported
// on out and skipped. The spec and query are both checked before any
// renderer runs.
func (p *pipeline) run() (*floorPlan, error) {
	if err := p.spec.Validate(); err != nil {
		return nil, err
	}
	if err := p.query.Validate(); err != nil {
		return nil, err
	}
	fp := &floorPlan{}

	fmt.Fprintln(p.out, "Creating room points...")
	pts, err := room.Generate(p.spec)
	if err != nil {
		return nil, err
	}
	fp.points = pts
	monitoring.Logf("Generated %d room points (%gm x %gm x %gm)", len(pts), p.spec.Width, p.spec.Length, p.spec.Height)

	if fp.points.Empty() {
		fmt.Fprintln(p.out, "No points to visualize!")
		monitoring.Warnf("room stage produced no points")
		return fp, nil
	}

	if p.r3 != nil {
		fmt.Fprintln(p.out, "Showing 3D visualization...")
		if err := p.r3.Render3D(fp.points); err != nil {
			return fp, fmt.Errorf("render 3D: %w", err)
		}
	}

	fmt.Fprintln(p.out, "Creating floor plan slice...")
	sl, err := slice.Extract(fp.points, p.query)
	if err != nil {
		return fp, err
	}
	fp.slice = sl

	st := slice.Summarize(fp.points, p.query)
	monitoring.Logf("Slice at %.3fm +/- %.3fm: %d in band, %d below, %d above",
		p.query.Height, p.query.Tolerance, st.InBand, st.Below, st.Above)

	if fp.slice.Empty() {
		fmt.Fprintln(p.out, "No slice points to visualize!")
		monitoring.Warnf("slice stage produced no points at height %.3f", p.query.Height)
		return fp, nil
	}

	if p.r2 != nil {
		if err := p.r2.Render2D(fp.slice, p.axes); err != nil {
			return fp, fmt.Errorf("render 2D: %w", err)
		}
	}
	return fp, nil
}
