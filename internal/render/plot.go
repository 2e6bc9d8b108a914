package render

import (
	"fmt"
	"image/color"
	"path/filepath"

	"github.com/banshee-data/floorplan/internal/fsutil"
	"github.com/banshee-data/floorplan/internal/geometry"
	"github.com/banshee-data/floorplan/internal/monitoring"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotRenderer writes a square PNG scatter plot of a slice using gonum/plot.
// Both axes share one scale so the plan keeps its proportions.
type PlotRenderer struct {
	FS        fsutil.FileSystem
	OutputDir string
	FileName  string // default "floor_plan.png"
	Title     string
	Size      vg.Length // canvas side, default 10 inches
	Color     color.Color
}

// NewPlotRenderer returns a renderer writing into dir on the OS filesystem.
func NewPlotRenderer(dir string) *PlotRenderer {
	return &PlotRenderer{
		FS:        fsutil.OSFileSystem{},
		OutputDir: dir,
		FileName:  "floor_plan.png",
		Title:     "Floor Plan Slice (Top View)",
		Size:      10 * vg.Inch,
		Color:     color.RGBA{B: 255, A: 255},
	}
}

// Path returns the file the renderer writes to.
func (r *PlotRenderer) Path() string {
	name := r.FileName
	if name == "" {
		name = "floor_plan.png"
	}
	return filepath.Join(r.OutputDir, name)
}

// Render2D implements Renderer2D.
func (r *PlotRenderer) Render2D(points geometry.PointSet, axes AxisPair) error {
	if points.Empty() {
		return ErrNothingToDraw
	}
	if err := axes.Validate(); err != nil {
		return err
	}

	p, err := r.buildPlot(points, axes)
	if err != nil {
		return err
	}

	size := r.Size
	if size <= 0 {
		size = 10 * vg.Inch
	}
	wt, err := p.WriterTo(size, size, "png")
	if err != nil {
		return fmt.Errorf("encode plot: %w", err)
	}

	if err := r.FS.MkdirAll(r.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	path := r.Path()
	f, err := r.FS.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := wt.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("save slice plot: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	monitoring.Logf("Plotted %d slice points to %s", len(points), path)
	return nil
}

func (r *PlotRenderer) buildPlot(points geometry.PointSet, axes AxisPair) (*plot.Plot, error) {
	xys := make(plotter.XYs, len(points))
	hMin, vMin := axes.Project(points[0])
	hMax, vMax := hMin, vMin
	for i, pt := range points {
		h, v := axes.Project(pt)
		xys[i].X, xys[i].Y = h, v
		hMin, hMax = min(hMin, h), max(hMax, h)
		vMin, vMax = min(vMin, v), max(vMax, v)
	}

	p := plot.New()
	p.Title.Text = r.Title
	p.X.Label.Text = axes.Horizontal.String() + " axis"
	p.Y.Label.Text = axes.Vertical.String() + " axis"
	p.X.Min, p.X.Max, p.Y.Min, p.Y.Max = squareRange(hMin, hMax, vMin, vMax)

	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, fmt.Errorf("build scatter: %w", err)
	}
	sc.GlyphStyle.Radius = vg.Points(1)
	if r.Color != nil {
		sc.GlyphStyle.Color = r.Color
	}
	p.Add(plotter.NewGrid(), sc)
	return p, nil
}
