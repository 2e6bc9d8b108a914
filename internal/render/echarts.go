package render

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/banshee-data/floorplan/internal/fsutil"
	"github.com/banshee-data/floorplan/internal/geometry"
	"github.com/banshee-data/floorplan/internal/monitoring"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// DefaultMaxPoints caps the number of points written to a 3D page.
const DefaultMaxPoints = 50000

// EChartsRenderer writes an interactive 3D scatter page (HTML) using
// go-echarts. The room's up axis (Y) is drawn vertically.
type EChartsRenderer struct {
	FS        fsutil.FileSystem
	OutputDir string
	FileName  string // default "room_3d.html"
	Title     string
	MaxPoints int // 0 means DefaultMaxPoints
}

// NewEChartsRenderer returns a renderer writing into dir on the OS filesystem.
func NewEChartsRenderer(dir string) *EChartsRenderer {
	return &EChartsRenderer{
		FS:        fsutil.OSFileSystem{},
		OutputDir: dir,
		FileName:  "room_3d.html",
		Title:     "Room Point Cloud",
	}
}

// Path returns the file the renderer writes to.
func (r *EChartsRenderer) Path() string {
	name := r.FileName
	if name == "" {
		name = "room_3d.html"
	}
	return filepath.Join(r.OutputDir, name)
}

// Render3D implements Renderer3D.
func (r *EChartsRenderer) Render3D(points geometry.PointSet) error {
	b, ok := points.Bounds()
	if !ok {
		return ErrNothingToDraw
	}

	maxPoints := r.MaxPoints
	if maxPoints <= 0 {
		maxPoints = DefaultMaxPoints
	}
	// Downsample by stride to stay within maxPoints
	stride := 1
	if len(points) > maxPoints {
		stride = int(math.Ceil(float64(len(points)) / float64(maxPoints)))
	}

	// echarts-gl draws its z axis vertically, so room Y goes last.
	data := make([]opts.Chart3DData, 0, len(points)/stride+1)
	for i := 0; i < len(points); i += stride {
		p := points[i]
		data = append(data, opts.Chart3DData{Value: []interface{}{p.X, p.Z, p.Y}})
	}

	maxHeight := b.Max.Y
	if maxHeight == b.Min.Y {
		maxHeight = b.Min.Y + 1
	}

	scatter := charts.NewScatter3D()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: r.Title, Theme: "dark", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: r.Title, Subtitle: fmt.Sprintf("%d points, stride %d", len(data), stride)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxis3DOpts(opts.XAxis3D{Name: "X (m)", Min: b.Min.X, Max: b.Max.X}),
		charts.WithYAxis3DOpts(opts.YAxis3D{Name: "Z (m)", Min: b.Min.Z, Max: b.Max.Z}),
		charts.WithZAxis3DOpts(opts.ZAxis3D{Name: "Y (m)", Min: b.Min.Y, Max: b.Max.Y}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        float32(b.Min.Y),
			Max:        float32(maxHeight),
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: []string{"#440154", "#3e4989", "#26828e", "#35b779", "#fde725"}},
		}),
	)
	scatter.AddSeries("room", data)

	if err := r.FS.MkdirAll(r.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	path := r.Path()
	f, err := r.FS.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := scatter.Render(f); err != nil {
		f.Close()
		return fmt.Errorf("render 3D chart: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	monitoring.Logf("Rendered %d points to %s", len(data), path)
	return nil
}
