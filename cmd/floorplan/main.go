// Command floorplan samples the surfaces of a rectangular room into a point
// cloud, renders it in 3D, and plots a horizontal slice as a floor plan.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/banshee-data/floorplan/internal/config"
	"github.com/banshee-data/floorplan/internal/render"
	"github.com/banshee-data/floorplan/internal/room"
	"github.com/banshee-data/floorplan/internal/version"
	"github.com/google/uuid"
)

// options holds parsed command-line flags.
type options struct {
	configPath  string
	showVersion bool
	no3D        bool
	no2D        bool

	// overrides are applied on top of the config file only when set
	width, length, height float64
	resolution            int
	sliceHeight           float64
	sliceTolerance        float64
	outputDir             string

	set map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	o := &options{}
	fs := flag.NewFlagSet("floorplan", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&o.configPath, "config", "", "Path to a JSON run config (optional)")
	fs.BoolVar(&o.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&o.no3D, "no-3d", false, "Skip the 3D point cloud page")
	fs.BoolVar(&o.no2D, "no-2d", false, "Skip the 2D floor plan plot")
	fs.Float64Var(&o.width, "width", 5, "Room width in metres (X)")
	fs.Float64Var(&o.length, "length", 7, "Room length in metres (Z)")
	fs.Float64Var(&o.height, "height", 3, "Room height in metres (Y, up)")
	fs.IntVar(&o.resolution, "resolution", 20, "Samples per axis")
	fs.Float64Var(&o.sliceHeight, "slice-height", 1.5, "Slice height in metres")
	fs.Float64Var(&o.sliceTolerance, "slice-tolerance", 0.1, "Slice half-thickness in metres")
	fs.StringVar(&o.outputDir, "out", "plots", "Base output directory; each run writes to a new subdirectory")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	o.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	return o, nil
}

// resolveConfig loads the config file (if any) and applies explicitly set flags.
func (o *options) resolveConfig() (*config.RunConfig, error) {
	cfg := config.DefaultRunConfig()
	if o.configPath != "" {
		loaded, err := config.LoadRunConfig(o.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if o.set["width"] {
		cfg.Width = &o.width
	}
	if o.set["length"] {
		cfg.Length = &o.length
	}
	if o.set["height"] {
		cfg.Height = &o.height
	}
	if o.set["resolution"] {
		// A flag resolution applies to every axis, replacing per-axis file values.
		cfg.Resolution = &o.resolution
		cfg.ResolutionX, cfg.ResolutionY, cfg.ResolutionZ = nil, nil, nil
	}
	if o.set["slice-height"] {
		cfg.SliceHeight = &o.sliceHeight
	}
	if o.set["slice-tolerance"] {
		cfg.SliceTolerance = &o.sliceTolerance
	}
	if o.set["out"] {
		cfg.OutputDir = &o.outputDir
	}

	// Flags bypass the checks LoadRunConfig ran on the file.
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// run is main without os.Exit, returning the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if opts.showVersion {
		fmt.Fprintln(stdout, version.String())
		return 0
	}

	cfg, err := opts.resolveConfig()
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 1
	}

	runID := uuid.NewString()
	outDir := filepath.Join(cfg.GetOutputDir(), runID)

	p := &pipeline{
		spec:  cfg.RoomSpec(),
		query: cfg.SliceQuery(),
		axes:  render.PlanAxes,
		out:   stdout,
	}
	e3 := render.NewEChartsRenderer(outDir)
	p2 := render.NewPlotRenderer(outDir)
	if !opts.no3D {
		p.r3 = e3
	}
	if !opts.no2D {
		p.r2 = p2
	}

	fp, err := p.run()
	switch {
	case errors.Is(err, room.ErrInvalidSpec):
		fmt.Fprintf(stderr, "room: %v\n", err)
		return 1
	case err != nil:
		fmt.Fprintf(stderr, "floorplan: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Run %s: %d room points, %d slice points\n", runID, len(fp.points), len(fp.slice))
	if p.r3 != nil && !fp.points.Empty() {
		fmt.Fprintf(stdout, "3D view: %s\n", e3.Path())
	}
	if p.r2 != nil && !fp.slice.Empty() {
		fmt.Fprintf(stdout, "Floor plan: %s\n", p2.Path())
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
