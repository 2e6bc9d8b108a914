package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/banshee-data/floorplan/internal/room"
	"github.com/banshee-data/floorplan/internal/slice"
)

// DefaultConfigPath is the path to the canonical run defaults file.
const DefaultConfigPath = "config/floorplan.defaults.json"

// RunConfig holds the room and slice parameters for one floorplan run.
// Nil fields fall back to the defaults returned by the Get* methods, so a
// partial JSON file only overrides what it names.
type RunConfig struct {
	// Room extents (metres)
	Width  *float64 `json:"width,omitempty"`
	Length *float64 `json:"length,omitempty"`
	Height *float64 `json:"height,omitempty"`

	// Samples per axis. Resolution applies to every axis unless a
	// per-axis override is set.
	Resolution  *int `json:"resolution,omitempty"`
	ResolutionX *int `json:"resolution_x,omitempty"`
	ResolutionY *int `json:"resolution_y,omitempty"`
	ResolutionZ *int `json:"resolution_z,omitempty"`

	// Slice params
	SliceHeight    *float64 `json:"slice_height,omitempty"`
	SliceTolerance *float64 `json:"slice_tolerance,omitempty"`

	// Output
	OutputDir *string `json:"output_dir,omitempty"`
}

// Helper functions to create pointers
func ptrFloat64(v float64) *float64 { return &v }
func ptrInt(v int) *int             { return &v }
func ptrString(v string) *string    { return &v }

// EmptyRunConfig returns a RunConfig with all fields set to nil.
func EmptyRunConfig() *RunConfig {
	return &RunConfig{}
}

// DefaultRunConfig returns a RunConfig with every field populated with its default.
func DefaultRunConfig() *RunConfig {
	return &RunConfig{
		Width:          ptrFloat64(5),
		Length:         ptrFloat64(7),
		Height:         ptrFloat64(3),
		Resolution:     ptrInt(20),
		SliceHeight:    ptrFloat64(1.5),
		SliceTolerance: ptrFloat64(0.1),
		OutputDir:      ptrString("plots"),
	}
}

// LoadRunConfig loads a RunConfig from a JSON file.
// The file must have a .json extension and be under 1MB.
func LoadRunConfig(path string) (*RunConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyRunConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// MustLoadDefaultConfig loads the canonical defaults from DefaultConfigPath,
// searching the current directory and its parents. Panics if the file cannot
// be loaded, intended for test setup.
func MustLoadDefaultConfig() *RunConfig {
	candidates := []string{
		DefaultConfigPath,
		"../" + DefaultConfigPath,
		"../../" + DefaultConfigPath, // from internal/config/
		"../../../" + DefaultConfigPath,
	}
	for _, path := range candidates {
		if cfg, err := LoadRunConfig(path); err == nil {
			return cfg
		}
	}
	panic("cannot find " + DefaultConfigPath + " - run tests from repository root")
}

// Validate checks the values that are set. Room-level checks (every
// resolution >= 2, positive extents) are repeated by room.Spec.Validate;
// doing them here reports a bad file at load time.
func (c *RunConfig) Validate() error {
	positive := []struct {
		name string
		v    *float64
	}{
		{"width", c.Width},
		{"length", c.Length},
		{"height", c.Height},
		{"slice_tolerance", c.SliceTolerance},
	}
	for _, f := range positive {
		if f.v != nil && (math.IsNaN(*f.v) || *f.v <= 0) {
			return fmt.Errorf("%s must be positive, got %v", f.name, *f.v)
		}
	}

	resolutions := []struct {
		name string
		v    *int
	}{
		{"resolution", c.Resolution},
		{"resolution_x", c.ResolutionX},
		{"resolution_y", c.ResolutionY},
		{"resolution_z", c.ResolutionZ},
	}
	for _, r := range resolutions {
		if r.v != nil && *r.v < room.MinResolution {
			return fmt.Errorf("%s must be >= %d, got %d", r.name, room.MinResolution, *r.v)
		}
		if r.v != nil && *r.v > room.MaxResolution {
			return fmt.Errorf("%s must be <= %d, got %d", r.name, room.MaxResolution, *r.v)
		}
	}

	if c.SliceHeight != nil && math.IsNaN(*c.SliceHeight) {
		return fmt.Errorf("slice_height must be a number")
	}
	return nil
}

// GetWidth returns the width value or the default.
func (c *RunConfig) GetWidth() float64 {
	if c.Width == nil {
		return 5.0
	}
	return *c.Width
}

// GetLength returns the length value or the default.
func (c *RunConfig) GetLength() float64 {
	if c.Length == nil {
		return 7.0
	}
	return *c.Length
}

// GetHeight returns the height value or the default.
func (c *RunConfig) GetHeight() float64 {
	if c.Height == nil {
		return 3.0
	}
	return *c.Height
}

// GetResolution returns the shared resolution value or the default.
func (c *RunConfig) GetResolution() int {
	if c.Resolution == nil {
		return 20
	}
	return *c.Resolution
}

func (c *RunConfig) axisResolution(v *int) int {
	if v == nil {
		return c.GetResolution()
	}
	return *v
}

// GetResolutionX returns the X-axis resolution, falling back to GetResolution.
func (c *RunConfig) GetResolutionX() int { return c.axisResolution(c.ResolutionX) }

// GetResolutionY returns the Y-axis resolution, falling back to GetResolution.
func (c *RunConfig) GetResolutionY() int { return c.axisResolution(c.ResolutionY) }

// GetResolutionZ returns the Z-axis resolution, falling back to GetResolution.
func (c *RunConfig) GetResolutionZ() int { return c.axisResolution(c.ResolutionZ) }

// GetSliceHeight returns the slice_height value or the default.
func (c *RunConfig) GetSliceHeight() float64 {
	if c.SliceHeight == nil {
		return 1.5
	}
	return *c.SliceHeight
}

// GetSliceTolerance returns the slice_tolerance value or the default.
func (c *RunConfig) GetSliceTolerance() float64 {
	if c.SliceTolerance == nil {
		return 0.1
	}
	return *c.SliceTolerance
}

// GetOutputDir returns the output_dir value or the default.
func (c *RunConfig) GetOutputDir() string {
	if c.OutputDir == nil || *c.OutputDir == "" {
		return "plots"
	}
	return *c.OutputDir
}

// RoomSpec projects the configuration onto a room.Spec.
func (c *RunConfig) RoomSpec() room.Spec {
	return room.Spec{
		Width:       c.GetWidth(),
		Length:      c.GetLength(),
		Height:      c.GetHeight(),
		ResolutionX: c.GetResolutionX(),
		ResolutionY: c.GetResolutionY(),
		ResolutionZ: c.GetResolutionZ(),
	}
}

// SliceQuery projects the configuration onto a slice.Query.
func (c *RunConfig) SliceQuery() slice.Query {
	return slice.Query{
		Height:    c.GetSliceHeight(),
		Tolerance: c.GetSliceTolerance(),
	}
}
