package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/banshee-data/floorplan/internal/version"
)

func TestParseFlagsDefaults(t *testing.T) {
	o, err := parseFlags(nil, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if len(o.set) != 0 {
		t.Errorf("expected no flags marked set, got %v", o.set)
	}

	cfg, err := o.resolveConfig()
	if err != nil {
		t.Fatalf("resolveConfig: %v", err)
	}
	spec := cfg.RoomSpec()
	if spec.Width != 5 || spec.Length != 7 || spec.Height != 3 || spec.ResolutionX != 20 {
		t.Errorf("default spec = %+v", spec)
	}
	if q := cfg.SliceQuery(); q.Height != 1.5 || q.Tolerance != 0.1 {
		t.Errorf("default query = %+v", q)
	}
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "room.json")
	body := `{"width": 8, "height": 2.5, "resolution_y": 6, "slice_height": 1.0}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	o, err := parseFlags([]string{"-config", path, "-height", "4", "-slice-tolerance", "0.2"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	cfg, err := o.resolveConfig()
	if err != nil {
		t.Fatalf("resolveConfig: %v", err)
	}

	spec := cfg.RoomSpec()
	if spec.Width != 8 {
		t.Errorf("width from file = %v, want 8", spec.Width)
	}
	if spec.Height != 4 {
		t.Errorf("height flag should override file: got %v", spec.Height)
	}
	if spec.ResolutionY != 6 || spec.ResolutionX != 20 {
		t.Errorf("resolutions = %d/%d, want x=20 y=6", spec.ResolutionX, spec.ResolutionY)
	}
	q := cfg.SliceQuery()
	if q.Height != 1.0 || q.Tolerance != 0.2 {
		t.Errorf("query = %+v, want height 1.0 tolerance 0.2", q)
	}

	// -resolution replaces per-axis values from the file
	o, err = parseFlags([]string{"-config", path, "-resolution", "3"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	cfg, err = o.resolveConfig()
	if err != nil {
		t.Fatalf("resolveConfig: %v", err)
	}
	if s := cfg.RoomSpec(); s.ResolutionX != 3 || s.ResolutionY != 3 || s.ResolutionZ != 3 {
		t.Errorf("resolution flag not applied to all axes: %+v", s)
	}
}

func TestRunWritesOutputs(t *testing.T) {
	quietLogs(t)

	base := t.TempDir()
	var stdout, stderr bytes.Buffer
	// Height rungs at 3*i/7 put 1.286 and 1.714 within 0.25 of the slice.
	code := run([]string{"-out", base, "-resolution", "8", "-slice-tolerance", "0.25"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	entries, err := os.ReadDir(base)
	if err != nil {
		t.Fatalf("read output dir: %v", err)
	}
	if len(entries) != 1 || !entries[0].IsDir() {
		t.Fatalf("expected one run directory, got %v", entries)
	}
	runDir := filepath.Join(base, entries[0].Name())
	for _, name := range []string{"room_3d.html", "floor_plan.png"} {
		if _, err := os.Stat(filepath.Join(runDir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
	if !strings.Contains(stdout.String(), "Run "+entries[0].Name()) {
		t.Errorf("stdout should name the run id, got:\n%s", stdout.String())
	}
}

func TestRunInvalidSpec(t *testing.T) {
	quietLogs(t)

	base := t.TempDir()
	var stdout, stderr bytes.Buffer
	code := run([]string{"-out", base, "-width", "0"}, &stdout, &stderr)
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "width must be positive") {
		t.Errorf("stderr = %q", stderr.String())
	}
	if entries, _ := os.ReadDir(base); len(entries) != 0 {
		t.Errorf("nothing should be written for an invalid spec, found %v", entries)
	}
}

func TestRunBadSliceToleranceWritesNothing(t *testing.T) {
	quietLogs(t)

	for _, tol := range []string{"0", "-0.5", "NaN"} {
		base := t.TempDir()
		var stdout, stderr bytes.Buffer
		code := run([]string{"-out", base, "-resolution", "4", "-slice-tolerance", tol}, &stdout, &stderr)
		if code != 1 {
			t.Errorf("tolerance %s: exit code = %d, want 1", tol, code)
		}
		if !strings.Contains(stderr.String(), "slice_tolerance must be positive") {
			t.Errorf("tolerance %s: stderr = %q", tol, stderr.String())
		}
		if entries, _ := os.ReadDir(base); len(entries) != 0 {
			t.Errorf("tolerance %s: nothing should be written, found %v", tol, entries)
		}
	}
}

func TestRunHugeResolutionRejected(t *testing.T) {
	quietLogs(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-out", t.TempDir(), "-resolution", "2000000000", "-no-3d", "-no-2d"}, &stdout, &stderr)
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "resolution must be <= 100000") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRunResolutionOne(t *testing.T) {
	quietLogs(t)

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-out", t.TempDir(), "-resolution", "1", "-no-3d", "-no-2d"}, &stdout, &stderr); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}

func TestRunEmptySlice(t *testing.T) {
	quietLogs(t)

	base := t.TempDir()
	var stdout, stderr bytes.Buffer
	code := run([]string{"-out", base, "-resolution", "4", "-slice-height", "50", "-no-3d"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "No slice points to visualize!") {
		t.Errorf("stdout = %q", stdout.String())
	}
	if strings.Contains(stdout.String(), "Floor plan:") {
		t.Error("no plot path should be reported for an empty slice")
	}
}

func TestRunVersion(t *testing.T) {
	var stdout bytes.Buffer
	if code := run([]string{"-version"}, &stdout, &bytes.Buffer{}); code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if strings.TrimSpace(stdout.String()) != version.String() {
		t.Errorf("version output = %q", stdout.String())
	}
}

func TestRunBadFlag(t *testing.T) {
	if code := run([]string{"-nope"}, &bytes.Buffer{}, &bytes.Buffer{}); code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
}
