package figure

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/armdiag/linktrace/internal/trace"
)

// syntheticTraces builds a pair of directions resembling a 4 ms control
// loop: status frames every 4 ms, command frames trailing by ~0.2 ms.
func syntheticTraces(n int) (status, command trace.DirectionalTrace) {
	status.Direction = trace.DirectionStatus
	command.Direction = trace.DirectionCommand
	for i := 0; i < n; i++ {
		ts := float64(i) * 0.004
		status.Times = append(status.Times, ts)
		command.Times = append(command.Times, ts+0.0002)
	}
	return status, command
}

func TestRender(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "figures")
	r := &Renderer{OutDir: outDir}

	status, command := syntheticTraces(500)
	path, err := r.Render("traj1", status, command)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if path != filepath.Join(outDir, "traj1.png") {
		t.Errorf("unexpected output path %q", path)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat figure: %v", err)
	}
	if info.Size() == 0 {
		t.Error("figure file is empty")
	}
}

func TestRenderCreatesOutDir(t *testing.T) {
	// The output directory does not exist beforehand; Render must create it.
	outDir := filepath.Join(t.TempDir(), "a", "b", "figures")
	r := &Renderer{OutDir: outDir}

	status, command := syntheticTraces(10)
	if _, err := r.Render("traj", status, command); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if _, err := os.Stat(outDir); err != nil {
		t.Errorf("output directory was not created: %v", err)
	}
}

func TestRenderNoOutDir(t *testing.T) {
	r := &Renderer{}
	status, command := syntheticTraces(10)
	if _, err := r.Render("traj", status, command); err == nil {
		t.Error("expected configuration error for empty output directory")
	}
}

func TestRenderMismatchedDirections(t *testing.T) {
	// Command stream much shorter than status, as when the controller is
	// stopped first. Render must align and still produce a figure.
	status, command := syntheticTraces(200)
	command.Times = command.Times[:40]

	r := &Renderer{OutDir: t.TempDir()}
	if _, err := r.Render("short", status, command); err != nil {
		t.Fatalf("Render: %v", err)
	}
}

func TestRenderEmptyDirections(t *testing.T) {
	r := &Renderer{OutDir: t.TempDir()}
	if _, err := r.Render("empty", trace.DirectionalTrace{}, trace.DirectionalTrace{}); err != nil {
		t.Fatalf("Render with empty directions: %v", err)
	}
}
