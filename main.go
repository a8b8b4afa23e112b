// Command linktrace analyses CSV dumps of the UDP link between a
// motion-control arm and its controller. Each dump is split into its two
// directions, per-direction frame jitter and command delay are derived, and
// the result is rendered as a composite PNG figure and an interactive HTML
// report, with optional run statistics persisted to SQLite.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/armdiag/linktrace/internal/figure"
	"github.com/armdiag/linktrace/internal/metrics"
	"github.com/armdiag/linktrace/internal/monitoring"
	"github.com/armdiag/linktrace/internal/report"
	"github.com/armdiag/linktrace/internal/store"
	"github.com/armdiag/linktrace/internal/trace"
)

// Config holds the resolved command-line configuration for one run.
type Config struct {
	DataDir        string
	FigureDir      string
	Hide           bool
	Save           bool
	DeviceAddr     string
	ControllerAddr string
	DBPath         string
}

func parseFlags() Config {
	var cfg Config

	flag.StringVar(&cfg.DataDir, "data-dir", "", `location of the CSV dumps (default "<cwd>/data")`)
	flag.StringVar(&cfg.FigureDir, "figure-dir", "", `location to store generated figures (default "<cwd>/figures")`)
	flag.BoolVar(&cfg.Hide, "hide", false, "don't render the interactive HTML reports")
	flag.BoolVar(&cfg.Save, "save", false, "save the figures as PNG")
	flag.StringVar(&cfg.DeviceAddr, "device", trace.DefaultDeviceAddr, "address of the arm side of the link")
	flag.StringVar(&cfg.ControllerAddr, "controller", trace.DefaultControllerAddr, "address of the controller side of the link")
	flag.StringVar(&cfg.DBPath, "db", "", "SQLite database path for run statistics (optional)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Analyse UDP trajectory dumps: one figure and report per CSV file.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
	return cfg
}

// applyDefaults fills the directory defaults relative to cwd, matching the
// documented "<cwd>/data" and "<cwd>/figures" behaviour.
func (c *Config) applyDefaults(cwd string) {
	if c.DataDir == "" {
		c.DataDir = filepath.Join(cwd, "data")
	}
	if c.FigureDir == "" {
		c.FigureDir = filepath.Join(cwd, "figures")
	}
}

// validate rejects configurations that would produce nothing.
func validate(cfg Config) error {
	if cfg.Hide && !cfg.Save {
		return fmt.Errorf("figures are neither shown nor saved; drop --hide or add --save")
	}
	if cfg.Save && cfg.FigureDir == "" {
		return fmt.Errorf("figure directory must be specified when saving")
	}
	return nil
}

// seriesNames orders the derived series for summaries and the database.
var seriesNames = []string{"status_jitter", "command_jitter", "command_delay"}

func run(cfg Config) error {
	traces, err := trace.LoadDir(cfg.DataDir)
	if err != nil {
		return err
	}

	ep := trace.Endpoints{Device: cfg.DeviceAddr, Controller: cfg.ControllerAddr}

	var st *store.Store
	var runID string
	if cfg.DBPath != "" {
		st, err = store.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer st.Close()
		if runID, err = st.RecordRun(cfg.DataDir, len(traces)); err != nil {
			return err
		}
	}

	renderer := &figure.Renderer{OutDir: cfg.FigureDir}
	reports := &report.Writer{OutDir: cfg.FigureDir}

	for _, t := range traces {
		status, command := trace.Split(t, ep)

		if cfg.Save {
			path, err := renderer.Render(t.Name, status, command)
			if err != nil {
				return fmt.Errorf("render %s: %w", t.Name, err)
			}
			monitoring.Logf("figure: %s", path)
		}

		if !cfg.Hide {
			path, err := reports.Write(t.Name, status, command)
			if err != nil {
				return fmt.Errorf("report %s: %w", t.Name, err)
			}
			monitoring.Logf("report: %s", path)
		}

		statusTimes, commandTimes := metrics.Align(status.Times, command.Times)
		series := []metrics.Series{
			metrics.Jitter(statusTimes),
			metrics.Jitter(commandTimes),
			metrics.Delay(statusTimes, commandTimes),
		}

		printSummary(t.Name, series)

		if st != nil {
			for i, s := range series {
				stats := metrics.Summarise(s.Y)
				if err := st.RecordSeriesStats(runID, t.Name, seriesNames[i], stats); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func printSummary(name string, series []metrics.Series) {
	fmt.Printf("\n===== %s =====\n", name)
	for i, s := range series {
		stats := metrics.Summarise(s.Y)
		fmt.Printf("  %-15s n=%-6d min=%.3fms max=%.3fms avg=%.3fms p50=%.3fms p95=%.3fms\n",
			seriesNames[i], stats.Samples,
			stats.MinMs, stats.MaxMs, stats.MeanMs, stats.P50Ms, stats.P95Ms)
	}
}

func main() {
	cfg := parseFlags()

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatalf("failed to resolve working directory: %v", err)
	}
	cfg.applyDefaults(cwd)

	if err := validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		log.Fatalf("analysis failed: %v", err)
	}
}
