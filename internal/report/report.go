// Package report renders interactive HTML timing reports with go-echarts.
// It is the "show" path of the tool: Go has no matplotlib-style display, so
// showing a figure means writing a self-contained page with zoomable charts
// and logging where it went.
package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/armdiag/linktrace/internal/fsutil"
	"github.com/armdiag/linktrace/internal/metrics"
	"github.com/armdiag/linktrace/internal/trace"
)

// Same fixed ranges as the PNG figures.
const (
	trajTimeMaxSecs = 20.0
	jitterMaxMs     = 8.0
	delayMaxMs      = 0.6
)

// Writer renders one HTML page per trace into OutDir.
type Writer struct {
	OutDir string
}

// Write derives the three series from one trace and writes
// <OutDir>/<name>.html. It returns the path of the written file.
func (w *Writer) Write(name string, status, command trace.DirectionalTrace) (string, error) {
	if w.OutDir == "" {
		return "", fmt.Errorf("report directory must be specified")
	}
	if err := fsutil.EnsureDir(w.OutDir); err != nil {
		return "", err
	}

	statusTimes, commandTimes := metrics.Align(status.Times, command.Times)

	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(
		lineChart("Status Frame Jitter", "Jitter [ms]", jitterMaxMs, metrics.Jitter(statusTimes)),
		lineChart("Command Frame Jitter", "Jitter [ms]", jitterMaxMs, metrics.Jitter(commandTimes)),
		lineChart("Command Frame Delay", "Delay [ms]", delayMaxMs, metrics.Delay(statusTimes, commandTimes)),
	)

	path := filepath.Join(w.OutDir, name+".html")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report file: %w", err)
	}
	if err := page.Render(f); err != nil {
		f.Close()
		return "", fmt.Errorf("render report: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close report: %w", err)
	}
	return path, nil
}

// lineChart builds one zoomable line chart over value-typed axes so the XY
// pairs land at their true trajectory times.
func lineChart(title, yname string, ymax float64, s metrics.Series) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Traj. Time [s]", Type: "value", Min: 0, Max: trajTimeMaxSecs}),
		charts.WithYAxisOpts(opts.YAxis{Name: yname, Min: 0, Max: ymax}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}),
	)

	data := make([]opts.LineData, len(s.Y))
	for i := range s.Y {
		data[i] = opts.LineData{Value: []interface{}{s.X[i], s.Y[i]}}
	}
	line.AddSeries(title, data, charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}))
	return line
}
