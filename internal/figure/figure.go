// Package figure renders the per-trajectory composite timing figure: two
// jitter plots side by side on top and one wide command-delay plot below.
package figure

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/armdiag/linktrace/internal/fsutil"
	"github.com/armdiag/linktrace/internal/metrics"
	"github.com/armdiag/linktrace/internal/trace"
)

// Fixed axis limits shared by every figure so trajectories compare visually.
const (
	trajTimeMaxSecs = 20.0
	jitterMaxMs     = 8.0
	delayMaxMs      = 0.6

	canvasWidth  = 12 * vg.Inch
	canvasHeight = 8 * vg.Inch
	titleBand    = 0.4 * vg.Inch
)

// Renderer writes composite PNG figures into OutDir. Each call owns its plot
// objects outright; there is no shared figure state between trajectories.
type Renderer struct {
	OutDir string
}

// Render derives the three series from the two directions of one trace and
// writes <OutDir>/<name>.png, creating OutDir if needed. It returns the path
// of the written file.
func (r *Renderer) Render(name string, status, command trace.DirectionalTrace) (string, error) {
	if r.OutDir == "" {
		return "", fmt.Errorf("figure directory must be specified when saving")
	}
	if err := fsutil.EnsureDir(r.OutDir); err != nil {
		return "", err
	}

	statusTimes, commandTimes := metrics.Align(status.Times, command.Times)

	pStatus, err := linePlot("Status Frame Jitter", "Jitter [ms]", jitterMaxMs, metrics.Jitter(statusTimes))
	if err != nil {
		return "", err
	}
	pCommand, err := linePlot("Command Frame Jitter", "Jitter [ms]", jitterMaxMs, metrics.Jitter(commandTimes))
	if err != nil {
		return "", err
	}
	pDelay, err := linePlot("Command Frame Delay", "Delay [ms]", delayMaxMs, metrics.Delay(statusTimes, commandTimes))
	if err != nil {
		return "", err
	}

	img := vgimg.New(canvasWidth, canvasHeight)
	dc := draw.New(img)

	drawTitle(dc, name)

	// Body below the title strip, tiled 2x2 with the bottom row merged into
	// one wide canvas.
	body := draw.Crop(dc, 0, 0, 0, -titleBand)
	tiles := draw.Tiles{
		Rows: 2, Cols: 2,
		PadX: 5 * vg.Millimeter, PadY: 5 * vg.Millimeter,
		PadTop: vg.Points(2), PadBottom: vg.Points(2),
		PadLeft: vg.Points(2), PadRight: vg.Points(2),
	}
	topLeft := tiles.At(body, 0, 0)
	topRight := tiles.At(body, 1, 0)
	bottomLeft := tiles.At(body, 0, 1)
	bottomRight := tiles.At(body, 1, 1)
	bottom := draw.Canvas{
		Canvas:    body.Canvas,
		Rectangle: vg.Rectangle{Min: bottomLeft.Min, Max: bottomRight.Max},
	}

	pStatus.Draw(topLeft)
	pCommand.Draw(topRight)
	pDelay.Draw(bottom)

	path := filepath.Join(r.OutDir, name+".png")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create figure file: %w", err)
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return "", fmt.Errorf("write figure: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close figure: %w", err)
	}
	return path, nil
}

// drawTitle paints the trace name centred in the strip above the subplots.
func drawTitle(dc draw.Canvas, title string) {
	fnt := plot.DefaultFont
	fnt.Size = vg.Points(16)
	sty := text.Style{
		Color:   color.Black,
		Font:    fnt,
		XAlign:  draw.XCenter,
		YAlign:  draw.YTop,
		Handler: text.Plain{Fonts: font.DefaultCache},
	}
	pt := vg.Point{
		X: (dc.Min.X + dc.Max.X) / 2,
		Y: dc.Max.Y - vg.Points(4),
	}
	dc.FillText(sty, pt, title)
}

// linePlot builds one subplot with the common axis treatment: shared
// trajectory-time X range, fixed Y range, labels and a grid.
func linePlot(title, ylabel string, ymax float64, s metrics.Series) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Traj. Time [s]"
	p.Y.Label.Text = ylabel
	p.X.Min, p.X.Max = 0, trajTimeMaxSecs
	p.Y.Min, p.Y.Max = 0, ymax
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(s.Y))
	for i := range s.Y {
		pts[i] = plotter.XY{X: s.X[i], Y: s.Y[i]}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", title, err)
	}
	line.Width = vg.Points(1)
	p.Add(line)
	return p, nil
}
