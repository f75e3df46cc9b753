// SPDX-License-Identifier: MIT
// Package: gyrostat/report
//
// plot.go — trajectory and distribution plots via gonum/plot.
//
// One PNG per plot: a full Rg trace with the running mean and the
// equilibration boundary marked, and a density histogram of the equilibrated
// window. Purely presentational; numbers come in, files go out.

package report

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/lvmarek/gyrostat/analysis"
)

const (
	plotWidth  = 8 * vg.Inch
	plotHeight = 6 * vg.Inch

	histogramBins = 30
)

var (
	traceColor    = color.RGBA{B: 255, A: 255}
	meanColor     = color.RGBA{R: 220, A: 255}
	boundaryColor = color.RGBA{G: 160, A: 255}
)

// SaveTracePlot renders the full trajectory of b with its equilibrated mean
// and the equilibration start marked, and writes a PNG to path.
func SaveTracePlot(path string, b *analysis.Branch) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Rg trajectory (%s)", b.Name)
	p.X.Label.Text = "Timestep"
	p.Y.Label.Text = "Radius of gyration"

	values := b.Series.Values()
	timesteps := b.Series.Timesteps()

	xys := make(plotter.XYs, len(values))
	lo, hi := values[0], values[0]
	for i, v := range values {
		xys[i].X = float64(timesteps[i])
		xys[i].Y = v
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	trace, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("report: trace line: %w", err)
	}
	trace.Color = traceColor
	p.Add(trace, plotter.NewGrid())
	p.Legend.Add("Rg", trace)

	// Horizontal marker at the equilibrated mean.
	mean, err := plotter.NewLine(plotter.XYs{
		{X: float64(timesteps[0]), Y: b.Moments.Mean},
		{X: float64(timesteps[len(timesteps)-1]), Y: b.Moments.Mean},
	})
	if err != nil {
		return fmt.Errorf("report: mean line: %w", err)
	}
	mean.Color = meanColor
	mean.Dashes = markerDashes()
	p.Add(mean)
	p.Legend.Add(fmt.Sprintf("mean %.3f", b.Moments.Mean), mean)

	// Vertical marker at the first equilibrated timestep.
	boundaryX := float64(timesteps[b.Window.Start])
	boundary, err := plotter.NewLine(plotter.XYs{
		{X: boundaryX, Y: lo},
		{X: boundaryX, Y: hi},
	})
	if err != nil {
		return fmt.Errorf("report: boundary line: %w", err)
	}
	boundary.Color = boundaryColor
	boundary.Dashes = markerDashes()
	p.Add(boundary)
	p.Legend.Add("equilibration", boundary)

	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("report: save %s: %w", path, err)
	}
	return nil
}

// SaveHistogram renders a normalized histogram of b's equilibrated window
// and writes a PNG to path.
func SaveHistogram(path string, b *analysis.Branch) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Rg distribution (%s)", b.Name)
	p.X.Label.Text = "Radius of gyration"
	p.Y.Label.Text = "Probability density"

	h, err := plotter.NewHist(plotter.Values(b.Window.Slice(b.Series)), histogramBins)
	if err != nil {
		return fmt.Errorf("report: histogram: %w", err)
	}
	h.Normalize(1)
	p.Add(h)

	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("report: save %s: %w", path, err)
	}
	return nil
}

// markerDashes returns the dash pattern used for marker lines.
func markerDashes() []vg.Length {
	return []vg.Length{vg.Points(4), vg.Points(3)}
}
