// Package viz renders analysis plots to image files: the analytic
// dose-vs-thickness curve and calibration residuals.
package viz

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// DoseVsThickness renders the closed-form dose curve S·exp(-mu·t/10) over the
// given thickness grid (mm) and saves it to outPath. The output format
// follows the file extension (.png, .svg, .pdf).
func DoseVsThickness(mu, sourceIntensity float64, thicknessesMm []float64, outPath string) error {
	if len(thicknessesMm) == 0 {
		return fmt.Errorf("no thickness grid")
	}

	pts := make(plotter.XYs, len(thicknessesMm))
	for i, t := range thicknessesMm {
		pts[i].X = t
		pts[i].Y = sourceIntensity * math.Exp(-mu*t/10)
	}

	p := plot.New()
	p.Title.Text = "Dose vs Shield Thickness"
	p.X.Label.Text = "Thickness (mm)"
	p.Y.Label.Text = "Dose"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("build curve: %w", err)
	}
	p.Add(line)
	p.Legend.Add("dose", line)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, outPath); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	return nil
}

// Residuals renders an observed-minus-predicted scatter against predicted
// values, with a zero reference line, and saves it to outPath.
func Residuals(predicted, observed []float64, outPath string) error {
	if len(predicted) != len(observed) {
		return fmt.Errorf("mismatched lengths: %d predicted, %d observed", len(predicted), len(observed))
	}
	if len(predicted) == 0 {
		return fmt.Errorf("no data")
	}

	pts := make(plotter.XYs, len(predicted))
	for i := range predicted {
		pts[i].X = predicted[i]
		pts[i].Y = observed[i] - predicted[i]
	}

	p := plot.New()
	p.Title.Text = "Calibration Residuals"
	p.X.Label.Text = "Predicted"
	p.Y.Label.Text = "Residual"
	p.Add(plotter.NewGrid())

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("build scatter: %w", err)
	}
	p.Add(scatter)

	zero := plotter.NewFunction(func(float64) float64 { return 0 })
	p.Add(zero)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, outPath); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	return nil
}
