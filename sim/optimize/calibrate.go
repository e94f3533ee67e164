package optimize

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"

	"gonum.org/v1/gonum/stat"
)

// FitResult holds the calibrated attenuation model y = S·exp(-mu·t/10),
// with t in millimetres and mu in cm^-1.
type FitResult struct {
	SourceIntensity float64 // fitted S (dose with no shield)
	Mu              float64 // fitted attenuation coefficient (cm^-1)
	RSquared        float64 // goodness of fit on the original scale
	RMSE            float64 // root-mean-square residual
	N               int     // number of observations
}

// FitAttenuation fits the exponential attenuation model to measured doses by
// linear least squares on the log-transformed model:
//
//	ln y = ln S − mu·(t/10)
//
// All doses must be positive; the model cannot represent zero or negative
// measurements.
func FitAttenuation(thicknessesMm, doses []float64) (*FitResult, error) {
	if len(thicknessesMm) != len(doses) {
		return nil, fmt.Errorf("mismatched lengths: %d thicknesses, %d doses", len(thicknessesMm), len(doses))
	}
	if len(doses) < 2 {
		return nil, fmt.Errorf("need at least 2 observations, got %d", len(doses))
	}

	x := make([]float64, len(thicknessesMm))
	logY := make([]float64, len(doses))
	for i, y := range doses {
		if y <= 0 {
			return nil, fmt.Errorf("observation %d: dose must be positive, got %g", i, y)
		}
		x[i] = thicknessesMm[i] / 10
		logY[i] = math.Log(y)
	}

	lnS, slope := stat.LinearRegression(x, logY, nil, false)
	fit := &FitResult{
		SourceIntensity: math.Exp(lnS),
		Mu:              -slope,
		N:               len(doses),
	}

	// Quality metrics on the original scale.
	meanY := stat.Mean(doses, nil)
	ssRes, ssTot := 0.0, 0.0
	for i, y := range doses {
		pred := fit.SourceIntensity * math.Exp(-fit.Mu*x[i])
		ssRes += (y - pred) * (y - pred)
		ssTot += (y - meanY) * (y - meanY)
	}
	if ssTot > 0 {
		fit.RSquared = 1 - ssRes/ssTot
	}
	fit.RMSE = math.Sqrt(ssRes / float64(len(doses)))
	return fit, nil
}

// Predict evaluates the fitted model at a thickness in millimetres.
func (f *FitResult) Predict(thicknessMm float64) float64 {
	return f.SourceIntensity * math.Exp(-f.Mu*thicknessMm/10)
}

// LoadCalibrationCSV reads thickness/dose columns from a CSV file with a
// header row.
func LoadCalibrationCSV(path, thicknessCol, doseCol string) (thicknessesMm, doses []float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening calibration data: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parsing calibration data: %w", err)
	}
	if len(records) < 2 {
		return nil, nil, fmt.Errorf("calibration data %s has no rows", path)
	}

	tIdx, yIdx := -1, -1
	for i, name := range records[0] {
		switch name {
		case thicknessCol:
			tIdx = i
		case doseCol:
			yIdx = i
		}
	}
	if tIdx < 0 || yIdx < 0 {
		return nil, nil, fmt.Errorf("columns %q and %q must exist in %s", thicknessCol, doseCol, path)
	}

	for line, rec := range records[1:] {
		t, err := strconv.ParseFloat(rec[tIdx], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: bad thickness %q", line+2, rec[tIdx])
		}
		y, err := strconv.ParseFloat(rec[yIdx], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: bad dose %q", line+2, rec[yIdx])
		}
		thicknessesMm = append(thicknessesMm, t)
		doses = append(doses, y)
	}
	return thicknessesMm, doses, nil
}
