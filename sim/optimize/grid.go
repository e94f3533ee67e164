// Package optimize provides shield design search and calibration: a
// mass-minimizing grid search over layer thicknesses under a dose constraint,
// and least-squares fitting of measured attenuation data.
package optimize

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/shield-sim/shield-sim/sim"
	"github.com/shield-sim/shield-sim/sim/analytic"
)

// ParseRange parses a thickness range spec in millimetres. Supported formats:
//   - "start..end..step": inclusive arithmetic progression (step defaults to 1)
//   - "start,end,n": n evenly spaced points
//   - "start,end": 5 evenly spaced points
func ParseRange(spec string) ([]float64, error) {
	if strings.Contains(spec, "..") {
		parts := strings.Split(spec, "..")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, fmt.Errorf("range %q: want start..end..step", spec)
		}
		vals, err := parseFloats(parts)
		if err != nil {
			return nil, fmt.Errorf("range %q: %w", spec, err)
		}
		start, end := vals[0], vals[1]
		step := 1.0
		if len(vals) == 3 {
			step = vals[2]
		}
		if step <= 0 {
			return nil, fmt.Errorf("range %q: step must be positive", spec)
		}
		// Nudge the end so it is included despite rounding.
		var grid []float64
		for v := start; v <= end+step/1000; v += step {
			grid = append(grid, v)
		}
		return grid, nil
	}

	parts := strings.Split(spec, ",")
	if len(parts) < 2 || len(parts) > 3 {
		return nil, fmt.Errorf("range %q: want start,end[,n]", spec)
	}
	vals, err := parseFloats(parts)
	if err != nil {
		return nil, fmt.Errorf("range %q: %w", spec, err)
	}
	start, end := vals[0], vals[1]
	n := 5
	if len(vals) == 3 {
		n = int(vals[2])
	}
	if n < 2 {
		return nil, fmt.Errorf("range %q: need at least 2 points", spec)
	}
	return floats.Span(make([]float64, n), start, end), nil
}

func parseFloats(parts []string) ([]float64, error) {
	vals := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q", p)
		}
		vals[i] = v
	}
	return vals, nil
}

// Candidate is one thickness combination satisfying the dose constraint.
type Candidate struct {
	ThicknessesMm map[string]float64
	Dose          float64
	MassKg        float64
}

// SearchConfig groups the grid-search inputs.
type SearchConfig struct {
	Order           []string                // material evaluation order (source to detector)
	Ranges          map[string]string       // per-material thickness range spec (mm)
	Materials       map[string]sim.Material // materials database
	SourceIntensity float64                 // source strength S
	MaxDose         float64                 // dose cap behind the shield
	AreaM2          float64                 // shield area for mass calculations
	TopK            int                     // number of candidates to return
}

// GridSearch evaluates the cartesian product of per-material thickness grids
// with the closed-form dose model, keeps combinations under the dose cap, and
// returns the TopK lightest.
func GridSearch(cfg SearchConfig) ([]Candidate, error) {
	if len(cfg.Order) == 0 {
		return nil, fmt.Errorf("no materials to search over")
	}

	grids := make([][]float64, len(cfg.Order))
	for i, name := range cfg.Order {
		if _, ok := cfg.Materials[name]; !ok {
			return nil, fmt.Errorf("unknown material %q", name)
		}
		spec, ok := cfg.Ranges[name]
		if !ok {
			return nil, fmt.Errorf("no range defined for %q", name)
		}
		grid, err := ParseRange(spec)
		if err != nil {
			return nil, err
		}
		if len(grid) == 0 {
			return nil, fmt.Errorf("empty range for %q", name)
		}
		grids[i] = grid
	}

	var valid []Candidate
	indices := make([]int, len(grids))
	for {
		slabs := make([]analytic.Slab, len(cfg.Order))
		thicknesses := make(map[string]float64, len(cfg.Order))
		for i, name := range cfg.Order {
			tMm := grids[i][indices[i]]
			mat := cfg.Materials[name]
			slabs[i] = analytic.Slab{Mu: mat.MuTotal, ThicknessCm: tMm / 10, Density: mat.Density}
			thicknesses[name] = tMm
		}

		dose := analytic.TransmittedDose(slabs, cfg.SourceIntensity)
		if dose <= cfg.MaxDose {
			valid = append(valid, Candidate{
				ThicknessesMm: thicknesses,
				Dose:          dose,
				MassKg:        analytic.TotalMassKg(slabs, cfg.AreaM2),
			})
		}

		if !advance(indices, grids) {
			break
		}
	}

	sort.Slice(valid, func(i, j int) bool { return valid[i].MassKg < valid[j].MassKg })
	if cfg.TopK > 0 && len(valid) > cfg.TopK {
		valid = valid[:cfg.TopK]
	}
	return valid, nil
}

// advance steps the odometer over the cartesian product; false when done.
func advance(indices []int, grids [][]float64) bool {
	for i := len(indices) - 1; i >= 0; i-- {
		indices[i]++
		if indices[i] < len(grids[i]) {
			return true
		}
		indices[i] = 0
	}
	return false
}
