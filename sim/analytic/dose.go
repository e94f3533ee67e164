// Package analytic provides closed-form Beer-Lambert shielding arithmetic:
// transmission, dose, mass and source decay. It is the deterministic
// counterpart to the Monte Carlo engine in sim, used by the grid-search
// optimizer and for sanity-checking simulated results.
package analytic

import "math"

// Slab is one shield layer for closed-form arithmetic: a single effective
// attenuation coefficient and a thickness.
type Slab struct {
	Mu          float64 // linear attenuation coefficient (cm^-1)
	ThicknessCm float64
	Density     float64 // g/cm^3
}

// Transmission returns the slab's I/I0 factor, exp(-mu·t).
func (s Slab) Transmission() float64 {
	return math.Exp(-s.Mu * s.ThicknessCm)
}

// StackTransmission multiplies per-slab transmissions.
func StackTransmission(slabs []Slab) float64 {
	total := 1.0
	for _, s := range slabs {
		total *= s.Transmission()
	}
	return total
}

// TransmittedDose is the uncollided dose behind the stack for a source of the
// given intensity: S · Π exp(-mu_i·t_i).
func TransmittedDose(slabs []Slab, sourceIntensity float64) float64 {
	return sourceIntensity * StackTransmission(slabs)
}

// AbsorbedDose sums the per-slab absorbed fraction, S·(1 - exp(-mu·t)), over
// the stack. Each slab is evaluated against the unattenuated source, matching
// the reference formula.
func AbsorbedDose(slabs []Slab, sourceIntensity float64) float64 {
	total := 0.0
	for _, s := range slabs {
		total += sourceIntensity * (1 - s.Transmission())
	}
	return total
}

// EffectiveAttenuation returns the stack-wide exponent Σ mu_i·t_i. This is
// the physically fuller uncollided reference for multi-layer stacks; the
// Monte Carlo engine's buildup factor deliberately uses the first layer's
// coefficient instead.
func EffectiveAttenuation(slabs []Slab) float64 {
	total := 0.0
	for _, s := range slabs {
		total += s.Mu * s.ThicknessCm
	}
	return total
}
