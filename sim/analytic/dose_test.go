package analytic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlab_Transmission(t *testing.T) {
	tests := []struct {
		name string
		slab Slab
		want float64
	}{
		{"zero thickness passes everything", Slab{Mu: 0.77, ThicknessCm: 0}, 1.0},
		{"lead 5cm", Slab{Mu: 0.77, ThicknessCm: 5}, math.Exp(-3.85)},
		{"water 10cm", Slab{Mu: 0.07, ThicknessCm: 10}, math.Exp(-0.7)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, tc.slab.Transmission(), 1e-12)
		})
	}
}

func TestStackTransmission_Multiplies(t *testing.T) {
	slabs := []Slab{
		{Mu: 0.77, ThicknessCm: 2},
		{Mu: 0.16, ThicknessCm: 10},
	}
	want := math.Exp(-0.77*2) * math.Exp(-0.16*10)
	assert.InDelta(t, want, StackTransmission(slabs), 1e-12)
	assert.Equal(t, 1.0, StackTransmission(nil))
}

func TestTransmittedDose(t *testing.T) {
	slabs := []Slab{{Mu: 0.77, ThicknessCm: 5}}
	assert.InDelta(t, 100*math.Exp(-3.85), TransmittedDose(slabs, 100), 1e-9)
}

func TestAbsorbedDose(t *testing.T) {
	// Each slab is evaluated against the unattenuated source.
	slabs := []Slab{
		{Mu: 0.77, ThicknessCm: 5},
		{Mu: 0.16, ThicknessCm: 10},
	}
	want := 100*(1-math.Exp(-3.85)) + 100*(1-math.Exp(-1.6))
	assert.InDelta(t, want, AbsorbedDose(slabs, 100), 1e-9)
	assert.Equal(t, 0.0, AbsorbedDose(nil, 100))
}

func TestEffectiveAttenuation(t *testing.T) {
	slabs := []Slab{
		{Mu: 0.77, ThicknessCm: 2},
		{Mu: 0.16, ThicknessCm: 10},
	}
	assert.InDelta(t, 0.77*2+0.16*10, EffectiveAttenuation(slabs), 1e-12)
}

func TestSlab_MassKg(t *testing.T) {
	// 5 cm of lead over one square metre: 10000 cm^2 · 5 cm · 11.34 g/cm^3.
	lead := Slab{Mu: 0.77, ThicknessCm: 5, Density: 11.34}
	assert.InDelta(t, 567.0, lead.MassKg(1.0), 1e-9)
	assert.InDelta(t, 283.5, lead.MassKg(0.5), 1e-9)
}

func TestTotalMassKg(t *testing.T) {
	slabs := []Slab{
		{ThicknessCm: 5, Density: 11.34},
		{ThicknessCm: 10, Density: 2.3},
	}
	want := 567.0 + 230.0
	assert.InDelta(t, want, TotalMassKg(slabs, 1.0), 1e-9)
}

func TestDecayedIntensity(t *testing.T) {
	tests := []struct {
		name               string
		intensity, elapsed float64
		halfLife           float64
		want               float64
	}{
		{"no time elapsed", 100, 0, 30, 100},
		{"one half-life", 100, 30, 30, 50},
		{"two half-lives", 100, 60, 30, 25},
		{"fractional", 100, 15, 30, 100 * math.Sqrt(0.5)},
		{"zero half-life leaves intensity alone", 100, 50, 0, 100},
		{"negative half-life leaves intensity alone", 100, 50, -1, 100},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, DecayedIntensity(tc.intensity, tc.elapsed, tc.halfLife), 1e-9)
		})
	}
}
