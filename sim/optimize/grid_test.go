package optimize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shield-sim/shield-sim/sim"
)

func TestParseRange_StepSyntax(t *testing.T) {
	tests := []struct {
		spec string
		want []float64
	}{
		{"0..4..1", []float64{0, 1, 2, 3, 4}},
		{"0..10..5", []float64{0, 5, 10}},
		{"1..2..0.5", []float64{1, 1.5, 2}},
		// step defaults to 1
		{"3..6", []float64{3, 4, 5, 6}},
		// end is included despite accumulated rounding
		{"0..0.3..0.1", []float64{0, 0.1, 0.2, 0.3}},
	}
	for _, tc := range tests {
		t.Run(tc.spec, func(t *testing.T) {
			got, err := ParseRange(tc.spec)
			require.NoError(t, err)
			require.Len(t, got, len(tc.want))
			for i := range tc.want {
				assert.InDelta(t, tc.want[i], got[i], 1e-9)
			}
		})
	}
}

func TestParseRange_LinspaceSyntax(t *testing.T) {
	got, err := ParseRange("0,10,5")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2.5, 5, 7.5, 10}, got)

	// two-value form defaults to 5 points
	got, err = ParseRange("0,1")
	require.NoError(t, err)
	require.Len(t, got, 5)
	assert.Equal(t, 0.0, got[0])
	assert.Equal(t, 1.0, got[4])
}

func TestParseRange_Errors(t *testing.T) {
	for _, spec := range []string{
		"",
		"5",
		"a..b",
		"0..10..0",
		"0..10..-1",
		"0,10,1",
		"1,2,3,4",
		"x,y",
	} {
		t.Run(spec, func(t *testing.T) {
			_, err := ParseRange(spec)
			assert.Error(t, err, "spec %q should not parse", spec)
		})
	}
}

func searchMaterials() map[string]sim.Material {
	return map[string]sim.Material{
		"Lead":     {Name: "Lead", MuTotal: 0.77, MuCompton: 0.58, MuPhotoelectric: 0.19, Density: 11.34},
		"Concrete": {Name: "Concrete", MuTotal: 0.16, MuCompton: 0.12, MuPhotoelectric: 0.04, Density: 2.3},
	}
}

func TestGridSearch_SingleMaterial(t *testing.T) {
	results, err := GridSearch(SearchConfig{
		Order:           []string{"Lead"},
		Ranges:          map[string]string{"Lead": "0..100..10"},
		Materials:       searchMaterials(),
		SourceIntensity: 100,
		MaxDose:         0.5,
		AreaM2:          1.0,
		TopK:            3,
	})
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.LessOrEqual(t, len(results), 3)

	// Sorted lightest first, and every candidate respects the cap.
	for i, c := range results {
		assert.LessOrEqual(t, c.Dose, 0.5)
		if i > 0 {
			assert.GreaterOrEqual(t, c.MassKg, results[i-1].MassKg)
		}
	}

	// The lightest valid lead shield is the thinnest one under the cap:
	// 100·exp(-0.77·t/10) <= 0.5 first holds at t = 70 mm.
	assert.Equal(t, 70.0, results[0].ThicknessesMm["Lead"])
}

func TestGridSearch_TwoMaterials(t *testing.T) {
	results, err := GridSearch(SearchConfig{
		Order:           []string{"Lead", "Concrete"},
		Ranges:          map[string]string{"Lead": "0..60..20", "Concrete": "0..300..100"},
		Materials:       searchMaterials(),
		SourceIntensity: 100,
		MaxDose:         1.0,
		AreaM2:          1.0,
		TopK:            0, // no cap
	})
	require.NoError(t, err)
	require.NotEmpty(t, results)

	for _, c := range results {
		assert.Contains(t, c.ThicknessesMm, "Lead")
		assert.Contains(t, c.ThicknessesMm, "Concrete")
		assert.LessOrEqual(t, c.Dose, 1.0)
	}
}

func TestGridSearch_NoSolution(t *testing.T) {
	results, err := GridSearch(SearchConfig{
		Order:           []string{"Lead"},
		Ranges:          map[string]string{"Lead": "0..10..5"},
		Materials:       searchMaterials(),
		SourceIntensity: 100,
		MaxDose:         1e-9,
		AreaM2:          1.0,
		TopK:            5,
	})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestGridSearch_ConfigErrors(t *testing.T) {
	base := SearchConfig{
		Materials:       searchMaterials(),
		SourceIntensity: 100,
		MaxDose:         0.5,
		AreaM2:          1.0,
	}

	t.Run("no materials", func(t *testing.T) {
		cfg := base
		_, err := GridSearch(cfg)
		assert.Error(t, err)
	})

	t.Run("unknown material", func(t *testing.T) {
		cfg := base
		cfg.Order = []string{"Unobtainium"}
		cfg.Ranges = map[string]string{"Unobtainium": "0..10..1"}
		_, err := GridSearch(cfg)
		assert.Error(t, err)
	})

	t.Run("missing range", func(t *testing.T) {
		cfg := base
		cfg.Order = []string{"Lead"}
		cfg.Ranges = map[string]string{}
		_, err := GridSearch(cfg)
		assert.Error(t, err)
	})

	t.Run("bad range spec", func(t *testing.T) {
		cfg := base
		cfg.Order = []string{"Lead"}
		cfg.Ranges = map[string]string{"Lead": "0..10..-1"}
		_, err := GridSearch(cfg)
		assert.Error(t, err)
	})
}
