package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/shield-sim/shield-sim/sim"
)

func TestParseLayerSpec(t *testing.T) {
	tests := []struct {
		spec          string
		wantName      string
		wantThickness float64
		wantErr       bool
	}{
		{"Lead=5", "Lead", 5, false},
		{"Concrete=10.5", "Concrete", 10.5, false},
		{" Water = 2 ", "Water", 2, false},
		{"Film=0", "Film", 0, false},
		{"Lead", "", 0, true},
		{"=5", "", 0, true},
		{"Lead=", "", 0, true},
		{"Lead=abc", "", 0, true},
		{"Lead=-1", "", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.spec, func(t *testing.T) {
			name, thickness, err := parseLayerSpec(tc.spec)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantName, name)
			assert.Equal(t, tc.wantThickness, thickness)
		})
	}
}

func TestMaterialNames_Sorted(t *testing.T) {
	names := materialNames(map[string]sim.Material{
		"Water": {}, "Lead": {}, "Concrete": {},
	})
	assert.Equal(t, []string{"Concrete", "Lead", "Water"}, names)
}
