package sim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinMaterials(t *testing.T) {
	mats := BuiltinMaterials()

	for _, name := range []string{"Lead", "Concrete", "Steel", "Water"} {
		if _, ok := mats[name]; !ok {
			t.Errorf("Built-in table missing %q", name)
		}
	}

	lead := mats["Lead"]
	assert.Equal(t, 0.77, lead.MuTotal)
	assert.Equal(t, 0.58, lead.MuCompton)
	assert.Equal(t, 0.19, lead.MuPhotoelectric)
	assert.Equal(t, 11.34, lead.Density)
}

func TestMaterial_Layer(t *testing.T) {
	lead := BuiltinMaterials()["Lead"]
	layer := lead.Layer(5.0)

	assert.Equal(t, "Lead", layer.Name)
	assert.Equal(t, 5.0, layer.ThicknessCm)
	assert.Equal(t, lead.MuTotal, layer.MuTotal)
	assert.Equal(t, lead.Density, layer.Density)
}

func TestLoadMaterialsFile(t *testing.T) {
	content := `materials:
  - name: Lead
    mu_total: 0.77
    mu_compton: 0.58
    mu_photoelectric: 0.19
    density: 11.34
  - name: Polyethylene
    mu_total: 0.09
    mu_compton: 0.09
    mu_photoelectric: 0.0
    density: 0.94
`
	path := filepath.Join(t.TempDir(), "materials.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	mats, err := LoadMaterialsFile(path)
	require.NoError(t, err)
	require.Len(t, mats, 2)

	assert.Equal(t, 0.77, mats["Lead"].MuTotal)
	assert.Equal(t, 0.94, mats["Polyethylene"].Density)
}

func TestLoadMaterialsFile_Missing(t *testing.T) {
	_, err := LoadMaterialsFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadMaterialsFile_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("materials: {not a list"), 0o644))

	_, err := LoadMaterialsFile(path)
	require.Error(t, err)
}

func TestMaterialsFile_Validate(t *testing.T) {
	valid := Material{Name: "Lead", MuTotal: 0.77, MuCompton: 0.58, MuPhotoelectric: 0.19, Density: 11.34}

	tests := []struct {
		name      string
		materials []Material
		wantErr   bool
	}{
		{"valid single entry", []Material{valid}, false},
		{"empty list is fine", nil, false},
		{"missing name", []Material{{MuTotal: 0.5, Density: 1.0}}, true},
		{"duplicate name", []Material{valid, valid}, true},
		{"negative coefficient", []Material{{Name: "X", MuTotal: -0.1, Density: 1.0}}, true},
		{"zero density", []Material{{Name: "X", MuTotal: 0.5, Density: 0}}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := &MaterialsFile{Materials: tc.materials}
			err := f.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
