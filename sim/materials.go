package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Material describes a shielding material's attenuation data at the source
// energy. Coefficients are energy-independent constants supplied by the
// caller; no nuclear-data lookup happens here.
type Material struct {
	Name            string  `yaml:"name"`
	MuTotal         float64 `yaml:"mu_total"`         // cm^-1
	MuCompton       float64 `yaml:"mu_compton"`       // cm^-1
	MuPhotoelectric float64 `yaml:"mu_photoelectric"` // cm^-1
	Density         float64 `yaml:"density"`          // g/cm^3
}

// Layer builds a MaterialLayer of the given thickness from this material.
func (m Material) Layer(thicknessCm float64) MaterialLayer {
	return MaterialLayer{
		Name:            m.Name,
		ThicknessCm:     thicknessCm,
		MuTotal:         m.MuTotal,
		MuCompton:       m.MuCompton,
		MuPhotoelectric: m.MuPhotoelectric,
		Density:         m.Density,
	}
}

// MaterialsFile is the YAML materials database format:
//
//	materials:
//	  - name: Lead
//	    mu_total: 0.77
//	    mu_compton: 0.58
//	    mu_photoelectric: 0.19
//	    density: 11.34
type MaterialsFile struct {
	Materials []Material `yaml:"materials"`
}

// Validate checks the materials database for usable entries.
func (f *MaterialsFile) Validate() error {
	seen := map[string]bool{}
	for i, m := range f.Materials {
		if m.Name == "" {
			return fmt.Errorf("material %d has no name", i)
		}
		if seen[m.Name] {
			return fmt.Errorf("duplicate material %q", m.Name)
		}
		seen[m.Name] = true
		if m.MuTotal < 0 || m.MuCompton < 0 || m.MuPhotoelectric < 0 {
			return fmt.Errorf("material %q has a negative attenuation coefficient", m.Name)
		}
		if m.Density <= 0 {
			return fmt.Errorf("material %q must have a positive density, got %g", m.Name, m.Density)
		}
	}
	return nil
}

// LoadMaterialsFile reads and parses a YAML materials database, keyed by
// material name.
func LoadMaterialsFile(path string) (map[string]Material, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading materials database: %w", err)
	}
	var file MaterialsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing materials database: %w", err)
	}
	if err := file.Validate(); err != nil {
		return nil, fmt.Errorf("invalid materials database: %w", err)
	}
	mats := make(map[string]Material, len(file.Materials))
	for _, m := range file.Materials {
		mats[m.Name] = m
	}
	return mats, nil
}

// BuiltinMaterials returns the default material table. Coefficients are
// tabulated for a 1 MeV source; for other energies supply a materials file.
func BuiltinMaterials() map[string]Material {
	mats := []Material{
		{Name: "Lead", MuTotal: 0.77, MuCompton: 0.58, MuPhotoelectric: 0.19, Density: 11.34},
		{Name: "Concrete", MuTotal: 0.16, MuCompton: 0.12, MuPhotoelectric: 0.04, Density: 2.3},
		{Name: "Steel", MuTotal: 0.47, MuCompton: 0.35, MuPhotoelectric: 0.12, Density: 7.85},
		{Name: "Water", MuTotal: 0.07, MuCompton: 0.07, MuPhotoelectric: 0.00, Density: 1.0},
	}
	out := make(map[string]Material, len(mats))
	for _, m := range mats {
		out[m.Name] = m
	}
	return out
}
