package sim

// SourceConfig groups the gamma source parameters for a run.
type SourceConfig struct {
	EnergyMeV  float64 // initial photon energy (MeV, must be > 0)
	NumPhotons int     // number of independent trials (must be > 0)
	AreaCm2    float64 // source area (cm^2); informational, unused by transport
}

// NewSourceConfig creates a SourceConfig.
func NewSourceConfig(energyMeV float64, numPhotons int, areaCm2 float64) SourceConfig {
	return SourceConfig{
		EnergyMeV:  energyMeV,
		NumPhotons: numPhotons,
		AreaCm2:    areaCm2,
	}
}
