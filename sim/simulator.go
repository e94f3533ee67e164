// sim/simulator.go

package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Simulator is the run driver: it owns the layer stack and the variate
// stream, validates preconditions, runs N independent photon trials through
// the transport engine, and aggregates their outcomes into a Result.
//
// Trials are sequential and have no dependencies on one another; the only
// shared mutable resource across trials is the variate stream. A caller that
// needs early termination should check a cooperative flag between runs rather
// than mutating mid-run state. Partitioning trials across workers with
// independently seeded streams is a valid future extension, but it must not
// change the per-photon algorithm or the sequential reference output.
type Simulator struct {
	Stack    *Stack
	Variates *VariateSource

	seed int64
}

// NewSimulator creates a simulator with an empty stack and a variate stream
// seeded from seed. Use DefaultSeed for reproducible default behavior.
func NewSimulator(seed int64) *Simulator {
	return &Simulator{
		Stack:    &Stack{},
		Variates: NewVariateSource(seed),
		seed:     seed,
	}
}

// Seed returns the seed the variate stream was created with.
func (s *Simulator) Seed() int64 {
	return s.seed
}

// AddLayer appends a material layer to the shield. Layers are added in order
// from source to detector.
func (s *Simulator) AddLayer(name string, thicknessCm, muTotal, muCompton, muPhotoelectric, density float64) {
	s.Stack.AddLayer(MaterialLayer{
		Name:            name,
		ThicknessCm:     thicknessCm,
		MuTotal:         muTotal,
		MuCompton:       muCompton,
		MuPhotoelectric: muPhotoelectric,
		Density:         density,
	})
}

// ClearLayers removes all layers from the shield configuration. Only valid
// between runs.
func (s *Simulator) ClearLayers() {
	s.Stack.ClearLayers()
}

// NumLayers returns the number of configured layers.
func (s *Simulator) NumLayers() int {
	return s.Stack.NumLayers()
}

// validate applies the run preconditions. All violations are fatal to the
// run and detected before any photon is simulated.
func (s *Simulator) validate(src SourceConfig) error {
	if s.Stack.NumLayers() == 0 {
		return fmt.Errorf("%w: use AddLayer first", ErrNoLayers)
	}
	if src.NumPhotons <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidPhotonCount, src.NumPhotons)
	}
	for i := 0; i < s.Stack.NumLayers(); i++ {
		if l := s.Stack.Layer(i); l.MuTotal <= 0 {
			return fmt.Errorf("%w: layer %d (%s) has mu_total %g", ErrInvalidAttenuation, i, l.Name, l.MuTotal)
		}
	}
	return nil
}

// Run simulates src.NumPhotons independent photons through the stack and
// returns the aggregated Result. Callers see either a complete, deterministic
// Result or an error identifying the violated precondition; there is no
// partial result.
func (s *Simulator) Run(src SourceConfig) (*Result, error) {
	if err := s.validate(src); err != nil {
		return nil, err
	}

	logrus.Infof("Starting transport: %d layers, %.2f cm total, %d photons at %.3f MeV, seed=%d",
		s.Stack.NumLayers(), s.Stack.TotalThickness(), src.NumPhotons, src.EnergyMeV, s.seed)

	transport := NewTransport(s.Stack, s.Variates)
	result := NewResult(src.NumPhotons)

	var totalTransmitted, totalAbsorbed float64
	transmittedDoses := make([]float64, 0, src.NumPhotons)

	for i := 0; i < src.NumPhotons; i++ {
		photon := NewPhoton(src.EnergyMeV)
		out := transport.Track(photon)

		switch out.State {
		case StateExited:
			result.TransmittedPhotons++
			dose := out.EnergyMeV * out.Weight
			totalTransmitted += dose
			transmittedDoses = append(transmittedDoses, dose)
		case StateAbsorbed:
			result.AbsorbedPhotons++
		case StateKilled:
			result.KilledPhotons++
		}
		result.ComptonEvents += out.Scatters
		totalAbsorbed += out.AbsorbedDose
	}

	result.finalize(s.Stack, totalTransmitted, totalAbsorbed, transmittedDoses)

	logrus.Infof("Transport finished: %d/%d transmitted, %d absorbed, %d killed",
		result.TransmittedPhotons, result.TotalPhotons, result.AbsorbedPhotons, result.KilledPhotons)
	return result, nil
}
