package sim

import "errors"

// Precondition failures detected before any photon is simulated. All are
// fatal to the run; there is no recoverable error path inside the per-photon
// loop. Once these checks pass, every trial deterministically reaches one of
// the three terminal states.
var (
	// ErrNoLayers reports a run attempted against an empty layer stack
	// (configuration error).
	ErrNoLayers = errors.New("no shield layers defined")

	// ErrInvalidPhotonCount reports a non-positive photon count (argument
	// error).
	ErrInvalidPhotonCount = errors.New("photon count must be positive")

	// ErrInvalidAttenuation reports a layer whose total attenuation
	// coefficient would make free-path sampling divide by zero (argument
	// error).
	ErrInvalidAttenuation = errors.New("layer mu_total must be positive")
)
