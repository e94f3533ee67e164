// Defines the Photon struct that models an individual gamma photon during
// transport. Tracks energy, position, direction, statistical weight, and
// liveness.

package sim

import (
	"fmt"
)

// PhotonState represents the lifecycle state of a photon in the transport
// state machine.
type PhotonState string

const (
	// StateTraveling is the only non-terminal state: the photon is in free
	// flight inside the stack.
	StateTraveling PhotonState = "traveling"
	// StateAbsorbed is terminal: photoelectric capture deposited the photon's
	// remaining energy in the shield.
	StateAbsorbed PhotonState = "absorbed"
	// StateKilled is terminal: the photon's energy fell below the transport
	// cutoff. Its residual energy is counted in neither dose total.
	StateKilled PhotonState = "killed"
	// StateExited is terminal: the photon left the far side of the stack and
	// counts as transmitted.
	StateExited PhotonState = "exited"
)

// Photon models a single photon's state during transport. Created fresh per
// trial, mutated exclusively by the Transport engine, and discarded once a
// terminal state is reached. Only Z matters for the current one-dimensional
// transport; X and Y are carried for completeness.
type Photon struct {
	EnergyMeV  float64
	X, Y, Z    float64 // position (cm)
	DX, DY, DZ float64 // direction (unit vector)
	Weight     float64 // statistical multiplier on dose contributions
	Alive      bool
}

// NewPhoton creates a source photon at the origin heading into the shield
// along +z with unit weight.
func NewPhoton(energyMeV float64) *Photon {
	return &Photon{
		EnergyMeV: energyMeV,
		DZ:        1,
		Weight:    1,
		Alive:     true,
	}
}

// String returns a human-readable representation of the photon.
func (p Photon) String() string {
	return fmt.Sprintf("Photon: (E: %.4f MeV, z: %.4f, dz: %.4f, weight: %.4f, alive: %v)",
		p.EnergyMeV, p.Z, p.DZ, p.Weight, p.Alive)
}
