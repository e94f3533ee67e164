// sim/transport.go
//
// The per-photon transport state machine: free-flight sampling, interaction
// resolution, and energy/direction/weight updates.

package sim

import (
	"math"

	"github.com/sirupsen/logrus"
)

const (
	// ElectronRestMassMeV is the electron rest mass used in the Compton
	// energy shift.
	ElectronRestMassMeV = 0.511

	// EnergyCutoffMeV is the transport cutoff: photons below this energy are
	// killed. Their residual energy is counted in neither dose total.
	EnergyCutoffMeV = 0.01

	// WeightDecayFactor is applied to a photon's statistical weight after
	// each Compton scatter. It is an ad hoc stand-in for scattering
	// efficiency loss, not a physically derived value; it is part of the
	// reference behavior and must not be changed without revalidating all
	// statistical outputs.
	WeightDecayFactor = 0.95

	// referenceFloor is the smallest uncollided transmission for which a
	// buildup factor is computed.
	referenceFloor = 1e-10
)

// Outcome summarizes one photon's terminal fate.
type Outcome struct {
	State        PhotonState
	Transmitted  bool
	AbsorbedDose float64 // energy·weight deposited on photoelectric capture, else 0
	EnergyMeV    float64 // final energy; meaningful when transmitted
	Weight       float64 // final statistical weight
	Scatters     int     // number of Compton events along the track
}

// stepResult is the output of one state-machine transition.
type stepResult struct {
	state     PhotonState
	deposited float64
	scattered bool
}

// Transport drives a single photon through the layer stack until it reaches a
// terminal state. It owns no mutable state of its own; all randomness comes
// from the VariateSource and all geometry from the Stack.
type Transport struct {
	stack    *Stack
	variates *VariateSource
}

// NewTransport creates a transport engine over the given stack and variate
// stream.
func NewTransport(stack *Stack, variates *VariateSource) *Transport {
	return &Transport{stack: stack, variates: variates}
}

// Track runs the state machine to a terminal state and reports the outcome.
// The loop invariant is that the photon stays in StateTraveling only while it
// is alive, inside the stack, and above the energy cutoff.
func (t *Transport) Track(p *Photon) Outcome {
	total := t.stack.TotalThickness()

	out := Outcome{State: StateTraveling}
	for out.State == StateTraveling && p.Z < total && p.EnergyMeV > EnergyCutoffMeV {
		res := t.step(p)
		out.State = res.state
		out.AbsorbedDose += res.deposited
		if res.scattered {
			out.Scatters++
		}
	}

	if out.State == StateTraveling {
		// The loop exited on a boundary condition rather than a terminal
		// transition: either the photon crossed the far face or its energy
		// dropped below the cutoff.
		if p.Z >= total && p.Alive {
			out.State = StateExited
		} else {
			out.State = StateKilled
			p.Alive = false
		}
	}

	out.Transmitted = out.State == StateExited
	out.EnergyMeV = p.EnergyMeV
	out.Weight = p.Weight
	logrus.Tracef("track finished: %s, %s", out.State, p)
	return out
}

// step advances the photon by one free flight and resolves what it hits.
func (t *Transport) step(p *Photon) stepResult {
	idx, ok := t.stack.Locate(p.Z)
	if !ok {
		// beyond the stack
		return stepResult{state: StateExited}
	}
	layer := t.stack.Layer(idx)

	freePath := t.variates.FreePath(layer.MuTotal)
	boundary := (t.stack.layerEnd(idx) - p.Z) / math.Abs(p.DZ)

	if freePath < boundary {
		// Interaction occurs within the layer.
		p.Z += freePath * p.DZ
		if t.variates.ComptonSelected(layer.MuCompton, layer.MuTotal) {
			t.comptonScatter(p)
			return stepResult{state: StateTraveling, scattered: true}
		}
		// Photoelectric absorption deposits all remaining energy.
		deposited := p.EnergyMeV * p.Weight
		p.Alive = false
		return stepResult{state: StateAbsorbed, deposited: deposited}
	}

	// No interaction: advance to the layer boundary and resolve against the
	// next layer on the following step.
	p.Z += boundary * math.Abs(p.DZ)
	return stepResult{state: StateTraveling}
}

// comptonScatter draws scattering angles and applies the Compton update.
func (t *Transport) comptonScatter(p *Photon) {
	cosTheta, phi := t.variates.ScatterAngles()
	applyCompton(p, cosTheta, phi)
}

// applyCompton updates energy, direction and weight for a Compton event with
// the given scattering angles: E' = E / (1 + α(1 − cosθ)) with α = E/m_e.
// The new direction is set from the angles directly (isotropic model), and
// the statistical weight decays by the fixed factor.
func applyCompton(p *Photon, cosTheta, phi float64) {
	alpha := p.EnergyMeV / ElectronRestMassMeV
	p.EnergyMeV = p.EnergyMeV / (1 + alpha*(1-cosTheta))

	sinTheta := math.Sqrt(1 - cosTheta*cosTheta)
	p.DX = sinTheta * math.Cos(phi)
	p.DY = sinTheta * math.Sin(phi)
	p.DZ = cosTheta

	p.Weight *= WeightDecayFactor
}
