// Package sim provides the core Monte Carlo photon transport engine for
// gamma-ray shielding analysis.
//
// # Reading Guide
//
// Start with these three files to understand the transport kernel:
//   - photon.go: Photon state record and lifecycle (traveling → absorbed/killed/exited)
//   - transport.go: the per-photon state machine (free flight, interaction, scatter)
//   - simulator.go: precondition checks, the trial loop, and Result aggregation
//
// # Architecture
//
// The sim package holds the stochastic engine and its data model; supporting
// concerns live in sub-packages:
//   - sim/analytic/: closed-form Beer-Lambert dose, mass and decay arithmetic
//   - sim/optimize/: grid-search shield optimization and least-squares calibration
//   - sim/store/: SQLite persistence of finished runs
//   - sim/viz/: plot rendering
//
// # Determinism
//
// Every random draw the engine makes goes through an engine-owned
// VariateSource in a fixed, documented order (free path, interaction type,
// then scattering angles on a Compton event). The same seed, layer stack and
// photon count therefore reproduce bit-identical Results. There is no
// process-global RNG state; independent simulators never interfere, including
// under parallel test execution.
//
// # Physics model and its limits
//
// Transport is one-dimensional along z. Scattering is isotropic rather than
// Klein-Nishina, attenuation coefficients are energy-independent constants
// supplied by the caller, Compton electrons are not tracked, and a fixed 0.95
// weight decay approximates scattering efficiency loss. These are deliberate
// reference behaviors: replacing them changes observable statistics. Moving to
// true Klein-Nishina angular/energy sampling is a roadmap item.
package sim
