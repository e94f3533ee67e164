package sim

import (
	"math"
	"math/rand"
)

// DefaultSeed seeds the variate stream when the caller does not provide one.
const DefaultSeed int64 = 42

// VariateSource is the engine-owned stream of uniform random draws.
//
// All stochastic sampling in the transport engine goes through this type in a
// fixed call order (free path, interaction type, then scattering angles on a
// Compton event), so two simulations with the same seed and identical
// configuration MUST produce bit-for-bit identical results.
//
// Thread-safety: NOT thread-safe. Each Simulator owns its own instance and
// advances it from a single goroutine.
type VariateSource struct {
	rng *rand.Rand
}

// NewVariateSource creates a deterministic variate stream from a seed.
func NewVariateSource(seed int64) *VariateSource {
	return &VariateSource{rng: rand.New(rand.NewSource(seed))}
}

// Uniform returns the next draw in [0, 1). Consumes one draw.
func (v *VariateSource) Uniform() float64 {
	return v.rng.Float64()
}

// FreePath samples an exponential free-flight length with rate muTotal, the
// standard mean-free-path sampling for attenuation: -ln(u)/muTotal.
// Consumes one draw.
func (v *VariateSource) FreePath(muTotal float64) float64 {
	return -math.Log(v.rng.Float64()) / muTotal
}

// ComptonSelected decides the interaction type: Compton with probability
// muCompton/muTotal, photoelectric otherwise. Consumes one draw.
func (v *VariateSource) ComptonSelected(muCompton, muTotal float64) bool {
	return v.rng.Float64() < muCompton/muTotal
}

// ScatterAngles samples an isotropic scattering direction: cosTheta uniform
// on [-1, 1] followed by phi uniform on [0, 2π). Consumes two draws, cosTheta
// first. Isotropic sampling is a deliberate simplification of the
// Klein-Nishina angular distribution.
func (v *VariateSource) ScatterAngles() (cosTheta, phi float64) {
	cosTheta = 2*v.rng.Float64() - 1
	phi = 2 * math.Pi * v.rng.Float64()
	return cosTheta, phi
}
