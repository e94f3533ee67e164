package analytic

import "math"

// DecayedIntensity returns the remaining source intensity after elapsed time
// under simple exponential decay: S · 0.5^(t/T½). Both times must share a
// unit. A non-positive half-life returns the intensity unchanged.
func DecayedIntensity(intensity, elapsed, halfLife float64) float64 {
	if halfLife <= 0 {
		return intensity
	}
	return intensity * math.Pow(0.5, elapsed/halfLife)
}
