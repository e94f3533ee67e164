package analytic

// MassKg returns the slab's mass in kg for a shield of the given area.
func (s Slab) MassKg(areaM2 float64) float64 {
	areaCm2 := areaM2 * 10000
	volumeCm3 := areaCm2 * s.ThicknessCm
	return volumeCm3 * s.Density / 1000
}

// TotalMassKg sums slab masses over the stack.
func TotalMassKg(slabs []Slab, areaM2 float64) float64 {
	total := 0.0
	for _, s := range slabs {
		total += s.MassKg(areaM2)
	}
	return total
}
