// Defines the shield geometry: material layers stacked along the transport
// axis and the lookup used by the engine to resolve a photon's position.

package sim

// MaterialLayer describes one slab of the shield. Layers are immutable once
// added to a run; the stack is replaced wholesale between runs, never edited
// mid-run.
type MaterialLayer struct {
	Name            string  // material label, not used by transport
	ThicknessCm     float64 // slab thickness along the transport axis (cm)
	MuTotal         float64 // total linear attenuation coefficient (cm^-1)
	MuCompton       float64 // Compton scattering coefficient (cm^-1)
	MuPhotoelectric float64 // photoelectric absorption coefficient (cm^-1)
	Density         float64 // g/cm^3; informational, used only for mass calculations
}

// Stack is the ordered shield geometry. Layer i occupies the interval
// [sum(t_0..t_{i-1}), sum(t_0..t_i)) along z, so the layers partition
// [0, TotalThickness()) into contiguous, non-overlapping slabs.
//
// The caller is expected to keep MuTotal ≈ MuCompton + MuPhotoelectric for
// each layer; the engine does not verify this.
type Stack struct {
	layers []MaterialLayer
}

// AddLayer appends a layer on the far side of the shield. The first layer
// added is closest to the source.
func (s *Stack) AddLayer(l MaterialLayer) {
	s.layers = append(s.layers, l)
}

// ClearLayers removes all layers. Only valid between runs.
func (s *Stack) ClearLayers() {
	s.layers = nil
}

// NumLayers returns the number of layers in the stack.
func (s *Stack) NumLayers() int {
	return len(s.layers)
}

// Layer returns the layer at index i.
func (s *Stack) Layer(i int) MaterialLayer {
	return s.layers[i]
}

// Layers returns a copy of the layer sequence.
func (s *Stack) Layers() []MaterialLayer {
	out := make([]MaterialLayer, len(s.layers))
	copy(out, s.layers)
	return out
}

// TotalThickness returns the summed thickness of all layers (cm).
func (s *Stack) TotalThickness() float64 {
	total := 0.0
	for _, l := range s.layers {
		total += l.ThicknessCm
	}
	return total
}

// Locate returns the index of the layer containing z, walking cumulative
// thickness. ok is false when z is at or beyond the total thickness.
//
// Positions below zero resolve to the first layer. Backscattered photons can
// produce such positions; resolving them to layer 0 matches the reference
// engine rather than treating them as an exit.
func (s *Stack) Locate(z float64) (int, bool) {
	accumulated := 0.0
	for i, l := range s.layers {
		accumulated += l.ThicknessCm
		if z < accumulated {
			return i, true
		}
	}
	return -1, false
}

// layerEnd returns the z coordinate of layer i's far boundary.
func (s *Stack) layerEnd(i int) float64 {
	end := 0.0
	for j := 0; j <= i; j++ {
		end += s.layers[j].ThicknessCm
	}
	return end
}
