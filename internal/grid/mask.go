package grid

// MaskSet holds the cell indices the user has hidden. It is independent of
// the generated field: reseeding or retuning the ranges leaves it intact.
// Indices are only meaningful for a fixed grid shape, so a geometry change
// clears the set outright rather than trying to remap indices.
type MaskSet map[int]struct{}

func NewMaskSet() MaskSet {
	return make(MaskSet)
}

// Add masks idx. Adding an already masked index is a no-op.
func (m MaskSet) Add(idx int) {
	m[idx] = struct{}{}
}

// Toggle flips membership for idx and reports the new state.
func (m MaskSet) Toggle(idx int) bool {
	if _, ok := m[idx]; ok {
		delete(m, idx)
		return false
	}
	m[idx] = struct{}{}
	return true
}

func (m MaskSet) Contains(idx int) bool {
	_, ok := m[idx]
	return ok
}

func (m MaskSet) Len() int {
	return len(m)
}

// Clear empties the set in place so existing references observe the reset.
func (m MaskSet) Clear() {
	for idx := range m {
		delete(m, idx)
	}
}

// Indices returns the masked indices in unspecified order.
func (m MaskSet) Indices() []int {
	out := make([]int, 0, len(m))
	for idx := range m {
		out = append(out, idx)
	}
	return out
}
