// Package physics provides board geometry and occupancy helpers.
package physics

// Wrap maps v into [0, n) with toroidal semantics, so -1 becomes n-1 and n
// becomes 0. n must be positive.
func Wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
