package game

import "golang.org/x/exp/rand"

// Picker chooses an index in [0, n). The engine enumerates free cells in
// row-major order and places food on the picked one, so a uniform Picker gives
// a uniformly random free cell.
type Picker interface {
	Pick(n int) int
}

// RandomPicker picks uniformly with a seeded source.
type RandomPicker struct {
	rng *rand.Rand
}

// NewRandomPicker creates a RandomPicker seeded with seed.
func NewRandomPicker(seed uint64) *RandomPicker {
	return &RandomPicker{rng: rand.New(rand.NewSource(seed))}
}

func (p *RandomPicker) Pick(n int) int {
	if n <= 1 {
		return 0
	}
	return p.rng.Intn(n)
}
