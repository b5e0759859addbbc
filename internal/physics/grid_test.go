package physics

import "testing"

func TestWrap(t *testing.T) {
	tests := []struct {
		v, n, want int
	}{
		{0, 5, 0},
		{4, 5, 4},
		{5, 5, 0},
		{-1, 5, 4},
		{-6, 5, 4},
		{12, 5, 2},
		{0, 1, 0},
		{-1, 1, 0},
	}
	for _, tt := range tests {
		if got := Wrap(tt.v, tt.n); got != tt.want {
			t.Errorf("Wrap(%d, %d) = %d, want %d", tt.v, tt.n, got, tt.want)
		}
	}
}

func TestGridSetUnset(t *testing.T) {
	g := NewGrid(3, 2)
	if g.Free() != 6 {
		t.Fatalf("Free() = %d, want 6", g.Free())
	}

	g.Set(1, 1)
	g.Set(1, 1) // idempotent
	if !g.Occupied(1, 1) {
		t.Error("cell (1,1) should be occupied")
	}
	if g.Free() != 5 {
		t.Errorf("Free() = %d, want 5", g.Free())
	}

	g.Unset(1, 1)
	g.Unset(1, 1)
	if g.Occupied(1, 1) {
		t.Error("cell (1,1) should be free")
	}
	if g.Free() != 6 {
		t.Errorf("Free() = %d, want 6", g.Free())
	}
}

func TestGridOutOfBounds(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(-1, 0)
	g.Set(2, 0)
	g.Set(0, 5)
	if g.Free() != 4 {
		t.Errorf("out-of-bounds Set changed Free() to %d", g.Free())
	}
	if g.Occupied(-1, 0) {
		t.Error("out-of-bounds cell reported occupied")
	}
	if g.InBounds(2, 1) || !g.InBounds(1, 1) {
		t.Error("InBounds reports wrong result")
	}
}

func TestGridNthFree(t *testing.T) {
	g := NewGrid(3, 2)
	g.Set(0, 0)
	g.Set(2, 0)
	g.Set(1, 1)

	// Free cells in row-major order: (1,0), (0,1), (2,1)
	want := [][2]int{{1, 0}, {0, 1}, {2, 1}}
	for n, w := range want {
		col, row, ok := g.NthFree(n)
		if !ok || col != w[0] || row != w[1] {
			t.Errorf("NthFree(%d) = (%d,%d,%v), want (%d,%d,true)", n, col, row, ok, w[0], w[1])
		}
	}
	if _, _, ok := g.NthFree(3); ok {
		t.Error("NthFree past the end should fail")
	}
	if _, _, ok := g.NthFree(-1); ok {
		t.Error("NthFree(-1) should fail")
	}
}

func TestGridClear(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(0, 0)
	g.Set(1, 1)
	g.Clear()
	if g.Free() != 4 || g.Occupied(0, 0) {
		t.Error("Clear did not empty the grid")
	}
}

func TestNewGridClampsDimensions(t *testing.T) {
	g := NewGrid(0, -3)
	if g.Cols() != 1 || g.Rows() != 1 {
		t.Errorf("NewGrid(0,-3) = %dx%d, want 1x1", g.Cols(), g.Rows())
	}
}
