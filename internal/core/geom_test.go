package core

import "testing"

func TestCoordEquality(t *testing.T) {
	a := C(2, 3)
	b := Coord{X: 2, Y: 3}

	if a != b {
		t.Errorf("C(2, 3) = %v, expected %v", a, b)
	}

	set := map[Coord]bool{a: true}
	if !set[b] {
		t.Error("equal coordinates should hash to the same map key")
	}

	if a.String() != "(2,3)" {
		t.Errorf("String() = %q, expected %q", a.String(), "(2,3)")
	}
}

func TestCoordNeighbors(t *testing.T) {
	c := C(1, 1)
	got := c.Neighbors()

	if len(got) != 8 {
		t.Fatalf("Neighbors() returned %d cells, expected 8", len(got))
	}

	seen := make(map[Coord]bool)
	for _, n := range got {
		if n == c {
			t.Error("Neighbors() should not include the cell itself")
		}
		dx, dy := n.X-c.X, n.Y-c.Y
		if dx < -1 || dx > 1 || dy < -1 || dy > 1 {
			t.Errorf("Neighbors() returned non-adjacent cell %v", n)
		}
		if seen[n] {
			t.Errorf("Neighbors() returned %v twice", n)
		}
		seen[n] = true
	}
}

func TestCoordNeighborsUnbounded(t *testing.T) {
	got := C(0, 0).Neighbors()
	if got[0] != C(-1, -1) {
		t.Errorf("Neighbors()[0] = %v, expected (-1,-1)", got[0])
	}
}
