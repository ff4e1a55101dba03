package sandbox

import "testing"

func validSet(n Neighborhood) map[Direction]bool {
	out := map[Direction]bool{}
	for d := Direction(0); d < directionCount; d++ {
		out[d] = n.Valid(d)
	}
	return out
}

func TestNeighborsAtCorners(t *testing.T) {
	const size = 6
	world := New(size, size)

	cases := []struct {
		name    string
		x, y    int
		invalid []Direction
	}{
		{"origin", 0, 0, []Direction{Left, Bottom, BottomLeft, TopLeft, BottomRight}},
		{"far corner", size - 1, size - 1, []Direction{Right, Top, TopRight, TopLeft, BottomRight}},
		{"interior", 2, 3, nil},
	}
	for _, tc := range cases {
		got := validSet(world.Neighbors(tc.x, tc.y))
		want := map[Direction]bool{}
		for d := Direction(0); d < directionCount; d++ {
			want[d] = true
		}
		for _, d := range tc.invalid {
			want[d] = false
		}
		for d, ok := range want {
			if got[d] != ok {
				t.Fatalf("%s: %s valid=%v, want %v", tc.name, d, got[d], ok)
			}
		}
	}
}

func TestInvalidNeighborIsReadOnly(t *testing.T) {
	world := New(3, 3)
	n := world.Neighbors(0, 0)

	if n.Slot(Left) != nil || n.Slot(Bottom) != nil {
		t.Fatal("off-grid directions must not expose a writable slot")
	}
	c := n.At(Left)
	if c.IsValid {
		t.Fatal("off-grid read should report an invalid cell")
	}
	c.Type = Rock
	if n.At(Bottom).Type == Rock || n.At(Left).Type == Rock {
		t.Fatal("mutating an invalid read must not leak into other directions")
	}
	if n.IsAir(Left) {
		t.Fatal("off-grid neighbors are not air")
	}
}

func TestNeighborsResolveAgainstNextBuffer(t *testing.T) {
	world := New(3, 3)
	n := world.Neighbors(1, 1)
	n.Slot(Top).Type = Sand

	if got := world.next.At(1, 2).Type; got != Sand {
		t.Fatalf("writes should land in the next buffer, got %s", got)
	}
	if c, _ := world.Cell(1, 2); c.Type != Air {
		t.Fatal("the current generation must not change through a neighbor slot")
	}
}

func TestDirectionOffsets(t *testing.T) {
	cases := map[Direction][2]int{
		Top:         {0, 1},
		Bottom:      {0, -1},
		TopLeft:     {-1, 1},
		BottomRight: {1, -1},
	}
	for d, want := range cases {
		dx, dy := d.Offset()
		if dx != want[0] || dy != want[1] {
			t.Fatalf("%s offset = (%d,%d), want %v", d, dx, dy, want)
		}
	}
	if dx, dy := directionCount.Offset(); dx != 0 || dy != 0 {
		t.Fatal("out-of-range direction should have a zero offset")
	}
}
