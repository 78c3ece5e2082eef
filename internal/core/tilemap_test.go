package core

import "testing"

func TestTileMapColumnMajor(t *testing.T) {
	m := NewTileMap(4, 3)
	m.Set(2, 1, 77)
	if got := m.Cells()[2*3+1]; got != 77 {
		t.Fatalf("cell (2,1) stored at wrong index, backing value %d", got)
	}
	if got := m.Get(2, 1); got != 77 {
		t.Fatalf("Get(2,1) = %d, want 77", got)
	}
	if idx := m.Index(2, 1); idx != 7 {
		t.Fatalf("Index(2,1) = %d, want 7", idx)
	}
}

func TestTileMapOutOfBounds(t *testing.T) {
	m := NewTileMap(4, 3)
	if got := m.Get(-1, 0); got != 0 {
		t.Fatalf("OOB read = %d, want 0", got)
	}
	if got := m.Get(4, 0); got != 0 {
		t.Fatalf("OOB read = %d, want 0", got)
	}
	m.Set(4, 0, 5)
	m.Set(0, -1, 5)
	for i, v := range m.Cells() {
		if v != 0 {
			t.Fatalf("OOB write leaked into cell %d = %d", i, v)
		}
	}
}

func TestTileMapRegion(t *testing.T) {
	m := NewTileMap(4, 4)
	m.Set(1, 1, 10)
	m.Set(2, 1, 20)
	m.Set(1, 2, 30)

	r := m.Region(1, 1, 2, 2)
	want := []uint16{10, 20, 30, 0}
	for i := range want {
		if r[i] != want[i] {
			t.Fatalf("region[%d] = %d, want %d", i, r[i], want[i])
		}
	}

	// Regions spanning the edge read zero padding, not garbage.
	r = m.Region(3, 3, 2, 2)
	if r[0] != 0 || r[1] != 0 || r[2] != 0 || r[3] != 0 {
		t.Fatalf("edge region not zero-padded: %v", r)
	}
}

func TestTileMapFillAndClear(t *testing.T) {
	m := NewTileMap(3, 3)
	m.Fill(0, 0, 3, 3, 9)
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			if m.Get(x, y) != 9 {
				t.Fatalf("fill missed (%d,%d)", x, y)
			}
		}
	}
	m.Clear()
	for _, v := range m.Cells() {
		if v != 0 {
			t.Fatal("clear left residue")
		}
	}
}
