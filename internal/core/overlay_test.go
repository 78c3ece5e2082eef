package core

import "testing"

func TestOverlayDimensions(t *testing.T) {
	cases := []struct {
		block, ow, oh int
	}{
		{1, 120, 100},
		{2, 60, 50},
		{4, 30, 25},
		{8, 15, 13},
	}
	for _, tc := range cases {
		o := NewOverlay[uint8](120, 100, tc.block)
		if o.OW != tc.ow || o.OH != tc.oh {
			t.Fatalf("block %d: got %dx%d, want %dx%d", tc.block, o.OW, o.OH, tc.ow, tc.oh)
		}
	}
}

func TestOverlayWorldMapping(t *testing.T) {
	o := NewOverlay[int16](120, 100, 8)
	o.WorldSet(17, 9, 42)
	if got := o.Get(2, 1); got != 42 {
		t.Fatalf("world (17,9) should land in overlay (2,1), got %d", got)
	}
	// Every world cell of the same block reads the same value.
	for wx := 16; wx < 24; wx++ {
		for wy := 8; wy < 16; wy++ {
			if got := o.WorldGet(wx, wy); got != 42 {
				t.Fatalf("world (%d,%d) = %d, want 42", wx, wy, got)
			}
		}
	}
}

func TestOverlayOutOfBounds(t *testing.T) {
	o := NewOverlay[int8](16, 16, 2)
	if got := o.Get(-1, 0); got != 0 {
		t.Fatalf("OOB read = %d, want default", got)
	}
	o.Set(100, 100, 7)
	for _, v := range o.Cells() {
		if v != 0 {
			t.Fatal("OOB write leaked")
		}
	}
}

func TestOverlayClearFill(t *testing.T) {
	o := NewOverlay[uint8](8, 8, 2)
	o.Fill(3)
	for _, v := range o.Cells() {
		if v != 3 {
			t.Fatal("fill missed a cell")
		}
	}
	o.Clear()
	for _, v := range o.Cells() {
		if v != 0 {
			t.Fatal("clear left residue")
		}
	}
}
