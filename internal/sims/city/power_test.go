package city

import (
	"slices"
	"testing"
)

func TestPowerScanIdempotent(t *testing.T) {
	c := newTestCity(42)
	flatten(c, 0, 0, 40, 40)
	c.DoTool(ToolCoalPlant, 10, 10)
	for x := 14; x < 25; x++ {
		c.DoTool(ToolWire, x, 10)
	}

	c.powerScan()
	first := append([]uint8(nil), c.powerGrid.Cells()...)
	c.powerScan()
	if !slices.Equal(first, c.powerGrid.Cells()) {
		t.Fatal("repeated power scan changed the grid without map mutation")
	}
}

// TestPoweredImpliesConnected checks the closure property: every powered
// cell must reach a plant through 4-adjacent conductive cells.
func TestPoweredImpliesConnected(t *testing.T) {
	c := newTestCity(42)
	flatten(c, 0, 0, 60, 60)
	c.DoTool(ToolCoalPlant, 10, 10)
	for x := 14; x < 30; x++ {
		c.DoTool(ToolWire, x, 10)
	}
	c.DoTool(ToolNuclearPlant, 40, 40)
	// An isolated wire stays dark.
	c.DoTool(ToolWire, 55, 55)

	c.powerScan()

	// Reference reachability from scratch.
	reach := make(map[[2]int]bool)
	var stack [][2]int
	for x := 0; x < c.w; x++ {
		for y := 0; y < c.h; y++ {
			tch := TileChar(c.tiles.Get(x, y))
			if tch == CoalPlant || tch == Nuclear {
				stack = append(stack, [2]int{x, y})
				reach[[2]int{x, y}] = true
			}
		}
	}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
			q := [2]int{p[0] + d[0], p[1] + d[1]}
			if reach[q] || !c.tiles.InBounds(q[0], q[1]) {
				continue
			}
			if !isConductive(c.tiles.Get(q[0], q[1])) {
				continue
			}
			reach[q] = true
			stack = append(stack, q)
		}
	}

	for x := 0; x < c.w; x++ {
		for y := 0; y < c.h; y++ {
			powered := c.powerGrid.Get(x, y) != 0
			if powered && !reach[[2]int{x, y}] {
				t.Fatalf("cell (%d,%d) powered without a conductive path", x, y)
			}
			if !powered && reach[[2]int{x, y}] {
				t.Fatalf("cell (%d,%d) connected but unpowered", x, y)
			}
		}
	}

	if c.powerGrid.Get(55, 55) != 0 {
		t.Fatal("isolated wire reported powered")
	}
}

func TestZonePowerFlag(t *testing.T) {
	c := newTestCity(42)
	flatten(c, 0, 0, 40, 40)
	c.DoTool(ToolCoalPlant, 10, 10)
	c.DoTool(ToolResidential, 16, 11)
	// Wire bridge from the plant edge to the zone edge.
	c.DoTool(ToolWire, 14, 11)

	c.powerScan()
	if !c.setZonePower(16, 11) {
		t.Fatal("zone adjacent to wired plant not powered")
	}
	if c.tiles.Get(16, 11)&PowerBit == 0 {
		t.Fatal("power bit not stamped on the center cell")
	}

	// Cut the wire: the next scan must take the power away again.
	c.DoTool(ToolBulldozer, 14, 11)
	c.powerScan()
	if c.setZonePower(16, 11) {
		t.Fatal("zone stayed powered after the wire was cut")
	}
	if c.tiles.Get(16, 11)&PowerBit != 0 {
		t.Fatal("power bit not cleared")
	}
}
