package city

import (
	"slices"
	"testing"
)

func newTestCity(seed uint64) *City {
	cfg := DefaultConfig()
	cfg.Seed = seed
	// Random disasters off so long runs stay predictable; the disaster
	// paths have their own tests.
	cfg.DisastersEnabled = false
	return NewWithConfig(cfg)
}

// flatten levels a rectangle to dirt so tool placements are deterministic
// regardless of the generated terrain.
func flatten(c *City, x, y, w, h int) {
	c.tiles.Fill(x, y, w, h, Dirt)
}

func TestNewGameDeterministic(t *testing.T) {
	a := newTestCity(42)
	b := newTestCity(42)

	if !slices.Equal(a.tiles.Cells(), b.tiles.Cells()) {
		t.Fatal("same seed produced different terrain")
	}

	for i := 0; i < 1500; i++ {
		a.SimFrame()
		b.SimFrame()
	}

	if !slices.Equal(a.tiles.Cells(), b.tiles.Cells()) {
		t.Fatal("same seed diverged after 1500 frames")
	}
	if a.TotalFunds() != b.TotalFunds() {
		t.Fatalf("funds diverged: %d vs %d", a.TotalFunds(), b.TotalFunds())
	}
	if a.CityTime() != b.CityTime() {
		t.Fatalf("city time diverged: %d vs %d", a.CityTime(), b.CityTime())
	}

	c := newTestCity(43)
	if slices.Equal(a.tiles.Cells(), c.tiles.Cells()) {
		t.Fatal("different seeds produced identical terrain")
	}
}

func TestNewGameRebuildsFromScratch(t *testing.T) {
	c := newTestCity(7)
	before := append([]uint16(nil), c.tiles.Cells()...)

	flatten(c, 0, 0, 40, 40)
	c.DoTool(ToolRoad, 5, 5)
	for i := 0; i < 100; i++ {
		c.SimFrame()
	}

	c.NewGame(7)
	if !slices.Equal(before, c.tiles.Cells()) {
		t.Fatal("NewGame with the original seed did not reproduce the terrain")
	}
	if c.TotalFunds() != LevelEasy.StartingFunds() {
		t.Fatalf("funds not reset: %d", c.TotalFunds())
	}
	if c.CityTime() != 0 {
		t.Fatalf("city time not reset: %d", c.CityTime())
	}
}

func TestTileCharactersStayInRange(t *testing.T) {
	c := newTestCity(42)
	flatten(c, 0, 0, 40, 40)
	c.DoTool(ToolCoalPlant, 10, 10)
	c.DoTool(ToolWire, 14, 10)
	c.DoTool(ToolRoad, 14, 12)
	c.DoTool(ToolResidential, 20, 20)
	c.DoTool(ToolCommercial, 24, 20)
	c.DoTool(ToolIndustrial, 28, 20)

	for i := 0; i < 3000; i++ {
		c.SimFrame()
	}

	for _, cell := range c.tiles.Cells() {
		if TileChar(cell) >= TileCount {
			t.Fatalf("tile character %d out of range", TileChar(cell))
		}
	}
}

func TestZoneCentersCarryZoneTiles(t *testing.T) {
	c := newTestCity(42)
	flatten(c, 0, 0, 60, 60)
	c.DoTool(ToolCoalPlant, 10, 10)
	c.DoTool(ToolResidential, 20, 20)
	c.DoTool(ToolCommercial, 24, 20)
	c.DoTool(ToolIndustrial, 28, 20)
	c.DoTool(ToolFireStation, 32, 20)
	c.DoTool(ToolPoliceStation, 36, 20)
	c.DoTool(ToolStadium, 40, 20)
	c.DoTool(ToolAirport, 46, 20)

	for i := 0; i < 2000; i++ {
		c.SimFrame()
	}

	for x := 0; x < c.w; x++ {
		for y := 0; y < c.h; y++ {
			cell := c.tiles.Get(x, y)
			if !isZoneCenter(cell) {
				continue
			}
			t2 := TileChar(cell)
			ok := isResZone(cell) || isComZone(cell) || isIndZone(cell) ||
				t2 == Hospital || t2 == Church ||
				(t2 >= PortBase && t2 <= LastZone)
			if !ok {
				t.Fatalf("zone center at (%d,%d) has non-zone tile %d", x, y, t2)
			}
		}
	}
}

func TestZonePlopInvariant(t *testing.T) {
	c := newTestCity(1)
	flatten(c, 0, 0, 30, 30)
	if res := c.DoTool(ToolResidential, 10, 10); res != ToolOK {
		t.Fatalf("residential placement: %v", res)
	}

	centers := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			cell := c.tiles.Get(10+dx, 10+dy)
			if isZoneCenter(cell) {
				centers++
				continue
			}
			if !isBulldozable(cell) {
				t.Fatalf("zone edge (%d,%d) not bulldozable", 10+dx, 10+dy)
			}
		}
	}
	if centers != 1 {
		t.Fatalf("zone has %d centers, want exactly 1", centers)
	}
}

func TestScoreAndTaxClamped(t *testing.T) {
	c := newTestCity(5)
	c.SetCityTax(99)
	if c.CityTax() != 20 {
		t.Fatalf("tax clamp failed: %d", c.CityTax())
	}
	c.SetCityTax(-3)
	if c.CityTax() != 0 {
		t.Fatalf("tax clamp failed: %d", c.CityTax())
	}

	for i := 0; i < 2000; i++ {
		c.SimFrame()
		if score := c.CityScore(); score < 0 || score > 1000 {
			t.Fatalf("score %d escaped [0,1000]", score)
		}
	}
}

func TestDateMath(t *testing.T) {
	c := newTestCity(3)
	if c.CityYear() != DefaultStartingYear || c.CityMonth() != 0 {
		t.Fatalf("fresh city at %d/%d", c.CityYear(), c.CityMonth())
	}

	// One city time per phase-0; 16 frames per rotation.
	for i := 0; i < 16*CityTimesPerYear; i++ {
		c.SimFrame()
	}
	if c.CityYear() != DefaultStartingYear+1 {
		t.Fatalf("after 48 city times year = %d", c.CityYear())
	}
}

func TestSpeedThrottle(t *testing.T) {
	c := newTestCity(8)
	c.SetSpeed(SpeedPaused)
	before := c.CityTime()
	for i := 0; i < 100; i++ {
		c.SimFrame()
	}
	if c.CityTime() != before {
		t.Fatal("paused simulation advanced")
	}

	c.SetSpeed(SpeedSlow)
	for i := 0; i < 160; i++ {
		c.SimFrame()
	}
	slowTime := c.CityTime()
	if slowTime == before {
		t.Fatal("slow simulation never advanced")
	}

	d := newTestCity(8)
	d.SetSpeed(SpeedFast)
	for i := 0; i < 160; i++ {
		d.SimFrame()
	}
	if d.CityTime() <= slowTime {
		t.Fatalf("fast (%d) not ahead of slow (%d)", d.CityTime(), slowTime)
	}
}

func TestResidentialWithoutPowerStaysEmpty(t *testing.T) {
	c := newTestCity(42)
	flatten(c, 10, 10, 20, 20)
	if res := c.DoTool(ToolResidential, 20, 20); res != ToolOK {
		t.Fatalf("placement failed: %v", res)
	}

	for i := 0; i < 200; i++ {
		c.SimFrame()
	}

	if got := TileChar(c.tiles.Get(20, 20)); got != FreeZ {
		t.Fatalf("unpowered, roadless zone changed to tile %d", got)
	}
	if c.ResPop() != 0 {
		t.Fatalf("unpowered zone grew population %d", c.ResPop())
	}
}

func TestResidentialWithRoadAndPowerGrows(t *testing.T) {
	c := newTestCity(42)
	flatten(c, 0, 0, 40, 40)

	if res := c.DoTool(ToolCoalPlant, 10, 10); res != ToolOK {
		t.Fatalf("coal plant: %v", res)
	}
	if res := c.DoTool(ToolWire, 14, 10); res != ToolOK {
		t.Fatalf("wire: %v", res)
	}
	for y := 12; y <= 14; y++ {
		if res := c.DoTool(ToolRoad, 14, y); res != ToolOK {
			t.Fatalf("road at (14,%d): %v", y, res)
		}
	}
	if res := c.DoTool(ToolResidential, 14, 14); res != ToolOK {
		t.Fatalf("residential: %v", res)
	}

	maxPop := 0
	for i := 0; i < 2000; i++ {
		c.SimFrame()
		if c.ResPop() > maxPop {
			maxPop = c.ResPop()
		}
	}

	if maxPop < 8 {
		t.Fatalf("powered, road-served zone never grew: max res pop %d", maxPop)
	}
	if got := TileChar(c.tiles.Get(14, 14)); got < House {
		t.Fatalf("zone center still tile %d, want >= %d", got, House)
	}
}

func TestDemandsInUnitRange(t *testing.T) {
	c := newTestCity(11)
	for i := 0; i < 500; i++ {
		c.SimFrame()
		res, com, ind := c.GetDemands()
		for _, v := range []float64{res, com, ind} {
			if v < -1 || v > 1 {
				t.Fatalf("demand %f escaped [-1,1]", v)
			}
		}
	}
}
