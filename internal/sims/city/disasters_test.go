package city

import "testing"

func TestMeltdown(t *testing.T) {
	c := newTestCity(42)
	flatten(c, 0, 0, 40, 40)
	if res := c.DoTool(ToolNuclearPlant, 10, 10); res != ToolOK {
		t.Fatalf("nuclear plant: %v", res)
	}
	cx, cy := 11, 11 // flagged center of the 4x4 footprint

	c.makeMeltdown(cx, cy)

	fires := 0
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			if isFire(c.tiles.Get(cx+dx, cy+dy)) {
				fires++
			}
		}
	}
	if fires == 0 {
		t.Fatal("meltdown left no fire in the 5x5 core")
	}

	rads := 0
	for dy := -3; dy <= 3; dy++ {
		for dx := -3; dx <= 3; dx++ {
			if TileChar(c.tiles.Get(cx+dx, cy+dy)) == RadTile {
				rads++
			}
		}
	}
	if rads == 0 {
		t.Fatal("meltdown left no radiation in the 7x7 ring")
	}

	if !c.hasSprite(SpriteExplosion) {
		t.Fatal("meltdown spawned no explosion sprite")
	}
}

func TestMakeExplosion(t *testing.T) {
	c := newTestCity(42)
	flatten(c, 0, 0, 30, 30)
	c.DoTool(ToolResidential, 10, 10)

	serial := c.MapSerial()
	c.MakeExplosion(10, 10)

	rubble := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if isRubble(c.tiles.Get(10+dx, 10+dy)) {
				rubble++
			}
		}
	}
	if rubble != 9 {
		t.Fatalf("explosion left %d rubble cells, want 9", rubble)
	}
	if !c.hasSprite(SpriteExplosion) {
		t.Fatal("no explosion sprite")
	}
	if c.MapSerial() <= serial {
		t.Fatal("explosion did not bump the serial")
	}
}

func TestEarthquakeDamagesBulldozableOnly(t *testing.T) {
	c := newTestCity(42)
	waterBefore := countTiles(c, isWater)

	c.MakeEarthquake()

	if countTiles(c, isWater) != waterBefore {
		t.Fatal("earthquake altered water")
	}
	// Forests are bulldozable, so a full quake leaves marks on a fresh map.
	if countTiles(c, isRubble)+countTiles(c, isFire) == 0 {
		t.Fatal("earthquake left no trace")
	}
}

func TestSetFireSparesNonBurnable(t *testing.T) {
	c := newTestCity(42)
	water := countTiles(c, isWater)
	for i := 0; i < 50; i++ {
		c.SetFire()
	}
	if countTiles(c, isWater) != water {
		t.Fatal("fire consumed water tiles")
	}
}

func TestFloodSpreadsAndRecedes(t *testing.T) {
	c := newTestCity(42)
	c.MakeFlood()
	if countTiles(c, isFlood) == 0 {
		t.Skip("no shoreline with floodable land for this seed")
	}
	if c.floodCount == 0 {
		t.Fatal("flood counter not armed")
	}

	// The flood must fully recede once the counter expires.
	for i := 0; i < 16*(c.cfg.Params.FloodDuration+40); i++ {
		c.SimFrame()
	}
	if got := countTiles(c, isFlood); got != 0 {
		t.Fatalf("%d flood tiles never receded", got)
	}
}

func TestTornadoAndMonsterSprites(t *testing.T) {
	c := newTestCity(42)
	c.MakeTornado()
	if !c.hasSprite(SpriteTornado) {
		t.Fatal("no tornado sprite")
	}
	c.MakeMonster()
	if !c.hasSprite(SpriteMonster) {
		t.Fatal("no monster sprite")
	}

	// Sprites expire once their lifetime runs out.
	for i := 0; i < 400; i++ {
		c.moveSprites()
	}
	if len(c.sprites) != 0 {
		t.Fatalf("%d sprites survived their lifetime", len(c.sprites))
	}
}

func countTiles(c *City, pred func(Cell) bool) int {
	n := 0
	for _, cell := range c.tiles.Cells() {
		if pred(cell) {
			n++
		}
	}
	return n
}
