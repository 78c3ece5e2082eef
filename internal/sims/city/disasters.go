package city

// doDisasterRoll gives the random disaster generator one chance per
// rotation of the scheduler's last phase.
func (c *City) doDisasterRoll() {
	if !c.cfg.DisastersEnabled {
		return
	}
	if c.rng.Range(8000) != 0 {
		return
	}
	switch c.rng.Range(7) {
	case 0, 1:
		c.SetFire()
	case 2, 3:
		c.MakeFlood()
	case 4:
		c.MakeTornado()
	case 5:
		c.MakeEarthquake()
	default:
		c.MakeMonster()
	}
}

// SetFire picks one random cell and sets it ablaze if it is burnable;
// otherwise nothing happens.
func (c *City) SetFire() {
	x := c.rng.Range(c.w - 1)
	y := c.rng.Range(c.h - 1)
	if !isBurnable(c.tiles.Get(x, y)) {
		return
	}
	c.ignite(x, y)
	c.sendMessageAt(MsgFireReported, x, y, true)
}

// MakeFlood finds a shoreline and spills water over the surrounding
// bulldozable land, then lets doFlood carry it for a while.
func (c *City) MakeFlood() {
	for attempt := 0; attempt < 300; attempt++ {
		x := c.rng.Range(c.w - 1)
		y := c.rng.Range(c.h - 1)
		if !isWater(c.tiles.Get(x, y)) {
			continue
		}
		flooded := false
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				cell := c.tiles.Get(x+dx, y+dy)
				if isBulldozable(cell) {
					c.tiles.Set(x+dx, y+dy, Flood+Cell(c.rng.Range(2))|BullBit)
					flooded = true
				}
			}
		}
		if flooded {
			c.floodCount = c.cfg.Params.FloodDuration
			c.mapSerial++
			c.sendMessageAt(MsgFloodReported, x, y, true)
			return
		}
	}
}

// MakeEarthquake shakes several hundred random cells into rubble or fire.
func (c *City) MakeEarthquake() {
	hits := 300 + c.rng.Range(700)
	var ex, ey int
	for i := 0; i < hits; i++ {
		x := c.rng.Range(c.w - 1)
		y := c.rng.Range(c.h - 1)
		cell := c.tiles.Get(x, y)
		if !isBulldozable(cell) {
			continue
		}
		if c.rng.Range(2) != 0 {
			c.tiles.Set(x, y, Rubble+Cell(c.rng.Range(3))|BullBit)
		} else if isBurnable(cell) {
			c.ignite(x, y)
		}
		ex, ey = x, y
	}
	c.mapSerial++
	c.sendMessageAt(MsgEarthquakeReported, ex, ey, true)
}

// MakeMeltdown melts the first nuclear plant on the map.
func (c *City) MakeMeltdown() {
	for x := 0; x < c.w; x++ {
		for y := 0; y < c.h; y++ {
			if TileChar(c.tiles.Get(x, y)) == Nuclear {
				c.makeMeltdown(x, y)
				return
			}
		}
	}
}

// makeMeltdown torches the plant footprint and salts the surroundings
// with radiation.
func (c *City) makeMeltdown(x, y int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			cell := c.tiles.Get(x+dx, y+dy)
			if isBurnable(cell) || TileChar(cell) == Dirt {
				c.ignite(x+dx, y+dy)
			}
		}
	}
	for dy := -3; dy <= 3; dy++ {
		for dx := -3; dx <= 3; dx++ {
			if c.rng.Range(4) == 0 && c.tiles.InBounds(x+dx, y+dy) {
				c.tiles.Set(x+dx, y+dy, RadTile)
			}
		}
	}
	c.makeSprite(SpriteExplosion, x, y)
	c.mapSerial++
	c.sendMessageAt(MsgMeltdownReported, x, y, true)
}

// MakeTornado spawns a tornado with a random touch-down and path.
func (c *City) MakeTornado() {
	x := c.rng.Range(c.w - 1)
	y := c.rng.Range(c.h - 1)
	c.makeSprite(SpriteTornado, x, y)
	c.sendMessageAt(MsgTornadoReported, x, y, true)
}

// MakeMonster drops the monster at the map edge, bound for the most
// polluted district.
func (c *City) MakeMonster() {
	x, y := 0, c.rng.Range(c.h-1)
	c.makeSprite(SpriteMonster, x, y)
	c.sendMessageAt(MsgMonsterReported, x, y, true)
}

// MakeExplosion blows up a 3x3 neighborhood and leaves a short-lived
// sprite behind.
func (c *City) MakeExplosion(x, y int) {
	c.makeSprite(SpriteExplosion, x, y)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			cell := c.tiles.Get(x+dx, y+dy)
			if isBulldozable(cell) {
				c.tiles.Set(x+dx, y+dy, Rubble+Cell(c.rng.Range(3))|BullBit)
			}
		}
	}
	c.mapSerial++
	c.sendMessageAt(MsgExplosionReported, x, y, true)
}
