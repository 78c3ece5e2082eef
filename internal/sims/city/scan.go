package city

// mapScan classifies and evolves every cell in the vertical slice
// [x1, x2). Eight of these cover the whole map per scheduler rotation.
func (c *City) mapScan(x1, x2 int) {
	for x := x1; x < x2; x++ {
		for y := 0; y < c.h; y++ {
			cell := c.tiles.Get(x, y)
			t := TileChar(cell)
			if t == Dirt {
				continue
			}
			if isZoneCenter(cell) {
				c.doZone(x, y, cell)
				continue
			}
			switch {
			case t >= FireBase && t <= LastFire:
				c.doFire(x, y)
			case t >= Flood && t <= LastFlood:
				c.doFlood(x, y)
			case isRoad(cell):
				c.doRoad(x, y, cell)
			case isRail(cell):
				c.doRail(x, y)
			}
		}
	}
}

var scanDx = [4]int{0, 1, 0, -1}
var scanDy = [4]int{-1, 0, 1, 0}

// doFire spreads to burnable neighbors past the fire station reach, and
// eventually burns out to rubble.
func (c *City) doFire(x, y int) {
	c.scan.firePop++
	if c.rng.Range(3) == 0 {
		dir := c.rng.Range(3)
		nx, ny := x+scanDx[dir], y+scanDy[dir]
		neighbor := c.tiles.Get(nx, ny)
		if isBurnable(neighbor) {
			effect := int(c.fireStEffectMap.WorldGet(nx, ny))
			if effect < 50 || c.rng.Range(100) > effect {
				c.ignite(nx, ny)
			}
		}
	}
	if c.rng.Range(2) == 0 {
		c.tiles.Set(x, y, Rubble+Cell(c.rng.Range(3))|BullBit)
	}
}

func (c *City) ignite(x, y int) {
	if !c.tiles.InBounds(x, y) {
		return
	}
	c.tiles.Set(x, y, FireBase+Cell(c.rng.Rand16()&7)|AnimBit)
	c.mapSerial++
}

// doFlood slowly recedes. While the flood is active it can also creep into
// adjacent bulldozable land.
func (c *City) doFlood(x, y int) {
	if c.floodCount > 0 {
		if c.rng.Range(7) == 0 {
			dir := c.rng.Range(3)
			nx, ny := x+scanDx[dir], y+scanDy[dir]
			neighbor := c.tiles.Get(nx, ny)
			if isBulldozable(neighbor) && !isFlood(neighbor) {
				c.tiles.Set(nx, ny, Flood+Cell(c.rng.Range(2))|BullBit)
			}
		}
		if c.rng.Range(15) == 0 {
			c.tiles.Set(x, y, Dirt)
		}
		return
	}
	c.tiles.Set(x, y, Dirt)
}

// doRoad accounts for upkeep and lets underfunded roads crumble.
func (c *City) doRoad(x, y int, cell Cell) {
	c.scan.roadTotal++
	t := TileChar(cell)
	if t == HBridge || t == VBridge {
		c.scan.roadTotal += 3
	}
	if t >= HTrafficBase {
		c.scan.roadTotal++
	}
	if c.roadEffect < 30 && c.rng.Range(511) == 0 {
		switch {
		case t == HBridge || t == VBridge:
			c.tiles.Set(x, y, River)
		case c.rng.Range(15) == 0:
			c.tiles.Set(x, y, Rubble+Cell(c.rng.Range(3))|BullBit)
		case t > Roads:
			c.tiles.Set(x, y, (t-1)|BLBN)
		}
		c.mapSerial++
	}
}

// doRail counts track and occasionally runs a train over it.
func (c *City) doRail(x, y int) {
	c.scan.railTotal++
	if c.rng.Range(511) == 0 {
		c.makeSprite(SpriteTrain, x, y)
	}
}
