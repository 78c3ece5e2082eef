package city

// doZone runs the per-tick processor for a zone-center cell.
func (c *City) doZone(x, y int, cell Cell) {
	powered := c.setZonePower(x, y)
	if powered {
		c.scan.poweredZones++
	} else {
		c.scan.unpoweredZones++
	}

	t := TileChar(cell)
	switch {
	case isResZone(cell):
		c.doResidential(x, y, t, powered)
	case isComZone(cell):
		c.doCommercial(x, y, t, powered)
	case isIndZone(cell):
		c.doIndustrial(x, y, t, powered)
	default:
		c.doSpecialZone(x, y, t, powered)
	}
}

// resZonePop maps a residential center tile to its population.
func (c *City) resZonePop(t Cell) int {
	switch {
	case t == FreeZ:
		return 0
	case t < House:
		return c.rng.Range(8)
	case t < RZB:
		return int(t-House) * 2
	default:
		return int(t-RZB)/9*8 + 16
	}
}

func comZonePop(t Cell) int {
	if t == ComClr {
		return 0
	}
	return int(t-CZB)/9 + 1
}

func indZonePop(t Cell) int {
	if t == IndClr {
		return 0
	}
	return int(t-IZB)/9 + 1
}

func (c *City) doResidential(x, y int, t Cell, powered bool) {
	pop := c.resZonePop(t)
	c.scan.resZPop += pop

	if c.cityTime&15 == 0 {
		c.repairZone(x, y, FreeZ, 3)
	}

	traffic := c.makeTraffic(x, y)
	if traffic < 0 {
		c.doResOut(x, y, pop)
		return
	}

	value := int(c.landValueMap.WorldGet(x, y)) - int(c.pollutionDensity.WorldGet(x, y))
	if int(c.crimeRateMap.WorldGet(x, y)) > 190 {
		value -= 50
	}
	value += c.resValve / 16
	value -= traffic
	if !powered {
		value = -500
	}

	if value > 0 {
		c.doResIn(x, y, pop)
	} else if value < 0 {
		c.doResOut(x, y, pop)
	}
}

// resDensityFromTile recovers the density tier a residential center was
// plopped at.
func resDensityFromTile(t Cell) int {
	switch {
	case t <= FreeZ:
		return 0
	case t < RZB:
		d := int(t) - int(House) + 1
		if d < 1 {
			d = 1
		}
		if d > 3 {
			d = 3
		}
		return d
	default:
		return int(t-RZB) + 1 + 3
	}
}

func (c *City) doResIn(x, y, pop int) {
	if pop < 40 {
		d := resDensityFromTile(TileChar(c.tiles.Get(x, y)))
		next := c.rng.Range(8) + 1
		if d+1 < next {
			next = d + 1
		}
		if next > d {
			c.resPlop(x, y, next)
		}
	}
	c.incRateOfGrowth(x, y, 1)
}

func (c *City) doResOut(x, y, pop int) {
	d := resDensityFromTile(TileChar(c.tiles.Get(x, y)))
	if d > 0 {
		c.resPlop(x, y, d-1)
	}
	c.incRateOfGrowth(x, y, -1)
}

// resPlop rewrites the zone footprint for the given density tier.
func (c *City) resPlop(x, y, density int) {
	switch {
	case density <= 0:
		c.zonePlop(x, y, FreeZ)
	case density <= 3:
		c.zonePlop(x, y, House+Cell(density-1))
	default:
		if density > 16 {
			density = 16
		}
		c.zonePlop(x, y, RZB-1+Cell(density-3))
	}
}

func (c *City) doCommercial(x, y int, t Cell, powered bool) {
	pop := comZonePop(t)
	c.scan.comZPop += pop

	if c.cityTime&7 == 0 {
		c.repairZone(x, y, ComClr, 3)
	}

	traffic := c.makeTraffic(x, y)
	if traffic < 0 {
		c.doComOut(x, y, pop)
		return
	}

	value := int(c.comRateMap.WorldGet(x, y))
	value += int(c.landValueMap.WorldGet(x, y)) - int(c.pollutionDensity.WorldGet(x, y))
	value += c.comValve / 16
	value -= traffic
	if !powered {
		value = -500
	}

	if value > 0 {
		c.doComIn(x, y, pop)
	} else if value < 0 {
		c.doComOut(x, y, pop)
	}
}

func (c *City) doComIn(x, y, pop int) {
	if pop < 5 {
		c.comPlop(x, y, pop+1)
	}
	c.incRateOfGrowth(x, y, 1)
}

func (c *City) doComOut(x, y, pop int) {
	if pop > 0 {
		c.comPlop(x, y, pop-1)
	}
	c.incRateOfGrowth(x, y, -1)
}

func (c *City) comPlop(x, y, density int) {
	if density <= 0 {
		c.zonePlop(x, y, ComClr)
		return
	}
	c.zonePlop(x, y, CZB-1+Cell(9*density))
}

func (c *City) doIndustrial(x, y int, t Cell, powered bool) {
	pop := indZonePop(t)
	c.scan.indZPop += pop

	if c.cityTime&7 == 0 {
		c.repairZone(x, y, IndClr, 3)
	}

	traffic := c.makeTraffic(x, y)
	if traffic < 0 {
		c.doIndOut(x, y, pop)
		return
	}

	value := c.indValve/16 - traffic
	if !powered {
		value = -500
	}

	if value > 0 {
		c.doIndIn(x, y, pop)
	} else if value < 0 {
		c.doIndOut(x, y, pop)
	}
}

func (c *City) doIndIn(x, y, pop int) {
	if pop < 4 {
		c.indPlop(x, y, pop+1)
	}
	c.incRateOfGrowth(x, y, 1)
}

func (c *City) doIndOut(x, y, pop int) {
	if pop > 0 {
		c.indPlop(x, y, pop-1)
	}
	c.incRateOfGrowth(x, y, -1)
}

func (c *City) indPlop(x, y, density int) {
	if density <= 0 {
		c.zonePlop(x, y, IndClr)
		return
	}
	c.zonePlop(x, y, IZB-1+Cell(9*density))
}

// doSpecialZone handles the fixed-footprint buildings.
func (c *City) doSpecialZone(x, y int, t Cell, powered bool) {
	switch t {
	case Hospital:
		c.scan.hospPop++
		if c.cityTime&15 == 0 {
			c.repairZone(x, y, Hospital, 3)
		}
	case Church:
		c.scan.churchPop++
		if c.cityTime&15 == 0 {
			c.repairZone(x, y, Church, 3)
		}
	case FireStation:
		c.scan.fireStPop++
		if c.cityTime&7 == 0 {
			c.repairZone(x, y, FireStation, 3)
		}
		effect := int16(c.fireEffect)
		if !powered {
			effect /= 2
		}
		c.fireStationMap.WorldSet(x, y, c.fireStationMap.WorldGet(x, y)+effect)
	case PoliceStation:
		c.scan.policeStPop++
		if c.cityTime&7 == 0 {
			c.repairZone(x, y, PoliceStation, 3)
		}
		effect := int16(c.policeEffect)
		if !powered {
			effect /= 2
		}
		c.policeStationMap.WorldSet(x, y, c.policeStationMap.WorldGet(x, y)+effect)
	case Stadium, FullStadium:
		c.scan.stadiumPop++
		if c.cityTime&15 == 0 {
			c.repairZone(x, y, Stadium, 4)
		}
	case Port:
		c.scan.portPop++
		if c.cityTime&15 == 0 {
			c.repairZone(x, y, Port, 4)
		}
		if powered && c.rng.Range(15) == 0 && !c.hasSprite(SpriteShip) {
			c.makeSprite(SpriteShip, x, y)
		}
	case Airport:
		c.scan.airportPop++
		if c.cityTime&7 == 0 {
			c.repairZone(x, y, Airport, 6)
		}
		if powered && c.rng.Range(5) == 0 && !c.hasSprite(SpriteAirplane) {
			c.makeSprite(SpriteAirplane, x, y)
		}
		if powered && c.rng.Range(12) == 0 && !c.hasSprite(SpriteHelicopter) {
			c.makeSprite(SpriteHelicopter, x, y)
		}
	case CoalPlant:
		c.scan.coalPop++
		if c.cityTime&15 == 0 {
			c.repairZone(x, y, CoalPlant, 4)
		}
	case Nuclear:
		c.scan.nuclearPop++
		if c.cityTime&15 == 0 {
			c.repairZone(x, y, Nuclear, 4)
		}
		if c.cfg.DisastersEnabled && c.rng.Range(10000) == 0 {
			c.makeMeltdown(x, y)
		}
	}
}

// zonePlop writes a full 3x3 footprint from its center tile. Edge cells
// conduct power so a zone joins the grid it touches.
func (c *City) zonePlop(x, y int, base Cell) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			tile := base - 4 + Cell((dy+1)*3+(dx+1))
			if dx == 0 && dy == 0 {
				c.tiles.Set(x, y, base|ZoneBit|BLBNCN)
			} else {
				c.tiles.Set(x+dx, y+dy, tile|BLBNCN)
			}
		}
	}
	c.mapSerial++
}

// repairZone regrows rubble inside a footprint back into the building
// skeleton. The center cell is left alone.
func (c *City) repairZone(x, y int, base Cell, size int) {
	offset := Cell(size + 1)
	for dy := 0; dy < size; dy++ {
		for dx := 0; dx < size; dx++ {
			wx, wy := x-1+dx, y-1+dy
			if wx == x && wy == y {
				continue
			}
			cell := c.tiles.Get(wx, wy)
			if isRubble(cell) {
				tile := base - offset + Cell(dy*size+dx)
				c.tiles.Set(wx, wy, tile|BLBNCN)
			}
		}
	}
}
