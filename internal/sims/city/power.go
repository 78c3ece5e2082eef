package city

// powerScan rebuilds the power grid from scratch: every plant center seeds
// a flood-fill that spreads through conductive cells. The stack is bounded;
// a push that would overflow is dropped, which can underserve an isolated
// sub-grid but never panics.
func (c *City) powerScan() {
	c.powerGrid.Clear()
	c.powerStack = c.powerStack[:0]

	for x := 0; x < c.w; x++ {
		for y := 0; y < c.h; y++ {
			t := TileChar(c.tiles.Get(x, y))
			if t == CoalPlant || t == Nuclear {
				c.pushPower(x, y)
			}
		}
	}

	for len(c.powerStack) > 0 {
		idx := c.powerStack[len(c.powerStack)-1]
		c.powerStack = c.powerStack[:len(c.powerStack)-1]
		x, y := idx/c.h, idx%c.h
		c.powerGrid.Set(x, y, 1)
		c.spreadPower(x, y-1)
		c.spreadPower(x+1, y)
		c.spreadPower(x, y+1)
		c.spreadPower(x-1, y)
	}
}

func (c *City) pushPower(x, y int) {
	if len(c.powerStack) >= powerStackCap {
		return
	}
	c.powerStack = append(c.powerStack, x*c.h+y)
}

func (c *City) spreadPower(x, y int) {
	if !c.tiles.InBounds(x, y) {
		return
	}
	if c.powerGrid.Get(x, y) != 0 {
		return
	}
	if !isConductive(c.tiles.Get(x, y)) {
		return
	}
	c.pushPower(x, y)
}

// setZonePower copies the freshly scanned grid value into the zone center's
// powered flag and reports it.
func (c *City) setZonePower(x, y int) bool {
	cell := c.tiles.Get(x, y)
	powered := c.powerGrid.Get(x, y) != 0
	if powered {
		c.tiles.Set(x, y, cell|PowerBit)
	} else {
		c.tiles.Set(x, y, cell&^PowerBit)
	}
	return powered
}
