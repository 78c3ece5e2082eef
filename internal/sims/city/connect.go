package city

// The 16-entry connection tables map a 4-bit neighbor pattern
// (N=1, E=2, S=4, W=8) onto the canonical variant, expressed as an offset
// from each network's first land variant.
var connectTable = [16]Cell{
	0,  // isolated: horizontal stub
	1,  // N
	0,  // E
	2,  // N+E corner
	1,  // S
	1,  // N+S
	3,  // E+S corner
	6,  // N+E+S tee
	0,  // W
	5,  // N+W corner
	0,  // E+W
	9,  // N+E+W tee
	4,  // S+W corner
	8,  // N+S+W tee
	7,  // E+S+W tee
	10, // four-way
}

// fixZone re-stitches a tile and its four neighbors after an edit.
func (c *City) fixZone(x, y int) {
	c.fixSingle(x, y)
	c.fixSingle(x, y-1)
	c.fixSingle(x+1, y)
	c.fixSingle(x, y+1)
	c.fixSingle(x-1, y)
}

// fixSingle rewrites a road, rail or wire cell to the variant matching its
// actual neighbors. Water crossings are left alone.
func (c *City) fixSingle(x, y int) {
	cell := c.tiles.Get(x, y)
	t := TileChar(cell)
	switch {
	case t >= Roads && t <= Intersection:
		pattern := c.neighborPattern(x, y, isRoad)
		c.tiles.Set(x, y, Roads+connectTable[pattern]|BLBN)
	case t >= Rails && t <= Rails+10:
		pattern := c.neighborPattern(x, y, isRail)
		c.tiles.Set(x, y, Rails+connectTable[pattern]|BLBN)
	case t >= Wires && t <= Wires+10:
		pattern := c.neighborPattern(x, y, isConductive)
		c.tiles.Set(x, y, Wires+connectTable[pattern]|BLBNCN)
	}
}

func (c *City) neighborPattern(x, y int, connects func(Cell) bool) int {
	pattern := 0
	if connects(c.tiles.Get(x, y-1)) {
		pattern |= 1
	}
	if connects(c.tiles.Get(x+1, y)) {
		pattern |= 2
	}
	if connects(c.tiles.Get(x, y+1)) {
		pattern |= 4
	}
	if connects(c.tiles.Get(x-1, y)) {
		pattern |= 8
	}
	return pattern
}
