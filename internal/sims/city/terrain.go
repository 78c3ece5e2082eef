package city

// generateTerrain builds the starting map: rivers walked in from an edge,
// a few lakes, tree clusters, then the water and forest cells are smoothed
// into their edge variants.
func (c *City) generateTerrain() {
	for i := range c.tiles.Cells() {
		c.tiles.Cells()[i] = Dirt
	}
	for i := 0; i < c.cfg.Params.RiverCount; i++ {
		c.makeRiver()
	}
	for i := 0; i < c.cfg.Params.LakeCount; i++ {
		c.makeLake()
	}
	c.makeForests()
	c.smoothWater()
	c.smoothTrees()
}

var riverDx = [4]int{0, 1, 0, -1}
var riverDy = [4]int{-1, 0, 1, 0}

// makeRiver walks a wide brush from a random edge across the map, biased to
// keep its heading so the channel meanders instead of scribbling.
func (c *City) makeRiver() {
	var x, y, dir int
	switch c.rng.Range(3) {
	case 0: // north edge, heading south
		x, y, dir = c.rng.Range(c.w-1), 0, 2
	case 1: // east edge, heading west
		x, y, dir = c.w-1, c.rng.Range(c.h-1), 3
	case 2: // south edge, heading north
		x, y, dir = c.rng.Range(c.w-1), c.h-1, 0
	default: // west edge, heading east
		x, y, dir = 0, c.rng.Range(c.h-1), 1
	}
	for steps := 0; steps < c.w+c.h; steps++ {
		c.stampWater(x, y, 1)
		if c.rng.Range(9) < 2 {
			turn := 1
			if c.rng.Range(1) == 0 {
				turn = 3
			}
			dir = (dir + turn) & 3
		}
		x += riverDx[dir]
		y += riverDy[dir]
		if x < -1 || x > c.w || y < -1 || y > c.h {
			return
		}
	}
}

func (c *City) makeLake() {
	cx := 8 + c.rng.Range(c.w-17)
	cy := 8 + c.rng.Range(c.h-17)
	blobs := 2 + c.rng.Range(4)
	for i := 0; i < blobs; i++ {
		x := cx + c.rng.Range(8) - 4
		y := cy + c.rng.Range(8) - 4
		c.stampWater(x, y, 1+c.rng.Range(1))
	}
}

// stampWater floods a (2r+1) square of open water around (x, y).
func (c *City) stampWater(x, y, r int) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			c.tiles.Set(x+dx, y+dy, River)
		}
	}
}

func (c *City) makeForests() {
	for i := 0; i < c.cfg.Params.TreeCount; i++ {
		x := c.rng.Range(c.w - 1)
		y := c.rng.Range(c.h - 1)
		c.plantTreeCluster(x, y)
	}
}

func (c *City) plantTreeCluster(x, y int) {
	count := 20 + c.rng.Range(80)
	for i := 0; i < count; i++ {
		if c.tiles.InBounds(x, y) && TileChar(c.tiles.Get(x, y)) == Dirt {
			c.tiles.Set(x, y, WoodsHigh|BLBN)
		}
		dir := c.rng.Range(3)
		x += riverDx[dir]
		y += riverDy[dir]
	}
}

// smoothWater rewrites shoreline water into the 15 edge variants indexed by
// the nonzero 4-bit land-neighbor pattern. Open water keeps the plain river
// tile.
func (c *City) smoothWater() {
	for x := 0; x < c.w; x++ {
		for y := 0; y < c.h; y++ {
			if !isWater(c.tiles.Get(x, y)) {
				continue
			}
			pattern := Cell(0)
			if c.tiles.InBounds(x, y-1) && !isWater(c.tiles.Get(x, y-1)) {
				pattern |= 1
			}
			if c.tiles.InBounds(x+1, y) && !isWater(c.tiles.Get(x+1, y)) {
				pattern |= 2
			}
			if c.tiles.InBounds(x, y+1) && !isWater(c.tiles.Get(x, y+1)) {
				pattern |= 4
			}
			if c.tiles.InBounds(x-1, y) && !isWater(c.tiles.Get(x-1, y)) {
				pattern |= 8
			}
			if pattern == 0 {
				c.tiles.Set(x, y, River)
			} else {
				c.tiles.Set(x, y, RiverEdge+pattern-1)
			}
		}
	}
}

// smoothTrees rewrites forest cells into edge variants by tree-neighbor
// pattern; fully enclosed cells become the dense woods bank.
func (c *City) smoothTrees() {
	for x := 0; x < c.w; x++ {
		for y := 0; y < c.h; y++ {
			if !isTree(c.tiles.Get(x, y)) {
				continue
			}
			pattern := Cell(0)
			if isTree(c.tiles.Get(x, y-1)) {
				pattern |= 1
			}
			if isTree(c.tiles.Get(x+1, y)) {
				pattern |= 2
			}
			if isTree(c.tiles.Get(x, y+1)) {
				pattern |= 4
			}
			if isTree(c.tiles.Get(x-1, y)) {
				pattern |= 8
			}
			tile := TreeBase + pattern
			if pattern == 15 {
				tile = 37 + Cell(c.rng.Range(3))
			}
			c.tiles.Set(x, y, tile|BLBN)
		}
	}
}
