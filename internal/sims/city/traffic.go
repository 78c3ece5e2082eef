package city

// makeTraffic is the stochastic road probe: a zone generates demand only
// when a road borders its footprint. Returns -1 with no road access,
// otherwise a small random congestion figure. Real routing is a future
// extension; see maxTrafficDistance below.
const maxTrafficDistance = 30 // reserved for BFS routing

func (c *City) makeTraffic(x, y int) int {
	rx, ry, ok := c.findPerimeterRoad(x, y)
	if !ok {
		return -1
	}
	d := int(c.trafficDensity.WorldGet(rx, ry)) + 120
	if d > 255 {
		d = 255
	}
	c.trafficDensity.WorldSet(rx, ry, uint8(d))
	return c.rng.Range(9)
}

// findPerimeterRoad probes the twelve cells bordering a 3x3 footprint
// centered at (x, y).
func (c *City) findPerimeterRoad(x, y int) (int, int, bool) {
	for d := -1; d <= 1; d++ {
		probes := [4][2]int{
			{x + d, y - 2},
			{x + 2, y + d},
			{x + d, y + 2},
			{x - 2, y + d},
		}
		for _, p := range probes {
			if isRoad(c.tiles.Get(p[0], p[1])) {
				return p[0], p[1], true
			}
		}
	}
	return 0, 0, false
}

// decTrafficMap bleeds congestion off every cell and refreshes the traffic
// average the evaluator reads.
func (c *City) decTrafficMap() {
	cells := c.trafficDensity.Cells()
	total, count := 0, 0
	for i, v := range cells {
		if v > 34 {
			cells[i] = v - 34
		} else if v > 0 {
			cells[i] = 0
		}
		if cells[i] > 0 {
			total += int(cells[i])
			count++
		}
	}
	if count > 0 {
		c.trafficAverage = total / count
	} else {
		c.trafficAverage = 0
	}
}
