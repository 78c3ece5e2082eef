package city

import "microcity/internal/core"

// smooth2 applies the (4*center + N+E+S+W)/8 kernel across a block-2
// overlay. Off-grid neighbors read as zero, which pulls the borders down.
func smooth2(src, dst *core.Overlay[uint8]) {
	for x := 0; x < src.OW; x++ {
		for y := 0; y < src.OH; y++ {
			v := 4 * int(src.Get(x, y))
			v += int(src.Get(x, y-1))
			v += int(src.Get(x+1, y))
			v += int(src.Get(x, y+1))
			v += int(src.Get(x-1, y))
			dst.Set(x, y, uint8(v/8))
		}
	}
}

// smooth8 is the same kernel on a block-8 overlay.
func smooth8(src, dst *core.Overlay[int16]) {
	for x := 0; x < src.OW; x++ {
		for y := 0; y < src.OH; y++ {
			v := 4 * int(src.Get(x, y))
			v += int(src.Get(x, y-1))
			v += int(src.Get(x+1, y))
			v += int(src.Get(x, y+1))
			v += int(src.Get(x-1, y))
			dst.Set(x, y, int16(v/8))
		}
	}
}

// pollutionValue scores the emissions of a single tile.
func pollutionValue(t Cell) int {
	switch {
	case t >= FireBase && t <= LastFire:
		return 100
	case t >= CoalBase && t <= LastCoal:
		return 100
	case t >= IndBase && t <= LastInd:
		return 50
	case t >= AirportBase && t <= LastAirport:
		return 50
	case t >= PortBase && t <= LastPort:
		return 30
	default:
		return 0
	}
}

// pollutionTerrainLandValueScan rebuilds three overlays in one pass:
// pollution from emitters plus traffic, terrain density from trees and
// water, and land value from centrality, terrain and nuisance fields.
func (c *City) pollutionTerrainLandValueScan() {
	c.temp1.Clear()
	c.terrainDensity.Clear()

	for x := 0; x < c.w; x++ {
		for y := 0; y < c.h; y++ {
			t := TileChar(c.tiles.Get(x, y))
			if p := pollutionValue(t); p > 0 {
				v := int(c.temp1.WorldGet(x, y)) + p
				if v > 255 {
					v = 255
				}
				c.temp1.WorldSet(x, y, uint8(v))
			}
			switch {
			case t >= WoodsLow && t <= WoodsHigh:
				v := int(c.terrainDensity.WorldGet(x, y)) + 15
				if v > 255 {
					v = 255
				}
				c.terrainDensity.WorldSet(x, y, uint8(v))
			case t >= WaterLow && t <= WaterHigh:
				v := int(c.terrainDensity.WorldGet(x, y)) + 10
				if v > 255 {
					v = 255
				}
				c.terrainDensity.WorldSet(x, y, uint8(v))
			}
		}
	}

	// Traffic feeds pollution at overlay resolution.
	traffic := c.trafficDensity.Cells()
	scratch := c.temp1.Cells()
	for i := range scratch {
		v := int(scratch[i]) + int(traffic[i])
		if v > 255 {
			v = 255
		}
		scratch[i] = uint8(v)
	}

	smooth2(c.temp1, c.temp2)
	smooth2(c.temp2, c.pollutionDensity)

	total, count := 0, 0
	max := -1
	for x := 0; x < c.pollutionDensity.OW; x++ {
		for y := 0; y < c.pollutionDensity.OH; y++ {
			v := int(c.pollutionDensity.Get(x, y))
			total += v
			count++
			if v > max {
				max = v
				c.pollutionMaxX, c.pollutionMaxY = x*2+1, y*2+1
			}
		}
	}
	if count > 0 {
		c.pollutionAverage = total / count
	}

	c.landValueScan()
}

// landValueScan scores each block-2 cell from its distance to the map
// center, the surrounding terrain, and the pollution and crime fields.
func (c *City) landValueScan() {
	cx, cy := c.w/2, c.h/2
	total, count := 0, 0
	for x := 0; x < c.landValueMap.OW; x++ {
		for y := 0; y < c.landValueMap.OH; y++ {
			wx, wy := x*2+1, y*2+1
			dist := abs(cx-wx) + abs(cy-wy)
			v := 150 - dist/2
			v -= int(c.pollutionDensity.Get(x, y))
			v -= int(c.crimeRateMap.Get(x, y)) / 2
			v += int(c.terrainDensity.WorldGet(wx, wy)) * 2
			if v < 0 {
				v = 0
			}
			if v > 255 {
				v = 255
			}
			c.landValueMap.Set(x, y, uint8(v))
			if v > 0 {
				total += v
				count++
			}
		}
	}
	if count > 0 {
		c.landValueAverage = total / count
	} else {
		c.landValueAverage = 0
	}
}

// crimeScan derives crime pressure from crowding, low land value and the
// police reach map.
func (c *City) crimeScan() {
	total, count := 0, 0
	max := -1
	for x := 0; x < c.crimeRateMap.OW; x++ {
		for y := 0; y < c.crimeRateMap.OH; y++ {
			pop := int(c.popDensity.Get(x, y))
			if pop == 0 {
				c.temp1.Set(x, y, 0)
				continue
			}
			v := pop - int(c.landValueMap.Get(x, y))/4
			if v < 0 {
				v = 0
			}
			police := int(c.policeEffectMap.WorldGet(x*2, y*2))
			if police > 127 {
				police = 127
			}
			v = v * (128 - police) / 128
			if v > 255 {
				v = 255
			}
			c.temp1.Set(x, y, uint8(v))
		}
	}
	smooth2(c.temp1, c.crimeRateMap)
	for x := 0; x < c.crimeRateMap.OW; x++ {
		for y := 0; y < c.crimeRateMap.OH; y++ {
			v := int(c.crimeRateMap.Get(x, y))
			total += v
			count++
			if v > max {
				max = v
				c.crimeMaxX, c.crimeMaxY = x*2+1, y*2+1
			}
		}
	}
	if count > 0 {
		c.crimeAverage = total / count
	}
}

// popDensityScan projects zone populations onto the block-2 grid and
// smooths them into the published density field.
func (c *City) popDensityScan() {
	c.temp1.Clear()
	for x := 0; x < c.w; x++ {
		for y := 0; y < c.h; y++ {
			cell := c.tiles.Get(x, y)
			if !isZoneCenter(cell) {
				continue
			}
			t := TileChar(cell)
			pop := 0
			switch {
			case isResZone(cell):
				pop = c.resZonePop(t)
			case isComZone(cell):
				pop = comZonePop(t) * 8
			case isIndZone(cell):
				pop = indZonePop(t) * 8
			}
			v := int(c.temp1.WorldGet(x, y)) + pop
			if v > 255 {
				v = 255
			}
			c.temp1.WorldSet(x, y, uint8(v))
		}
	}
	smooth2(c.temp1, c.temp2)
	smooth2(c.temp2, c.temp1)
	smooth2(c.temp1, c.popDensity)
}

// incRateOfGrowth nudges the signed growth field; each unit of direction
// is worth four points, clamped to [-200, 200].
func (c *City) incRateOfGrowth(x, y, direction int) {
	v := int(c.rateOfGrowth.WorldGet(x, y)) + direction*4
	if v > 200 {
		v = 200
	}
	if v < -200 {
		v = -200
	}
	c.rateOfGrowth.WorldSet(x, y, int16(v))
}

// decRateOfGrowth decays every growth cell one step toward zero.
func (c *City) decRateOfGrowth() {
	cells := c.rateOfGrowth.Cells()
	for i, v := range cells {
		if v > 0 {
			cells[i] = v - 1
		} else if v < 0 {
			cells[i] = v + 1
		}
	}
}

// fireAnalysis smooths the per-cycle station writes into the reach field.
func (c *City) fireAnalysis() {
	smooth8(c.fireStationMap, c.temp8)
	smooth8(c.temp8, c.fireStationMap)
	smooth8(c.fireStationMap, c.fireStEffectMap)
}

func (c *City) policeAnalysis() {
	smooth8(c.policeStationMap, c.temp8)
	smooth8(c.temp8, c.policeStationMap)
	smooth8(c.policeStationMap, c.policeEffectMap)
}

// computeComRateMap scores commercial desirability by distance from the
// city center.
func (c *City) computeComRateMap() {
	cx, cy := c.w/2, c.h/2
	for x := 0; x < c.comRateMap.OW; x++ {
		for y := 0; y < c.comRateMap.OH; y++ {
			wx, wy := x*8+4, y*8+4
			v := 64 - (abs(cx-wx)+abs(cy-wy))/4
			if v < 0 {
				v = 0
			}
			c.comRateMap.Set(x, y, int16(v))
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
