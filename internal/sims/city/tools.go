package city

// Tool selects an editing operation on the map.
type Tool int

const (
	ToolBulldozer Tool = iota
	ToolRoad
	ToolRail
	ToolWire
	ToolPark
	ToolResidential
	ToolCommercial
	ToolIndustrial
	ToolPoliceStation
	ToolFireStation
	ToolStadium
	ToolSeaport
	ToolCoalPlant
	ToolNuclearPlant
	ToolAirport
	ToolQuery
	toolCount
)

// ToolResult reports the outcome of a tool application.
type ToolResult int

const (
	ToolOK ToolResult = iota
	ToolFailed
	ToolNeedBulldoze
	ToolNoMoney
)

// toolCosts is the fixed price list.
var toolCosts = [toolCount]int{
	ToolBulldozer:     1,
	ToolRoad:          10,
	ToolRail:          20,
	ToolWire:          5,
	ToolPark:          10,
	ToolResidential:   100,
	ToolCommercial:    100,
	ToolIndustrial:    100,
	ToolPoliceStation: 500,
	ToolFireStation:   500,
	ToolStadium:       5000,
	ToolSeaport:       3000,
	ToolCoalPlant:     3000,
	ToolNuclearPlant:  5000,
	ToolAirport:       10000,
	ToolQuery:         0,
}

// ToolCost returns the price of a tool.
func ToolCost(t Tool) int {
	if t < 0 || t >= toolCount {
		return 0
	}
	return toolCosts[t]
}

// buildingSpec describes an N*N footprint anchored at the clicked cell,
// with the flagged center one cell in on both axes.
type buildingSpec struct {
	base Cell
	size int
}

var buildings = map[Tool]buildingSpec{
	ToolStadium:      {StadiumBase, 4},
	ToolSeaport:      {PortBase, 4},
	ToolCoalPlant:    {CoalBase, 4},
	ToolNuclearPlant: {NuclearBase, 4},
	ToolAirport:      {AirportBase, 6},
}

// DoTool applies a tool at (x, y). Spending is gated on the treasury
// covering the cost before the operation runs; a successful mutation bumps
// the map serial.
func (c *City) DoTool(tool Tool, x, y int) ToolResult {
	if tool < 0 || tool >= toolCount {
		return ToolFailed
	}
	if !c.tiles.InBounds(x, y) {
		return ToolFailed
	}
	cost := toolCosts[tool]
	if int64(cost) > c.totalFunds {
		return ToolNoMoney
	}

	var res ToolResult
	switch tool {
	case ToolBulldozer:
		res = c.toolBulldoze(x, y)
	case ToolRoad:
		res = c.toolConnect(x, y, Roads, BLBN)
	case ToolRail:
		res = c.toolConnect(x, y, Rails, BLBN)
	case ToolWire:
		res = c.toolConnect(x, y, Wires, BLBNCN)
	case ToolPark:
		res = c.toolPark(x, y)
	case ToolResidential:
		res = c.toolZone(x, y, FreeZ)
	case ToolCommercial:
		res = c.toolZone(x, y, ComClr)
	case ToolIndustrial:
		res = c.toolZone(x, y, IndClr)
	case ToolPoliceStation:
		res = c.toolZone(x, y, PoliceStation)
	case ToolFireStation:
		res = c.toolZone(x, y, FireStation)
	case ToolStadium, ToolSeaport, ToolCoalPlant, ToolNuclearPlant, ToolAirport:
		spec := buildings[tool]
		res = c.toolBuilding(x, y, spec.base, spec.size)
	case ToolQuery:
		return ToolOK
	}

	if res == ToolOK {
		c.totalFunds -= int64(cost)
		c.mapSerial++
	}
	return res
}

func (c *City) toolBulldoze(x, y int) ToolResult {
	cell := c.tiles.Get(x, y)
	if isWater(cell) || TileChar(cell) == Dirt {
		return ToolFailed
	}
	if !isBulldozable(cell) {
		return ToolNeedBulldoze
	}
	c.tiles.Set(x, y, Dirt)
	c.fixZone(x, y)
	return ToolOK
}

func (c *City) toolConnect(x, y int, skeleton, flags Cell) ToolResult {
	cell := c.tiles.Get(x, y)
	if TileChar(cell) != Dirt {
		if !isBulldozable(cell) {
			return ToolNeedBulldoze
		}
		if !c.cfg.AutoBulldoze {
			return ToolNeedBulldoze
		}
		c.tiles.Set(x, y, Dirt)
	}
	c.tiles.Set(x, y, skeleton|flags)
	c.fixZone(x, y)
	return ToolOK
}

func (c *City) toolPark(x, y int) ToolResult {
	cell := c.tiles.Get(x, y)
	if TileChar(cell) != Dirt {
		if !isBulldozable(cell) || !c.cfg.AutoBulldoze {
			return ToolNeedBulldoze
		}
	}
	tile := Fountain | AnimBit
	if c.rng.Range(4) != 0 {
		tile = 37 + Cell(c.rng.Range(3))
	}
	c.tiles.Set(x, y, tile|BLBN)
	return ToolOK
}

// toolZone plops a 3x3 zone centered on the click.
func (c *City) toolZone(x, y int, base Cell) ToolResult {
	if res := c.checkArea(x-1, y-1, 3); res != ToolOK {
		return res
	}
	c.clearArea(x-1, y-1, 3)
	c.zonePlop(x, y, base)
	c.restitchPerimeter(x-1, y-1, 3)
	return ToolOK
}

// restitchPerimeter fixes the road/rail/wire variants bordering a freshly
// written footprint.
func (c *City) restitchPerimeter(x, y, size int) {
	for d := -1; d <= size; d++ {
		c.fixSingle(x+d, y-1)
		c.fixSingle(x+d, y+size)
		c.fixSingle(x-1, y+d)
		c.fixSingle(x+size, y+d)
	}
}

// toolBuilding writes an N*N footprint anchored at the click. Tiles run
// row-major from the base; the cell one in from the corner carries the
// zone-center flag and seeds the power scan.
func (c *City) toolBuilding(x, y int, base Cell, size int) ToolResult {
	if res := c.checkArea(x, y, size); res != ToolOK {
		return res
	}
	c.clearArea(x, y, size)
	for dy := 0; dy < size; dy++ {
		for dx := 0; dx < size; dx++ {
			tile := base + Cell(dy*size+dx)
			if dx == 1 && dy == 1 {
				c.tiles.Set(x+dx, y+dy, tile|ZoneBit|ConductBit|PowerBit|BullBit)
			} else {
				c.tiles.Set(x+dx, y+dy, tile|BLBNCN)
			}
		}
	}
	c.restitchPerimeter(x, y, size)
	return ToolOK
}

// checkArea verifies a square footprint lies on the map and every cell is
// dirt or clearable.
func (c *City) checkArea(x, y, size int) ToolResult {
	if x < 0 || y < 0 || x+size > c.w || y+size > c.h {
		return ToolFailed
	}
	for dy := 0; dy < size; dy++ {
		for dx := 0; dx < size; dx++ {
			cell := c.tiles.Get(x+dx, y+dy)
			if TileChar(cell) == Dirt {
				continue
			}
			if !isBulldozable(cell) {
				return ToolNeedBulldoze
			}
		}
	}
	return ToolOK
}

func (c *City) clearArea(x, y, size int) {
	for dy := 0; dy < size; dy++ {
		for dx := 0; dx < size; dx++ {
			c.tiles.Set(x+dx, y+dy, Dirt)
		}
	}
}
