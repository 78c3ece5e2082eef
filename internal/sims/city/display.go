package city

import "image/color"

// Display classes for the palette renderer.
const (
	displayDirt uint8 = iota
	displayWater
	displayTrees
	displayRubble
	displayFlood
	displayRadiation
	displayFire
	displayRoad
	displayWire
	displayRail
	displayRes
	displayCom
	displayInd
	displayBuilding
	displayUnpowered
	displayPark
	displayClasses
)

var cityPalette = []color.RGBA{
	displayDirt:      {R: 120, G: 100, B: 60, A: 255},
	displayWater:     {R: 40, G: 80, B: 180, A: 255},
	displayTrees:     {R: 40, G: 120, B: 50, A: 255},
	displayRubble:    {R: 90, G: 90, B: 80, A: 255},
	displayFlood:     {R: 90, G: 130, B: 200, A: 255},
	displayRadiation: {R: 180, G: 220, B: 60, A: 255},
	displayFire:      {R: 255, G: 110, B: 30, A: 255},
	displayRoad:      {R: 60, G: 60, B: 60, A: 255},
	displayWire:      {R: 200, G: 180, B: 60, A: 255},
	displayRail:      {R: 130, G: 110, B: 90, A: 255},
	displayRes:       {R: 80, G: 190, B: 80, A: 255},
	displayCom:       {R: 80, G: 120, B: 220, A: 255},
	displayInd:       {R: 190, G: 170, B: 90, A: 255},
	displayBuilding:  {R: 200, G: 200, B: 210, A: 255},
	displayUnpowered: {R: 140, G: 60, B: 60, A: 255},
	displayPark:      {R: 110, G: 200, B: 130, A: 255},
}

// Palette exposes the color palette used for rendering the city.
func (c *City) Palette() []color.RGBA { return cityPalette }

// Cells classifies the map into display classes for the grid painter.
func (c *City) Cells() []uint8 {
	tiles := c.tiles.Cells()
	for i, cell := range tiles {
		c.display[i] = classifyTile(cell)
	}
	return c.display
}

func classifyTile(cell Cell) uint8 {
	t := TileChar(cell)
	switch {
	case t == Dirt:
		return displayDirt
	case t >= WaterLow && t <= WaterHigh:
		return displayWater
	case t >= WoodsLow && t <= WoodsHigh:
		return displayTrees
	case t >= Rubble && t <= LastRubble:
		return displayRubble
	case t >= Flood && t <= LastFlood:
		return displayFlood
	case t == RadTile:
		return displayRadiation
	case t >= FireBase && t <= LastFire:
		return displayFire
	case t >= RoadBase && t <= LastRoad:
		return displayRoad
	case t >= WireBase && t <= LastWire:
		return displayWire
	case t >= RailBase && t <= LastRail:
		return displayRail
	case t == Fountain:
		return displayPark
	case t >= ResBase && t <= LastRes, t == Hospital, t == Church:
		if cell&ZoneBit != 0 && cell&PowerBit == 0 {
			return displayUnpowered
		}
		return displayRes
	case t >= ComBase && t <= LastCom:
		if cell&ZoneBit != 0 && cell&PowerBit == 0 {
			return displayUnpowered
		}
		return displayCom
	case t >= IndBase && t <= LastInd:
		if cell&ZoneBit != 0 && cell&PowerBit == 0 {
			return displayUnpowered
		}
		return displayInd
	default:
		return displayBuilding
	}
}
