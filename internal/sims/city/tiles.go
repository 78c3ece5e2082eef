package city

// Cell is one 16-bit map word: the lower 10 bits identify the tile, the
// upper 6 carry status flags.
type Cell = uint16

// Bit layout of a cell.
const (
	LoMask  Cell = 0x03ff // tile character
	AllBits Cell = 0xfc00 // every status flag

	PowerBit    Cell = 0x8000 // tile is receiving power
	ConductBit  Cell = 0x4000 // tile conducts power
	BurnBit     Cell = 0x2000 // tile can catch fire
	BullBit     Cell = 0x1000 // tile can be bulldozed
	AnimBit     Cell = 0x0800 // tile cycles animation frames
	ZoneBit     Cell = 0x0400 // tile is a zone center

	BLBN   Cell = BullBit | BurnBit
	BLBNCN Cell = BLBN | ConductBit
)

// Tile characters. The ranges are fixed; processors dispatch on them.
const (
	TileCount = 1024

	Dirt Cell = 0

	// Water.
	River      Cell = 2
	RiverEdge  Cell = 5
	LastRiver  Cell = 20
	WaterLow   Cell = River
	WaterHigh  Cell = LastRiver

	// Trees.
	TreeBase  Cell = 21
	LastTree  Cell = 43
	WoodsLow  Cell = TreeBase
	WoodsHigh Cell = LastTree

	// Wreckage.
	Rubble     Cell = 44
	LastRubble Cell = 47
	Flood      Cell = 48
	LastFlood  Cell = 51
	RadTile    Cell = 52

	// Fire.
	FireBase Cell = 56
	LastFire Cell = 63

	// Roads. 64 and 65 are the water crossings; 66..76 the 16-pattern
	// connection variants; higher banks are reserved traffic variants.
	RoadBase     Cell = 64
	HBridge      Cell = 64
	VBridge      Cell = 65
	Roads        Cell = 66
	Intersection Cell = 76
	HTrafficBase Cell = 144
	LastRoad     Cell = 206

	// Wires. 208/209 cross water; 210..220 are connection variants.
	WireBase Cell = 208
	HWire    Cell = 208
	VWire    Cell = 209
	Wires    Cell = 210
	LastWire Cell = 222

	// Rail. 224/225 cross water; 226..236 are connection variants.
	RailBase Cell = 224
	HRail    Cell = 224
	VRail    Cell = 225
	Rails    Cell = 226
	LastRail Cell = 238

	// Residential.
	ResBase  Cell = 240
	FreeZ    Cell = 244 // empty residential zone center
	House    Cell = 249
	RZB      Cell = 265 // first dense residential block
	LastRes  Cell = 404
	Hospital Cell = 409
	Church   Cell = 418

	// Commercial.
	ComBase Cell = 423
	ComClr  Cell = 427
	CZB     Cell = 436
	LastCom Cell = 609

	// Industrial.
	IndBase Cell = 612
	IndClr  Cell = 616
	IZB     Cell = 625
	LastInd Cell = 692

	// Special footprints. Centers sit at offset (1,1): base + side + 1.
	PortBase    Cell = 693
	Port        Cell = 698
	LastPort    Cell = 708
	AirportBase Cell = 709
	Airport     Cell = 716
	LastAirport Cell = 744
	CoalBase    Cell = 745
	CoalPlant   Cell = 750
	LastCoal    Cell = 760
	FireStBase  Cell = 761
	FireStation Cell = 765
	PoliceStBase  Cell = 770
	PoliceStation Cell = 774
	StadiumBase Cell = 779
	Stadium     Cell = 784
	FullStadium Cell = 800
	NuclearBase Cell = 811
	Nuclear     Cell = 816
	LastZone    Cell = 826

	Fountain Cell = 840
)

// TileChar strips the flag bits from a cell.
func TileChar(c Cell) Cell { return c & LoMask }

func isWater(c Cell) bool {
	t := TileChar(c)
	return t >= WaterLow && t <= WaterHigh
}

func isTree(c Cell) bool {
	t := TileChar(c)
	return t >= WoodsLow && t <= WoodsHigh
}

func isRubble(c Cell) bool {
	t := TileChar(c)
	return t >= Rubble && t <= LastRubble
}

func isFlood(c Cell) bool {
	t := TileChar(c)
	return t >= Flood && t <= LastFlood
}

func isFire(c Cell) bool {
	t := TileChar(c)
	return t >= FireBase && t <= LastFire
}

func isRoad(c Cell) bool {
	t := TileChar(c)
	return t >= RoadBase && t <= LastRoad
}

func isWire(c Cell) bool {
	t := TileChar(c)
	return t >= WireBase && t <= LastWire
}

func isRail(c Cell) bool {
	t := TileChar(c)
	return t >= RailBase && t <= LastRail
}

func isResZone(c Cell) bool {
	t := TileChar(c)
	return t >= ResBase && t <= LastRes
}

func isComZone(c Cell) bool {
	t := TileChar(c)
	return t >= ComBase && t <= LastCom
}

func isIndZone(c Cell) bool {
	t := TileChar(c)
	return t >= IndBase && t <= LastInd
}

func isZoneCenter(c Cell) bool { return c&ZoneBit != 0 }

func isConductive(c Cell) bool { return c&ConductBit != 0 }

func isBurnable(c Cell) bool { return c&BurnBit != 0 }

func isBulldozable(c Cell) bool { return c&BullBit != 0 }
