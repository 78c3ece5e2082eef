package city

import (
	"fmt"

	"microcity/internal/core"
)

// census collects the per-scan counters. The map scan accumulates into one
// instance while the published copy from the previous full pass stays
// readable.
type census struct {
	resZPop, comZPop, indZPop int

	hospPop, churchPop   int
	stadiumPop           int
	portPop, airportPop  int
	coalPop, nuclearPop  int
	fireStPop, policeStPop int

	firePop   int
	roadTotal int
	railTotal int

	poweredZones, unpoweredZones int
}

// City owns every piece of simulation state. External collaborators only
// borrow read views between scheduler invocations.
type City struct {
	cfg Config

	w, h int

	rng *core.Rand

	tiles *core.TileMap

	powerGrid        *core.Overlay[uint8]
	popDensity       *core.Overlay[uint8]
	trafficDensity   *core.Overlay[uint8]
	pollutionDensity *core.Overlay[uint8]
	landValueMap     *core.Overlay[uint8]
	crimeRateMap     *core.Overlay[uint8]
	terrainDensity   *core.Overlay[uint8]

	rateOfGrowth     *core.Overlay[int16]
	fireStationMap   *core.Overlay[int16]
	fireStEffectMap  *core.Overlay[int16]
	policeStationMap *core.Overlay[int16]
	policeEffectMap  *core.Overlay[int16]
	comRateMap       *core.Overlay[int16]

	temp1 *core.Overlay[uint8]
	temp2 *core.Overlay[uint8]
	temp8 *core.Overlay[int16]

	powerStack []int

	// Scheduler state.
	speed      Speed
	frameCount int
	phaseCycle int
	simCycle   int
	cityTime   int

	scan      census // accumulating
	published census // last completed pass

	resValve, comValve, indValve int

	resHist, comHist, indHist    []int16
	crimeHist, pollutionHist     []int16
	moneyHist                    []int16
	miscHist                     []int16
	histMax10, histMax120        [6]int16

	totalFunds  int64
	cityTax     int
	taxAccum    int
	taxAverage  int
	taxFund     int
	roadFund    int
	policeFund  int
	fireFund    int
	roadSpend   int
	policeSpend int
	fireSpend   int
	roadEffect  int
	policeEffect int
	fireEffect  int
	cashFlow    int

	cityScore    int
	cityClass    CityClass
	cityPop      int
	prevCityPop  int

	trafficAverage   int
	pollutionAverage int
	crimeAverage     int
	landValueAverage int

	pollutionMaxX, pollutionMaxY int
	crimeMaxX, crimeMaxY         int

	floodCount int

	sprites []*Sprite

	mapSerial uint64

	onMessage        MessageFunc
	lastAdvisory     MessageID
	lastAdvisoryTime int

	display []uint8
}

// New returns a city of the standard dimensions using defaults.
func New() *City {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig returns a city configured from the provided options.
func NewWithConfig(cfg Config) *City {
	if cfg.Width <= 0 {
		cfg.Width = WorldW
	}
	if cfg.Height <= 0 {
		cfg.Height = WorldH
	}
	w, h := cfg.Width, cfg.Height
	c := &City{
		cfg: cfg,
		w:   w,
		h:   h,
		rng: core.NewRand(cfg.Seed),

		tiles: core.NewTileMap(w, h),

		powerGrid:        core.NewOverlay[uint8](w, h, 1),
		popDensity:       core.NewOverlay[uint8](w, h, 2),
		trafficDensity:   core.NewOverlay[uint8](w, h, 2),
		pollutionDensity: core.NewOverlay[uint8](w, h, 2),
		landValueMap:     core.NewOverlay[uint8](w, h, 2),
		crimeRateMap:     core.NewOverlay[uint8](w, h, 2),
		terrainDensity:   core.NewOverlay[uint8](w, h, 4),

		rateOfGrowth:     core.NewOverlay[int16](w, h, 8),
		fireStationMap:   core.NewOverlay[int16](w, h, 8),
		fireStEffectMap:  core.NewOverlay[int16](w, h, 8),
		policeStationMap: core.NewOverlay[int16](w, h, 8),
		policeEffectMap:  core.NewOverlay[int16](w, h, 8),
		comRateMap:       core.NewOverlay[int16](w, h, 8),

		temp1: core.NewOverlay[uint8](w, h, 2),
		temp2: core.NewOverlay[uint8](w, h, 2),
		temp8: core.NewOverlay[int16](w, h, 8),

		powerStack: make([]int, 0, powerStackCap),

		resHist:       make([]int16, HistoryLength),
		comHist:       make([]int16, HistoryLength),
		indHist:       make([]int16, HistoryLength),
		crimeHist:     make([]int16, HistoryLength),
		pollutionHist: make([]int16, HistoryLength),
		moneyHist:     make([]int16, HistoryLength),
		miscHist:      make([]int16, MiscHistoryLength),

		display: make([]uint8, w*h),
	}
	c.NewGame(cfg.Seed)
	return c
}

// NewGame clears all state and regenerates terrain from the seed. The same
// seed always yields the same map and evolution.
func (c *City) NewGame(seed uint64) {
	c.cfg.Seed = seed
	c.rng.Seed(seed)

	c.tiles.Clear()
	c.powerGrid.Clear()
	c.popDensity.Clear()
	c.trafficDensity.Clear()
	c.pollutionDensity.Clear()
	c.landValueMap.Clear()
	c.crimeRateMap.Clear()
	c.terrainDensity.Clear()
	c.rateOfGrowth.Clear()
	c.fireStationMap.Clear()
	c.fireStEffectMap.Clear()
	c.policeStationMap.Clear()
	c.policeEffectMap.Clear()
	c.comRateMap.Clear()
	c.temp1.Clear()
	c.temp2.Clear()
	c.temp8.Clear()

	for i := range c.resHist {
		c.resHist[i] = 0
		c.comHist[i] = 0
		c.indHist[i] = 0
		c.crimeHist[i] = 0
		c.pollutionHist[i] = 0
		c.moneyHist[i] = 0
	}
	for i := range c.miscHist {
		c.miscHist[i] = 0
	}
	c.histMax10 = [6]int16{}
	c.histMax120 = [6]int16{}

	c.scan = census{}
	c.published = census{}

	c.speed = SpeedFast
	c.frameCount = 0
	c.phaseCycle = 0
	c.simCycle = 0
	c.cityTime = 0

	c.resValve, c.comValve, c.indValve = 0, 0, 0

	c.totalFunds = c.cfg.Level.StartingFunds()
	c.cityTax = DefaultCityTax
	c.taxAccum = 0
	c.taxAverage = DefaultCityTax
	c.taxFund, c.roadFund, c.policeFund, c.fireFund = 0, 0, 0, 0
	c.roadSpend, c.policeSpend, c.fireSpend = 0, 0, 0
	c.roadEffect = MaxRoadEffect
	c.policeEffect = MaxPoliceEffect
	c.fireEffect = MaxFireEffect
	c.cashFlow = 0

	c.cityScore = 500
	c.cityClass = ClassVillage
	c.cityPop = 0
	c.prevCityPop = 0

	c.trafficAverage = 0
	c.pollutionAverage = 0
	c.crimeAverage = 0
	c.landValueAverage = 0
	c.pollutionMaxX, c.pollutionMaxY = 0, 0
	c.crimeMaxX, c.crimeMaxY = 0, 0

	c.floodCount = 0
	c.sprites = c.sprites[:0]
	c.lastAdvisory = MsgNone
	c.lastAdvisoryTime = 0

	c.generateTerrain()
	c.mapSerial++
}

// SimFrame advances the scheduler by one unit, honoring the speed setting.
// A phase always runs to completion before control returns.
func (c *City) SimFrame() {
	c.frameCount++
	switch c.speed {
	case SpeedPaused:
		return
	case SpeedSlow:
		if c.frameCount%5 != 0 {
			return
		}
	case SpeedMedium:
		if c.frameCount%3 != 0 {
			return
		}
	}
	c.simulate(c.phaseCycle)
	c.phaseCycle = (c.phaseCycle + 1) & 15
	c.moveSprites()
}

func (c *City) simulate(phase int) {
	switch phase {
	case 0:
		c.simCycle = (c.simCycle + 1) & 1023
		c.cityTime++
		c.taxAccum += c.cityTax
		c.updateFundEffects()
		if c.simCycle&1 == 0 {
			c.setValves()
		}
		if c.floodCount > 0 {
			c.floodCount--
		}
		c.published = c.scan
		c.scan = census{}
		c.fireStationMap.Clear()
		c.policeStationMap.Clear()
	case 1, 2, 3, 4, 5, 6, 7, 8:
		c.mapScan((phase-1)*c.w/8, phase*c.w/8)
	case 9:
		if c.cityTime%CensusFrequency10 == 0 {
			c.take10Census()
		}
		if c.cityTime%CensusFrequency120 == 0 {
			c.take120Census()
		}
		if c.cityTime%TaxFrequency == 0 {
			c.collectTax()
			c.cityEvaluation()
		}
	case 10:
		if c.simCycle%5 == 0 {
			c.decRateOfGrowth()
		}
		c.decTrafficMap()
		c.sendMessages()
	case 11:
		if c.simCycle%9 == 0 {
			c.powerScan()
		}
	case 12:
		if c.simCycle%17 == 0 {
			c.pollutionTerrainLandValueScan()
		}
	case 13:
		if c.simCycle%19 == 0 {
			c.crimeScan()
		}
	case 14:
		if c.simCycle%19 == 0 {
			c.popDensityScan()
		}
	case 15:
		if c.simCycle%21 == 0 {
			c.fireAnalysis()
			c.policeAnalysis()
			c.computeComRateMap()
		}
		c.doDisasterRoll()
	}
}

// --- observation surface ---

// GetTile returns the raw cell at (x, y).
func (c *City) GetTile(x, y int) Cell { return c.tiles.Get(x, y) }

// GetRegion copies a rectangle of raw cells in row-major order.
func (c *City) GetRegion(x, y, w, h int) []Cell { return c.tiles.Region(x, y, w, h) }

// MapSerial ticks on any externally visible map mutation.
func (c *City) MapSerial() uint64 { return c.mapSerial }

// Overlay accessors. The returned maps are read-only views.

func (c *City) PowerGrid() *core.Overlay[uint8]        { return c.powerGrid }
func (c *City) PopulationDensity() *core.Overlay[uint8] { return c.popDensity }
func (c *City) TrafficDensity() *core.Overlay[uint8]   { return c.trafficDensity }
func (c *City) PollutionDensity() *core.Overlay[uint8] { return c.pollutionDensity }
func (c *City) LandValue() *core.Overlay[uint8]        { return c.landValueMap }
func (c *City) CrimeRate() *core.Overlay[uint8]        { return c.crimeRateMap }
func (c *City) RateOfGrowth() *core.Overlay[int16]     { return c.rateOfGrowth }
func (c *City) FireStationEffect() *core.Overlay[int16] { return c.fireStEffectMap }
func (c *City) PoliceStationEffect() *core.Overlay[int16] { return c.policeEffectMap }

// Scalar accessors.

func (c *City) CityTime() int      { return c.cityTime }
func (c *City) CityMonth() int     { return (c.cityTime / CityTimesPerMonth) % 12 }
func (c *City) CityYear() int      { return c.cfg.StartingYear + c.cityTime/CityTimesPerYear }
func (c *City) StartingYear() int  { return c.cfg.StartingYear }
func (c *City) TotalFunds() int64  { return c.totalFunds }
func (c *City) CityTax() int       { return c.cityTax }
func (c *City) CityScore() int     { return c.cityScore }
func (c *City) Class() CityClass   { return c.cityClass }
func (c *City) ResPop() int        { return c.published.resZPop }
func (c *City) ComPop() int        { return c.published.comZPop }
func (c *City) IndPop() int        { return c.published.indZPop }
func (c *City) RoadTotal() int     { return c.published.roadTotal }
func (c *City) RailTotal() int     { return c.published.railTotal }
func (c *City) CashFlow() int      { return c.cashFlow }
func (c *City) SimCycle() int      { return c.simCycle }
func (c *City) Speed() Speed       { return c.speed }
func (c *City) Sprites() []*Sprite { return c.sprites }

// Funding triples for the budget dialog.
func (c *City) RoadFunding() (fund, spend, effect int) {
	return c.roadFund, c.roadSpend, c.roadEffect
}
func (c *City) PoliceFunding() (fund, spend, effect int) {
	return c.policeFund, c.policeSpend, c.policeEffect
}
func (c *City) FireFunding() (fund, spend, effect int) {
	return c.fireFund, c.fireSpend, c.fireEffect
}

// GetPopulation returns the weighted city population.
func (c *City) GetPopulation() uint32 { return uint32(c.cityPop) }

// GetDemands returns the three demand valves scaled into [-1, 1].
func (c *City) GetDemands() (res, com, ind float64) {
	return float64(c.resValve) / 2000, float64(c.comValve) / 1500, float64(c.indValve) / 1500
}

// GetDateString renders the current simulation date.
func (c *City) GetDateString() string {
	months := [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	return fmt.Sprintf("%s %d", months[c.CityMonth()], c.CityYear())
}

// Stats is the scalar bundle the UI polls every frame.
type Stats struct {
	CityTime   int
	Date       string
	Funds      int64
	Tax        int
	Score      int
	Class      CityClass
	Population uint32
	ResPop     int
	ComPop     int
	IndPop     int
	Crime      int
	Pollution  int
	Traffic    int
	LandValue  int
}

// GetStats snapshots the headline scalars.
func (c *City) GetStats() Stats {
	return Stats{
		CityTime:   c.cityTime,
		Date:       c.GetDateString(),
		Funds:      c.totalFunds,
		Tax:        c.cityTax,
		Score:      c.cityScore,
		Class:      c.cityClass,
		Population: c.GetPopulation(),
		ResPop:     c.published.resZPop,
		ComPop:     c.published.comZPop,
		IndPop:     c.published.indZPop,
		Crime:      c.crimeAverage,
		Pollution:  c.pollutionAverage,
		Traffic:    c.trafficAverage,
		LandValue:  c.landValueAverage,
	}
}

// Budget is the funding snapshot for the budget dialog.
type Budget struct {
	TaxFund     int
	RoadFund    int
	RoadSpend   int
	PoliceFund  int
	PoliceSpend int
	FireFund    int
	FireSpend   int
	CashFlow    int
	TotalFunds  int64
}

// GetBudget snapshots the last collection cycle.
func (c *City) GetBudget() Budget {
	return Budget{
		TaxFund:     c.taxFund,
		RoadFund:    c.roadFund,
		RoadSpend:   c.roadSpend,
		PoliceFund:  c.policeFund,
		PoliceSpend: c.policeSpend,
		FireFund:    c.fireFund,
		FireSpend:   c.fireSpend,
		CashFlow:    c.cashFlow,
		TotalFunds:  c.totalFunds,
	}
}

// --- control surface ---

// SetSpeed selects the frame-loop throttle.
func (c *City) SetSpeed(s Speed) {
	if s < SpeedPaused || s > SpeedFast {
		return
	}
	c.speed = s
}

// SetCityTax sets the tax rate, clamped to [0, 20].
func (c *City) SetCityTax(t int) {
	if t < 0 {
		t = 0
	}
	if t > 20 {
		t = 20
	}
	c.cityTax = t
}

// SetGameLevel changes the difficulty. Starting funds follow on the next
// NewGame; road upkeep uses the new level from the next tax collection.
func (c *City) SetGameLevel(l GameLevel) {
	if l < LevelEasy || l > LevelHard {
		return
	}
	c.cfg.Level = l
}

// SetAutoBulldoze toggles automatic clearing under the placement tools.
func (c *City) SetAutoBulldoze(on bool) { c.cfg.AutoBulldoze = on }

// OnMessage installs the UI message callback.
func (c *City) OnMessage(fn MessageFunc) { c.onMessage = fn }

// --- core.Sim adapter ---

// Name returns the simulation identifier.
func (c *City) Name() string { return "city" }

// Size reports the grid dimensions.
func (c *City) Size() core.Size { return core.Size{W: c.w, H: c.h} }

// Reset reinitializes from the given seed.
func (c *City) Reset(seed int64) {
	if seed == 0 {
		c.NewGame(c.cfg.Seed)
		return
	}
	c.NewGame(uint64(seed))
}

// Step advances one scheduler unit.
func (c *City) Step() { c.SimFrame() }

func init() {
	core.Register("city", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
