package city

// Snapshot is the portable save-game state: the map, the random stream,
// the scheduler position, money and the history rings. Overlays and
// census counters are derived and are not stored.
type Snapshot struct {
	Cells    []uint16
	RngState uint32

	CityTime   int
	SimCycle   int
	PhaseCycle int

	TotalFunds int64
	CityTax    int

	ResValve, ComValve, IndValve int

	MapSerial uint64

	ResHist, ComHist, IndHist       []int16
	CrimeHist, PollutionHist        []int16
	MoneyHist, MiscHist             []int16
}

// Snapshot captures the current state. The returned slices are copies.
func (c *City) Snapshot() *Snapshot {
	s := &Snapshot{
		Cells:      append([]uint16(nil), c.tiles.Cells()...),
		RngState:   c.rng.State(),
		CityTime:   c.cityTime,
		SimCycle:   c.simCycle,
		PhaseCycle: c.phaseCycle,
		TotalFunds: c.totalFunds,
		CityTax:    c.cityTax,
		ResValve:   c.resValve,
		ComValve:   c.comValve,
		IndValve:   c.indValve,
		MapSerial:  c.mapSerial,

		ResHist:       append([]int16(nil), c.resHist...),
		ComHist:       append([]int16(nil), c.comHist...),
		IndHist:       append([]int16(nil), c.indHist...),
		CrimeHist:     append([]int16(nil), c.crimeHist...),
		PollutionHist: append([]int16(nil), c.pollutionHist...),
		MoneyHist:     append([]int16(nil), c.moneyHist...),
		MiscHist:      append([]int16(nil), c.miscHist...),
	}
	return s
}

// Restore applies a snapshot. The power grid is rebuilt at once; the other
// derived overlays refresh on their scheduled phases. The map serial is
// bumped so observers repaint immediately.
func (c *City) Restore(s *Snapshot) {
	copy(c.tiles.Cells(), s.Cells)
	c.rng.SetState(s.RngState)
	c.cityTime = s.CityTime
	c.simCycle = s.SimCycle
	c.phaseCycle = s.PhaseCycle
	c.totalFunds = s.TotalFunds
	c.cityTax = s.CityTax
	c.resValve = s.ResValve
	c.comValve = s.ComValve
	c.indValve = s.IndValve

	copy(c.resHist, s.ResHist)
	copy(c.comHist, s.ComHist)
	copy(c.indHist, s.IndHist)
	copy(c.crimeHist, s.CrimeHist)
	copy(c.pollutionHist, s.PollutionHist)
	copy(c.moneyHist, s.MoneyHist)
	copy(c.miscHist, s.MiscHist)

	if s.MapSerial > c.mapSerial {
		c.mapSerial = s.MapSerial
	}
	c.mapSerial++
	c.powerScan()
}
