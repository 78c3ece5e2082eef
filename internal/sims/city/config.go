package city

import "strconv"

// World and scheduler constants.
const (
	WorldW = 120
	WorldH = 100

	CityTimesPerMonth = 4
	CityTimesPerYear  = 48

	HistoryLength     = 480
	MiscHistoryLength = 240

	CensusFrequency10  = 4
	CensusFrequency120 = 48
	TaxFrequency       = 48

	MaxRoadEffect   = 32
	MaxPoliceEffect = 1000
	MaxFireEffect   = 1000

	DefaultCityTax      = 7
	DefaultStartingYear = 1900

	powerStackCap = WorldW * WorldH / 4
)

// Speed selects how often the external frame loop advances the scheduler.
type Speed int

const (
	SpeedPaused Speed = iota
	SpeedSlow
	SpeedMedium
	SpeedFast
)

// GameLevel scales starting funds and road upkeep.
type GameLevel int

const (
	LevelEasy GameLevel = iota
	LevelMedium
	LevelHard
)

// StartingFunds returns the bankroll for a new game at this level.
func (l GameLevel) StartingFunds() int64 {
	switch l {
	case LevelMedium:
		return 10000
	case LevelHard:
		return 5000
	default:
		return 20000
	}
}

// Params holds tunable rates and thresholds for the city simulation.
type Params struct {
	ExternalMarket float64

	RiverCount int
	LakeCount  int
	TreeCount  int

	FloodDuration int
}

// Config controls a city simulation instance.
type Config struct {
	Width  int
	Height int

	Seed uint64

	StartingYear int
	Level        GameLevel

	AutoBulldoze     bool
	DisastersEnabled bool

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:            WorldW,
		Height:           WorldH,
		Seed:             1971,
		StartingYear:     DefaultStartingYear,
		Level:            LevelEasy,
		AutoBulldoze:     true,
		DisastersEnabled: true,
		Params: Params{
			ExternalMarket: 4.0,
			RiverCount:     2,
			LakeCount:      6,
			TreeCount:      60,
			FloodDuration:  30,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["year"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.StartingYear = parsed
		}
	}
	if v, ok := cfg["level"]; ok {
		switch v {
		case "easy":
			c.Level = LevelEasy
		case "medium":
			c.Level = LevelMedium
		case "hard":
			c.Level = LevelHard
		}
	}
	if v, ok := cfg["auto_bulldoze"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.AutoBulldoze = parsed
		}
	}
	if v, ok := cfg["disasters"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.DisastersEnabled = parsed
		}
	}
	if v, ok := cfg["external_market"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.ExternalMarket = parsed
		}
	}
	if v, ok := cfg["rivers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.RiverCount = parsed
		}
	}
	if v, ok := cfg["lakes"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.LakeCount = parsed
		}
	}
	if v, ok := cfg["trees"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.TreeCount = parsed
		}
	}
	if v, ok := cfg["flood_duration"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.FloodDuration = parsed
		}
	}
	return c
}
