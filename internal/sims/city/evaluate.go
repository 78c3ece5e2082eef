package city

// CityClass buckets the weighted population.
type CityClass int

const (
	ClassVillage CityClass = iota
	ClassTown
	ClassCity
	ClassCapital
	ClassMetropolis
	ClassMegalopolis
)

// String names the class for display.
func (cl CityClass) String() string {
	switch cl {
	case ClassTown:
		return "Town"
	case ClassCity:
		return "City"
	case ClassCapital:
		return "Capital"
	case ClassMetropolis:
		return "Metropolis"
	case ClassMegalopolis:
		return "Megalopolis"
	default:
		return "Village"
	}
}

func classify(pop int) CityClass {
	switch {
	case pop < 2000:
		return ClassVillage
	case pop < 10000:
		return ClassTown
	case pop < 50000:
		return ClassCity
	case pop < 100000:
		return ClassCapital
	case pop < 500000:
		return ClassMetropolis
	default:
		return ClassMegalopolis
	}
}

// cityEvaluation rebuilds the headline population, class and score.
func (c *City) cityEvaluation() {
	c.prevCityPop = c.cityPop
	c.cityPop = (c.published.resZPop + c.published.comZPop*8 + c.published.indZPop*8) * 20
	c.cityClass = classify(c.cityPop)

	delta := c.cityPop - c.prevCityPop
	growth := delta / 20
	if growth > 100 {
		growth = 100
	}
	if growth < -100 {
		growth = -100
	}

	score := 500 + growth
	score -= c.crimeAverage / 5
	score -= c.pollutionAverage / 5

	workers := c.published.resZPop / 8
	jobs := (c.published.comZPop + c.published.indZPop) * 8
	if workers > 0 && jobs < workers {
		score -= (workers - jobs) * 100 / workers
	}

	if c.cityTax > 10 {
		score -= (c.cityTax - 10) * 5
	}

	zones := c.published.poweredZones + c.published.unpoweredZones
	if zones > 0 {
		score -= c.published.unpoweredZones * 100 / zones
	}

	score -= c.trafficAverage / 4

	if score < 0 {
		score = 0
	}
	if score > 1000 {
		score = 1000
	}
	c.cityScore = score
}
