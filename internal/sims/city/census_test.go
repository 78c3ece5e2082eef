package city

import "testing"

func TestHistoriesMostRecentFirst(t *testing.T) {
	c := newTestCity(3)
	c.published.resZPop = 5
	c.take10Census()
	c.published.resZPop = 9
	c.take10Census()

	if c.resHist[0] != 9 || c.resHist[1] != 5 {
		t.Fatalf("history head = [%d %d], want [9 5]", c.resHist[0], c.resHist[1])
	}
	if len(c.resHist) != HistoryLength {
		t.Fatalf("history length %d, want %d", len(c.resHist), HistoryLength)
	}
	if len(c.miscHist) != MiscHistoryLength {
		t.Fatalf("misc history length %d, want %d", len(c.miscHist), MiscHistoryLength)
	}
}

func TestHistoryMaxScales(t *testing.T) {
	c := newTestCity(3)

	// A spike, then enough newer samples to push it past the 10-scale
	// window but keep it inside the 120-scale window.
	c.published.resZPop = 3000
	c.take10Census()
	c.published.resZPop = 10
	for i := 0; i < 150; i++ {
		c.take10Census()
	}
	c.take120Census()

	max10, max120 := c.HistoryMax(histRes)
	if max10 != 10 {
		t.Fatalf("10-scale max = %d, want 10", max10)
	}
	if max120 != 3000 {
		t.Fatalf("120-scale max = %d, want 3000", max120)
	}
}

func TestCensusPublishedOnPhaseZero(t *testing.T) {
	c := newTestCity(42)
	flatten(c, 0, 0, 40, 40)
	c.DoTool(ToolCoalPlant, 10, 10)

	// Two full rotations: one to scan, one to publish.
	for i := 0; i < 33; i++ {
		c.SimFrame()
	}
	if c.published.coalPop == 0 {
		t.Fatal("coal plant never showed up in the published census")
	}
}

func TestCityClassification(t *testing.T) {
	cases := []struct {
		pop  int
		want CityClass
	}{
		{0, ClassVillage},
		{1999, ClassVillage},
		{2000, ClassTown},
		{9999, ClassTown},
		{10000, ClassCity},
		{49999, ClassCity},
		{50000, ClassCapital},
		{99999, ClassCapital},
		{100000, ClassMetropolis},
		{499999, ClassMetropolis},
		{500000, ClassMegalopolis},
	}
	for _, tc := range cases {
		if got := classify(tc.pop); got != tc.want {
			t.Fatalf("classify(%d) = %v, want %v", tc.pop, got, tc.want)
		}
	}
}

func TestEvaluationScoreBounds(t *testing.T) {
	c := newTestCity(3)

	// Worst case: rampant crime and pollution, no jobs, brutal taxes,
	// everything unpowered.
	c.crimeAverage = 255
	c.pollutionAverage = 255
	c.published.resZPop = 800
	c.published.comZPop = 0
	c.published.indZPop = 0
	c.published.unpoweredZones = 10
	c.cityTax = 20
	c.trafficAverage = 255
	c.cityEvaluation()
	if c.cityScore < 0 || c.cityScore > 1000 {
		t.Fatalf("score %d escaped [0,1000]", c.cityScore)
	}
	if c.cityScore >= 500 {
		t.Fatalf("catastrophic city scored %d, want below 500", c.cityScore)
	}

	// Booming city scores in the upper half of the range.
	c2 := newTestCity(3)
	c2.published.resZPop = 80
	c2.published.comZPop = 40
	c2.published.indZPop = 40
	c2.published.poweredZones = 20
	c2.cityPop = 0
	c2.cityEvaluation()
	if c2.cityScore < 500 || c2.cityScore > 1000 {
		t.Fatalf("healthy growing city scored %d", c2.cityScore)
	}
}

func TestValveClamps(t *testing.T) {
	c := newTestCity(3)
	for i := 0; i < 200; i++ {
		c.setValves()
	}
	if c.resValve < -2000 || c.resValve > 2000 {
		t.Fatalf("res valve %d escaped [-2000,2000]", c.resValve)
	}
	if c.comValve < -1500 || c.comValve > 1500 {
		t.Fatalf("com valve %d escaped [-1500,1500]", c.comValve)
	}
	if c.indValve < -1500 || c.indValve > 1500 {
		t.Fatalf("ind valve %d escaped [-1500,1500]", c.indValve)
	}
}

func TestEmptyCityDemandsGrowth(t *testing.T) {
	c := newTestCity(3)
	for i := 0; i < 20; i++ {
		c.setValves()
	}
	if c.resValve <= 0 {
		t.Fatalf("external market produced no residential demand: %d", c.resValve)
	}
}
