package city

// MessageID identifies a city message.
type MessageID int

const (
	MsgNone MessageID = iota
	MsgNeedResidential
	MsgNeedCommercial
	MsgNeedIndustrial
	MsgRoadsNeedFunding
	MsgFireNeedFunding
	MsgPoliceNeedFunding
	MsgBlackouts
	MsgTaxTooHigh
	MsgCrimeHigh
	MsgPollutionHigh
	MsgMoneyLow
	MsgFireReported
	MsgFloodReported
	MsgMeltdownReported
	MsgEarthquakeReported
	MsgTornadoReported
	MsgMonsterReported
	MsgExplosionReported
	MsgTrainCrash
)

var messageText = map[MessageID]string{
	MsgNeedResidential:    "More residential zones needed.",
	MsgNeedCommercial:     "More commercial zones needed.",
	MsgNeedIndustrial:     "More industrial zones needed.",
	MsgRoadsNeedFunding:   "Roads deteriorating, due to lack of funds!",
	MsgFireNeedFunding:    "Fire departments need funding!",
	MsgPoliceNeedFunding:  "Police departments need funding!",
	MsgBlackouts:          "Brownouts, build another power plant.",
	MsgTaxTooHigh:         "Citizens upset. The tax rate is too high!",
	MsgCrimeHigh:          "Crime very high!",
	MsgPollutionHigh:      "Pollution very high!",
	MsgMoneyLow:           "YOUR CITY HAS GONE BROKE!",
	MsgFireReported:       "Fire reported!",
	MsgFloodReported:      "Flooding reported!",
	MsgMeltdownReported:   "A NUCLEAR MELTDOWN has occurred!",
	MsgEarthquakeReported: "A major earthquake has occurred!",
	MsgTornadoReported:    "A tornado has been sighted!",
	MsgMonsterReported:    "A monster has been sighted!",
	MsgExplosionReported:  "Explosion detected!",
	MsgTrainCrash:         "Train crashed!",
}

// Message is delivered to the UI callback. When Important is set together
// with the UI's auto-goto option, the view is expected to center on the
// coordinates; the core does not enforce that.
type Message struct {
	ID        MessageID
	Text      string
	X, Y      int
	HasCoords bool
	Important bool
}

// MessageFunc receives city messages.
type MessageFunc func(Message)

func (c *City) sendMessage(id MessageID) {
	c.emitMessage(Message{ID: id, Text: messageText[id]})
}

func (c *City) sendMessageAt(id MessageID, x, y int, important bool) {
	c.emitMessage(Message{
		ID: id, Text: messageText[id],
		X: x, Y: y, HasCoords: true,
		Important: important,
	})
}

func (c *City) emitMessage(m Message) {
	if c.onMessage == nil {
		return
	}
	c.onMessage(m)
}

// sendMessages surfaces at most one advisory per pass, with a cooldown so
// the same nag does not repeat every cycle.
func (c *City) sendMessages() {
	id := c.pickMessage()
	if id == MsgNone {
		return
	}
	if id == c.lastAdvisory && c.cityTime-c.lastAdvisoryTime < TaxFrequency {
		return
	}
	c.lastAdvisory = id
	c.lastAdvisoryTime = c.cityTime
	c.sendMessage(id)
}

func (c *City) pickMessage() MessageID {
	switch {
	case c.totalFunds < 0:
		return MsgMoneyLow
	case c.resValve > 1200 && c.published.resZPop == 0:
		return MsgNeedResidential
	case c.comValve > 1000 && c.published.comZPop == 0:
		return MsgNeedCommercial
	case c.indValve > 700 && c.published.indZPop == 0:
		return MsgNeedIndustrial
	case c.published.unpoweredZones > 0 &&
		c.published.unpoweredZones*3 > c.published.poweredZones:
		return MsgBlackouts
	case c.roadEffect < 28 && c.published.roadTotal > 0:
		return MsgRoadsNeedFunding
	case c.fireEffect < 700 && c.published.fireStPop > 0:
		return MsgFireNeedFunding
	case c.policeEffect < 700 && c.published.policeStPop > 0:
		return MsgPoliceNeedFunding
	case c.cityTax > 12:
		return MsgTaxTooHigh
	case c.crimeAverage > 100:
		return MsgCrimeHigh
	case c.pollutionAverage > 60:
		return MsgPollutionHigh
	}
	return MsgNone
}
