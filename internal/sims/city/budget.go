package city

// roadCostFactor scales road upkeep with difficulty.
func (l GameLevel) roadCostFactor() int { return int(l) + 1 }

// collectTax runs once every TaxFrequency city times: it settles the tax
// take against the three service funds, spending proportionally when the
// treasury cannot cover everything.
func (c *City) collectTax() {
	c.taxAverage = c.taxAccum / TaxFrequency
	c.taxAccum = 0

	population := c.published.resZPop/8 + c.published.comZPop + c.published.indZPop
	c.taxFund = population * c.landValueAverage / 120 * c.taxAverage / 100

	c.roadFund = (c.published.roadTotal + c.published.railTotal*2) * c.cfg.Level.roadCostFactor()
	c.policeFund = c.published.policeStPop * 100
	c.fireFund = c.published.fireStPop * 100

	need := c.roadFund + c.policeFund + c.fireFund
	if c.totalFunds+int64(c.taxFund) >= int64(need) {
		c.roadSpend = c.roadFund
		c.policeSpend = c.policeFund
		c.fireSpend = c.fireFund
	} else if need > 0 {
		avail := c.totalFunds + int64(c.taxFund)
		if avail < 0 {
			avail = 0
		}
		c.roadSpend = int(avail * int64(c.roadFund) / int64(need))
		c.policeSpend = int(avail * int64(c.policeFund) / int64(need))
		c.fireSpend = int(avail * int64(c.fireFund) / int64(need))
	} else {
		c.roadSpend, c.policeSpend, c.fireSpend = 0, 0, 0
	}

	c.cashFlow = c.taxFund - c.roadSpend - c.policeSpend - c.fireSpend
	c.totalFunds += int64(c.cashFlow)

	c.updateFundEffects()
}

// updateFundEffects recomputes the service effectiveness ratios. A fund of
// zero means nothing to pay for, so the effect pegs at its maximum.
func (c *City) updateFundEffects() {
	if c.roadFund > 0 {
		c.roadEffect = c.roadSpend * MaxRoadEffect / c.roadFund
		if c.roadEffect > MaxRoadEffect {
			c.roadEffect = MaxRoadEffect
		}
	} else {
		c.roadEffect = MaxRoadEffect
	}
	if c.policeFund > 0 {
		c.policeEffect = c.policeSpend * MaxPoliceEffect / c.policeFund
		if c.policeEffect > MaxPoliceEffect {
			c.policeEffect = MaxPoliceEffect
		}
	} else {
		c.policeEffect = MaxPoliceEffect
	}
	if c.fireFund > 0 {
		c.fireEffect = c.fireSpend * MaxFireEffect / c.fireFund
		if c.fireEffect > MaxFireEffect {
			c.fireEffect = MaxFireEffect
		}
	} else {
		c.fireEffect = MaxFireEffect
	}
}
