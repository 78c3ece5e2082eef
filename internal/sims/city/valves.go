package city

// setValves recomputes the three demand signals from the population
// balance. The external market keeps a brand-new city from flatlining:
// with no residents at all there is still outside pressure to settle.
func (c *City) setValves() {
	normRes := c.published.resZPop / 8
	com := c.published.comZPop
	ind := c.published.indZPop

	employment := 1.0
	if normRes > 0 {
		employment = float64(com+ind) * 8 / float64(normRes)
	}
	migration := float64(normRes) * (employment - 1)
	births := float64(normRes) * 0.02
	projRes := float64(normRes) + migration + births + c.cfg.Params.ExternalMarket

	laborBase := employment
	if laborBase > 1.3 {
		laborBase = 1.3
	}
	if laborBase < 0 {
		laborBase = 0
	}

	internalMarket := float64(normRes+com+ind) / 3.7
	projCom := internalMarket * laborBase
	projInd := float64(ind) * laborBase
	if projInd < c.cfg.Params.ExternalMarket {
		projInd = c.cfg.Params.ExternalMarket
	}

	ratio := func(projected float64, current int) float64 {
		if current <= 0 {
			if projected > 0 {
				return 1.3
			}
			return 1.0
		}
		r := projected / float64(current)
		if r > 2 {
			r = 2
		}
		return r
	}

	taxAdj := -(c.cityTax - DefaultCityTax) * 30

	c.resValve = clampValve(c.resValve+int((ratio(projRes, normRes)-1)*600)+taxAdj, 2000)
	c.comValve = clampValve(c.comValve+int((ratio(projCom, com)-1)*600)+taxAdj, 1500)
	c.indValve = clampValve(c.indValve+int((ratio(projInd, ind)-1)*600)+taxAdj, 1500)
}

func clampValve(v, limit int) int {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}
