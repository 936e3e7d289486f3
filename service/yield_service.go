package service

import "btl-agent/domain"

// YieldService is a stand-in for a market-data yield feed: it projects
// an annual yield from the price tier and scales it against the cash
// deposit for a display figure. Deterministic, no I/O.
type YieldService struct{}

// NewYieldService creates a new YieldService.
func NewYieldService() *YieldService {
	return &YieldService{}
}

// ProjectYield returns the projected annual yield for a price tier and
// the return it implies on the deposit. Cheaper stock tends to yield
// more, so the tiers step down as the price rises.
func (s *YieldService) ProjectYield(price, deposit float64) domain.YieldProjection {
	var percent float64
	switch {
	case price <= 0:
		percent = 0
	case price < 300_000:
		percent = 5.5
	case price < 600_000:
		percent = 4.8
	case price < 1_000_000:
		percent = 4.2
	default:
		percent = 3.6
	}

	return domain.YieldProjection{
		AnnualYieldPercent:    percent,
		ProjectedAnnualReturn: roundTo2Decimals(deposit * percent / 100),
	}
}
