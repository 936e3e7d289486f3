package service

import (
	"math"

	"github.com/shopspring/decimal"

	"btl-agent/domain"
)

// roundTo2Decimals rounds a float64 to the nearest penny.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// roundToPound rounds a float64 to the nearest whole pound.
func roundToPound(value float64) float64 {
	return math.Round(value)
}

// StampDutyService computes residential SDLT. It holds no state and is
// safe to call from any number of goroutines.
type StampDutyService struct{}

// NewStampDutyService creates a new StampDutyService.
func NewStampDutyService() *StampDutyService {
	return &StampDutyService{}
}

// Calculate returns the SDLT breakdown for a purchase. The base tax is
// progressive: each band rate applies only to the marginal slice of the
// price inside that band. The additional-property surcharge is a flat
// percentage of the whole price, added on top of the banded tax. Band
// arithmetic runs on decimals so the slices carry no float error into
// the final rounding. A non-positive price returns the all-zero result.
func (s *StampDutyService) Calculate(price float64, isAdditionalProperty bool) domain.StampDutyResult {
	if price <= 0 {
		return domain.StampDutyResult{}
	}

	p := decimal.NewFromFloat(price)

	baseTax := decimal.Zero
	lower := decimal.Zero
	for _, band := range sdltBands {
		upper := p
		if band.upTo > 0 {
			upper = decimal.Min(p, decimal.NewFromFloat(band.upTo))
		}
		if upper.LessThanOrEqual(lower) {
			break
		}
		slice := upper.Sub(lower)
		baseTax = baseTax.Add(slice.Mul(decimal.NewFromFloat(band.rate)))
		lower = upper
	}

	surcharge := decimal.Zero
	if isAdditionalProperty {
		surcharge = p.Mul(decimal.NewFromFloat(SurchargeRate))
	}

	// Monetary figures round to the whole pound, the effective rate to
	// basis-point precision.
	baseTax = baseTax.Round(0)
	surcharge = surcharge.Round(0)
	total := baseTax.Add(surcharge)
	effectiveRate := total.Div(p).Round(4)

	return domain.StampDutyResult{
		BaseTax:             baseTax.InexactFloat64(),
		AdditionalSurcharge: surcharge.InexactFloat64(),
		Total:               total.InexactFloat64(),
		EffectiveRate:       effectiveRate.InexactFloat64(),
	}
}
