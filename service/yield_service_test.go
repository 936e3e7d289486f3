package service

import "testing"

func TestProjectYield_TiersStepDownWithPrice(t *testing.T) {

	service := NewYieldService()

	cases := []struct {
		price    float64
		expected float64
	}{
		{price: 150_000, expected: 5.5},
		{price: 450_000, expected: 4.8},
		{price: 750_000, expected: 4.2},
		{price: 2_000_000, expected: 3.6},
		{price: 0, expected: 0},
	}

	for _, c := range cases {
		projection := service.ProjectYield(c.price, 100_000)
		if projection.AnnualYieldPercent != c.expected {
			t.Errorf("price %.0f: expected yield %.1f, got %.1f",
				c.price, c.expected, projection.AnnualYieldPercent)
		}
	}
}

func TestProjectYield_ScalesAgainstDeposit(t *testing.T) {

	service := NewYieldService()

	projection := service.ProjectYield(450_000, 112_500)

	if projection.ProjectedAnnualReturn != 5_400 {
		t.Errorf("expected projected return 5400, got %.2f", projection.ProjectedAnnualReturn)
	}
}
