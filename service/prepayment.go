package service

import (
	"github.com/shopspring/decimal"

	"loan-advisor/domain"
)

// PrepaymentFeePctAt returns the fee percentage of the tier covering the
// given loan age. Tiers are pre-validated as covering and non-overlapping
// by the template source.
func PrepaymentFeePctAt(tiers []domain.PrepaymentTier, ageMonths int) float64 {
	for _, tier := range tiers {
		if tier.Contains(ageMonths) {
			return tier.FeePct
		}
	}
	return 0
}

// PrepaymentFeeVND computes the early-settlement fee for the given balance
// and loan age: balance × tier fee percentage.
func PrepaymentFeeVND(balanceVND int64, ageMonths int, tiers []domain.PrepaymentTier) int64 {
	if balanceVND <= 0 {
		return 0
	}
	pct := PrepaymentFeePctAt(tiers, ageMonths)
	if pct <= 0 {
		return 0
	}
	return decimal.NewFromInt(balanceVND).
		Mul(decimal.NewFromFloat(pct)).
		Div(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
}

// FirstMonthAtOrBelowFeePct returns the first month (1-based loan age) at
// which the tiered fee percentage drops to thresholdPct or below, searching
// up to horizonMonths. Returns 0 when no such month exists in the horizon.
func FirstMonthAtOrBelowFeePct(tiers []domain.PrepaymentTier, thresholdPct float64, horizonMonths int) int {
	for m := 1; m <= horizonMonths; m++ {
		if PrepaymentFeePctAt(tiers, m) <= thresholdPct {
			return m
		}
	}
	return 0
}
