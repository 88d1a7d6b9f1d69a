package service

import "loan-advisor/domain"

// ResolveRateSchedule derives the effective annual rate (in percent) for
// every month of the loan's life. Months inside the promotional window pay
// the promo rate; every later month pays reference + margin + stress bump.
// The bump never applies during the promo window. The returned slice always
// has length termMonths; index 0 is month 1.
func ResolveRateSchedule(tpl domain.ProductTemplate, termMonths int, stressBumpPct float64) []float64 {
	if termMonths <= 0 {
		return nil
	}

	rates := make([]float64, termMonths)
	floating := tpl.FloatingRatePct() + stressBumpPct

	for m := 1; m <= termMonths; m++ {
		if m <= tpl.PromoMonths {
			rates[m-1] = tpl.PromoRatePct
		} else {
			rates[m-1] = floating
		}
	}
	return rates
}

// FlatRateSchedule returns a constant-rate schedule, used for old-loan
// snapshots that carry a single current rate.
func FlatRateSchedule(annualRatePct float64, termMonths int) []float64 {
	if termMonths <= 0 {
		return nil
	}
	rates := make([]float64, termMonths)
	for i := range rates {
		rates[i] = annualRatePct
	}
	return rates
}
