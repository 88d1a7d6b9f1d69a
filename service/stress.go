package service

import "loan-advisor/domain"

// StressPayments re-runs the amortization under +0/+2/+4 bumps and reports
// the first monthly payment of the floating period: the first month after
// the later of promo end and grace end. It returns nil when the loan never
// reaches that month; a paid-off loan has no floating exposure to report.
// payoffCapMonth truncates the horizon for exit plans (0 = none).
func StressPayments(tpl domain.ProductTemplate, in AmortizationInput, payoffCapMonth int) (*domain.StressResult, error) {
	firstFloating := tpl.PromoMonths
	if tpl.GraceMonths > firstFloating {
		firstFloating = tpl.GraceMonths
	}
	firstFloating++

	if firstFloating > len(in.RateSchedule) {
		return nil, nil
	}
	if payoffCapMonth > 0 && payoffCapMonth < firstFloating {
		return nil, nil
	}

	payments := make([]int64, 0, 3)
	for _, bump := range []float64{StressBumpNone, StressBumpPlus2, StressBumpPlus4} {
		run := in
		run.RateSchedule = ResolveRateSchedule(tpl, len(in.RateSchedule), bump)
		sched, err := Amortize(run)
		if err != nil {
			return nil, err
		}
		payment := sched.PaymentAt(firstFloating)
		if payment == 0 {
			// Extra principal retired the loan before the floating period.
			return nil, nil
		}
		payments = append(payments, payment)
	}

	return &domain.StressResult{
		Month:    firstFloating,
		BaseVND:  payments[0],
		Plus2VND: payments[1],
		Plus4VND: payments[2],
	}, nil
}
