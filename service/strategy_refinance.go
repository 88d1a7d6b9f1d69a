package service

import "loan-advisor/domain"

// oldLoanSchedule amortizes the borrower's existing loan unchanged over its
// remaining term at its single current rate.
func oldLoanSchedule(old domain.OldLoan) (domain.Schedule, error) {
	return Amortize(AmortizationInput{
		PrincipalVND: old.RemainingBalanceVND,
		RateSchedule: FlatRateSchedule(old.AnnualRatePct, old.RemainingTermMonths),
		Method:       old.Method,
	})
}

// evaluateRefinanceAt covers R1 (extra = 0) and R2: keep the old loan up to
// month k, settle it (balance + tiered fee at old age + k), then run the new
// loan. The new principal is the old remaining balance plus any cash-out;
// switching costs are paid out of pocket, not capitalized.
func evaluateRefinanceAt(tpl domain.ProductTemplate, strategy domain.Strategy, in domain.RefinanceInput, k int, extraVND int64) (domain.StrategyResult, error) {
	oldSched, err := oldLoanSchedule(in.Old)
	if err != nil {
		return domain.StrategyResult{}, err
	}
	return refinanceTransition(tpl, strategy, in, oldSched, k, extraVND)
}

func refinanceTransition(tpl domain.ProductTemplate, strategy domain.Strategy, in domain.RefinanceInput, oldSched domain.Schedule, k int, extraVND int64) (domain.StrategyResult, error) {
	oldBalanceAtK := oldSched.BalanceAfter(k)
	oldFee := PrepaymentFeeVND(oldBalanceAtK, in.Old.AgeMonths+k, in.Old.PrepaymentTiers)
	newPrincipal := oldBalanceAtK + in.CashOutVND

	// New loans are annuity-scheduled; the old method only drives the old
	// loan's own rows.
	newAmort := AmortizationInput{
		PrincipalVND:    newPrincipal,
		RateSchedule:    ResolveRateSchedule(tpl, in.NewTermMonths, 0),
		GraceMonths:     tpl.GraceMonths,
		Method:          domain.MethodAnnuity,
		ExtraMonthlyVND: extraVND,
	}
	if in.Insurance {
		newAmort.InsuranceAnnualPct = tpl.Fees.InsuranceAnnualPct
	}

	newSched, err := Amortize(newAmort)
	if err != nil {
		return domain.StrategyResult{}, err
	}

	upfront := originationFeeVND(newPrincipal, tpl.Fees)
	switching := oldFee + upfront

	// Break-even: smallest t with cumulative (old payment − new payment)
	// over months 1..t of the new loan covering the switching cost. The old
	// payment stream is what the borrower would still be paying at old
	// month k+t; zero once the old loan would have ended.
	var breakEven *int
	var cumulative int64
	for t := 1; t <= len(newSched.Rows); t++ {
		cumulative += oldSched.PaymentAt(k+t) - newSched.Rows[t-1].PaymentVND
		if cumulative >= switching {
			month := t
			breakEven = &month
			break
		}
	}

	// Net saving: remaining cost of keeping the old loan versus the full
	// cost of switching to the new one.
	var keepOldInterest int64
	for _, row := range oldSched.Rows {
		if row.Month > k {
			keepOldInterest += row.InterestVND
		}
	}
	refiCost := switching + newSched.TotalInterestVND + newSched.TotalInsuranceVND

	// Combined schedule: old rows up to k, then the new loan renumbered.
	combined := truncateSchedule(oldSched, k)
	for _, row := range newSched.Rows {
		row.Month += k
		combined.Rows = append(combined.Rows, row)
		combined.TotalInterestVND += row.InterestVND
		combined.TotalPrincipalVND += row.PrincipalVND + row.ExtraVND
		combined.TotalInsuranceVND += row.InsuranceVND
		combined.TotalPaymentVND += row.PaymentVND
	}

	res := newStrategyResult(tpl, strategy, combined, upfront)
	res.TotalFeesVND += oldFee
	res.TotalCostVND += oldFee
	res.Refinance = &domain.RefinanceSummary{
		RefinanceMonth:      k,
		OldPrepaymentFeeVND: oldFee,
		SwitchingCostVND:    switching,
		NewPrincipalVND:     newPrincipal,
		BreakEvenMonth:      breakEven,
		NetSavingVND:        keepOldInterest - refiCost,
		KeepOldCostVND:      keepOldInterest,
		RefinanceCostVND:    refiCost,
		OldPaymentVND:       oldSched.PaymentAt(k + 1),
		NewFirstPaymentVND:  newSched.Rows[0].PaymentVND,
	}
	res.APRPct = aprPct(newPrincipal, newSched.Rows, upfront, 0)

	stress, err := StressPayments(tpl, newAmort, 0)
	if err != nil {
		return domain.StrategyResult{}, err
	}
	if stress != nil {
		stress.Month += k
	}
	res.Stress = stress

	return res, nil
}

// evaluateOptimalTiming (R3) evaluates the R1 transition at every candidate
// refinance month and keeps the one that maximizes the declared objective.
// Candidates run ascending and only strictly better results win, so equal
// inputs always select the same month.
func evaluateOptimalTiming(tpl domain.ProductTemplate, in domain.RefinanceInput) (domain.StrategyResult, error) {
	objective := in.Objective
	if objective == "" {
		objective = domain.ObjectiveMaxNetSaving
	}

	oldSched, err := oldLoanSchedule(in.Old)
	if err != nil {
		return domain.StrategyResult{}, err
	}

	var best *domain.StrategyResult
	for k := 0; k < in.Old.RemainingTermMonths; k++ {
		candidate, err := refinanceTransition(tpl, domain.StrategyRefiOptimal, in, oldSched, k, 0)
		if err != nil {
			return domain.StrategyResult{}, err
		}
		if best == nil || betterTiming(objective, candidate, *best) {
			c := candidate
			best = &c
		}
	}
	return *best, nil
}

func betterTiming(objective domain.RefinanceObjective, a, b domain.StrategyResult) bool {
	switch objective {
	case domain.ObjectiveFastestBreakEven:
		ab, bb := a.Refinance.BreakEvenMonth, b.Refinance.BreakEvenMonth
		switch {
		case ab == nil:
			return false
		case bb == nil:
			return true
		case *ab != *bb:
			return *ab < *bb
		}
		return a.Refinance.NetSavingVND > b.Refinance.NetSavingVND
	default: // MAX_NET_SAVING
		return a.Refinance.NetSavingVND > b.Refinance.NetSavingVND
	}
}
