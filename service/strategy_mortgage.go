package service

import "loan-advisor/domain"

// evaluateStraightAmortization covers M1 (extra = 0) and M2 (fixed monthly
// add-on): the loan runs to natural payoff, no early settlement.
func evaluateStraightAmortization(tpl domain.ProductTemplate, strategy domain.Strategy, in domain.MortgageInput, extraVND int64) (domain.StrategyResult, error) {
	amort := AmortizationInput{
		PrincipalVND:    in.LoanAmountVND,
		RateSchedule:    ResolveRateSchedule(tpl, in.TermMonths, in.StressBumpPct),
		GraceMonths:     tpl.GraceMonths,
		Method:          in.Method,
		ExtraMonthlyVND: extraVND,
	}
	if in.Insurance {
		amort.InsuranceAnnualPct = tpl.Fees.InsuranceAnnualPct
	}

	sched, err := Amortize(amort)
	if err != nil {
		return domain.StrategyResult{}, err
	}

	upfront := originationFeeVND(in.LoanAmountVND, tpl.Fees)
	res := newStrategyResult(tpl, strategy, sched, upfront)
	res.APRPct = aprPct(in.LoanAmountVND, sched.Rows, upfront, 0)

	// Stress is reported over the unbumped loan; the input's bump selector
	// only shifts the borrower's main schedule.
	stressIn := amort
	stress, err := StressPayments(tpl, stressIn, 0)
	if err != nil {
		return domain.StrategyResult{}, err
	}
	res.Stress = stress

	return res, nil
}

// evaluateExitPlan (M3) truncates the straight schedule at the exit month
// and settles the remaining balance plus the tiered prepayment fee there.
func evaluateExitPlan(tpl domain.ProductTemplate, in domain.MortgageInput) (domain.StrategyResult, error) {
	exitMonth, err := resolveExitMonth(tpl, in)
	if err != nil {
		return domain.StrategyResult{}, err
	}

	amort := AmortizationInput{
		PrincipalVND: in.LoanAmountVND,
		RateSchedule: ResolveRateSchedule(tpl, in.TermMonths, in.StressBumpPct),
		GraceMonths:  tpl.GraceMonths,
		Method:       in.Method,
	}
	if in.Insurance {
		amort.InsuranceAnnualPct = tpl.Fees.InsuranceAnnualPct
	}

	full, err := Amortize(amort)
	if err != nil {
		return domain.StrategyResult{}, err
	}

	sched := truncateSchedule(full, exitMonth)
	remaining := full.BalanceAfter(exitMonth)
	// The loan's age at settlement equals the exit month itself.
	prepayFee := PrepaymentFeeVND(remaining, exitMonth, tpl.PrepaymentTiers)
	upfront := originationFeeVND(in.LoanAmountVND, tpl.Fees)

	res := newStrategyResult(tpl, domain.StrategyExitPlan, sched, upfront)
	res.TotalFeesVND += prepayFee
	res.TotalCostVND += prepayFee
	res.PayoffMonth = exitMonth
	res.Exit = &domain.ExitSummary{
		ExitMonth:           exitMonth,
		RemainingBalanceVND: remaining,
		PrepaymentFeeVND:    prepayFee,
		InterestPaidVND:     sched.TotalInterestVND,
		FeesPaidVND:         upfront,
		TotalCostToExitVND:  remaining + sched.TotalInterestVND + upfront + prepayFee,
	}
	res.APRPct = aprPct(in.LoanAmountVND, sched.Rows, upfront, remaining+prepayFee)

	stress, err := StressPayments(tpl, amort, exitMonth)
	if err != nil {
		return domain.StrategyResult{}, err
	}
	res.Stress = stress

	return res, nil
}

func resolveExitMonth(tpl domain.ProductTemplate, in domain.MortgageInput) (int, error) {
	var exitMonth int
	switch in.ExitRule {
	case domain.ExitPromoEnd:
		exitMonth = tpl.PromoMonths
	case domain.ExitGraceEnd:
		exitMonth = tpl.GraceMonths
	case domain.ExitFeeThreshold:
		exitMonth = FirstMonthAtOrBelowFeePct(tpl.PrepaymentTiers, in.ExitFeeThresholdPct, in.TermMonths)
	case domain.ExitCustom:
		exitMonth = in.ExitMonth
	default:
		return 0, domain.Invalid("exit_rule", domain.ErrInvalidExitRule)
	}
	if exitMonth < 1 || exitMonth >= in.TermMonths {
		return 0, domain.Invalid("exit_month", domain.ErrInvalidExitMonth)
	}
	return exitMonth, nil
}

func truncateSchedule(s domain.Schedule, month int) domain.Schedule {
	var out domain.Schedule
	for _, row := range s.Rows {
		if row.Month > month {
			break
		}
		out.Rows = append(out.Rows, row)
		out.TotalInterestVND += row.InterestVND
		out.TotalPrincipalVND += row.PrincipalVND + row.ExtraVND
		out.TotalInsuranceVND += row.InsuranceVND
		out.TotalPaymentVND += row.PaymentVND
	}
	return out
}

// newStrategyResult fills the fields every strategy shares: totals, payoff
// month and the first-year payment summaries.
func newStrategyResult(tpl domain.ProductTemplate, strategy domain.Strategy, sched domain.Schedule, upfrontFeesVND int64) domain.StrategyResult {
	res := domain.StrategyResult{
		TemplateID:        tpl.ID,
		Bank:              tpl.Bank,
		TemplateName:      tpl.Name,
		Strategy:          strategy,
		Schedule:          sched,
		TotalInterestVND:  sched.TotalInterestVND,
		TotalFeesVND:      upfrontFeesVND,
		TotalInsuranceVND: sched.TotalInsuranceVND,
		PayoffMonth:       sched.PayoffMonth(),
	}
	res.TotalCostVND = res.TotalInterestVND + res.TotalFeesVND + res.TotalInsuranceVND

	if len(sched.Rows) > 0 {
		res.FirstPaymentVND = sched.Rows[0].PaymentVND
	}
	var sum12 int64
	n := 0
	for _, row := range sched.Rows {
		if row.Month > 12 {
			break
		}
		sum12 += row.PaymentVND
		n++
	}
	res.Year1TotalVND = sum12
	if n > 0 {
		res.AvgFirst12VND = sum12 / int64(n)
	}
	return res
}
