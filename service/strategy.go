package service

import "loan-advisor/domain"

// EvaluateMortgageStrategy runs one purchase strategy variant against one
// template. Pure: same inputs always produce the same result.
func EvaluateMortgageStrategy(tpl domain.ProductTemplate, strategy domain.Strategy, in domain.MortgageInput) (domain.StrategyResult, error) {
	if tpl.Category != domain.CategoryMortgage {
		return domain.StrategyResult{}, domain.Invalid("category", domain.ErrCategoryMismatch)
	}
	if err := validateMortgageInput(tpl, in); err != nil {
		return domain.StrategyResult{}, err
	}

	switch strategy {
	case domain.StrategyMinPayment:
		return evaluateStraightAmortization(tpl, strategy, in, 0)
	case domain.StrategyExtraPrincipal:
		return evaluateStraightAmortization(tpl, strategy, in, in.ExtraMonthlyVND)
	case domain.StrategyExitPlan:
		return evaluateExitPlan(tpl, in)
	}
	return domain.StrategyResult{}, domain.Invalid("strategy", domain.ErrInvalidMethod)
}

// EvaluateRefinanceStrategy runs one refinance strategy variant against one
// template.
func EvaluateRefinanceStrategy(tpl domain.ProductTemplate, strategy domain.Strategy, in domain.RefinanceInput) (domain.StrategyResult, error) {
	if tpl.Category != domain.CategoryRefinance {
		return domain.StrategyResult{}, domain.Invalid("category", domain.ErrCategoryMismatch)
	}
	if err := validateRefinanceInput(tpl, in); err != nil {
		return domain.StrategyResult{}, err
	}

	switch strategy {
	case domain.StrategyRefiLiquidity:
		return evaluateRefinanceAt(tpl, strategy, in, in.RefinanceMonth, 0)
	case domain.StrategyRefiAccelerate:
		return evaluateRefinanceAt(tpl, strategy, in, in.RefinanceMonth, in.ExtraMonthlyVND)
	case domain.StrategyRefiOptimal:
		return evaluateOptimalTiming(tpl, in)
	}
	return domain.StrategyResult{}, domain.Invalid("strategy", domain.ErrInvalidMethod)
}

func validateMortgageInput(tpl domain.ProductTemplate, in domain.MortgageInput) error {
	if in.LoanAmountVND <= 0 || in.LoanAmountVND > MaxLoanAmountVND {
		return domain.Invalid("loan_amount_vnd", domain.ErrInvalidPrincipal)
	}
	if in.TermMonths < MinTermMonths || in.TermMonths > MaxTermMonths {
		return domain.Invalid("term_months", domain.ErrInvalidTerm)
	}
	if tpl.MinTermMonths > 0 && in.TermMonths < tpl.MinTermMonths {
		return domain.Invalid("term_months", domain.ErrTermOutOfBounds)
	}
	if tpl.MaxTermMonths > 0 && in.TermMonths > tpl.MaxTermMonths {
		return domain.Invalid("term_months", domain.ErrTermOutOfBounds)
	}
	if in.Method != domain.MethodAnnuity && in.Method != domain.MethodEqualPrincipal {
		return domain.Invalid("repayment_method", domain.ErrInvalidMethod)
	}
	if in.ExtraMonthlyVND < 0 {
		return domain.Invalid("extra_monthly_vnd", domain.ErrInvalidPrincipal)
	}
	switch in.StressBumpPct {
	case StressBumpNone, StressBumpPlus2, StressBumpPlus4:
	default:
		return domain.Invalid("stress_bump_pct", domain.ErrInvalidStressBump)
	}
	// LTV ceiling: never clamped, always rejected.
	if tpl.MaxLTVPct > 0 && in.PropertyValueVND > 0 {
		maxLoan := decimalPctOf(in.PropertyValueVND, tpl.MaxLTVPct)
		if in.LoanAmountVND > maxLoan {
			return domain.Invalid("loan_amount_vnd", domain.ErrLTVExceeded)
		}
	}
	return nil
}

func validateRefinanceInput(tpl domain.ProductTemplate, in domain.RefinanceInput) error {
	if in.Old.RemainingBalanceVND <= 0 || in.Old.RemainingBalanceVND > MaxLoanAmountVND {
		return domain.Invalid("old_loan.remaining_balance_vnd", domain.ErrInvalidPrincipal)
	}
	if in.Old.RemainingTermMonths < MinTermMonths || in.Old.RemainingTermMonths > MaxTermMonths {
		return domain.Invalid("old_loan.remaining_term_months", domain.ErrInvalidTerm)
	}
	if in.Old.AnnualRatePct < 0 || in.Old.AnnualRatePct > MaxInterestRatePct {
		return domain.Invalid("old_loan.annual_rate_pct", domain.ErrInvalidRate)
	}
	if in.Old.Method != domain.MethodAnnuity && in.Old.Method != domain.MethodEqualPrincipal {
		return domain.Invalid("old_loan.repayment_method", domain.ErrInvalidMethod)
	}
	if in.Old.AgeMonths < 0 {
		return domain.Invalid("old_loan.age_months", domain.ErrInvalidTerm)
	}
	if in.NewTermMonths < MinTermMonths || in.NewTermMonths > MaxTermMonths {
		return domain.Invalid("new_term_months", domain.ErrInvalidTerm)
	}
	if tpl.MinTermMonths > 0 && in.NewTermMonths < tpl.MinTermMonths {
		return domain.Invalid("new_term_months", domain.ErrTermOutOfBounds)
	}
	if tpl.MaxTermMonths > 0 && in.NewTermMonths > tpl.MaxTermMonths {
		return domain.Invalid("new_term_months", domain.ErrTermOutOfBounds)
	}
	if in.CashOutVND < 0 {
		return domain.Invalid("cash_out_vnd", domain.ErrInvalidPrincipal)
	}
	if in.RefinanceMonth < 0 || in.RefinanceMonth >= in.Old.RemainingTermMonths {
		return domain.Invalid("refinance_month", domain.ErrInvalidRefiMonth)
	}
	if in.ExtraMonthlyVND < 0 {
		return domain.Invalid("extra_monthly_vnd", domain.ErrInvalidPrincipal)
	}
	switch in.Objective {
	case "", domain.ObjectiveMaxNetSaving, domain.ObjectiveFastestBreakEven:
	default:
		return domain.Invalid("objective", domain.ErrInvalidObjective)
	}
	return nil
}
