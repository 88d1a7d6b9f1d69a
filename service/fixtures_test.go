package service

import (
	"log/slog"

	"loan-advisor/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testMortgageTemplate() domain.ProductTemplate {
	return domain.ProductTemplate{
		ID:                "test-home",
		Bank:              "Test Bank",
		Name:              "Test Home Loan",
		Category:          domain.CategoryMortgage,
		PromoRatePct:      6.5,
		PromoMonths:       12,
		ReferenceRatePct:  6.0,
		FloatingMarginPct: 3.5,
		GraceMonths:       0,
		MaxLTVPct:         70,
		MinTermMonths:     12,
		MaxTermMonths:     300,
		Fees: domain.FeeSchedule{
			OriginationPct:     0.5,
			OriginationMinVND:  500_000,
			OriginationMaxVND:  30_000_000,
			AppraisalVND:       2_000_000,
			InsuranceAnnualPct: 0.05,
		},
		PrepaymentTiers: []domain.PrepaymentTier{
			{FromMonth: 1, ToMonth: 13, FeePct: 3.0},
			{FromMonth: 13, ToMonth: 25, FeePct: 2.0},
			{FromMonth: 25, ToMonth: 37, FeePct: 1.0},
			{FromMonth: 37, FeePct: 0},
		},
	}
}

func testMortgageInput() domain.MortgageInput {
	return domain.MortgageInput{
		PropertyValueVND: 3_000_000_000,
		DownPaymentVND:   1_000_000_000,
		LoanAmountVND:    2_000_000_000,
		TermMonths:       240,
		Method:           domain.MethodAnnuity,
		MonthlyIncomeVND: 60_000_000,
	}
}

func testRefiTemplate() domain.ProductTemplate {
	return domain.ProductTemplate{
		ID:                "test-refi",
		Bank:              "Test Bank",
		Name:              "Test Refinance",
		Category:          domain.CategoryRefinance,
		PromoRatePct:      6.3,
		PromoMonths:       12,
		ReferenceRatePct:  6.2,
		FloatingMarginPct: 3.2,
		GraceMonths:       0,
		MaxLTVPct:         70,
		MinTermMonths:     12,
		MaxTermMonths:     300,
		Fees: domain.FeeSchedule{
			OriginationPct:    0.3,
			OriginationMinVND: 300_000,
			OriginationMaxVND: 20_000_000,
			AppraisalVND:      1_500_000,
		},
		PrepaymentTiers: []domain.PrepaymentTier{
			{FromMonth: 1, ToMonth: 13, FeePct: 2.0},
			{FromMonth: 13, FeePct: 0},
		},
	}
}

func testRefiInput() domain.RefinanceInput {
	return domain.RefinanceInput{
		Old: domain.OldLoan{
			RemainingBalanceVND: 1_500_000_000,
			RemainingTermMonths: 120,
			AnnualRatePct:       11.0,
			Method:              domain.MethodAnnuity,
			AgeMonths:           24,
			PrepaymentTiers: []domain.PrepaymentTier{
				{FromMonth: 1, ToMonth: 13, FeePct: 3.0},
				{FromMonth: 13, ToMonth: 25, FeePct: 2.0},
				{FromMonth: 25, FeePct: 1.0},
			},
		},
		NewTermMonths:    120,
		RefinanceMonth:   0,
		MonthlyIncomeVND: 50_000_000,
	}
}
