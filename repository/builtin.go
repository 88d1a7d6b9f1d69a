package repository

import "loan-advisor/domain"

// BuiltinTemplates returns the seeded Vietnamese bank products. Rates are a
// static snapshot; the reference rate approximates each bank's 12-month
// deposit rate at seed time.
func BuiltinTemplates() []domain.ProductTemplate {
	return []domain.ProductTemplate{
		{
			ID:                "vcb-home-std",
			Bank:              "Vietcombank",
			Name:              "Vay Mua Nha O Vietcombank",
			Category:          domain.CategoryMortgage,
			PromoRatePct:      6.5,
			PromoMonths:       12,
			ReferenceRatePct:  6.0,
			FloatingMarginPct: 3.5,
			GraceMonths:       6,
			MaxLTVPct:         70,
			MinTermMonths:     12,
			MaxTermMonths:     300,
			Fees: domain.FeeSchedule{
				OriginationPct:    0.5,
				OriginationMinVND: 500_000,
				OriginationMaxVND: 30_000_000,
				AppraisalVND:      2_000_000,
			},
			PrepaymentTiers: []domain.PrepaymentTier{
				{FromMonth: 1, ToMonth: 13, FeePct: 3.0},
				{FromMonth: 13, ToMonth: 25, FeePct: 2.0},
				{FromMonth: 25, ToMonth: 37, FeePct: 1.0},
				{FromMonth: 37, FeePct: 0},
			},
		},
		{
			ID:                "tcb-home-fast",
			Bank:              "Techcombank",
			Name:              "Home Loan Techcombank",
			Category:          domain.CategoryMortgage,
			PromoRatePct:      5.99,
			PromoMonths:       6,
			ReferenceRatePct:  6.2,
			FloatingMarginPct: 3.2,
			GraceMonths:       3,
			MaxLTVPct:         80,
			MinTermMonths:     12,
			MaxTermMonths:     360,
			Fees: domain.FeeSchedule{
				OriginationPct:     0.3,
				OriginationMinVND:  300_000,
				OriginationMaxVND:  20_000_000,
				AppraisalVND:       1_500_000,
				InsuranceAnnualPct: 0.05,
			},
			PrepaymentTiers: []domain.PrepaymentTier{
				{FromMonth: 1, ToMonth: 13, FeePct: 2.0},
				{FromMonth: 13, FeePct: 0},
			},
		},
		{
			ID:                "vpb-home-easy",
			Bank:              "VPBank",
			Name:              "VPBank Home Easy",
			Category:          domain.CategoryMortgage,
			PromoRatePct:      7.0,
			PromoMonths:       12,
			ReferenceRatePct:  6.3,
			FloatingMarginPct: 3.8,
			GraceMonths:       12,
			MaxLTVPct:         75,
			MinTermMonths:     12,
			MaxTermMonths:     240,
			Fees: domain.FeeSchedule{
				OriginationPct: 0.5,
				AppraisalVND:   1_000_000,
			},
			PrepaymentTiers: []domain.PrepaymentTier{
				{FromMonth: 1, ToMonth: 7, FeePct: 3.0},
				{FromMonth: 7, ToMonth: 13, FeePct: 2.0},
				{FromMonth: 13, ToMonth: 37, FeePct: 1.0},
				{FromMonth: 37, FeePct: 0},
			},
		},
		{
			ID:                "bidv-home-std",
			Bank:              "BIDV",
			Name:              "BIDV Home Loan",
			Category:          domain.CategoryMortgage,
			PromoRatePct:      6.8,
			PromoMonths:       12,
			ReferenceRatePct:  6.0,
			FloatingMarginPct: 3.5,
			GraceMonths:       6,
			MaxLTVPct:         70,
			MinTermMonths:     12,
			MaxTermMonths:     300,
			Fees: domain.FeeSchedule{
				OriginationPct: 0.4,
				AppraisalVND:   2_500_000,
			},
			PrepaymentTiers: []domain.PrepaymentTier{
				{FromMonth: 1, ToMonth: 13, FeePct: 2.5},
				{FromMonth: 13, ToMonth: 25, FeePct: 1.5},
				{FromMonth: 25, FeePct: 0},
			},
		},
		{
			ID:                "mb-home-express",
			Bank:              "MB Bank",
			Name:              "MB Home Loan Express",
			Category:          domain.CategoryMortgage,
			PromoRatePct:      6.2,
			PromoMonths:       6,
			ReferenceRatePct:  6.1,
			FloatingMarginPct: 3.3,
			GraceMonths:       0,
			MaxLTVPct:         75,
			MinTermMonths:     12,
			MaxTermMonths:     300,
			Fees: domain.FeeSchedule{
				OriginationPct: 0.3,
				AppraisalVND:   1_500_000,
			},
			PrepaymentTiers: []domain.PrepaymentTier{
				{FromMonth: 1, ToMonth: 13, FeePct: 2.0},
				{FromMonth: 13, ToMonth: 37, FeePct: 0.5},
				{FromMonth: 37, FeePct: 0},
			},
		},
		{
			ID:                "hsbc-home-premier",
			Bank:              "HSBC VN",
			Name:              "HSBC Home Loan Premier",
			Category:          domain.CategoryMortgage,
			PromoRatePct:      5.5,
			PromoMonths:       12,
			ReferenceRatePct:  6.5,
			FloatingMarginPct: 2.8,
			GraceMonths:       6,
			MaxLTVPct:         75,
			MinTermMonths:     12,
			MaxTermMonths:     360,
			Fees: domain.FeeSchedule{
				OriginationPct:     0.2,
				OriginationMinVND:  2_000_000,
				AppraisalVND:       3_000_000,
				InsuranceAnnualPct: 0.03,
			},
			PrepaymentTiers: []domain.PrepaymentTier{
				{FromMonth: 1, ToMonth: 13, FeePct: 1.5},
				{FromMonth: 13, FeePct: 0},
			},
		},
		{
			ID:                "vtb-refi-std",
			Bank:              "VietinBank",
			Name:              "VietinBank Refinance",
			Category:          domain.CategoryRefinance,
			PromoRatePct:      6.9,
			PromoMonths:       12,
			ReferenceRatePct:  6.0,
			FloatingMarginPct: 3.6,
			GraceMonths:       12,
			MaxLTVPct:         65,
			MinTermMonths:     12,
			MaxTermMonths:     240,
			Fees: domain.FeeSchedule{
				OriginationPct: 0.4,
				AppraisalVND:   2_000_000,
			},
			PrepaymentTiers: []domain.PrepaymentTier{
				{FromMonth: 1, ToMonth: 13, FeePct: 2.0},
				{FromMonth: 13, FeePct: 0},
			},
		},
		{
			ID:                "tcb-refi-switch",
			Bank:              "Techcombank",
			Name:              "Techcombank Refinance Switch",
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
				OriginationPct:     0.3,
				OriginationMinVND:  300_000,
				OriginationMaxVND:  20_000_000,
				AppraisalVND:       1_500_000,
				InsuranceAnnualPct: 0.05,
			},
			PrepaymentTiers: []domain.PrepaymentTier{
				{FromMonth: 1, ToMonth: 13, FeePct: 2.0},
				{FromMonth: 13, FeePct: 0},
			},
		},
	}
}
