package service

import (
	"math"

	"github.com/shopspring/decimal"

	"loan-advisor/domain"
)

const (
	irrMaxIterations = 100
	irrTolerance     = 1e-10
)

// monthlyIRR solves for the internal rate of return of a cashflow vector
// (index 0 = time 0, positive = inflow to the borrower) by Newton-Raphson.
func monthlyIRR(cashflows []float64) float64 {
	if len(cashflows) < 2 {
		return 0
	}

	rate := 0.01
	for range irrMaxIterations {
		var npv, derivative float64
		for t, cf := range cashflows {
			discount := math.Pow(1+rate, float64(t))
			npv += cf / discount
			if t > 0 {
				derivative -= float64(t) * cf / math.Pow(1+rate, float64(t+1))
			}
		}
		if math.Abs(derivative) < 1e-20 {
			break
		}
		next := rate - npv/derivative
		next = math.Max(-0.5, math.Min(next, 1.0))
		if math.Abs(next-rate) < irrTolerance {
			return next
		}
		rate = next
	}
	return rate
}

// aprPct computes the IRR-based effective annual rate of one schedule, as a
// percentage. Cashflows: the borrower receives principal minus upfront fees
// at time 0 and pays payment + insurance each month; a settlement payoff
// (remaining balance + prepayment fee) lands with the final row.
func aprPct(principalVND int64, rows []domain.ScheduleRow, upfrontFeesVND, settlementVND int64) float64 {
	if len(rows) == 0 {
		return 0
	}

	cashflows := make([]float64, 0, len(rows)+1)
	cashflows = append(cashflows, float64(principalVND-upfrontFeesVND))
	for i, row := range rows {
		out := float64(row.PaymentVND + row.InsuranceVND)
		if i == len(rows)-1 {
			out += float64(settlementVND)
		}
		cashflows = append(cashflows, -out)
	}

	irr := monthlyIRR(cashflows)
	return (math.Pow(1+irr, 12) - 1) * 100
}

// originationFeeVND computes the one-time fees at disbursement: the
// origination percentage clamped to the template's min/max plus the fixed
// appraisal fee.
func originationFeeVND(principalVND int64, fees domain.FeeSchedule) int64 {
	origination := decimal.NewFromInt(principalVND).
		Mul(decimal.NewFromFloat(fees.OriginationPct)).
		Div(decimal.NewFromInt(100)).
		Round(0).
		IntPart()

	if fees.OriginationMinVND > 0 && origination < fees.OriginationMinVND {
		origination = fees.OriginationMinVND
	}
	if fees.OriginationMaxVND > 0 && origination > fees.OriginationMaxVND {
		origination = fees.OriginationMaxVND
	}
	return origination + fees.AppraisalVND
}
