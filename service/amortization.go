package service

import (
	"math"

	"github.com/shopspring/decimal"

	"loan-advisor/domain"
)

// AmortizationInput carries everything needed to produce a schedule. The
// rate schedule length defines the term; rates are annual percentages.
type AmortizationInput struct {
	PrincipalVND       int64
	RateSchedule       []float64
	GraceMonths        int
	Method             domain.RepaymentMethod
	ExtraMonthlyVND    int64
	InsuranceAnnualPct float64
}

// Amortize produces the month-by-month schedule for one loan.
//
// During the grace window only interest is due. The annuity payment and the
// equal-principal portion are recomputed at the start of every constant-rate
// segment over the balance and months then remaining, so the schedule stays
// internally consistent across rate resets. Extra principal is applied after
// the scheduled principal portion and never pushes the balance below zero;
// the schedule truncates at the payoff month. The final row absorbs rounding
// drift so a fully amortizing loan closes at exactly zero.
func Amortize(in AmortizationInput) (domain.Schedule, error) {
	if in.PrincipalVND <= 0 {
		return domain.Schedule{}, domain.Invalid("principal_vnd", domain.ErrInvalidPrincipal)
	}
	if in.PrincipalVND > MaxLoanAmountVND {
		return domain.Schedule{}, domain.Invalid("principal_vnd", domain.ErrInvalidPrincipal)
	}
	term := len(in.RateSchedule)
	if term < MinTermMonths || term > MaxTermMonths {
		return domain.Schedule{}, domain.Invalid("term_months", domain.ErrInvalidTerm)
	}
	if in.GraceMonths < 0 || in.GraceMonths >= term {
		return domain.Schedule{}, domain.Invalid("grace_months", domain.ErrInvalidGrace)
	}
	if in.Method != domain.MethodAnnuity && in.Method != domain.MethodEqualPrincipal {
		return domain.Schedule{}, domain.Invalid("repayment_method", domain.ErrInvalidMethod)
	}
	if in.ExtraMonthlyVND < 0 {
		return domain.Schedule{}, domain.Invalid("extra_monthly_vnd", domain.ErrInvalidPrincipal)
	}
	for _, r := range in.RateSchedule {
		if r < 0 || r > MaxInterestRatePct {
			return domain.Schedule{}, domain.Invalid("rate_schedule", domain.ErrInvalidRate)
		}
	}

	var (
		sched        domain.Schedule
		balance      = in.PrincipalVND
		annuityPay   int64
		equalPortion int64
	)
	sched.Rows = make([]domain.ScheduleRow, 0, term)

	for m := 1; m <= term && balance > 0; m++ {
		rate := in.RateSchedule[m-1]
		interest := monthlyInterestVND(balance, rate)
		insurance := monthlyInsuranceVND(balance, in.InsuranceAnnualPct)

		row := domain.ScheduleRow{
			Month:        m,
			OpeningVND:   balance,
			InterestVND:  interest,
			InsuranceVND: insurance,
			RatePct:      rate,
		}

		if m <= in.GraceMonths {
			row.Grace = true
		} else {
			remaining := term - m + 1
			if segmentStart(in, m) {
				switch in.Method {
				case domain.MethodAnnuity:
					annuityPay = annuityPaymentVND(balance, rate, remaining)
				case domain.MethodEqualPrincipal:
					equalPortion = divRoundVND(balance, remaining)
				}
			}
			switch in.Method {
			case domain.MethodAnnuity:
				row.PrincipalVND = annuityPay - interest
			case domain.MethodEqualPrincipal:
				row.PrincipalVND = equalPortion
			}
			if row.PrincipalVND < 0 {
				row.PrincipalVND = 0
			}
			// Last contractual month pays whatever is left.
			if m == term || row.PrincipalVND > balance {
				row.PrincipalVND = balance
			}
		}

		if in.ExtraMonthlyVND > 0 {
			extra := in.ExtraMonthlyVND
			if rest := balance - row.PrincipalVND; extra > rest {
				extra = rest
			}
			row.ExtraVND = extra
		}

		balance -= row.PrincipalVND + row.ExtraVND
		row.ClosingVND = balance
		row.PaymentVND = row.InterestVND + row.PrincipalVND + row.ExtraVND

		sched.Rows = append(sched.Rows, row)
		sched.TotalInterestVND += row.InterestVND
		sched.TotalPrincipalVND += row.PrincipalVND + row.ExtraVND
		sched.TotalInsuranceVND += row.InsuranceVND
		sched.TotalPaymentVND += row.PaymentVND
	}

	return sched, nil
}

// segmentStart reports whether month m begins a new constant-rate segment:
// the first amortizing month after grace, or any month whose rate differs
// from the previous one.
func segmentStart(in AmortizationInput, m int) bool {
	if m == in.GraceMonths+1 {
		return true
	}
	return in.RateSchedule[m-1] != in.RateSchedule[m-2]
}

// annuityPaymentVND computes the level payment that fully amortizes the
// balance over the remaining months at the given annual rate. The power
// term runs in float64, monetary rounding to whole VND.
func annuityPaymentVND(balanceVND int64, annualRatePct float64, months int) int64 {
	if balanceVND <= 0 || months <= 0 {
		return 0
	}
	monthlyRate := annualRatePct / 100 / 12
	if monthlyRate == 0 {
		return divRoundVND(balanceVND, months)
	}
	factor := math.Pow(1+monthlyRate, float64(months))
	payment := float64(balanceVND) * monthlyRate * factor / (factor - 1)
	return int64(math.Round(payment))
}

func monthlyInterestVND(balanceVND int64, annualRatePct float64) int64 {
	if balanceVND <= 0 || annualRatePct <= 0 {
		return 0
	}
	return decimal.NewFromInt(balanceVND).
		Mul(decimal.NewFromFloat(annualRatePct)).
		Div(decimal.NewFromInt(1200)).
		Round(0).
		IntPart()
}

func monthlyInsuranceVND(balanceVND int64, annualPct float64) int64 {
	if balanceVND <= 0 || annualPct <= 0 {
		return 0
	}
	return decimal.NewFromInt(balanceVND).
		Mul(decimal.NewFromFloat(annualPct)).
		Div(decimal.NewFromInt(1200)).
		Round(0).
		IntPart()
}

// decimalPctOf returns pct% of the amount, rounded to whole VND.
func decimalPctOf(amountVND int64, pct float64) int64 {
	return decimal.NewFromInt(amountVND).
		Mul(decimal.NewFromFloat(pct)).
		Div(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
}

func divRoundVND(amountVND int64, parts int) int64 {
	return decimal.NewFromInt(amountVND).
		Div(decimal.NewFromInt(int64(parts))).
		Round(0).
		IntPart()
}
