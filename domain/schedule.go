package domain

// ScheduleRow is one month of an amortization schedule. All amounts are
// whole VND. Invariant: OpeningVND - PrincipalVND - ExtraVND == ClosingVND.
type ScheduleRow struct {
	Month        int     `json:"month"`
	OpeningVND   int64   `json:"opening_vnd"`
	InterestVND  int64   `json:"interest_vnd"`
	PrincipalVND int64   `json:"principal_vnd"`
	ExtraVND     int64   `json:"extra_vnd,omitempty"`
	PaymentVND   int64   `json:"payment_vnd"`
	InsuranceVND int64   `json:"insurance_vnd,omitempty"`
	ClosingVND   int64   `json:"closing_vnd"`
	RatePct      float64 `json:"rate_pct"`
	Grace        bool    `json:"grace,omitempty"`
}

// Schedule is a full amortization run with its aggregates.
type Schedule struct {
	Rows              []ScheduleRow `json:"rows"`
	TotalInterestVND  int64         `json:"total_interest_vnd"`
	TotalPrincipalVND int64         `json:"total_principal_vnd"`
	TotalInsuranceVND int64         `json:"total_insurance_vnd"`
	TotalPaymentVND   int64         `json:"total_payment_vnd"`
}

// PayoffMonth returns the month of the last row, 0 for an empty schedule.
func (s Schedule) PayoffMonth() int {
	if len(s.Rows) == 0 {
		return 0
	}
	return s.Rows[len(s.Rows)-1].Month
}

// PaymentAt returns the total payment of the given 1-based month, or 0 when
// the schedule ends earlier.
func (s Schedule) PaymentAt(month int) int64 {
	for _, r := range s.Rows {
		if r.Month == month {
			return r.PaymentVND
		}
	}
	return 0
}

// BalanceAfter returns the closing balance after the given month. Month 0
// returns the opening balance of the first row.
func (s Schedule) BalanceAfter(month int) int64 {
	if len(s.Rows) == 0 {
		return 0
	}
	if month <= 0 {
		return s.Rows[0].OpeningVND
	}
	for _, r := range s.Rows {
		if r.Month == month {
			return r.ClosingVND
		}
	}
	return s.Rows[len(s.Rows)-1].ClosingVND
}
