package service

const (
	MaxLoanAmountVND   = 100_000_000_000 // 100 tỷ VND
	MaxTermMonths      = 600             // 50 years
	MinTermMonths      = 1
	MaxInterestRatePct = 100.0

	// Stress bumps in percentage points over the floating rate.
	StressBumpNone  = 0.0
	StressBumpPlus2 = 2.0
	StressBumpPlus4 = 4.0

	// Accumulated rounding drift allowed on a fully amortizing schedule.
	BalanceToleranceVND = 1

	// Policy ceiling for the debt-service ratio when income is declared.
	DefaultMaxDSRPct = 60.0
)
