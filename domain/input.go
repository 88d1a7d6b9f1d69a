package domain

// RepaymentMethod selects how principal is scheduled.
type RepaymentMethod string

const (
	MethodAnnuity        RepaymentMethod = "annuity"
	MethodEqualPrincipal RepaymentMethod = "equal_principal"
)

// ExitRule determines the exit month of an exit-plan strategy.
type ExitRule string

const (
	ExitPromoEnd     ExitRule = "PROMO_END"
	ExitGraceEnd     ExitRule = "GRACE_END"
	ExitFeeThreshold ExitRule = "FEE_THRESHOLD"
	ExitCustom       ExitRule = "CUSTOM"
)

// RefinanceObjective selects the optimization target for optimal-timing
// refinance evaluation.
type RefinanceObjective string

const (
	ObjectiveMaxNetSaving     RefinanceObjective = "MAX_NET_SAVING"
	ObjectiveFastestBreakEven RefinanceObjective = "FASTEST_BREAK_EVEN"
)

// MortgageInput is the numeric situation of a purchase borrower. Immutable
// per simulation request.
type MortgageInput struct {
	PropertyValueVND int64           `json:"property_value_vnd"`
	DownPaymentVND   int64           `json:"down_payment_vnd"`
	LoanAmountVND    int64           `json:"loan_amount_vnd"`
	TermMonths       int             `json:"term_months"`
	Method           RepaymentMethod `json:"repayment_method"`
	Insurance        bool            `json:"insurance"`
	// Stress bump applied to the borrower's main schedule, in percentage
	// points over the floating rate. The stress block always reports
	// +0/+2/+4 regardless of this selector.
	StressBumpPct float64 `json:"stress_bump_pct,omitempty"`

	MonthlyIncomeVND int64 `json:"monthly_income_vnd,omitempty"`

	// Strategy parameters.
	ExtraMonthlyVND     int64    `json:"extra_monthly_vnd,omitempty"`
	ExitRule            ExitRule `json:"exit_rule,omitempty"`
	ExitFeeThresholdPct float64  `json:"exit_fee_threshold_pct,omitempty"`
	ExitMonth           int      `json:"exit_month,omitempty"`
}

// OldLoan is a snapshot of the loan a refinance borrower currently holds.
type OldLoan struct {
	RemainingBalanceVND int64            `json:"remaining_balance_vnd"`
	RemainingTermMonths int              `json:"remaining_term_months"`
	AnnualRatePct       float64          `json:"annual_rate_pct"`
	Method              RepaymentMethod  `json:"repayment_method"`
	AgeMonths           int              `json:"age_months"`
	PrepaymentTiers     []PrepaymentTier `json:"prepayment_tiers"`
}

// RefinanceInput describes a refinance scenario: the old loan plus the
// parameters of the replacement loan.
type RefinanceInput struct {
	Old            OldLoan            `json:"old_loan"`
	NewTermMonths  int                `json:"new_term_months"`
	CashOutVND     int64              `json:"cash_out_vnd,omitempty"`
	RefinanceMonth int                `json:"refinance_month"`
	Objective      RefinanceObjective `json:"objective,omitempty"`

	MonthlyIncomeVND int64 `json:"monthly_income_vnd,omitempty"`
	Insurance        bool  `json:"insurance,omitempty"`
	ExtraMonthlyVND  int64 `json:"extra_monthly_vnd,omitempty"`
}

// IntentType is the borrower's declared priority when asking for a
// recommendation.
type IntentType string

const (
	IntentMinMonthly        IntentType = "MIN_MONTHLY"
	IntentEarlyPayoff       IntentType = "EARLY_PAYOFF"
	IntentOptimizeRefinance IntentType = "OPTIMIZE_REFINANCE"
)

// RepaymentIntent carries the intent tag and its parameters.
type RepaymentIntent struct {
	Type           IntentType `json:"type"`
	MaxMonthlyVND  int64      `json:"max_monthly_vnd,omitempty"`
	ExitAfterYears int        `json:"exit_after_years,omitempty"`
}

// LoanNeeds is the category-tagged numeric fact sheet of a recommend
// request. Exactly one of Mortgage or Refinance is set, matching Category.
type LoanNeeds struct {
	Category  Category        `json:"category"`
	Mortgage  *MortgageInput  `json:"mortgage,omitempty"`
	Refinance *RefinanceInput `json:"refinance,omitempty"`
}
