package domain

// Strategy tags the six closed repayment-strategy variants.
type Strategy string

const (
	StrategyMinPayment     Strategy = "M1_MIN_PAYMENT"
	StrategyExtraPrincipal Strategy = "M2_EXTRA_PRINCIPAL"
	StrategyExitPlan       Strategy = "M3_EXIT_PLAN"
	StrategyRefiLiquidity  Strategy = "R1_REFI_NOW_LIQUIDITY"
	StrategyRefiAccelerate Strategy = "R2_REFI_NOW_ACCELERATE"
	StrategyRefiOptimal    Strategy = "R3_OPTIMAL_TIMING"
)

// StrategiesFor returns the applicable strategy set for a template category,
// in evaluation order.
func StrategiesFor(c Category) []Strategy {
	switch c {
	case CategoryMortgage:
		return []Strategy{StrategyMinPayment, StrategyExtraPrincipal, StrategyExitPlan}
	case CategoryRefinance:
		return []Strategy{StrategyRefiLiquidity, StrategyRefiAccelerate, StrategyRefiOptimal}
	}
	return nil
}

// StressResult reports the first post-promo-and-post-grace monthly payment
// under each rate bump. Absent entirely when the loan is repaid before the
// floating period begins.
type StressResult struct {
	Month    int   `json:"month"`
	BaseVND  int64 `json:"base_vnd"`
	Plus2VND int64 `json:"plus2_vnd"`
	Plus4VND int64 `json:"plus4_vnd"`
}

// ExitSummary describes an early settlement: what was paid up to the exit
// month and what it costs to close the loan there.
type ExitSummary struct {
	ExitMonth           int   `json:"exit_month"`
	RemainingBalanceVND int64 `json:"remaining_balance_vnd"`
	PrepaymentFeeVND    int64 `json:"prepayment_fee_vnd"`
	InterestPaidVND     int64 `json:"interest_paid_vnd"`
	FeesPaidVND         int64 `json:"fees_paid_vnd"`
	// Remaining payoff + interest + fees + prepayment fee.
	TotalCostToExitVND int64 `json:"total_cost_to_exit_vnd"`
}

// RefinanceSummary carries the refinance-only comparative metrics.
// BreakEvenMonth is nil when cumulative savings never cover the switching
// cost within the horizon.
type RefinanceSummary struct {
	RefinanceMonth      int    `json:"refinance_month"`
	OldPrepaymentFeeVND int64  `json:"old_prepayment_fee_vnd"`
	SwitchingCostVND    int64  `json:"switching_cost_vnd"`
	NewPrincipalVND     int64  `json:"new_principal_vnd"`
	BreakEvenMonth      *int   `json:"break_even_month,omitempty"`
	NetSavingVND        int64  `json:"net_saving_vnd"`
	KeepOldCostVND      int64  `json:"keep_old_cost_vnd"`
	RefinanceCostVND    int64  `json:"refinance_cost_vnd"`
	OldPaymentVND       int64  `json:"old_payment_vnd"`
	NewFirstPaymentVND  int64  `json:"new_first_payment_vnd"`
}

// StrategyResult is one (template, strategy) evaluation.
type StrategyResult struct {
	TemplateID   string   `json:"template_id"`
	Bank         string   `json:"bank"`
	TemplateName string   `json:"template_name"`
	Strategy     Strategy `json:"strategy"`

	Schedule Schedule `json:"schedule"`

	TotalInterestVND  int64 `json:"total_interest_vnd"`
	TotalFeesVND      int64 `json:"total_fees_vnd"`
	TotalInsuranceVND int64 `json:"total_insurance_vnd"`
	// Interest + fees + insurance; principal excluded.
	TotalCostVND int64 `json:"total_cost_vnd"`
	PayoffMonth  int   `json:"payoff_month"`

	FirstPaymentVND int64   `json:"first_payment_vnd"`
	AvgFirst12VND   int64   `json:"avg_first_12_vnd"`
	Year1TotalVND   int64   `json:"year1_total_vnd"`
	APRPct          float64 `json:"apr_pct"`

	Stress    *StressResult     `json:"stress,omitempty"`
	Exit      *ExitSummary      `json:"exit,omitempty"`
	Refinance *RefinanceSummary `json:"refinance,omitempty"`
}

// MultiStrategyResult groups one template's evaluations in a simulate
// response.
type MultiStrategyResult struct {
	TemplateID   string           `json:"template_id"`
	Bank         string           `json:"bank"`
	TemplateName string           `json:"template_name"`
	Results      []StrategyResult `json:"results"`
}

// RejectedCandidate records why a (template, strategy) pair failed the
// borrower's hard constraints.
type RejectedCandidate struct {
	TemplateID string   `json:"template_id"`
	Strategy   Strategy `json:"strategy"`
	Reasons    []string `json:"reasons"`
}

// RecommendedPackage is the winning StrategyResult plus its ordered
// justification strings.
type RecommendedPackage struct {
	StrategyResult
	Explanations []string `json:"explanations"`
}

// Recommendation is the terminal outcome of a recommend request: either a
// best package or a defined no-candidate state with explanations. Optional
// pointer fields are omitted when not applicable to the category.
type Recommendation struct {
	RunID        string              `json:"run_id"`
	Best         *RecommendedPackage `json:"best,omitempty"`
	Explanations []string            `json:"explanations"`

	ShouldRefinance          *bool    `json:"should_refinance,omitempty"`
	CurrentMonthlyPaymentVND *int64   `json:"current_monthly_payment_vnd,omitempty"`
	RecommendedTermMonths    *int     `json:"recommended_term_months,omitempty"`
	RecommendedDTIPct        *float64 `json:"recommended_dti_pct,omitempty"`

	Rejected    []RejectedCandidate `json:"rejected,omitempty"`
	Assumptions []string            `json:"assumptions"`
}
