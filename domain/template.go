package domain

// Category classifies a product template by loan purpose.
type Category string

const (
	CategoryMortgage  Category = "MORTGAGE_RE"
	CategoryRefinance Category = "REFINANCE"
)

// PrepaymentTier is one step of a tiered early-settlement fee schedule.
// The range is [FromMonth, ToMonth); ToMonth == 0 marks the open-ended
// final tier. Tiers are ordered, contiguous and exhaustive; the template
// source validates that before the engine ever sees them.
type PrepaymentTier struct {
	FromMonth int     `json:"from_month"`
	ToMonth   int     `json:"to_month,omitempty"`
	FeePct    float64 `json:"fee_pct"`
}

// Contains reports whether ageMonths falls inside this tier.
func (t PrepaymentTier) Contains(ageMonths int) bool {
	if ageMonths < t.FromMonth {
		return false
	}
	return t.ToMonth == 0 || ageMonths < t.ToMonth
}

// FeeSchedule holds a product's one-time and recurring fees.
type FeeSchedule struct {
	OriginationPct    float64 `json:"origination_pct"`
	OriginationMinVND int64   `json:"origination_min_vnd,omitempty"`
	OriginationMaxVND int64   `json:"origination_max_vnd,omitempty"`
	AppraisalVND      int64   `json:"appraisal_vnd,omitempty"`
	// Annual insurance premium as a percentage of the outstanding balance,
	// charged monthly when the borrower opts in.
	InsuranceAnnualPct float64 `json:"insurance_annual_pct,omitempty"`
}

// ProductTemplate is an immutable catalog entry describing one lender
// product. The engine only ever reads templates; built-ins come from the
// seeded catalog and customs from the external override store.
type ProductTemplate struct {
	ID       string   `json:"id"`
	Bank     string   `json:"bank"`
	Name     string   `json:"name"`
	Category Category `json:"category"`

	PromoRatePct float64 `json:"promo_rate_pct"`
	PromoMonths  int     `json:"promo_months"`
	// Floating rate = ReferenceRatePct + FloatingMarginPct. The reference
	// rate is a static snapshot supplied with the template, not a live feed.
	ReferenceRatePct  float64 `json:"reference_rate_pct"`
	FloatingMarginPct float64 `json:"floating_margin_pct"`

	GraceMonths   int     `json:"grace_months"`
	MaxLTVPct     float64 `json:"max_ltv_pct"`
	MinTermMonths int     `json:"min_term_months"`
	MaxTermMonths int     `json:"max_term_months"`

	Fees            FeeSchedule      `json:"fees"`
	PrepaymentTiers []PrepaymentTier `json:"prepayment_tiers"`

	Custom bool `json:"custom,omitempty"`
}

// FloatingRatePct returns the post-promo annual rate before any stress bump.
func (t ProductTemplate) FloatingRatePct() float64 {
	return t.ReferenceRatePct + t.FloatingMarginPct
}
