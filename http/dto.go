package http

import (
	"github.com/go-playground/validator/v10"

	"loan-advisor/domain"
	"loan-advisor/service"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// simulateRequest is the wire shape of POST /loan/simulate. Structural rules
// live in the validate tags; numeric domain rules belong to the engine.
type simulateRequest struct {
	Category    string                 `json:"category" validate:"required,oneof=MORTGAGE_RE REFINANCE"`
	TemplateIDs []string               `json:"template_ids" validate:"omitempty,dive,required"`
	Mortgage    *domain.MortgageInput  `json:"mortgage" validate:"required_if=Category MORTGAGE_RE"`
	Refinance   *domain.RefinanceInput `json:"refinance" validate:"required_if=Category REFINANCE"`
}

func (r simulateRequest) toService() service.SimulateRequest {
	return service.SimulateRequest{
		Category:    domain.Category(r.Category),
		TemplateIDs: r.TemplateIDs,
		Mortgage:    r.Mortgage,
		Refinance:   r.Refinance,
	}
}

// recommendRequest is the wire shape of POST /loan/recommend.
type recommendRequest struct {
	Category    string                 `json:"category" validate:"required,oneof=MORTGAGE_RE REFINANCE"`
	TemplateIDs []string               `json:"template_ids" validate:"omitempty,dive,required"`
	Mortgage    *domain.MortgageInput  `json:"mortgage" validate:"required_if=Category MORTGAGE_RE"`
	Refinance   *domain.RefinanceInput `json:"refinance" validate:"required_if=Category REFINANCE"`
	Intent      recommendIntent        `json:"intent" validate:"required"`
}

type recommendIntent struct {
	Type           string `json:"type" validate:"required,oneof=MIN_MONTHLY EARLY_PAYOFF OPTIMIZE_REFINANCE"`
	MaxMonthlyVND  int64  `json:"max_monthly_vnd" validate:"gte=0"`
	ExitAfterYears int    `json:"exit_after_years" validate:"gte=0"`
}

func (r recommendRequest) toService() service.RecommendRequest {
	return service.RecommendRequest{
		Needs: domain.LoanNeeds{
			Category:  domain.Category(r.Category),
			Mortgage:  r.Mortgage,
			Refinance: r.Refinance,
		},
		Intent: domain.RepaymentIntent{
			Type:           domain.IntentType(r.Intent.Type),
			MaxMonthlyVND:  r.Intent.MaxMonthlyVND,
			ExitAfterYears: r.Intent.ExitAfterYears,
		},
		TemplateIDs: r.TemplateIDs,
	}
}
