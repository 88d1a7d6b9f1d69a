package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"loan-advisor/domain"
	"loan-advisor/repository"
)

// Hard-filter reason codes, stable across releases so clients can key on
// them.
const (
	ReasonPaymentOverBudget = "PAYMENT_OVER_BUDGET"
	ReasonDSRExceedsMax     = "DSR_EXCEEDS_MAX"
	ReasonLTVExceedsMax     = "LTV_EXCEEDS_MAX"
)

// RecommendationService evaluates the catalog against a borrower's declared
// intent, filters candidates on hard constraints and explains its pick.
type RecommendationService struct {
	catalog   *repository.Catalog
	maxDSRPct float64
	logger    *slog.Logger
}

func NewRecommendationService(catalog *repository.Catalog, maxDSRPct float64, logger *slog.Logger) *RecommendationService {
	if maxDSRPct <= 0 {
		maxDSRPct = DefaultMaxDSRPct
	}
	return &RecommendationService{catalog: catalog, maxDSRPct: maxDSRPct, logger: logger}
}

type RecommendRequest struct {
	Needs       domain.LoanNeeds       `json:"needs"`
	Intent      domain.RepaymentIntent `json:"intent"`
	TemplateIDs []string               `json:"template_ids,omitempty"`
}

// Recommend produces either a best package or a defined no-candidate outcome
// with the rejection reasons spelled out. Never an empty response.
func (s *RecommendationService) Recommend(ctx context.Context, req RecommendRequest) (domain.Recommendation, error) {
	switch req.Intent.Type {
	case domain.IntentMinMonthly, domain.IntentEarlyPayoff:
		if req.Needs.Category != domain.CategoryMortgage || req.Needs.Mortgage == nil {
			return domain.Recommendation{}, domain.Invalid("needs", domain.ErrCategoryMismatch)
		}
	case domain.IntentOptimizeRefinance:
		if req.Needs.Category != domain.CategoryRefinance || req.Needs.Refinance == nil {
			return domain.Recommendation{}, domain.Invalid("needs", domain.ErrCategoryMismatch)
		}
	default:
		return domain.Recommendation{}, domain.Invalid("intent", domain.ErrInvalidObjective)
	}

	candidates, rejected, err := s.evaluate(ctx, req)
	if err != nil {
		return domain.Recommendation{}, err
	}

	rec := domain.Recommendation{
		RunID:       uuid.NewString(),
		Rejected:    rejected,
		Assumptions: s.assumptions(),
	}
	s.fillBorrowerContext(&rec, req)

	if len(candidates) == 0 {
		rec.Explanations = noCandidateExplanations(req, rejected)
		if req.Intent.Type == domain.IntentOptimizeRefinance {
			no := false
			rec.ShouldRefinance = &no
		}
		s.logger.Info("recommendation produced no candidate",
			"intent", req.Intent.Type, "rejected", len(rejected))
		return rec, nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return betterCandidate(req.Intent.Type, candidates[i], candidates[j])
	})
	best := candidates[0]

	rec.Best = &domain.RecommendedPackage{
		StrategyResult: best,
		Explanations:   s.explain(req, best),
	}
	rec.Explanations = rec.Best.Explanations
	if req.Intent.Type == domain.IntentOptimizeRefinance {
		worth := best.Refinance != nil && best.Refinance.NetSavingVND > 0
		rec.ShouldRefinance = &worth
	}
	if income := borrowerIncome(req); income > 0 {
		dti := float64(best.FirstPaymentVND) / float64(income) * 100
		rec.RecommendedDTIPct = &dti
	}

	s.logger.Info("recommendation selected",
		"intent", req.Intent.Type,
		"template_id", best.TemplateID,
		"strategy", best.Strategy,
		"rejected", len(rejected),
	)
	return rec, nil
}

// evaluate runs the intent's strategy set over the catalog and splits the
// outcomes into survivors and hard-filter rejections.
func (s *RecommendationService) evaluate(ctx context.Context, req RecommendRequest) ([]domain.StrategyResult, []domain.RejectedCandidate, error) {
	var (
		candidates []domain.StrategyResult
		rejected   []domain.RejectedCandidate
	)
	for _, tpl := range s.candidateTemplates(ctx, req) {
		result, err := s.evaluateOne(tpl, req)
		if err != nil {
			// Per-template validation failures (term bounds, LTV cap) drop
			// the template, they do not fail the whole request.
			if domain.IsValidation(err) {
				reason := err.Error()
				if errors.Is(err, domain.ErrLTVExceeded) {
					reason = ReasonLTVExceedsMax + ": " + reason
				}
				rejected = append(rejected, domain.RejectedCandidate{
					TemplateID: tpl.ID,
					Strategy:   intentStrategy(req.Intent.Type),
					Reasons:    []string{reason},
				})
				continue
			}
			return nil, nil, err
		}

		if reasons := s.hardFilterReasons(req, result); len(reasons) > 0 {
			rejected = append(rejected, domain.RejectedCandidate{
				TemplateID: result.TemplateID,
				Strategy:   result.Strategy,
				Reasons:    reasons,
			})
			continue
		}
		candidates = append(candidates, result)
	}
	return candidates, rejected, nil
}

func (s *RecommendationService) candidateTemplates(ctx context.Context, req RecommendRequest) []domain.ProductTemplate {
	var wanted map[string]bool
	if len(req.TemplateIDs) > 0 {
		wanted = make(map[string]bool, len(req.TemplateIDs))
		for _, id := range req.TemplateIDs {
			wanted[id] = true
		}
	}
	var out []domain.ProductTemplate
	for _, tpl := range s.catalog.Snapshot(ctx) {
		if tpl.Category != req.Needs.Category {
			continue
		}
		if wanted != nil && !wanted[tpl.ID] {
			continue
		}
		out = append(out, tpl)
	}
	return out
}

func (s *RecommendationService) evaluateOne(tpl domain.ProductTemplate, req RecommendRequest) (domain.StrategyResult, error) {
	switch req.Intent.Type {
	case domain.IntentMinMonthly:
		return EvaluateMortgageStrategy(tpl, domain.StrategyMinPayment, *req.Needs.Mortgage)
	case domain.IntentEarlyPayoff:
		in := *req.Needs.Mortgage
		in.ExitRule = domain.ExitCustom
		in.ExitMonth = req.Intent.ExitAfterYears * 12
		return EvaluateMortgageStrategy(tpl, domain.StrategyExitPlan, in)
	default: // OPTIMIZE_REFINANCE
		return EvaluateRefinanceStrategy(tpl, domain.StrategyRefiOptimal, *req.Needs.Refinance)
	}
}

func intentStrategy(t domain.IntentType) domain.Strategy {
	switch t {
	case domain.IntentMinMonthly:
		return domain.StrategyMinPayment
	case domain.IntentEarlyPayoff:
		return domain.StrategyExitPlan
	}
	return domain.StrategyRefiOptimal
}

func (s *RecommendationService) hardFilterReasons(req RecommendRequest, result domain.StrategyResult) []string {
	var reasons []string
	if budget := req.Intent.MaxMonthlyVND; budget > 0 && result.FirstPaymentVND > budget {
		reasons = append(reasons, fmt.Sprintf(
			"%s: first payment %d VND exceeds the %d VND budget",
			ReasonPaymentOverBudget, result.FirstPaymentVND, budget))
	}
	if income := borrowerIncome(req); income > 0 {
		dsr := float64(result.FirstPaymentVND) / float64(income) * 100
		if dsr > s.maxDSRPct {
			reasons = append(reasons, fmt.Sprintf(
				"%s: debt service ratio %.1f%% exceeds the %.1f%% ceiling",
				ReasonDSRExceedsMax, dsr, s.maxDSRPct))
		}
	}
	return reasons
}

// betterCandidate is the intent-specific ranking. Ties fall through to total
// cost and finally template ID so the ordering is total.
func betterCandidate(intent domain.IntentType, a, b domain.StrategyResult) bool {
	switch intent {
	case domain.IntentMinMonthly:
		if a.AvgFirst12VND != b.AvgFirst12VND {
			return a.AvgFirst12VND < b.AvgFirst12VND
		}
	case domain.IntentEarlyPayoff:
		ac, bc := a.Exit.TotalCostToExitVND, b.Exit.TotalCostToExitVND
		if ac != bc {
			return ac < bc
		}
	case domain.IntentOptimizeRefinance:
		if a.Refinance.NetSavingVND != b.Refinance.NetSavingVND {
			return a.Refinance.NetSavingVND > b.Refinance.NetSavingVND
		}
		ab, bb := a.Refinance.BreakEvenMonth, b.Refinance.BreakEvenMonth
		switch {
		case ab != nil && bb == nil:
			return true
		case ab == nil && bb != nil:
			return false
		case ab != nil && bb != nil && *ab != *bb:
			return *ab < *bb
		}
	}
	if a.TotalCostVND != b.TotalCostVND {
		return a.TotalCostVND < b.TotalCostVND
	}
	return a.TemplateID < b.TemplateID
}

func (s *RecommendationService) explain(req RecommendRequest, best domain.StrategyResult) []string {
	var out []string
	switch req.Intent.Type {
	case domain.IntentMinMonthly:
		out = append(out, fmt.Sprintf(
			"%s (%s) has the lowest average payment over the first 12 months: %d VND",
			best.TemplateName, best.Bank, best.AvgFirst12VND))
	case domain.IntentEarlyPayoff:
		out = append(out, fmt.Sprintf(
			"%s (%s) is the cheapest to settle at month %d: %d VND total including a %d VND prepayment fee",
			best.TemplateName, best.Bank, best.Exit.ExitMonth,
			best.Exit.TotalCostToExitVND, best.Exit.PrepaymentFeeVND))
	case domain.IntentOptimizeRefinance:
		r := best.Refinance
		if r.NetSavingVND > 0 {
			out = append(out, fmt.Sprintf(
				"refinancing to %s (%s) at month %d saves %d VND net of %d VND switching costs",
				best.TemplateName, best.Bank, r.RefinanceMonth, r.NetSavingVND, r.SwitchingCostVND))
		} else {
			out = append(out, fmt.Sprintf(
				"refinancing to %s (%s) never recovers its %d VND switching costs; keeping the current loan is cheaper",
				best.TemplateName, best.Bank, r.SwitchingCostVND))
		}
		if r.BreakEvenMonth != nil {
			out = append(out, fmt.Sprintf("break-even at month %d of the new loan", *r.BreakEvenMonth))
		} else {
			out = append(out, "cumulative savings never cover the switching cost within the new term")
		}
	}
	if best.Stress != nil {
		out = append(out, fmt.Sprintf(
			"warning: payment rises to %d VND in month %d under a +4%% rate shock (base %d VND)",
			best.Stress.Plus4VND, best.Stress.Month, best.Stress.BaseVND))
	}
	out = append(out, fmt.Sprintf("effective APR including upfront fees: %.2f%%", best.APRPct))
	return out
}

func noCandidateExplanations(req RecommendRequest, rejected []domain.RejectedCandidate) []string {
	out := []string{"no product satisfies the stated constraints"}
	if budget := req.Intent.MaxMonthlyVND; budget > 0 {
		out = append(out, fmt.Sprintf("every candidate's first payment exceeds the %d VND monthly budget or another hard limit", budget))
	}
	if len(rejected) > 0 {
		out = append(out, fmt.Sprintf("%d candidates were rejected; see the rejected list for per-product reasons", len(rejected)))
	}
	return out
}

// fillBorrowerContext sets the optional fields that describe the borrower's
// position independent of which candidate wins.
func (s *RecommendationService) fillBorrowerContext(rec *domain.Recommendation, req RecommendRequest) {
	switch req.Needs.Category {
	case domain.CategoryMortgage:
		term := req.Needs.Mortgage.TermMonths
		rec.RecommendedTermMonths = &term
	case domain.CategoryRefinance:
		term := req.Needs.Refinance.NewTermMonths
		rec.RecommendedTermMonths = &term
		if oldSched, err := oldLoanSchedule(req.Needs.Refinance.Old); err == nil && len(oldSched.Rows) > 0 {
			current := oldSched.Rows[0].PaymentVND
			rec.CurrentMonthlyPaymentVND = &current
		}
	}
}

func borrowerIncome(req RecommendRequest) int64 {
	if req.Needs.Mortgage != nil {
		return req.Needs.Mortgage.MonthlyIncomeVND
	}
	if req.Needs.Refinance != nil {
		return req.Needs.Refinance.MonthlyIncomeVND
	}
	return 0
}

func (s *RecommendationService) assumptions() []string {
	return []string{
		"reference rates are a static snapshot taken when the catalog was seeded, not a live feed",
		"interest compounds monthly on the outstanding balance",
		"only the fees stated in each product template are included",
		fmt.Sprintf("debt service ratio ceiling is %.0f%% of declared monthly income", s.maxDSRPct),
	}
}
