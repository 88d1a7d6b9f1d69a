package service

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"loan-advisor/domain"
	"loan-advisor/repository"
)

// SimulationService fans a borrower situation out across the product catalog
// and every applicable strategy variant.
type SimulationService struct {
	catalog *repository.Catalog
	logger  *slog.Logger
}

func NewSimulationService(catalog *repository.Catalog, logger *slog.Logger) *SimulationService {
	return &SimulationService{catalog: catalog, logger: logger}
}

// SimulateRequest selects a category, optionally narrows the template set,
// and carries the matching borrower input.
type SimulateRequest struct {
	Category    domain.Category        `json:"category"`
	TemplateIDs []string               `json:"template_ids,omitempty"`
	Mortgage    *domain.MortgageInput  `json:"mortgage,omitempty"`
	Refinance   *domain.RefinanceInput `json:"refinance,omitempty"`
}

type SimulateResponse struct {
	RunID string `json:"run_id"`
	// Echoes the request category so clients can dispatch on the result
	// shape without re-reading their own request.
	Category domain.Category              `json:"type"`
	Results  []domain.MultiStrategyResult `json:"results"`
	Count    int                          `json:"count"`
}

type evalPair struct {
	tpl      domain.ProductTemplate
	strategy domain.Strategy
}

// Simulate evaluates every (template, strategy) pair concurrently. Results
// come back in catalog order with strategies in their declared order, so
// identical requests produce identical responses.
func (s *SimulationService) Simulate(ctx context.Context, req SimulateRequest) (SimulateResponse, error) {
	start := time.Now()

	switch req.Category {
	case domain.CategoryMortgage:
		if req.Mortgage == nil {
			return SimulateResponse{}, domain.Invalid("mortgage", domain.ErrCategoryMismatch)
		}
	case domain.CategoryRefinance:
		if req.Refinance == nil {
			return SimulateResponse{}, domain.Invalid("refinance", domain.ErrCategoryMismatch)
		}
	default:
		return SimulateResponse{}, domain.Invalid("category", domain.ErrCategoryMismatch)
	}

	templates := s.selectTemplates(ctx, req.Category, req.TemplateIDs)
	pairs := s.buildPairs(templates, req)

	results := make([]domain.StrategyResult, len(pairs))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, p := range pairs {
		g.Go(func() error {
			var err error
			if req.Category == domain.CategoryMortgage {
				results[i], err = EvaluateMortgageStrategy(p.tpl, p.strategy, *req.Mortgage)
			} else {
				results[i], err = EvaluateRefinanceStrategy(p.tpl, p.strategy, *req.Refinance)
			}
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return SimulateResponse{}, err
	}

	grouped := groupByTemplate(pairs, results)
	resp := SimulateResponse{
		RunID:    uuid.NewString(),
		Category: req.Category,
		Results:  grouped,
		Count:    len(results),
	}

	s.logger.Info("simulation complete",
		"run_id", resp.RunID,
		"category", req.Category,
		"templates", len(grouped),
		"evaluations", len(results),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return resp, nil
}

// selectTemplates filters the catalog snapshot by category and, when IDs are
// given, by the requested subset. Unknown IDs are skipped with a warning
// rather than failing the run.
func (s *SimulationService) selectTemplates(ctx context.Context, category domain.Category, ids []string) []domain.ProductTemplate {
	snapshot := s.catalog.Snapshot(ctx)

	var wanted map[string]bool
	if len(ids) > 0 {
		wanted = make(map[string]bool, len(ids))
		for _, id := range ids {
			wanted[id] = true
		}
	}

	var out []domain.ProductTemplate
	for _, tpl := range snapshot {
		if tpl.Category != category {
			continue
		}
		if wanted != nil && !wanted[tpl.ID] {
			continue
		}
		if wanted != nil {
			delete(wanted, tpl.ID)
		}
		out = append(out, tpl)
	}
	for id := range wanted {
		s.logger.Warn("skipping unknown or mismatched template", "template_id", id, "category", category)
	}
	return out
}

// buildPairs expands templates into evaluations, dropping strategy variants
// whose parameters are absent from the request.
func (s *SimulationService) buildPairs(templates []domain.ProductTemplate, req SimulateRequest) []evalPair {
	var pairs []evalPair
	for _, tpl := range templates {
		for _, strategy := range domain.StrategiesFor(req.Category) {
			switch strategy {
			case domain.StrategyExtraPrincipal:
				if req.Mortgage.ExtraMonthlyVND <= 0 {
					continue
				}
			case domain.StrategyExitPlan:
				if req.Mortgage.ExitRule == "" {
					continue
				}
			case domain.StrategyRefiAccelerate:
				if req.Refinance.ExtraMonthlyVND <= 0 {
					continue
				}
			}
			pairs = append(pairs, evalPair{tpl: tpl, strategy: strategy})
		}
	}
	return pairs
}

func groupByTemplate(pairs []evalPair, results []domain.StrategyResult) []domain.MultiStrategyResult {
	var grouped []domain.MultiStrategyResult
	for i, p := range pairs {
		if len(grouped) == 0 || grouped[len(grouped)-1].TemplateID != p.tpl.ID {
			grouped = append(grouped, domain.MultiStrategyResult{
				TemplateID:   p.tpl.ID,
				Bank:         p.tpl.Bank,
				TemplateName: p.tpl.Name,
			})
		}
		grouped[len(grouped)-1].Results = append(grouped[len(grouped)-1].Results, results[i])
	}
	return grouped
}
