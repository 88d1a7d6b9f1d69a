package repository

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"loan-advisor/domain"
)

// OverrideStore holds operator-supplied custom product templates. Custom
// templates shadow built-ins with the same ID.
type OverrideStore interface {
	List(ctx context.Context) ([]domain.ProductTemplate, error)
	Put(ctx context.Context, tpl domain.ProductTemplate) error
	Delete(ctx context.Context, id string) error
}

// Catalog merges the seeded built-in templates with the override store.
type Catalog struct {
	builtin   []domain.ProductTemplate
	overrides OverrideStore
	logger    *slog.Logger
}

// NewCatalog creates a catalog over the built-in products. overrides may be
// nil when no external store is configured.
func NewCatalog(overrides OverrideStore, logger *slog.Logger) *Catalog {
	return &Catalog{
		builtin:   BuiltinTemplates(),
		overrides: overrides,
		logger:    logger,
	}
}

// Snapshot returns the merged catalog sorted by template ID. If the override
// store is unreachable the built-ins are served alone; a degraded catalog
// beats a failed request.
func (c *Catalog) Snapshot(ctx context.Context) []domain.ProductTemplate {
	merged := make(map[string]domain.ProductTemplate, len(c.builtin))
	for _, tpl := range c.builtin {
		merged[tpl.ID] = tpl
	}

	if c.overrides != nil {
		customs, err := c.overrides.List(ctx)
		if err != nil {
			c.logger.Warn("override store unavailable, serving built-in templates only", "error", err)
		}
		for _, tpl := range customs {
			if err := ValidateTemplate(tpl); err != nil {
				c.logger.Warn("skipping invalid custom template", "template_id", tpl.ID, "error", err)
				continue
			}
			tpl.Custom = true
			merged[tpl.ID] = tpl
		}
	}

	out := make([]domain.ProductTemplate, 0, len(merged))
	for _, tpl := range merged {
		out = append(out, tpl)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Get looks up a single template by ID in the merged catalog.
func (c *Catalog) Get(ctx context.Context, id string) (domain.ProductTemplate, bool) {
	for _, tpl := range c.Snapshot(ctx) {
		if tpl.ID == id {
			return tpl, true
		}
	}
	return domain.ProductTemplate{}, false
}

// ValidateTemplate checks the structural invariants the engine relies on,
// in particular that prepayment tiers are ordered, contiguous from month 1
// and end with a single zero-fee open-ended tier.
func ValidateTemplate(tpl domain.ProductTemplate) error {
	if tpl.ID == "" {
		return fmt.Errorf("template id is required")
	}
	if tpl.Category != domain.CategoryMortgage && tpl.Category != domain.CategoryRefinance {
		return fmt.Errorf("template %s: unknown category %q", tpl.ID, tpl.Category)
	}
	if tpl.PromoMonths < 0 || tpl.GraceMonths < 0 {
		return fmt.Errorf("template %s: negative promo or grace months", tpl.ID)
	}
	if tpl.PromoRatePct < 0 || tpl.ReferenceRatePct < 0 || tpl.FloatingMarginPct < 0 {
		return fmt.Errorf("template %s: negative rate component", tpl.ID)
	}
	if tpl.MinTermMonths > 0 && tpl.MaxTermMonths > 0 && tpl.MinTermMonths > tpl.MaxTermMonths {
		return fmt.Errorf("template %s: min term %d exceeds max term %d", tpl.ID, tpl.MinTermMonths, tpl.MaxTermMonths)
	}
	if len(tpl.PrepaymentTiers) == 0 {
		return nil
	}
	next := 1
	for i, tier := range tpl.PrepaymentTiers {
		if tier.FromMonth != next {
			return fmt.Errorf("template %s: prepayment tier %d starts at month %d, want %d", tpl.ID, i, tier.FromMonth, next)
		}
		if tier.FeePct < 0 {
			return fmt.Errorf("template %s: prepayment tier %d has negative fee", tpl.ID, i)
		}
		last := i == len(tpl.PrepaymentTiers)-1
		if tier.ToMonth == 0 {
			if !last {
				return fmt.Errorf("template %s: open-ended prepayment tier %d is not last", tpl.ID, i)
			}
			if tier.FeePct != 0 {
				return fmt.Errorf("template %s: final open-ended prepayment tier must be fee-free", tpl.ID)
			}
			return nil
		}
		if tier.ToMonth <= tier.FromMonth {
			return fmt.Errorf("template %s: prepayment tier %d is empty", tpl.ID, i)
		}
		if last {
			return fmt.Errorf("template %s: last prepayment tier must be open-ended", tpl.ID)
		}
		next = tier.ToMonth
	}
	return nil
}
