package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-advisor/domain"
	"loan-advisor/repository"
)

func testSimulationService(t *testing.T) *SimulationService {
	t.Helper()
	catalog := repository.NewCatalog(repository.NewMemoryOverrideStore(), testLogger())
	return NewSimulationService(catalog, testLogger())
}

func TestSimulate_MortgageAcrossCatalog(t *testing.T) {
	svc := testSimulationService(t)
	in := testMortgageInput()

	resp, err := svc.Simulate(context.Background(), SimulateRequest{
		Category: domain.CategoryMortgage,
		Mortgage: &in,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.RunID)
	assert.NotEmpty(t, resp.Results)

	// Catalog order is sorted by template ID.
	for i := 1; i < len(resp.Results); i++ {
		assert.Less(t, resp.Results[i-1].TemplateID, resp.Results[i].TemplateID)
	}
	// No extra budget and no exit rule: only the straight strategy runs.
	for _, group := range resp.Results {
		require.Len(t, group.Results, 1, "template %s", group.TemplateID)
		assert.Equal(t, domain.StrategyMinPayment, group.Results[0].Strategy)
	}
	assert.Equal(t, len(resp.Results), resp.Count)
}

func TestSimulate_OptionalStrategiesJoinWhenParameterized(t *testing.T) {
	svc := testSimulationService(t)
	in := testMortgageInput()
	in.ExtraMonthlyVND = 5_000_000
	in.ExitRule = domain.ExitPromoEnd

	resp, err := svc.Simulate(context.Background(), SimulateRequest{
		Category:    domain.CategoryMortgage,
		TemplateIDs: []string{"tcb-home-fast"},
		Mortgage:    &in,
	})
	require.NoError(t, err)

	require.Len(t, resp.Results, 1)
	strategies := make([]domain.Strategy, 0, 3)
	for _, r := range resp.Results[0].Results {
		strategies = append(strategies, r.Strategy)
	}
	assert.Equal(t, []domain.Strategy{
		domain.StrategyMinPayment,
		domain.StrategyExtraPrincipal,
		domain.StrategyExitPlan,
	}, strategies)
}

func TestSimulate_DeterministicApartFromRunID(t *testing.T) {
	svc := testSimulationService(t)
	in := testRefiInput()
	req := SimulateRequest{
		Category:  domain.CategoryRefinance,
		Refinance: &in,
	}

	first, err := svc.Simulate(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.Simulate(context.Background(), req)
	require.NoError(t, err)

	assert.NotEqual(t, first.RunID, second.RunID)
	first.RunID, second.RunID = "", ""
	assert.Equal(t, first, second)
}

func TestSimulate_UnknownTemplateSkipped(t *testing.T) {
	svc := testSimulationService(t)
	in := testMortgageInput()

	resp, err := svc.Simulate(context.Background(), SimulateRequest{
		Category:    domain.CategoryMortgage,
		TemplateIDs: []string{"no-such-product"},
		Mortgage:    &in,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Results)
	assert.Zero(t, resp.Count)
}

func TestSimulate_InputMissingForCategory(t *testing.T) {
	svc := testSimulationService(t)

	_, err := svc.Simulate(context.Background(), SimulateRequest{
		Category: domain.CategoryMortgage,
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestSimulate_ValidationErrorFailsRun(t *testing.T) {
	svc := testSimulationService(t)
	in := testMortgageInput()
	in.Method = "balloon"

	_, err := svc.Simulate(context.Background(), SimulateRequest{
		Category: domain.CategoryMortgage,
		Mortgage: &in,
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}
