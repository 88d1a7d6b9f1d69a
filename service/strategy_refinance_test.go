package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-advisor/domain"
)

func TestEvaluateRefinanceStrategy_RefiNow(t *testing.T) {
	tpl := testRefiTemplate()
	in := testRefiInput()

	res, err := EvaluateRefinanceStrategy(tpl, domain.StrategyRefiLiquidity, in)
	require.NoError(t, err)

	r := res.Refinance
	require.NotNil(t, r)
	assert.Equal(t, 0, r.RefinanceMonth)
	assert.Equal(t, int64(1_500_000_000), r.NewPrincipalVND)

	// Old loan age 24 sits in the 2% tier: 30 million on 1.5 billion.
	assert.Equal(t, int64(30_000_000), r.OldPrepaymentFeeVND)
	assert.Equal(t, r.OldPrepaymentFeeVND+originationFeeVND(r.NewPrincipalVND, tpl.Fees), r.SwitchingCostVND)
	assert.Equal(t, r.KeepOldCostVND-r.RefinanceCostVND, r.NetSavingVND)

	// 11% down to a 6.3% promo is a large monthly drop; the switch pays for
	// itself and breaks even within the new term.
	assert.Greater(t, r.NetSavingVND, int64(0))
	require.NotNil(t, r.BreakEvenMonth)
	assert.GreaterOrEqual(t, *r.BreakEvenMonth, 1)
	assert.Less(t, r.NewFirstPaymentVND, r.OldPaymentVND)

	require.NotNil(t, res.Stress)
	assert.Equal(t, 13, res.Stress.Month)
	assert.LessOrEqual(t, res.Stress.BaseVND, res.Stress.Plus2VND)
}

func TestEvaluateRefinanceStrategy_CashOutRaisesPrincipal(t *testing.T) {
	tpl := testRefiTemplate()
	in := testRefiInput()
	in.CashOutVND = 200_000_000

	res, err := EvaluateRefinanceStrategy(tpl, domain.StrategyRefiLiquidity, in)
	require.NoError(t, err)
	assert.Equal(t, int64(1_700_000_000), res.Refinance.NewPrincipalVND)
}

func TestEvaluateRefinanceStrategy_DeferredSwitchKeepsOldRows(t *testing.T) {
	tpl := testRefiTemplate()
	in := testRefiInput()
	in.RefinanceMonth = 6

	res, err := EvaluateRefinanceStrategy(tpl, domain.StrategyRefiLiquidity, in)
	require.NoError(t, err)

	assert.Equal(t, 6, res.Refinance.RefinanceMonth)
	require.Greater(t, len(res.Schedule.Rows), 6)
	// The combined schedule runs the old loan first, months numbered
	// continuously across the switch.
	for i, row := range res.Schedule.Rows {
		assert.Equal(t, i+1, row.Month)
	}
	// Six payments on the old loan shrink the balance to settle.
	assert.Less(t, res.Refinance.NewPrincipalVND, int64(1_500_000_000))
}

func TestEvaluateRefinanceStrategy_AccelerateBeatsPlainSwitch(t *testing.T) {
	tpl := testRefiTemplate()
	in := testRefiInput()
	in.ExtraMonthlyVND = 10_000_000

	plain, err := EvaluateRefinanceStrategy(tpl, domain.StrategyRefiLiquidity, in)
	require.NoError(t, err)
	accel, err := EvaluateRefinanceStrategy(tpl, domain.StrategyRefiAccelerate, in)
	require.NoError(t, err)

	assert.Less(t, accel.PayoffMonth, plain.PayoffMonth)
	assert.Less(t, accel.TotalInterestVND, plain.TotalInterestVND)
}

func TestEvaluateRefinanceStrategy_OptimalTimingBeatsFixedMonths(t *testing.T) {
	tpl := testRefiTemplate()
	in := testRefiInput()

	optimal, err := EvaluateRefinanceStrategy(tpl, domain.StrategyRefiOptimal, in)
	require.NoError(t, err)
	assert.Equal(t, domain.StrategyRefiOptimal, optimal.Strategy)

	for _, k := range []int{0, 6, 12, 24} {
		fixed := in
		fixed.RefinanceMonth = k
		res, err := EvaluateRefinanceStrategy(tpl, domain.StrategyRefiLiquidity, fixed)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, optimal.Refinance.NetSavingVND, res.Refinance.NetSavingVND, "k=%d", k)
	}
}

func TestEvaluateRefinanceStrategy_FastestBreakEvenObjective(t *testing.T) {
	tpl := testRefiTemplate()
	in := testRefiInput()
	in.Objective = domain.ObjectiveFastestBreakEven

	optimal, err := EvaluateRefinanceStrategy(tpl, domain.StrategyRefiOptimal, in)
	require.NoError(t, err)
	require.NotNil(t, optimal.Refinance.BreakEvenMonth)

	// No fixed switch month can break even faster than the optimum.
	now := in
	now.Objective = ""
	now.RefinanceMonth = 0
	atZero, err := EvaluateRefinanceStrategy(tpl, domain.StrategyRefiLiquidity, now)
	require.NoError(t, err)
	if atZero.Refinance.BreakEvenMonth != nil {
		assert.LessOrEqual(t, *optimal.Refinance.BreakEvenMonth, *atZero.Refinance.BreakEvenMonth)
	}
}

func TestEvaluateRefinanceStrategy_NoBreakEvenOnWorseRate(t *testing.T) {
	tpl := testRefiTemplate()
	in := testRefiInput()
	in.Old.AnnualRatePct = 5.0 // already cheaper than the new product

	res, err := EvaluateRefinanceStrategy(tpl, domain.StrategyRefiLiquidity, in)
	require.NoError(t, err)

	r := res.Refinance
	require.NotNil(t, r)
	assert.Nil(t, r.BreakEvenMonth)
	assert.Less(t, r.NetSavingVND, int64(0))
}

func TestEvaluateRefinanceStrategy_BreakEvenTracksSwitchingCost(t *testing.T) {
	tpl := testRefiTemplate()

	dear := testRefiInput()
	cheap := testRefiInput()
	cheap.Old.PrepaymentTiers = []domain.PrepaymentTier{
		{FromMonth: 1, FeePct: 0},
	}

	dearRes, err := EvaluateRefinanceStrategy(tpl, domain.StrategyRefiLiquidity, dear)
	require.NoError(t, err)
	cheapRes, err := EvaluateRefinanceStrategy(tpl, domain.StrategyRefiLiquidity, cheap)
	require.NoError(t, err)

	assert.Less(t, cheapRes.Refinance.SwitchingCostVND, dearRes.Refinance.SwitchingCostVND)

	// A cheaper switch can never take longer to pay for itself.
	require.NotNil(t, cheapRes.Refinance.BreakEvenMonth)
	require.NotNil(t, dearRes.Refinance.BreakEvenMonth)
	assert.LessOrEqual(t, *cheapRes.Refinance.BreakEvenMonth, *dearRes.Refinance.BreakEvenMonth)
}

func TestEvaluateRefinanceStrategy_Deterministic(t *testing.T) {
	tpl := testRefiTemplate()
	in := testRefiInput()

	first, err := EvaluateRefinanceStrategy(tpl, domain.StrategyRefiOptimal, in)
	require.NoError(t, err)
	second, err := EvaluateRefinanceStrategy(tpl, domain.StrategyRefiOptimal, in)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEvaluateRefinanceStrategy_RefiMonthOutOfRange(t *testing.T) {
	tpl := testRefiTemplate()
	in := testRefiInput()
	in.RefinanceMonth = 120 // equals the old loan's remaining term

	_, err := EvaluateRefinanceStrategy(tpl, domain.StrategyRefiLiquidity, in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidRefiMonth))
}

func TestEvaluateRefinanceStrategy_CategoryMismatch(t *testing.T) {
	_, err := EvaluateRefinanceStrategy(testMortgageTemplate(), domain.StrategyRefiLiquidity, testRefiInput())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCategoryMismatch))
}
