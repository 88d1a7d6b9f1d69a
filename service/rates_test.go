package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-advisor/domain"
)

func TestResolveRateSchedule_PromoThenFloating(t *testing.T) {
	tpl := domain.ProductTemplate{
		PromoRatePct:      6.5,
		PromoMonths:       12,
		ReferenceRatePct:  6.0,
		FloatingMarginPct: 3.5,
	}

	rates := ResolveRateSchedule(tpl, 24, 0)
	require.Len(t, rates, 24)

	for m := 0; m < 12; m++ {
		assert.Equal(t, 6.5, rates[m], "month %d", m+1)
	}
	for m := 12; m < 24; m++ {
		assert.Equal(t, 9.5, rates[m], "month %d", m+1)
	}
}

func TestResolveRateSchedule_BumpSkipsPromoWindow(t *testing.T) {
	tpl := domain.ProductTemplate{
		PromoRatePct:      6.0,
		PromoMonths:       6,
		ReferenceRatePct:  6.0,
		FloatingMarginPct: 3.0,
	}

	rates := ResolveRateSchedule(tpl, 12, 2)
	assert.Equal(t, 6.0, rates[0])
	assert.Equal(t, 6.0, rates[5])
	assert.Equal(t, 11.0, rates[6])
	assert.Equal(t, 11.0, rates[11])
}

func TestResolveRateSchedule_PromoLongerThanTerm(t *testing.T) {
	tpl := domain.ProductTemplate{
		PromoRatePct: 5.5,
		PromoMonths:  36,
	}

	rates := ResolveRateSchedule(tpl, 24, 4)
	require.Len(t, rates, 24)
	for _, r := range rates {
		assert.Equal(t, 5.5, r)
	}
}

func TestFlatRateSchedule(t *testing.T) {
	rates := FlatRateSchedule(11.0, 3)
	assert.Equal(t, []float64{11.0, 11.0, 11.0}, rates)
	assert.Nil(t, FlatRateSchedule(11.0, 0))
}
