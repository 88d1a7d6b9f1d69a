package repository

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-advisor/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type failingStore struct{}

func (failingStore) List(ctx context.Context) ([]domain.ProductTemplate, error) {
	return nil, errors.New("connection refused")
}
func (failingStore) Put(ctx context.Context, tpl domain.ProductTemplate) error {
	return errors.New("connection refused")
}
func (failingStore) Delete(ctx context.Context, id string) error {
	return errors.New("connection refused")
}

func TestBuiltinTemplates_AllValid(t *testing.T) {
	seen := map[string]bool{}
	for _, tpl := range BuiltinTemplates() {
		assert.NoError(t, ValidateTemplate(tpl), "template %s", tpl.ID)
		assert.False(t, seen[tpl.ID], "duplicate id %s", tpl.ID)
		seen[tpl.ID] = true
	}
}

func TestCatalog_SnapshotSortedByID(t *testing.T) {
	catalog := NewCatalog(NewMemoryOverrideStore(), testLogger())

	snapshot := catalog.Snapshot(context.Background())
	require.NotEmpty(t, snapshot)
	for i := 1; i < len(snapshot); i++ {
		assert.Less(t, snapshot[i-1].ID, snapshot[i].ID)
	}
}

func TestCatalog_CustomShadowsBuiltin(t *testing.T) {
	store := NewMemoryOverrideStore()
	catalog := NewCatalog(store, testLogger())

	override := BuiltinTemplates()[0]
	override.Name = "Negotiated Rate Deal"
	override.PromoRatePct = 5.0
	require.NoError(t, store.Put(context.Background(), override))

	got, ok := catalog.Get(context.Background(), override.ID)
	require.True(t, ok)
	assert.Equal(t, "Negotiated Rate Deal", got.Name)
	assert.Equal(t, 5.0, got.PromoRatePct)
	assert.True(t, got.Custom)

	// Same total count: the override replaced, not added.
	assert.Len(t, catalog.Snapshot(context.Background()), len(BuiltinTemplates()))
}

func TestCatalog_DegradesWhenStoreFails(t *testing.T) {
	catalog := NewCatalog(failingStore{}, testLogger())

	snapshot := catalog.Snapshot(context.Background())
	assert.Len(t, snapshot, len(BuiltinTemplates()))
}

func TestCatalog_SkipsInvalidCustomTemplate(t *testing.T) {
	store := NewMemoryOverrideStore()
	catalog := NewCatalog(store, testLogger())

	// Bypass Put's validation to simulate corrupt stored data.
	store.data["broken"] = domain.ProductTemplate{ID: "broken", Category: "CONSUMER"}

	snapshot := catalog.Snapshot(context.Background())
	assert.Len(t, snapshot, len(BuiltinTemplates()))
	_, ok := catalog.Get(context.Background(), "broken")
	assert.False(t, ok)
}

func TestValidateTemplate_TierStructure(t *testing.T) {
	base := BuiltinTemplates()[0]

	cases := []struct {
		name  string
		tiers []domain.PrepaymentTier
		ok    bool
	}{
		{"valid stepped", []domain.PrepaymentTier{
			{FromMonth: 1, ToMonth: 13, FeePct: 2},
			{FromMonth: 13, FeePct: 0},
		}, true},
		{"no tiers", nil, true},
		{"gap between tiers", []domain.PrepaymentTier{
			{FromMonth: 1, ToMonth: 12, FeePct: 2},
			{FromMonth: 13, FeePct: 0},
		}, false},
		{"does not start at month one", []domain.PrepaymentTier{
			{FromMonth: 2, FeePct: 1},
		}, false},
		{"last tier bounded", []domain.PrepaymentTier{
			{FromMonth: 1, ToMonth: 13, FeePct: 2},
		}, false},
		{"open-ended tier not last", []domain.PrepaymentTier{
			{FromMonth: 1, FeePct: 2},
			{FromMonth: 13, FeePct: 0},
		}, false},
		{"negative fee", []domain.PrepaymentTier{
			{FromMonth: 1, FeePct: -1},
		}, false},
		{"final open tier still charges a fee", []domain.PrepaymentTier{
			{FromMonth: 1, ToMonth: 13, FeePct: 2},
			{FromMonth: 13, FeePct: 0.5},
		}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tpl := base
			tpl.PrepaymentTiers = tc.tiers
			err := ValidateTemplate(tpl)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestMemoryOverrideStore_PutRejectsInvalid(t *testing.T) {
	store := NewMemoryOverrideStore()

	err := store.Put(context.Background(), domain.ProductTemplate{ID: "", Category: domain.CategoryMortgage})
	assert.Error(t, err)

	list, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestMemoryOverrideStore_Delete(t *testing.T) {
	store := NewMemoryOverrideStore()
	tpl := BuiltinTemplates()[0]
	require.NoError(t, store.Put(context.Background(), tpl))
	require.NoError(t, store.Delete(context.Background(), tpl.ID))

	list, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}
