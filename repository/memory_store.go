package repository

import (
	"context"
	"sync"

	"loan-advisor/domain"
)

// MemoryOverrideStore is an in-memory OverrideStore, used when no Redis is
// configured and in tests.
type MemoryOverrideStore struct {
	mu   sync.RWMutex
	data map[string]domain.ProductTemplate
}

func NewMemoryOverrideStore() *MemoryOverrideStore {
	return &MemoryOverrideStore{
		data: map[string]domain.ProductTemplate{},
	}
}

func (m *MemoryOverrideStore) List(ctx context.Context) ([]domain.ProductTemplate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.ProductTemplate, 0, len(m.data))
	for _, tpl := range m.data {
		out = append(out, tpl)
	}
	return out, nil
}

func (m *MemoryOverrideStore) Put(ctx context.Context, tpl domain.ProductTemplate) error {
	if err := ValidateTemplate(tpl); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[tpl.ID] = tpl
	return nil
}

func (m *MemoryOverrideStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, id)
	return nil
}
