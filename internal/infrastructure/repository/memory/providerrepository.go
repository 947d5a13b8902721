package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/subtrack-inc/subtrack/internal/domain/provider"
)

type ProviderRepository struct {
	mu        sync.RWMutex
	providers map[uuid.UUID]*provider.Provider
}

func NewProviderRepository() *ProviderRepository {
	return &ProviderRepository{
		providers: make(map[uuid.UUID]*provider.Provider),
	}
}

func (r *ProviderRepository) FindByID(ctx context.Context, id uuid.UUID) (*provider.Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	prov, ok := r.providers[id]
	if !ok {
		return nil, nil
	}
	return prov, nil
}

func (r *ProviderRepository) FindByName(ctx context.Context, name string) (*provider.Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, prov := range r.providers {
		if strings.EqualFold(prov.Name(), name) {
			return prov, nil
		}
	}
	return nil, nil
}

func (r *ProviderRepository) FindAll(ctx context.Context) ([]*provider.Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*provider.Provider, 0, len(r.providers))
	for _, prov := range r.providers {
		result = append(result, prov)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})
	return result, nil
}

func (r *ProviderRepository) Save(ctx context.Context, prov *provider.Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.providers[prov.ID()] = prov
	return nil
}

var _ provider.Repository = (*ProviderRepository)(nil)
