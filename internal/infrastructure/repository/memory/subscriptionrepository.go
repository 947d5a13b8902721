// Package memory provides map-backed repository implementations. They serve
// tests and ephemeral runs where no database is configured.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/subtrack-inc/subtrack/internal/domain/subscription"
)

type SubscriptionRepository struct {
	mu   sync.RWMutex
	subs map[uuid.UUID]*subscription.Subscription
	// seq preserves insertion order for deterministic listings.
	seq []uuid.UUID
}

func NewSubscriptionRepository() *SubscriptionRepository {
	return &SubscriptionRepository{
		subs: make(map[uuid.UUID]*subscription.Subscription),
	}
}

func (r *SubscriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*subscription.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sub, ok := r.subs[id]
	if !ok {
		return nil, nil
	}
	return sub, nil
}

func (r *SubscriptionRepository) FindAll(ctx context.Context) ([]*subscription.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(*subscription.Subscription) bool { return true }), nil
}

func (r *SubscriptionRepository) FindActive(ctx context.Context) ([]*subscription.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect((*subscription.Subscription).IsActive), nil
}

func (r *SubscriptionRepository) FindByProvider(ctx context.Context, providerID uuid.UUID) ([]*subscription.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(sub *subscription.Subscription) bool {
		return sub.Provider().ID() == providerID
	}), nil
}

func (r *SubscriptionRepository) Save(ctx context.Context, sub *subscription.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.subs[sub.ID()]; !exists {
		r.seq = append(r.seq, sub.ID())
	}
	r.subs[sub.ID()] = sub
	return nil
}

func (r *SubscriptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.subs, id)
	for i, sid := range r.seq {
		if sid == id {
			r.seq = append(r.seq[:i], r.seq[i+1:]...)
			break
		}
	}
	return nil
}

// collect must be called with at least a read lock held.
func (r *SubscriptionRepository) collect(keep func(*subscription.Subscription) bool) []*subscription.Subscription {
	result := make([]*subscription.Subscription, 0, len(r.seq))
	for _, id := range r.seq {
		sub, ok := r.subs[id]
		if ok && keep(sub) {
			result = append(result, sub)
		}
	}
	return result
}

var _ subscription.Repository = (*SubscriptionRepository)(nil)
