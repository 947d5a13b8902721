package subscription

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence contract the domain depends on. Any storage
// technology binds to it; implementations return (nil, nil) when a lookup
// finds nothing. Save persists the whole aggregate, owned rules and events
// included.
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Subscription, error)
	FindAll(ctx context.Context) ([]*Subscription, error)
	FindActive(ctx context.Context) ([]*Subscription, error)
	FindByProvider(ctx context.Context, providerID uuid.UUID) ([]*Subscription, error)
	Save(ctx context.Context, sub *Subscription) error
	Delete(ctx context.Context, id uuid.UUID) error
}
