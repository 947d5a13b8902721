package provider

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence contract for providers. Implementations
// return (nil, nil) when a lookup finds nothing.
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Provider, error)
	// FindByName matches provider names case-insensitively.
	FindByName(ctx context.Context, name string) (*Provider, error)
	FindAll(ctx context.Context) ([]*Provider, error)
	Save(ctx context.Context, provider *Provider) error
}
