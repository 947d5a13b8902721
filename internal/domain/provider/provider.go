package provider

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/subtrack-inc/subtrack/internal/shared/biztime"
)

// Provider represents a service provider (Netflix, Adobe, ...). Providers are
// shared across subscriptions: a subscription references a provider but never
// owns it. Identity is by ID only.
type Provider struct {
	id        uuid.UUID
	name      string
	category  string
	website   *string
	createdAt time.Time
	updatedAt time.Time
}

// NewProvider creates a new provider.
func NewProvider(name, category string, website *string) (*Provider, error) {
	if name == "" {
		return nil, fmt.Errorf("provider name is required")
	}
	if category == "" {
		return nil, fmt.Errorf("provider category is required")
	}

	now := biztime.NowUTC()
	return &Provider{
		id:        uuid.New(),
		name:      name,
		category:  category,
		website:   website,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructProvider rebuilds a provider from persistence.
func ReconstructProvider(
	id uuid.UUID,
	name, category string,
	website *string,
	createdAt, updatedAt time.Time,
) (*Provider, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("provider ID cannot be nil")
	}
	if name == "" {
		return nil, fmt.Errorf("provider name is required")
	}
	if category == "" {
		return nil, fmt.Errorf("provider category is required")
	}

	return &Provider{
		id:        id,
		name:      name,
		category:  category,
		website:   website,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (p *Provider) ID() uuid.UUID {
	return p.id
}

func (p *Provider) Name() string {
	return p.name
}

func (p *Provider) Category() string {
	return p.category
}

func (p *Provider) Website() *string {
	return p.website
}

func (p *Provider) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Provider) UpdatedAt() time.Time {
	return p.updatedAt
}

// UpdateWebsite sets or clears the provider website.
func (p *Provider) UpdateWebsite(website *string) {
	p.website = website
	p.updatedAt = biztime.NowUTC()
}

// Equals compares providers by identity.
func (p *Provider) Equals(other *Provider) bool {
	if other == nil {
		return false
	}
	return p.id == other.id
}
