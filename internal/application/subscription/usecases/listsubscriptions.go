package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/subtrack-inc/subtrack/internal/domain/subscription"
	"github.com/subtrack-inc/subtrack/internal/shared/logger"
)

type ListSubscriptionsQuery struct {
	ActiveOnly bool
	// ProviderID filters to subscriptions of one provider when set.
	ProviderID *uuid.UUID
}

type ListSubscriptionsUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewListSubscriptionsUseCase(subscriptionRepo subscription.Repository, logger logger.Interface) *ListSubscriptionsUseCase {
	return &ListSubscriptionsUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *ListSubscriptionsUseCase) Execute(ctx context.Context, query ListSubscriptionsQuery) ([]*subscription.Subscription, error) {
	var (
		subs []*subscription.Subscription
		err  error
	)

	switch {
	case query.ProviderID != nil:
		subs, err = uc.subscriptionRepo.FindByProvider(ctx, *query.ProviderID)
	case query.ActiveOnly:
		subs, err = uc.subscriptionRepo.FindActive(ctx)
	default:
		subs, err = uc.subscriptionRepo.FindAll(ctx)
	}
	if err != nil {
		uc.logger.Errorw("failed to list subscriptions", "error", err)
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	return subs, nil
}
