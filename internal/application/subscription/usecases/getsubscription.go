package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/subtrack-inc/subtrack/internal/domain/subscription"
	"github.com/subtrack-inc/subtrack/internal/shared/logger"
)

type GetSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewGetSubscriptionUseCase(subscriptionRepo subscription.Repository, logger logger.Interface) *GetSubscriptionUseCase {
	return &GetSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *GetSubscriptionUseCase) Execute(ctx context.Context, id uuid.UUID) (*subscription.Subscription, error) {
	sub, err := uc.subscriptionRepo.FindByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "subscription_id", id)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return nil, fmt.Errorf("%w: %s", subscription.ErrSubscriptionNotFound, id)
	}
	return sub, nil
}
