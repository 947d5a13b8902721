package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/subtrack-inc/subtrack/internal/domain/subscription"
	"github.com/subtrack-inc/subtrack/internal/shared/logger"
)

type PauseSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewPauseSubscriptionUseCase(subscriptionRepo subscription.Repository, logger logger.Interface) *PauseSubscriptionUseCase {
	return &PauseSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *PauseSubscriptionUseCase) Execute(ctx context.Context, id uuid.UUID) (*subscription.Subscription, error) {
	sub, err := uc.subscriptionRepo.FindByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "subscription_id", id)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return nil, fmt.Errorf("%w: %s", subscription.ErrSubscriptionNotFound, id)
	}

	if err := sub.Pause(); err != nil {
		uc.logger.Warnw("failed to pause subscription", "error", err, "subscription_id", id)
		return nil, err
	}

	if err := uc.subscriptionRepo.Save(ctx, sub); err != nil {
		uc.logger.Errorw("failed to save subscription", "error", err, "subscription_id", id)
		return nil, fmt.Errorf("failed to save subscription: %w", err)
	}

	uc.logger.Infow("subscription paused", "subscription_id", sub.ID(), "name", sub.Name())

	return sub, nil
}
