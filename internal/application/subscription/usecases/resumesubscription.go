package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/subtrack-inc/subtrack/internal/domain/subscription"
	"github.com/subtrack-inc/subtrack/internal/shared/biztime"
	"github.com/subtrack-inc/subtrack/internal/shared/logger"
)

type ResumeSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewResumeSubscriptionUseCase(subscriptionRepo subscription.Repository, logger logger.Interface) *ResumeSubscriptionUseCase {
	return &ResumeSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *ResumeSubscriptionUseCase) Execute(ctx context.Context, id uuid.UUID) (*subscription.Subscription, error) {
	sub, err := uc.subscriptionRepo.FindByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "subscription_id", id)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return nil, fmt.Errorf("%w: %s", subscription.ErrSubscriptionNotFound, id)
	}

	if err := sub.Resume(biztime.NowUTC()); err != nil {
		uc.logger.Warnw("failed to resume subscription", "error", err, "subscription_id", id)
		return nil, err
	}

	if err := uc.subscriptionRepo.Save(ctx, sub); err != nil {
		uc.logger.Errorw("failed to save subscription", "error", err, "subscription_id", id)
		return nil, fmt.Errorf("failed to save subscription: %w", err)
	}

	uc.logger.Infow("subscription resumed",
		"subscription_id", sub.ID(),
		"name", sub.Name(),
		"next_billing_date", sub.NextBillingDate(),
	)

	return sub, nil
}
