package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/subtrack-inc/subtrack/internal/domain/subscription"
	vo "github.com/subtrack-inc/subtrack/internal/domain/subscription/valueobjects"
	"github.com/subtrack-inc/subtrack/internal/shared/biztime"
	"github.com/subtrack-inc/subtrack/internal/shared/logger"
)

type UpdateBillingCycleCommand struct {
	SubscriptionID  uuid.UUID `validate:"required"`
	BillingInterval int       `validate:"gt=0"`
	BillingUnit     string    `validate:"required"`
}

type UpdateBillingCycleUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewUpdateBillingCycleUseCase(subscriptionRepo subscription.Repository, logger logger.Interface) *UpdateBillingCycleUseCase {
	return &UpdateBillingCycleUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *UpdateBillingCycleUseCase) Execute(ctx context.Context, cmd UpdateBillingCycleCommand) (*subscription.Subscription, error) {
	if err := validate.Struct(cmd); err != nil {
		return nil, fmt.Errorf("invalid update billing cycle command: %w", err)
	}

	sub, err := uc.subscriptionRepo.FindByID(ctx, cmd.SubscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "subscription_id", cmd.SubscriptionID)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return nil, fmt.Errorf("%w: %s", subscription.ErrSubscriptionNotFound, cmd.SubscriptionID)
	}

	unit, err := vo.ParseCycleUnit(cmd.BillingUnit)
	if err != nil {
		return nil, fmt.Errorf("invalid billing cycle: %w", err)
	}
	cycle, err := vo.NewBillingCycle(cmd.BillingInterval, unit)
	if err != nil {
		return nil, fmt.Errorf("invalid billing cycle: %w", err)
	}

	sub.UpdateBillingCycle(cycle, biztime.NowUTC())

	if err := uc.subscriptionRepo.Save(ctx, sub); err != nil {
		uc.logger.Errorw("failed to save subscription", "error", err, "subscription_id", cmd.SubscriptionID)
		return nil, fmt.Errorf("failed to save subscription: %w", err)
	}

	uc.logger.Infow("subscription billing cycle updated",
		"subscription_id", sub.ID(),
		"billing_cycle", sub.BillingCycle().String(),
		"next_billing_date", sub.NextBillingDate(),
	)

	return sub, nil
}
