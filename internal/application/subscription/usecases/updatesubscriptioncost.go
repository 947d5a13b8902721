package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/subtrack-inc/subtrack/internal/domain/subscription"
	vo "github.com/subtrack-inc/subtrack/internal/domain/subscription/valueobjects"
	"github.com/subtrack-inc/subtrack/internal/shared/logger"
)

type UpdateSubscriptionCostCommand struct {
	SubscriptionID uuid.UUID `validate:"required"`
	NewAmount      float64   `validate:"gte=0"`
	// Currency is optional; when empty the subscription's currency is kept.
	// Passing a different currency is rejected by the aggregate.
	Currency string `validate:"omitempty,len=3"`
}

type UpdateSubscriptionCostUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewUpdateSubscriptionCostUseCase(subscriptionRepo subscription.Repository, logger logger.Interface) *UpdateSubscriptionCostUseCase {
	return &UpdateSubscriptionCostUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *UpdateSubscriptionCostUseCase) Execute(ctx context.Context, cmd UpdateSubscriptionCostCommand) (*subscription.Subscription, error) {
	if err := validate.Struct(cmd); err != nil {
		return nil, fmt.Errorf("invalid update cost command: %w", err)
	}

	sub, err := uc.subscriptionRepo.FindByID(ctx, cmd.SubscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "subscription_id", cmd.SubscriptionID)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return nil, fmt.Errorf("%w: %s", subscription.ErrSubscriptionNotFound, cmd.SubscriptionID)
	}

	currency := cmd.Currency
	if currency == "" {
		currency = sub.Cost().Currency()
	}
	newCost, err := vo.NewMoneyFromFloat(cmd.NewAmount, currency)
	if err != nil {
		return nil, fmt.Errorf("invalid cost: %w", err)
	}

	if err := sub.UpdateCost(newCost); err != nil {
		uc.logger.Warnw("failed to update subscription cost", "error", err, "subscription_id", cmd.SubscriptionID)
		return nil, fmt.Errorf("failed to update cost: %w", err)
	}

	if err := uc.subscriptionRepo.Save(ctx, sub); err != nil {
		uc.logger.Errorw("failed to save subscription", "error", err, "subscription_id", cmd.SubscriptionID)
		return nil, fmt.Errorf("failed to save subscription: %w", err)
	}

	uc.logger.Infow("subscription cost updated",
		"subscription_id", sub.ID(),
		"new_cost", sub.Cost().String(),
	)

	return sub, nil
}
