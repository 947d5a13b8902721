package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/subtrack-inc/subtrack/internal/domain/subscription"
	vo "github.com/subtrack-inc/subtrack/internal/domain/subscription/valueobjects"
	"github.com/subtrack-inc/subtrack/internal/shared/logger"
)

type AddNotificationRuleCommand struct {
	SubscriptionID uuid.UUID `validate:"required"`
	Timing         string    `validate:"required"`
}

type AddNotificationRuleUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewAddNotificationRuleUseCase(subscriptionRepo subscription.Repository, logger logger.Interface) *AddNotificationRuleUseCase {
	return &AddNotificationRuleUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *AddNotificationRuleUseCase) Execute(ctx context.Context, cmd AddNotificationRuleCommand) (subscription.NotificationRule, error) {
	if err := validate.Struct(cmd); err != nil {
		return subscription.NotificationRule{}, fmt.Errorf("invalid add notification rule command: %w", err)
	}

	timing, err := vo.ParseNotificationTiming(cmd.Timing)
	if err != nil {
		return subscription.NotificationRule{}, fmt.Errorf("invalid notification timing: %w", err)
	}

	sub, err := uc.subscriptionRepo.FindByID(ctx, cmd.SubscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "subscription_id", cmd.SubscriptionID)
		return subscription.NotificationRule{}, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return subscription.NotificationRule{}, fmt.Errorf("%w: %s", subscription.ErrSubscriptionNotFound, cmd.SubscriptionID)
	}

	rule, err := sub.AddNotificationRule(timing)
	if err != nil {
		uc.logger.Warnw("failed to add notification rule", "error", err, "subscription_id", cmd.SubscriptionID)
		return subscription.NotificationRule{}, err
	}

	if err := uc.subscriptionRepo.Save(ctx, sub); err != nil {
		uc.logger.Errorw("failed to save subscription", "error", err, "subscription_id", cmd.SubscriptionID)
		return subscription.NotificationRule{}, fmt.Errorf("failed to save subscription: %w", err)
	}

	uc.logger.Infow("notification rule added",
		"subscription_id", sub.ID(),
		"rule_id", rule.ID(),
		"timing", rule.Timing().String(),
	)

	return rule, nil
}
