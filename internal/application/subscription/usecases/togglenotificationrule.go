package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/subtrack-inc/subtrack/internal/domain/subscription"
	"github.com/subtrack-inc/subtrack/internal/shared/logger"
)

type ToggleNotificationRuleCommand struct {
	SubscriptionID uuid.UUID `validate:"required"`
	RuleID         uuid.UUID `validate:"required"`
	Enabled        bool
}

type ToggleNotificationRuleUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewToggleNotificationRuleUseCase(subscriptionRepo subscription.Repository, logger logger.Interface) *ToggleNotificationRuleUseCase {
	return &ToggleNotificationRuleUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *ToggleNotificationRuleUseCase) Execute(ctx context.Context, cmd ToggleNotificationRuleCommand) error {
	if err := validate.Struct(cmd); err != nil {
		return fmt.Errorf("invalid toggle notification rule command: %w", err)
	}

	sub, err := uc.subscriptionRepo.FindByID(ctx, cmd.SubscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "subscription_id", cmd.SubscriptionID)
		return fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return fmt.Errorf("%w: %s", subscription.ErrSubscriptionNotFound, cmd.SubscriptionID)
	}

	if err := sub.SetNotificationRuleEnabled(cmd.RuleID, cmd.Enabled); err != nil {
		uc.logger.Warnw("failed to toggle notification rule", "error", err, "rule_id", cmd.RuleID)
		return err
	}

	if err := uc.subscriptionRepo.Save(ctx, sub); err != nil {
		uc.logger.Errorw("failed to save subscription", "error", err, "subscription_id", cmd.SubscriptionID)
		return fmt.Errorf("failed to save subscription: %w", err)
	}

	uc.logger.Infow("notification rule toggled",
		"subscription_id", sub.ID(),
		"rule_id", cmd.RuleID,
		"enabled", cmd.Enabled,
	)

	return nil
}
