package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/subtrack-inc/subtrack/internal/domain/provider"
	"github.com/subtrack-inc/subtrack/internal/domain/subscription"
	vo "github.com/subtrack-inc/subtrack/internal/domain/subscription/valueobjects"
	"github.com/subtrack-inc/subtrack/internal/shared/biztime"
	"github.com/subtrack-inc/subtrack/internal/shared/logger"
)

type CreateSubscriptionCommand struct {
	Name            string    `validate:"required"`
	ProviderID      uuid.UUID `validate:"required"`
	CostAmount      float64   `validate:"gte=0"`
	Currency        string    `validate:"required,len=3"`
	BillingInterval int       `validate:"gt=0"`
	BillingUnit     string    `validate:"required"`
	StartDate       time.Time
	NextBillingDate time.Time
	Notes           *string
}

type CreateSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	providerRepo     provider.Repository
	logger           logger.Interface
}

func NewCreateSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	providerRepo provider.Repository,
	logger logger.Interface,
) *CreateSubscriptionUseCase {
	return &CreateSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		providerRepo:     providerRepo,
		logger:           logger,
	}
}

func (uc *CreateSubscriptionUseCase) Execute(ctx context.Context, cmd CreateSubscriptionCommand) (*subscription.Subscription, error) {
	if err := validate.Struct(cmd); err != nil {
		return nil, fmt.Errorf("invalid create subscription command: %w", err)
	}

	prov, err := uc.providerRepo.FindByID(ctx, cmd.ProviderID)
	if err != nil {
		uc.logger.Errorw("failed to get provider", "error", err, "provider_id", cmd.ProviderID)
		return nil, fmt.Errorf("failed to get provider: %w", err)
	}
	if prov == nil {
		uc.logger.Warnw("provider not found", "provider_id", cmd.ProviderID)
		return nil, fmt.Errorf("%w: %s", provider.ErrProviderNotFound, cmd.ProviderID)
	}

	cost, err := vo.NewMoneyFromFloat(cmd.CostAmount, cmd.Currency)
	if err != nil {
		return nil, fmt.Errorf("invalid cost: %w", err)
	}

	unit, err := vo.ParseCycleUnit(cmd.BillingUnit)
	if err != nil {
		return nil, fmt.Errorf("invalid billing cycle: %w", err)
	}
	cycle, err := vo.NewBillingCycle(cmd.BillingInterval, unit)
	if err != nil {
		return nil, fmt.Errorf("invalid billing cycle: %w", err)
	}

	startDate := biztime.ToUTC(cmd.StartDate)
	if cmd.StartDate.IsZero() {
		startDate = biztime.NowUTC()
	}
	nextBillingDate := biztime.ToUTC(cmd.NextBillingDate)
	if cmd.NextBillingDate.IsZero() {
		nextBillingDate = cycle.NextDate(startDate)
	}

	sub, err := subscription.NewSubscription(cmd.Name, prov, cost, cycle, startDate, nextBillingDate, cmd.Notes)
	if err != nil {
		uc.logger.Errorw("failed to create subscription aggregate", "error", err)
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	if err := uc.subscriptionRepo.Save(ctx, sub); err != nil {
		uc.logger.Errorw("failed to save subscription", "error", err, "subscription_id", sub.ID())
		return nil, fmt.Errorf("failed to save subscription: %w", err)
	}

	uc.logger.Infow("subscription created",
		"subscription_id", sub.ID(),
		"name", sub.Name(),
		"provider", prov.Name(),
		"cost", sub.Cost().String(),
		"billing_cycle", sub.BillingCycle().String(),
	)

	return sub, nil
}
