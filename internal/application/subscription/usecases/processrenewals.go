package usecases

import (
	"context"
	"fmt"

	"github.com/subtrack-inc/subtrack/internal/domain/subscription"
	"github.com/subtrack-inc/subtrack/internal/shared/biztime"
	"github.com/subtrack-inc/subtrack/internal/shared/logger"
)

// ProcessRenewalsResult summarizes one sweep over the active subscriptions.
type ProcessRenewalsResult struct {
	Scanned   int
	Processed int
	Failed    int
}

// ProcessRenewalsUseCase advances every active subscription whose next
// billing date has matured. A subscription several periods behind is caught
// up one period at a time, so the billing cadence stays anchored to the
// original schedule rather than to processing time.
type ProcessRenewalsUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewProcessRenewalsUseCase(subscriptionRepo subscription.Repository, logger logger.Interface) *ProcessRenewalsUseCase {
	return &ProcessRenewalsUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *ProcessRenewalsUseCase) Execute(ctx context.Context) (ProcessRenewalsResult, error) {
	subs, err := uc.subscriptionRepo.FindActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list active subscriptions", "error", err)
		return ProcessRenewalsResult{}, fmt.Errorf("failed to list active subscriptions: %w", err)
	}

	now := biztime.NowUTC()
	result := ProcessRenewalsResult{Scanned: len(subs)}

	for _, sub := range subs {
		if !sub.HasMaturedRenewal(now) {
			continue
		}

		renewed := 0
		for sub.HasMaturedRenewal(now) {
			event, err := sub.ProcessRenewal(now)
			if err != nil {
				uc.logger.Errorw("failed to process renewal",
					"error", err,
					"subscription_id", sub.ID(),
				)
				result.Failed++
				break
			}
			renewed++
			uc.logger.Infow("renewal processed",
				"subscription_id", sub.ID(),
				"name", sub.Name(),
				"next_renewal_date", event.RenewalDate(),
			)
		}
		if renewed == 0 {
			continue
		}

		if err := uc.subscriptionRepo.Save(ctx, sub); err != nil {
			uc.logger.Errorw("failed to save subscription after renewal",
				"error", err,
				"subscription_id", sub.ID(),
			)
			result.Failed++
			continue
		}
		result.Processed++
	}

	uc.logger.Infow("renewal sweep finished",
		"scanned", result.Scanned,
		"processed", result.Processed,
		"failed", result.Failed,
	)

	return result, nil
}
