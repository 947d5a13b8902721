package usecases

import (
	"context"
	"fmt"
	"sort"

	"github.com/subtrack-inc/subtrack/internal/application/subscription/dto"
	"github.com/subtrack-inc/subtrack/internal/domain/subscription"
	"github.com/subtrack-inc/subtrack/internal/shared/biztime"
	"github.com/subtrack-inc/subtrack/internal/shared/logger"
	"github.com/subtrack-inc/subtrack/internal/shared/mapper"
)

// PendingNotificationsUseCase collects the renewal reminders due today and
// optionally hands them to a sender. The sender may be nil, in which case
// reminders are only reported.
type PendingNotificationsUseCase struct {
	subscriptionRepo    subscription.Repository
	notificationService *subscription.NotificationService
	sender              ReminderSender
	logger              logger.Interface
}

func NewPendingNotificationsUseCase(
	subscriptionRepo subscription.Repository,
	notificationService *subscription.NotificationService,
	sender ReminderSender,
	logger logger.Interface,
) *PendingNotificationsUseCase {
	return &PendingNotificationsUseCase{
		subscriptionRepo:    subscriptionRepo,
		notificationService: notificationService,
		sender:              sender,
		logger:              logger,
	}
}

func (uc *PendingNotificationsUseCase) Execute(ctx context.Context) ([]dto.PendingNotificationDTO, error) {
	subs, err := uc.subscriptionRepo.FindActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list active subscriptions", "error", err)
		return nil, fmt.Errorf("failed to list active subscriptions: %w", err)
	}

	pending := uc.notificationService.PendingNotifications(subs, biztime.NowUTC())
	if len(pending) == 0 {
		return nil, nil
	}

	notifications := make([]dto.PendingNotificationDTO, 0, len(pending))
	for _, p := range pending {
		notifications = append(notifications, dto.PendingNotificationDTO{
			Subscription: dto.FromSubscription(p.Subscription),
			Rules:        mapper.MapSlice(p.Rules, dto.FromNotificationRule),
		})
	}
	// Map iteration order is random; sort for stable output.
	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].Subscription.Name < notifications[j].Subscription.Name
	})

	if uc.sender == nil {
		return notifications, nil
	}

	for _, notification := range notifications {
		if err := uc.sender.SendRenewalReminder(ctx, notification); err != nil {
			uc.logger.Errorw("failed to send renewal reminder",
				"error", err,
				"subscription_id", notification.Subscription.ID,
			)
			continue
		}
		uc.logger.Infow("renewal reminder sent",
			"subscription_id", notification.Subscription.ID,
			"name", notification.Subscription.Name,
			"rules", len(notification.Rules),
		)
	}

	return notifications, nil
}
