package subscription

import (
	"time"

	"github.com/google/uuid"
)

// PendingNotification pairs a subscription with the rules due to fire for it.
type PendingNotification struct {
	Subscription *Subscription
	Rules        []NotificationRule
}

// NotificationService is a stateless domain service that collects due
// renewal reminders across subscriptions.
type NotificationService struct{}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// PendingNotifications returns due reminders keyed by subscription ID.
// Subscriptions with nothing pending are omitted.
func (s *NotificationService) PendingNotifications(subs []*Subscription, now time.Time) map[uuid.UUID]PendingNotification {
	pending := make(map[uuid.UUID]PendingNotification)
	for _, sub := range subs {
		rules := sub.PendingNotifications(now)
		if len(rules) == 0 {
			continue
		}
		pending[sub.ID()] = PendingNotification{
			Subscription: sub,
			Rules:        rules,
		}
	}
	return pending
}
