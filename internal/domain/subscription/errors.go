package subscription

import (
	"errors"
	"fmt"

	vo "github.com/subtrack-inc/subtrack/internal/domain/subscription/valueobjects"
)

var (
	ErrSubscriptionNotFound      = errors.New("subscription not found")
	ErrInvalidStatusTransition   = errors.New("invalid status transition")
	ErrDuplicateNotificationRule = errors.New("notification rule already exists")
	ErrCurrencyMismatch          = errors.New("subscriptions span more than one currency")
)

func ErrInvalidTransition(from, to vo.SubscriptionStatus) error {
	return fmt.Errorf("%w: from %s to %s", ErrInvalidStatusTransition, from, to)
}

func ErrDuplicateRule(timing vo.NotificationTiming) error {
	return fmt.Errorf("%w: %s", ErrDuplicateNotificationRule, timing)
}
