package usecases

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/subtrack-inc/subtrack/internal/application/subscription/dto"
)

// validate checks command structs before any domain work happens.
var validate = validator.New()

// ExchangeRateProvider resolves a conversion rate between two currencies.
// Rate correctness is not a goal here; a static table satisfies it.
type ExchangeRateProvider interface {
	Rate(ctx context.Context, from, to string) (float64, error)
}

// ReminderSender delivers a renewal reminder for a subscription. The SMTP
// binding lives in infrastructure.
type ReminderSender interface {
	SendRenewalReminder(ctx context.Context, notification dto.PendingNotificationDTO) error
}
