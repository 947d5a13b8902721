// Package cli maps domain failures onto the application error taxonomy for
// terminal output.
package cli

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/subtrack-inc/subtrack/internal/domain/provider"
	"github.com/subtrack-inc/subtrack/internal/domain/subscription"
	vo "github.com/subtrack-inc/subtrack/internal/domain/subscription/valueobjects"
	appErrors "github.com/subtrack-inc/subtrack/internal/shared/errors"
)

// Classify translates an error chain into an AppError for display. Domain
// sentinels keep their taxonomy; anything unrecognized is internal.
func Classify(err error) *appErrors.AppError {
	if err == nil {
		return nil
	}
	if appErr := appErrors.GetAppError(err); appErr != nil {
		return appErr
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return appErrors.NewValidationError("invalid input", validationErrs.Error())
	}

	switch {
	case errors.Is(err, subscription.ErrSubscriptionNotFound),
		errors.Is(err, provider.ErrProviderNotFound):
		return appErrors.NewNotFoundError(err.Error())
	case errors.Is(err, subscription.ErrDuplicateNotificationRule),
		errors.Is(err, provider.ErrProviderAlreadyExists):
		return appErrors.NewConflictError(err.Error())
	case errors.Is(err, subscription.ErrInvalidStatusTransition),
		errors.Is(err, subscription.ErrCurrencyMismatch),
		errors.Is(err, vo.ErrInvalidAmount),
		errors.Is(err, vo.ErrInvalidCurrency),
		errors.Is(err, vo.ErrIncompatibleCurrency),
		errors.Is(err, vo.ErrInvalidInterval),
		errors.Is(err, vo.ErrInvalidUnit):
		return appErrors.NewValidationError(err.Error())
	}

	return appErrors.NewInternalError(err.Error())
}
