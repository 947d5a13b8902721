package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subtrack-inc/subtrack/internal/domain/provider"
	"github.com/subtrack-inc/subtrack/internal/domain/subscription"
	vo "github.com/subtrack-inc/subtrack/internal/domain/subscription/valueobjects"
	appErrors "github.com/subtrack-inc/subtrack/internal/shared/errors"
)

func TestClassify_NilError(t *testing.T) {
	assert.Nil(t, Classify(nil))
}

func TestClassify_PassesThroughAppError(t *testing.T) {
	original := appErrors.NewConflictError("already there")

	classified := Classify(fmt.Errorf("wrapped: %w", original))
	require.NotNil(t, classified)
	assert.Same(t, original, classified)
}

func TestClassify_DomainSentinels(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want appErrors.ErrorType
	}{
		{"subscription not found", subscription.ErrSubscriptionNotFound, appErrors.ErrorTypeNotFound},
		{"provider not found", provider.ErrProviderNotFound, appErrors.ErrorTypeNotFound},
		{"duplicate rule", subscription.ErrDuplicateNotificationRule, appErrors.ErrorTypeConflict},
		{"provider exists", provider.ErrProviderAlreadyExists, appErrors.ErrorTypeConflict},
		{"bad transition", subscription.ErrInvalidStatusTransition, appErrors.ErrorTypeValidation},
		{"currency mismatch", subscription.ErrCurrencyMismatch, appErrors.ErrorTypeValidation},
		{"invalid amount", vo.ErrInvalidAmount, appErrors.ErrorTypeValidation},
		{"invalid unit", vo.ErrInvalidUnit, appErrors.ErrorTypeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Classification must survive wrapping.
			classified := Classify(fmt.Errorf("failed to do thing: %w", tt.err))
			require.NotNil(t, classified)
			assert.Equal(t, tt.want, classified.Type)
		})
	}
}

func TestClassify_UnknownErrorIsInternal(t *testing.T) {
	classified := Classify(errors.New("disk on fire"))
	require.NotNil(t, classified)
	assert.Equal(t, appErrors.ErrorTypeInternal, classified.Type)
	assert.Contains(t, classified.Message, "disk on fire")
}
