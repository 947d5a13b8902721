package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSubscriptionStatus(t *testing.T) {
	status, err := ParseSubscriptionStatus(" Active ")
	require.NoError(t, err)
	assert.Equal(t, StatusActive, status)

	_, err = ParseSubscriptionStatus("expired")
	assert.Error(t, err)
}

func TestSubscriptionStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from    SubscriptionStatus
		to      SubscriptionStatus
		allowed bool
	}{
		{StatusActive, StatusPaused, true},
		{StatusActive, StatusCancelled, true},
		{StatusActive, StatusActive, false},
		{StatusPaused, StatusActive, true},
		{StatusPaused, StatusCancelled, true},
		{StatusPaused, StatusPaused, false},
		{StatusCancelled, StatusActive, false},
		{StatusCancelled, StatusPaused, false},
		{StatusCancelled, StatusCancelled, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestSubscriptionStatus_ContributesToExpenses(t *testing.T) {
	assert.True(t, StatusActive.ContributesToExpenses())
	assert.False(t, StatusPaused.ContributesToExpenses())
	assert.False(t, StatusCancelled.ContributesToExpenses())
}
