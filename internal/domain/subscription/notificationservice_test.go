package subscription

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/subtrack-inc/subtrack/internal/domain/subscription/valueobjects"
)

func TestPendingNotifications_CollectsAcrossSubscriptions(t *testing.T) {
	service := NewNotificationService()

	due := newMonthlySubscription(t)
	_, err := due.AddNotificationRule(vo.TimingOneDayBefore)
	require.NoError(t, err)

	quiet := newCategorizedSubscription(t, "iCloud", "Apple", "storage", 2.99, "USD", 1, vo.UnitMonths)

	now := due.NextBillingDate().AddDate(0, 0, -1)
	pending := service.PendingNotifications([]*Subscription{due, quiet}, now)

	require.Len(t, pending, 1)
	entry, ok := pending[due.ID()]
	require.True(t, ok)
	assert.Equal(t, due.ID(), entry.Subscription.ID())
	require.Len(t, entry.Rules, 1)
	assert.Equal(t, vo.TimingOneDayBefore, entry.Rules[0].Timing())
}

func TestPendingNotifications_OmitsSubscriptionsWithNothingDue(t *testing.T) {
	service := NewNotificationService()

	sub := newMonthlySubscription(t)
	_, err := sub.AddNotificationRule(vo.TimingOneWeekBefore)
	require.NoError(t, err)

	// Two days before renewal no rule matches.
	now := sub.NextBillingDate().AddDate(0, 0, -2)
	pending := service.PendingNotifications([]*Subscription{sub}, now)

	assert.Empty(t, pending)
}
