package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subtrack-inc/subtrack/internal/domain/provider"
	vo "github.com/subtrack-inc/subtrack/internal/domain/subscription/valueobjects"
)

func newCategorizedSubscription(t *testing.T, name, providerName, category string, amount float64, currency string, interval int, unit vo.CycleUnit) *Subscription {
	t.Helper()
	p, err := provider.NewProvider(providerName, category, nil)
	require.NoError(t, err)

	c := cycle(t, interval, unit)
	sub, err := NewSubscription(name, p, money(t, amount, currency), c, baseDate, c.NextDate(baseDate), nil)
	require.NoError(t, err)
	return sub
}

func TestTotalMonthlyCost_MixedCycles(t *testing.T) {
	service := NewAnalysisService()

	subs := []*Subscription{
		newCategorizedSubscription(t, "Netflix", "Netflix", "streaming", 15.99, "USD", 1, vo.UnitMonths),
		newCategorizedSubscription(t, "Domain", "Namecheap", "infrastructure", 120, "USD", 1, vo.UnitYears),
	}

	total, err := service.TotalMonthlyCost(subs)
	require.NoError(t, err)

	// 15.99 + 120/12
	assert.InDelta(t, 25.99, total.AmountFloat(), 0.01)
	assert.Equal(t, "USD", total.Currency())
}

func TestTotalMonthlyCost_ExcludesPausedAndCancelled(t *testing.T) {
	service := NewAnalysisService()

	active := newCategorizedSubscription(t, "Netflix", "Netflix", "streaming", 10, "USD", 1, vo.UnitMonths)
	paused := newCategorizedSubscription(t, "Spotify", "Spotify", "music", 9.99, "USD", 1, vo.UnitMonths)
	require.NoError(t, paused.Pause())
	cancelled := newCategorizedSubscription(t, "Hulu", "Hulu", "streaming", 7.99, "USD", 1, vo.UnitMonths)
	require.NoError(t, cancelled.Cancel(baseDate))

	total, err := service.TotalMonthlyCost([]*Subscription{active, paused, cancelled})
	require.NoError(t, err)

	assert.InDelta(t, 10.0, total.AmountFloat(), 0.001)
}

func TestTotalMonthlyCost_EmptySet(t *testing.T) {
	service := NewAnalysisService()

	total, err := service.TotalMonthlyCost(nil)
	require.NoError(t, err)

	assert.True(t, total.IsZero())
	assert.Equal(t, DefaultCurrency, total.Currency())
}

func TestTotalMonthlyCost_CurrencyMismatch(t *testing.T) {
	service := NewAnalysisService()

	subs := []*Subscription{
		newCategorizedSubscription(t, "Netflix", "Netflix", "streaming", 15.99, "USD", 1, vo.UnitMonths),
		newCategorizedSubscription(t, "Sky", "Sky", "streaming", 9.99, "EUR", 1, vo.UnitMonths),
	}

	_, err := service.TotalMonthlyCost(subs)
	assert.ErrorIs(t, err, ErrCurrencyMismatch)
}

func TestTotalAnnualCost_IsTwelveTimesMonthly(t *testing.T) {
	service := NewAnalysisService()

	subs := []*Subscription{
		newCategorizedSubscription(t, "Netflix", "Netflix", "streaming", 15.99, "USD", 1, vo.UnitMonths),
		newCategorizedSubscription(t, "iCloud", "Apple", "storage", 2.99, "USD", 1, vo.UnitMonths),
	}

	monthly, err := service.TotalMonthlyCost(subs)
	require.NoError(t, err)
	annual, err := service.TotalAnnualCost(subs)
	require.NoError(t, err)

	assert.InDelta(t, monthly.AmountFloat()*12, annual.AmountFloat(), 0.01)
}

func TestUpcomingRenewals_WindowAndOrder(t *testing.T) {
	service := NewAnalysisService()

	weekly := newCategorizedSubscription(t, "Gym", "FitLife", "health", 5, "USD", 1, vo.UnitWeeks)
	monthly := newCategorizedSubscription(t, "Netflix", "Netflix", "streaming", 15.99, "USD", 1, vo.UnitMonths)
	annual := newCategorizedSubscription(t, "Domain", "Namecheap", "infrastructure", 120, "USD", 1, vo.UnitYears)

	upcoming := service.UpcomingRenewals([]*Subscription{monthly, weekly, annual}, baseDate, 30)

	// Weekly renews in 7 days, monthly in 30; annual is outside the window.
	require.Len(t, upcoming, 2)
	assert.Equal(t, weekly.ID(), upcoming[0].SubscriptionID())
	assert.Equal(t, monthly.ID(), upcoming[1].SubscriptionID())
}

func TestUpcomingRenewals_SkipsInactive(t *testing.T) {
	service := NewAnalysisService()

	sub := newCategorizedSubscription(t, "Netflix", "Netflix", "streaming", 15.99, "USD", 1, vo.UnitMonths)
	require.NoError(t, sub.Pause())

	upcoming := service.UpcomingRenewals([]*Subscription{sub}, baseDate, 60)
	assert.Empty(t, upcoming)
}

func TestUpcomingRenewals_SkipsProcessedEvents(t *testing.T) {
	service := NewAnalysisService()

	sub := newCategorizedSubscription(t, "Gym", "FitLife", "health", 5, "USD", 1, vo.UnitWeeks)
	_, err := sub.ProcessRenewal(sub.NextBillingDate())
	require.NoError(t, err)

	upcoming := service.UpcomingRenewals([]*Subscription{sub}, sub.NextBillingDate().Add(-time.Hour), 30)
	require.Len(t, upcoming, 1)
	assert.False(t, upcoming[0].IsProcessed())
}

func TestCostBreakdownByCategory(t *testing.T) {
	service := NewAnalysisService()

	subs := []*Subscription{
		newCategorizedSubscription(t, "Netflix", "Netflix", "streaming", 15.99, "USD", 1, vo.UnitMonths),
		newCategorizedSubscription(t, "Hulu", "Hulu", "streaming", 7.99, "USD", 1, vo.UnitMonths),
		newCategorizedSubscription(t, "iCloud", "Apple", "storage", 2.99, "USD", 1, vo.UnitMonths),
	}

	breakdown, err := service.CostBreakdownByCategory(subs)
	require.NoError(t, err)

	require.Len(t, breakdown, 2)
	assert.Equal(t, "streaming", breakdown[0].Category, "first-seen order")
	assert.InDelta(t, 23.98, breakdown[0].Monthly.AmountFloat(), 0.01)
	assert.Equal(t, "storage", breakdown[1].Category)
	assert.InDelta(t, 2.99, breakdown[1].Monthly.AmountFloat(), 0.01)
}

func TestGroupByCategory(t *testing.T) {
	service := NewAnalysisService()

	streaming := newCategorizedSubscription(t, "Netflix", "Netflix", "streaming", 15.99, "USD", 1, vo.UnitMonths)
	storage := newCategorizedSubscription(t, "iCloud", "Apple", "storage", 2.99, "USD", 1, vo.UnitMonths)

	order, groups := service.GroupByCategory([]*Subscription{streaming, storage})

	assert.Equal(t, []string{"streaming", "storage"}, order)
	assert.Len(t, groups["streaming"], 1)
	assert.Len(t, groups["storage"], 1)
}
