package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subtrack-inc/subtrack/internal/application/subscription/dto"
	"github.com/subtrack-inc/subtrack/internal/domain/provider"
	"github.com/subtrack-inc/subtrack/internal/domain/subscription"
	"github.com/subtrack-inc/subtrack/internal/infrastructure/repository/memory"
	"github.com/subtrack-inc/subtrack/internal/shared/biztime"
	"github.com/subtrack-inc/subtrack/internal/shared/logger"
)

// --- test fixtures ---

type fixture struct {
	subscriptionRepo *memory.SubscriptionRepository
	providerRepo     *memory.ProviderRepository
	provider         *provider.Provider
	log              logger.Interface
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		subscriptionRepo: memory.NewSubscriptionRepository(),
		providerRepo:     memory.NewProviderRepository(),
		log:              logger.NewLogger(),
	}

	p, err := provider.NewProvider("Netflix", "streaming", nil)
	require.NoError(t, err)
	require.NoError(t, f.providerRepo.Save(context.Background(), p))
	f.provider = p

	return f
}

func (f *fixture) createSubscription(t *testing.T, name string, amount float64, currency string, nextBillingDate time.Time) *subscription.Subscription {
	t.Helper()

	uc := NewCreateSubscriptionUseCase(f.subscriptionRepo, f.providerRepo, f.log)
	sub, err := uc.Execute(context.Background(), CreateSubscriptionCommand{
		Name:            name,
		ProviderID:      f.provider.ID(),
		CostAmount:      amount,
		Currency:        currency,
		BillingInterval: 1,
		BillingUnit:     "months",
		StartDate:       nextBillingDate.AddDate(0, 0, -30),
		NextBillingDate: nextBillingDate,
	})
	require.NoError(t, err)
	return sub
}

// recordingSender captures reminders instead of delivering them.
type recordingSender struct {
	sent []dto.PendingNotificationDTO
}

func (s *recordingSender) SendRenewalReminder(ctx context.Context, n dto.PendingNotificationDTO) error {
	s.sent = append(s.sent, n)
	return nil
}

// fixedRates returns one hardcoded conversion rate.
type fixedRates struct {
	rate float64
}

func (r *fixedRates) Rate(ctx context.Context, from, to string) (float64, error) {
	return r.rate, nil
}

// =====================================================================
// CreateSubscription
// =====================================================================

func TestCreateSubscription_Success(t *testing.T) {
	f := newFixture(t)
	nextBilling := biztime.NowUTC().AddDate(0, 0, 10)

	sub := f.createSubscription(t, "Netflix Premium", 15.99, "USD", nextBilling)

	assert.Equal(t, "Netflix Premium", sub.Name())
	assert.Equal(t, nextBilling, sub.NextBillingDate())
	assert.Len(t, sub.RenewalEvents(), 1)

	stored, err := f.subscriptionRepo.FindByID(context.Background(), sub.ID())
	require.NoError(t, err)
	require.NotNil(t, stored)
}

func TestCreateSubscription_UnknownProvider(t *testing.T) {
	f := newFixture(t)

	uc := NewCreateSubscriptionUseCase(f.subscriptionRepo, f.providerRepo, f.log)
	_, err := uc.Execute(context.Background(), CreateSubscriptionCommand{
		Name:            "Netflix",
		ProviderID:      uuid.New(),
		CostAmount:      15.99,
		Currency:        "USD",
		BillingInterval: 1,
		BillingUnit:     "months",
	})

	assert.ErrorIs(t, err, provider.ErrProviderNotFound)
}

func TestCreateSubscription_ValidationFailure(t *testing.T) {
	f := newFixture(t)

	uc := NewCreateSubscriptionUseCase(f.subscriptionRepo, f.providerRepo, f.log)
	_, err := uc.Execute(context.Background(), CreateSubscriptionCommand{
		Name:            "",
		ProviderID:      f.provider.ID(),
		CostAmount:      15.99,
		Currency:        "USD",
		BillingInterval: 1,
		BillingUnit:     "months",
	})

	assert.Error(t, err)
}

// =====================================================================
// Get / List
// =====================================================================

func TestGetSubscription_NotFound(t *testing.T) {
	f := newFixture(t)

	uc := NewGetSubscriptionUseCase(f.subscriptionRepo, f.log)
	_, err := uc.Execute(context.Background(), uuid.New())

	assert.ErrorIs(t, err, subscription.ErrSubscriptionNotFound)
}

func TestListSubscriptions_ActiveOnly(t *testing.T) {
	f := newFixture(t)
	nextBilling := biztime.NowUTC().AddDate(0, 0, 10)

	f.createSubscription(t, "Netflix", 15.99, "USD", nextBilling)
	paused := f.createSubscription(t, "Spotify", 9.99, "USD", nextBilling)

	pauseUC := NewPauseSubscriptionUseCase(f.subscriptionRepo, f.log)
	_, err := pauseUC.Execute(context.Background(), paused.ID())
	require.NoError(t, err)

	listUC := NewListSubscriptionsUseCase(f.subscriptionRepo, f.log)

	all, err := listUC.Execute(context.Background(), ListSubscriptionsQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active, err := listUC.Execute(context.Background(), ListSubscriptionsQuery{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Netflix", active[0].Name())
}

// =====================================================================
// Lifecycle
// =====================================================================

func TestPauseResumeCancel_Lifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sub := f.createSubscription(t, "Netflix", 15.99, "USD", biztime.NowUTC().AddDate(0, 0, 10))

	pauseUC := NewPauseSubscriptionUseCase(f.subscriptionRepo, f.log)
	paused, err := pauseUC.Execute(ctx, sub.ID())
	require.NoError(t, err)
	assert.True(t, paused.IsPaused())

	resumeUC := NewResumeSubscriptionUseCase(f.subscriptionRepo, f.log)
	resumed, err := resumeUC.Execute(ctx, sub.ID())
	require.NoError(t, err)
	assert.True(t, resumed.IsActive())

	cancelUC := NewCancelSubscriptionUseCase(f.subscriptionRepo, f.log)
	cancelled, err := cancelUC.Execute(ctx, sub.ID())
	require.NoError(t, err)
	assert.True(t, cancelled.IsCancelled())
	assert.NotNil(t, cancelled.CancellationDate())

	// Cancelled is terminal.
	_, err = pauseUC.Execute(ctx, sub.ID())
	assert.ErrorIs(t, err, subscription.ErrInvalidStatusTransition)
}

func TestDeleteSubscription(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sub := f.createSubscription(t, "Netflix", 15.99, "USD", biztime.NowUTC().AddDate(0, 0, 10))

	uc := NewDeleteSubscriptionUseCase(f.subscriptionRepo, f.log)
	require.NoError(t, uc.Execute(ctx, sub.ID()))

	assert.ErrorIs(t, uc.Execute(ctx, sub.ID()), subscription.ErrSubscriptionNotFound)
}

// =====================================================================
// Cost and cycle updates
// =====================================================================

func TestUpdateSubscriptionCost(t *testing.T) {
	f := newFixture(t)
	sub := f.createSubscription(t, "Netflix", 15.99, "USD", biztime.NowUTC().AddDate(0, 0, 10))

	uc := NewUpdateSubscriptionCostUseCase(f.subscriptionRepo, f.log)
	updated, err := uc.Execute(context.Background(), UpdateSubscriptionCostCommand{
		SubscriptionID: sub.ID(),
		NewAmount:      19.99,
	})
	require.NoError(t, err)

	assert.InDelta(t, 19.99, updated.Cost().AmountFloat(), 0.001)
	for _, event := range updated.RenewalEvents() {
		assert.InDelta(t, 19.99, event.Amount().AmountFloat(), 0.001)
	}
}

func TestUpdateSubscriptionCost_CurrencyChangeRejected(t *testing.T) {
	f := newFixture(t)
	sub := f.createSubscription(t, "Netflix", 15.99, "USD", biztime.NowUTC().AddDate(0, 0, 10))

	uc := NewUpdateSubscriptionCostUseCase(f.subscriptionRepo, f.log)
	_, err := uc.Execute(context.Background(), UpdateSubscriptionCostCommand{
		SubscriptionID: sub.ID(),
		NewAmount:      14.99,
		Currency:       "EUR",
	})

	assert.Error(t, err)
}

func TestUpdateBillingCycle(t *testing.T) {
	f := newFixture(t)
	sub := f.createSubscription(t, "Netflix", 15.99, "USD", biztime.NowUTC().AddDate(0, 0, 10))

	uc := NewUpdateBillingCycleUseCase(f.subscriptionRepo, f.log)
	updated, err := uc.Execute(context.Background(), UpdateBillingCycleCommand{
		SubscriptionID:  sub.ID(),
		BillingInterval: 1,
		BillingUnit:     "years",
	})
	require.NoError(t, err)

	assert.Equal(t, "1 years", updated.BillingCycle().String())
}

// =====================================================================
// Notification rules
// =====================================================================

func TestAddNotificationRule_ThenDuplicate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sub := f.createSubscription(t, "Netflix", 15.99, "USD", biztime.NowUTC().AddDate(0, 0, 10))

	uc := NewAddNotificationRuleUseCase(f.subscriptionRepo, f.log)

	rule, err := uc.Execute(ctx, AddNotificationRuleCommand{SubscriptionID: sub.ID(), Timing: "3_days"})
	require.NoError(t, err)
	assert.True(t, rule.IsEnabled())

	_, err = uc.Execute(ctx, AddNotificationRuleCommand{SubscriptionID: sub.ID(), Timing: "3_days"})
	assert.ErrorIs(t, err, subscription.ErrDuplicateNotificationRule)
}

func TestToggleNotificationRule(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sub := f.createSubscription(t, "Netflix", 15.99, "USD", biztime.NowUTC().AddDate(0, 0, 10))

	addUC := NewAddNotificationRuleUseCase(f.subscriptionRepo, f.log)
	rule, err := addUC.Execute(ctx, AddNotificationRuleCommand{SubscriptionID: sub.ID(), Timing: "1_day"})
	require.NoError(t, err)

	toggleUC := NewToggleNotificationRuleUseCase(f.subscriptionRepo, f.log)
	require.NoError(t, toggleUC.Execute(ctx, ToggleNotificationRuleCommand{
		SubscriptionID: sub.ID(),
		RuleID:         rule.ID(),
		Enabled:        false,
	}))

	stored, err := f.subscriptionRepo.FindByID(ctx, sub.ID())
	require.NoError(t, err)
	rules := stored.NotificationRules()
	require.Len(t, rules, 1)
	assert.False(t, rules[0].IsEnabled())
}

// =====================================================================
// Renewal sweep
// =====================================================================

func TestProcessRenewals_CatchesUpOverdueSubscription(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Next billing 65 days in the past: three cycles must be settled to
	// bring the schedule into the future.
	overdue := f.createSubscription(t, "Netflix", 15.99, "USD", biztime.NowUTC().AddDate(0, 0, -65))
	current := f.createSubscription(t, "Spotify", 9.99, "USD", biztime.NowUTC().AddDate(0, 0, 10))

	uc := NewProcessRenewalsUseCase(f.subscriptionRepo, f.log)
	result, err := uc.Execute(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Scanned)
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 0, result.Failed)

	stored, err := f.subscriptionRepo.FindByID(ctx, overdue.ID())
	require.NoError(t, err)
	assert.True(t, stored.NextBillingDate().After(biztime.NowUTC()))

	processed := 0
	for _, event := range stored.RenewalEvents() {
		if event.IsProcessed() {
			processed++
		}
	}
	assert.Equal(t, 3, processed)

	untouched, err := f.subscriptionRepo.FindByID(ctx, current.ID())
	require.NoError(t, err)
	assert.False(t, untouched.HasMaturedRenewal(biztime.NowUTC()))
}

func TestProcessRenewals_SkipsPaused(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sub := f.createSubscription(t, "Netflix", 15.99, "USD", biztime.NowUTC().AddDate(0, 0, -5))
	pauseUC := NewPauseSubscriptionUseCase(f.subscriptionRepo, f.log)
	_, err := pauseUC.Execute(ctx, sub.ID())
	require.NoError(t, err)

	uc := NewProcessRenewalsUseCase(f.subscriptionRepo, f.log)
	result, err := uc.Execute(ctx)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Processed)
}

// =====================================================================
// Reminders
// =====================================================================

func TestPendingNotifications_SendsAndSorts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Renewal in just over one day so the 1_day rule fires.
	dueDate := biztime.NowUTC().Add(24*time.Hour + time.Minute)
	second := f.createSubscription(t, "Spotify", 9.99, "USD", dueDate)
	first := f.createSubscription(t, "Netflix", 15.99, "USD", dueDate)

	addUC := NewAddNotificationRuleUseCase(f.subscriptionRepo, f.log)
	for _, sub := range []*subscription.Subscription{first, second} {
		_, err := addUC.Execute(ctx, AddNotificationRuleCommand{SubscriptionID: sub.ID(), Timing: "1_day"})
		require.NoError(t, err)
	}

	sender := &recordingSender{}
	uc := NewPendingNotificationsUseCase(f.subscriptionRepo, subscription.NewNotificationService(), sender, f.log)

	notifications, err := uc.Execute(ctx)
	require.NoError(t, err)

	require.Len(t, notifications, 2)
	assert.Equal(t, "Netflix", notifications[0].Subscription.Name, "sorted by name")
	assert.Equal(t, "Spotify", notifications[1].Subscription.Name)
	assert.Len(t, sender.sent, 2)
}

func TestPendingNotifications_NilSenderOnlyReports(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sub := f.createSubscription(t, "Netflix", 15.99, "USD", biztime.NowUTC().Add(24*time.Hour+time.Minute))
	addUC := NewAddNotificationRuleUseCase(f.subscriptionRepo, f.log)
	_, err := addUC.Execute(ctx, AddNotificationRuleCommand{SubscriptionID: sub.ID(), Timing: "1_day"})
	require.NoError(t, err)

	uc := NewPendingNotificationsUseCase(f.subscriptionRepo, subscription.NewNotificationService(), nil, f.log)

	notifications, err := uc.Execute(ctx)
	require.NoError(t, err)
	assert.Len(t, notifications, 1)
}

// =====================================================================
// Insights
// =====================================================================

func TestGetInsights_TotalsAndBreakdown(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.createSubscription(t, "Netflix", 15.99, "USD", biztime.NowUTC().AddDate(0, 0, 10))
	paused := f.createSubscription(t, "Spotify", 9.99, "USD", biztime.NowUTC().AddDate(0, 0, 10))
	pauseUC := NewPauseSubscriptionUseCase(f.subscriptionRepo, f.log)
	_, err := pauseUC.Execute(ctx, paused.ID())
	require.NoError(t, err)

	uc := NewGetInsightsUseCase(f.subscriptionRepo, subscription.NewAnalysisService(), &fixedRates{rate: 1}, f.log)
	insights, err := uc.Execute(ctx, GetInsightsQuery{})
	require.NoError(t, err)

	assert.Equal(t, 2, insights.TotalSubscriptions)
	assert.Equal(t, 1, insights.ActiveSubscriptions)
	assert.InDelta(t, 15.99, insights.MonthlyTotal.Amount, 0.01)
	assert.InDelta(t, 15.99*12, insights.AnnualTotal.Amount, 0.01)
	require.Len(t, insights.UpcomingRenewals, 1)
}

func TestGetInsights_CurrencyConversion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.createSubscription(t, "Netflix", 10, "USD", biztime.NowUTC().AddDate(0, 0, 10))

	uc := NewGetInsightsUseCase(f.subscriptionRepo, subscription.NewAnalysisService(), &fixedRates{rate: 0.9}, f.log)
	insights, err := uc.Execute(ctx, GetInsightsQuery{TargetCurrency: "EUR"})
	require.NoError(t, err)

	assert.Equal(t, "EUR", insights.MonthlyTotal.Currency)
	assert.InDelta(t, 9.0, insights.MonthlyTotal.Amount, 0.01)
}
