package subscription

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/subtrack-inc/subtrack/internal/domain/provider"
	vo "github.com/subtrack-inc/subtrack/internal/domain/subscription/valueobjects"
	"github.com/subtrack-inc/subtrack/internal/shared/biztime"
)

// Subscription is the aggregate root for a recurring subscription. It owns
// its notification rules and renewal events and is the unit of consistency:
// every invariant-preserving mutation goes through one of its methods, and
// the surrounding application serializes mutations per subscription ID. The
// aggregate itself performs no locking.
type Subscription struct {
	id                uuid.UUID
	name              string
	provider          *provider.Provider
	cost              vo.Money
	billingCycle      vo.BillingCycle
	status            vo.SubscriptionStatus
	startDate         time.Time
	nextBillingDate   time.Time
	cancellationDate  *time.Time
	notes             *string
	notificationRules []NotificationRule
	renewalEvents     []RenewalEvent
	createdAt         time.Time
	updatedAt         time.Time
}

// NewSubscription creates an active subscription and seeds its first
// unprocessed renewal event at the next billing date.
func NewSubscription(
	name string,
	prov *provider.Provider,
	cost vo.Money,
	billingCycle vo.BillingCycle,
	startDate, nextBillingDate time.Time,
	notes *string,
) (*Subscription, error) {
	if name == "" {
		return nil, fmt.Errorf("subscription name is required")
	}
	if prov == nil {
		return nil, fmt.Errorf("subscription provider is required")
	}

	now := biztime.NowUTC()
	s := &Subscription{
		id:              uuid.New(),
		name:            name,
		provider:        prov,
		cost:            cost,
		billingCycle:    billingCycle,
		status:          vo.StatusActive,
		startDate:       startDate,
		nextBillingDate: nextBillingDate,
		notes:           notes,
		createdAt:       now,
		updatedAt:       now,
	}
	s.generateNextRenewalEvent()

	return s, nil
}

// SubscriptionReconstructParams carries every persisted field needed to
// rehydrate an aggregate.
type SubscriptionReconstructParams struct {
	ID                uuid.UUID
	Name              string
	Provider          *provider.Provider
	Cost              vo.Money
	BillingCycle      vo.BillingCycle
	Status            vo.SubscriptionStatus
	StartDate         time.Time
	NextBillingDate   time.Time
	CancellationDate  *time.Time
	Notes             *string
	NotificationRules []NotificationRule
	RenewalEvents     []RenewalEvent
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ReconstructSubscription rebuilds an aggregate from persistence, re-checking
// the invariants the constructor enforces.
func ReconstructSubscription(params SubscriptionReconstructParams) (*Subscription, error) {
	if params.ID == uuid.Nil {
		return nil, fmt.Errorf("subscription ID cannot be nil")
	}
	if params.Name == "" {
		return nil, fmt.Errorf("subscription name is required")
	}
	if params.Provider == nil {
		return nil, fmt.Errorf("subscription provider is required")
	}
	if !vo.ValidStatuses[params.Status] {
		return nil, fmt.Errorf("invalid subscription status: %s", params.Status)
	}
	if params.Status == vo.StatusCancelled && params.CancellationDate == nil {
		return nil, fmt.Errorf("cancelled subscription must carry a cancellation date")
	}

	return &Subscription{
		id:                params.ID,
		name:              params.Name,
		provider:          params.Provider,
		cost:              params.Cost,
		billingCycle:      params.BillingCycle,
		status:            params.Status,
		startDate:         params.StartDate,
		nextBillingDate:   params.NextBillingDate,
		cancellationDate:  params.CancellationDate,
		notes:             params.Notes,
		notificationRules: params.NotificationRules,
		renewalEvents:     params.RenewalEvents,
		createdAt:         params.CreatedAt,
		updatedAt:         params.UpdatedAt,
	}, nil
}

func (s *Subscription) ID() uuid.UUID {
	return s.id
}

func (s *Subscription) Name() string {
	return s.name
}

func (s *Subscription) Provider() *provider.Provider {
	return s.provider
}

func (s *Subscription) Cost() vo.Money {
	return s.cost
}

func (s *Subscription) BillingCycle() vo.BillingCycle {
	return s.billingCycle
}

func (s *Subscription) Status() vo.SubscriptionStatus {
	return s.status
}

func (s *Subscription) StartDate() time.Time {
	return s.startDate
}

func (s *Subscription) NextBillingDate() time.Time {
	return s.nextBillingDate
}

func (s *Subscription) CancellationDate() *time.Time {
	return s.cancellationDate
}

func (s *Subscription) Notes() *string {
	return s.notes
}

func (s *Subscription) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Subscription) UpdatedAt() time.Time {
	return s.updatedAt
}

// NotificationRules returns a snapshot of the owned rules. Mutating the
// returned slice never touches the aggregate.
func (s *Subscription) NotificationRules() []NotificationRule {
	rules := make([]NotificationRule, len(s.notificationRules))
	copy(rules, s.notificationRules)
	return rules
}

// RenewalEvents returns a snapshot of the owned events in insertion order.
func (s *Subscription) RenewalEvents() []RenewalEvent {
	events := make([]RenewalEvent, len(s.renewalEvents))
	copy(events, s.renewalEvents)
	return events
}

func (s *Subscription) IsActive() bool {
	return s.status == vo.StatusActive
}

func (s *Subscription) IsPaused() bool {
	return s.status == vo.StatusPaused
}

func (s *Subscription) IsCancelled() bool {
	return s.status == vo.StatusCancelled
}

// ContributesToExpenses reports whether this subscription counts toward
// aggregate cost totals.
func (s *Subscription) ContributesToExpenses() bool {
	return s.status.ContributesToExpenses()
}

// Pause suspends an active subscription.
func (s *Subscription) Pause() error {
	if !s.status.CanTransitionTo(vo.StatusPaused) {
		return ErrInvalidTransition(s.status, vo.StatusPaused)
	}

	s.status = vo.StatusPaused
	s.updatedAt = biztime.NowUTC()
	return nil
}

// Resume reactivates a paused subscription. The next billing date restarts
// from now and a fresh unprocessed renewal event is scheduled for it.
func (s *Subscription) Resume(now time.Time) error {
	if !s.IsPaused() {
		return ErrInvalidTransition(s.status, vo.StatusActive)
	}

	s.status = vo.StatusActive
	s.nextBillingDate = s.billingCycle.NextDate(now)
	s.generateNextRenewalEvent()
	s.updatedAt = biztime.NowUTC()
	return nil
}

// Cancel terminates the subscription. This is irreversible: the cancellation
// date is recorded and every unprocessed renewal event is discarded, leaving
// only the processed history.
func (s *Subscription) Cancel(now time.Time) error {
	if !s.status.CanTransitionTo(vo.StatusCancelled) {
		return ErrInvalidTransition(s.status, vo.StatusCancelled)
	}

	s.status = vo.StatusCancelled
	s.cancellationDate = &now
	s.pruneUnprocessedEvents()
	s.updatedAt = biztime.NowUTC()
	return nil
}

// UpdateCost applies a price change. The currency cannot change. Every
// unprocessed renewal event is rewritten to the new amount; processed events
// are history and stay untouched.
func (s *Subscription) UpdateCost(newCost vo.Money) error {
	if newCost.Currency() != s.cost.Currency() {
		return fmt.Errorf("%w: %s to %s", vo.ErrIncompatibleCurrency, s.cost.Currency(), newCost.Currency())
	}

	s.cost = newCost
	for i := range s.renewalEvents {
		if !s.renewalEvents[i].isProcessed {
			s.renewalEvents[i].amount = newCost
		}
	}
	s.updatedAt = biztime.NowUTC()
	return nil
}

// UpdateBillingCycle replaces the recurrence cycle. The next billing date is
// recomputed from now, unprocessed events are discarded, and a single fresh
// event is scheduled if the subscription is still active.
func (s *Subscription) UpdateBillingCycle(newCycle vo.BillingCycle, now time.Time) {
	s.billingCycle = newCycle
	s.nextBillingDate = newCycle.NextDate(now)
	s.pruneUnprocessedEvents()
	if s.IsActive() {
		s.generateNextRenewalEvent()
	}
	s.updatedAt = biztime.NowUTC()
}

// ProcessRenewal settles the earliest matured unprocessed renewal event, if
// any, and schedules the next one. The next billing date advances by one
// cycle step from its previous value rather than from now, so late
// processing never distorts the billing cadence.
func (s *Subscription) ProcessRenewal(now time.Time) (RenewalEvent, error) {
	if !s.IsActive() {
		return RenewalEvent{}, fmt.Errorf("%w: cannot process renewal with status %s", ErrInvalidStatusTransition, s.status)
	}

	for i := range s.renewalEvents {
		if !s.renewalEvents[i].isProcessed && s.renewalEvents[i].IsMatured(now) {
			s.renewalEvents[i].isProcessed = true
			break
		}
	}

	s.nextBillingDate = s.billingCycle.NextDate(s.nextBillingDate)
	next := s.generateNextRenewalEvent()
	s.updatedAt = biztime.NowUTC()
	return next, nil
}

// HasMaturedRenewal reports whether any unprocessed renewal event has reached
// its renewal date.
func (s *Subscription) HasMaturedRenewal(now time.Time) bool {
	for i := range s.renewalEvents {
		if !s.renewalEvents[i].isProcessed && s.renewalEvents[i].IsMatured(now) {
			return true
		}
	}
	return false
}

// AddNotificationRule attaches a reminder rule. At most one rule per timing
// value may exist.
func (s *Subscription) AddNotificationRule(timing vo.NotificationTiming) (NotificationRule, error) {
	for _, rule := range s.notificationRules {
		if rule.timing == timing {
			return NotificationRule{}, ErrDuplicateRule(timing)
		}
	}

	rule, err := NewNotificationRule(timing)
	if err != nil {
		return NotificationRule{}, err
	}

	s.notificationRules = append(s.notificationRules, rule)
	s.updatedAt = biztime.NowUTC()
	return rule, nil
}

// SetNotificationRuleEnabled toggles an owned rule by ID.
func (s *Subscription) SetNotificationRuleEnabled(ruleID uuid.UUID, enabled bool) error {
	for i := range s.notificationRules {
		if s.notificationRules[i].id == ruleID {
			s.notificationRules[i].isEnabled = enabled
			s.updatedAt = biztime.NowUTC()
			return nil
		}
	}
	return fmt.Errorf("notification rule %s not found on subscription %s", ruleID, s.id)
}

// CalculateMonthlyCost returns the cost normalized to one month. Paused and
// cancelled subscriptions report zero in their own currency.
func (s *Subscription) CalculateMonthlyCost() vo.Money {
	if !s.ContributesToExpenses() {
		return s.cost.Zero()
	}
	return s.cost.Scale(s.billingCycle.MonthlyEquivalent())
}

// CalculateAnnualCost returns the cost normalized to one year.
func (s *Subscription) CalculateAnnualCost() vo.Money {
	if !s.ContributesToExpenses() {
		return s.cost.Zero()
	}
	return s.cost.Scale(s.billingCycle.AnnualEquivalent())
}

// PendingNotifications returns the enabled rules whose firing window is now,
// measured against the next billing date. Inactive subscriptions never have
// pending notifications.
func (s *Subscription) PendingNotifications(now time.Time) []NotificationRule {
	if !s.IsActive() {
		return nil
	}

	var pending []NotificationRule
	for _, rule := range s.notificationRules {
		if rule.ShouldNotify(s.nextBillingDate, now) {
			pending = append(pending, rule)
		}
	}
	return pending
}

func (s *Subscription) generateNextRenewalEvent() RenewalEvent {
	event := NewRenewalEvent(s.id, s.nextBillingDate, s.cost)
	s.renewalEvents = append(s.renewalEvents, event)
	return event
}

func (s *Subscription) pruneUnprocessedEvents() {
	kept := s.renewalEvents[:0]
	for _, event := range s.renewalEvents {
		if event.isProcessed {
			kept = append(kept, event)
		}
	}
	s.renewalEvents = kept
}
