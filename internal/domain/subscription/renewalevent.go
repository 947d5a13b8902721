package subscription

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	vo "github.com/subtrack-inc/subtrack/internal/domain/subscription/valueobjects"
)

// RenewalEvent represents a scheduled (or already charged) renewal of a
// subscription. Events are owned by exactly one subscription; the aggregate
// appends, prunes and mutates them, callers only see copies.
type RenewalEvent struct {
	id             uuid.UUID
	subscriptionID uuid.UUID
	renewalDate    time.Time
	amount         vo.Money
	isProcessed    bool
}

func NewRenewalEvent(subscriptionID uuid.UUID, renewalDate time.Time, amount vo.Money) RenewalEvent {
	return RenewalEvent{
		id:             uuid.New(),
		subscriptionID: subscriptionID,
		renewalDate:    renewalDate,
		amount:         amount,
	}
}

// ReconstructRenewalEvent rebuilds an event from persistence.
func ReconstructRenewalEvent(
	id, subscriptionID uuid.UUID,
	renewalDate time.Time,
	amount vo.Money,
	isProcessed bool,
) (RenewalEvent, error) {
	if id == uuid.Nil {
		return RenewalEvent{}, fmt.Errorf("renewal event ID cannot be nil")
	}
	if subscriptionID == uuid.Nil {
		return RenewalEvent{}, fmt.Errorf("renewal event subscription ID cannot be nil")
	}
	return RenewalEvent{
		id:             id,
		subscriptionID: subscriptionID,
		renewalDate:    renewalDate,
		amount:         amount,
		isProcessed:    isProcessed,
	}, nil
}

func (e RenewalEvent) ID() uuid.UUID {
	return e.id
}

func (e RenewalEvent) SubscriptionID() uuid.UUID {
	return e.subscriptionID
}

func (e RenewalEvent) RenewalDate() time.Time {
	return e.renewalDate
}

func (e RenewalEvent) Amount() vo.Money {
	return e.amount
}

func (e RenewalEvent) IsProcessed() bool {
	return e.isProcessed
}

// IsUpcoming reports whether the renewal falls within the next `days` days.
func (e RenewalEvent) IsUpcoming(now time.Time, days int) bool {
	until := daysBetween(now, e.renewalDate)
	return until >= 0 && until <= days
}

// IsMatured reports whether the renewal date has been reached.
func (e RenewalEvent) IsMatured(now time.Time) bool {
	return !e.renewalDate.After(now)
}

// daysBetween returns the whole number of days from one instant to another,
// rounding toward negative infinity so a renewal one hour in the past counts
// as -1 days away, not 0.
func daysBetween(from, to time.Time) int {
	return int(math.Floor(to.Sub(from).Hours() / 24))
}
