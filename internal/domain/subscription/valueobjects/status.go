package valueobjects

import (
	"fmt"
	"strings"
)

type SubscriptionStatus string

const (
	StatusActive    SubscriptionStatus = "active"
	StatusPaused    SubscriptionStatus = "paused"
	StatusCancelled SubscriptionStatus = "cancelled"
)

var ValidStatuses = map[SubscriptionStatus]bool{
	StatusActive:    true,
	StatusPaused:    true,
	StatusCancelled: true,
}

func ParseSubscriptionStatus(value string) (SubscriptionStatus, error) {
	status := SubscriptionStatus(strings.ToLower(strings.TrimSpace(value)))
	if !ValidStatuses[status] {
		return "", fmt.Errorf("invalid subscription status: %q", value)
	}
	return status, nil
}

func (s SubscriptionStatus) String() string {
	return string(s)
}

// ContributesToExpenses reports whether a subscription in this status counts
// toward recurring cost totals. Paused and cancelled subscriptions never do.
func (s SubscriptionStatus) ContributesToExpenses() bool {
	return s == StatusActive
}

func (s SubscriptionStatus) CanTransitionTo(target SubscriptionStatus) bool {
	transitions := map[SubscriptionStatus][]SubscriptionStatus{
		StatusActive:    {StatusPaused, StatusCancelled},
		StatusPaused:    {StatusActive, StatusCancelled},
		StatusCancelled: {},
	}

	allowed, exists := transitions[s]
	if !exists {
		return false
	}

	for _, status := range allowed {
		if status == target {
			return true
		}
	}
	return false
}
