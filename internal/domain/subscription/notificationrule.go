package subscription

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	vo "github.com/subtrack-inc/subtrack/internal/domain/subscription/valueobjects"
)

// NotificationRule decides when a renewal reminder fires. Rules are owned by
// exactly one subscription, at most one per timing value.
type NotificationRule struct {
	id        uuid.UUID
	timing    vo.NotificationTiming
	isEnabled bool
}

func NewNotificationRule(timing vo.NotificationTiming) (NotificationRule, error) {
	if !vo.ValidTimings[timing] {
		return NotificationRule{}, fmt.Errorf("invalid notification timing: %q", timing)
	}
	return NotificationRule{
		id:        uuid.New(),
		timing:    timing,
		isEnabled: true,
	}, nil
}

// ReconstructNotificationRule rebuilds a rule from persistence.
func ReconstructNotificationRule(id uuid.UUID, timing vo.NotificationTiming, isEnabled bool) (NotificationRule, error) {
	if id == uuid.Nil {
		return NotificationRule{}, fmt.Errorf("notification rule ID cannot be nil")
	}
	if !vo.ValidTimings[timing] {
		return NotificationRule{}, fmt.Errorf("invalid notification timing: %q", timing)
	}
	return NotificationRule{
		id:        id,
		timing:    timing,
		isEnabled: isEnabled,
	}, nil
}

func (r NotificationRule) ID() uuid.UUID {
	return r.id
}

func (r NotificationRule) Timing() vo.NotificationTiming {
	return r.timing
}

func (r NotificationRule) IsEnabled() bool {
	return r.isEnabled
}

// DaysBefore returns how many days before the renewal this rule fires.
func (r NotificationRule) DaysBefore() int {
	return r.timing.DaysBefore()
}

// ShouldNotify reports whether the rule fires right now for the given renewal
// date. The firing window is exact: the whole-day distance to the renewal must
// equal the rule's lead time, so each rule fires once per renewal.
func (r NotificationRule) ShouldNotify(renewalDate, now time.Time) bool {
	if !r.isEnabled {
		return false
	}
	return daysBetween(now, renewalDate) == r.timing.DaysBefore()
}
