package valueobjects

import (
	"fmt"
	"strings"
)

// NotificationTiming encodes how far ahead of a renewal a reminder fires.
type NotificationTiming string

const (
	TimingOneDayBefore    NotificationTiming = "1_day"
	TimingThreeDaysBefore NotificationTiming = "3_days"
	TimingOneWeekBefore   NotificationTiming = "1_week"
	TimingTwoWeeksBefore  NotificationTiming = "2_weeks"
)

var ValidTimings = map[NotificationTiming]bool{
	TimingOneDayBefore:    true,
	TimingThreeDaysBefore: true,
	TimingOneWeekBefore:   true,
	TimingTwoWeeksBefore:  true,
}

var timingDays = map[NotificationTiming]int{
	TimingOneDayBefore:    1,
	TimingThreeDaysBefore: 3,
	TimingOneWeekBefore:   7,
	TimingTwoWeeksBefore:  14,
}

func ParseNotificationTiming(value string) (NotificationTiming, error) {
	timing := NotificationTiming(strings.ToLower(strings.TrimSpace(value)))
	if !ValidTimings[timing] {
		return "", fmt.Errorf("invalid notification timing: %q", value)
	}
	return timing, nil
}

func (t NotificationTiming) String() string {
	return string(t)
}

// DaysBefore returns the number of days before the renewal date at which a
// rule with this timing fires.
func (t NotificationTiming) DaysBefore() int {
	days, exists := timingDays[t]
	if !exists {
		return 1
	}
	return days
}
