package valueobjects

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrInvalidInterval is returned when a billing interval is not positive.
	ErrInvalidInterval = errors.New("billing interval must be positive")
	// ErrInvalidUnit is returned when a billing unit is not recognized.
	ErrInvalidUnit = errors.New("invalid billing cycle unit")
)

type CycleUnit string

const (
	UnitDays   CycleUnit = "days"
	UnitWeeks  CycleUnit = "weeks"
	UnitMonths CycleUnit = "months"
	UnitYears  CycleUnit = "years"
)

var ValidCycleUnits = map[CycleUnit]bool{
	UnitDays:   true,
	UnitWeeks:  true,
	UnitMonths: true,
	UnitYears:  true,
}

func ParseCycleUnit(value string) (CycleUnit, error) {
	unit := CycleUnit(strings.ToLower(strings.TrimSpace(value)))
	if !ValidCycleUnits[unit] {
		return "", fmt.Errorf("%w: %q", ErrInvalidUnit, value)
	}
	return unit, nil
}

func (u CycleUnit) String() string {
	return string(u)
}

// BillingCycle is an immutable recurrence interval, e.g. every 1 months or
// every 2 weeks.
type BillingCycle struct {
	interval int
	unit     CycleUnit
}

func NewBillingCycle(interval int, unit CycleUnit) (BillingCycle, error) {
	if interval <= 0 {
		return BillingCycle{}, fmt.Errorf("%w: %d", ErrInvalidInterval, interval)
	}
	if !ValidCycleUnits[unit] {
		return BillingCycle{}, fmt.Errorf("%w: %q", ErrInvalidUnit, unit)
	}
	return BillingCycle{interval: interval, unit: unit}, nil
}

func (c BillingCycle) Interval() int {
	return c.interval
}

func (c BillingCycle) Unit() CycleUnit {
	return c.unit
}

// NextDate calculates the next billing date from a reference instant.
// Months and years use fixed 30/365 day approximations rather than calendar
// arithmetic; billing periods stay uniform regardless of month boundaries.
func (c BillingCycle) NextDate(from time.Time) time.Time {
	switch c.unit {
	case UnitDays:
		return from.AddDate(0, 0, c.interval)
	case UnitWeeks:
		return from.AddDate(0, 0, c.interval*7)
	case UnitMonths:
		return from.AddDate(0, 0, c.interval*30)
	case UnitYears:
		return from.AddDate(0, 0, c.interval*365)
	default:
		return from
	}
}

// MonthlyEquivalent returns the multiplier that normalizes a cost on this
// cycle to a monthly amount.
func (c BillingCycle) MonthlyEquivalent() float64 {
	switch c.unit {
	case UnitDays:
		return 30.0 / float64(c.interval)
	case UnitWeeks:
		return 4.33 / float64(c.interval)
	case UnitMonths:
		return 1.0 / float64(c.interval)
	case UnitYears:
		return 1.0 / (float64(c.interval) * 12)
	default:
		return 1.0
	}
}

// AnnualEquivalent returns the multiplier that normalizes a cost on this
// cycle to an annual amount.
func (c BillingCycle) AnnualEquivalent() float64 {
	return c.MonthlyEquivalent() * 12
}

func (c BillingCycle) Equals(other BillingCycle) bool {
	return c.interval == other.interval && c.unit == other.unit
}

func (c BillingCycle) String() string {
	return fmt.Sprintf("%d %s", c.interval, c.unit)
}
