package subscription

import (
	"fmt"
	"sort"
	"time"

	vo "github.com/subtrack-inc/subtrack/internal/domain/subscription/valueobjects"
)

// DefaultCurrency is assumed when aggregating an empty subscription set.
const DefaultCurrency = "USD"

// AnalysisService is a stateless domain service that aggregates cost and
// renewal information across subscriptions. It operates on fetched snapshots
// and never mutates an aggregate.
type AnalysisService struct{}

func NewAnalysisService() *AnalysisService {
	return &AnalysisService{}
}

// CategoryCost pairs a provider category with its monthly total. Results keep
// the first-seen order of categories.
type CategoryCost struct {
	Category string
	Monthly  vo.Money
}

// TotalMonthlyCost sums the monthly-equivalent cost of every subscription
// that contributes to expenses. The set must not span more than one
// currency; multi-currency aggregation is unsupported.
func (s *AnalysisService) TotalMonthlyCost(subs []*Subscription) (vo.Money, error) {
	return s.totalCost(subs, (*Subscription).CalculateMonthlyCost)
}

// TotalAnnualCost sums the annual-equivalent cost of every subscription that
// contributes to expenses.
func (s *AnalysisService) TotalAnnualCost(subs []*Subscription) (vo.Money, error) {
	return s.totalCost(subs, (*Subscription).CalculateAnnualCost)
}

func (s *AnalysisService) totalCost(subs []*Subscription, cost func(*Subscription) vo.Money) (vo.Money, error) {
	if len(subs) == 0 {
		return vo.ZeroMoney(DefaultCurrency)
	}

	total := subs[0].Cost().Zero()
	for _, sub := range subs {
		if !sub.ContributesToExpenses() {
			continue
		}
		sum, err := total.Add(cost(sub))
		if err != nil {
			return vo.Money{}, fmt.Errorf("%w: %s and %s", ErrCurrencyMismatch, total.Currency(), sub.Cost().Currency())
		}
		total = sum
	}
	return total, nil
}

// UpcomingRenewals collects the unprocessed renewal events of active
// subscriptions falling within the horizon, ordered ascending by renewal
// date. The sort is stable, so same-day events keep insertion order.
func (s *AnalysisService) UpcomingRenewals(subs []*Subscription, now time.Time, horizonDays int) []RenewalEvent {
	var upcoming []RenewalEvent
	for _, sub := range subs {
		if !sub.IsActive() {
			continue
		}
		for _, event := range sub.RenewalEvents() {
			if !event.IsProcessed() && event.IsUpcoming(now, horizonDays) {
				upcoming = append(upcoming, event)
			}
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].RenewalDate().Before(upcoming[j].RenewalDate())
	})
	return upcoming
}

// GroupByCategory groups subscriptions by provider category, preserving the
// first-seen order of categories.
func (s *AnalysisService) GroupByCategory(subs []*Subscription) ([]string, map[string][]*Subscription) {
	var order []string
	groups := make(map[string][]*Subscription)

	for _, sub := range subs {
		category := sub.Provider().Category()
		if _, seen := groups[category]; !seen {
			order = append(order, category)
		}
		groups[category] = append(groups[category], sub)
	}
	return order, groups
}

// CostBreakdownByCategory returns the monthly total per provider category in
// first-seen category order.
func (s *AnalysisService) CostBreakdownByCategory(subs []*Subscription) ([]CategoryCost, error) {
	order, groups := s.GroupByCategory(subs)

	breakdown := make([]CategoryCost, 0, len(order))
	for _, category := range order {
		total, err := s.TotalMonthlyCost(groups[category])
		if err != nil {
			return nil, fmt.Errorf("category %s: %w", category, err)
		}
		breakdown = append(breakdown, CategoryCost{Category: category, Monthly: total})
	}
	return breakdown, nil
}
