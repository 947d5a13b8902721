// Package dto defines the data shapes crossing the application boundary.
// Amounts are rounded to two decimal places for display; the domain keeps
// full precision.
package dto

import "time"

type MoneyDTO struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type ProviderDTO struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Website  *string `json:"website,omitempty"`
}

type NotificationRuleDTO struct {
	ID         string `json:"id"`
	Timing     string `json:"timing"`
	DaysBefore int    `json:"days_before"`
	IsEnabled  bool   `json:"is_enabled"`
}

type RenewalEventDTO struct {
	ID             string    `json:"id"`
	SubscriptionID string    `json:"subscription_id"`
	RenewalDate    time.Time `json:"renewal_date"`
	Amount         MoneyDTO  `json:"amount"`
	IsProcessed    bool      `json:"is_processed"`
}

type SubscriptionDTO struct {
	ID                string                `json:"id"`
	Name              string                `json:"name"`
	Provider          ProviderDTO           `json:"provider"`
	Cost              MoneyDTO              `json:"cost"`
	BillingInterval   int                   `json:"billing_interval"`
	BillingUnit       string                `json:"billing_unit"`
	Status            string                `json:"status"`
	StartDate         time.Time             `json:"start_date"`
	NextBillingDate   time.Time             `json:"next_billing_date"`
	CancellationDate  *time.Time            `json:"cancellation_date,omitempty"`
	Notes             *string               `json:"notes,omitempty"`
	MonthlyCost       MoneyDTO              `json:"monthly_cost"`
	AnnualCost        MoneyDTO              `json:"annual_cost"`
	NotificationRules []NotificationRuleDTO `json:"notification_rules"`
	RenewalEvents     []RenewalEventDTO     `json:"renewal_events"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
}

type CategoryCostDTO struct {
	Category string   `json:"category"`
	Monthly  MoneyDTO `json:"monthly"`
}

// InsightsDTO is the aggregated payload returned by the insights use case.
type InsightsDTO struct {
	TotalSubscriptions  int               `json:"total_subscriptions"`
	ActiveSubscriptions int               `json:"active_subscriptions"`
	MonthlyTotal        MoneyDTO          `json:"monthly_total"`
	AnnualTotal         MoneyDTO          `json:"annual_total"`
	CategoryBreakdown   []CategoryCostDTO `json:"category_breakdown"`
	UpcomingRenewals    []RenewalEventDTO `json:"upcoming_renewals"`
}

// PendingNotificationDTO pairs a subscription with its due reminder rules.
type PendingNotificationDTO struct {
	Subscription SubscriptionDTO       `json:"subscription"`
	Rules        []NotificationRuleDTO `json:"rules"`
}
