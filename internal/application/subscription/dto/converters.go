package dto

import (
	"github.com/subtrack-inc/subtrack/internal/domain/provider"
	"github.com/subtrack-inc/subtrack/internal/domain/subscription"
	vo "github.com/subtrack-inc/subtrack/internal/domain/subscription/valueobjects"
	"github.com/subtrack-inc/subtrack/internal/shared/mapper"
)

func FromMoney(m vo.Money) MoneyDTO {
	return MoneyDTO{
		Amount:   m.Amount().Round(2).InexactFloat64(),
		Currency: m.Currency(),
	}
}

func FromProvider(p *provider.Provider) ProviderDTO {
	return ProviderDTO{
		ID:       p.ID().String(),
		Name:     p.Name(),
		Category: p.Category(),
		Website:  p.Website(),
	}
}

func FromNotificationRule(r subscription.NotificationRule) NotificationRuleDTO {
	return NotificationRuleDTO{
		ID:         r.ID().String(),
		Timing:     r.Timing().String(),
		DaysBefore: r.DaysBefore(),
		IsEnabled:  r.IsEnabled(),
	}
}

func FromRenewalEvent(e subscription.RenewalEvent) RenewalEventDTO {
	return RenewalEventDTO{
		ID:             e.ID().String(),
		SubscriptionID: e.SubscriptionID().String(),
		RenewalDate:    e.RenewalDate(),
		Amount:         FromMoney(e.Amount()),
		IsProcessed:    e.IsProcessed(),
	}
}

func FromSubscription(s *subscription.Subscription) SubscriptionDTO {
	return SubscriptionDTO{
		ID:                s.ID().String(),
		Name:              s.Name(),
		Provider:          FromProvider(s.Provider()),
		Cost:              FromMoney(s.Cost()),
		BillingInterval:   s.BillingCycle().Interval(),
		BillingUnit:       s.BillingCycle().Unit().String(),
		Status:            s.Status().String(),
		StartDate:         s.StartDate(),
		NextBillingDate:   s.NextBillingDate(),
		CancellationDate:  s.CancellationDate(),
		Notes:             s.Notes(),
		MonthlyCost:       FromMoney(s.CalculateMonthlyCost()),
		AnnualCost:        FromMoney(s.CalculateAnnualCost()),
		NotificationRules: mapper.MapSlice(s.NotificationRules(), FromNotificationRule),
		RenewalEvents:     mapper.MapSlice(s.RenewalEvents(), FromRenewalEvent),
		CreatedAt:         s.CreatedAt(),
		UpdatedAt:         s.UpdatedAt(),
	}
}

func FromSubscriptions(subs []*subscription.Subscription) []SubscriptionDTO {
	return mapper.MapSlice(subs, FromSubscription)
}

func FromCategoryCost(c subscription.CategoryCost) CategoryCostDTO {
	return CategoryCostDTO{
		Category: c.Category,
		Monthly:  FromMoney(c.Monthly),
	}
}
