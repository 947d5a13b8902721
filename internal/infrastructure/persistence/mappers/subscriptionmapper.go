package mappers

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/subtrack-inc/subtrack/internal/domain/subscription"
	vo "github.com/subtrack-inc/subtrack/internal/domain/subscription/valueobjects"
	"github.com/subtrack-inc/subtrack/internal/infrastructure/persistence/models"
)

// notificationRuleRecord is the JSON shape of a notification rule inside the
// subscription row.
type notificationRuleRecord struct {
	ID        string `json:"id"`
	Timing    string `json:"timing"`
	IsEnabled bool   `json:"is_enabled"`
}

type SubscriptionMapper interface {
	ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error)
	ToModel(entity *subscription.Subscription) (*models.SubscriptionModel, error)
	ToEntities(models []*models.SubscriptionModel) ([]*subscription.Subscription, error)
}

type SubscriptionMapperImpl struct {
	providerMapper ProviderMapper
}

func NewSubscriptionMapper(providerMapper ProviderMapper) SubscriptionMapper {
	return &SubscriptionMapperImpl{providerMapper: providerMapper}
}

func (m *SubscriptionMapperImpl) ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error) {
	if model == nil {
		return nil, nil
	}

	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid subscription ID %q: %w", model.ID, err)
	}

	prov, err := m.providerMapper.ToEntity(model.Provider)
	if err != nil {
		return nil, fmt.Errorf("failed to map provider: %w", err)
	}
	if prov == nil {
		return nil, fmt.Errorf("subscription %s has no provider loaded", model.ID)
	}

	cost, err := vo.NewMoney(model.CostAmount, model.CostCurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to parse cost: %w", err)
	}

	unit, err := vo.ParseCycleUnit(model.BillingUnit)
	if err != nil {
		return nil, fmt.Errorf("failed to parse billing cycle: %w", err)
	}
	cycle, err := vo.NewBillingCycle(model.BillingInterval, unit)
	if err != nil {
		return nil, fmt.Errorf("failed to parse billing cycle: %w", err)
	}

	status := vo.SubscriptionStatus(model.Status)
	if !vo.ValidStatuses[status] {
		return nil, fmt.Errorf("invalid subscription status: %s", model.Status)
	}

	rules, err := m.rulesToEntities(model.NotificationRules)
	if err != nil {
		return nil, err
	}

	events := make([]subscription.RenewalEvent, 0, len(model.RenewalEvents))
	for _, eventModel := range model.RenewalEvents {
		event, err := m.eventToEntity(eventModel)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	entity, err := subscription.ReconstructSubscription(subscription.SubscriptionReconstructParams{
		ID:                id,
		Name:              model.Name,
		Provider:          prov,
		Cost:              cost,
		BillingCycle:      cycle,
		Status:            status,
		StartDate:         model.StartDate,
		NextBillingDate:   model.NextBillingDate,
		CancellationDate:  model.CancellationDate,
		Notes:             model.Notes,
		NotificationRules: rules,
		RenewalEvents:     events,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct subscription entity: %w", err)
	}
	return entity, nil
}

func (m *SubscriptionMapperImpl) ToModel(entity *subscription.Subscription) (*models.SubscriptionModel, error) {
	if entity == nil {
		return nil, nil
	}

	rulesJSON, err := m.rulesToJSON(entity.NotificationRules())
	if err != nil {
		return nil, err
	}

	events := entity.RenewalEvents()
	eventModels := make([]models.RenewalEventModel, 0, len(events))
	for _, event := range events {
		eventModels = append(eventModels, models.RenewalEventModel{
			ID:             event.ID().String(),
			SubscriptionID: event.SubscriptionID().String(),
			RenewalDate:    event.RenewalDate(),
			Amount:         event.Amount().Amount(),
			Currency:       event.Amount().Currency(),
			IsProcessed:    event.IsProcessed(),
		})
	}

	return &models.SubscriptionModel{
		ID:                entity.ID().String(),
		Name:              entity.Name(),
		ProviderID:        entity.Provider().ID().String(),
		CostAmount:        entity.Cost().Amount(),
		CostCurrency:      entity.Cost().Currency(),
		BillingInterval:   entity.BillingCycle().Interval(),
		BillingUnit:       entity.BillingCycle().Unit().String(),
		Status:            entity.Status().String(),
		StartDate:         entity.StartDate(),
		NextBillingDate:   entity.NextBillingDate(),
		CancellationDate:  entity.CancellationDate(),
		Notes:             entity.Notes(),
		NotificationRules: rulesJSON,
		RenewalEvents:     eventModels,
		CreatedAt:         entity.CreatedAt(),
		UpdatedAt:         entity.UpdatedAt(),
	}, nil
}

func (m *SubscriptionMapperImpl) ToEntities(subscriptionModels []*models.SubscriptionModel) ([]*subscription.Subscription, error) {
	if subscriptionModels == nil {
		return nil, nil
	}

	entities := make([]*subscription.Subscription, 0, len(subscriptionModels))
	for _, model := range subscriptionModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map subscription %s: %w", model.ID, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (m *SubscriptionMapperImpl) rulesToEntities(data datatypes.JSON) ([]subscription.NotificationRule, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var records []notificationRuleRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal notification rules: %w", err)
	}

	rules := make([]subscription.NotificationRule, 0, len(records))
	for _, record := range records {
		id, err := uuid.Parse(record.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid notification rule ID %q: %w", record.ID, err)
		}
		timing, err := vo.ParseNotificationTiming(record.Timing)
		if err != nil {
			return nil, fmt.Errorf("failed to parse notification timing: %w", err)
		}
		rule, err := subscription.ReconstructNotificationRule(id, timing, record.IsEnabled)
		if err != nil {
			return nil, fmt.Errorf("failed to reconstruct notification rule: %w", err)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func (m *SubscriptionMapperImpl) rulesToJSON(rules []subscription.NotificationRule) (datatypes.JSON, error) {
	if len(rules) == 0 {
		return nil, nil
	}

	records := make([]notificationRuleRecord, 0, len(rules))
	for _, rule := range rules {
		records = append(records, notificationRuleRecord{
			ID:        rule.ID().String(),
			Timing:    rule.Timing().String(),
			IsEnabled: rule.IsEnabled(),
		})
	}

	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal notification rules: %w", err)
	}
	return data, nil
}

func (m *SubscriptionMapperImpl) eventToEntity(model models.RenewalEventModel) (subscription.RenewalEvent, error) {
	id, err := uuid.Parse(model.ID)
	if err != nil {
		return subscription.RenewalEvent{}, fmt.Errorf("invalid renewal event ID %q: %w", model.ID, err)
	}
	subscriptionID, err := uuid.Parse(model.SubscriptionID)
	if err != nil {
		return subscription.RenewalEvent{}, fmt.Errorf("invalid renewal event subscription ID %q: %w", model.SubscriptionID, err)
	}
	amount, err := vo.NewMoney(model.Amount, model.Currency)
	if err != nil {
		return subscription.RenewalEvent{}, fmt.Errorf("failed to parse renewal amount: %w", err)
	}

	event, err := subscription.ReconstructRenewalEvent(id, subscriptionID, model.RenewalDate, amount, model.IsProcessed)
	if err != nil {
		return subscription.RenewalEvent{}, fmt.Errorf("failed to reconstruct renewal event: %w", err)
	}
	return event, nil
}
