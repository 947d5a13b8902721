package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/subtrack-inc/subtrack/internal/domain/subscription"
	vo "github.com/subtrack-inc/subtrack/internal/domain/subscription/valueobjects"
	"github.com/subtrack-inc/subtrack/internal/infrastructure/persistence/mappers"
	"github.com/subtrack-inc/subtrack/internal/infrastructure/persistence/models"
	"github.com/subtrack-inc/subtrack/internal/shared/logger"
)

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SubscriptionMapper
	logger logger.Interface
}

func NewSubscriptionRepository(
	db *gorm.DB,
	logger logger.Interface,
) subscription.Repository {
	return &SubscriptionRepositoryImpl{
		db:     db,
		mapper: mappers.NewSubscriptionMapper(mappers.NewProviderMapper()),
		logger: logger,
	}
}

func (r *SubscriptionRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*subscription.Subscription, error) {
	var model models.SubscriptionModel

	err := r.db.WithContext(ctx).
		Preload("Provider").
		Preload("RenewalEvents", func(db *gorm.DB) *gorm.DB {
			return db.Order("renewal_date ASC")
		}).
		Where("id = ?", id.String()).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscription by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map subscription model to entity", "id", id, "error", err)
		return nil, fmt.Errorf("failed to map subscription: %w", err)
	}
	return entity, nil
}

func (r *SubscriptionRepositoryImpl) FindAll(ctx context.Context) ([]*subscription.Subscription, error) {
	return r.findWhere(ctx, nil)
}

func (r *SubscriptionRepositoryImpl) FindActive(ctx context.Context) ([]*subscription.Subscription, error) {
	return r.findWhere(ctx, map[string]any{"status": vo.StatusActive.String()})
}

func (r *SubscriptionRepositoryImpl) FindByProvider(ctx context.Context, providerID uuid.UUID) ([]*subscription.Subscription, error) {
	return r.findWhere(ctx, map[string]any{"provider_id": providerID.String()})
}

func (r *SubscriptionRepositoryImpl) findWhere(ctx context.Context, conds map[string]any) ([]*subscription.Subscription, error) {
	var subscriptionModels []*models.SubscriptionModel

	query := r.db.WithContext(ctx).
		Preload("Provider").
		Preload("RenewalEvents", func(db *gorm.DB) *gorm.DB {
			return db.Order("renewal_date ASC")
		}).
		Order("created_at ASC")
	if len(conds) > 0 {
		query = query.Where(conds)
	}
	if err := query.Find(&subscriptionModels).Error; err != nil {
		r.logger.Errorw("failed to list subscriptions", "error", err)
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	entities, err := r.mapper.ToEntities(subscriptionModels)
	if err != nil {
		r.logger.Errorw("failed to map subscription models to entities", "error", err)
		return nil, fmt.Errorf("failed to map subscriptions: %w", err)
	}
	return entities, nil
}

// Save upserts the whole aggregate. Renewal events are replaced wholesale so
// pruned events disappear from storage together with the parent row update.
func (r *SubscriptionRepositoryImpl) Save(ctx context.Context, sub *subscription.Subscription) error {
	model, err := r.mapper.ToModel(sub)
	if err != nil {
		r.logger.Errorw("failed to map subscription entity to model", "error", err)
		return fmt.Errorf("failed to map subscription entity: %w", err)
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		events := model.RenewalEvents
		model.RenewalEvents = nil

		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).
			Omit("RenewalEvents", "Provider").
			Create(model).Error; err != nil {
			return err
		}

		if err := tx.Where("subscription_id = ?", model.ID).
			Delete(&models.RenewalEventModel{}).Error; err != nil {
			return err
		}
		if len(events) > 0 {
			if err := tx.Create(&events).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		r.logger.Errorw("failed to save subscription", "id", model.ID, "error", err)
		return fmt.Errorf("failed to save subscription: %w", err)
	}

	return nil
}

func (r *SubscriptionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("subscription_id = ?", id.String()).
			Delete(&models.RenewalEventModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id.String()).
			Delete(&models.SubscriptionModel{}).Error
	})
	if err != nil {
		r.logger.Errorw("failed to delete subscription", "id", id, "error", err)
		return fmt.Errorf("failed to delete subscription: %w", err)
	}
	return nil
}
