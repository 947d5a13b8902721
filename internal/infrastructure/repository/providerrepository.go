package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/subtrack-inc/subtrack/internal/domain/provider"
	"github.com/subtrack-inc/subtrack/internal/infrastructure/persistence/mappers"
	"github.com/subtrack-inc/subtrack/internal/infrastructure/persistence/models"
	"github.com/subtrack-inc/subtrack/internal/shared/logger"
)

type ProviderRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ProviderMapper
	logger logger.Interface
}

func NewProviderRepository(db *gorm.DB, logger logger.Interface) provider.Repository {
	return &ProviderRepositoryImpl{
		db:     db,
		mapper: mappers.NewProviderMapper(),
		logger: logger,
	}
}

func (r *ProviderRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*provider.Provider, error) {
	var model models.ProviderModel

	if err := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get provider by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get provider: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map provider model to entity", "id", id, "error", err)
		return nil, fmt.Errorf("failed to map provider: %w", err)
	}
	return entity, nil
}

func (r *ProviderRepositoryImpl) FindByName(ctx context.Context, name string) (*provider.Provider, error) {
	var model models.ProviderModel

	if err := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get provider by name", "name", name, "error", err)
		return nil, fmt.Errorf("failed to get provider: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map provider model to entity", "name", name, "error", err)
		return nil, fmt.Errorf("failed to map provider: %w", err)
	}
	return entity, nil
}

func (r *ProviderRepositoryImpl) FindAll(ctx context.Context) ([]*provider.Provider, error) {
	var providerModels []*models.ProviderModel

	if err := r.db.WithContext(ctx).Order("name ASC").Find(&providerModels).Error; err != nil {
		r.logger.Errorw("failed to list providers", "error", err)
		return nil, fmt.Errorf("failed to list providers: %w", err)
	}

	entities, err := r.mapper.ToEntities(providerModels)
	if err != nil {
		r.logger.Errorw("failed to map provider models to entities", "error", err)
		return nil, fmt.Errorf("failed to map providers: %w", err)
	}
	return entities, nil
}

func (r *ProviderRepositoryImpl) Save(ctx context.Context, prov *provider.Provider) error {
	model := r.mapper.ToModel(prov)

	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(model).Error; err != nil {
		r.logger.Errorw("failed to save provider", "id", model.ID, "error", err)
		return fmt.Errorf("failed to save provider: %w", err)
	}
	return nil
}
