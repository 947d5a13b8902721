package mappers

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/subtrack-inc/subtrack/internal/domain/provider"
	"github.com/subtrack-inc/subtrack/internal/infrastructure/persistence/models"
	"github.com/subtrack-inc/subtrack/internal/shared/mapper"
)

type ProviderMapper interface {
	ToEntity(model *models.ProviderModel) (*provider.Provider, error)
	ToModel(entity *provider.Provider) *models.ProviderModel
	ToEntities(models []*models.ProviderModel) ([]*provider.Provider, error)
}

type ProviderMapperImpl struct{}

func NewProviderMapper() ProviderMapper {
	return &ProviderMapperImpl{}
}

func (m *ProviderMapperImpl) ToEntity(model *models.ProviderModel) (*provider.Provider, error) {
	if model == nil {
		return nil, nil
	}

	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid provider ID %q: %w", model.ID, err)
	}

	entity, err := provider.ReconstructProvider(
		id,
		model.Name,
		model.Category,
		model.Website,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct provider entity: %w", err)
	}
	return entity, nil
}

func (m *ProviderMapperImpl) ToModel(entity *provider.Provider) *models.ProviderModel {
	if entity == nil {
		return nil
	}

	return &models.ProviderModel{
		ID:        entity.ID().String(),
		Name:      entity.Name(),
		Category:  entity.Category(),
		Website:   entity.Website(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func (m *ProviderMapperImpl) ToEntities(providerModels []*models.ProviderModel) ([]*provider.Provider, error) {
	return mapper.MapSliceWithError(providerModels, m.ToEntity)
}
