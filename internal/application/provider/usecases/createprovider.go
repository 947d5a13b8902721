package usecases

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/subtrack-inc/subtrack/internal/domain/provider"
	"github.com/subtrack-inc/subtrack/internal/shared/logger"
)

var validate = validator.New()

type CreateProviderCommand struct {
	Name     string `validate:"required"`
	Category string `validate:"required"`
	Website  *string
}

type CreateProviderUseCase struct {
	providerRepo provider.Repository
	logger       logger.Interface
}

func NewCreateProviderUseCase(providerRepo provider.Repository, logger logger.Interface) *CreateProviderUseCase {
	return &CreateProviderUseCase{
		providerRepo: providerRepo,
		logger:       logger,
	}
}

func (uc *CreateProviderUseCase) Execute(ctx context.Context, cmd CreateProviderCommand) (*provider.Provider, error) {
	if err := validate.Struct(cmd); err != nil {
		return nil, fmt.Errorf("invalid create provider command: %w", err)
	}

	existing, err := uc.providerRepo.FindByName(ctx, cmd.Name)
	if err != nil {
		uc.logger.Errorw("failed to look up provider by name", "error", err, "name", cmd.Name)
		return nil, fmt.Errorf("failed to look up provider: %w", err)
	}
	if existing != nil {
		uc.logger.Warnw("provider already exists", "name", cmd.Name)
		return nil, fmt.Errorf("%w: %s", provider.ErrProviderAlreadyExists, cmd.Name)
	}

	prov, err := provider.NewProvider(cmd.Name, cmd.Category, cmd.Website)
	if err != nil {
		return nil, fmt.Errorf("failed to create provider: %w", err)
	}

	if err := uc.providerRepo.Save(ctx, prov); err != nil {
		uc.logger.Errorw("failed to save provider", "error", err, "provider_id", prov.ID())
		return nil, fmt.Errorf("failed to save provider: %w", err)
	}

	uc.logger.Infow("provider created",
		"provider_id", prov.ID(),
		"name", prov.Name(),
		"category", prov.Category(),
	)

	return prov, nil
}
