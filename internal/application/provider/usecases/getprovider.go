package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/subtrack-inc/subtrack/internal/domain/provider"
	"github.com/subtrack-inc/subtrack/internal/shared/logger"
)

type GetProviderUseCase struct {
	providerRepo provider.Repository
	logger       logger.Interface
}

func NewGetProviderUseCase(providerRepo provider.Repository, logger logger.Interface) *GetProviderUseCase {
	return &GetProviderUseCase{
		providerRepo: providerRepo,
		logger:       logger,
	}
}

func (uc *GetProviderUseCase) Execute(ctx context.Context, id uuid.UUID) (*provider.Provider, error) {
	prov, err := uc.providerRepo.FindByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get provider", "error", err, "provider_id", id)
		return nil, fmt.Errorf("failed to get provider: %w", err)
	}
	if prov == nil {
		return nil, fmt.Errorf("%w: %s", provider.ErrProviderNotFound, id)
	}
	return prov, nil
}
