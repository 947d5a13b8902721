package usecases

import (
	"context"
	"fmt"

	"github.com/subtrack-inc/subtrack/internal/domain/provider"
	"github.com/subtrack-inc/subtrack/internal/shared/logger"
)

type ListProvidersUseCase struct {
	providerRepo provider.Repository
	logger       logger.Interface
}

func NewListProvidersUseCase(providerRepo provider.Repository, logger logger.Interface) *ListProvidersUseCase {
	return &ListProvidersUseCase{
		providerRepo: providerRepo,
		logger:       logger,
	}
}

func (uc *ListProvidersUseCase) Execute(ctx context.Context) ([]*provider.Provider, error) {
	providers, err := uc.providerRepo.FindAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list providers", "error", err)
		return nil, fmt.Errorf("failed to list providers: %w", err)
	}
	return providers, nil
}
