package usecases

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subtrack-inc/subtrack/internal/domain/provider"
	"github.com/subtrack-inc/subtrack/internal/infrastructure/repository/memory"
	"github.com/subtrack-inc/subtrack/internal/shared/logger"
)

func TestCreateProvider_Success(t *testing.T) {
	repo := memory.NewProviderRepository()
	uc := NewCreateProviderUseCase(repo, logger.NewLogger())

	website := "https://netflix.com"
	prov, err := uc.Execute(context.Background(), CreateProviderCommand{
		Name:     "Netflix",
		Category: "streaming",
		Website:  &website,
	})
	require.NoError(t, err)

	assert.Equal(t, "Netflix", prov.Name())
	assert.Equal(t, "streaming", prov.Category())

	stored, err := repo.FindByID(context.Background(), prov.ID())
	require.NoError(t, err)
	require.NotNil(t, stored)
}

func TestCreateProvider_DuplicateNameCaseInsensitive(t *testing.T) {
	repo := memory.NewProviderRepository()
	uc := NewCreateProviderUseCase(repo, logger.NewLogger())
	ctx := context.Background()

	_, err := uc.Execute(ctx, CreateProviderCommand{Name: "Netflix", Category: "streaming"})
	require.NoError(t, err)

	_, err = uc.Execute(ctx, CreateProviderCommand{Name: "netflix", Category: "streaming"})
	assert.ErrorIs(t, err, provider.ErrProviderAlreadyExists)
}

func TestCreateProvider_ValidationFailure(t *testing.T) {
	repo := memory.NewProviderRepository()
	uc := NewCreateProviderUseCase(repo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), CreateProviderCommand{Name: "", Category: "streaming"})
	assert.Error(t, err)
}

func TestGetProvider_NotFound(t *testing.T) {
	repo := memory.NewProviderRepository()
	uc := NewGetProviderUseCase(repo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), uuid.New())
	assert.ErrorIs(t, err, provider.ErrProviderNotFound)
}

func TestListProviders_SortedByName(t *testing.T) {
	repo := memory.NewProviderRepository()
	createUC := NewCreateProviderUseCase(repo, logger.NewLogger())
	ctx := context.Background()

	for _, name := range []string{"Spotify", "Apple", "Netflix"} {
		_, err := createUC.Execute(ctx, CreateProviderCommand{Name: name, Category: "streaming"})
		require.NoError(t, err)
	}

	uc := NewListProvidersUseCase(repo, logger.NewLogger())
	providers, err := uc.Execute(ctx)
	require.NoError(t, err)

	require.Len(t, providers, 3)
	assert.Equal(t, "Apple", providers[0].Name())
	assert.Equal(t, "Netflix", providers[1].Name())
	assert.Equal(t, "Spotify", providers[2].Name())
}
