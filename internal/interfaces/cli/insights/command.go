// Package insights prints spending and renewal analytics.
package insights

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/subtrack-inc/subtrack/internal/application/subscription/usecases"
	"github.com/subtrack-inc/subtrack/internal/domain/subscription"
	"github.com/subtrack-inc/subtrack/internal/infrastructure/config"
	"github.com/subtrack-inc/subtrack/internal/infrastructure/database"
	"github.com/subtrack-inc/subtrack/internal/infrastructure/exchangerate"
	"github.com/subtrack-inc/subtrack/internal/infrastructure/repository"
	"github.com/subtrack-inc/subtrack/internal/shared/logger"
)

var (
	horizonDays    int
	targetCurrency string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Show spending and renewal insights",
		Long:  `Print monthly and annual totals, the per-category cost breakdown, and upcoming renewals as JSON.`,
		RunE:  run,
	}

	cmd.Flags().IntVar(&horizonDays, "horizon", 30, "Upcoming renewals window in days")
	cmd.Flags().StringVar(&targetCurrency, "currency", "", "Convert totals to this currency (requires configured rates)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if err := database.Migrate(); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	log := logger.NewLogger()
	subscriptionRepo := repository.NewSubscriptionRepository(database.Get(), log)
	rates := exchangerate.NewStaticProvider(cfg.ExchangeRate)

	useCase := usecases.NewGetInsightsUseCase(
		subscriptionRepo,
		subscription.NewAnalysisService(),
		rates,
		log,
	)

	result, err := useCase.Execute(cmd.Context(), usecases.GetInsightsQuery{
		HorizonDays:    horizonDays,
		TargetCurrency: targetCurrency,
	})
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
