// Package migrate exposes schema management commands.
package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/subtrack-inc/subtrack/internal/infrastructure/config"
	"github.com/subtrack-inc/subtrack/internal/infrastructure/database"
	"github.com/subtrack-inc/subtrack/internal/shared/logger"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database schema management",
		Long:  `Create or update the database schema for subscriptions, providers, and renewal events.`,
	}

	cmd.AddCommand(newUpCommand())

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply the current schema",
		RunE:  runUp,
	}
}

func runUp(cmd *cobra.Command, args []string) error {
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
		return fmt.Errorf("migration failed: %w", err)
	}

	fmt.Println("schema is up to date")
	return nil
}
