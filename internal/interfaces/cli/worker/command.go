// Package worker hosts the long-running background process: it sweeps
// matured renewals and delivers due reminders on configured intervals.
package worker

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/subtrack-inc/subtrack/internal/application/subscription/usecases"
	"github.com/subtrack-inc/subtrack/internal/domain/subscription"
	"github.com/subtrack-inc/subtrack/internal/infrastructure/config"
	"github.com/subtrack-inc/subtrack/internal/infrastructure/database"
	"github.com/subtrack-inc/subtrack/internal/infrastructure/email"
	"github.com/subtrack-inc/subtrack/internal/infrastructure/repository"
	"github.com/subtrack-inc/subtrack/internal/infrastructure/scheduler"
	"github.com/subtrack-inc/subtrack/internal/shared/logger"
)

func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "worker",
		Short: "Run the renewal and reminder worker",
		Long:  `Start the background worker that processes matured subscription renewals and sends renewal reminders.`,
		RunE:  run,
	}
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

	renewalUseCase := usecases.NewProcessRenewalsUseCase(subscriptionRepo, log)

	var sender usecases.ReminderSender
	if cfg.Notification.Enabled {
		sender = email.NewSMTPReminderSender(cfg.Notification, log)
	} else {
		log.Infow("reminder delivery disabled; reminders are logged only")
	}
	reminderUseCase := usecases.NewPendingNotificationsUseCase(
		subscriptionRepo,
		subscription.NewNotificationService(),
		sender,
		log,
	)

	manager, err := scheduler.NewSchedulerManager(log)
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	renewalInterval := time.Duration(cfg.Scheduler.RenewalIntervalMinutes) * time.Minute
	if err := manager.RegisterRenewalJob(scheduler.NewRenewalJob(renewalUseCase), renewalInterval); err != nil {
		return fmt.Errorf("failed to register renewal job: %w", err)
	}

	reminderInterval := time.Duration(cfg.Scheduler.ReminderIntervalMinutes) * time.Minute
	if err := manager.RegisterReminderJob(scheduler.NewReminderJob(reminderUseCase), reminderInterval); err != nil {
		return fmt.Errorf("failed to register reminder job: %w", err)
	}

	manager.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Infow("shutdown signal received", "signal", sig.String())

	return manager.Stop()
}
