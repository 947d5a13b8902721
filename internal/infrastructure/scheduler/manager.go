// Package scheduler provides unified scheduler management using gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/subtrack-inc/subtrack/internal/shared/biztime"
	"github.com/subtrack-inc/subtrack/internal/shared/logger"
)

// RenewalProcessor sweeps matured renewals and reports how many
// subscriptions were advanced.
type RenewalProcessor interface {
	Execute(ctx context.Context) (processed int, err error)
}

// ReminderProcessor collects and delivers the reminders due right now.
type ReminderProcessor interface {
	Execute(ctx context.Context) (sent int, err error)
}

// SchedulerManager manages all scheduled jobs using gocron v2.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

// NewSchedulerManager creates a new SchedulerManager instance.
func NewSchedulerManager(log logger.Interface) (*SchedulerManager, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(biztime.Location()),
	)
	if err != nil {
		return nil, err
	}

	return &SchedulerManager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// RegisterRenewalJob schedules the renewal sweep. The first run fires
// immediately so a freshly started worker catches up overdue renewals
// without waiting a full interval.
func (m *SchedulerManager) RegisterRenewalJob(processor RenewalProcessor, interval time.Duration) error {
	_, err := m.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()
			m.processRenewals(ctx, processor)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("renewal"),
		gocron.WithName("renewal-processor"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered renewal job", "interval", interval)
	return nil
}

func (m *SchedulerManager) processRenewals(ctx context.Context, processor RenewalProcessor) {
	m.logger.Debugw("renewal sweep started")

	startTime := biztime.NowUTC()
	processed, err := processor.Execute(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		m.logger.Errorw("failed to process renewals",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if processed > 0 {
		m.logger.Infow("renewals processed",
			"count", processed,
			"duration", time.Since(startTime),
		)
	} else {
		m.logger.Debugw("no matured renewals",
			"duration", time.Since(startTime),
		)
	}
}

// RegisterReminderJob schedules reminder delivery.
func (m *SchedulerManager) RegisterReminderJob(processor ReminderProcessor, interval time.Duration) error {
	_, err := m.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()
			m.processReminders(ctx, processor)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("reminder"),
		gocron.WithName("reminder-processor"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered reminder job", "interval", interval)
	return nil
}

func (m *SchedulerManager) processReminders(ctx context.Context, processor ReminderProcessor) {
	m.logger.Debugw("reminder sweep started")

	sent, err := processor.Execute(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		m.logger.Errorw("failed to process reminders", "error", err)
		return
	}

	if sent > 0 {
		m.logger.Infow("reminders sent", "count", sent)
	} else {
		m.logger.Debugw("no reminders due")
	}
}

// Start starts the scheduler and all registered jobs.
func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler manager started", "job_count", len(m.scheduler.Jobs()))
}

// Stop gracefully stops the scheduler.
// It waits for all running jobs to complete before returning.
func (m *SchedulerManager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	m.logger.Infow("stopping scheduler manager")

	err := m.scheduler.Shutdown()
	m.started = false

	if err != nil {
		m.logger.Errorw("scheduler manager shutdown with error", "error", err)
		return err
	}

	m.logger.Infow("scheduler manager stopped")
	return nil
}

// IsStarted returns whether the scheduler is running.
func (m *SchedulerManager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}
