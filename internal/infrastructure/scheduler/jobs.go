package scheduler

import (
	"context"

	"github.com/subtrack-inc/subtrack/internal/application/subscription/usecases"
)

// RenewalJob adapts the renewal sweep use case to the scheduler contract.
type RenewalJob struct {
	useCase *usecases.ProcessRenewalsUseCase
}

func NewRenewalJob(useCase *usecases.ProcessRenewalsUseCase) *RenewalJob {
	return &RenewalJob{useCase: useCase}
}

func (j *RenewalJob) Execute(ctx context.Context) (int, error) {
	result, err := j.useCase.Execute(ctx)
	if err != nil {
		return 0, err
	}
	return result.Processed, nil
}

// ReminderJob adapts reminder delivery to the scheduler contract.
type ReminderJob struct {
	useCase *usecases.PendingNotificationsUseCase
}

func NewReminderJob(useCase *usecases.PendingNotificationsUseCase) *ReminderJob {
	return &ReminderJob{useCase: useCase}
}

func (j *ReminderJob) Execute(ctx context.Context) (int, error) {
	notifications, err := j.useCase.Execute(ctx)
	if err != nil {
		return 0, err
	}
	return len(notifications), nil
}

var (
	_ RenewalProcessor  = (*RenewalJob)(nil)
	_ ReminderProcessor = (*ReminderJob)(nil)
)
