package jobs

import (
	"context"
	"log/slog"

	"storepanel/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// InstallmentReminderJob schedules the hourly pass over installment-plan
// orders. The handler deduplicates reminders between runs.
type InstallmentReminderJob struct {
	handler commands.RemindInstallmentsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewInstallmentReminderJob creates a new job for installment reminders.
func NewInstallmentReminderJob(
	handler commands.RemindInstallmentsCommandHandler, logger *slog.Logger,
) *InstallmentReminderJob {
	return &InstallmentReminderJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "installment_reminder_job"),
	}
}

// Start begins the reminder pass to run at the top of every hour.
func (j *InstallmentReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewRemindInstallmentsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Installment reminder pass failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Installment reminder job started (running hourly)")
	return nil
}

// Stop stops the installment reminder job.
func (j *InstallmentReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Installment reminder job stopped")
}
