package jobs

import (
	"fmt"
	"log/slog"

	"storepanel/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	lowStockScanJob        *LowStockScanJob
	installmentReminderJob *InstallmentReminderJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	scanLowStockHandler commands.ScanLowStockCommandHandler,
	remindInstallmentsHandler commands.RemindInstallmentsCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		lowStockScanJob:        NewLowStockScanJob(scanLowStockHandler, logger),
		installmentReminderJob: NewInstallmentReminderJob(remindInstallmentsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.lowStockScanJob.Start(); err != nil {
		return fmt.Errorf("failed to start low stock scan job: %w", err)
	}

	if err := jm.installmentReminderJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.lowStockScanJob.Stop()
		return fmt.Errorf("failed to start installment reminder job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.lowStockScanJob.Stop()
	jm.installmentReminderJob.Stop()
}
