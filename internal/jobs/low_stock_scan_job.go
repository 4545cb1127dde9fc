package jobs

import (
	"context"
	"log/slog"

	"storepanel/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// LowStockScanJob schedules the periodic low stock sweep of the catalog.
// Runs every minute; the handler deduplicates alerts between runs.
type LowStockScanJob struct {
	handler commands.ScanLowStockCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewLowStockScanJob creates a new job for the low stock scan.
func NewLowStockScanJob(handler commands.ScanLowStockCommandHandler, logger *slog.Logger) *LowStockScanJob {
	return &LowStockScanJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "low_stock_scan_job"),
	}
}

// Start begins the low stock scan to run every minute.
func (j *LowStockScanJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewScanLowStockCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Low stock scan failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock scan job started (running every minute)")
	return nil
}

// Stop stops the low stock scan job.
func (j *LowStockScanJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Low stock scan job stopped")
}
