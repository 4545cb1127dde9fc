// Package jobs provides scheduled background tasks for the store panel.
//
// Jobs are cron-based, built on github.com/robfig/cron/v3, and dispatch to
// command handlers in the application layer:
//
//  1. LowStockScanJob - runs every minute and raises low_stock
//     notifications for products that fell below the stock threshold.
//  2. InstallmentReminderJob - runs hourly and raises general_update
//     reminders for installment-plan orders with a payment due soon.
//
// Both jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(scanLowStockHandler, remindInstallmentsHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// Deduplication (one alert per low-stock dip, one reminder per due date)
// lives in the command handlers, the jobs only provide scheduling.
package jobs
