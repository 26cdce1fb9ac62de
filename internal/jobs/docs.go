// Package jobs provides scheduled background tasks for the ledger system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic work the service needs.
//
// # Available Jobs
//
// 1. SettlementSyncJob - Runs every minute to recompute the current day's
// cash and pix totals from its orders and write them into the open
// register.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(updateSettlementTotalsHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The settlement sync uses the cron expression "0 * * * * *", firing at
// the top of every minute. Totals are overwritten rather than incremented,
// so a slow or skipped run is corrected by the next one.
//
// # Error Handling
//
// A day without an open register is not an error; the sync command treats
// it as a no-op. Everything else is logged because it signals a real
// problem with the database or the data.
package jobs
