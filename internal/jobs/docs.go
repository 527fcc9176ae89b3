// Package jobs provides scheduled background tasks for the darkstore system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order lifecycle.
//
// # Available Jobs
//
// 1. AnalyticsSnapshotJob - Runs every five minutes to log the business rollup
// 2. StaleOrderWatchJob - Runs every minute to flag orders stuck past their promised hand-off window
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(analyticsHandler, allOrdersHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Both jobs read through the query layer and log failures; they never mutate
// order state, so a failed run is safe to skip until the next tick.
package jobs
