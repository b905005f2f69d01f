// Package jobs provides scheduled background tasks for the rental back
// office.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. DumpsterReleaseJob - Runs every 30 seconds to retry dumpster frees that
// failed after an order completion, draining the pending-release queue.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(retryReleasesHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - The release job ignores the empty-queue case (expected steady state)
// - All other errors are logged; tasks stay queued until acknowledged
// - Failed job starts will stop any already running jobs
package jobs
