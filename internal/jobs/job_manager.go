package jobs

import (
	"fmt"
	"log/slog"

	"arkdumpster/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dumpsterReleaseJob *DumpsterReleaseJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	retryReleasesHandler commands.RetryDumpsterReleasesCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dumpsterReleaseJob: NewDumpsterReleaseJob(retryReleasesHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.dumpsterReleaseJob.Start(); err != nil {
		return fmt.Errorf("failed to start dumpster release job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dumpsterReleaseJob.Stop()
}
