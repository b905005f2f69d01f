package jobs

import (
	"context"
	"errors"
	"log/slog"

	"arkdumpster/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DumpsterReleaseJob drains the pending dumpster release queue on a schedule.
// Tasks land on the queue when an order completion committed but the asset
// free failed; the job retries each free until it is acknowledged.
type DumpsterReleaseJob struct {
	handler commands.RetryDumpsterReleasesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDumpsterReleaseJob creates a new job for retrying pending releases.
func NewDumpsterReleaseJob(handler commands.RetryDumpsterReleasesCommandHandler, logger *slog.Logger) *DumpsterReleaseJob {
	return &DumpsterReleaseJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "dumpster_release_job"),
	}
}

// Start begins the release retry job, running every 30 seconds.
func (j *DumpsterReleaseJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewRetryDumpsterReleasesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty queue is the expected steady state
			if !errors.Is(err, commands.ErrNoPendingReleases) {
				j.logger.ErrorContext(ctx, "Dumpster release job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dumpster release job started (running every 30 seconds)")
	return nil
}

// Stop stops the release retry job.
func (j *DumpsterReleaseJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Dumpster release job stopped")
}
