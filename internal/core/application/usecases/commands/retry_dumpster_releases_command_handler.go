package commands

import (
	"context"
	"log/slog"
)

// releaseRetryBatchSize bounds one drain pass so a long backlog cannot stall
// the scheduler tick.
const releaseRetryBatchSize = 20

// RetryDumpsterReleasesCommandHandler retries dumpster frees that failed
// after order completion. Each successful free removes its task from the
// queue; each failure bumps the attempt counter and leaves the task for the
// next pass. The free is idempotent, so replaying a task whose dumpster was
// meanwhile released by hand is harmless.
type RetryDumpsterReleasesCommandHandler struct {
	uowFactory LifecycleUoWFactory
	logger     *slog.Logger
}

// NewRetryDumpsterReleasesCommandHandler creates a handler for release
// retries.
func NewRetryDumpsterReleasesCommandHandler(
	uowFactory LifecycleUoWFactory,
	logger *slog.Logger,
) RetryDumpsterReleasesCommandHandler {
	return RetryDumpsterReleasesCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "retry_dumpster_releases"),
	}
}

// Handle drains one batch of pending releases. Returns ErrNoPendingReleases
// when the queue is empty.
func (h RetryDumpsterReleasesCommandHandler) Handle(ctx context.Context, cmd RetryDumpsterReleasesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	tasks, err := uow.ReleaseQueue().Pending(ctx, releaseRetryBatchSize)
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		return ErrNoPendingReleases
	}

	for _, task := range tasks {
		if freeErr := uow.DumpsterRepository().Free(ctx, task.DumpsterID); freeErr != nil {
			h.logger.ErrorContext(ctx, "dumpster release retry failed",
				"task_id", task.ID.String(),
				"dumpster_id", task.DumpsterID.String(),
				"attempts", task.Attempts,
				"error", freeErr,
			)

			if attemptErr := uow.ReleaseQueue().RecordAttempt(ctx, task.ID); attemptErr != nil {
				h.logger.ErrorContext(ctx, "failed to record release attempt",
					"task_id", task.ID.String(),
					"error", attemptErr,
				)
			}
			continue
		}

		if completeErr := uow.ReleaseQueue().Complete(ctx, task.ID); completeErr != nil {
			h.logger.ErrorContext(ctx, "failed to acknowledge release task",
				"task_id", task.ID.String(),
				"error", completeErr,
			)
			continue
		}

		h.logger.InfoContext(ctx, "pending dumpster release completed",
			"task_id", task.ID.String(),
			"dumpster_id", task.DumpsterID.String(),
			"order_id", task.OrderID.String(),
		)
	}

	return nil
}
