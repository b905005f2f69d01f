package ports

import (
	"context"

	"arkdumpster/internal/core/domain/model/dumpster"
	"arkdumpster/internal/core/domain/model/kernel"
)

// ReleaseQueue is the durable compensating-action log for the completion
// path. When the order status write succeeds but the asset release fails,
// a task is enqueued here and retried by a background job until acknowledged.
type ReleaseQueue interface {
	// Enqueue stores a pending release task.
	Enqueue(ctx context.Context, task dumpster.ReleaseTask) error

	// Pending retrieves up to limit pending tasks, oldest first.
	Pending(ctx context.Context, limit int) ([]dumpster.ReleaseTask, error)

	// Complete removes an acknowledged task from the queue.
	Complete(ctx context.Context, id kernel.UUID) error

	// RecordAttempt increments the retry counter of a task that failed again.
	RecordAttempt(ctx context.Context, id kernel.UUID) error
}
