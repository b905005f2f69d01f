package dumpster

import (
	"time"

	"arkdumpster/internal/core/domain/model/kernel"
)

// ReleaseTask is a durable compensating action: "free this dumpster for this
// order". It is enqueued when the completion path updates the order but fails
// to release the asset, and retried out-of-band until it succeeds. Because
// Release is idempotent, replaying a task that already ran is harmless.
type ReleaseTask struct {
	ID         kernel.UUID
	DumpsterID kernel.UUID
	OrderID    kernel.UUID
	Attempts   int
	CreatedAt  time.Time
}

// NewReleaseTask creates a pending release task for the given assignment.
func NewReleaseTask(id, dumpsterID, orderID kernel.UUID, createdAt time.Time) (ReleaseTask, error) {
	for _, u := range []kernel.UUID{id, dumpsterID, orderID} {
		if err := u.Validate(); err != nil {
			return ReleaseTask{}, err
		}
	}

	return ReleaseTask{
		ID:         id,
		DumpsterID: dumpsterID,
		OrderID:    orderID,
		CreatedAt:  createdAt,
	}, nil
}
