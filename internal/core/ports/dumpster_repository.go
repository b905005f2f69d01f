package ports

import (
	"context"
	"time"

	"arkdumpster/internal/core/domain/model/dumpster"
	"arkdumpster/internal/core/domain/model/kernel"
)

// DumpsterRepository is the persistence side of the dumpster ledger.
//
// The ledger's double-booking guard cannot be a read-then-write: Claim must
// be implemented as a conditional write on status = available so that two
// concurrent assignments of the same asset resolve to exactly one winner.
type DumpsterRepository interface {
	// Add persists a new dumpster aggregate to storage.
	Add(ctx context.Context, aggregate *dumpster.Dumpster) error

	// Update persists changes to an existing dumpster aggregate.
	Update(ctx context.Context, aggregate *dumpster.Dumpster) error

	// Get retrieves a dumpster aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*dumpster.Dumpster, error)

	// FindAssigned retrieves the dumpster currently referencing the given
	// order, resolving the weak back-reference. Returns an
	// ObjectNotFoundError when no asset is assigned to the order.
	FindAssigned(ctx context.Context, orderID kernel.UUID) (*dumpster.Dumpster, error)

	// Claim atomically assigns an available dumpster to an order with a
	// check-and-set on status = available. When the asset is already in use
	// it fails with a ConflictError naming the order holding it, and no
	// write happens. On success the returned aggregate reflects the claim.
	Claim(ctx context.Context, id, orderID kernel.UUID, address string, now time.Time) (*dumpster.Dumpster, error)

	// Free releases a dumpster back to available, clearing its order
	// reference and address. Freeing an already-free dumpster is a no-op
	// success.
	Free(ctx context.Context, id kernel.UUID) error
}
