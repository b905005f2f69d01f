package services

import (
	"time"

	"arkdumpster/internal/core/domain/model/dumpster"
	"arkdumpster/internal/core/domain/model/order"
	"arkdumpster/internal/pkg/errs"
)

// Lifecycle is the order lifecycle engine. It owns the two layers of status
// mutation the back office supports:
//
//   - ApplyStatus is the authoritative mutation used by admin overrides. It
//     enforces enum membership and the timestamp/audit side effects, nothing
//     more.
//   - ValidateBoardMove is the stricter policy layer used by board-style
//     drag-and-drop reordering. It checks the transition table and the driver
//     precondition, and callers apply the move through ApplyStatus once
//     validation passes, keeping both layers consistent.
//
// The completion handshake with the dumpster ledger (audit trail then
// release) also lives here so the ordering of the two writes is fixed in one
// place.
type Lifecycle struct{}

// NewLifecycle creates a new Lifecycle engine.
func NewLifecycle() Lifecycle {
	return Lifecycle{}
}

// ApplyStatus performs the authoritative status write with its side effects:
// delivered stamps the actual delivery date, completed stamps completedAt and
// the pickup date. Any enum member is a legal target on this path.
func (Lifecycle) ApplyStatus(o *order.Order, newStatus order.Status, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}

	return o.ChangeStatus(newStatus, now)
}

// ValidateBoardMove checks a board-style move of the order to the target
// status against the transition table, plus the precondition that an order
// cannot go out for delivery without an assigned driver.
//
// Returns an InvalidTransitionError carrying the attempted (from, to) pair,
// or a PreconditionError naming the missing driver assignment.
func (Lifecycle) ValidateBoardMove(o *order.Order, to order.Status) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if err := o.Status().CanMoveTo(to); err != nil {
		return err
	}

	if to == order.OnWay && !o.HasDriver() {
		return errs.NewPreconditionError("driver must be assigned before moving to on_way")
	}

	return nil
}

// CompleteWithDumpster runs the completion handshake: the order records which
// asset serviced it, then the asset is released. The order must already be in
// completed status; the audit write happens before the release so the order
// keeps the dumpster's identity after the reference is cleared.
func (Lifecycle) CompleteWithDumpster(o *order.Order, d *dumpster.Dumpster) error {
	if err := d.Validate(); err != nil {
		return err
	}

	if err := o.RecordCompletionDumpster(d.ID(), d.Name()); err != nil {
		return err
	}

	d.Release()
	return nil
}
