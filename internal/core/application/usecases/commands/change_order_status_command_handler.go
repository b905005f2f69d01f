package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"arkdumpster/internal/core/domain/model/dumpster"
	"arkdumpster/internal/core/domain/model/kernel"
	"arkdumpster/internal/core/domain/model/order"
	"arkdumpster/internal/core/domain/services"
	"arkdumpster/internal/pkg/errs"
)

// ChangeOrderStatusResult reports the outcome of the authoritative status
// write. The order status is the source of truth: when the target is
// completed and the asset release fails, the order write still commits and
// the bookkeeping failure is surfaced here separately, never as a handler
// error.
type ChangeOrderStatusResult struct {
	Order *order.Order

	// FreedDumpsterID is the asset released on completion, nil when the
	// order had no assigned dumpster or the target was not completed.
	FreedDumpsterID *kernel.UUID

	// ReleasePending is true when the completion released nothing yet: the
	// free failed and a durable release task was enqueued for retry.
	ReleasePending bool

	// ReleaseError carries the asset bookkeeping failure, nil on clean runs.
	ReleaseError error
}

// ChangeOrderStatusCommandHandler owns the authoritative order status
// mutation, including the completion handshake with the dumpster ledger.
//
// The completion path is deliberately not one cross-entity transaction:
// the order write commits first, then the asset release runs in a second
// transaction. A release failure is logged, enqueued on the release queue
// and reported in the result while the order update stands.
type ChangeOrderStatusCommandHandler struct {
	uowFactory LifecycleUoWFactory
	lifecycle  services.Lifecycle
	logger     *slog.Logger
}

// NewChangeOrderStatusCommandHandler creates a handler for authoritative
// status edits.
func NewChangeOrderStatusCommandHandler(
	uowFactory LifecycleUoWFactory,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  services.NewLifecycle(),
		logger:     logger.With("component", "change_order_status"),
	}
}

// Handle applies the status change. On a completed target it looks up the
// assigned dumpster, records the completion audit trail on the order, commits
// the order write, and then frees the asset out of band.
func (h ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (ChangeOrderStatusResult, error) {
	return h.handle(ctx, cmd, nil)
}

// handle runs the status write. The guard, when set, is checked against the
// order as read inside the write transaction, so callers layering extra rules
// on top (the board move) validate the row they are about to mutate rather
// than an earlier snapshot.
func (h ChangeOrderStatusCommandHandler) handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
	guard func(*order.Order) error,
) (ChangeOrderStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return ChangeOrderStatusResult{}, err
	}

	if guard != nil {
		if err = guard(o); err != nil {
			return ChangeOrderStatusResult{}, err
		}
	}

	now := time.Now().UTC()
	if err = h.lifecycle.ApplyStatus(o, cmd.NewStatus(), now); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	// On completion the order must remember its asset before the reference
	// is cleared, so the lookup and the audit write happen inside the order
	// transaction.
	var assigned *dumpster.Dumpster
	if cmd.NewStatus() == order.Completed {
		assigned, err = uow.DumpsterRepository().FindAssigned(ctx, o.ID())
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			assigned = nil
		case err != nil:
			return ChangeOrderStatusResult{}, err
		default:
			if err = h.lifecycle.CompleteWithDumpster(o, assigned); err != nil {
				return ChangeOrderStatusResult{}, err
			}
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	result := ChangeOrderStatusResult{Order: o}
	if assigned != nil {
		result = h.releaseAsset(ctx, o, assigned, now, result)
	}

	return result, nil
}

// releaseAsset frees the completed order's dumpster in its own transaction.
// On failure the release becomes a durable queue task retried by the
// background job; the order write has already committed and stands.
func (h ChangeOrderStatusCommandHandler) releaseAsset(
	ctx context.Context,
	o *order.Order,
	assigned *dumpster.Dumpster,
	now time.Time,
	result ChangeOrderStatusResult,
) ChangeOrderStatusResult {
	assignedID := assigned.ID()

	uow := h.uowFactory.Create()
	if err := uow.DumpsterRepository().Free(ctx, assignedID); err != nil {
		h.logger.ErrorContext(ctx, "dumpster release failed after order completion, enqueueing retry",
			"order_id", o.ID().String(),
			"dumpster_id", assignedID.String(),
			"error", err,
		)

		result.ReleasePending = true
		result.ReleaseError = err

		task, taskErr := dumpster.NewReleaseTask(kernel.NewUUID(), assignedID, o.ID(), now)
		if taskErr == nil {
			taskErr = uow.ReleaseQueue().Enqueue(ctx, task)
		}
		if taskErr != nil {
			h.logger.ErrorContext(ctx, "failed to enqueue dumpster release task",
				"order_id", o.ID().String(),
				"dumpster_id", assignedID.String(),
				"error", taskErr,
			)
		}

		return result
	}

	result.FreedDumpsterID = &assignedID
	return result
}
