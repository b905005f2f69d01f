package commands

import (
	"context"
	"time"

	"arkdumpster/internal/core/domain/model/dumpster"
)

// AssignDumpsterCommandHandler claims a dumpster for an order. The claim is a
// conditional write inside the repository, so two concurrent assignments of
// the same dumpster resolve to one winner and one conflict error naming the
// holding order.
type AssignDumpsterCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewAssignDumpsterCommandHandler creates a handler for dumpster assignment.
func NewAssignDumpsterCommandHandler(uowFactory AssignmentUoWFactory) AssignDumpsterCommandHandler {
	return AssignDumpsterCommandHandler{uowFactory: uowFactory}
}

// Handle verifies the order exists, then claims the dumpster with the order's
// address as the placement site.
func (h AssignDumpsterCommandHandler) Handle(
	ctx context.Context,
	cmd AssignDumpsterCommand,
) (*dumpster.Dumpster, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	d, err := uow.DumpsterRepository().Claim(ctx, cmd.DumpsterID(), o.ID(), o.Address(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
