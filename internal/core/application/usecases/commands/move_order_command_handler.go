package commands

import (
	"context"
	"log/slog"

	"arkdumpster/internal/core/domain/model/order"
	"arkdumpster/internal/core/domain/services"
	"arkdumpster/internal/pkg/errs"
)

// MoveOrderCommandHandler validates a board move against the transition table
// and then delegates the actual mutation to the authoritative status handler,
// so both paths share one write implementation and one completion behavior.
type MoveOrderCommandHandler struct {
	changeHandler ChangeOrderStatusCommandHandler
	lifecycle     services.Lifecycle
}

// NewMoveOrderCommandHandler creates a handler for board moves.
func NewMoveOrderCommandHandler(
	uowFactory LifecycleUoWFactory,
	logger *slog.Logger,
) MoveOrderCommandHandler {
	return MoveOrderCommandHandler{
		changeHandler: NewChangeOrderStatusCommandHandler(uowFactory, logger),
		lifecycle:     services.NewLifecycle(),
	}
}

// Handle checks the move is legal for the order's current state, then applies
// it. The checks run against the order as read inside the write transaction:
// a stale board (the card's source column no longer matches the order's
// actual status) is rejected there, so two admins dragging the same card race
// on the database row, not on each other's screens.
func (h MoveOrderCommandHandler) Handle(
	ctx context.Context,
	cmd MoveOrderCommand,
) (ChangeOrderStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	changeCmd, err := NewChangeOrderStatusCommand(cmd.OrderID(), cmd.To())
	if err != nil {
		return ChangeOrderStatusResult{}, err
	}

	return h.changeHandler.handle(ctx, changeCmd, func(o *order.Order) error {
		if o.Status() != cmd.From() {
			return errs.NewInvalidTransitionError(
				string(cmd.From()), string(cmd.To()),
			)
		}
		return h.lifecycle.ValidateBoardMove(o, cmd.To())
	})
}
