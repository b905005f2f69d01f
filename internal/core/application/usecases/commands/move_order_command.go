package commands

import (
	"errors"

	"arkdumpster/internal/core/domain/model/kernel"
	"arkdumpster/internal/core/domain/model/order"
	"arkdumpster/internal/pkg/guard"
)

var (
	ErrMoveOrderCommandIsNotConstructed = errors.New(
		"MoveOrderCommand must be created via NewMoveOrderCommand constructor",
	)
)

// MoveOrderCommand represents a board-style status move: the admin dragged an
// order card from one column to another. Unlike the authoritative edit, the
// move carries the column it came from so stale boards are detected, and it
// is validated against the transition table before anything mutates.
type MoveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	from    order.Status
	to      order.Status

	guard guard.ConstructorGuard
}

// NewMoveOrderCommand creates a command to move an order between board
// columns. Both statuses must be members of the order status enumeration.
func NewMoveOrderCommand(orderID kernel.UUID, from, to order.Status) (MoveOrderCommand, error) {
	cmd := MoveOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setFrom(from),
		cmd.setTo(to),
	); err != nil {
		return MoveOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MoveOrderCommand) Validate() error {
	return c.guard.Validate(ErrMoveOrderCommandIsNotConstructed)
}

// OrderID returns the order to move.
func (c MoveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// From returns the board column the card was dragged from.
func (c MoveOrderCommand) From() order.Status {
	return c.from
}

// To returns the board column the card was dropped on.
func (c MoveOrderCommand) To() order.Status {
	return c.to
}

func (c *MoveOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *MoveOrderCommand) setFrom(from order.Status) error {
	if err := from.Validate(); err != nil {
		return err
	}
	c.from = from
	return nil
}

func (c *MoveOrderCommand) setTo(to order.Status) error {
	if err := to.Validate(); err != nil {
		return err
	}
	c.to = to
	return nil
}
