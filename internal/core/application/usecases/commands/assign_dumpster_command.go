package commands

import (
	"errors"

	"arkdumpster/internal/core/domain/model/kernel"
	"arkdumpster/internal/pkg/guard"
)

var (
	ErrAssignDumpsterCommandIsNotConstructed = errors.New(
		"AssignDumpsterCommand must be created via NewAssignDumpsterCommand constructor",
	)
)

// AssignDumpsterCommand represents placing a physical dumpster on an order's
// site.
type AssignDumpsterCommand struct { //nolint:recvcheck //using for validation
	dumpsterID kernel.UUID
	orderID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDumpsterCommand creates a command to assign a dumpster to an
// order.
func NewAssignDumpsterCommand(dumpsterID, orderID kernel.UUID) (AssignDumpsterCommand, error) {
	cmd := AssignDumpsterCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDumpsterID(dumpsterID),
		cmd.setOrderID(orderID),
	); err != nil {
		return AssignDumpsterCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDumpsterCommand) Validate() error {
	return c.guard.Validate(ErrAssignDumpsterCommandIsNotConstructed)
}

// DumpsterID returns the dumpster to claim.
func (c AssignDumpsterCommand) DumpsterID() kernel.UUID {
	return c.dumpsterID
}

// OrderID returns the order the dumpster is assigned to.
func (c AssignDumpsterCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *AssignDumpsterCommand) setDumpsterID(dumpsterID kernel.UUID) error {
	if err := dumpsterID.Validate(); err != nil {
		return err
	}
	c.dumpsterID = dumpsterID
	return nil
}

func (c *AssignDumpsterCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
