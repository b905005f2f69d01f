package commands

import (
	"errors"

	"arkdumpster/internal/core/domain/model/kernel"
	"arkdumpster/internal/pkg/guard"
)

var (
	ErrAdjustLineDescriptionCommandIsNotConstructed = errors.New(
		"AdjustLineDescriptionCommand must be created via NewAdjustLineDescriptionCommand constructor",
	)
)

// AdjustLineDescriptionCommand represents overriding the invoice text of one
// order line.
type AdjustLineDescriptionCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	lineID      kernel.UUID
	description string

	guard guard.ConstructorGuard
}

// NewAdjustLineDescriptionCommand creates a command to adjust a line's
// invoice description.
func NewAdjustLineDescriptionCommand(
	orderID, lineID kernel.UUID,
	description string,
) (AdjustLineDescriptionCommand, error) {
	cmd := AdjustLineDescriptionCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLineID(lineID),
	); err != nil {
		return AdjustLineDescriptionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdjustLineDescriptionCommand) Validate() error {
	return c.guard.Validate(ErrAdjustLineDescriptionCommandIsNotConstructed)
}

// OrderID returns the order owning the line.
func (c AdjustLineDescriptionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LineID returns the line to adjust.
func (c AdjustLineDescriptionCommand) LineID() kernel.UUID {
	return c.lineID
}

// Description returns the new invoice text.
func (c AdjustLineDescriptionCommand) Description() string {
	return c.description
}

func (c *AdjustLineDescriptionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AdjustLineDescriptionCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}
	c.lineID = lineID
	return nil
}
