package commands

import (
	"errors"

	"arkdumpster/internal/core/domain/model/kernel"
	"arkdumpster/internal/core/domain/model/quote"
	"arkdumpster/internal/pkg/guard"
)

var (
	ErrUpdateQuoteStatusCommandIsNotConstructed = errors.New(
		"UpdateQuoteStatusCommand must be created via NewUpdateQuoteStatusCommand constructor",
	)
)

// UpdateQuoteStatusCommand represents a back-office edit of a quote's funnel
// status.
type UpdateQuoteStatusCommand struct { //nolint:recvcheck //using for validation
	quoteID   kernel.UUID
	newStatus quote.Status

	guard guard.ConstructorGuard
}

// NewUpdateQuoteStatusCommand creates a command to set a quote's status.
func NewUpdateQuoteStatusCommand(quoteID kernel.UUID, newStatus quote.Status) (UpdateQuoteStatusCommand, error) {
	cmd := UpdateQuoteStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setQuoteID(quoteID),
		cmd.setNewStatus(newStatus),
	); err != nil {
		return UpdateQuoteStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateQuoteStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateQuoteStatusCommandIsNotConstructed)
}

// QuoteID returns the quote to mutate.
func (c UpdateQuoteStatusCommand) QuoteID() kernel.UUID {
	return c.quoteID
}

// NewStatus returns the target status.
func (c UpdateQuoteStatusCommand) NewStatus() quote.Status {
	return c.newStatus
}

func (c *UpdateQuoteStatusCommand) setQuoteID(quoteID kernel.UUID) error {
	if err := quoteID.Validate(); err != nil {
		return err
	}
	c.quoteID = quoteID
	return nil
}

func (c *UpdateQuoteStatusCommand) setNewStatus(newStatus quote.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	c.newStatus = newStatus
	return nil
}
