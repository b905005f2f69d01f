package commands

import (
	"errors"

	"arkdumpster/internal/core/domain/model/kernel"
	"arkdumpster/internal/pkg/errs"
	"arkdumpster/internal/pkg/guard"
)

var (
	ErrCreateQuoteCommandIsNotConstructed = errors.New(
		"CreateQuoteCommand must be created via NewCreateQuoteCommand constructor",
	)
)

// CreateQuoteCommand represents a public quote-form submission entering the
// funnel.
type CreateQuoteCommand struct { //nolint:recvcheck //using for validation
	quoteID        kernel.UUID
	customerName   string
	customerEmail  string
	customerPhone  string
	dropoffAddress string
	dumpsterSize   string
	message        string

	guard guard.ConstructorGuard
}

// NewCreateQuoteCommand creates a command to register a quote request.
// Name, email and drop-off address are required; size and message are
// whatever the visitor typed.
func NewCreateQuoteCommand(
	quoteID kernel.UUID,
	customerName, customerEmail, customerPhone string,
	dropoffAddress, dumpsterSize, message string,
) (CreateQuoteCommand, error) {
	cmd := CreateQuoteCommand{
		customerPhone: customerPhone,
		dumpsterSize:  dumpsterSize,
		message:       message,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setQuoteID(quoteID),
		cmd.setCustomerName(customerName),
		cmd.setCustomerEmail(customerEmail),
		cmd.setDropoffAddress(dropoffAddress),
	); err != nil {
		return CreateQuoteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateQuoteCommand) Validate() error {
	return c.guard.Validate(ErrCreateQuoteCommandIsNotConstructed)
}

// QuoteID returns the identifier assigned to the new quote.
func (c CreateQuoteCommand) QuoteID() kernel.UUID {
	return c.quoteID
}

// CustomerName returns the requester's name.
func (c CreateQuoteCommand) CustomerName() string {
	return c.customerName
}

// CustomerEmail returns the requester's email address.
func (c CreateQuoteCommand) CustomerEmail() string {
	return c.customerEmail
}

// CustomerPhone returns the requester's phone number, possibly empty.
func (c CreateQuoteCommand) CustomerPhone() string {
	return c.customerPhone
}

// DropoffAddress returns where the dumpster should be placed.
func (c CreateQuoteCommand) DropoffAddress() string {
	return c.dropoffAddress
}

// DumpsterSize returns the requested container size, possibly empty.
func (c CreateQuoteCommand) DumpsterSize() string {
	return c.dumpsterSize
}

// Message returns the free-text note from the visitor, possibly empty.
func (c CreateQuoteCommand) Message() string {
	return c.message
}

func (c *CreateQuoteCommand) setQuoteID(quoteID kernel.UUID) error {
	if err := quoteID.Validate(); err != nil {
		return err
	}
	c.quoteID = quoteID
	return nil
}

func (c *CreateQuoteCommand) setCustomerName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	c.customerName = name
	return nil
}

func (c *CreateQuoteCommand) setCustomerEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("customerEmail")
	}
	c.customerEmail = email
	return nil
}

func (c *CreateQuoteCommand) setDropoffAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("dropoffAddress")
	}
	c.dropoffAddress = address
	return nil
}
