package commands

import (
	"errors"

	"arkdumpster/internal/pkg/errs"
	"arkdumpster/internal/pkg/guard"
)

var (
	ErrRecordInvoiceEventCommandIsNotConstructed = errors.New(
		"RecordInvoiceEventCommand must be created via NewRecordInvoiceEventCommand constructor",
	)
)

// RecordInvoiceEventCommand represents an invoicing webhook event. The
// payload mirrors what the payments provider posts: an event type, the
// provider's event id, the order number the invoice belongs to and the
// invoice status after the event.
type RecordInvoiceEventCommand struct { //nolint:recvcheck //using for validation
	eventType     string
	eventID       string
	orderNumber   string
	invoiceStatus string

	guard guard.ConstructorGuard
}

// NewRecordInvoiceEventCommand creates a command from a webhook payload.
// Only the event type is required up front; recognition and the rest of the
// payload are checked by the handler, so unknown events can still be
// acknowledged.
func NewRecordInvoiceEventCommand(
	eventType, eventID, orderNumber, invoiceStatus string,
) (RecordInvoiceEventCommand, error) {
	cmd := RecordInvoiceEventCommand{
		eventID:       eventID,
		orderNumber:   orderNumber,
		invoiceStatus: invoiceStatus,
		guard:         guard.NewConstructorGuard(),
	}

	if err := cmd.setEventType(eventType); err != nil {
		return RecordInvoiceEventCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordInvoiceEventCommand) Validate() error {
	return c.guard.Validate(ErrRecordInvoiceEventCommandIsNotConstructed)
}

// EventType returns the provider's event type.
func (c RecordInvoiceEventCommand) EventType() string {
	return c.eventType
}

// EventID returns the provider's event identifier.
func (c RecordInvoiceEventCommand) EventID() string {
	return c.eventID
}

// OrderNumber returns the order the invoice belongs to.
func (c RecordInvoiceEventCommand) OrderNumber() string {
	return c.orderNumber
}

// InvoiceStatus returns the invoice status carried by the event.
func (c RecordInvoiceEventCommand) InvoiceStatus() string {
	return c.invoiceStatus
}

func (c *RecordInvoiceEventCommand) setEventType(eventType string) error {
	if eventType == "" {
		return errs.NewValueIsRequiredError("eventType")
	}
	c.eventType = eventType
	return nil
}
