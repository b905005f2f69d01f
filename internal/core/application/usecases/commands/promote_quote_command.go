package commands

import (
	"errors"
	"time"

	"arkdumpster/internal/core/domain/model/kernel"
	"arkdumpster/internal/core/domain/model/order"
	"arkdumpster/internal/pkg/errs"
	"arkdumpster/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrPromoteQuoteCommandIsNotConstructed = errors.New(
		"PromoteQuoteCommand must be created via NewPromoteQuoteCommand constructor",
	)
)

// ServiceSelection is one catalog service chosen during quote promotion.
type ServiceSelection struct {
	ServiceID kernel.UUID
	Quantity  int
}

// PromoteQuoteCommand represents converting an accepted quote into an order.
// The admin picks the catalog services and quantities; prices and names are
// snapshotted from the catalog when the order is built.
type PromoteQuoteCommand struct { //nolint:recvcheck //using for validation
	quoteID    kernel.UUID
	orderID    kernel.UUID
	selections []ServiceSelection
	priority   order.Priority

	// quotedPriceOverride replaces the computed line-total sum when set
	quotedPriceOverride *decimal.Decimal

	scheduledDeliveryDate *time.Time
	scheduledPickupDate   *time.Time

	guard guard.ConstructorGuard
}

// NewPromoteQuoteCommand creates a command to promote a quote. At least one
// service selection is required and every selection needs a positive
// quantity.
func NewPromoteQuoteCommand(
	quoteID, orderID kernel.UUID,
	selections []ServiceSelection,
	priority order.Priority,
	quotedPriceOverride *decimal.Decimal,
	scheduledDeliveryDate, scheduledPickupDate *time.Time,
) (PromoteQuoteCommand, error) {
	cmd := PromoteQuoteCommand{
		quotedPriceOverride:   quotedPriceOverride,
		scheduledDeliveryDate: scheduledDeliveryDate,
		scheduledPickupDate:   scheduledPickupDate,
		guard:                 guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setQuoteID(quoteID),
		cmd.setOrderID(orderID),
		cmd.setSelections(selections),
		cmd.setPriority(priority),
	); err != nil {
		return PromoteQuoteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PromoteQuoteCommand) Validate() error {
	return c.guard.Validate(ErrPromoteQuoteCommandIsNotConstructed)
}

// QuoteID returns the quote being promoted.
func (c PromoteQuoteCommand) QuoteID() kernel.UUID {
	return c.quoteID
}

// OrderID returns the identifier assigned to the new order.
func (c PromoteQuoteCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Selections returns the chosen catalog services.
func (c PromoteQuoteCommand) Selections() []ServiceSelection {
	return c.selections
}

// Priority returns the priority for the new order.
func (c PromoteQuoteCommand) Priority() order.Priority {
	return c.priority
}

// QuotedPriceOverride returns the explicit quoted price, nil when the sum of
// line totals should be used.
func (c PromoteQuoteCommand) QuotedPriceOverride() *decimal.Decimal {
	return c.quotedPriceOverride
}

// ScheduledDeliveryDate returns the planned drop-off date, if set.
func (c PromoteQuoteCommand) ScheduledDeliveryDate() *time.Time {
	return c.scheduledDeliveryDate
}

// ScheduledPickupDate returns the planned pickup date, if set.
func (c PromoteQuoteCommand) ScheduledPickupDate() *time.Time {
	return c.scheduledPickupDate
}

func (c *PromoteQuoteCommand) setQuoteID(quoteID kernel.UUID) error {
	if err := quoteID.Validate(); err != nil {
		return err
	}
	c.quoteID = quoteID
	return nil
}

func (c *PromoteQuoteCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *PromoteQuoteCommand) setSelections(selections []ServiceSelection) error {
	if len(selections) == 0 {
		return errs.NewValueIsRequiredError("services")
	}

	for _, sel := range selections {
		if err := sel.ServiceID.Validate(); err != nil {
			return err
		}
		if sel.Quantity <= 0 {
			return errs.NewValueIsInvalidError("quantity")
		}
	}

	c.selections = selections
	return nil
}

func (c *PromoteQuoteCommand) setPriority(priority order.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	c.priority = priority
	return nil
}
