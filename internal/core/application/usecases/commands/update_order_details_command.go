package commands

import (
	"errors"
	"time"

	"arkdumpster/internal/core/domain/model/kernel"
	"arkdumpster/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrUpdateOrderDetailsCommandIsNotConstructed = errors.New(
		"UpdateOrderDetailsCommand must be created via NewUpdateOrderDetailsCommand constructor",
	)
)

// UpdateOrderDetailsCommand represents an admin edit of an order's logistics
// fields: the assigned driver, the planned dates and the final price. Every
// field is optional; nil fields are left untouched.
type UpdateOrderDetailsCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	assignedTo            *string
	scheduledDeliveryDate *time.Time
	scheduledPickupDate   *time.Time
	finalPrice            *decimal.Decimal

	guard guard.ConstructorGuard
}

// NewUpdateOrderDetailsCommand creates a command to edit order logistics.
func NewUpdateOrderDetailsCommand(
	orderID kernel.UUID,
	assignedTo *string,
	scheduledDeliveryDate, scheduledPickupDate *time.Time,
	finalPrice *decimal.Decimal,
) (UpdateOrderDetailsCommand, error) {
	cmd := UpdateOrderDetailsCommand{
		assignedTo:            assignedTo,
		scheduledDeliveryDate: scheduledDeliveryDate,
		scheduledPickupDate:   scheduledPickupDate,
		finalPrice:            finalPrice,
		guard:                 guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return UpdateOrderDetailsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderDetailsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderDetailsCommandIsNotConstructed)
}

// OrderID returns the order to edit.
func (c UpdateOrderDetailsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// AssignedTo returns the driver to assign, nil to leave unchanged.
func (c UpdateOrderDetailsCommand) AssignedTo() *string {
	return c.assignedTo
}

// ScheduledDeliveryDate returns the planned drop-off date, nil to leave
// unchanged.
func (c UpdateOrderDetailsCommand) ScheduledDeliveryDate() *time.Time {
	return c.scheduledDeliveryDate
}

// ScheduledPickupDate returns the planned pickup date, nil to leave
// unchanged.
func (c UpdateOrderDetailsCommand) ScheduledPickupDate() *time.Time {
	return c.scheduledPickupDate
}

// FinalPrice returns the invoiced price, nil to leave unchanged.
func (c UpdateOrderDetailsCommand) FinalPrice() *decimal.Decimal {
	return c.finalPrice
}

func (c *UpdateOrderDetailsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
