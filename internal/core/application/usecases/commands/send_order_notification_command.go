package commands

import (
	"errors"

	"arkdumpster/internal/core/domain/model/kernel"
	"arkdumpster/internal/core/domain/model/order"
	"arkdumpster/internal/core/domain/services"
	"arkdumpster/internal/pkg/guard"
)

var (
	ErrSendOrderNotificationCommandIsNotConstructed = errors.New(
		"SendOrderNotificationCommand must be created via NewSendOrderNotificationCommand constructor",
	)
)

// SendOrderNotificationCommand represents notifying a customer about an order
// status, optionally with a photo attachment from the driver.
type SendOrderNotificationCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	status     order.Status
	attachment *services.Attachment

	guard guard.ConstructorGuard
}

// NewSendOrderNotificationCommand creates a command to send a status
// notification. The attachment is optional and may be dropped later if it is
// malformed.
func NewSendOrderNotificationCommand(
	orderID kernel.UUID,
	status order.Status,
	attachment *services.Attachment,
) (SendOrderNotificationCommand, error) {
	cmd := SendOrderNotificationCommand{
		attachment: attachment,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
	); err != nil {
		return SendOrderNotificationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SendOrderNotificationCommand) Validate() error {
	return c.guard.Validate(ErrSendOrderNotificationCommandIsNotConstructed)
}

// OrderID returns the order the notification is about.
func (c SendOrderNotificationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the status to notify about.
func (c SendOrderNotificationCommand) Status() order.Status {
	return c.status
}

// Attachment returns the optional photo attachment.
func (c SendOrderNotificationCommand) Attachment() *services.Attachment {
	return c.attachment
}

func (c *SendOrderNotificationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *SendOrderNotificationCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
