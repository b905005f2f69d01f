package services

import (
	"strings"

	"arkdumpster/internal/core/domain/model/order"
)

// TemplateKind selects the customer-facing email template for a status
// notification. The set is deliberately small: only the statuses a customer
// cares about get a dedicated template, everything else renders the generic
// status-update template instead of failing.
type TemplateKind string

const (
	TemplateOnWay        TemplateKind = "on_way"
	TemplateDelivered    TemplateKind = "delivered"
	TemplatePickedUp     TemplateKind = "picked_up"
	TemplateCompleted    TemplateKind = "completed"
	TemplateStatusUpdate TemplateKind = "status_update"
)

// Attachment is a binary attachment for a notification, typically a
// delivery-confirmation photo.
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// wellFormed reports whether the attachment can be sent: it needs a filename,
// non-empty content and an image content type.
func (a *Attachment) wellFormed() bool {
	return a != nil &&
		a.Filename != "" &&
		len(a.Content) > 0 &&
		strings.HasPrefix(a.ContentType, "image/")
}

// Payload is the transport-independent content of a customer notification.
type Payload struct {
	CustomerName  string
	CustomerEmail string
	OrderNumber   string
	Status        order.Status
	Template      TemplateKind
	Attachment    *Attachment
}

// NotificationTrigger decides when a status change warrants a customer-facing
// notification and prepares the payload. It is a pure function with no side
// effects: it never calls any email transport, and sending is always opt-in
// per call at the use-case layer.
type NotificationTrigger struct{}

// NewNotificationTrigger creates a new NotificationTrigger.
func NewNotificationTrigger() NotificationTrigger {
	return NotificationTrigger{}
}

// ShouldNotify reports whether the status change is one customers are told
// about. Orders without a customer email can never be notified.
func (NotificationTrigger) ShouldNotify(o *order.Order, newStatus order.Status) bool {
	if o == nil || o.CustomerEmail() == "" {
		return false
	}

	switch newStatus {
	case order.OnWay, order.Delivered, order.OnWayPickup, order.Completed:
		return true
	case order.Pending, order.Scheduled, order.Cancelled:
		return false
	}
	return false
}

// BuildPayload shapes the notification content for the given status change.
// Statuses outside the known subset map to the generic status-update template
// rather than failing. A malformed attachment is dropped, never sent.
func (NotificationTrigger) BuildPayload(o *order.Order, newStatus order.Status, attachment *Attachment) (Payload, error) {
	if err := o.Validate(); err != nil {
		return Payload{}, err
	}

	payload := Payload{
		CustomerName:  o.CustomerName(),
		CustomerEmail: o.CustomerEmail(),
		OrderNumber:   o.OrderNumber(),
		Status:        newStatus,
		Template:      templateFor(newStatus),
	}

	if attachment.wellFormed() {
		payload.Attachment = attachment
	}

	return payload, nil
}

// templateFor maps an order status to its notification template.
func templateFor(status order.Status) TemplateKind {
	switch status {
	case order.OnWay:
		return TemplateOnWay
	case order.Delivered:
		return TemplateDelivered
	case order.OnWayPickup:
		return TemplatePickedUp
	case order.Completed:
		return TemplateCompleted
	case order.Pending, order.Scheduled, order.Cancelled:
		return TemplateStatusUpdate
	}
	return TemplateStatusUpdate
}
