package commands

import (
	"context"
	"log/slog"

	"arkdumpster/internal/core/domain/services"
	"arkdumpster/internal/core/ports"
)

// SendOrderNotificationResult reports what the notification attempt did.
type SendOrderNotificationResult struct {
	// Sent is true when a notification was handed to the transport. False
	// means the status is not customer-facing or the order has no email.
	Sent bool

	Template services.TemplateKind
}

// SendOrderNotificationCommandHandler evaluates the notification trigger for
// an order and sends through the email transport when the status warrants it.
// Sending is explicit per call: no status mutation ever notifies implicitly.
type SendOrderNotificationCommandHandler struct {
	uowFactory OrderUoWFactory
	sender     ports.NotificationSender
	trigger    services.NotificationTrigger
	logger     *slog.Logger
}

// NewSendOrderNotificationCommandHandler creates a handler for customer
// notifications.
func NewSendOrderNotificationCommandHandler(
	uowFactory OrderUoWFactory,
	sender ports.NotificationSender,
	logger *slog.Logger,
) SendOrderNotificationCommandHandler {
	return SendOrderNotificationCommandHandler{
		uowFactory: uowFactory,
		sender:     sender,
		trigger:    services.NewNotificationTrigger(),
		logger:     logger.With("component", "send_order_notification"),
	}
}

// Handle loads the order and sends the notification if the trigger fires.
// A non-notifiable status is a successful no-op, not an error.
func (h SendOrderNotificationCommandHandler) Handle(
	ctx context.Context,
	cmd SendOrderNotificationCommand,
) (SendOrderNotificationResult, error) {
	if err := cmd.Validate(); err != nil {
		return SendOrderNotificationResult{}, err
	}

	uow := h.uowFactory.Create()
	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return SendOrderNotificationResult{}, err
	}

	if !h.trigger.ShouldNotify(o, cmd.Status()) {
		return SendOrderNotificationResult{Sent: false}, nil
	}

	payload, err := h.trigger.BuildPayload(o, cmd.Status(), cmd.Attachment())
	if err != nil {
		return SendOrderNotificationResult{}, err
	}

	if err = h.sender.Send(ctx, payload); err != nil {
		h.logger.ErrorContext(ctx, "notification send failed",
			"order_id", o.ID().String(),
			"template", string(payload.Template),
			"error", err,
		)
		return SendOrderNotificationResult{}, err
	}

	return SendOrderNotificationResult{Sent: true, Template: payload.Template}, nil
}
