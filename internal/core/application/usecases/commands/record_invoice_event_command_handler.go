package commands

import (
	"context"
	"log/slog"
	"strings"

	"arkdumpster/internal/pkg/errs"
)

// RecordInvoiceEventResult reports how a webhook event was processed.
type RecordInvoiceEventResult struct {
	// Handled is false when the event type is not one this system reacts
	// to. Unhandled events are acknowledged, never errors: the provider
	// must not retry them.
	Handled bool
}

// RecordInvoiceEventCommandHandler reacts to invoicing webhook events by
// recording the invoice status on the order. Only a narrow subset of the
// provider's event stream is consumed; everything else is acknowledged and
// dropped.
type RecordInvoiceEventCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewRecordInvoiceEventCommandHandler creates a handler for invoice webhook
// events.
func NewRecordInvoiceEventCommandHandler(
	uowFactory OrderUoWFactory,
	logger *slog.Logger,
) RecordInvoiceEventCommandHandler {
	return RecordInvoiceEventCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "record_invoice_event"),
	}
}

// Handle records the event. Invoice events are recognized by their type
// prefix; a recognized event needs an order number and an invoice status,
// and stamps the status on the matching order.
func (h RecordInvoiceEventCommandHandler) Handle(
	ctx context.Context,
	cmd RecordInvoiceEventCommand,
) (RecordInvoiceEventResult, error) {
	if err := cmd.Validate(); err != nil {
		return RecordInvoiceEventResult{}, err
	}

	if !strings.HasPrefix(cmd.EventType(), "invoice.") {
		h.logger.InfoContext(ctx, "ignoring unhandled webhook event",
			"event_type", cmd.EventType(),
			"event_id", cmd.EventID(),
		)
		return RecordInvoiceEventResult{Handled: false}, nil
	}

	if cmd.OrderNumber() == "" {
		return RecordInvoiceEventResult{}, errs.NewValueIsRequiredError("orderNumber")
	}
	if cmd.InvoiceStatus() == "" {
		return RecordInvoiceEventResult{}, errs.NewValueIsRequiredError("invoiceStatus")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RecordInvoiceEventResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetByNumber(ctx, cmd.OrderNumber())
	if err != nil {
		return RecordInvoiceEventResult{}, err
	}

	if err = o.MarkInvoiceStatus(cmd.InvoiceStatus()); err != nil {
		return RecordInvoiceEventResult{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return RecordInvoiceEventResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RecordInvoiceEventResult{}, err
	}

	h.logger.InfoContext(ctx, "invoice status recorded",
		"event_type", cmd.EventType(),
		"event_id", cmd.EventID(),
		"order_number", cmd.OrderNumber(),
		"invoice_status", cmd.InvoiceStatus(),
	)

	return RecordInvoiceEventResult{Handled: true}, nil
}
