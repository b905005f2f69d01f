package commands

import (
	"context"

	"arkdumpster/internal/core/domain/model/order"
)

// AdjustLineDescriptionCommandHandler overrides the invoice text on one
// order line. This is the only mutation order lines support after promotion.
type AdjustLineDescriptionCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAdjustLineDescriptionCommandHandler creates a handler for invoice text
// adjustments.
func NewAdjustLineDescriptionCommandHandler(uowFactory OrderUoWFactory) AdjustLineDescriptionCommandHandler {
	return AdjustLineDescriptionCommandHandler{uowFactory: uowFactory}
}

// Handle loads the order, adjusts the line and persists the change.
func (h AdjustLineDescriptionCommandHandler) Handle(
	ctx context.Context,
	cmd AdjustLineDescriptionCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	line, err := o.Line(cmd.LineID())
	if err != nil {
		return nil, err
	}

	if err = line.SetInvoiceDescription(cmd.Description()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
