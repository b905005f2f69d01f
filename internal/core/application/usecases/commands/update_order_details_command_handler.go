package commands

import (
	"context"

	"arkdumpster/internal/core/domain/model/order"
)

// UpdateOrderDetailsCommandHandler edits an order's logistics fields. A
// driver must be assigned here before the order can be moved to on_way on
// the board.
type UpdateOrderDetailsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderDetailsCommandHandler creates a handler for order logistics
// edits.
func NewUpdateOrderDetailsCommandHandler(uowFactory OrderUoWFactory) UpdateOrderDetailsCommandHandler {
	return UpdateOrderDetailsCommandHandler{uowFactory: uowFactory}
}

// Handle applies the non-nil fields and persists the order.
func (h UpdateOrderDetailsCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderDetailsCommand,
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

	if cmd.AssignedTo() != nil {
		if err = o.AssignDriver(*cmd.AssignedTo()); err != nil {
			return nil, err
		}
	}

	if cmd.ScheduledDeliveryDate() != nil || cmd.ScheduledPickupDate() != nil {
		delivery := o.ScheduledDeliveryDate()
		if cmd.ScheduledDeliveryDate() != nil {
			delivery = cmd.ScheduledDeliveryDate()
		}
		pickup := o.ScheduledPickupDate()
		if cmd.ScheduledPickupDate() != nil {
			pickup = cmd.ScheduledPickupDate()
		}
		o.Schedule(delivery, pickup)
	}

	if cmd.FinalPrice() != nil {
		if err = o.SetFinalPrice(*cmd.FinalPrice()); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
