package commands

import (
	"context"
	"time"

	"arkdumpster/internal/core/domain/model/kernel"
	"arkdumpster/internal/core/domain/model/order"
	"arkdumpster/internal/core/domain/model/quote"
	"arkdumpster/internal/pkg/errs"
)

// PromoteQuoteCommandHandler converts an accepted quote into an order with
// service lines snapshotted from the catalog. The order and all of its lines
// are written in one transaction: a promoted quote never yields a half-built
// order.
type PromoteQuoteCommandHandler struct {
	uowFactory PromotionUoWFactory
}

// NewPromoteQuoteCommandHandler creates a handler for quote promotion.
func NewPromoteQuoteCommandHandler(uowFactory PromotionUoWFactory) PromoteQuoteCommandHandler {
	return PromoteQuoteCommandHandler{uowFactory: uowFactory}
}

// Handle promotes the quote. The quote must be in accepted status; it is left
// untouched by the promotion so the funnel history stays intact, and the new
// order keeps a reference back to it.
func (h PromoteQuoteCommandHandler) Handle(ctx context.Context, cmd PromoteQuoteCommand) (*order.Order, error) {
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

	q, err := uow.QuoteRepository().Get(ctx, cmd.QuoteID())
	if err != nil {
		return nil, err
	}

	if q.Status() != quote.Accepted {
		return nil, errs.NewPreconditionError("quote must be accepted before promotion")
	}

	lines, err := h.buildLines(ctx, uow, cmd.Selections())
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	quoteID := q.ID()
	o, err := order.NewOrder(
		cmd.OrderID(),
		&quoteID,
		order.GenerateOrderNumber(now),
		q.CustomerName(), q.CustomerEmail(), q.CustomerPhone(),
		q.DropoffAddress(),
		cmd.Priority(),
		lines,
		cmd.QuotedPriceOverride(),
		now,
	)
	if err != nil {
		return nil, err
	}

	o.Schedule(cmd.ScheduledDeliveryDate(), cmd.ScheduledPickupDate())

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

// buildLines resolves the selections against the catalog and snapshots each
// service's display name and base price into a line.
func (h PromoteQuoteCommandHandler) buildLines(
	ctx context.Context,
	uow PromotionUoW,
	selections []ServiceSelection,
) ([]*order.Line, error) {
	ids := make([]kernel.UUID, 0, len(selections))
	for _, sel := range selections {
		ids = append(ids, sel.ServiceID)
	}

	services, err := uow.CatalogRepository().GetServices(ctx, ids)
	if err != nil {
		return nil, err
	}

	lines := make([]*order.Line, 0, len(selections))
	for i, sel := range selections {
		svc := services[i]
		line, err := order.NewLine(
			kernel.NewUUID(),
			svc.ID(),
			svc.DisplayName(),
			sel.Quantity,
			svc.BasePrice(),
		)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}
