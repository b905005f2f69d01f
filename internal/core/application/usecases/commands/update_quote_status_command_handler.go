package commands

import (
	"context"
	"time"

	"arkdumpster/internal/core/domain/model/quote"
)

// UpdateQuoteStatusCommandHandler moves a quote through the funnel.
type UpdateQuoteStatusCommandHandler struct {
	uowFactory QuoteUoWFactory
}

// NewUpdateQuoteStatusCommandHandler creates a handler for quote status
// edits.
func NewUpdateQuoteStatusCommandHandler(uowFactory QuoteUoWFactory) UpdateQuoteStatusCommandHandler {
	return UpdateQuoteStatusCommandHandler{uowFactory: uowFactory}
}

// Handle loads the quote, applies the status and persists the change.
func (h UpdateQuoteStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateQuoteStatusCommand,
) (*quote.Quote, error) {
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

	quoteRepo := uow.QuoteRepository()
	q, err := quoteRepo.Get(ctx, cmd.QuoteID())
	if err != nil {
		return nil, err
	}

	if err = q.SetStatus(cmd.NewStatus(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = quoteRepo.Update(ctx, q); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return q, nil
}
