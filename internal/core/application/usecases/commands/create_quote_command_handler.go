package commands

import (
	"context"
	"time"

	"arkdumpster/internal/core/domain/model/quote"
)

// CreateQuoteCommandHandler registers a new quote request from the public
// form.
type CreateQuoteCommandHandler struct {
	uowFactory QuoteUoWFactory
}

// NewCreateQuoteCommandHandler creates a handler for quote submissions.
func NewCreateQuoteCommandHandler(uowFactory QuoteUoWFactory) CreateQuoteCommandHandler {
	return CreateQuoteCommandHandler{uowFactory: uowFactory}
}

// Handle creates the quote in pending status and persists it.
func (h CreateQuoteCommandHandler) Handle(ctx context.Context, cmd CreateQuoteCommand) (*quote.Quote, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	q, err := quote.NewQuote(
		cmd.QuoteID(),
		cmd.CustomerName(), cmd.CustomerEmail(), cmd.CustomerPhone(),
		cmd.DropoffAddress(), cmd.DumpsterSize(), cmd.Message(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.QuoteRepository().Add(ctx, q); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return q, nil
}
