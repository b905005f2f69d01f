// Package ports defines the contracts between the core and its collaborators:
// repositories, the unit of work, and the gateways to external services.
// These interfaces establish the dependency inversion boundary that keeps the
// domain testable against doubles.
package ports

import (
	"context"

	"arkdumpster/internal/core/domain/model/kernel"
	"arkdumpster/internal/core/domain/model/quote"
)

// QuoteRepository defines the persistence contract for quote aggregates.
type QuoteRepository interface {
	// Add persists a new quote aggregate to storage.
	Add(ctx context.Context, aggregate *quote.Quote) error

	// Update persists changes to an existing quote aggregate.
	Update(ctx context.Context, aggregate *quote.Quote) error

	// Get retrieves a quote aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*quote.Quote, error)
}
