package ports

import (
	"context"

	"arkdumpster/internal/core/domain/model/kernel"
	"arkdumpster/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates,
// including their owned service lines.
type OrderRepository interface {
	// Add persists a new order aggregate and all of its lines. The write is
	// atomic: an order is never stored without its lines.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate and its lines.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, with lines.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByNumber retrieves an order by its human-readable order number.
	GetByNumber(ctx context.Context, orderNumber string) (*order.Order, error)
}
