// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"arkdumpster/internal/core/domain/model/kernel"
	"arkdumpster/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
		"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
	)
)

// GetActiveOrdersQuery retrieves all orders still moving through the
// lifecycle, which is everything except completed and cancelled. This is the
// read model behind the dispatch board.
type GetActiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query to retrieve active orders.
func NewGetActiveOrdersQuery() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// GetActiveOrdersQueryResponse represents one card on the dispatch board.
type GetActiveOrdersQueryResponse struct {
	ID                    kernel.UUID
	OrderNumber           string
	CustomerName          string
	Address               string
	Status                string
	Priority              string
	QuotedPrice           decimal.Decimal
	AssignedTo            *string
	ScheduledDeliveryDate *time.Time
	ScheduledPickupDate   *time.Time
	CreatedAt             time.Time
}
