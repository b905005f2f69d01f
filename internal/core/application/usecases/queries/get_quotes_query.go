package queries

import (
	"errors"
	"time"

	"arkdumpster/internal/core/domain/model/kernel"
	"arkdumpster/internal/pkg/guard"
)

var (
	ErrGetQuotesQueryIsNotConstructed = errors.New(
		"GetQuotesQuery must be created via NewGetQuotesQuery constructor",
	)
)

// GetQuotesQuery retrieves quote requests for the back office, newest first.
// An optional customer email narrows the result to one customer's history.
type GetQuotesQuery struct {
	customerEmail string

	guard guard.ConstructorGuard
}

// NewGetQuotesQuery creates a query to retrieve quotes. Pass an empty email
// to retrieve all quotes.
func NewGetQuotesQuery(customerEmail string) GetQuotesQuery {
	return GetQuotesQuery{
		customerEmail: customerEmail,
		guard:         guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetQuotesQuery) Validate() error {
	return q.guard.Validate(ErrGetQuotesQueryIsNotConstructed)
}

// CustomerEmail returns the email filter, empty when unfiltered.
func (q GetQuotesQuery) CustomerEmail() string {
	return q.customerEmail
}

// GetQuotesQueryResponse represents one quote request in the funnel.
type GetQuotesQueryResponse struct {
	ID             kernel.UUID
	CustomerName   string
	CustomerEmail  string
	CustomerPhone  string
	DropoffAddress string
	DumpsterSize   string
	Message        string
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
