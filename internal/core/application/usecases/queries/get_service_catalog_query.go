package queries

import (
	"errors"

	"arkdumpster/internal/core/domain/model/kernel"
	"arkdumpster/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetServiceCatalogQueryIsNotConstructed = errors.New(
		"GetServiceCatalogQuery must be created via NewGetServiceCatalogQuery constructor",
	)
)

// GetServiceCatalogQuery retrieves the active service catalog grouped by
// category, the list the promotion screen offers.
type GetServiceCatalogQuery struct {
	guard guard.ConstructorGuard
}

// NewGetServiceCatalogQuery creates a query to retrieve the service catalog.
func NewGetServiceCatalogQuery() GetServiceCatalogQuery {
	return GetServiceCatalogQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetServiceCatalogQuery) Validate() error {
	return q.guard.Validate(ErrGetServiceCatalogQueryIsNotConstructed)
}

// GetServiceCatalogQueryResponse represents one orderable service. Category
// fields are nil for uncategorized services.
type GetServiceCatalogQueryResponse struct {
	ID           kernel.UUID
	Name         string
	DisplayName  string
	BasePrice    decimal.Decimal
	SortOrder    int
	CategoryName *string
}
