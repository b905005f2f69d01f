package queries

import (
	"context"

	"arkdumpster/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetServiceCatalogQueryHandler retrieves the orderable service catalog.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetServiceCatalogQueryHandler struct {
	db *gorm.DB
}

// NewGetServiceCatalogQueryHandler creates a handler for catalog queries.
// Requires a GORM database connection for query execution.
func NewGetServiceCatalogQueryHandler(db *gorm.DB) GetServiceCatalogQueryHandler {
	return GetServiceCatalogQueryHandler{db: db}
}

// Handle executes the query. Only active services are returned, sorted the
// way the promotion screen lists them: by category order, then service order.
func (h GetServiceCatalogQueryHandler) Handle(
	ctx context.Context,
	query GetServiceCatalogQuery,
) ([]GetServiceCatalogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.name,
			s.display_name,
			s.base_price,
			s.sort_order,
			c.display_name
		FROM services s
		LEFT JOIN service_categories c ON c.id = s.category_id
		WHERE s.is_active
		ORDER BY COALESCE(c.sort_order, 0), s.sort_order, s.display_name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := make([]GetServiceCatalogQueryResponse, 0)
	for rows.Next() {
		var s GetServiceCatalogQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&s.Name,
			&s.DisplayName,
			&s.BasePrice,
			&s.SortOrder,
			&s.CategoryName,
		)
		if err != nil {
			return nil, err
		}

		serviceID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		s.ID = serviceID
		services = append(services, s)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return services, nil
}
