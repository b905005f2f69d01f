package queries

import (
	"context"

	"arkdumpster/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDumpsterBoardQueryHandler retrieves the dumpster inventory with the
// order currently holding each asset.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetDumpsterBoardQueryHandler struct {
	db *gorm.DB
}

// NewGetDumpsterBoardQueryHandler creates a handler for dumpster board
// queries. Requires a GORM database connection for query execution.
func NewGetDumpsterBoardQueryHandler(db *gorm.DB) GetDumpsterBoardQueryHandler {
	return GetDumpsterBoardQueryHandler{db: db}
}

// Handle executes the query. The join resolves the holding order's number so
// the board can show who has the asset without a second round trip.
func (h GetDumpsterBoardQueryHandler) Handle(
	ctx context.Context,
	query GetDumpsterBoardQuery,
) ([]GetDumpsterBoardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.name,
			d.status,
			d.condition,
			d.address,
			d.current_order_id,
			o.order_number,
			d.latitude,
			d.longitude,
			d.last_assigned_at,
			d.last_maintenance_at
		FROM dumpsters d
		LEFT JOIN orders o ON o.id = d.current_order_id
		ORDER BY d.name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dumpsters := make([]GetDumpsterBoardQueryResponse, 0)
	for rows.Next() {
		var d GetDumpsterBoardQueryResponse
		var id uuid.UUID
		var currentOrderID *uuid.UUID

		err = rows.Scan(
			&id,
			&d.Name,
			&d.Status,
			&d.Condition,
			&d.Address,
			&currentOrderID,
			&d.CurrentOrderNumber,
			&d.Latitude,
			&d.Longitude,
			&d.LastAssignedAt,
			&d.LastMaintenanceAt,
		)
		if err != nil {
			return nil, err
		}

		dumpsterID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		d.ID = dumpsterID

		if currentOrderID != nil {
			orderID, orderIDErr := kernel.UUIDFromBytes(currentOrderID[:])
			if orderIDErr != nil {
				return nil, orderIDErr
			}
			d.CurrentOrderID = &orderID
		}

		dumpsters = append(dumpsters, d)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return dumpsters, nil
}
