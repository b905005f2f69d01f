package queries

import (
	"errors"
	"time"

	"arkdumpster/internal/core/domain/model/kernel"
	"arkdumpster/internal/pkg/guard"
)

var (
	ErrGetDumpsterBoardQueryIsNotConstructed = errors.New(
		"GetDumpsterBoardQuery must be created via NewGetDumpsterBoardQuery constructor",
	)
)

// GetDumpsterBoardQuery retrieves the full dumpster inventory with each
// asset's current assignment, the read model behind the asset board.
type GetDumpsterBoardQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDumpsterBoardQuery creates a query to retrieve the dumpster board.
func NewGetDumpsterBoardQuery() GetDumpsterBoardQuery {
	return GetDumpsterBoardQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDumpsterBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetDumpsterBoardQueryIsNotConstructed)
}

// GetDumpsterBoardQueryResponse represents one asset on the board. The
// current order fields are nil for available dumpsters.
type GetDumpsterBoardQueryResponse struct {
	ID                 kernel.UUID
	Name               string
	Status             string
	Condition          string
	Address            *string
	CurrentOrderID     *kernel.UUID
	CurrentOrderNumber *string
	Latitude           *float64
	Longitude          *float64
	LastAssignedAt     *time.Time
	LastMaintenanceAt  *time.Time
}
