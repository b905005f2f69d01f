package queries

import (
	"context"

	"arkdumpster/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetQuotesQueryHandler retrieves quote requests from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetQuotesQueryHandler struct {
	db *gorm.DB
}

// NewGetQuotesQueryHandler creates a handler for quote retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetQuotesQueryHandler(db *gorm.DB) GetQuotesQueryHandler {
	return GetQuotesQueryHandler{db: db}
}

// Handle executes the query, newest quotes first.
func (h GetQuotesQueryHandler) Handle(
	ctx context.Context,
	query GetQuotesQuery,
) ([]GetQuotesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			customer_name,
			customer_email,
			customer_phone,
			dropoff_address,
			dumpster_size,
			message,
			status,
			created_at,
			updated_at
		FROM quotes
	`
	args := make([]any, 0, 1)
	if query.CustomerEmail() != "" {
		sql += ` WHERE customer_email = ?`
		args = append(args, query.CustomerEmail())
	}
	sql += ` ORDER BY created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	quotes := make([]GetQuotesQueryResponse, 0)
	for rows.Next() {
		var q GetQuotesQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&q.CustomerName,
			&q.CustomerEmail,
			&q.CustomerPhone,
			&q.DropoffAddress,
			&q.DumpsterSize,
			&q.Message,
			&q.Status,
			&q.CreatedAt,
			&q.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		quoteID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		q.ID = quoteID
		quotes = append(quotes, q)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return quotes, nil
}
