// Package quoterepo provides data transfer objects and mapping functions for quote persistence.
// This package implements the repository pattern for the quote domain aggregate, handling
// the conversion between domain entities and database representations.
package quoterepo

import (
	"time"

	"arkdumpster/internal/core/domain/model/kernel"
	"arkdumpster/internal/core/domain/model/quote"

	"github.com/google/uuid"
)

// QuoteDTO represents the database structure for persisting quote aggregates.
type QuoteDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerName   string
	CustomerEmail  string `gorm:"index"`
	CustomerPhone  string
	DropoffAddress string
	DumpsterSize   string
	Message        string
	Status         string `gorm:"index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the database table name for quote entities.
// Overrides GORM's default naming convention to use "quotes".
func (QuoteDTO) TableName() string {
	return "quotes"
}

// fromDomain converts a quote domain aggregate to its database representation.
func fromDomain(q *quote.Quote) QuoteDTO {
	return QuoteDTO{
		ID:             q.ID().Bytes(),
		CustomerName:   q.CustomerName(),
		CustomerEmail:  q.CustomerEmail(),
		CustomerPhone:  q.CustomerPhone(),
		DropoffAddress: q.DropoffAddress(),
		DumpsterSize:   q.DumpsterSize(),
		Message:        q.Message(),
		Status:         string(q.Status()),
		CreatedAt:      q.CreatedAt(),
		UpdatedAt:      q.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a quote domain aggregate using RestoreQuote.
func toDomain(dto QuoteDTO) (*quote.Quote, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := quote.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return quote.RestoreQuote(
		id,
		dto.CustomerName, dto.CustomerEmail, dto.CustomerPhone,
		dto.DropoffAddress, dto.DumpsterSize, dto.Message,
		status,
		dto.CreatedAt, dto.UpdatedAt,
	)
}
