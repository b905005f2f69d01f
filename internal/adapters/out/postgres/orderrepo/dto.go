// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"arkdumpster/internal/core/domain/model/kernel"
	"arkdumpster/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The service lines are owned by the order and share its lifecycle: they are
// written with the order and removed with it.
type OrderDTO struct {
	ID                        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	QuoteID                   *uuid.UUID `gorm:"type:uuid;index"`
	OrderNumber               string     `gorm:"uniqueIndex"`
	CustomerName              string
	CustomerEmail             string
	CustomerPhone             string
	Address                   string
	Status                    string `gorm:"index"`
	Priority                  string
	QuotedPrice               decimal.Decimal  `gorm:"type:numeric(12,2)"`
	FinalPrice                *decimal.Decimal `gorm:"type:numeric(12,2)"`
	AssignedTo                *string
	ScheduledDeliveryDate     *time.Time
	ScheduledPickupDate       *time.Time
	ActualDeliveryDate        *time.Time
	ActualPickupDate          *time.Time
	CompletedAt               *time.Time
	CompletedWithDumpsterID   *uuid.UUID `gorm:"type:uuid"`
	CompletedWithDumpsterName *string
	InvoiceStatus             string
	CreatedAt                 time.Time

	Lines []LineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO represents one service line row owned by an order.
type LineDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID            uuid.UUID `gorm:"type:uuid;index"`
	ServiceID          uuid.UUID `gorm:"type:uuid"`
	Name               string
	Quantity           int
	UnitPrice          decimal.Decimal `gorm:"type:numeric(12,2)"`
	TotalPrice         decimal.Decimal `gorm:"type:numeric(12,2)"`
	InvoiceDescription *string
}

// TableName specifies the database table name for order line entities.
func (LineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:                        o.ID().Bytes(),
		QuoteID:                   uuidPtr(o.QuoteID()),
		OrderNumber:               o.OrderNumber(),
		CustomerName:              o.CustomerName(),
		CustomerEmail:             o.CustomerEmail(),
		CustomerPhone:             o.CustomerPhone(),
		Address:                   o.Address(),
		Status:                    string(o.Status()),
		Priority:                  string(o.Priority()),
		QuotedPrice:               o.QuotedPrice(),
		FinalPrice:                o.FinalPrice(),
		AssignedTo:                o.AssignedTo(),
		ScheduledDeliveryDate:     o.ScheduledDeliveryDate(),
		ScheduledPickupDate:       o.ScheduledPickupDate(),
		ActualDeliveryDate:        o.ActualDeliveryDate(),
		ActualPickupDate:          o.ActualPickupDate(),
		CompletedAt:               o.CompletedAt(),
		CompletedWithDumpsterID:   uuidPtr(o.CompletedWithDumpsterID()),
		CompletedWithDumpsterName: o.CompletedWithDumpsterName(),
		InvoiceStatus:             o.InvoiceStatus(),
		CreatedAt:                 o.CreatedAt(),
	}

	for _, l := range o.Lines() {
		dto.Lines = append(dto.Lines, LineDTO{
			ID:                 l.ID().Bytes(),
			OrderID:            o.ID().Bytes(),
			ServiceID:          l.ServiceID().Bytes(),
			Name:               l.Name(),
			Quantity:           l.Quantity(),
			UnitPrice:          l.UnitPrice(),
			TotalPrice:         l.TotalPrice(),
			InvoiceDescription: l.InvoiceDescription(),
		})
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including lines using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	quoteID, err := kernelPtr(dto.QuoteID)
	if err != nil {
		return nil, err
	}

	completedWith, err := kernelPtr(dto.CompletedWithDumpsterID)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	priority, err := order.ParsePriority(dto.Priority)
	if err != nil {
		return nil, err
	}

	lines := make([]*order.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		lineID, lineErr := kernel.UUIDFromBytes(l.ID[:])
		if lineErr != nil {
			return nil, lineErr
		}
		serviceID, lineErr := kernel.UUIDFromBytes(l.ServiceID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		line, lineErr := order.RestoreLine(
			lineID, serviceID, l.Name, l.Quantity,
			l.UnitPrice, l.TotalPrice, l.InvoiceDescription,
		)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id, quoteID, dto.OrderNumber,
		dto.CustomerName, dto.CustomerEmail, dto.CustomerPhone, dto.Address,
		status, priority,
		dto.QuotedPrice, dto.FinalPrice,
		dto.AssignedTo,
		dto.ScheduledDeliveryDate, dto.ScheduledPickupDate,
		dto.ActualDeliveryDate, dto.ActualPickupDate,
		dto.CompletedAt,
		completedWith, dto.CompletedWithDumpsterName,
		dto.InvoiceStatus,
		lines,
		dto.CreatedAt,
	)
}

func uuidPtr(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func kernelPtr(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}

	k, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	return &k, nil
}
