// Package dumpsterrepo provides data transfer objects and mapping functions for dumpster persistence.
// This package implements the repository pattern for the dumpster domain aggregate, handling
// the conversion between domain entities and database representations.
package dumpsterrepo

import (
	"time"

	"arkdumpster/internal/core/domain/model/dumpster"
	"arkdumpster/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DumpsterDTO represents the database structure for persisting dumpster
// aggregates. The current order reference is a weak back-reference to the
// orders table, not an ownership link.
type DumpsterDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name              string     `gorm:"uniqueIndex"`
	Status            string     `gorm:"index"`
	CurrentOrderID    *uuid.UUID `gorm:"type:uuid;index"`
	Address           *string
	Condition         string
	Latitude          *float64
	Longitude         *float64
	LastAssignedAt    *time.Time
	LastMaintenanceAt *time.Time
}

// TableName specifies the database table name for dumpster entities.
// Overrides GORM's default naming convention to use "dumpsters".
func (DumpsterDTO) TableName() string {
	return "dumpsters"
}

// fromDomain converts a dumpster domain aggregate to its database representation.
func fromDomain(d *dumpster.Dumpster) DumpsterDTO {
	var currentOrderID *uuid.UUID
	if id := d.CurrentOrderID(); id != nil {
		raw := id.Bytes()
		currentOrderID = &raw
	}

	return DumpsterDTO{
		ID:                d.ID().Bytes(),
		Name:              d.Name(),
		Status:            string(d.Status()),
		CurrentOrderID:    currentOrderID,
		Address:           d.Address(),
		Condition:         string(d.Condition()),
		Latitude:          d.Latitude(),
		Longitude:         d.Longitude(),
		LastAssignedAt:    d.LastAssignedAt(),
		LastMaintenanceAt: d.LastMaintenanceAt(),
	}
}

// toDomain converts a database DTO to a dumpster domain aggregate using RestoreDumpster.
func toDomain(dto DumpsterDTO) (*dumpster.Dumpster, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var currentOrderID *kernel.UUID
	if dto.CurrentOrderID != nil {
		orderID, orderErr := kernel.UUIDFromBytes((*dto.CurrentOrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}
		currentOrderID = &orderID
	}

	status, err := dumpster.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	condition, err := dumpster.ParseCondition(dto.Condition)
	if err != nil {
		return nil, err
	}

	return dumpster.RestoreDumpster(
		id, dto.Name, status, currentOrderID, dto.Address, condition,
		dto.Latitude, dto.Longitude,
		dto.LastAssignedAt, dto.LastMaintenanceAt,
	)
}
