// Package catalogrepo provides data transfer objects and mapping functions for catalog persistence.
// This package implements the repository pattern for the service catalog, handling
// the conversion between domain entities and database representations.
package catalogrepo

import (
	"arkdumpster/internal/core/domain/model/catalog"
	"arkdumpster/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ServiceDTO represents the database structure for persisting catalog services.
type ServiceDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CategoryID  *uuid.UUID `gorm:"type:uuid;index"`
	Name        string     `gorm:"uniqueIndex"`
	DisplayName string
	BasePrice   decimal.Decimal `gorm:"type:numeric(12,2)"`
	IsActive    bool
	SortOrder   int
}

// TableName specifies the database table name for catalog service entities.
func (ServiceDTO) TableName() string {
	return "services"
}

// CategoryDTO represents the database structure for service categories.
type CategoryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"uniqueIndex"`
	DisplayName string
	SortOrder   int
}

// TableName specifies the database table name for category entities.
func (CategoryDTO) TableName() string {
	return "service_categories"
}

// fromDomain converts a catalog service to its database representation.
func fromDomain(s *catalog.Service) ServiceDTO {
	var categoryID *uuid.UUID
	if id := s.CategoryID(); id != nil {
		raw := id.Bytes()
		categoryID = &raw
	}

	return ServiceDTO{
		ID:          s.ID().Bytes(),
		CategoryID:  categoryID,
		Name:        s.Name(),
		DisplayName: s.DisplayName(),
		BasePrice:   s.BasePrice(),
		IsActive:    s.IsActive(),
		SortOrder:   s.SortOrder(),
	}
}

// toDomain converts a database DTO to a catalog service using RestoreService.
func toDomain(dto ServiceDTO) (*catalog.Service, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var categoryID *kernel.UUID
	if dto.CategoryID != nil {
		cID, catErr := kernel.UUIDFromBytes((*dto.CategoryID)[:])
		if catErr != nil {
			return nil, catErr
		}
		categoryID = &cID
	}

	return catalog.RestoreService(
		id, categoryID,
		dto.Name, dto.DisplayName,
		dto.BasePrice, dto.IsActive, dto.SortOrder,
	)
}
