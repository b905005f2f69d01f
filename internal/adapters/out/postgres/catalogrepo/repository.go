package catalogrepo

import (
	"context"
	"errors"

	"arkdumpster/internal/core/domain/model/catalog"
	"arkdumpster/internal/core/domain/model/kernel"
	"arkdumpster/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCatalogRepository implements CatalogRepository using GORM.
type GormCatalogRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB, tracker aggregateTracker) *GormCatalogRepository {
	return &GormCatalogRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddService saves a new catalog service to the database.
func (r *GormCatalogRepository) AddService(ctx context.Context, aggregate *catalog.Service) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateService saves an existing catalog service to the database.
func (r *GormCatalogRepository) UpdateService(ctx context.Context, aggregate *catalog.Service) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ServiceDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"category_id":  dto.CategoryID,
		"name":         dto.Name,
		"display_name": dto.DisplayName,
		"base_price":   dto.BasePrice,
		"is_active":    dto.IsActive,
		"sort_order":   dto.SortOrder,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetService retrieves a catalog service by ID.
func (r *GormCatalogRepository) GetService(ctx context.Context, id kernel.UUID) (*catalog.Service, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ServiceDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("service", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetServices retrieves catalog services by identifier, preserving the
// requested ordering. Any unknown identifier fails the whole call: promotion
// must never silently drop a selected service.
func (r *GormCatalogRepository) GetServices(ctx context.Context, ids []kernel.UUID) ([]*catalog.Service, error) {
	if len(ids) == 0 {
		return nil, errs.NewValueIsRequiredError("ids")
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []ServiceDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]ServiceDTO, len(dtos))
	for _, dto := range dtos {
		byID[dto.ID] = dto
	}

	services := make([]*catalog.Service, 0, len(ids))
	for _, id := range ids {
		dto, ok := byID[id.Bytes()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("service", id.String())
		}

		svc, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		services = append(services, svc)
	}

	return services, nil
}
