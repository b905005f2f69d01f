package dumpsterrepo

import (
	"context"
	"errors"
	"time"

	"arkdumpster/internal/core/domain/model/dumpster"
	"arkdumpster/internal/core/domain/model/kernel"
	"arkdumpster/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDumpsterRepository implements DumpsterRepository using GORM.
type GormDumpsterRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDumpsterRepository creates a new GORM dumpster repository.
func NewGormDumpsterRepository(db *gorm.DB, tracker aggregateTracker) *GormDumpsterRepository {
	return &GormDumpsterRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new dumpster to the database.
func (r *GormDumpsterRepository) Add(ctx context.Context, aggregate *dumpster.Dumpster) error {
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

// Update saves an existing dumpster to the database.
func (r *GormDumpsterRepository) Update(ctx context.Context, aggregate *dumpster.Dumpster) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DumpsterDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"status":              dto.Status,
		"current_order_id":    dto.CurrentOrderID,
		"address":             dto.Address,
		"condition":           dto.Condition,
		"latitude":            dto.Latitude,
		"longitude":           dto.Longitude,
		"last_assigned_at":    dto.LastAssignedAt,
		"last_maintenance_at": dto.LastMaintenanceAt,
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

// Get retrieves a dumpster by ID.
func (r *GormDumpsterRepository) Get(ctx context.Context, id kernel.UUID) (*dumpster.Dumpster, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DumpsterDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dumpster", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindAssigned retrieves the dumpster currently referencing the given order.
func (r *GormDumpsterRepository) FindAssigned(ctx context.Context, orderID kernel.UUID) (*dumpster.Dumpster, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto DumpsterDTO
	err := r.db.WithContext(ctx).First(&dto, "current_order_id = ?", orderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dumpster", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Claim atomically assigns an available dumpster to an order. The guard is
// the WHERE clause itself: the update only lands on a row still in available
// status, so concurrent claims resolve to one winner at the database. When
// the row was not claimed the current holder is loaded to name it in the
// conflict error.
func (r *GormDumpsterRepository) Claim(
	ctx context.Context,
	id, orderID kernel.UUID,
	address string,
	now time.Time,
) (*dumpster.Dumpster, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	result := r.db.WithContext(ctx).Model(&DumpsterDTO{}).
		Where("id = ? AND status = ?", id.Bytes(), string(dumpster.Available)).
		Updates(map[string]any{
			"status":           string(dumpster.InUse),
			"current_order_id": orderID.Bytes(),
			"address":          address,
			"last_assigned_at": now,
		})
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, r.claimConflict(ctx, id)
	}

	d, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(d.ID(), d)
	return d, nil
}

// Free releases a dumpster back to available. Freeing an already-free
// dumpster affects no rows and succeeds, which lets completion retries and
// manual releases overlap safely.
func (r *GormDumpsterRepository) Free(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	var exists int64
	if err := r.db.WithContext(ctx).Model(&DumpsterDTO{}).
		Where("id = ?", id.Bytes()).Count(&exists).Error; err != nil {
		return err
	}
	if exists == 0 {
		return errs.NewObjectNotFoundError("dumpster", id.String())
	}

	return r.db.WithContext(ctx).Model(&DumpsterDTO{}).
		Where("id = ? AND status = ?", id.Bytes(), string(dumpster.InUse)).
		Updates(map[string]any{
			"status":           string(dumpster.Available),
			"current_order_id": nil,
			"address":          nil,
		}).Error
}

// claimConflict distinguishes a missing dumpster from one already in use.
func (r *GormDumpsterRepository) claimConflict(ctx context.Context, id kernel.UUID) error {
	holder, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	holderID := ""
	if orderID := holder.CurrentOrderID(); orderID != nil {
		holderID = orderID.String()
	}

	return errs.NewConflictError("dumpster", id.String(), holderID)
}
