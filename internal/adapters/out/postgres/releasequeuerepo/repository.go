package releasequeuerepo

import (
	"context"

	"arkdumpster/internal/core/domain/model/dumpster"
	"arkdumpster/internal/core/domain/model/kernel"
	"arkdumpster/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormReleaseQueue implements ReleaseQueue using GORM.
type GormReleaseQueue struct {
	db *gorm.DB
}

// NewGormReleaseQueue creates a new GORM release queue.
func NewGormReleaseQueue(db *gorm.DB) *GormReleaseQueue {
	return &GormReleaseQueue{db: db}
}

// Enqueue stores a pending release task.
func (r *GormReleaseQueue) Enqueue(ctx context.Context, task dumpster.ReleaseTask) error {
	dto := fromDomain(task)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Pending retrieves up to limit pending tasks, oldest first.
func (r *GormReleaseQueue) Pending(ctx context.Context, limit int) ([]dumpster.ReleaseTask, error) {
	if limit <= 0 {
		return nil, errs.NewValueIsInvalidError("limit")
	}

	var dtos []ReleaseTaskDTO
	err := r.db.WithContext(ctx).Order("created_at").Limit(limit).Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	tasks := make([]dumpster.ReleaseTask, 0, len(dtos))
	for _, dto := range dtos {
		task, taskErr := toDomain(dto)
		if taskErr != nil {
			return nil, taskErr
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

// Complete removes an acknowledged task from the queue.
func (r *GormReleaseQueue) Complete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ReleaseTaskDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("release task", id.String())
	}

	return nil
}

// RecordAttempt increments the retry counter of a task that failed again.
func (r *GormReleaseQueue) RecordAttempt(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&ReleaseTaskDTO{}).
		Where("id = ?", id.Bytes()).
		UpdateColumn("attempts", gorm.Expr("attempts + 1"))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("release task", id.String())
	}

	return nil
}
