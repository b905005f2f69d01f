// Package releasequeuerepo persists pending dumpster release tasks. A task
// exists only while a completion-time free has failed and not yet been
// retried successfully; the background job drains the table.
package releasequeuerepo

import (
	"time"

	"arkdumpster/internal/core/domain/model/dumpster"
	"arkdumpster/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ReleaseTaskDTO represents one pending release row.
type ReleaseTaskDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	DumpsterID uuid.UUID `gorm:"type:uuid;index"`
	OrderID    uuid.UUID `gorm:"type:uuid"`
	Attempts   int
	CreatedAt  time.Time
}

// TableName specifies the database table name for release task entities.
func (ReleaseTaskDTO) TableName() string {
	return "dumpster_release_tasks"
}

// fromDomain converts a release task to its database representation.
func fromDomain(task dumpster.ReleaseTask) ReleaseTaskDTO {
	return ReleaseTaskDTO{
		ID:         task.ID.Bytes(),
		DumpsterID: task.DumpsterID.Bytes(),
		OrderID:    task.OrderID.Bytes(),
		Attempts:   task.Attempts,
		CreatedAt:  task.CreatedAt,
	}
}

// toDomain converts a database DTO to a release task.
func toDomain(dto ReleaseTaskDTO) (dumpster.ReleaseTask, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return dumpster.ReleaseTask{}, err
	}

	dumpsterID, err := kernel.UUIDFromBytes(dto.DumpsterID[:])
	if err != nil {
		return dumpster.ReleaseTask{}, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return dumpster.ReleaseTask{}, err
	}

	task, err := dumpster.NewReleaseTask(id, dumpsterID, orderID, dto.CreatedAt)
	if err != nil {
		return dumpster.ReleaseTask{}, err
	}

	task.Attempts = dto.Attempts
	return task, nil
}
