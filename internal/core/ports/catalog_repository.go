package ports

import (
	"context"

	"arkdumpster/internal/core/domain/model/catalog"
	"arkdumpster/internal/core/domain/model/kernel"
)

// CatalogRepository defines the persistence contract for the service catalog.
type CatalogRepository interface {
	// AddService persists a new catalog service.
	AddService(ctx context.Context, aggregate *catalog.Service) error

	// UpdateService persists changes to an existing catalog service.
	UpdateService(ctx context.Context, aggregate *catalog.Service) error

	// GetService retrieves a catalog service by its unique identifier.
	GetService(ctx context.Context, id kernel.UUID) (*catalog.Service, error)

	// GetServices retrieves catalog services by identifier, preserving the
	// requested ordering. Fails with an ObjectNotFoundError if any
	// identifier is unknown.
	GetServices(ctx context.Context, ids []kernel.UUID) ([]*catalog.Service, error)
}
