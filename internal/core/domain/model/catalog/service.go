// Package catalog implements the read-mostly service catalog: the rentable
// services and their category grouping, managed by admins and consumed by the
// quote-to-order promotion.
package catalog

import (
	"errors"
	"fmt"

	"arkdumpster/internal/core/domain/model/kernel"
	"arkdumpster/internal/pkg/errs"
	"arkdumpster/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrServiceIsNotConstructed is returned when a Service was not created
	// through NewService or RestoreService.
	ErrServiceIsNotConstructed = errors.New("Service must be created via NewService or RestoreService constructor")

	// ErrCategoryIsNotConstructed is returned when a Category was not created
	// through NewCategory.
	ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory constructor")
)

// Service is a rentable catalog entry. Promotion snapshots its display name
// and base price onto order lines, so later edits here never rewrite history.
type Service struct {
	id          kernel.UUID
	categoryID  *kernel.UUID
	name        string
	displayName string
	basePrice   decimal.Decimal
	active      bool
	sortOrder   int

	guard guard.ConstructorGuard
}

// NewService creates an active catalog service.
func NewService(
	id kernel.UUID,
	categoryID *kernel.UUID,
	name, displayName string,
	basePrice decimal.Decimal,
	sortOrder int,
) (*Service, error) {
	s := &Service{
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setCategoryID(categoryID),
		s.setName(name, displayName),
		s.setBasePrice(basePrice),
	); err != nil {
		return nil, err
	}

	s.sortOrder = sortOrder
	return s, nil
}

// RestoreService reconstructs a Service from persistence.
func RestoreService(
	id kernel.UUID,
	categoryID *kernel.UUID,
	name, displayName string,
	basePrice decimal.Decimal,
	active bool,
	sortOrder int,
) (*Service, error) {
	s, err := NewService(id, categoryID, name, displayName, basePrice, sortOrder)
	if err != nil {
		return nil, err
	}

	s.active = active
	return s, nil
}

// Validate ensures the Service was created through a constructor.
func (s *Service) Validate() error {
	if s == nil {
		return ErrServiceIsNotConstructed
	}
	return s.guard.Validate(ErrServiceIsNotConstructed)
}

// ID returns the service's unique identifier.
func (s *Service) ID() kernel.UUID {
	return s.id
}

// CategoryID returns the grouping category, nil if uncategorized.
func (s *Service) CategoryID() *kernel.UUID {
	return s.categoryID
}

// Name returns the internal service key.
func (s *Service) Name() string {
	return s.name
}

// DisplayName returns the customer-facing service name.
func (s *Service) DisplayName() string {
	return s.displayName
}

// BasePrice returns the default per-unit price.
func (s *Service) BasePrice() decimal.Decimal {
	return s.basePrice
}

// IsActive reports whether the service can be selected for new orders.
func (s *Service) IsActive() bool {
	return s.active
}

// SortOrder returns the catalog display position.
func (s *Service) SortOrder() int {
	return s.sortOrder
}

// Activate makes the service selectable for new orders.
func (s *Service) Activate() {
	s.active = true
}

// Deactivate hides the service from new orders without deleting it.
func (s *Service) Deactivate() {
	s.active = false
}

// SetBasePrice updates the default per-unit price.
func (s *Service) SetBasePrice(price decimal.Decimal) error {
	return s.setBasePrice(price)
}

func (s *Service) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Service) setCategoryID(categoryID *kernel.UUID) error {
	if categoryID != nil {
		if err := categoryID.Validate(); err != nil {
			return err
		}
	}
	s.categoryID = categoryID
	return nil
}

func (s *Service) setName(name, displayName string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name is required")
	}
	if displayName == "" {
		return errs.NewValueIsRequiredError("displayName is required")
	}
	s.name = name
	s.displayName = displayName
	return nil
}

func (s *Service) setBasePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("basePrice is invalid",
			fmt.Errorf("%s is negative", price))
	}
	s.basePrice = price
	return nil
}

// Category groups catalog services for display.
type Category struct {
	id          kernel.UUID
	name        string
	displayName string
	sortOrder   int

	guard guard.ConstructorGuard
}

// NewCategory creates a catalog category.
func NewCategory(id kernel.UUID, name, displayName string, sortOrder int) (*Category, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name is required")
	}
	if displayName == "" {
		displayName = name
	}

	return &Category{
		id:          id,
		name:        name,
		displayName: displayName,
		sortOrder:   sortOrder,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Category was created through its constructor.
func (c *Category) Validate() error {
	if c == nil {
		return ErrCategoryIsNotConstructed
	}
	return c.guard.Validate(ErrCategoryIsNotConstructed)
}

// ID returns the category's unique identifier.
func (c *Category) ID() kernel.UUID {
	return c.id
}

// Name returns the internal category key.
func (c *Category) Name() string {
	return c.name
}

// DisplayName returns the customer-facing category name.
func (c *Category) DisplayName() string {
	return c.displayName
}

// SortOrder returns the catalog display position.
func (c *Category) SortOrder() int {
	return c.sortOrder
}
