package order

import (
	"errors"
	"fmt"

	"arkdumpster/internal/core/domain/model/kernel"
	"arkdumpster/internal/pkg/errs"
	"arkdumpster/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrLineIsNotConstructed is returned when a Line was not created through
// NewLine or RestoreLine.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine or RestoreLine constructor")

// Line is a service line item on an order. It snapshots the catalog service
// name and unit price at promotion time so later catalog edits do not change
// what the customer agreed to.
//
// Lines are created together with their order and are never deleted while the
// order exists. The only mutation allowed after creation is adjusting the
// invoice description text.
type Line struct {
	id        kernel.UUID
	serviceID kernel.UUID

	// name is the catalog display name captured at promotion time
	name string

	quantity   int
	unitPrice  decimal.Decimal
	totalPrice decimal.Decimal

	// invoiceDescription overrides the line text on generated invoices, nil
	// means the service name is used
	invoiceDescription *string

	guard guard.ConstructorGuard
}

// NewLine creates a line item for the given service selection.
// The total price is always quantity times unit price.
func NewLine(id, serviceID kernel.UUID, name string, quantity int, unitPrice decimal.Decimal) (*Line, error) {
	line := &Line{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setID(id),
		line.setServiceID(serviceID),
		line.setName(name),
		line.setQuantity(quantity),
		line.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	line.totalPrice = unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	return line, nil
}

// RestoreLine reconstructs a line item from persistence, including its stored
// total and any invoice description override.
func RestoreLine(
	id, serviceID kernel.UUID,
	name string,
	quantity int,
	unitPrice, totalPrice decimal.Decimal,
	invoiceDescription *string,
) (*Line, error) {
	line, err := NewLine(id, serviceID, name, quantity, unitPrice)
	if err != nil {
		return nil, err
	}

	line.totalPrice = totalPrice
	line.invoiceDescription = invoiceDescription
	return line, nil
}

// ID returns the line's unique identifier.
func (l *Line) ID() kernel.UUID {
	return l.id
}

// ServiceID returns the catalog service this line was created from.
func (l *Line) ServiceID() kernel.UUID {
	return l.serviceID
}

// Name returns the service name snapshot taken at promotion time.
func (l *Line) Name() string {
	return l.name
}

// Quantity returns the number of units on the line.
func (l *Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the per-unit price snapshot taken at promotion time.
func (l *Line) UnitPrice() decimal.Decimal {
	return l.unitPrice
}

// TotalPrice returns quantity times unit price.
func (l *Line) TotalPrice() decimal.Decimal {
	return l.totalPrice
}

// InvoiceDescription returns the invoice text override, nil if unset.
func (l *Line) InvoiceDescription() *string {
	return l.invoiceDescription
}

// SetInvoiceDescription adjusts the text shown for this line on invoices.
// This is the only mutation permitted after the line is created.
func (l *Line) SetInvoiceDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("invoiceDescription is required")
	}

	l.invoiceDescription = &description
	return nil
}

// Validate ensures the Line was created through a constructor.
func (l *Line) Validate() error {
	if l == nil {
		return ErrLineIsNotConstructed
	}
	return l.guard.Validate(ErrLineIsNotConstructed)
}

func (l *Line) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Line) setServiceID(serviceID kernel.UUID) error {
	if err := serviceID.Validate(); err != nil {
		return err
	}
	l.serviceID = serviceID
	return nil
}

func (l *Line) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name is required")
	}
	l.name = name
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}

func (l *Line) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice is invalid",
			fmt.Errorf("%s is negative", unitPrice))
	}
	l.unitPrice = unitPrice
	return nil
}
