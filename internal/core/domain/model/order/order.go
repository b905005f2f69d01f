package order

import (
	"errors"
	"time"

	"arkdumpster/internal/core/domain/model/kernel"
	"arkdumpster/internal/pkg/errs"
	"arkdumpster/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrNoServicesSelected is returned when an order is created without any
	// service line items. An order always owns at least one line.
	ErrNoServicesSelected = errors.New("at least one service selection is required")

	// ErrOrderNotCompleted is returned when completion-only bookkeeping is
	// attempted on an order that is not in completed status.
	ErrOrderNotCompleted = errors.New("order is not completed")
)

// Order is an accepted, schedulable unit of rental work. It is the aggregate
// root for the order lifecycle: status transitions, scheduling timestamps,
// pricing, driver assignment and the completion audit trail all live here.
//
// Invariants:
//   - Owns at least one service line; lines are never removed while the order exists
//   - completedAt is set if and only if status is completed
//   - actualDeliveryDate is set once the status has reached delivered or later
//   - The completion audit fields record which dumpster serviced the order even
//     after the asset itself has been freed
type Order struct {
	id kernel.UUID

	// quoteID is the originating quote, nil for orders created directly
	quoteID *kernel.UUID

	// orderNumber is the unique human-readable reference, e.g. ORD-20250114-4F7A2C
	orderNumber string

	customerName  string
	customerEmail string
	customerPhone string
	address       string

	status   Status
	priority Priority

	quotedPrice decimal.Decimal
	finalPrice  *decimal.Decimal

	// assignedTo is the driver working the order, nil if unassigned
	assignedTo *string

	scheduledDeliveryDate *time.Time
	scheduledPickupDate   *time.Time
	actualDeliveryDate    *time.Time
	actualPickupDate      *time.Time

	completedAt *time.Time

	// completedWithDumpsterID and completedWithDumpsterName are the audit
	// trail written at completion, before the asset is released
	completedWithDumpsterID   *kernel.UUID
	completedWithDumpsterName *string

	// invoiceStatus shadows the payment provider's invoice state, empty until
	// the first webhook event arrives
	invoiceStatus string

	lines []*Line

	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates an Order in pending status from a promoted quote.
//
// The quoted price is the sum of all line totals unless an explicit override
// is supplied. At least one line is required; ErrNoServicesSelected wraps a
// validation error otherwise.
func NewOrder(
	id kernel.UUID,
	quoteID *kernel.UUID,
	orderNumber string,
	customerName, customerEmail, customerPhone, address string,
	priority Priority,
	lines []*Line,
	quotedPriceOverride *decimal.Decimal,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:    Pending,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setQuoteID(quoteID),
		o.setOrderNumber(orderNumber),
		o.setCustomer(customerName, customerEmail, customerPhone),
		o.setAddress(address),
		o.setPriority(priority),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	if quotedPriceOverride != nil {
		o.quotedPrice = *quotedPriceOverride
	} else {
		o.quotedPrice = o.sumLineTotals()
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence with its full state,
// including lifecycle timestamps and the completion audit trail.
func RestoreOrder(
	id kernel.UUID,
	quoteID *kernel.UUID,
	orderNumber string,
	customerName, customerEmail, customerPhone, address string,
	status Status,
	priority Priority,
	quotedPrice decimal.Decimal,
	finalPrice *decimal.Decimal,
	assignedTo *string,
	scheduledDeliveryDate, scheduledPickupDate *time.Time,
	actualDeliveryDate, actualPickupDate *time.Time,
	completedAt *time.Time,
	completedWithDumpsterID *kernel.UUID,
	completedWithDumpsterName *string,
	invoiceStatus string,
	lines []*Line,
	createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, quoteID, orderNumber,
		customerName, customerEmail, customerPhone, address,
		priority, lines, &quotedPrice, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	o.finalPrice = finalPrice
	o.assignedTo = assignedTo
	o.scheduledDeliveryDate = scheduledDeliveryDate
	o.scheduledPickupDate = scheduledPickupDate
	o.actualDeliveryDate = actualDeliveryDate
	o.actualPickupDate = actualPickupDate
	o.completedAt = completedAt
	o.completedWithDumpsterID = completedWithDumpsterID
	o.completedWithDumpsterName = completedWithDumpsterName
	o.invoiceStatus = invoiceStatus
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// QuoteID returns the originating quote's identifier, nil if the order was
// created directly.
func (o *Order) QuoteID() *kernel.UUID {
	return o.quoteID
}

// OrderNumber returns the unique human-readable order reference.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// CustomerName returns the customer's name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CustomerEmail returns the customer's email address.
func (o *Order) CustomerEmail() string {
	return o.customerEmail
}

// CustomerPhone returns the customer's phone number, empty if not provided.
func (o *Order) CustomerPhone() string {
	return o.customerPhone
}

// Address returns the dropoff address for the rental.
func (o *Order) Address() string {
	return o.address
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Priority returns the order's work priority.
func (o *Order) Priority() Priority {
	return o.priority
}

// QuotedPrice returns the price agreed at promotion time.
func (o *Order) QuotedPrice() decimal.Decimal {
	return o.quotedPrice
}

// FinalPrice returns the invoiced price, nil until set.
func (o *Order) FinalPrice() *decimal.Decimal {
	return o.finalPrice
}

// AssignedTo returns the driver working the order, nil if unassigned.
func (o *Order) AssignedTo() *string {
	return o.assignedTo
}

// HasDriver reports whether a driver is assigned.
func (o *Order) HasDriver() bool {
	return o.assignedTo != nil && *o.assignedTo != ""
}

// ScheduledDeliveryDate returns the planned delivery date, nil if unscheduled.
func (o *Order) ScheduledDeliveryDate() *time.Time {
	return o.scheduledDeliveryDate
}

// ScheduledPickupDate returns the planned pickup date, nil if unscheduled.
func (o *Order) ScheduledPickupDate() *time.Time {
	return o.scheduledPickupDate
}

// ActualDeliveryDate returns when the dumpster reached the customer, nil if
// delivery has not happened.
func (o *Order) ActualDeliveryDate() *time.Time {
	return o.actualDeliveryDate
}

// ActualPickupDate returns when the dumpster was retrieved, nil if pickup has
// not happened.
func (o *Order) ActualPickupDate() *time.Time {
	return o.actualPickupDate
}

// CompletedAt returns the completion time, nil unless the order is completed.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// CompletedWithDumpsterID returns the audit reference to the asset that
// serviced the order, set at completion.
func (o *Order) CompletedWithDumpsterID() *kernel.UUID {
	return o.completedWithDumpsterID
}

// CompletedWithDumpsterName returns the audit name of the asset that serviced
// the order, set at completion.
func (o *Order) CompletedWithDumpsterName() *string {
	return o.completedWithDumpsterName
}

// InvoiceStatus returns the payment provider's last reported invoice state,
// empty if no webhook event has been recorded.
func (o *Order) InvoiceStatus() string {
	return o.invoiceStatus
}

// Lines returns the order's service line items.
func (o *Order) Lines() []*Line {
	return o.lines
}

// Line returns the line with the given identifier.
func (o *Order) Line(lineID kernel.UUID) (*Line, error) {
	for _, l := range o.lines {
		if l.ID().IsEqual(lineID) {
			return l, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("line", lineID.String())
}

// CreatedAt returns the order creation time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ChangeStatus is the authoritative status mutation. It validates enum
// membership only; board-style policy checks live in the lifecycle service.
//
// Side effects:
//   - delivered: actualDeliveryDate is stamped on every call, matching the
//     behavior that re-delivering refreshes the timestamp
//   - completed: completedAt and actualPickupDate are stamped
//   - any other target: completedAt is cleared so it holds exactly when the
//     status is completed
func (o *Order) ChangeStatus(newStatus Status, now time.Time) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	o.status = newStatus

	if newStatus == Delivered {
		o.actualDeliveryDate = &now
	}

	if newStatus == Completed {
		o.completedAt = &now
		if o.actualPickupDate == nil {
			o.actualPickupDate = &now
		}
	} else {
		// Holds the invariant that completedAt is set exactly when the
		// status is completed, even across admin overrides.
		o.completedAt = nil
	}

	return nil
}

// RecordCompletionDumpster writes the completion audit trail: the order
// remembers which asset serviced it even after the asset is freed.
// Only valid on a completed order.
func (o *Order) RecordCompletionDumpster(dumpsterID kernel.UUID, name string) error {
	if o.status != Completed {
		return ErrOrderNotCompleted
	}
	if err := dumpsterID.Validate(); err != nil {
		return err
	}
	if name == "" {
		return errs.NewValueIsRequiredError("dumpster name is required")
	}

	o.completedWithDumpsterID = &dumpsterID
	o.completedWithDumpsterName = &name
	return nil
}

// AssignDriver sets the driver responsible for the order.
func (o *Order) AssignDriver(driver string) error {
	if driver == "" {
		return errs.NewValueIsRequiredError("driver is required")
	}

	o.assignedTo = &driver
	return nil
}

// Schedule plans the delivery and pickup dates. Either date may be nil to
// leave it unplanned.
func (o *Order) Schedule(deliveryDate, pickupDate *time.Time) {
	o.scheduledDeliveryDate = deliveryDate
	o.scheduledPickupDate = pickupDate
}

// SetFinalPrice records the invoiced price.
func (o *Order) SetFinalPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidError("finalPrice is invalid")
	}

	o.finalPrice = &price
	return nil
}

// MarkInvoiceStatus records the payment provider's reported invoice state.
func (o *Order) MarkInvoiceStatus(status string) error {
	if status == "" {
		return errs.NewValueIsRequiredError("invoiceStatus is required")
	}

	o.invoiceStatus = status
	return nil
}

func (o *Order) sumLineTotals() decimal.Decimal {
	total := decimal.Zero
	for _, l := range o.lines {
		total = total.Add(l.TotalPrice())
	}
	return total
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setQuoteID(quoteID *kernel.UUID) error {
	if quoteID != nil {
		if err := quoteID.Validate(); err != nil {
			return err
		}
	}
	o.quoteID = quoteID
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber is required")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setCustomer(name, email, phone string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customerName is required")
	}
	if email == "" {
		return errs.NewValueIsRequiredError("customerEmail is required")
	}

	o.customerName = name
	o.customerEmail = email
	o.customerPhone = phone
	return nil
}

func (o *Order) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address is required")
	}
	o.address = address
	return nil
}

func (o *Order) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	o.priority = priority
	return nil
}

func (o *Order) setLines(lines []*Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredErrorWithCause("services", ErrNoServicesSelected)
	}

	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return err
		}
	}

	o.lines = lines
	return nil
}
