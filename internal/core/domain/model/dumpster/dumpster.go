// Package dumpster implements the Dumpster aggregate: a physical rental asset
// tracked by the assignment ledger.
//
// The central invariant is that a dumpster is in_use exactly when it holds a
// reference to the order currently using it. The reference is weak: the
// dumpster does not own the order, and at most one dumpster may reference a
// given active order at a time (enforced at the ledger's mutation boundaries).
package dumpster

import (
	"errors"
	"fmt"
	"time"

	"arkdumpster/internal/core/domain/model/kernel"
	"arkdumpster/internal/pkg/errs"
	"arkdumpster/internal/pkg/guard"
)

// ErrDumpsterIsNotConstructed is returned when a Dumpster instance was not
// created through NewDumpster or RestoreDumpster.
var ErrDumpsterIsNotConstructed = errors.New("Dumpster must be created via NewDumpster or RestoreDumpster constructor")

// Status represents the availability of a dumpster.
type Status string

const (
	// Available means the dumpster can be assigned to an order.
	Available Status = "available"

	// InUse means the dumpster is placed on a customer site for an order.
	InUse Status = "in_use"
)

// ParseStatus converts a raw string into a dumpster Status.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case Available, InUse:
		return Status(s), nil
	}
	return "", errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid dumpster status", s))
}

// Validate checks that the Status value is a member of the closed enumeration.
func (s Status) Validate() error {
	_, err := ParseStatus(string(s))
	return err
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}

// Condition represents the physical state of a dumpster.
type Condition string

const (
	ConditionExcellent   Condition = "excellent"
	ConditionGood        Condition = "good"
	ConditionFair        Condition = "fair"
	ConditionNeedsRepair Condition = "needs_repair"
)

// ParseCondition converts a raw string into a Condition.
func ParseCondition(s string) (Condition, error) {
	switch Condition(s) {
	case ConditionExcellent, ConditionGood, ConditionFair, ConditionNeedsRepair:
		return Condition(s), nil
	}
	return "", errs.NewValueIsInvalidErrorWithCause("condition is invalid",
		fmt.Errorf("%q is not a valid dumpster condition", s))
}

// Validate checks that the Condition value is a member of the closed enumeration.
func (c Condition) Validate() error {
	_, err := ParseCondition(string(c))
	return err
}

// String returns the wire representation of the condition.
func (c Condition) String() string {
	return string(c)
}

// Dumpster is a physical asset. Its availability, current placement and
// condition are tracked here; which order holds it is a weak back-reference
// resolved by the ledger.
type Dumpster struct {
	id   kernel.UUID
	name string

	status Status

	// currentOrderID is the order currently using the asset, nil when available
	currentOrderID *kernel.UUID

	// address is the physical location while placed, nil when available
	address *string

	condition Condition

	latitude  *float64
	longitude *float64

	lastAssignedAt    *time.Time
	lastMaintenanceAt *time.Time

	guard guard.ConstructorGuard
}

// NewDumpster creates an available Dumpster with no current assignment.
func NewDumpster(id kernel.UUID, name string, condition Condition) (*Dumpster, error) {
	d := &Dumpster{
		status: Available,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setCondition(condition),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDumpster reconstructs a Dumpster from persistence. The status and
// current-order reference must agree: in_use exactly when an order is set.
func RestoreDumpster(
	id kernel.UUID,
	name string,
	status Status,
	currentOrderID *kernel.UUID,
	address *string,
	condition Condition,
	latitude, longitude *float64,
	lastAssignedAt, lastMaintenanceAt *time.Time,
) (*Dumpster, error) {
	d, err := NewDumpster(id, name, condition)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	if (status == InUse) != (currentOrderID != nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("status %s is inconsistent with current order reference", status))
	}

	if currentOrderID != nil {
		if err = currentOrderID.Validate(); err != nil {
			return nil, err
		}
	}

	d.status = status
	d.currentOrderID = currentOrderID
	d.address = address
	d.latitude = latitude
	d.longitude = longitude
	d.lastAssignedAt = lastAssignedAt
	d.lastMaintenanceAt = lastMaintenanceAt
	return d, nil
}

// Validate ensures the Dumpster instance was properly constructed.
func (d *Dumpster) Validate() error {
	if d == nil {
		return ErrDumpsterIsNotConstructed
	}
	return d.guard.Validate(ErrDumpsterIsNotConstructed)
}

// ID returns the dumpster's unique identifier.
func (d *Dumpster) ID() kernel.UUID {
	return d.id
}

// Name returns the human-readable asset name.
func (d *Dumpster) Name() string {
	return d.name
}

// Status returns the dumpster's availability status.
func (d *Dumpster) Status() Status {
	return d.status
}

// CurrentOrderID returns the order currently using the asset, nil when available.
func (d *Dumpster) CurrentOrderID() *kernel.UUID {
	return d.currentOrderID
}

// Address returns the placement address while in use, nil when available.
func (d *Dumpster) Address() *string {
	return d.address
}

// Condition returns the asset's physical condition.
func (d *Dumpster) Condition() Condition {
	return d.condition
}

// Latitude returns the last known GPS latitude, nil if untracked.
func (d *Dumpster) Latitude() *float64 {
	return d.latitude
}

// Longitude returns the last known GPS longitude, nil if untracked.
func (d *Dumpster) Longitude() *float64 {
	return d.longitude
}

// LastAssignedAt returns when the asset was last assigned to an order.
func (d *Dumpster) LastAssignedAt() *time.Time {
	return d.lastAssignedAt
}

// LastMaintenanceAt returns when maintenance was last recorded.
func (d *Dumpster) LastMaintenanceAt() *time.Time {
	return d.lastMaintenanceAt
}

// IsAvailable reports whether the dumpster can be assigned.
func (d *Dumpster) IsAvailable() bool {
	return d.status == Available
}

// Assign places the dumpster on an order. Fails with a ConflictError naming
// the order already holding the asset when it is not available, preventing
// double-booking.
func (d *Dumpster) Assign(orderID kernel.UUID, address string, now time.Time) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if address == "" {
		return errs.NewValueIsRequiredError("address is required")
	}

	if !d.IsAvailable() {
		holder := ""
		if d.currentOrderID != nil {
			holder = d.currentOrderID.String()
		}
		return errs.NewConflictError("dumpster", d.id.String(), holder)
	}

	d.status = InUse
	d.currentOrderID = &orderID
	d.address = &address
	d.lastAssignedAt = &now
	return nil
}

// Release frees the dumpster: available, no order reference, no address.
// Releasing an already-free dumpster is a no-op success, which makes
// duplicate-completion replay harmless.
func (d *Dumpster) Release() {
	d.status = Available
	d.currentOrderID = nil
	d.address = nil
}

// SetCondition records a condition change from an inspection.
func (d *Dumpster) SetCondition(condition Condition) error {
	if err := condition.Validate(); err != nil {
		return err
	}
	d.condition = condition
	return nil
}

// RecordMaintenance stamps the last maintenance time.
func (d *Dumpster) RecordMaintenance(now time.Time) {
	d.lastMaintenanceAt = &now
}

// SetLocation records the last known GPS position.
func (d *Dumpster) SetLocation(latitude, longitude float64) {
	d.latitude = &latitude
	d.longitude = &longitude
}

func (d *Dumpster) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Dumpster) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name is required")
	}
	d.name = name
	return nil
}

func (d *Dumpster) setCondition(condition Condition) error {
	if err := condition.Validate(); err != nil {
		return err
	}
	d.condition = condition
	return nil
}
