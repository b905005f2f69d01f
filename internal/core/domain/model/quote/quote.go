// Package quote implements the Quote aggregate: a customer's initial,
// unscheduled request for service submitted through the public funnel.
//
// Quotes are created on public submission and mutated only by admin action.
// The lifecycle engine never touches them directly; promotion creates a
// separate Order aggregate and marks the quote accordingly.
package quote

import (
	"errors"
	"fmt"
	"time"

	"arkdumpster/internal/core/domain/model/kernel"
	"arkdumpster/internal/pkg/errs"
	"arkdumpster/internal/pkg/guard"
)

// ErrQuoteIsNotConstructed is returned when a Quote instance was not created
// through NewQuote or RestoreQuote.
var ErrQuoteIsNotConstructed = errors.New("Quote must be created via NewQuote or RestoreQuote constructor")

// Status represents the admin-managed state of a quote.
type Status string

const (
	// Pending is the initial status of a public submission.
	Pending Status = "pending"

	// Quoted means an admin has sent pricing back to the customer.
	Quoted Status = "quoted"

	// Accepted means the customer agreed to the quote; the quote is now
	// eligible for promotion into an order.
	Accepted Status = "accepted"

	// Declined means the customer rejected the quote.
	Declined Status = "declined"

	// Completed means the promoted order finished; kept for funnel reporting.
	Completed Status = "completed"
)

// ParseStatus converts a raw string into a quote Status.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case Pending, Quoted, Accepted, Declined, Completed:
		return Status(s), nil
	}
	return "", errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid quote status", s))
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

// Quote is a customer's initial request for a dumpster rental.
type Quote struct {
	id kernel.UUID

	customerName  string
	customerEmail string
	customerPhone string

	// dropoffAddress is where the customer wants the dumpster placed
	dropoffAddress string

	// dumpsterSize is the requested size, free-form (e.g. "15 yard")
	dumpsterSize string

	// message is the optional free-text note from the public form
	message string

	status Status

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewQuote creates a pending Quote from a public form submission.
func NewQuote(
	id kernel.UUID,
	customerName, customerEmail, customerPhone string,
	dropoffAddress, dumpsterSize, message string,
	createdAt time.Time,
) (*Quote, error) {
	q := &Quote{
		status:    Pending,
		createdAt: createdAt,
		updatedAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setID(id),
		q.setCustomer(customerName, customerEmail, customerPhone),
		q.setDropoffAddress(dropoffAddress),
	); err != nil {
		return nil, err
	}

	q.dumpsterSize = dumpsterSize
	q.message = message
	return q, nil
}

// RestoreQuote reconstructs a Quote from persistence.
func RestoreQuote(
	id kernel.UUID,
	customerName, customerEmail, customerPhone string,
	dropoffAddress, dumpsterSize, message string,
	status Status,
	createdAt, updatedAt time.Time,
) (*Quote, error) {
	q, err := NewQuote(id, customerName, customerEmail, customerPhone,
		dropoffAddress, dumpsterSize, message, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	q.status = status
	q.updatedAt = updatedAt
	return q, nil
}

// Validate ensures the Quote instance was properly constructed.
func (q *Quote) Validate() error {
	if q == nil {
		return ErrQuoteIsNotConstructed
	}
	return q.guard.Validate(ErrQuoteIsNotConstructed)
}

// ID returns the quote's unique identifier.
func (q *Quote) ID() kernel.UUID {
	return q.id
}

// CustomerName returns the customer's name.
func (q *Quote) CustomerName() string {
	return q.customerName
}

// CustomerEmail returns the customer's email address.
func (q *Quote) CustomerEmail() string {
	return q.customerEmail
}

// CustomerPhone returns the customer's phone number, empty if not provided.
func (q *Quote) CustomerPhone() string {
	return q.customerPhone
}

// DropoffAddress returns the requested dropoff address.
func (q *Quote) DropoffAddress() string {
	return q.dropoffAddress
}

// DumpsterSize returns the requested dumpster size text.
func (q *Quote) DumpsterSize() string {
	return q.dumpsterSize
}

// Message returns the optional free-text note from the submission.
func (q *Quote) Message() string {
	return q.message
}

// Status returns the quote's current status.
func (q *Quote) Status() Status {
	return q.status
}

// CreatedAt returns the submission time.
func (q *Quote) CreatedAt() time.Time {
	return q.createdAt
}

// UpdatedAt returns the last admin mutation time.
func (q *Quote) UpdatedAt() time.Time {
	return q.updatedAt
}

// SetStatus applies an admin status edit. Only enum membership is enforced;
// quote workflow ordering is an admin concern, not a domain invariant.
func (q *Quote) SetStatus(status Status, now time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}

	q.status = status
	q.updatedAt = now
	return nil
}

func (q *Quote) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	q.id = id
	return nil
}

func (q *Quote) setCustomer(name, email, phone string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customerName is required")
	}
	if email == "" {
		return errs.NewValueIsRequiredError("customerEmail is required")
	}

	q.customerName = name
	q.customerEmail = email
	q.customerPhone = phone
	return nil
}

func (q *Quote) setDropoffAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("dropoffAddress is required")
	}
	q.dropoffAddress = address
	return nil
}
