package order

import (
	"fmt"

	"arkdumpster/internal/pkg/errs"
)

// Status represents the lifecycle state of a rental order.
//
// The operational flow moves an order through delivery and pickup:
//
//	pending ──> scheduled ──> on_way ──> delivered ──> on_way_pickup ──> completed
//	                │  ^          │  ^        │   ^          │
//	                │  └──────────┘  └────────┘   └──────────┘
//	                └──> cancelled
//
// Completed is terminal. Board-style moves between statuses are validated by
// CanMoveTo; direct admin edits only require enum membership (Validate).
type Status string

const (
	// Pending is the initial status of an order created from an accepted quote.
	Pending Status = "pending"

	// Scheduled means delivery and pickup dates have been planned.
	Scheduled Status = "scheduled"

	// OnWay means a driver is delivering the dumpster to the customer.
	OnWay Status = "on_way"

	// Delivered means the dumpster is on site at the customer address.
	Delivered Status = "delivered"

	// OnWayPickup means a driver is retrieving the dumpster from the customer.
	OnWayPickup Status = "on_way_pickup"

	// Completed is the terminal status: the dumpster has been picked up and
	// the order permanently records which asset serviced it.
	Completed Status = "completed"

	// Cancelled marks an order that will not be fulfilled.
	Cancelled Status = "cancelled"
)

// ParseStatus converts a raw string into a Status. The deprecated aliases
// "in_progress" and "picked_up", still present in older admin payloads, are
// normalized to their canonical values.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case Pending, Scheduled, OnWay, Delivered, OnWayPickup, Completed, Cancelled:
		return Status(s), nil
	}

	// Deprecated aliases from the previous admin UI.
	switch s {
	case "in_progress":
		return OnWay, nil
	case "picked_up":
		return OnWayPickup, nil
	}

	return "", errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks that the Status value is a member of the closed enumeration.
func (s Status) Validate() error {
	switch s {
	case Pending, Scheduled, OnWay, Delivered, OnWayPickup, Completed, Cancelled:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid order status", string(s)))
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the status allows no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed
}

// CanMoveTo validates a board-style move from this status to the target
// against the transition table. Statuses absent from the table (pending,
// cancelled) allow no board moves at all; admin overrides use the
// authoritative mutation path instead. Returns an InvalidTransitionError
// carrying the attempted pair when the move is not allowed.
func (s Status) CanMoveTo(to Status) error {
	if err := to.Validate(); err != nil {
		return err
	}

	var allowed bool
	switch s {
	case Scheduled:
		allowed = to == OnWay || to == Cancelled
	case OnWay:
		allowed = to == Scheduled || to == Delivered
	case Delivered:
		allowed = to == OnWay || to == OnWayPickup
	case OnWayPickup:
		allowed = to == Delivered || to == Completed
	case Pending, Completed, Cancelled:
		allowed = false
	}

	if !allowed {
		return errs.NewInvalidTransitionError(string(s), string(to))
	}
	return nil
}

// Priority orders how urgently an order should be worked.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

// ParsePriority converts a raw string into a Priority. An empty string
// defaults to normal.
func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case PriorityLow, PriorityNormal, PriorityHigh:
		return Priority(s), nil
	}
	if s == "" {
		return PriorityNormal, nil
	}
	return "", errs.NewValueIsInvalidErrorWithCause("priority is invalid",
		fmt.Errorf("%q is not a valid priority", s))
}

// Validate checks that the Priority value is a member of the closed enumeration.
func (p Priority) Validate() error {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("priority is invalid",
		fmt.Errorf("%q is not a valid priority", string(p)))
}
