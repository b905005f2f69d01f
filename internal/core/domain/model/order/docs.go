// Package order implements the Order aggregate for the dumpster-rental
// back office.
//
// The package includes:
//   - Order: The aggregate root owning lifecycle state, pricing, scheduling
//     timestamps, driver assignment and the completion audit trail
//   - Line: A service line item snapshotting catalog name and price
//   - Status: The closed order status enumeration with its board transition table
//   - Priority: The work priority enumeration
//
// Orders are created by promoting an accepted quote, own at least one line,
// and move through the delivery/pickup lifecycle until the terminal completed
// status permanently records which dumpster serviced them.
package order
