// Package services provides domain services that orchestrate business
// operations across multiple aggregates in the back office. It implements
// workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - Lifecycle: The order lifecycle engine owning status transition policy
//     and the completion handshake with the dumpster ledger
//   - NotificationTrigger: A pure function deciding when a status change
//     warrants a customer-facing notification and shaping its payload
package services
