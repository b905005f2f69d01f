// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"arkdumpster/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// QuoteRepoFactory provides access to the quote repository within a transaction.
	QuoteRepoFactory interface {
		QuoteRepository() ports.QuoteRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DumpsterRepoFactory provides access to the dumpster repository within a transaction.
	DumpsterRepoFactory interface {
		DumpsterRepository() ports.DumpsterRepository
	}

	// CatalogRepoFactory provides access to the catalog repository within a transaction.
	CatalogRepoFactory interface {
		CatalogRepository() ports.CatalogRepository
	}

	// ReleaseQueueFactory provides access to the release queue within a transaction.
	ReleaseQueueFactory interface {
		ReleaseQueue() ports.ReleaseQueue
	}

	// QuoteUoW manages transactions for quote-only operations.
	QuoteUoW interface {
		TxManager
		QuoteRepoFactory
	}

	// QuoteUoWFactory creates new quote unit of work instances.
	QuoteUoWFactory interface {
		Create() QuoteUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DumpsterUoW manages transactions for ledger-only operations.
	DumpsterUoW interface {
		TxManager
		DumpsterRepoFactory
	}

	// DumpsterUoWFactory creates new dumpster unit of work instances.
	DumpsterUoWFactory interface {
		Create() DumpsterUoW
	}

	// PromotionUoW manages the quote-to-order promotion, which reads the
	// quote and catalog and writes the order with its lines in one
	// transaction.
	PromotionUoW interface {
		TxManager
		QuoteRepoFactory
		OrderRepoFactory
		CatalogRepoFactory
	}

	// PromotionUoWFactory creates new promotion unit of work instances.
	PromotionUoWFactory interface {
		Create() PromotionUoW
	}

	// LifecycleUoW manages order lifecycle operations, which touch the
	// order, the dumpster ledger and the release queue.
	LifecycleUoW interface {
		TxManager
		OrderRepoFactory
		DumpsterRepoFactory
		ReleaseQueueFactory
	}

	// LifecycleUoWFactory creates new lifecycle unit of work instances.
	//
	// The completion path deliberately creates more than one unit of work:
	// the order status write commits first, then asset bookkeeping runs in
	// its own transaction so a bookkeeping failure cannot roll back order
	// truth.
	LifecycleUoWFactory interface {
		Create() LifecycleUoW
	}

	// AssignmentUoW manages dumpster assignment, which reads the order and
	// claims the asset.
	AssignmentUoW interface {
		TxManager
		OrderRepoFactory
		DumpsterRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}
)
