// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"entregas/internal/core/ports"
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

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// RegisterRepoFactory provides access to the register repository within a transaction.
	RegisterRepoFactory interface {
		RegisterRepository() ports.RegisterRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// CostRepoFactory provides access to the cost repository within a transaction.
	CostRepoFactory interface {
		CostRepository() ports.CostRepository
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

	// RegisterUoW manages transactions for register-only operations.
	RegisterUoW interface {
		TxManager
		RegisterRepoFactory
	}

	// RegisterUoWFactory creates new register unit of work instances.
	RegisterUoWFactory interface {
		Create() RegisterUoW
	}

	// CustomerUoW manages transactions for customer-only operations.
	// A recorded ledger entry and the updated balance commit together.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates new customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// ProductUoW manages transactions for product-only operations.
	// A recorded stock movement and the updated level commit together.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// CostUoW manages transactions for cost-only operations.
	CostUoW interface {
		TxManager
		CostRepoFactory
	}

	// CostUoWFactory creates new cost unit of work instances.
	CostUoWFactory interface {
		Create() CostUoW
	}

	// SettlementUoW manages transactions spanning orders and the register.
	// Used by the settlement-totals sync, which reads a day's orders and
	// writes the aggregated totals into the open register atomically.
	SettlementUoW interface {
		TxManager
		OrderRepoFactory
		RegisterRepoFactory
	}

	// SettlementUoWFactory creates new unit of work instances for
	// cross-aggregate settlement operations.
	SettlementUoWFactory interface {
		Create() SettlementUoW
	}
)
