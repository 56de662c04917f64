// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"restaurant/internal/core/ports"
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

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// MenuGroupRepoFactory provides access to the menu group repository within a transaction.
	MenuGroupRepoFactory interface {
		MenuGroupRepository() ports.MenuGroupRepository
	}

	// MenuRepoFactory provides access to the menu repository within a transaction.
	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// TableRepoFactory provides access to the table repository within a transaction.
	TableRepoFactory interface {
		TableRepository() ports.TableRepository
	}

	// CatalogUoW manages transactions for catalog operations.
	// Covers products, menu groups and menus, which frequently change together:
	// a product price change cascades into menu visibility.
	CatalogUoW interface {
		TxManager
		ProductRepoFactory
		MenuGroupRepoFactory
		MenuRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by the lifecycle transitions that touch nothing but the order aggregate.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderTableUoW manages transactions spanning orders and tables.
	// Used for commands that coordinate changes between the two aggregates,
	// such as completing an eat-in order or clearing a table.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   tableRepo := uow.TableRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	OrderTableUoW interface {
		TxManager
		OrderRepoFactory
		TableRepoFactory
	}

	// OrderTableUoWFactory creates new unit of work instances for order/table operations.
	OrderTableUoWFactory interface {
		Create() OrderTableUoW
	}

	// CheckoutUoW manages transactions for order placement.
	// Order creation reads menus, validates the target table and persists the order,
	// all of which must observe a consistent snapshot.
	CheckoutUoW interface {
		TxManager
		MenuRepoFactory
		OrderRepoFactory
		TableRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// TableUoW manages transactions for table-only operations.
	TableUoW interface {
		TxManager
		TableRepoFactory
	}

	// TableUoWFactory creates new table unit of work instances.
	TableUoWFactory interface {
		Create() TableUoW
	}
)
