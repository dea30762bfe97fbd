// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"foodorder/internal/core/ports"
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

	// MealRepoFactory provides access to the meal catalog within a transaction.
	MealRepoFactory interface {
		MealRepository() ports.MealRepository
	}

	// OrderRepoFactory provides access to order persistence within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages a submission's unit of work: catalog reads for
	// aggregation and the single order insert share one transaction scope.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   meals := uow.MealRepository()
	//   orders := uow.OrderRepository()
	//   // ... resolve items, persist order
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		MealRepoFactory
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
