package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are partitioned by area and keyed by their generated identifier.
// The contract is insert-only: orders are never updated or deleted.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and its (area, id) key must not already exist;
	// a duplicate key fails the insert rather than overwriting. On success
	// exactly one new record is visible, on failure none.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its area and unique identifier.
	// Returns an error unwrapping to errs.ErrObjectNotFound when no record
	// exists for the pair.
	Get(ctx context.Context, area string, id kernel.UUID) (*order.Order, error)
}
