package queries

import (
	"errors"

	"foodorder/internal/pkg/guard"
)

var (
	ErrGetOrderVolumeQueryIsNotConstructed = errors.New(
		"GetOrderVolumeQuery must be created via NewGetOrderVolumeQuery constructor",
	)
)

// GetOrderVolumeQuery retrieves per-area order counts for operational
// reporting. Consumed by the scheduled order volume job.
type GetOrderVolumeQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderVolumeQuery creates a query for per-area order counts.
// This is a parameterless query that covers all areas with at least one order.
func NewGetOrderVolumeQuery() GetOrderVolumeQuery {
	return GetOrderVolumeQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderVolumeQueryIsNotConstructed if validation fails.
func (q GetOrderVolumeQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderVolumeQueryIsNotConstructed)
}

// GetOrderVolumeQueryResponse reports the number of orders stored for one area.
type GetOrderVolumeQueryResponse struct {
	Area   string
	Orders int
}
