// Package ports defines repository interfaces for the food ordering domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"foodorder/internal/core/domain/model/meal"
)

// MealRepository defines the read contract for the meal catalog.
// Meals are partitioned by area and identified within an area by their meal id.
// The ordering core never writes meals; all operations are pure reads.
type MealRepository interface {
	// Get retrieves the meal for the (area, mealID) pair.
	// Returns an error unwrapping to errs.ErrObjectNotFound when no record
	// exists for the pair, or the underlying storage error on transport
	// failures. A missing meal must fail an entire order submission, so the
	// caller is expected to abort on any error.
	Get(ctx context.Context, area string, mealID string) (*meal.Meal, error)
}
