package services

import (
	"context"

	"foodorder/internal/core/domain/model/meal"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MealLookup resolves a meal id within an area to its catalog entry.
// It is a pure read collaborator: implementations must not have side effects.
// The repository layer provides the production implementation.
type MealLookup interface {
	// Get returns the meal for the (area, mealID) pair, an error unwrapping
	// to errs.ErrObjectNotFound when no such meal exists, or a storage error.
	Get(ctx context.Context, area string, mealID string) (*meal.Meal, error)
}

// Totals holds the aggregated outcome of resolving an order's line items.
type Totals struct {
	// Cost is the sum of price×qty over resolved items, in exact decimal arithmetic.
	Cost decimal.Decimal

	// PrepMinutes is the sum of prepMinutes×qty over resolved items.
	PrepMinutes int
}

// OrderAggregator is a domain service that resolves submitted line items
// against the meal catalog and accumulates order totals.
//
// Business rules:
//   - Items are processed in the order supplied, without reordering
//   - Repeated meal ids accumulate additively, no deduplication
//   - Uncountable items (empty meal id or qty <= 0) are silently skipped
//   - Any lookup failure, including a missing meal, aborts the whole
//     aggregation; no partial totals are ever returned
//
// The asymmetry between skipped invalid items and fatal unresolvable items is
// deliberate: a submission referencing a meal that does not exist must fail as
// a whole rather than degrade to a partial order.
//
// Example usage:
//
//	aggregator := services.NewOrderAggregator(mealRepo)
//	totals, err := aggregator.Aggregate(ctx, "downtown", items)
//	if err != nil {
//	    // No partial order: fail the submission
//	    return err
//	}
//	estimate := services.NewDeliveryEstimator().Estimate(totals.PrepMinutes)
type OrderAggregator struct {
	meals MealLookup
}

// NewOrderAggregator creates an OrderAggregator over the given meal lookup.
func NewOrderAggregator(meals MealLookup) OrderAggregator {
	return OrderAggregator{meals: meals}
}

// Aggregate resolves each countable line item for the given area and returns
// the accumulated totals.
//
// Returns:
//   - Totals with zero cost and zero preparation time when no item counts
//   - an error from the meal lookup as soon as any single resolution fails,
//     with no totals accumulated for the caller
func (a OrderAggregator) Aggregate(ctx context.Context, area string, items []order.LineItem) (Totals, error) {
	if area == "" {
		return Totals{}, errs.NewValueIsRequiredError("area")
	}

	totals := Totals{Cost: decimal.Zero}

	for _, item := range items {
		if !item.IsCountable() {
			continue
		}

		resolved, err := a.meals.Get(ctx, area, item.MealID())
		if err != nil {
			return Totals{}, err
		}

		qty := decimal.NewFromInt(int64(item.Qty()))
		totals.Cost = totals.Cost.Add(resolved.Price().Mul(qty))
		totals.PrepMinutes += resolved.PrepMinutes() * item.Qty()
	}

	return totals, nil
}
