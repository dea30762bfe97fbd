// Package order provides domain entities for order submissions in the food
// ordering system.
//
// The package includes:
//   - Order: The aggregate root persisted once per successful submission
//   - LineItem: A requested (mealId, qty) pair within a submission
//
// Key business rules:
//   - Orders are identified by (area, orderId) where orderId is a freshly
//     generated UUID
//   - Orders snapshot the aggregated total cost and delivery estimate at
//     submission time; prices are not re-derivable later
//   - Orders keep the original submitted line items, including ones that were
//     excluded from the totals
//   - Orders are created exactly once and never mutated or deleted
package order
