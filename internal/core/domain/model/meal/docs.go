// Package meal provides the Meal read model for the food ordering system.
//
// Meals belong to the catalog of a geographic area and are identified by the
// (area, mealId) pair. The ordering core never creates or modifies meals; it
// resolves them during order submission to snapshot prices and preparation
// times into the order totals.
//
// Key business rules:
//   - Meals must carry a non-empty area and meal identifier
//   - Preparation time is a non-negative integer number of minutes
//   - Price is a non-negative decimal amount
//   - Meals are immutable for the duration of an order computation
package meal
