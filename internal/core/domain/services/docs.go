// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the food ordering system. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - OrderAggregator: resolves submitted line items against the meal catalog
//     and accumulates order totals with all-or-nothing failure semantics
//   - DeliveryEstimator: maps aggregated preparation time to an estimated
//     delivery duration using fixed pickup and delivery constants
package services
