package services

// Fixed components of the delivery estimate, in minutes.
const (
	// PickupMinutes is the time budgeted for a courier to pick the order up.
	PickupMinutes = 10

	// DeliveryMinutes is the time budgeted for the ride to the customer.
	DeliveryMinutes = 15
)

// DeliveryEstimator computes the estimated delivery duration for an order.
// It is a pure domain service with no failure modes: the estimate is the
// aggregated preparation time plus the fixed pickup and delivery constants.
type DeliveryEstimator struct{}

// NewDeliveryEstimator creates a new DeliveryEstimator instance.
func NewDeliveryEstimator() DeliveryEstimator {
	return DeliveryEstimator{}
}

// Estimate returns the estimated delivery duration in minutes for the given
// aggregated preparation time. Preparation time is assumed non-negative,
// which the aggregation upstream guarantees by skipping invalid items.
func (DeliveryEstimator) Estimate(totalPrepMinutes int) int {
	return totalPrepMinutes + PickupMinutes + DeliveryMinutes
}
