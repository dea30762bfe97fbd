package order

import (
	"errors"
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created through
// the NewOrder factory method. This ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order represents a submitted food order. It is the aggregate root created
// exactly once per successful submission and never mutated afterwards.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a non-empty area and customer address
//   - Must carry at least one line item, exactly as submitted
//   - Total cost must be a non-negative decimal amount
//   - Estimated delivery minutes must be non-negative
//   - Creation timestamp must be set (UTC)
//   - Can only be created through the NewOrder constructor
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated construction.
type Order struct {
	// id is the unique identifier generated for the submission
	id kernel.UUID

	// area is the service zone the order was submitted in
	area string

	// address is the customer delivery address
	address string

	// items holds the original submitted line items, including uncountable ones
	items []LineItem

	// totalCost is the aggregated decimal cost snapshot
	totalCost decimal.Decimal

	// estDeliveryMinutes is the delivery estimate computed at submission
	estDeliveryMinutes int

	// createdAt is the UTC creation timestamp
	createdAt time.Time

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. This is the only way
// to create a valid Order, used both at submission time and when
// reconstructing records from persistence.
//
// Parameters:
//   - id: Unique identifier generated for the submission (must be valid UUID)
//   - area: Service zone the order belongs to (must be non-empty)
//   - address: Customer delivery address (must be non-empty)
//   - items: Original submitted line items (must be non-empty)
//   - totalCost: Aggregated cost snapshot (must be non-negative)
//   - estDeliveryMinutes: Delivery estimate (must be non-negative)
//   - createdAt: Creation timestamp (must be set)
//
// Returns a validation error if any parameter violates the invariants.
func NewOrder(
	id kernel.UUID,
	area string,
	address string,
	items []LineItem,
	totalCost decimal.Decimal,
	estDeliveryMinutes int,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setArea(area),
		order.setAddress(address),
		order.setItems(items),
		order.setTotalCost(totalCost),
		order.setEstDeliveryMinutes(estDeliveryMinutes),
		order.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Area returns the service zone the order was submitted in.
func (o *Order) Area() string {
	return o.area
}

// Address returns the customer delivery address.
func (o *Order) Address() string {
	return o.address
}

// Items returns a copy of the original submitted line items.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// TotalCost returns the aggregated decimal cost snapshot.
func (o *Order) TotalCost() decimal.Decimal {
	return o.totalCost
}

// EstDeliveryMinutes returns the delivery estimate computed at submission.
func (o *Order) EstDeliveryMinutes() int {
	return o.estDeliveryMinutes
}

// CreatedAt returns the UTC creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setArea(area string) error {
	if area == "" {
		return errs.NewValueIsRequiredError("area")
	}
	o.area = area
	return nil
}

func (o *Order) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.address = address
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setTotalCost(totalCost decimal.Decimal) error {
	if totalCost.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("totalCost",
			fmt.Errorf("%s is negative", totalCost))
	}
	o.totalCost = totalCost
	return nil
}

func (o *Order) setEstDeliveryMinutes(estDeliveryMinutes int) error {
	if estDeliveryMinutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause("estDeliveryMinutes",
			fmt.Errorf("%d is negative", estDeliveryMinutes))
	}
	o.estDeliveryMinutes = estDeliveryMinutes
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}
