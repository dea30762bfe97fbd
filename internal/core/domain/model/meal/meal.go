package meal

import (
	"errors"
	"fmt"

	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMealIsNotConstructed is returned when a Meal instance was not created through
// the NewMeal factory method. This ensures all meals are properly validated.
var ErrMealIsNotConstructed = errors.New("Meal must be created via NewMeal constructor")

// Meal represents a catalog entry offered by a restaurant within a service area.
// It is a read-only entity from the ordering core's perspective: orders resolve
// meals to snapshot price and preparation time, but never change them.
//
// Meal follows these invariants:
//   - Must have a non-empty area (the catalog partition it lives in)
//   - Must have a non-empty meal identifier, unique within its area
//   - Preparation time must be a non-negative number of minutes
//   - Price must be a non-negative decimal amount
//   - Can only be created through the NewMeal constructor
type Meal struct {
	// area is the geographic/service zone the meal is offered in
	area string

	// id identifies the meal within its area
	id string

	// restaurantName is the display name of the offering restaurant
	restaurantName string

	// name is the display name of the meal
	name string

	// description is free-form display text
	description string

	// prepMinutes is the preparation time in whole minutes
	prepMinutes int

	// price is the decimal price of a single unit
	price decimal.Decimal

	// isConstructed ensures the meal was created via NewMeal
	isConstructed bool
}

// NewMeal creates a new Meal instance with validation. This is the only way to
// create a valid Meal, ensuring all invariants are maintained. It is used both
// for seeding catalogs and for reconstructing meals from persistence.
//
// Returns a validation error if area or id is empty, prepMinutes is negative,
// or price is negative.
func NewMeal(
	area string,
	id string,
	restaurantName string,
	name string,
	description string,
	prepMinutes int,
	price decimal.Decimal,
) (*Meal, error) {
	meal := &Meal{
		restaurantName: restaurantName,
		name:           name,
		description:    description,
		isConstructed:  true,
	}

	if err := errors.Join(
		meal.setArea(area),
		meal.setID(id),
		meal.setPrepMinutes(prepMinutes),
		meal.setPrice(price),
	); err != nil {
		return nil, err
	}

	return meal, nil
}

// Validate ensures the Meal instance was properly constructed through NewMeal.
// This prevents bypassing validation by directly instantiating the struct.
func (m *Meal) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMealIsNotConstructed
	}

	return nil
}

// IsEqual compares two meals by their (area, id) identity.
func (m *Meal) IsEqual(other *Meal) bool {
	return other != nil && m.area == other.area && m.id == other.id
}

// Area returns the service area the meal belongs to.
func (m *Meal) Area() string {
	return m.area
}

// ID returns the meal's identifier within its area.
func (m *Meal) ID() string {
	return m.id
}

// RestaurantName returns the offering restaurant's display name.
func (m *Meal) RestaurantName() string {
	return m.restaurantName
}

// Name returns the meal's display name.
func (m *Meal) Name() string {
	return m.name
}

// Description returns the meal's display text.
func (m *Meal) Description() string {
	return m.description
}

// PrepMinutes returns the preparation time in whole minutes.
func (m *Meal) PrepMinutes() int {
	return m.prepMinutes
}

// Price returns the decimal price of a single unit.
func (m *Meal) Price() decimal.Decimal {
	return m.price
}

func (m *Meal) setArea(area string) error {
	if area == "" {
		return errs.NewValueIsRequiredError("area")
	}
	m.area = area
	return nil
}

func (m *Meal) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("id")
	}
	m.id = id
	return nil
}

func (m *Meal) setPrepMinutes(prepMinutes int) error {
	if prepMinutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause("prepMinutes",
			fmt.Errorf("%d is negative", prepMinutes))
	}
	m.prepMinutes = prepMinutes
	return nil
}

func (m *Meal) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is negative", price))
	}
	m.price = price
	return nil
}
