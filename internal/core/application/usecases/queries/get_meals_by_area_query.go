// Package queries contains read-only operations over the catalog and order
// store. Implements the Query side of the CQRS architecture: handlers read
// through the database connection directly with raw SQL, bypassing the
// domain aggregates.
package queries

import (
	"errors"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetMealsByAreaQueryIsNotConstructed = errors.New(
		"GetMealsByAreaQuery must be created via NewGetMealsByAreaQuery constructor",
	)
)

// GetMealsByAreaQuery retrieves the meal catalog for one service area.
// The scan is partition-filtered: only records sharing the given area are read.
//
// Example:
//
//	query, err := NewGetMealsByAreaQuery("downtown")
//	if err != nil {
//	    // area was missing
//	}
//	handler := NewGetMealsByAreaQueryHandler(db)
//	meals, err := handler.Handle(ctx, query)
type GetMealsByAreaQuery struct { //nolint:recvcheck //using for validation
	area string

	guard guard.ConstructorGuard
}

// NewGetMealsByAreaQuery creates a query for the meals offered in an area.
// Returns an error when area is empty.
func NewGetMealsByAreaQuery(area string) (GetMealsByAreaQuery, error) {
	if area == "" {
		return GetMealsByAreaQuery{}, errs.NewValueIsRequiredError("area")
	}

	return GetMealsByAreaQuery{
		area:  area,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetMealsByAreaQueryIsNotConstructed if validation fails.
func (q GetMealsByAreaQuery) Validate() error {
	return q.guard.Validate(ErrGetMealsByAreaQueryIsNotConstructed)
}

// Area returns the service area being listed.
func (q GetMealsByAreaQuery) Area() string {
	return q.area
}

// GetMealsByAreaQueryResponse is the projection of one catalog record.
type GetMealsByAreaQueryResponse struct {
	ID             string
	RestaurantName string
	Name           string
	Description    string
	PrepMinutes    int
	Price          decimal.Decimal
}
