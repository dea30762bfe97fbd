package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetMealsByAreaQueryHandler reads the meal catalog for an area from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetMealsByAreaQueryHandler(db)
//	query, _ := NewGetMealsByAreaQuery("downtown")
//
//	meals, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to list meals: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d meals\n", len(meals))
type GetMealsByAreaQueryHandler struct {
	db *gorm.DB
}

// NewGetMealsByAreaQueryHandler creates a handler for meal catalog queries.
// Requires a GORM database connection for query execution.
func NewGetMealsByAreaQueryHandler(db *gorm.DB) GetMealsByAreaQueryHandler {
	return GetMealsByAreaQueryHandler{db: db}
}

// Handle executes the partition-filtered scan for the queried area.
// Returns the projections sorted by meal id for consistent output; an area
// with no meals yields an empty, non-nil slice.
func (h GetMealsByAreaQueryHandler) Handle(
	ctx context.Context,
	query GetMealsByAreaQuery,
) ([]GetMealsByAreaQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	meals := make([]GetMealsByAreaQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			restaurant_name,
			name,
			description,
			prep_minutes,
			price
		FROM meals
		WHERE area = ?
		ORDER BY id
	`, query.Area()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var m GetMealsByAreaQueryResponse

		err = rows.Scan(
			&m.ID,
			&m.RestaurantName,
			&m.Name,
			&m.Description,
			&m.PrepMinutes,
			&m.Price,
		)
		if err != nil {
			return nil, err
		}

		meals = append(meals, m)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return meals, nil
}
