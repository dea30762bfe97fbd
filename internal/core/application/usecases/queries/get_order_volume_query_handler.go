package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrderVolumeQueryHandler counts stored orders per area.
// Backs the scheduled reporting job; not exposed over HTTP.
type GetOrderVolumeQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderVolumeQueryHandler creates a handler for order volume queries.
// Requires a GORM database connection for query execution.
func NewGetOrderVolumeQueryHandler(db *gorm.DB) GetOrderVolumeQueryHandler {
	return GetOrderVolumeQueryHandler{db: db}
}

// Handle executes the query and returns one row per area that has orders,
// sorted by area for consistent output.
func (h GetOrderVolumeQueryHandler) Handle(
	ctx context.Context,
	query GetOrderVolumeQuery,
) ([]GetOrderVolumeQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	volumes := make([]GetOrderVolumeQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			area,
			COUNT(*) AS orders
		FROM orders
		GROUP BY area
		ORDER BY area
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var v GetOrderVolumeQueryResponse

		if err = rows.Scan(&v.Area, &v.Orders); err != nil {
			return nil, err
		}

		volumes = append(volumes, v)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return volumes, nil
}
