package queries

import (
	"context"

	"restaurant/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderStatisticsQueryHandler computes per-status order counts from the database.
// The same handler feeds the REST statistics endpoint and the periodic
// realtime broadcast to admin clients.
type GetOrderStatisticsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatisticsQueryHandler creates a handler for statistics queries.
// Requires a GORM database connection for query execution.
func NewGetOrderStatisticsQueryHandler(db *gorm.DB) GetOrderStatisticsQueryHandler {
	return GetOrderStatisticsQueryHandler{db: db}
}

// Handle executes the query to compute order counts grouped by status.
// Statuses without orders are present with a zero count.
func (h GetOrderStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatisticsQuery,
) (map[string]int, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stats := make(map[string]int, len(order.Statuses()))
	for _, status := range order.Statuses() {
		stats[status.String()] = 0
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var status, count int

		if err = rows.Scan(&status, &count); err != nil {
			return nil, err
		}

		stats[order.Status(status).String()] = count
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}
