package queries

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var ErrGetOrderStatisticsQueryIsNotConstructed = errors.New(
	"GetOrderStatisticsQuery must be created via NewGetOrderStatisticsQuery constructor",
)

// GetOrderStatisticsQuery retrieves per-status order counts.
// Every known status appears in the result, zero-filled when no order
// currently carries it, so dashboards render a stable set of buckets.
//
// Example:
//
//	query := NewGetOrderStatisticsQuery()
//	handler := NewGetOrderStatisticsQueryHandler(db)
//
//	stats, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get statistics: %w", err)
//	}
//	fmt.Printf("%d orders in preparation\n", stats["preparing"])
type GetOrderStatisticsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderStatisticsQuery creates a query to retrieve order statistics.
// This is a parameterless query covering all orders.
func NewGetOrderStatisticsQuery() GetOrderStatisticsQuery {
	return GetOrderStatisticsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderStatisticsQueryIsNotConstructed if validation fails.
func (q GetOrderStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatisticsQueryIsNotConstructed)
}
