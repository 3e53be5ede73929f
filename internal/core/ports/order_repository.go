package ports

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no order has the given id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateStatus persists a new status and updated timestamp for the order.
	// Returns whether any row was actually modified: a false result with a nil
	// error means the stored document already carried the target status, which
	// callers treat as a benign race rather than a failure.
	UpdateStatus(ctx context.Context, id kernel.UUID, status order.Status, updatedAt time.Time) (bool, error)
}
