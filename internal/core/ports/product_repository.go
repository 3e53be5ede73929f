package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate.
	// The product must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no product has the given id.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// Delete removes the product from storage.
	// Returns errs.ObjectNotFoundError when no product has the given id.
	Delete(ctx context.Context, id kernel.UUID) error
}
