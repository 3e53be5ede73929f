package queries

import (
	"context"
	"database/sql"
	"errors"

	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProductQueryHandler retrieves a single menu product from the database.
type GetProductQueryHandler struct {
	db *gorm.DB
}

// NewGetProductQueryHandler creates a handler for single-product queries.
// Requires a GORM database connection for query execution.
func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

// Handle executes the query to retrieve one product.
// Returns errs.ObjectNotFoundError when no product has the given id.
func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (ProductView, error) {
	if err := query.Validate(); err != nil {
		return ProductView{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price,
			category,
			is_available,
			description,
			created_at,
			updated_at
		FROM products
		WHERE id = ?
	`, query.ProductID().Bytes()).Row()

	var view ProductView
	var id uuid.UUID

	err := row.Scan(
		&id,
		&view.Name,
		&view.Price,
		&view.Category,
		&view.IsAvailable,
		&view.Description,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ProductView{}, errs.NewObjectNotFoundError("product", query.ProductID().String())
		}
		return ProductView{}, err
	}

	view.ID = id.String()
	return view, nil
}
