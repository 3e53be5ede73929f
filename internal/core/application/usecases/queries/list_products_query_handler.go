package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListProductsQueryHandler retrieves pages of menu products from the database.
// Results are sorted by category and then name for stable menu rendering.
type ListProductsQueryHandler struct {
	db *gorm.DB
}

// NewListProductsQueryHandler creates a handler for product list queries.
// Requires a GORM database connection for query execution.
func NewListProductsQueryHandler(db *gorm.DB) ListProductsQueryHandler {
	return ListProductsQueryHandler{db: db}
}

// Handle executes the query to retrieve one page of menu products.
// The total count reflects all products matching the filters, not just the
// returned page, so clients can render pagination.
func (h ListProductsQueryHandler) Handle(ctx context.Context, query ListProductsQuery) (ListProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListProductsQueryResponse{}, err
	}

	where, args := buildProductFilters(query)

	var total int64
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM products"+where, args...).
		Scan(&total).Error; err != nil {
		return ListProductsQueryResponse{}, err
	}

	offset := (query.Page() - 1) * query.Limit()
	pageArgs := append(append([]any{}, args...), query.Limit(), offset)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price,
			category,
			is_available,
			description,
			created_at,
			updated_at
		FROM products`+where+`
		ORDER BY category, name
		LIMIT ? OFFSET ?
	`, pageArgs...).Rows()
	if err != nil {
		return ListProductsQueryResponse{}, err
	}
	defer rows.Close()

	products := make([]ProductView, 0, query.Limit())
	for rows.Next() {
		var view ProductView
		var id uuid.UUID

		err = rows.Scan(
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
			return ListProductsQueryResponse{}, err
		}

		view.ID = id.String()
		products = append(products, view)
	}

	if err = rows.Err(); err != nil {
		return ListProductsQueryResponse{}, err
	}

	return ListProductsQueryResponse{
		Products: products,
		Total:    total,
		Page:     query.Page(),
		Limit:    query.Limit(),
	}, nil
}

// buildProductFilters renders the WHERE clause shared by the count and page
// queries. Returns an empty string when no filter is active.
func buildProductFilters(query ListProductsQuery) (string, []any) {
	where := ""
	args := make([]any, 0, 2)

	if query.Category() != "" {
		where = " WHERE category = ?"
		args = append(args, query.Category())
	}

	if query.AvailableOnly() {
		if where == "" {
			where = " WHERE is_available = TRUE"
		} else {
			where += " AND is_available = TRUE"
		}
	}

	return where, args
}
