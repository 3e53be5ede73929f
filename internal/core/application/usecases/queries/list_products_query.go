package queries

import (
	"errors"
	"math"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrListProductsQueryIsNotConstructed = errors.New(
	"ListProductsQuery must be created via NewListProductsQuery constructor",
)

// ListProductsQuery retrieves a page of menu products with optional filtering
// by category and availability.
//
// Example:
//
//	query, err := NewListProductsQuery("pizza", true, 1, 10)
//	if err != nil {
//	    return err
//	}
//	handler := NewListProductsQueryHandler(db)
//
//	page, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list products: %w", err)
//	}
type ListProductsQuery struct {
	category      string
	availableOnly bool
	page          int
	limit         int

	guard guard.ConstructorGuard
}

// NewListProductsQuery creates a query to retrieve a page of menu products.
// An empty category disables the category filter; availableOnly restricts
// results to products currently on sale. Page numbering starts at 1 and the
// page size is capped at 100 entries.
func NewListProductsQuery(category string, availableOnly bool, page int, limit int) (ListProductsQuery, error) {
	if page < minPage {
		return ListProductsQuery{}, errs.NewValueIsOutOfRangeError("page", page, minPage, math.MaxInt)
	}

	if limit < minLimit || limit > maxLimit {
		return ListProductsQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, minLimit, maxLimit)
	}

	return ListProductsQuery{
		category:      category,
		availableOnly: availableOnly,
		page:          page,
		limit:         limit,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

// Category returns the category filter, or an empty string when disabled.
func (q ListProductsQuery) Category() string {
	return q.category
}

// AvailableOnly reports whether unavailable products are excluded.
func (q ListProductsQuery) AvailableOnly() bool {
	return q.availableOnly
}

// Page returns the 1-based page number.
func (q ListProductsQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q ListProductsQuery) Limit() int {
	return q.limit
}

// ListProductsQueryResponse is one page of products plus the total match count.
type ListProductsQueryResponse struct {
	Products []ProductView `json:"products"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	Limit    int           `json:"limit"`
}
