package queries

import (
	"errors"
	"math"
	"time"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

const (
	minPage  = 1
	minLimit = 1
	maxLimit = 100
)

// ListOrdersQuery retrieves a page of orders, newest first, with optional
// filtering by status, customer name, and creation date range.
//
// Example:
//
//	status := order.Preparing
//	query, err := NewListOrdersQuery(&status, "", nil, nil, 1, 20)
//	if err != nil {
//	    return err
//	}
//	handler := NewListOrdersQueryHandler(db)
//
//	page, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	fmt.Printf("%d of %d orders\n", len(page.Orders), page.Total)
type ListOrdersQuery struct {
	status       *order.Status
	customerName string
	dateFrom     *time.Time
	dateTo       *time.Time
	page         int
	limit        int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query to retrieve a page of orders.
// The customer name filter is a case-insensitive substring match; an empty
// string disables it. Page numbering starts at 1 and the page size is capped
// at 100 entries.
func NewListOrdersQuery(
	status *order.Status,
	customerName string,
	dateFrom *time.Time,
	dateTo *time.Time,
	page int,
	limit int,
) (ListOrdersQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}

	if page < minPage {
		return ListOrdersQuery{}, errs.NewValueIsOutOfRangeError("page", page, minPage, math.MaxInt)
	}

	if limit < minLimit || limit > maxLimit {
		return ListOrdersQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, minLimit, maxLimit)
	}

	return ListOrdersQuery{
		status:       status,
		customerName: customerName,
		dateFrom:     dateFrom,
		dateTo:       dateTo,
		page:         page,
		limit:        limit,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the status filter, or nil when disabled.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// CustomerName returns the customer name filter, or an empty string when disabled.
func (q ListOrdersQuery) CustomerName() string {
	return q.customerName
}

// DateFrom returns the inclusive lower bound on creation time, or nil.
func (q ListOrdersQuery) DateFrom() *time.Time {
	return q.dateFrom
}

// DateTo returns the inclusive upper bound on creation time, or nil.
func (q ListOrdersQuery) DateTo() *time.Time {
	return q.dateTo
}

// Page returns the 1-based page number.
func (q ListOrdersQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q ListOrdersQuery) Limit() int {
	return q.limit
}

// ListOrdersQueryResponse is one page of orders plus the total match count.
type ListOrdersQueryResponse struct {
	Orders []OrderView `json:"orders"`
	Total  int64       `json:"total"`
	Page   int         `json:"page"`
	Limit  int         `json:"limit"`
}
