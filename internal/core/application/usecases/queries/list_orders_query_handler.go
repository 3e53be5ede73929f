package queries

import (
	"context"
	"database/sql"

	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves pages of orders from the database.
// Results are sorted newest first so the kitchen sees fresh orders on top.
//
// Example:
//
//	handler := NewListOrdersQueryHandler(db)
//	query, _ := NewListOrdersQuery(nil, "petrov", nil, nil, 1, 20)
//
//	page, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to list orders: %v", err)
//	    return err
//	}
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve one page of orders.
// The total count reflects all orders matching the filters, not just the
// returned page, so clients can render pagination.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	where, args := buildOrderFilters(query)

	var total int64
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM orders"+where, args...).
		Scan(&total).Error; err != nil {
		return ListOrdersQueryResponse{}, err
	}

	offset := (query.Page() - 1) * query.Limit()
	pageArgs := append(append([]any{}, args...), query.Limit(), offset)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_name,
			customer_phone,
			customer_email,
			customer_address,
			status,
			total_amount,
			notes,
			delivery_address,
			delivery_time,
			created_at,
			updated_at
		FROM orders`+where+`
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, pageArgs...).Rows()
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}
	defer rows.Close()

	views := make([]OrderView, 0, query.Limit())
	ids := make([]uuid.UUID, 0, query.Limit())

	for rows.Next() {
		var view OrderView
		var id uuid.UUID
		var status int
		var deliveryTime sql.NullTime

		err = rows.Scan(
			&id,
			&view.Customer.Name,
			&view.Customer.Phone,
			&view.Customer.Email,
			&view.Customer.Address,
			&status,
			&view.TotalAmount,
			&view.Notes,
			&view.DeliveryAddress,
			&deliveryTime,
			&view.CreatedAt,
			&view.UpdatedAt,
		)
		if err != nil {
			return ListOrdersQueryResponse{}, err
		}

		view.ID = id.String()
		view.Status = order.Status(status).String()
		if deliveryTime.Valid {
			t := deliveryTime.Time.UTC()
			view.DeliveryTime = &t
		}

		views = append(views, view)
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	itemsByOrder, err := loadOrderItems(ctx, h.db, ids)
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}
	for i := range views {
		views[i].Items = itemsByOrder[ids[i]]
	}

	return ListOrdersQueryResponse{
		Orders: views,
		Total:  total,
		Page:   query.Page(),
		Limit:  query.Limit(),
	}, nil
}

// buildOrderFilters renders the WHERE clause shared by the count and page
// queries. Returns an empty string when no filter is active.
func buildOrderFilters(query ListOrdersQuery) (string, []any) {
	where := ""
	args := make([]any, 0, 4)

	appendClause := func(clause string, arg any) {
		if where == "" {
			where = " WHERE " + clause
		} else {
			where += " AND " + clause
		}
		args = append(args, arg)
	}

	if query.Status() != nil {
		appendClause("status = ?", int(*query.Status()))
	}

	if query.CustomerName() != "" {
		appendClause("customer_name ILIKE ?", "%"+query.CustomerName()+"%")
	}

	if query.DateFrom() != nil {
		appendClause("created_at >= ?", *query.DateFrom())
	}

	if query.DateTo() != nil {
		appendClause("created_at <= ?", *query.DateTo())
	}

	return where, args
}
