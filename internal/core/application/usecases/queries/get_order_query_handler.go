package queries

import (
	"context"
	"database/sql"
	"errors"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order with its line items from the database.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	query, _ := NewGetOrderQuery(orderID)
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get order: %v", err)
//	    return err
//	}
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one order.
// Returns errs.ObjectNotFoundError when no order has the given id.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
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
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var view OrderView
	var id uuid.UUID
	var status int
	var deliveryTime sql.NullTime

	err := row.Scan(
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
		if errors.Is(err, sql.ErrNoRows) {
			return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return OrderView{}, err
	}

	view.ID = id.String()
	view.Status = order.Status(status).String()
	if deliveryTime.Valid {
		t := deliveryTime.Time.UTC()
		view.DeliveryTime = &t
	}

	itemsByOrder, err := loadOrderItems(ctx, h.db, []uuid.UUID{id})
	if err != nil {
		return OrderView{}, err
	}
	view.Items = itemsByOrder[id]

	return view, nil
}
