package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// loadOrderItems fetches the line items for the given order ids in one query
// and groups them by order. Shared by the single-order and order-list handlers.
func loadOrderItems(ctx context.Context, db *gorm.DB, orderIDs []uuid.UUID) (map[uuid.UUID][]OrderItemView, error) {
	itemsByOrder := make(map[uuid.UUID][]OrderItemView, len(orderIDs))
	if len(orderIDs) == 0 {
		return itemsByOrder, nil
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			product_id,
			name,
			unit_price,
			quantity,
			total_price,
			special_requests
		FROM order_items
		WHERE order_id IN ?
		ORDER BY id
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID, productID uuid.UUID
		var item OrderItemView

		err = rows.Scan(
			&orderID,
			&productID,
			&item.Name,
			&item.UnitPrice,
			&item.Quantity,
			&item.TotalPrice,
			&item.SpecialRequests,
		)
		if err != nil {
			return nil, err
		}

		item.ProductID = productID.String()
		itemsByOrder[orderID] = append(itemsByOrder[orderID], item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return itemsByOrder, nil
}
