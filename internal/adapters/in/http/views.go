package http

import (
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/product"
)

// orderToView converts an order aggregate into the API view shared with the
// query side, so command responses and realtime broadcasts carry the same
// shape as reads.
func orderToView(aggregate *order.Order) queries.OrderView {
	items := make([]queries.OrderItemView, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, queries.OrderItemView{
			ProductID:       item.ProductID().String(),
			Name:            item.Name(),
			UnitPrice:       item.UnitPrice(),
			Quantity:        item.Quantity(),
			TotalPrice:      item.TotalPrice(),
			SpecialRequests: item.SpecialRequests(),
		})
	}

	return queries.OrderView{
		ID: aggregate.ID().String(),
		Customer: queries.CustomerView{
			Name:    aggregate.Customer().Name(),
			Phone:   aggregate.Customer().Phone(),
			Email:   aggregate.Customer().Email(),
			Address: aggregate.Customer().Address(),
		},
		Items:           items,
		Status:          aggregate.Status().String(),
		TotalAmount:     aggregate.TotalAmount(),
		Notes:           aggregate.Notes(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		DeliveryTime:    aggregate.DeliveryTime(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}
}

// productToView converts a product aggregate into the API view.
func productToView(aggregate *product.Product) queries.ProductView {
	return queries.ProductView{
		ID:          aggregate.ID().String(),
		Name:        aggregate.Name(),
		Price:       aggregate.Price(),
		Category:    aggregate.Category(),
		IsAvailable: aggregate.IsAvailable(),
		Description: aggregate.Description(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}
