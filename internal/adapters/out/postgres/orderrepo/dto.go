// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Customer contact details are embedded in the orders table; line items live
// in a child table and are cascade-deleted with the order.
type OrderDTO struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Customer        CustomerDTO    `gorm:"embedded;embeddedPrefix:customer_"`
	Items           []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Status          int            `gorm:"index"`
	TotalAmount     float64
	Notes           string
	DeliveryAddress string
	DeliveryTime    *time.Time
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// CustomerDTO represents the embedded customer contact details within the order table.
type CustomerDTO struct {
	Name    string `gorm:"index"`
	Phone   string
	Email   string
	Address string
}

// OrderItemDTO represents one persisted line item of an order.
// Name and unit price are the snapshot captured at order time, not a
// reference into the products table.
type OrderItemDTO struct {
	ID              uint      `gorm:"primaryKey;autoIncrement"`
	OrderID         uuid.UUID `gorm:"type:uuid;index"`
	ProductID       uuid.UUID `gorm:"type:uuid"`
	Name            string
	UnitPrice       float64
	Quantity        int
	TotalPrice      float64
	SpecialRequests string
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:         aggregate.ID().Bytes(),
			ProductID:       item.ProductID().Bytes(),
			Name:            item.Name(),
			UnitPrice:       item.UnitPrice(),
			Quantity:        item.Quantity(),
			TotalPrice:      item.TotalPrice(),
			SpecialRequests: item.SpecialRequests(),
		})
	}

	return OrderDTO{
		ID: aggregate.ID().Bytes(),
		Customer: CustomerDTO{
			Name:    aggregate.Customer().Name(),
			Phone:   aggregate.Customer().Phone(),
			Email:   aggregate.Customer().Email(),
			Address: aggregate.Customer().Address(),
		},
		Items:           items,
		Status:          int(aggregate.Status()),
		TotalAmount:     aggregate.TotalAmount(),
		Notes:           aggregate.Notes(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		DeliveryTime:    aggregate.DeliveryTime(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and line items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(
		dto.Customer.Name,
		dto.Customer.Phone,
		dto.Customer.Email,
		dto.Customer.Address,
	)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewLineItem(
			productID,
			itemDTO.Name,
			itemDTO.UnitPrice,
			itemDTO.Quantity,
			itemDTO.SpecialRequests,
		)
		if itemErr != nil {
			return nil, itemErr
		}

		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		customer,
		items,
		order.Status(dto.Status),
		dto.Notes,
		dto.DeliveryAddress,
		dto.DeliveryTime,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
