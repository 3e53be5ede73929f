// Package queries contains read-only operations for retrieving system state.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly with raw SQL and return denormalized views, bypassing the
// domain model and its repositories.
package queries

import "time"

// CustomerView represents customer contact details within an order view.
type CustomerView struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// OrderItemView represents one line item of an order view.
// Name and unit price are the snapshot captured when the order was placed.
type OrderItemView struct {
	ProductID       string  `json:"product_id"`
	Name            string  `json:"name"`
	UnitPrice       float64 `json:"unit_price"`
	Quantity        int     `json:"quantity"`
	TotalPrice      float64 `json:"total_price"`
	SpecialRequests string  `json:"special_requests,omitempty"`
}

// OrderView represents a complete order as exposed over the API and
// realtime channels.
type OrderView struct {
	ID              string          `json:"id"`
	Customer        CustomerView    `json:"customer"`
	Items           []OrderItemView `json:"items"`
	Status          string          `json:"status"`
	TotalAmount     float64         `json:"total_amount"`
	Notes           string          `json:"notes,omitempty"`
	DeliveryAddress string          `json:"delivery_address,omitempty"`
	DeliveryTime    *time.Time      `json:"delivery_time,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ProductView represents a menu product as exposed over the API.
type ProductView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	IsAvailable bool      `json:"is_available"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
