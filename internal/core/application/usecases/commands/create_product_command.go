package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a request to add a new product to the menu.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	name        string
	price       float64
	category    string
	description string

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a menu product.
// Field rules (required name and category, non-negative price) are enforced
// by the product aggregate when the handler executes; the command only
// validates the identifier so malformed ids fail before a transaction starts.
func NewCreateProductCommand(
	productID kernel.UUID,
	name string,
	price float64,
	category string,
	description string,
) (CreateProductCommand, error) {
	if err := productID.Validate(); err != nil {
		return CreateProductCommand{}, err
	}

	return CreateProductCommand{
		productID:   productID,
		name:        name,
		price:       price,
		category:    category,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the unique identifier for the new product.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the product name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Price returns the product price.
func (c CreateProductCommand) Price() float64 {
	return c.price
}

// Category returns the menu category.
func (c CreateProductCommand) Category() string {
	return c.category
}

// Description returns the optional description, or an empty string.
func (c CreateProductCommand) Description() string {
	return c.description
}
