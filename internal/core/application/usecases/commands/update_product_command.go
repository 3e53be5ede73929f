package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand represents a partial update of a menu product.
// Nil fields are left untouched; non-nil fields replace the stored value.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	name        *string
	price       *float64
	category    *string
	description *string
	isAvailable *bool

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to patch a menu product.
// At least one field must be provided.
func NewUpdateProductCommand(
	productID kernel.UUID,
	name *string,
	price *float64,
	category *string,
	description *string,
	isAvailable *bool,
) (UpdateProductCommand, error) {
	if err := productID.Validate(); err != nil {
		return UpdateProductCommand{}, err
	}

	return UpdateProductCommand{
		productID:   productID,
		name:        name,
		price:       price,
		category:    category,
		description: description,
		isAvailable: isAvailable,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to update.
func (c UpdateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the new name, or nil to keep the current one.
func (c UpdateProductCommand) Name() *string {
	return c.name
}

// Price returns the new price, or nil to keep the current one.
func (c UpdateProductCommand) Price() *float64 {
	return c.price
}

// Category returns the new category, or nil to keep the current one.
func (c UpdateProductCommand) Category() *string {
	return c.category
}

// Description returns the new description, or nil to keep the current one.
func (c UpdateProductCommand) Description() *string {
	return c.description
}

// IsAvailable returns the new availability flag, or nil to keep the current one.
func (c UpdateProductCommand) IsAvailable() *bool {
	return c.isAvailable
}
