package product

import (
	"errors"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrNameIsRequired is returned when attempting to create a product without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCategoryIsRequired is returned when attempting to create a product without a category.
	ErrCategoryIsRequired = errs.NewValueIsRequiredError("category")
	// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructor")
)

// Product represents a menu item that customers can order.
// It is an aggregate root managing product identity, pricing, and availability.
//
// Business rules:
//   - Product must have a valid UUID, non-empty name and category
//   - Price must be non-negative
//   - Availability can be toggled without affecting existing orders: orders
//     snapshot the product at order time and never reference it afterwards
//
// The struct uses private fields; mutations go through validated methods that
// refresh the updated timestamp.
type Product struct {
	// id uniquely identifies the product
	id kernel.UUID
	// name is the menu name of the product
	name string
	// price is the current per-unit price
	price float64
	// category groups products on the menu (e.g. "pizza", "drinks")
	category string
	// isAvailable marks whether the product can currently be ordered
	isAvailable bool
	// description is optional menu text
	description string

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the product was created via a factory method
	isConstructed bool
}

// NewProduct creates a new Product with validation.
// New products start available; timestamps are set to the current UTC time.
func NewProduct(id kernel.UUID, name string, price float64, category, description string) (*Product, error) {
	now := time.Now().UTC()

	product := &Product{
		isAvailable:   true,
		description:   description,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setPrice(price),
		product.setCategory(category),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// RestoreProduct reconstructs a Product from persistence, including its
// availability flag and stored timestamps.
func RestoreProduct(
	id kernel.UUID,
	name string,
	price float64,
	category string,
	isAvailable bool,
	description string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Product, error) {
	product := &Product{
		isAvailable:   isAvailable,
		description:   description,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setPrice(price),
		product.setCategory(category),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// Validate ensures the Product instance was properly constructed through a factory method.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}

	return nil
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's menu name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the current per-unit price.
func (p *Product) Price() float64 {
	return p.price
}

// Category returns the product's menu category.
func (p *Product) Category() string {
	return p.category
}

// IsAvailable reports whether the product can currently be ordered.
func (p *Product) IsAvailable() bool {
	return p.isAvailable
}

// Description returns the optional menu text, or an empty string.
func (p *Product) Description() string {
	return p.description
}

// CreatedAt returns when the product was created.
func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns when the product was last modified.
func (p *Product) UpdatedAt() time.Time {
	return p.updatedAt
}

// Rename changes the product's menu name.
func (p *Product) Rename(name string) error {
	if err := p.setName(name); err != nil {
		return err
	}
	p.touch()
	return nil
}

// ChangePrice changes the product's per-unit price.
// Existing orders are unaffected: they carry their own price snapshots.
func (p *Product) ChangePrice(price float64) error {
	if err := p.setPrice(price); err != nil {
		return err
	}
	p.touch()
	return nil
}

// ChangeCategory moves the product to another menu category.
func (p *Product) ChangeCategory(category string) error {
	if err := p.setCategory(category); err != nil {
		return err
	}
	p.touch()
	return nil
}

// ChangeDescription replaces the menu text. An empty string clears it.
func (p *Product) ChangeDescription(description string) {
	p.description = description
	p.touch()
}

// SetAvailability toggles whether the product can be ordered.
func (p *Product) SetAvailability(isAvailable bool) {
	p.isAvailable = isAvailable
	p.touch()
}

func (p *Product) touch() {
	p.updatedAt = time.Now().UTC()
}

// setID validates and sets the product's unique identifier.
// This is a private method used only during construction.
func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid", fmt.Errorf("%f is negative", price))
	}
	p.price = price
	return nil
}

func (p *Product) setCategory(category string) error {
	if category == "" {
		return ErrCategoryIsRequired
	}
	p.category = category
	return nil
}
