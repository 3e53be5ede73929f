package order

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	// ErrLineItemIsNotConstructed is returned when a LineItem was not created
	// through the NewLineItem constructor.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")
	// ErrLineItemNameIsRequired is returned when attempting to create a line item without a product name.
	ErrLineItemNameIsRequired = errs.NewValueIsRequiredError("line item name")
)

// LineItem is an immutable snapshot of one product at order-creation time.
// It copies the product's name and unit price instead of referencing the live
// Product, so later price or availability edits never retroactively alter
// past orders. The line total is computed once at construction.
//
// LineItem is a value object: once created it never changes.
type LineItem struct {
	productID       kernel.UUID
	name            string
	quantity        int
	unitPrice       float64
	totalPrice      float64
	specialRequests string

	guard guard.ConstructorGuard
}

// NewLineItem creates a line item snapshot.
//
// Validation rules:
//   - productID must be a valid UUID
//   - name must be non-empty (the product name at order time)
//   - quantity must be at least 1
//   - unitPrice must be non-negative
//
// The total price is quantity × unitPrice.
func NewLineItem(
	productID kernel.UUID,
	name string,
	unitPrice float64,
	quantity int,
	specialRequests string,
) (LineItem, error) {
	if err := productID.Validate(); err != nil {
		return LineItem{}, err
	}

	if name == "" {
		return LineItem{}, ErrLineItemNameIsRequired
	}

	if quantity < 1 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is less than 1", quantity),
		)
	}

	if unitPrice < 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause(
			"unit price is invalid",
			fmt.Errorf("%f is negative", unitPrice),
		)
	}

	return LineItem{
		productID:       productID,
		name:            name,
		quantity:        quantity,
		unitPrice:       unitPrice,
		totalPrice:      unitPrice * float64(quantity),
		specialRequests: specialRequests,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the LineItem was created through the constructor.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// ProductID returns the identifier of the product this item snapshots.
func (li LineItem) ProductID() kernel.UUID {
	return li.productID
}

// Name returns the product name captured at order time.
func (li LineItem) Name() string {
	return li.name
}

// Quantity returns the ordered quantity.
func (li LineItem) Quantity() int {
	return li.quantity
}

// UnitPrice returns the per-unit price captured at order time.
func (li LineItem) UnitPrice() float64 {
	return li.unitPrice
}

// TotalPrice returns quantity × unit price.
func (li LineItem) TotalPrice() float64 {
	return li.totalPrice
}

// SpecialRequests returns the free-form request text, or an empty string.
func (li LineItem) SpecialRequests() string {
	return li.specialRequests
}
