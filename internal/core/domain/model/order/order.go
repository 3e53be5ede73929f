package order

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
	// ErrItemsAreRequired is returned when attempting to create an order with no line items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
)

// Order represents a restaurant order. It is the aggregate root that manages
// the order lifecycle from creation through the kitchen workflow to completion
// or cancellation.
//
// Order maintains these invariants:
//   - Must have a valid unique identifier and a constructed Customer
//   - Must contain at least one line item
//   - totalAmount always equals the sum of the line item totals
//   - Status transitions follow the workflow defined by Status
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customer is who placed the order
	customer Customer

	// items are the product snapshots taken at order time, never empty
	items []LineItem

	// status is the current state in the order workflow
	status Status

	// totalAmount is the sum of line item totals
	totalAmount float64

	// notes is optional free-form text attached to the order
	notes string

	// deliveryAddress is the optional delivery destination
	deliveryAddress string

	// deliveryTime is the optional requested delivery time
	deliveryTime *time.Time

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in status New with validation. This is the way
// new orders enter the system; RestoreOrder exists for persistence rehydration.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - customer: Constructed Customer value object
//   - items: At least one LineItem snapshot
//   - notes, deliveryAddress: Optional, empty string when absent
//   - deliveryTime: Optional requested delivery time, nil when absent
//
// The total amount is computed from the line items; created/updated timestamps
// are set to the current UTC time.
func NewOrder(
	id kernel.UUID,
	customer Customer,
	items []LineItem,
	notes string,
	deliveryAddress string,
	deliveryTime *time.Time,
) (*Order, error) {
	now := time.Now().UTC()

	order := &Order{
		status:          New,
		notes:           notes,
		deliveryAddress: deliveryAddress,
		deliveryTime:    deliveryTime,
		createdAt:       now,
		updatedAt:       now,
		isConstructed:   true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomer(customer),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence.
// Unlike NewOrder it accepts an arbitrary (valid) status and the stored
// timestamps. The total amount is recomputed from the items so the
// totalAmount invariant holds regardless of what storage returned.
func RestoreOrder(
	id kernel.UUID,
	customer Customer,
	items []LineItem,
	status Status,
	notes string,
	deliveryAddress string,
	deliveryTime *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	order := &Order{
		status:          status,
		notes:           notes,
		deliveryAddress: deliveryAddress,
		deliveryTime:    deliveryTime,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		isConstructed:   true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomer(customer),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Customer returns the customer who placed the order.
func (o *Order) Customer() Customer {
	return o.customer
}

// Items returns a copy of the order's line items.
// The slice is copied so callers cannot mutate the aggregate's state.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// TotalAmount returns the sum of all line item totals.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// Notes returns the optional order notes, or an empty string.
func (o *Order) Notes() string {
	return o.notes
}

// DeliveryAddress returns the optional delivery address, or an empty string.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// DeliveryTime returns the optional requested delivery time, or nil.
func (o *Order) DeliveryTime() *time.Time {
	return o.deliveryTime
}

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order was last modified.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus moves the order to the target status.
//
// The transition is checked against the workflow table; an error wrapping
// ErrInvalidStatusTransition is returned when the move is not permitted.
// On success the updated timestamp is refreshed.
//
// Example:
//
//	if err := order.ChangeStatus(order.Confirmed); err != nil {
//	    // transition not allowed from the current status
//	}
func (o *Order) ChangeStatus(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = time.Now().UTC()
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomer validates and sets the order's customer.
// This is a private method used only during construction.
func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

// setItems validates and sets the order's line items and recomputes the total.
// The items slice must be non-empty and every item must be constructed.
// This is a private method used only during construction.
func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	total := 0.0
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		total += item.TotalPrice()
	}

	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	o.totalAmount = total
	return nil
}
