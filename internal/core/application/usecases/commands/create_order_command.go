package commands

import (
	"errors"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderItemRequestIsNotConstructed = errors.New(
		"OrderItemRequest must be created via NewOrderItemRequest constructor",
	)
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
)

// OrderItemRequest is one requested order position: which product and how many.
// Product name and price are resolved by the handler at execution time.
type OrderItemRequest struct { //nolint:recvcheck //using for validation
	productID       kernel.UUID
	quantity        int
	specialRequests string

	guard guard.ConstructorGuard
}

// NewOrderItemRequest creates a validated order item request.
// The product must exist; that is checked later by the handler. Quantity must
// be at least 1.
func NewOrderItemRequest(productID kernel.UUID, quantity int, specialRequests string) (OrderItemRequest, error) {
	if err := productID.Validate(); err != nil {
		return OrderItemRequest{}, err
	}

	if quantity < 1 {
		return OrderItemRequest{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is less than 1", quantity),
		)
	}

	return OrderItemRequest{
		productID:       productID,
		quantity:        quantity,
		specialRequests: specialRequests,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the request was created through the constructor.
func (r OrderItemRequest) Validate() error {
	return r.guard.Validate(ErrOrderItemRequestIsNotConstructed)
}

// ProductID returns the requested product's identifier.
func (r OrderItemRequest) ProductID() kernel.UUID {
	return r.productID
}

// Quantity returns the requested quantity.
func (r OrderItemRequest) Quantity() int {
	return r.quantity
}

// SpecialRequests returns the free-form request text, or an empty string.
func (r OrderItemRequest) SpecialRequests() string {
	return r.specialRequests
}

// CreateOrderCommand represents a request to place a new order.
// Encapsulates the customer, the requested items, and optional delivery details.
//
// Example:
//
//	customer, _ := order.NewCustomer("Ivan Petrov", "", "", "")
//	item, _ := commands.NewOrderItemRequest(productID, 2, "no onions")
//	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), customer,
//	    []commands.OrderItemRequest{item}, "", "", nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customer        order.Customer
	items           []OrderItemRequest
	notes           string
	deliveryAddress string
	deliveryTime    *time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that the order ID is valid, the customer is constructed, and at
// least one constructed item request is present.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customer order.Customer,
	items []OrderItemRequest,
	notes string,
	deliveryAddress string,
	deliveryTime *time.Time,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		notes:           notes,
		deliveryAddress: deliveryAddress,
		deliveryTime:    deliveryTime,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomer(customer),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Customer returns the customer placing the order.
func (c CreateOrderCommand) Customer() order.Customer {
	return c.customer
}

// Items returns the requested order positions.
func (c CreateOrderCommand) Items() []OrderItemRequest {
	return c.items
}

// Notes returns the optional order notes, or an empty string.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

// DeliveryAddress returns the optional delivery address, or an empty string.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// DeliveryTime returns the optional requested delivery time, or nil.
func (c CreateOrderCommand) DeliveryTime() *time.Time {
	return c.deliveryTime
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomer(customer order.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}

	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemRequest) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = make([]OrderItemRequest, len(items))
	copy(c.items, items)
	return nil
}
