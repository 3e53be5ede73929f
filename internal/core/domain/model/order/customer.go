package order

import (
	"errors"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	// ErrCustomerIsNotConstructed is returned when a Customer was not created
	// through the NewCustomer constructor.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
	// ErrCustomerNameIsRequired is returned when attempting to create a customer without a name.
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("customer name")
)

// Customer is a value object describing who placed an order.
// Only the name is mandatory; phone, email, and address are optional
// contact details kept as provided.
//
// Customer is embedded into the Order aggregate and is immutable once created.
type Customer struct {
	name    string
	phone   string
	email   string
	address string

	guard guard.ConstructorGuard
}

// NewCustomer creates a Customer value object.
// The name must be non-empty; phone, email, and address may be empty strings.
func NewCustomer(name, phone, email, address string) (Customer, error) {
	if name == "" {
		return Customer{}, ErrCustomerNameIsRequired
	}

	return Customer{
		name:    name,
		phone:   phone,
		email:   email,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Customer was created through the constructor.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// Name returns the customer's name.
func (c Customer) Name() string {
	return c.name
}

// Phone returns the customer's phone number, or an empty string if not provided.
func (c Customer) Phone() string {
	return c.phone
}

// Email returns the customer's email, or an empty string if not provided.
func (c Customer) Email() string {
	return c.email
}

// Address returns the customer's address, or an empty string if not provided.
func (c Customer) Address() string {
	return c.address
}
