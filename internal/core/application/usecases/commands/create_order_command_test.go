package commands_test

import (
	"testing"
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCustomer(t *testing.T) order.Customer {
	t.Helper()
	customer, err := order.NewCustomer("Ivan Petrov", "+7-900-000-00-00", "", "")
	require.NoError(t, err)
	return customer
}

func mustItemRequest(t *testing.T, quantity int) commands.OrderItemRequest {
	t.Helper()
	item, err := commands.NewOrderItemRequest(kernel.NewUUID(), quantity, "")
	require.NoError(t, err)
	return item
}

func TestNewOrderItemRequest_ValidInput(t *testing.T) {
	productID := kernel.NewUUID()
	item, err := commands.NewOrderItemRequest(productID, 3, "no onions")
	require.NoError(t, err)
	assert.Equal(t, productID, item.ProductID())
	assert.Equal(t, 3, item.Quantity())
	assert.Equal(t, "no onions", item.SpecialRequests())
}

func TestNewOrderItemRequest_ZeroQuantity(t *testing.T) {
	_, err := commands.NewOrderItemRequest(kernel.NewUUID(), 0, "")
	require.Error(t, err)
}

func TestNewOrderItemRequest_InvalidProductID(t *testing.T) {
	_, err := commands.NewOrderItemRequest(kernel.UUID{}, 1, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	customer := mustCustomer(t)
	items := []commands.OrderItemRequest{mustItemRequest(t, 2)}
	deliveryTime := time.Now().Add(time.Hour)

	cmd, err := commands.NewCreateOrderCommand(id, customer, items, "call on arrival", "Main St 1", &deliveryTime)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, customer, cmd.Customer())
	assert.Len(t, cmd.Items(), 1)
	assert.Equal(t, "call on arrival", cmd.Notes())
	assert.Equal(t, "Main St 1", cmd.DeliveryAddress())
	assert.Equal(t, &deliveryTime, cmd.DeliveryTime())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.UUID{}, mustCustomer(t), []commands.OrderItemRequest{mustItemRequest(t, 1)}, "", "", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_NotConstructedCustomer(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), order.Customer{}, []commands.OrderItemRequest{mustItemRequest(t, 1)}, "", "", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrCustomerIsNotConstructed)
}

func TestNewCreateOrderCommand_EmptyItems(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), mustCustomer(t), nil, "", "", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrItemsAreRequired)
}

func TestNewCreateOrderCommand_NotConstructedItem(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), mustCustomer(t), []commands.OrderItemRequest{{}}, "", "", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOrderItemRequestIsNotConstructed)
}

func TestCreateOrderCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CreateOrderCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
