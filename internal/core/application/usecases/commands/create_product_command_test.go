package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateProductCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(id, "Margherita", 450, "pizza", "classic")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.ProductID())
	assert.Equal(t, "Margherita", cmd.Name())
	assert.InEpsilon(t, 450.0, cmd.Price(), 1e-9)
	assert.Equal(t, "pizza", cmd.Category())
	assert.Equal(t, "classic", cmd.Description())
}

func TestNewCreateProductCommand_InvalidProductID(t *testing.T) {
	_, err := commands.NewCreateProductCommand(kernel.UUID{}, "Margherita", 450, "pizza", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCreateProductCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CreateProductCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateProductCommandIsNotConstructed)
}

func TestNewUpdateProductCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	name := "Pepperoni"
	price := 520.0
	cmd, err := commands.NewUpdateProductCommand(id, &name, &price, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.ProductID())
	assert.Equal(t, &name, cmd.Name())
	assert.Equal(t, &price, cmd.Price())
	assert.Nil(t, cmd.Category())
	assert.Nil(t, cmd.Description())
	assert.Nil(t, cmd.IsAvailable())
}

func TestNewUpdateProductCommand_InvalidProductID(t *testing.T) {
	_, err := commands.NewUpdateProductCommand(kernel.UUID{}, nil, nil, nil, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewDeleteProductCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewDeleteProductCommand(id)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.ProductID())
}

func TestNewDeleteProductCommand_InvalidProductID(t *testing.T) {
	_, err := commands.NewDeleteProductCommand(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
