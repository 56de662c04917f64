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
	price := money(t, 16000)

	cmd, err := commands.NewCreateProductCommand(id, "Fried Chicken", price)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.ProductID())
	assert.Equal(t, "Fried Chicken", cmd.Name())
	assert.True(t, price.IsEqual(cmd.Price()))
}

func TestNewCreateProductCommand_EmptyName(t *testing.T) {
	_, err := commands.NewCreateProductCommand(kernel.NewUUID(), "", money(t, 16000))
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrNameIsRequired)
}

func TestNewCreateProductCommand_InvalidProductID(t *testing.T) {
	_, err := commands.NewCreateProductCommand(kernel.UUID{}, "Fried Chicken", money(t, 16000))
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
