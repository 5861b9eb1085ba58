package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventory_AddRequiresEntry(t *testing.T) {
	inv := Inventory{}
	_, err := inv.Add(1, 5)
	require.ErrorIs(t, err, ErrPetNotInInventory)
	assert.Empty(t, inv)

	require.NoError(t, inv.Stock(1, 2))
	qty, err := inv.Add(1, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(7), qty)
}

func TestInventory_RemoveThenAddRestores(t *testing.T) {
	inv := Inventory{7: 10}
	_, err := inv.Remove(7, 4)
	require.NoError(t, err)
	_, err = inv.Add(7, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(10), inv[7])
}

func TestInventory_RemoveInsufficient(t *testing.T) {
	inv := Inventory{7: 3}
	_, err := inv.Remove(7, 4)
	require.ErrorIs(t, err, ErrInsufficientQuantity)
	assert.Equal(t, int64(3), inv[7])

	_, err = inv.Remove(8, 1)
	require.ErrorIs(t, err, ErrPetNotInInventory)
}

func TestInventory_Reserve(t *testing.T) {
	inv := Inventory{1: 5}
	require.NoError(t, inv.Reserve(1, 5))
	assert.Equal(t, int64(0), inv[1])

	require.ErrorIs(t, inv.Reserve(1, 1), ErrInsufficientInventory)
	require.ErrorIs(t, inv.Reserve(2, 1), ErrInsufficientInventory)
	assert.Equal(t, int64(0), inv[1])
}

func TestInventory_StockRejectsNegative(t *testing.T) {
	inv := Inventory{}
	require.ErrorIs(t, inv.Stock(1, -1), ErrNegativeStock)
	require.NoError(t, inv.Stock(1, 0))
	assert.Equal(t, Inventory{1: 0}, inv)
}

func TestInventory_CloneIsIndependent(t *testing.T) {
	inv := Inventory{1: 1}
	clone := inv.Clone()
	clone[1] = 9
	assert.Equal(t, int64(1), inv[1])
}

func TestNewOrder(t *testing.T) {
	order, err := NewOrder(3, 2)
	require.NoError(t, err)
	assert.Equal(t, &Order{PetID: 3, Quantity: 2, Status: StatusPlaced}, order)

	_, err = NewOrder(3, 0)
	require.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestInventory_AddRejectsOverflow(t *testing.T) {
	inv := Inventory{}
	require.NoError(t, inv.Stock(1, math.MaxInt64))

	qty, err := inv.Add(1, 1)
	require.ErrorIs(t, err, ErrStockOverflow)
	assert.Equal(t, int64(math.MaxInt64), qty)
	assert.Equal(t, int64(math.MaxInt64), inv[1])

	require.NoError(t, inv.Stock(1, math.MaxInt64-1))
	qty, err = inv.Add(1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), qty)
}
