package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stockOf(t *testing.T, productID string, quantity int) *ProductInventory {
	t.Helper()
	stock, err := NewProductInventory(productID, quantity)
	require.NoError(t, err)
	return stock
}

func TestNewProductInventory_Validation(t *testing.T) {
	_, err := NewProductInventory("", 10)
	assert.Error(t, err)

	_, err = NewProductInventory("laptop", -1)
	assert.Error(t, err)
}

func TestReserve_DecrementsEveryItem(t *testing.T) {
	stocks := map[string]*ProductInventory{
		"laptop": stockOf(t, "laptop", 10),
		"mouse":  stockOf(t, "mouse", 5),
	}

	err := Reserve(stocks, []ReservationItem{
		{ProductID: "laptop", Quantity: 2},
		{ProductID: "mouse", Quantity: 5},
	})
	require.NoError(t, err)

	assert.Equal(t, 8, stocks["laptop"].AvailableQuantity)
	assert.Equal(t, 0, stocks["mouse"].AvailableQuantity)
}

func TestReserve_InsufficientItemLeavesAllUntouched(t *testing.T) {
	stocks := map[string]*ProductInventory{
		"laptop": stockOf(t, "laptop", 10),
		"mouse":  stockOf(t, "mouse", 1),
	}

	err := Reserve(stocks, []ReservationItem{
		{ProductID: "laptop", Quantity: 2},
		{ProductID: "mouse", Quantity: 5},
	})
	assert.ErrorIs(t, err, ErrInsufficientStock)

	assert.Equal(t, 10, stocks["laptop"].AvailableQuantity)
	assert.Equal(t, 1, stocks["mouse"].AvailableQuantity)
}

func TestReserve_DuplicateLinesCountAgainstCombinedTotal(t *testing.T) {
	stocks := map[string]*ProductInventory{
		"laptop": stockOf(t, "laptop", 5),
	}

	err := Reserve(stocks, []ReservationItem{
		{ProductID: "laptop", Quantity: 3},
		{ProductID: "laptop", Quantity: 3},
	})
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 5, stocks["laptop"].AvailableQuantity)
}

func TestReserve_DuplicateLinesWithinStockDecrementOnce(t *testing.T) {
	stocks := map[string]*ProductInventory{
		"laptop": stockOf(t, "laptop", 6),
	}

	err := Reserve(stocks, []ReservationItem{
		{ProductID: "laptop", Quantity: 3},
		{ProductID: "laptop", Quantity: 3},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, stocks["laptop"].AvailableQuantity)
	assert.Equal(t, 2, stocks["laptop"].Version.Value)
}

func TestReserve_UnknownProductFailsReservation(t *testing.T) {
	stocks := map[string]*ProductInventory{
		"laptop": stockOf(t, "laptop", 10),
	}

	err := Reserve(stocks, []ReservationItem{
		{ProductID: "laptop", Quantity: 1},
		{ProductID: "keyboard", Quantity: 1},
	})
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 10, stocks["laptop"].AvailableQuantity)
}

func TestReserve_ZeroStockFails(t *testing.T) {
	stocks := map[string]*ProductInventory{
		"laptop": stockOf(t, "laptop", 0),
	}

	err := Reserve(stocks, []ReservationItem{{ProductID: "laptop", Quantity: 1}})
	assert.ErrorIs(t, err, ErrInsufficientStock)
}

func TestSetQuantity(t *testing.T) {
	stock := stockOf(t, "laptop", 2)

	require.NoError(t, stock.SetQuantity(7))
	assert.Equal(t, 7, stock.AvailableQuantity)
	assert.Equal(t, 2, stock.Version.Value)

	assert.Error(t, stock.SetQuantity(-1))
	assert.Equal(t, 7, stock.AvailableQuantity)
}
