package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/petstore-api/internal/domains/store/domain"
)

func TestRepository_PlaceOrderReservesStock(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()
	require.NoError(t, repo.SetStock(ctx, 1, 5))

	order, err := repo.PlaceOrder(ctx, &domain.Order{PetID: 1, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(1), order.ID)
	assert.Equal(t, domain.StatusPlaced, order.Status)

	inv, err := repo.Inventory(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Inventory{1: 3}, inv)
}

func TestRepository_PlaceOrderInsufficientLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()
	require.NoError(t, repo.SetStock(ctx, 1, 1))

	_, err := repo.PlaceOrder(ctx, &domain.Order{PetID: 1, Quantity: 2})
	require.ErrorIs(t, err, domain.ErrInsufficientInventory)

	inv, _ := repo.Inventory(ctx)
	assert.Equal(t, int64(1), inv[1])
	orders, _ := repo.ListOrders(ctx)
	assert.Empty(t, orders)
}

func TestRepository_OrderIDsSurviveDeletes(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()
	require.NoError(t, repo.SetStock(ctx, 1, 10))
	for i := 0; i < 3; i++ {
		_, err := repo.PlaceOrder(ctx, &domain.Order{PetID: 1, Quantity: 1})
		require.NoError(t, err)
	}

	deleted, err := repo.DeleteOrder(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted.ID)

	_, err = repo.GetOrder(ctx, 2)
	require.ErrorIs(t, err, domain.ErrOrderNotFound)
	third, err := repo.GetOrder(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), third.ID)

	next, err := repo.PlaceOrder(ctx, &domain.Order{PetID: 1, Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(4), next.ID)

	orders, err := repo.ListOrders(ctx)
	require.NoError(t, err)
	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	assert.Equal(t, []int64{1, 3, 4}, ids)
}

func TestRepository_InventorySnapshotIsCopy(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()
	require.NoError(t, repo.SetStock(ctx, 1, 1))

	inv, _ := repo.Inventory(ctx)
	inv[1] = 100

	again, _ := repo.Inventory(ctx)
	assert.Equal(t, int64(1), again[1])
}
