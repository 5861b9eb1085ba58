package mapper

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/petstore-api/internal/domains/store/domain"
	"github.com/Apurer/petstore-api/internal/domains/store/ports"
)

func TestFromInventory_DecimalKeys(t *testing.T) {
	raw, err := json.Marshal(FromInventory(domain.Inventory{1: 3, 12: 0}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"1":3,"12":0}`, string(raw))
}

func TestFromDeletedOrder(t *testing.T) {
	deleted := &ports.DeletedOrder{
		Message: "Order 2 deleted",
		Order:   &domain.Order{ID: 2, PetID: 1, Quantity: 3, Status: domain.StatusPlaced},
	}
	raw, err := json.Marshal(FromDeletedOrder(deleted))
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"Order 2 deleted","deleted_order":{"orderId":2,"petId":1,"quantity":3,"status":"placed"}}`, string(raw))
}

func TestInventoryChange_AbsentMembersStayNil(t *testing.T) {
	var payload InventoryChange
	require.NoError(t, json.Unmarshal([]byte(`{"quantity":2}`), &payload))
	input := ToInventoryChangeInput(payload)
	assert.Nil(t, input.PetID)
	require.NotNil(t, input.Quantity)
	assert.Equal(t, int64(2), *input.Quantity)
}

func TestFromDomainOrders_Empty(t *testing.T) {
	raw, err := json.Marshal(FromDomainOrders(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}
