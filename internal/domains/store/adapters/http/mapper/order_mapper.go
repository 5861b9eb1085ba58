package mapper

import (
	"strconv"

	storetypes "github.com/Apurer/petstore-api/internal/domains/store/application/types"
	"github.com/Apurer/petstore-api/internal/domains/store/domain"
	"github.com/Apurer/petstore-api/internal/domains/store/ports"
)

// InventoryChange is the payload of the inventory add and remove endpoints.
type InventoryChange struct {
	PetID    *int64 `json:"petId"`
	Quantity *int64 `json:"quantity"`
}

// Stock is the payload of PUT /store/inventory/{petId}.
type Stock struct {
	Quantity *int64 `json:"quantity"`
}

// OrderRequest is the payload of POST /store/order.
type OrderRequest struct {
	PetID    *int64 `json:"petId"`
	Quantity *int64 `json:"quantity"`
}

// Order is the HTTP representation of a placed order.
type Order struct {
	OrderID  int64  `json:"orderId"`
	PetID    int64  `json:"petId"`
	Quantity int64  `json:"quantity"`
	Status   string `json:"status"`
}

// DeletedOrder acknowledges an order removal.
type DeletedOrder struct {
	Message      string `json:"message"`
	DeletedOrder Order  `json:"deleted_order"`
}

func ToInventoryChangeInput(payload InventoryChange) storetypes.InventoryChangeInput {
	return storetypes.InventoryChangeInput{PetID: payload.PetID, Quantity: payload.Quantity}
}

func ToStockInput(petID int64, payload Stock) storetypes.StockInput {
	return storetypes.StockInput{PetID: petID, Quantity: payload.Quantity}
}

func ToPlaceOrderInput(payload OrderRequest) storetypes.PlaceOrderInput {
	return storetypes.PlaceOrderInput{PetID: payload.PetID, Quantity: payload.Quantity}
}

// FromInventory keys the inventory by decimal pet id.
func FromInventory(inv domain.Inventory) map[string]int64 {
	result := make(map[string]int64, len(inv))
	for petID, quantity := range inv {
		result[strconv.FormatInt(petID, 10)] = quantity
	}
	return result
}

func FromDomainOrder(order *domain.Order) Order {
	if order == nil {
		return Order{}
	}
	return Order{
		OrderID:  order.ID,
		PetID:    order.PetID,
		Quantity: order.Quantity,
		Status:   string(order.Status),
	}
}

func FromDomainOrders(orders []*domain.Order) []Order {
	result := make([]Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, FromDomainOrder(order))
	}
	return result
}

func FromDeletedOrder(deleted *ports.DeletedOrder) DeletedOrder {
	if deleted == nil {
		return DeletedOrder{}
	}
	return DeletedOrder{Message: deleted.Message, DeletedOrder: FromDomainOrder(deleted.Order)}
}
