package petstoreserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	storehttpmapper "github.com/Apurer/petstore-api/internal/domains/store/adapters/http/mapper"
	storetypes "github.com/Apurer/petstore-api/internal/domains/store/application/types"
	storeports "github.com/Apurer/petstore-api/internal/domains/store/ports"
)

// StoreAPI exposes inventory and order endpoints.
type StoreAPI struct {
	service storeports.Service
}

// NewStoreAPI creates a StoreAPI backed by the provided service.
func NewStoreAPI(service storeports.Service) StoreAPI {
	return StoreAPI{service: service}
}

// Get /store/inventory
// Returns pet inventories by pet id
func (api *StoreAPI) GetInventory(c *gin.Context) {
	inventory, err := api.service.Inventory(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, storehttpmapper.FromInventory(inventory))
}

// Put /store/inventory/:petId
// Sets the quantity on hand for a pet
func (api *StoreAPI) StockInventory(c *gin.Context) {
	petID, ok := idParam(c, "petId")
	if !ok {
		return
	}
	var payload storehttpmapper.Stock
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondMalformedBody(c, err)
		return
	}
	ack, err := api.service.Stock(c.Request.Context(), storehttpmapper.ToStockInput(petID, payload))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, Message{Message: ack.Message})
}

// Post /store/inventory/add
// Adds quantity to an inventory entry
func (api *StoreAPI) AddInventory(c *gin.Context) {
	var payload storehttpmapper.InventoryChange
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondMalformedBody(c, err)
		return
	}
	ack, err := api.service.AddQuantity(c.Request.Context(), storehttpmapper.ToInventoryChangeInput(payload))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, Message{Message: ack.Message})
}

// Post /store/inventory/remove
// Removes quantity from an inventory entry
func (api *StoreAPI) RemoveInventory(c *gin.Context) {
	var payload storehttpmapper.InventoryChange
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondMalformedBody(c, err)
		return
	}
	ack, err := api.service.RemoveQuantity(c.Request.Context(), storehttpmapper.ToInventoryChangeInput(payload))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, Message{Message: ack.Message})
}

// Post /store/order
// Place an order for a pet
func (api *StoreAPI) PlaceOrder(c *gin.Context) {
	var payload storehttpmapper.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondMalformedBody(c, err)
		return
	}
	order, err := api.service.PlaceOrder(c.Request.Context(), storehttpmapper.ToPlaceOrderInput(payload))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, storehttpmapper.FromDomainOrder(order))
}

// Get /store/order/:orderId
// Find purchase order by ID
func (api *StoreAPI) GetOrderById(c *gin.Context) {
	id, ok := idParam(c, "orderId")
	if !ok {
		return
	}
	order, err := api.service.GetOrder(c.Request.Context(), storetypes.OrderIdentifier{ID: id})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, storehttpmapper.FromDomainOrder(order))
}

// Get /store/orders
// Lists all orders
func (api *StoreAPI) ListOrders(c *gin.Context) {
	orders, err := api.service.ListOrders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, storehttpmapper.FromDomainOrders(orders))
}

// Delete /store/order/:orderId
// Delete purchase order by ID
func (api *StoreAPI) DeleteOrder(c *gin.Context) {
	id, ok := idParam(c, "orderId")
	if !ok {
		return
	}
	deleted, err := api.service.DeleteOrder(c.Request.Context(), storetypes.OrderIdentifier{ID: id})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, storehttpmapper.FromDeletedOrder(deleted))
}
