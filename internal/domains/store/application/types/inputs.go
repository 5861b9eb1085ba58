package types

// InventoryChangeInput adjusts the quantity of an existing inventory entry.
// Nil members were absent from the request.
type InventoryChangeInput struct {
	PetID    *int64 `json:"petId,omitempty"`
	Quantity *int64 `json:"quantity,omitempty"`
}

// StockInput sets the quantity on hand for a pet.
type StockInput struct {
	PetID    int64  `json:"petId"`
	Quantity *int64 `json:"quantity,omitempty"`
}

// PlaceOrderInput carries an order request.
type PlaceOrderInput struct {
	PetID    *int64 `json:"petId,omitempty"`
	Quantity *int64 `json:"quantity,omitempty"`
}

// OrderIdentifier addresses a single order.
type OrderIdentifier struct {
	ID int64 `json:"orderId"`
}
