package domain

import "github.com/Apurer/petstore-api/internal/shared/failure"

// Status enumerates order progression. Orders are only ever placed.
type Status string

const StatusPlaced Status = "placed"

var ErrOrderNotFound = failure.New(failure.KindNotFound, "Order not found")

// Order is a purchase of a quantity of one pet.
type Order struct {
	ID       int64  `json:"orderId"`
	PetID    int64  `json:"petId"`
	Quantity int64  `json:"quantity"`
	Status   Status `json:"status"`
}

// NewOrder builds an unsaved order in the placed state.
func NewOrder(petID, quantity int64) (*Order, error) {
	if err := ValidateQuantity(quantity); err != nil {
		return nil, err
	}
	return &Order{PetID: petID, Quantity: quantity, Status: StatusPlaced}, nil
}

// Clone returns an independent copy.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	clone := *o
	return &clone
}
