package domain

import (
	"math"

	"github.com/Apurer/petstore-api/internal/shared/failure"
)

var (
	ErrMissingPetID    = failure.MissingField("petId")
	ErrMissingQuantity = failure.MissingField("quantity")
	ErrInvalidQuantity = failure.New(failure.KindInvalidQuantity, "Bad or missing data. Quantity must be a positive integer")
	ErrNegativeStock   = failure.New(failure.KindInvalidQuantity, "Bad or missing data. Quantity must not be negative")
	ErrStockOverflow   = failure.New(failure.KindInvalidQuantity, "Bad or missing data. Quantity exceeds the maximum stock")

	ErrPetNotInInventory     = failure.New(failure.KindKeyNotFound, "Pet not found in inventory")
	ErrInsufficientQuantity  = failure.New(failure.KindInsufficientQuantity, "Not enough quantity in inventory")
	ErrInsufficientInventory = failure.New(failure.KindInsufficientInventory, "Not enough inventory for the specified pet")

	// ErrPetNotFound is returned when stocking a pet the catalog does not know.
	ErrPetNotFound = failure.New(failure.KindNotFound, "Pet not found")
)

// Inventory maps a pet id to the quantity on hand. Entries only appear through Stock.
type Inventory map[int64]int64

// Clone returns an independent copy.
func (inv Inventory) Clone() Inventory {
	out := make(Inventory, len(inv))
	for id, qty := range inv {
		out[id] = qty
	}
	return out
}

// Stock sets the quantity for a pet, creating the entry when missing.
func (inv Inventory) Stock(petID, quantity int64) error {
	if quantity < 0 {
		return ErrNegativeStock
	}
	inv[petID] = quantity
	return nil
}

// Add increments an existing entry.
func (inv Inventory) Add(petID, quantity int64) (int64, error) {
	current, ok := inv[petID]
	if !ok {
		return 0, ErrPetNotInInventory
	}
	if err := CheckAdd(current, quantity); err != nil {
		return current, err
	}
	inv[petID] = current + quantity
	return inv[petID], nil
}

// CheckAdd rejects increments that would overflow the stored quantity.
func CheckAdd(current, quantity int64) error {
	if quantity > math.MaxInt64-current {
		return ErrStockOverflow
	}
	return nil
}

// Remove decrements an existing entry without letting it go negative.
func (inv Inventory) Remove(petID, quantity int64) (int64, error) {
	current, ok := inv[petID]
	if !ok {
		return 0, ErrPetNotInInventory
	}
	if current < quantity {
		return current, ErrInsufficientQuantity
	}
	inv[petID] = current - quantity
	return inv[petID], nil
}

// Reserve takes quantity out of stock for an order.
// A pet without an entry counts as having nothing in stock.
func (inv Inventory) Reserve(petID, quantity int64) error {
	current, ok := inv[petID]
	if !ok || current < quantity {
		return ErrInsufficientInventory
	}
	inv[petID] = current - quantity
	return nil
}

// ValidateQuantity accepts strictly positive amounts.
func ValidateQuantity(quantity int64) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	return nil
}
