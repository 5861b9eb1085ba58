package ports

import (
	"context"

	"github.com/Apurer/petstore-api/internal/domains/store/domain"
)

// Repository persists inventory and orders. Quantity changes are applied atomically
// and report the domain failure when the stored state does not allow them.
type Repository interface {
	Inventory(ctx context.Context) (domain.Inventory, error)
	SetStock(ctx context.Context, petID, quantity int64) error
	AddStock(ctx context.Context, petID, quantity int64) (int64, error)
	RemoveStock(ctx context.Context, petID, quantity int64) (int64, error)
	// PlaceOrder reserves the order quantity and stores the order in one step.
	PlaceOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
	DeleteOrder(ctx context.Context, id int64) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
}

// PetCatalog answers whether a pet exists, so stock is only kept for known pets.
type PetCatalog interface {
	Exists(ctx context.Context, petID int64) (bool, error)
}
