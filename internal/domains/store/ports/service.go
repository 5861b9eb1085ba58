package ports

import (
	"context"

	types "github.com/Apurer/petstore-api/internal/domains/store/application/types"
	"github.com/Apurer/petstore-api/internal/domains/store/domain"
)

// Ack is the acknowledgement returned by inventory mutations.
type Ack struct {
	Message string `json:"message"`
}

// DeletedOrder acknowledges a removed order and echoes it back.
type DeletedOrder struct {
	Message string        `json:"message"`
	Order   *domain.Order `json:"deleted_order"`
}

// Service exposes inventory and order use cases to adapters.
type Service interface {
	Inventory(ctx context.Context) (domain.Inventory, error)
	Stock(ctx context.Context, input types.StockInput) (*Ack, error)
	AddQuantity(ctx context.Context, input types.InventoryChangeInput) (*Ack, error)
	RemoveQuantity(ctx context.Context, input types.InventoryChangeInput) (*Ack, error)
	PlaceOrder(ctx context.Context, input types.PlaceOrderInput) (*domain.Order, error)
	GetOrder(ctx context.Context, input types.OrderIdentifier) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
	DeleteOrder(ctx context.Context, input types.OrderIdentifier) (*DeletedOrder, error)
}
