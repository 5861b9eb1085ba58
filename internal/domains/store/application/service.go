package application

import (
	"context"
	"fmt"
	"sync"

	types "github.com/Apurer/petstore-api/internal/domains/store/application/types"
	"github.com/Apurer/petstore-api/internal/domains/store/domain"
	"github.com/Apurer/petstore-api/internal/domains/store/ports"
)

// Service orchestrates inventory and order use cases.
type Service struct {
	mu      sync.Mutex
	repo    ports.Repository
	catalog ports.PetCatalog
}

// NewService wires the store service. A nil catalog accepts any pet id when stocking.
func NewService(repo ports.Repository, catalog ports.PetCatalog) *Service {
	return &Service{repo: repo, catalog: catalog}
}

// Inventory returns a snapshot of quantities keyed by pet id.
func (s *Service) Inventory(ctx context.Context) (domain.Inventory, error) {
	inv, err := s.repo.Inventory(ctx)
	if err != nil {
		return nil, mapError("load inventory", err)
	}
	return inv, nil
}

// Stock sets the quantity on hand for an existing pet.
func (s *Service) Stock(ctx context.Context, input types.StockInput) (*ports.Ack, error) {
	if input.Quantity == nil {
		return nil, domain.ErrMissingQuantity
	}
	if *input.Quantity < 0 {
		return nil, domain.ErrNegativeStock
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.catalog != nil {
		exists, err := s.catalog.Exists(ctx, input.PetID)
		if err != nil {
			return nil, mapError("look up pet", err)
		}
		if !exists {
			return nil, domain.ErrPetNotFound
		}
	}
	if err := s.repo.SetStock(ctx, input.PetID, *input.Quantity); err != nil {
		return nil, mapError("set stock", err)
	}
	return &ports.Ack{Message: fmt.Sprintf("Inventory for pet %d set to %d", input.PetID, *input.Quantity)}, nil
}

// AddQuantity increments the stock of a pet already in the inventory.
func (s *Service) AddQuantity(ctx context.Context, input types.InventoryChangeInput) (*ports.Ack, error) {
	petID, quantity, err := changeArgs(input.PetID, input.Quantity)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.repo.AddStock(ctx, petID, quantity); err != nil {
		return nil, mapError("add stock", err)
	}
	return &ports.Ack{Message: fmt.Sprintf("Added %d to inventory for pet %d", quantity, petID)}, nil
}

// RemoveQuantity decrements the stock of a pet already in the inventory.
func (s *Service) RemoveQuantity(ctx context.Context, input types.InventoryChangeInput) (*ports.Ack, error) {
	petID, quantity, err := changeArgs(input.PetID, input.Quantity)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.repo.RemoveStock(ctx, petID, quantity); err != nil {
		return nil, mapError("remove stock", err)
	}
	return &ports.Ack{Message: fmt.Sprintf("Removed %d from inventory for pet %d", quantity, petID)}, nil
}

// PlaceOrder reserves stock and records a placed order.
func (s *Service) PlaceOrder(ctx context.Context, input types.PlaceOrderInput) (*domain.Order, error) {
	petID, quantity, err := changeArgs(input.PetID, input.Quantity)
	if err != nil {
		return nil, err
	}
	order, err := domain.NewOrder(petID, quantity)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	placed, err := s.repo.PlaceOrder(ctx, order)
	if err != nil {
		return nil, mapError("place order", err)
	}
	return placed, nil
}

// GetOrder loads one order by id.
func (s *Service) GetOrder(ctx context.Context, input types.OrderIdentifier) (*domain.Order, error) {
	order, err := s.repo.GetOrder(ctx, input.ID)
	if err != nil {
		return nil, mapError("load order", err)
	}
	return order, nil
}

// ListOrders returns every order by ascending id.
func (s *Service) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, mapError("list orders", err)
	}
	return orders, nil
}

// DeleteOrder removes an order. Other orders keep their ids.
func (s *Service) DeleteOrder(ctx context.Context, input types.OrderIdentifier) (*ports.DeletedOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deleted, err := s.repo.DeleteOrder(ctx, input.ID)
	if err != nil {
		return nil, mapError("delete order", err)
	}
	return &ports.DeletedOrder{Message: fmt.Sprintf("Order %d deleted", input.ID), Order: deleted}, nil
}

// changeArgs checks presence in petId, quantity order before the quantity itself.
func changeArgs(petID, quantity *int64) (int64, int64, error) {
	if petID == nil {
		return 0, 0, domain.ErrMissingPetID
	}
	if quantity == nil {
		return 0, 0, domain.ErrMissingQuantity
	}
	if err := domain.ValidateQuantity(*quantity); err != nil {
		return 0, 0, err
	}
	return *petID, *quantity, nil
}

var _ ports.Service = (*Service)(nil)
