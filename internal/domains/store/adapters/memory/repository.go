package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/Apurer/petstore-api/internal/domains/store/domain"
	"github.com/Apurer/petstore-api/internal/domains/store/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository keeps inventory and orders in memory.
type Repository struct {
	mu        sync.RWMutex
	inventory domain.Inventory
	orders    map[int64]*domain.Order
	nextID    int64
}

func NewRepository() *Repository {
	return &Repository{
		inventory: domain.Inventory{},
		orders:    map[int64]*domain.Order{},
	}
}

func (r *Repository) Inventory(_ context.Context) (domain.Inventory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.inventory.Clone(), nil
}

func (r *Repository) SetStock(_ context.Context, petID, quantity int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inventory.Stock(petID, quantity)
}

func (r *Repository) AddStock(_ context.Context, petID, quantity int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inventory.Add(petID, quantity)
}

func (r *Repository) RemoveStock(_ context.Context, petID, quantity int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inventory.Remove(petID, quantity)
}

func (r *Repository) PlaceOrder(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.inventory.Reserve(order.PetID, order.Quantity); err != nil {
		return nil, err
	}
	r.nextID++
	clone := order.Clone()
	clone.ID = r.nextID
	clone.Status = domain.StatusPlaced
	r.orders[clone.ID] = clone
	return clone.Clone(), nil
}

func (r *Repository) GetOrder(_ context.Context, id int64) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return order.Clone(), nil
}

func (r *Repository) DeleteOrder(_ context.Context, id int64) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	delete(r.orders, id)
	return order, nil
}

func (r *Repository) ListOrders(_ context.Context) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Order, 0, len(r.orders))
	for _, order := range r.orders {
		list = append(list, order.Clone())
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}
