package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/Apurer/petstore-api/internal/domains/pets/domain"
	"github.com/Apurer/petstore-api/internal/domains/pets/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory implementation used for demos/tests.
type Repository struct {
	mu     sync.RWMutex
	pets   map[int64]*domain.Pet
	nextID int64
}

// NewRepository constructs an empty in-memory store.
func NewRepository() *Repository {
	return &Repository{pets: map[int64]*domain.Pet{}}
}

// Create stores a new pet under the next identifier.
func (r *Repository) Create(_ context.Context, pet *domain.Pet) (*domain.Pet, error) {
	if pet == nil {
		return nil, errors.New("cannot create nil pet")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	stored := pet.Clone()
	stored.ID = r.nextID
	r.pets[stored.ID] = stored
	return stored.Clone(), nil
}

// Save replaces an existing pet.
func (r *Repository) Save(_ context.Context, pet *domain.Pet) (*domain.Pet, error) {
	if pet == nil {
		return nil, errors.New("cannot save nil pet")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.pets[pet.ID]; !ok {
		return nil, ports.ErrNotFound
	}
	r.pets[pet.ID] = pet.Clone()
	return pet.Clone(), nil
}

// GetByID fetches a pet if present.
func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pet, ok := r.pets[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return pet.Clone(), nil
}

// Delete removes a pet.
func (r *Repository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pets[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.pets, id)
	return nil
}

// FindByStatus returns pets with an exactly matching status.
func (r *Repository) FindByStatus(_ context.Context, status domain.Status) ([]*domain.Pet, error) {
	return r.collect(func(p *domain.Pet) bool { return p.Status == status }), nil
}

// List returns all pets.
func (r *Repository) List(_ context.Context) ([]*domain.Pet, error) {
	return r.collect(func(*domain.Pet) bool { return true }), nil
}

func (r *Repository) collect(match func(*domain.Pet) bool) []*domain.Pet {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*domain.Pet, 0, len(r.pets))
	for _, pet := range r.pets {
		if match(pet) {
			result = append(result, pet.Clone())
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
