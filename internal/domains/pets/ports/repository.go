package ports

import (
	"context"

	"github.com/Apurer/petstore-api/internal/domains/pets/domain"
	"github.com/Apurer/petstore-api/internal/shared/failure"
)

var ErrNotFound = failure.New(failure.KindNotFound, "Pet not found")

// Repository persists pet aggregates. Implementations return pets ordered by ID.
type Repository interface {
	// Create assigns the next identifier and stores the pet. Identifiers are never reused.
	Create(ctx context.Context, pet *domain.Pet) (*domain.Pet, error)
	// Save overwrites an existing pet, returning ErrNotFound when it is absent.
	Save(ctx context.Context, pet *domain.Pet) (*domain.Pet, error)
	GetByID(ctx context.Context, id int64) (*domain.Pet, error)
	Delete(ctx context.Context, id int64) error
	FindByStatus(ctx context.Context, status domain.Status) ([]*domain.Pet, error)
	List(ctx context.Context) ([]*domain.Pet, error)
}
