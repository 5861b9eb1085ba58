package ports

import (
	"context"

	"github.com/Apurer/petstore-api/internal/domains/users/domain"
)

// Repository persists users keyed by username.
type Repository interface {
	// Create assigns the next id and fails with domain.ErrDuplicateUsername for a taken username.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Save(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	// Delete removes the user if present; deleting an unknown username is not an error.
	Delete(ctx context.Context, username string) error
}
