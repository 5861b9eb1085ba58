package ports

import (
	"context"

	types "github.com/Apurer/petstore-api/internal/domains/users/application/types"
	"github.com/Apurer/petstore-api/internal/domains/users/domain"
)

const LoginMessage = "Login successful"

// Ack acknowledges user operations that return no record.
type Ack struct {
	Message string `json:"message"`
}

// Service exposes user bounded context use cases to adapters.
type Service interface {
	CreateUser(ctx context.Context, input types.CreateUserInput) (*domain.User, error)
	Login(ctx context.Context, input types.LoginInput) (*Ack, error)
	GetByUsername(ctx context.Context, input types.UserIdentifier) (*domain.User, error)
	Update(ctx context.Context, input types.UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, input types.UserIdentifier) (*Ack, error)
}
