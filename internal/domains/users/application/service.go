package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	types "github.com/Apurer/petstore-api/internal/domains/users/application/types"
	"github.com/Apurer/petstore-api/internal/domains/users/domain"
	"github.com/Apurer/petstore-api/internal/domains/users/ports"
)

// Service exposes user bounded context use cases.
type Service struct {
	mu   sync.Mutex
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateUser(ctx context.Context, input types.CreateUserInput) (*domain.User, error) {
	switch {
	case input.Username == nil:
		return nil, domain.ErrMissingUsername
	case input.Email == nil:
		return nil, domain.ErrMissingEmail
	case input.Password == nil:
		return nil, domain.ErrMissingPassword
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.repo.GetByUsername(ctx, *input.Username)
	if err == nil {
		return nil, domain.ErrDuplicateUsername
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, mapError("load user", err)
	}
	created, err := s.repo.Create(ctx, domain.NewUser(*input.Username, *input.Email, *input.Password))
	if err != nil {
		return nil, mapError("create user", err)
	}
	return created, nil
}

// Login checks the credentials against the stored plaintext password. No session is issued.
func (s *Service) Login(ctx context.Context, input types.LoginInput) (*ports.Ack, error) {
	if input.Username == "" {
		return nil, domain.ErrMissingUsername
	}
	if input.Password == "" {
		return nil, domain.ErrMissingPassword
	}
	user, err := s.repo.GetByUsername(ctx, input.Username)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, mapError("load user", err)
	}
	if !user.CheckPassword(input.Password) {
		return nil, domain.ErrInvalidCredentials
	}
	return &ports.Ack{Message: ports.LoginMessage}, nil
}

func (s *Service) GetByUsername(ctx context.Context, input types.UserIdentifier) (*domain.User, error) {
	user, err := s.repo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, mapError("load user", err)
	}
	return user, nil
}

// Update replaces email and password. The user must exist before the payload is checked.
func (s *Service) Update(ctx context.Context, input types.UpdateUserInput) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.repo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, mapError("load user", err)
	}
	if input.Email == nil {
		return nil, domain.ErrMissingEmail
	}
	if input.Password == nil {
		return nil, domain.ErrMissingPassword
	}
	user.ChangeContact(*input.Email, *input.Password)
	saved, err := s.repo.Save(ctx, user)
	if err != nil {
		return nil, mapError("save user", err)
	}
	return saved, nil
}

// Delete removes the user and succeeds whether or not it existed.
func (s *Service) Delete(ctx context.Context, input types.UserIdentifier) (*ports.Ack, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Delete(ctx, input.Username); err != nil {
		return nil, mapError("delete user", err)
	}
	return &ports.Ack{Message: fmt.Sprintf("User %s deleted", input.Username)}, nil
}

var _ ports.Service = (*Service)(nil)
