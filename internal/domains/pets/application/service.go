package application

import (
	"context"
	"errors"
	"strings"
	"sync"

	types "github.com/Apurer/petstore-api/internal/domains/pets/application/types"
	"github.com/Apurer/petstore-api/internal/domains/pets/domain"
	"github.com/Apurer/petstore-api/internal/domains/pets/ports"
	"github.com/Apurer/petstore-api/internal/shared/optional"
)

// Service orchestrates the pets bounded context use cases.
// Mutations are serialized so validation always observes the state it mutates.
type Service struct {
	mu          sync.Mutex
	repo        ports.Repository
	idempotency ports.IdempotencyStore
}

// Option customises the service.
type Option func(*Service)

// WithIdempotencyStore enables replay of AddPet requests carrying an idempotency key.
func WithIdempotencyStore(store ports.IdempotencyStore) Option {
	return func(s *Service) {
		s.idempotency = store
	}
}

// NewService wires the pets service with its dependencies.
func NewService(repo ports.Repository, opts ...Option) *Service {
	s := &Service{repo: repo}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// AddPet validates and persists a new pet.
func (s *Service) AddPet(ctx context.Context, input types.AddPetInput) (*domain.Pet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.TrimSpace(input.IdempotencyKey)
	var fingerprint string
	if key != "" && s.idempotency != nil {
		hash, err := FingerprintAddPet(input)
		if err != nil {
			return nil, mapError("fingerprint pet", err)
		}
		fingerprint = hash
		replayed, err := s.replay(ctx, key, fingerprint)
		if err != nil || replayed != nil {
			return replayed, err
		}
	}

	pet, err := buildPet(input)
	if err != nil {
		return nil, err
	}
	if err := s.ensureUnique(ctx, pet.Name, pet.Category, 0); err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, pet)
	if err != nil {
		return nil, mapError("create pet", err)
	}
	if fingerprint != "" {
		record := ports.IdempotencyRecord{Key: key, RequestHash: fingerprint, PetID: created.ID}
		if _, err := s.idempotency.Save(ctx, record); err != nil {
			return nil, mapError("save idempotency key", err)
		}
	}
	return created, nil
}

// UpdatePet applies the supplied fields to an existing pet.
func (s *Service) UpdatePet(ctx context.Context, input types.UpdatePetInput) (*domain.Pet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pet, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, mapError("load pet", err)
	}
	if err := applyName(pet, input.Name); err != nil {
		return nil, err
	}
	if err := applyCategory(pet, input.Category); err != nil {
		return nil, err
	}
	if err := applyStatus(pet, input.Status); err != nil {
		return nil, err
	}
	if err := s.ensureUnique(ctx, pet.Name, pet.Category, pet.ID); err != nil {
		return nil, err
	}
	saved, err := s.repo.Save(ctx, pet)
	if err != nil {
		return nil, mapError("save pet", err)
	}
	return saved, nil
}

// FindByStatus lists pets carrying one of the recognised statuses.
func (s *Service) FindByStatus(ctx context.Context, input types.FindPetsByStatusInput) ([]*domain.Pet, error) {
	status, err := domain.ParseStatusFilter(input.Status)
	if err != nil {
		return nil, err
	}
	result, err := s.repo.FindByStatus(ctx, status)
	if err != nil {
		return nil, mapError("find pets by status", err)
	}
	return result, nil
}

// GetByID loads a single pet.
func (s *Service) GetByID(ctx context.Context, input types.PetIdentifier) (*domain.Pet, error) {
	pet, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, mapError("load pet", err)
	}
	return pet, nil
}

// Delete removes a pet.
func (s *Service) Delete(ctx context.Context, input types.PetIdentifier) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Delete(ctx, input.ID); err != nil {
		return mapError("delete pet", err)
	}
	return nil
}

// UploadImage acknowledges an image upload for an existing pet. The file content is not stored.
func (s *Service) UploadImage(ctx context.Context, input types.UploadImageInput) (*ports.UploadImageResult, error) {
	if _, err := s.repo.GetByID(ctx, input.ID); err != nil {
		return nil, mapError("load pet", err)
	}
	if !input.HasFile {
		return nil, domain.ErrNoFilePart
	}
	if input.Filename == "" {
		return nil, domain.ErrNoSelectedFile
	}
	return &ports.UploadImageResult{Message: ports.UploadMessage}, nil
}

// List returns every pet ordered by identifier.
func (s *Service) List(ctx context.Context) ([]*domain.Pet, error) {
	result, err := s.repo.List(ctx)
	if err != nil {
		return nil, mapError("list pets", err)
	}
	return result, nil
}

// replay returns the pet created by an earlier request with the same key, or nil when the key is new.
func (s *Service) replay(ctx context.Context, key, fingerprint string) (*domain.Pet, error) {
	record, err := s.idempotency.Get(ctx, key)
	if err != nil {
		return nil, mapError("load idempotency key", err)
	}
	if record == nil {
		return nil, nil
	}
	if record.RequestHash != fingerprint {
		return nil, ports.ErrIdempotencyConflict
	}
	pet, err := s.repo.GetByID(ctx, record.PetID)
	if errors.Is(err, ports.ErrNotFound) {
		// the replayed pet was deleted; treat the request as new
		if err := s.idempotency.Forget(ctx, key); err != nil {
			return nil, mapError("forget idempotency key", err)
		}
		return nil, nil
	}
	if err != nil {
		return nil, mapError("load replayed pet", err)
	}
	return pet, nil
}

// ensureUnique rejects a (name, category) pair already held by a pet other than excludeID.
func (s *Service) ensureUnique(ctx context.Context, name, category string, excludeID int64) error {
	pets, err := s.repo.List(ctx)
	if err != nil {
		return mapError("list pets", err)
	}
	for _, existing := range pets {
		if existing.ID != excludeID && existing.SameIdentity(name, category) {
			return domain.ErrDuplicatePet
		}
	}
	return nil
}

func buildPet(input types.AddPetInput) (*domain.Pet, error) {
	if input.Name == nil {
		return nil, domain.ErrMissingName
	}
	if input.Category == nil {
		return nil, domain.ErrMissingCategory
	}
	if input.Status == nil {
		return nil, domain.ErrMissingStatus
	}
	return domain.NewPet(*input.Name, *input.Category, *input.Status)
}

func applyName(pet *domain.Pet, value optional.Value[string]) error {
	if !value.Set {
		return nil
	}
	if value.Null {
		return domain.ErrMissingName
	}
	return pet.Rename(value.Value)
}

func applyCategory(pet *domain.Pet, value optional.Value[string]) error {
	if !value.Set {
		return nil
	}
	if value.Null {
		return domain.ErrMissingCategory
	}
	return pet.Recategorize(value.Value)
}

func applyStatus(pet *domain.Pet, value optional.Value[string]) error {
	if !value.Set {
		return nil
	}
	if value.Null {
		return domain.ErrMissingStatus
	}
	return pet.UpdateStatus(domain.Status(value.Value))
}

var _ ports.Service = (*Service)(nil)
