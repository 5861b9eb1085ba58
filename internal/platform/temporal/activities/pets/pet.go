package pets

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"

	petstypes "github.com/Apurer/petstore-api/internal/domains/pets/application/types"
	"github.com/Apurer/petstore-api/internal/domains/pets/domain"
	petsports "github.com/Apurer/petstore-api/internal/domains/pets/ports"
)

// PersistPetActivityName persists a validated pet through the application service.
const PersistPetActivityName = "pets.activities.PersistPet"

// Activities groups activities that operate on the pets bounded context.
type Activities struct {
	service petsports.Service
}

// NewActivities wires the pets service into the Temporal activities bundle.
func NewActivities(service petsports.Service) *Activities {
	return &Activities{service: service}
}

// PersistPet stores a new pet. Validation failures are returned as non-retryable
// application errors so the caller can rebuild the original failure.
func (a *Activities) PersistPet(ctx context.Context, input petstypes.AddPetInput) (*domain.Pet, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		logger.Error("pet persist activity not initialized")
		return nil, errors.New("pet persist activity not initialized")
	}
	logger.Info("PersistPet activity started", "idempotencyKey", input.IdempotencyKey)
	pet, err := a.service.AddPet(ctx, input)
	if err != nil {
		logger.Error("PersistPet activity failed", "error", err)
		return nil, EncodeFailure(err)
	}
	logger.Info("PersistPet activity completed", "petId", pet.ID)
	return pet, nil
}
