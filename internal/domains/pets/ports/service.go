package ports

import (
	"context"

	pettypes "github.com/Apurer/petstore-api/internal/domains/pets/application/types"
	"github.com/Apurer/petstore-api/internal/domains/pets/domain"
)

// UploadMessage acknowledges an accepted image upload.
const UploadMessage = "File uploaded successfully"

// UploadImageResult describes the acknowledgement returned by the upload flow.
type UploadImageResult struct {
	Message string
}

// Service defines the pets use cases exposed to adapters (inbound/driving port).
type Service interface {
	AddPet(ctx context.Context, input pettypes.AddPetInput) (*domain.Pet, error)
	UpdatePet(ctx context.Context, input pettypes.UpdatePetInput) (*domain.Pet, error)
	FindByStatus(ctx context.Context, input pettypes.FindPetsByStatusInput) ([]*domain.Pet, error)
	GetByID(ctx context.Context, input pettypes.PetIdentifier) (*domain.Pet, error)
	Delete(ctx context.Context, input pettypes.PetIdentifier) error
	UploadImage(ctx context.Context, input pettypes.UploadImageInput) (*UploadImageResult, error)
	List(ctx context.Context) ([]*domain.Pet, error)
}
