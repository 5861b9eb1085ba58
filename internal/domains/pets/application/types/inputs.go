package types

import "github.com/Apurer/petstore-api/internal/shared/optional"

// AddPetInput carries the create-pet command. A nil field was absent or null in the request.
type AddPetInput struct {
	Name           *string `json:"name,omitempty"`
	Category       *string `json:"category,omitempty"`
	Status         *string `json:"status,omitempty"`
	IdempotencyKey string  `json:"idempotencyKey,omitempty"`
}

// UpdatePetInput carries a partial update. Only members set in the payload are applied.
type UpdatePetInput struct {
	ID       int64                  `json:"id"`
	Name     optional.Value[string] `json:"name"`
	Category optional.Value[string] `json:"category"`
	Status   optional.Value[string] `json:"status"`
}

// PetIdentifier addresses a single pet.
type PetIdentifier struct {
	ID int64 `json:"id"`
}

// FindPetsByStatusInput carries the raw status query parameter.
type FindPetsByStatusInput struct {
	Status string `json:"status"`
}

// UploadImageInput describes the multipart upload received for a pet.
type UploadImageInput struct {
	ID       int64  `json:"id"`
	HasFile  bool   `json:"hasFile"`
	Filename string `json:"filename"`
}
