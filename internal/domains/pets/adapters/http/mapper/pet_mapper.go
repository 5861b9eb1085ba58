package mapper

import (
	petstypes "github.com/Apurer/petstore-api/internal/domains/pets/application/types"
	"github.com/Apurer/petstore-api/internal/domains/pets/domain"
	"github.com/Apurer/petstore-api/internal/shared/optional"
)

// Pet is the HTTP representation of a stored pet.
type Pet struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Status   string `json:"status"`
}

// CreatePet is the POST /pet payload. Absent and null members both decode to nil.
type CreatePet struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Status   *string `json:"status"`
}

// UpdatePet is the PUT /pet/{id} payload. Members keep track of whether they were sent.
type UpdatePet struct {
	Name     optional.Value[string] `json:"name"`
	Category optional.Value[string] `json:"category"`
	Status   optional.Value[string] `json:"status"`
}

// ToAddPetInput converts the create payload into the application command.
func ToAddPetInput(payload CreatePet, idempotencyKey string) petstypes.AddPetInput {
	return petstypes.AddPetInput{
		Name:           payload.Name,
		Category:       payload.Category,
		Status:         payload.Status,
		IdempotencyKey: idempotencyKey,
	}
}

// ToUpdatePetInput converts the update payload into the application command.
func ToUpdatePetInput(id int64, payload UpdatePet) petstypes.UpdatePetInput {
	return petstypes.UpdatePetInput{
		ID:       id,
		Name:     payload.Name,
		Category: payload.Category,
		Status:   payload.Status,
	}
}

// FromDomain converts a pet into its transport representation.
func FromDomain(pet *domain.Pet) Pet {
	if pet == nil {
		return Pet{}
	}
	return Pet{
		ID:       pet.ID,
		Name:     pet.Name,
		Category: pet.Category,
		Status:   string(pet.Status),
	}
}

// FromDomainList converts pets, always returning a non-nil slice so empty results encode as [].
func FromDomainList(pets []*domain.Pet) []Pet {
	result := make([]Pet, 0, len(pets))
	for _, pet := range pets {
		result = append(result, FromDomain(pet))
	}
	return result
}
