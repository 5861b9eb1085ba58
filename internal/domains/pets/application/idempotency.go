package application

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	pettypes "github.com/Apurer/petstore-api/internal/domains/pets/application/types"
)

type normalizedAddPetInput struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Status   *string `json:"status"`
}

// FingerprintAddPet builds a deterministic hash of the add-pet request payload (excluding the idempotency key).
func FingerprintAddPet(input pettypes.AddPetInput) (string, error) {
	payload, err := json.Marshal(normalizedAddPetInput{
		Name:     input.Name,
		Category: input.Category,
		Status:   input.Status,
	})
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}
