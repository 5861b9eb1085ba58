package harness

import (
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

var (
	categories = []string{"Dog", "Cat", "Fish", "Bird", "Turtle", "Hamster"}
	statuses   = []string{"available", "pending", "sold"}
)

const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// PetData is a pet payload with every member present.
type PetData struct {
	Name     string
	Category string
	Status   string
}

// Fields renders the payload for the client.
func (p PetData) Fields() map[string]any {
	return map[string]any{"name": p.Name, "category": p.Category, "status": p.Status}
}

// RandomPet returns an eight letter name with a random category and status.
func RandomPet() PetData {
	var name strings.Builder
	for i := 0; i < 8; i++ {
		name.WriteByte(letters[rand.Intn(len(letters))])
	}
	return PetData{
		Name:     name.String(),
		Category: categories[rand.Intn(len(categories))],
		Status:   statuses[rand.Intn(len(statuses))],
	}
}

// RandomUsername returns a username that will not collide across runs.
func RandomUsername() string {
	return "user-" + uuid.NewString()[:8]
}
