package harness

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/Apurer/petstore-api/internal/clients/http/petstore"
)

// URLNotFound is the detail returned for unknown routes and malformed path ids.
const URLNotFound = "The requested URL was not found on the server. If you entered the URL manually please check your spelling and try again."

// Pet is a created pet as returned by the API.
type Pet struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Status   string `json:"status"`
}

// Order is a placed order as returned by the API.
type Order struct {
	OrderID  int64  `json:"orderId"`
	PetID    int64  `json:"petId"`
	Quantity int64  `json:"quantity"`
	Status   string `json:"status"`
}

// Env is shared by the scenarios of a run. It remembers what they created so the
// runner can remove it afterwards.
type Env struct {
	Client *petstore.Client

	mu    sync.Mutex
	pets  []int64
	users []string
}

// NewEnv wraps a client.
func NewEnv(client *petstore.Client) *Env {
	return &Env{Client: client}
}

// CreatePet adds a pet and schedules it for cleanup.
func (e *Env) CreatePet(ctx context.Context, data PetData) (Pet, error) {
	resp, err := e.Client.AddPet(ctx, data.Fields(), "")
	if err != nil {
		return Pet{}, err
	}
	if resp.Status != http.StatusCreated {
		return Pet{}, fmt.Errorf("create pet: status %d: %s", resp.Status, resp.String())
	}
	var pet Pet
	if err := resp.Decode(&pet); err != nil {
		return Pet{}, fmt.Errorf("decode created pet: %w", err)
	}
	e.TrackPet(pet.ID)
	return pet, nil
}

// StockedPet creates a pet and sets its inventory to quantity.
func (e *Env) StockedPet(ctx context.Context, quantity int64) (Pet, error) {
	pet, err := e.CreatePet(ctx, RandomPet())
	if err != nil {
		return Pet{}, err
	}
	resp, err := e.Client.StockInventory(ctx, pet.ID, petstore.Fields{"quantity": quantity})
	if err != nil {
		return Pet{}, err
	}
	if resp.Status != http.StatusOK {
		return Pet{}, fmt.Errorf("stock pet %d: status %d: %s", pet.ID, resp.Status, resp.String())
	}
	return pet, nil
}

// CreateUser registers a random user and schedules it for cleanup.
func (e *Env) CreateUser(ctx context.Context, password string) (string, error) {
	username := RandomUsername()
	resp, err := e.Client.CreateUser(ctx, petstore.Fields{
		"username": username,
		"email":    username + "@example.com",
		"password": password,
	})
	if err != nil {
		return "", err
	}
	if resp.Status != http.StatusCreated {
		return "", fmt.Errorf("create user: status %d: %s", resp.Status, resp.String())
	}
	e.TrackUser(username)
	return username, nil
}

func (e *Env) TrackPet(id int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pets = append(e.pets, id)
}

func (e *Env) TrackUser(username string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.users = append(e.users, username)
}

// Cleanup deletes every tracked pet and user. Pets already gone are not an error.
func (e *Env) Cleanup(ctx context.Context) error {
	e.mu.Lock()
	pets, users := e.pets, e.users
	e.pets, e.users = nil, nil
	e.mu.Unlock()

	for _, id := range pets {
		resp, err := e.Client.DeletePet(ctx, strconv.FormatInt(id, 10))
		if err != nil {
			return err
		}
		if resp.Status != http.StatusNoContent && resp.Status != http.StatusNotFound {
			return fmt.Errorf("cleanup pet %d: status %d", id, resp.Status)
		}
	}
	for _, username := range users {
		if _, err := e.Client.DeleteUser(ctx, username); err != nil {
			return err
		}
	}
	return nil
}

// check turns a Verify verdict into an error.
func check(resp *petstore.Response, err error, expectedStatus int, expected []any, unexpected ...any) error {
	if err != nil {
		return err
	}
	if verdict := Verify(resp.String(), resp.Status, expectedStatus, expected, unexpected); verdict != NoMismatch {
		return fmt.Errorf("%s\nbody: %s", verdict, resp.String())
	}
	return nil
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func expect(values ...any) []any {
	return values
}
