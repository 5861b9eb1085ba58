//go:build pact
// +build pact

package provider_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/pact-foundation/pact-go/v2/models"
	pactprovider "github.com/pact-foundation/pact-go/v2/provider"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/petstore-api/internal/app/api"
	petstypes "github.com/Apurer/petstore-api/internal/domains/pets/application/types"
	storetypes "github.com/Apurer/petstore-api/internal/domains/store/application/types"
	usertypes "github.com/Apurer/petstore-api/internal/domains/users/application/types"
	platformobservability "github.com/Apurer/petstore-api/internal/platform/observability"
	pacttest "github.com/Apurer/petstore-api/test/pact"
)

func TestPetstoreProviderPact(t *testing.T) {
	app := newContractProviderApp(t)
	pactFile := filepath.ToSlash(pacttest.PactFile(t))
	if _, err := os.Stat(pactFile); errors.Is(err, os.ErrNotExist) {
		t.Fatalf("pact file not found at %s - run the pact consumer tests first", pactFile)
	} else {
		require.NoError(t, err)
	}

	reset := func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
		app.reset()
		return nil, app.requireNoPets()
	}
	stateHandlers := models.StateHandlers{
		pacttest.StatePetsBaseline: reset,
		pacttest.StatePetMissing:   reset,
		pacttest.StateUsersBase:    reset,
		pacttest.StatePetExists: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset()
			if setup {
				return nil, app.seedPet()
			}
			return nil, nil
		},
		pacttest.StateInventory: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset()
			if !setup {
				return nil, nil
			}
			if err := app.seedPet(); err != nil {
				return nil, err
			}
			quantity := pacttest.StockedQty
			_, err := app.services().Store.Stock(context.Background(), storetypes.StockInput{PetID: pacttest.ExistingPetID, Quantity: &quantity})
			return nil, err
		},
		pacttest.StateUserExists: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset()
			if !setup {
				return nil, nil
			}
			username, email, password := pacttest.UserPrimaryUsername, pacttest.UserEmail, pacttest.UserPassword
			_, err := app.services().Users.CreateUser(context.Background(), usertypes.CreateUserInput{Username: &username, Email: &email, Password: &password})
			return nil, err
		},
	}

	verifier := pactprovider.NewVerifier()
	err := verifier.VerifyProvider(t, pactprovider.VerifyRequest{
		ProviderBaseURL: app.server.URL,
		Provider:        pacttest.ProviderName,
		PactFiles:       []string{pactFile},
		StateHandlers:   stateHandlers,
		BeforeEach: func() error {
			app.reset()
			return nil
		},
	})
	require.NoError(t, err)
}

type deployment struct {
	services api.Services
	handler  http.Handler
}

// contractProviderApp serves a fresh in-memory deployment per provider state.
type contractProviderApp struct {
	current atomic.Pointer[deployment]
	server  *httptest.Server
}

func newContractProviderApp(t testing.TB) *contractProviderApp {
	t.Helper()
	app := &contractProviderApp{}
	app.reset()
	app.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.current.Load().handler.ServeHTTP(w, r)
	}))
	t.Cleanup(app.server.Close)
	return app
}

func (a *contractProviderApp) reset() {
	cfg := api.DefaultConfig()
	cfg.GinMode = "test"
	instruments := platformobservability.Discard()
	services := api.NewServices(api.MemoryRepositories(), instruments)
	a.current.Store(&deployment{
		services: services,
		handler:  api.NewRouter(cfg, services, instruments, nil),
	})
}

func (a *contractProviderApp) services() api.Services {
	return a.current.Load().services
}

// requireNoPets guards states that expect pet id 1 to be the next one assigned.
func (a *contractProviderApp) requireNoPets() error {
	pets, err := a.services().Pets.List(context.Background())
	if err != nil {
		return err
	}
	if len(pets) != 0 {
		return fmt.Errorf("provider state expects no pets, found %d", len(pets))
	}
	return nil
}

func (a *contractProviderApp) seedPet() error {
	name, category, status := pacttest.ExamplePetName, pacttest.ExamplePetCategory, pacttest.ExamplePetStatus
	_, err := a.services().Pets.AddPet(context.Background(), petstypes.AddPetInput{Name: &name, Category: &category, Status: &status})
	return err
}
