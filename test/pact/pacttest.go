//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "petstore-api"
	ConsumerName = "petstorectl"

	StatePetsBaseline = "pets baseline"
	StatePetExists    = "pet with id 1 exists"
	StatePetMissing   = "no pet with id 404"
	StateInventory    = "pet 1 stocked with 3"
	StateUsersBase    = "users baseline"
	StateUserExists   = "user pact-user exists"
)

const (
	ExistingPetID int64 = 1
	MissingPetID  int64 = 404
	StockedQty    int64 = 3

	UserPrimaryUsername = "pact-user"
	UserEmail           = "pact.user@example.com"
	UserPassword        = "pact-pass"

	ExamplePetName     = "Fluffy"
	ExamplePetCategory = "Cat"
	ExamplePetStatus   = "available"
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the pact file written by the consumer test.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExamplePetPayload is the create-pet body used by the interactions.
func ExamplePetPayload() map[string]any {
	return map[string]any{
		"name":     ExamplePetName,
		"category": ExamplePetCategory,
		"status":   ExamplePetStatus,
	}
}

// ExampleUserPayload is the registration body used by the interactions.
func ExampleUserPayload() map[string]any {
	return map[string]any{
		"username": UserPrimaryUsername,
		"email":    UserEmail,
		"password": UserPassword,
	}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
