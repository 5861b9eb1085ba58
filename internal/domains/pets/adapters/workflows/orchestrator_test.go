package workflows

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/petstore-api/internal/domains/pets/adapters/memory"
	"github.com/Apurer/petstore-api/internal/domains/pets/application"
	petstypes "github.com/Apurer/petstore-api/internal/domains/pets/application/types"
	"github.com/Apurer/petstore-api/internal/domains/pets/domain"
)

func strPtr(v string) *string { return &v }

func TestInlinePetWorkflows_CreatePet(t *testing.T) {
	o := NewInlinePetWorkflows(application.NewService(memory.NewRepository()))

	pet, err := o.CreatePet(context.Background(), petstypes.AddPetInput{Name: strPtr("Rex"), Category: strPtr("Dog"), Status: strPtr("available")})
	require.NoError(t, err)
	assert.Equal(t, int64(1), pet.ID)

	_, err = o.CreatePet(context.Background(), petstypes.AddPetInput{Name: strPtr("Rex"), Category: strPtr("Dog"), Status: strPtr("sold")})
	assert.ErrorIs(t, err, domain.ErrDuplicatePet)
}

func TestInlinePetWorkflows_NotConfigured(t *testing.T) {
	var o *InlinePetWorkflows
	_, err := o.CreatePet(context.Background(), petstypes.AddPetInput{})
	assert.Error(t, err)
}

func TestBuildPetCreationWorkflowID(t *testing.T) {
	first := buildPetCreationWorkflowID(petstypes.AddPetInput{IdempotencyKey: " key-1 "}, "trace")
	second := buildPetCreationWorkflowID(petstypes.AddPetInput{IdempotencyKey: "key-1"}, "other")
	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(first, "pet-creation-idem-"))

	anon := buildPetCreationWorkflowID(petstypes.AddPetInput{}, "trace")
	assert.True(t, strings.HasSuffix(anon, "-trace"))
	assert.NotEqual(t, anon, buildPetCreationWorkflowID(petstypes.AddPetInput{}, "trace"))
}

func TestWorkflowTraceComponent_Untraced(t *testing.T) {
	assert.Equal(t, "untraced", workflowTraceComponent(context.Background()))
}

func TestCreationMemo(t *testing.T) {
	memo := creationMemo(petstypes.AddPetInput{Name: strPtr("Rex"), Category: strPtr("Dog")})
	assert.Equal(t, map[string]interface{}{"petName": "Rex", "petCategory": "Dog"}, memo)
	assert.Empty(t, creationMemo(petstypes.AddPetInput{}))
}

func TestTemporalPetWorkflows_NotConfigured(t *testing.T) {
	var o *TemporalPetWorkflows
	_, err := o.CreatePet(context.Background(), petstypes.AddPetInput{})
	assert.Error(t, err)
}
