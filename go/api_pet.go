package petstoreserver

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pethttpmapper "github.com/Apurer/petstore-api/internal/domains/pets/adapters/http/mapper"
	petstypes "github.com/Apurer/petstore-api/internal/domains/pets/application/types"
	"github.com/Apurer/petstore-api/internal/domains/pets/domain"
	petsports "github.com/Apurer/petstore-api/internal/domains/pets/ports"
)

// IdempotencyKeyHeader lets clients retry pet creation safely.
const IdempotencyKeyHeader = "Idempotency-Key"

// PetAPI wires HTTP transport with the pets bounded context service and workflows.
type PetAPI struct {
	service   petsports.Service
	workflows petsports.WorkflowOrchestrator
}

// NewPetAPI creates a PetAPI backed by the provided service. When workflows is nil,
// pets are created directly through the service.
func NewPetAPI(service petsports.Service, workflows petsports.WorkflowOrchestrator) PetAPI {
	return PetAPI{service: service, workflows: workflows}
}

// Post /pet
// Add a new pet to the store
func (api *PetAPI) AddPet(c *gin.Context) {
	var payload pethttpmapper.CreatePet
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondMalformedBody(c, err)
		return
	}
	key := strings.TrimSpace(c.GetHeader(IdempotencyKeyHeader))
	saved, err := api.createPet(c.Request.Context(), pethttpmapper.ToAddPetInput(payload, key))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pethttpmapper.FromDomain(saved))
}

func (api *PetAPI) createPet(ctx context.Context, input petstypes.AddPetInput) (*domain.Pet, error) {
	if api.workflows != nil {
		return api.workflows.CreatePet(ctx, input)
	}
	return api.service.AddPet(ctx, input)
}

// Delete /pet/:petId
// Deletes a pet
func (api *PetAPI) DeletePet(c *gin.Context) {
	id, ok := idParam(c, "petId")
	if !ok {
		return
	}
	if err := api.service.Delete(c.Request.Context(), petstypes.PetIdentifier{ID: id}); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Get /pet/findByStatus
// Finds Pets by status
func (api *PetAPI) FindPetsByStatus(c *gin.Context) {
	result, err := api.service.FindByStatus(c.Request.Context(), petstypes.FindPetsByStatusInput{Status: c.Query("status")})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pethttpmapper.FromDomainList(result))
}

// Get /pet/:petId
// Find pet by ID
func (api *PetAPI) GetPetById(c *gin.Context) {
	id, ok := idParam(c, "petId")
	if !ok {
		return
	}
	pet, err := api.service.GetByID(c.Request.Context(), petstypes.PetIdentifier{ID: id})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pethttpmapper.FromDomain(pet))
}

// Put /pet/:petId
// Update an existing pet
func (api *PetAPI) UpdatePet(c *gin.Context) {
	id, ok := idParam(c, "petId")
	if !ok {
		return
	}
	var payload pethttpmapper.UpdatePet
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondMalformedBody(c, err)
		return
	}
	pet, err := api.service.UpdatePet(c.Request.Context(), pethttpmapper.ToUpdatePetInput(id, payload))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pethttpmapper.FromDomain(pet))
}

// Post /pet/:petId/uploadImage
// uploads an image
func (api *PetAPI) UploadFile(c *gin.Context) {
	id, ok := idParam(c, "petId")
	if !ok {
		return
	}
	input := petstypes.UploadImageInput{ID: id}
	if header, err := c.FormFile("file"); err == nil {
		input.HasFile = true
		input.Filename = header.Filename
	} else if form := c.Request.MultipartForm; form != nil {
		// parts sent without a filename are parsed as plain values
		_, input.HasFile = form.Value["file"]
	}
	result, err := api.service.UploadImage(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, Message{Message: result.Message})
}
