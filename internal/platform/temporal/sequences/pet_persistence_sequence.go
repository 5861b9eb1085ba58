package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	petstypes "github.com/Apurer/petstore-api/internal/domains/pets/application/types"
	"github.com/Apurer/petstore-api/internal/domains/pets/domain"
	petactivities "github.com/Apurer/petstore-api/internal/platform/temporal/activities/pets"
)

// PersistOptions bounds the persist activity. Classified failures are non-retryable,
// so retries only cover infrastructure errors.
var PersistOptions = workflow.ActivityOptions{
	StartToCloseTimeout: time.Minute,
	RetryPolicy: &temporal.RetryPolicy{
		InitialInterval:    2 * time.Second,
		BackoffCoefficient: 2.0,
		MaximumInterval:    10 * time.Second,
		MaximumAttempts:    5,
	},
}

// RunPetPersistenceSequence executes the activities needed to persist a pet.
func RunPetPersistenceSequence(ctx workflow.Context, input petstypes.AddPetInput) (*domain.Pet, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("pet persistence sequence started")

	var pet domain.Pet
	err := workflow.ExecuteActivity(workflow.WithActivityOptions(ctx, PersistOptions), petactivities.PersistPetActivityName, input).Get(ctx, &pet)
	if err != nil {
		logger.Error("pet persistence sequence failed", "error", err)
		return nil, err
	}
	logger.Info("pet persistence sequence persisted", "petId", pet.ID)
	return &pet, nil
}
