package workflows

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"

	petstypes "github.com/Apurer/petstore-api/internal/domains/pets/application/types"
	"github.com/Apurer/petstore-api/internal/domains/pets/domain"
	"github.com/Apurer/petstore-api/internal/domains/pets/ports"
	petactivities "github.com/Apurer/petstore-api/internal/platform/temporal/activities/pets"
	petworkflows "github.com/Apurer/petstore-api/internal/platform/temporal/workflows/pets"
)

var (
	_ ports.WorkflowOrchestrator = (*TemporalPetWorkflows)(nil)
	_ ports.WorkflowOrchestrator = (*InlinePetWorkflows)(nil)
)

// DefaultCreationTimeout caps a whole creation run, retries included.
const DefaultCreationTimeout = 2 * time.Minute

// TemporalPetWorkflows starts pet creation on a Temporal cluster and waits for the result,
// so POST /pet answers the same way whether or not Temporal is enabled.
type TemporalPetWorkflows struct {
	client    client.Client
	taskQueue string
	timeout   time.Duration
}

// NewTemporalPetWorkflows wires a Temporal client into the orchestrator.
func NewTemporalPetWorkflows(c client.Client) *TemporalPetWorkflows {
	return &TemporalPetWorkflows{client: c, taskQueue: petworkflows.PetCreationTaskQueue, timeout: DefaultCreationTimeout}
}

// CreatePet starts the creation workflow and waits for the persisted pet.
// Failures raised by the activity come back as the original classified failure.
func (o *TemporalPetWorkflows) CreatePet(ctx context.Context, input petstypes.AddPetInput) (*domain.Pet, error) {
	if o == nil || o.client == nil {
		return nil, errors.New("temporal pet workflows not configured")
	}
	traceComponent := workflowTraceComponent(ctx)
	workflowID := buildPetCreationWorkflowID(input, traceComponent)
	options := client.StartWorkflowOptions{
		ID:                       workflowID,
		TaskQueue:                o.taskQueue,
		WorkflowExecutionTimeout: o.timeout,
		Memo:                     creationMemo(input),
	}
	run, err := o.client.ExecuteWorkflow(
		ctx,
		options,
		petworkflows.PetCreationWorkflowName,
		petworkflows.PetCreationWorkflowInput{Command: input, TraceID: traceComponent},
	)
	if err != nil {
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if !errors.As(err, &alreadyStarted) || strings.TrimSpace(input.IdempotencyKey) == "" {
			return nil, err
		}
		run = o.client.GetWorkflow(ctx, workflowID, alreadyStarted.RunId)
	}
	var pet domain.Pet
	if err := run.Get(ctx, &pet); err != nil {
		return nil, petactivities.DecodeFailure(err)
	}
	return &pet, nil
}

// InlinePetWorkflows executes the service directly without Temporal.
type InlinePetWorkflows struct {
	service ports.Service
}

// NewInlinePetWorkflows wraps the pets service for synchronous execution.
func NewInlinePetWorkflows(service ports.Service) *InlinePetWorkflows {
	return &InlinePetWorkflows{service: service}
}

// CreatePet delegates to the application service.
func (o *InlinePetWorkflows) CreatePet(ctx context.Context, input petstypes.AddPetInput) (*domain.Pet, error) {
	if o == nil || o.service == nil {
		return nil, errors.New("inline pet workflows not configured")
	}
	return o.service.AddPet(ctx, input)
}

func buildPetCreationWorkflowID(input petstypes.AddPetInput, traceComponent string) string {
	if key := strings.TrimSpace(input.IdempotencyKey); key != "" {
		return fmt.Sprintf("pet-creation-idem-%s", hashIdempotencyKey(key))
	}
	return fmt.Sprintf("pet-creation-%s-%s", uuid.NewString(), traceComponent)
}

// creationMemo makes runs searchable by the requested pet in the Temporal UI.
func creationMemo(input petstypes.AddPetInput) map[string]interface{} {
	memo := map[string]interface{}{}
	if input.Name != nil {
		memo["petName"] = *input.Name
	}
	if input.Category != nil {
		memo["petCategory"] = *input.Category
	}
	return memo
}

func hashIdempotencyKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:8])
}

func workflowTraceComponent(ctx context.Context) string {
	if traceID := workflowTraceID(ctx); traceID != "" {
		return traceID
	}
	return "untraced"
}

func workflowTraceID(ctx context.Context) string {
	spanCtx := oteltrace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() {
		return ""
	}
	return spanCtx.TraceID().String()
}
