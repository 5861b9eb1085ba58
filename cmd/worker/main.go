package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	"github.com/Apurer/petstore-api/internal/app/api"
	petsobs "github.com/Apurer/petstore-api/internal/domains/pets/adapters/observability"
	petsapp "github.com/Apurer/petstore-api/internal/domains/pets/application"
	platformobservability "github.com/Apurer/petstore-api/internal/platform/observability"
	petactivities "github.com/Apurer/petstore-api/internal/platform/temporal/activities/pets"
	petworkflows "github.com/Apurer/petstore-api/internal/platform/temporal/workflows/pets"
)

func main() {
	ctx := context.Background()
	const serviceName = "petstore-worker"
	cfg, err := api.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	instruments, shutdown, err := platformobservability.Init(ctx, platformobservability.Settings{
		ServiceName: serviceName,
		LogLevel:    cfg.LogLevel,
	})
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	repos, closeRepos, err := api.OpenRepositories(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open repositories", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeRepos()
	if err := repos.RequireShared(); err != nil {
		logger.Error("refusing to start worker", slog.String("error", err.Error()))
		closeRepos()
		os.Exit(1)
	}
	petService := petsobs.New(
		petsapp.NewService(repos.Pets, petsapp.WithIdempotencyStore(repos.Idempotency)),
		petsobs.WithLogger(logger),
		petsobs.WithTracer(instruments.Tracer("internal.pets.application")),
		petsobs.WithMeter(instruments.Meter("internal.pets.application")),
	)
	petActivities := petactivities.NewActivities(petService)

	cfg.Temporal.Disabled = false
	temporalClient, err := api.ConnectTemporal(cfg.Temporal, instruments, "temporal-worker")
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, petworkflows.PetCreationTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(petworkflows.PetCreationWorkflow, workflow.RegisterOptions{Name: petworkflows.PetCreationWorkflowName})
	w.RegisterActivityWithOptions(petActivities.PersistPet, activity.RegisterOptions{Name: petactivities.PersistPetActivityName})

	logger.Info("worker listening", slog.String("taskQueue", petworkflows.PetCreationTaskQueue), slog.String("namespace", cfg.Temporal.Namespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}
