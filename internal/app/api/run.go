package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"gorm.io/gorm"

	petstoreserver "github.com/Apurer/petstore-api/go"

	petsmemory "github.com/Apurer/petstore-api/internal/domains/pets/adapters/memory"
	petsobs "github.com/Apurer/petstore-api/internal/domains/pets/adapters/observability"
	petspostgres "github.com/Apurer/petstore-api/internal/domains/pets/adapters/persistence/postgres"
	petsworkflows "github.com/Apurer/petstore-api/internal/domains/pets/adapters/workflows"
	petsapp "github.com/Apurer/petstore-api/internal/domains/pets/application"
	petsports "github.com/Apurer/petstore-api/internal/domains/pets/ports"

	storecatalog "github.com/Apurer/petstore-api/internal/domains/store/adapters/catalog"
	storememory "github.com/Apurer/petstore-api/internal/domains/store/adapters/memory"
	storeobs "github.com/Apurer/petstore-api/internal/domains/store/adapters/observability"
	storepostgres "github.com/Apurer/petstore-api/internal/domains/store/adapters/persistence/postgres"
	storeapp "github.com/Apurer/petstore-api/internal/domains/store/application"
	storeports "github.com/Apurer/petstore-api/internal/domains/store/ports"

	usermemory "github.com/Apurer/petstore-api/internal/domains/users/adapters/memory"
	userobs "github.com/Apurer/petstore-api/internal/domains/users/adapters/observability"
	userpostgres "github.com/Apurer/petstore-api/internal/domains/users/adapters/persistence/postgres"
	userapp "github.com/Apurer/petstore-api/internal/domains/users/application"
	userports "github.com/Apurer/petstore-api/internal/domains/users/ports"

	"github.com/Apurer/petstore-api/internal/platform/metrics"
	"github.com/Apurer/petstore-api/internal/platform/migrations"
	platformobservability "github.com/Apurer/petstore-api/internal/platform/observability"
	platformpostgres "github.com/Apurer/petstore-api/internal/platform/postgres"
)

const serviceName = "petstore-api"

// ErrProcessLocalRepositories is returned when a component needs state shared between
// the API and the worker but only in-memory repositories are configured.
var ErrProcessLocalRepositories = errors.New("temporal pet workflows require postgres repositories; in-memory state is not shared between processes")

// Repositories holds one store per bounded context.
type Repositories struct {
	Pets        petsports.Repository
	Idempotency petsports.IdempotencyStore
	Store       storeports.Repository
	Users       userports.Repository
	// Shared reports state visible to other processes, which the Temporal worker needs.
	Shared      bool
}

// RequireShared rejects process-local repositories.
func (r Repositories) RequireShared() error {
	if !r.Shared {
		return ErrProcessLocalRepositories
	}
	return nil
}

// MemoryRepositories keeps all state in process.
func MemoryRepositories() Repositories {
	return Repositories{
		Pets:        petsmemory.NewRepository(),
		Idempotency: petsmemory.NewIdempotencyStore(),
		Store:       storememory.NewRepository(),
		Users:       usermemory.NewRepository(),
	}
}

// PostgresRepositories stores every context in the given database. The schema must be migrated.
func PostgresRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Pets:        petspostgres.NewRepository(db),
		Idempotency: petspostgres.NewIdempotencyStore(db),
		Store:       storepostgres.NewRepository(db),
		Users:       userpostgres.NewRepository(db),
		Shared:      true,
	}
}

// Services are the instrumented use cases served over HTTP.
type Services struct {
	Pets      petsports.Service
	Workflows petsports.WorkflowOrchestrator
	Store     storeports.Service
	Users     userports.Service
}

// NewServices builds the application services over repos and decorates them with instruments.
// Pets are created inline until a workflow orchestrator is assigned.
func NewServices(repos Repositories, instruments *platformobservability.Instruments) Services {
	logger := instruments.Logger
	pets := petsobs.New(
		petsapp.NewService(repos.Pets, petsapp.WithIdempotencyStore(repos.Idempotency)),
		petsobs.WithLogger(logger),
		petsobs.WithTracer(instruments.Tracer("internal.pets.application")),
		petsobs.WithMeter(instruments.Meter("internal.pets.application")),
	)
	store := storeobs.New(
		storeapp.NewService(repos.Store, storecatalog.NewPets(repos.Pets)),
		storeobs.WithLogger(logger),
		storeobs.WithTracer(instruments.Tracer("internal.store.application")),
		storeobs.WithMeter(instruments.Meter("internal.store.application")),
	)
	users := userobs.New(
		userapp.NewService(repos.Users),
		userobs.WithLogger(logger),
		userobs.WithTracer(instruments.Tracer("internal.users.application")),
		userobs.WithMeter(instruments.Meter("internal.users.application")),
	)
	return Services{
		Pets:      pets,
		Workflows: petsworkflows.NewInlinePetWorkflows(pets),
		Store:     store,
		Users:     users,
	}
}

// NewRouter assembles the gin engine with tracing, request ids, access logs and, when
// httpMetrics is non-nil, Prometheus instrumentation.
func NewRouter(cfg Config, services Services, instruments *platformobservability.Instruments, httpMetrics *metrics.HTTP) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(
		gin.Recovery(),
		otelgin.Middleware(serviceName, otelgin.WithTracerProvider(instruments.TracerProvider)),
		petstoreserver.RequestID(),
		petstoreserver.AccessLog(instruments.Logger),
	)
	var metricsHandler http.Handler
	if httpMetrics != nil {
		router.Use(httpMetrics.Middleware())
		metricsHandler = httpMetrics.Handler()
	}
	return petstoreserver.NewRouterWithGinEngine(router, petstoreserver.ApiHandleFunctions{
		PetAPI:     petstoreserver.NewPetAPI(services.Pets, services.Workflows),
		StoreAPI:   petstoreserver.NewStoreAPI(services.Store),
		UserAPI:    petstoreserver.NewUserAPI(services.Users),
		ServiceAPI: petstoreserver.NewServiceAPI(metricsHandler),
	})
}

// Run boots the Petstore HTTP API and serves until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	instruments, shutdown, err := platformobservability.Init(ctx, platformobservability.Settings{
		ServiceName: serviceName,
		LogLevel:    cfg.LogLevel,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	repos, closeRepos, err := OpenRepositories(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeRepos()

	services := NewServices(repos, instruments)
	closeWorkflows := EnableTemporalWorkflows(&services, repos, cfg.Temporal, instruments)
	defer closeWorkflows()

	var httpMetrics *metrics.HTTP
	if cfg.Metrics {
		httpMetrics = metrics.NewHTTP()
	}
	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           NewRouter(cfg, services, instruments, httpMetrics),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Petstore API listening", slog.String("addr", server.Addr))
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		logger.Error("Petstore API server exited", slog.String("addr", server.Addr), slog.String("error", err.Error()))
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.Info("Petstore API shutting down")
	return server.Shutdown(shutdownCtx)
}

// EnableTemporalWorkflows routes pet creation through Temporal when the worker can see the
// same repositories as the API. Otherwise services keep creating pets inline. The returned
// func closes the Temporal client, if one was dialled.
func EnableTemporalWorkflows(services *Services, repos Repositories, cfg TemporalConfig, instruments *platformobservability.Instruments) func() {
	logger := instruments.Logger
	if err := repos.RequireShared(); err != nil {
		if !cfg.Disabled {
			logger.Info("Temporal workflows skipped, running inline AddPet", slog.String("reason", err.Error()))
		}
		return func() {}
	}
	temporalClient, err := ConnectTemporal(cfg, instruments, "temporal-client")
	if err != nil {
		logger.Warn("Temporal workflows unavailable, running inline AddPet", slog.String("error", err.Error()))
		return func() {}
	}
	services.Workflows = petsworkflows.NewTemporalPetWorkflows(temporalClient)
	logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.Namespace))
	return temporalClient.Close
}

// OpenRepositories prefers PostgreSQL and falls back to memory when no database is reachable.
func OpenRepositories(ctx context.Context, cfg Config, logger *slog.Logger) (Repositories, func(), error) {
	db, cleanup := platformpostgres.ConnectOrFallback(ctx, cfg.PostgresDSN, logger)
	if db == nil {
		return MemoryRepositories(), cleanup, nil
	}
	if err := migrations.Run(db); err != nil {
		cleanup()
		return Repositories{}, func() {}, fmt.Errorf("failed to migrate postgres schema: %w", err)
	}
	logger.Info("repositories configured with postgres")
	return PostgresRepositories(db), cleanup, nil
}

// ConnectTemporal dials the Temporal cluster with tracing and structured logging attached.
func ConnectTemporal(cfg TemporalConfig, instruments *platformobservability.Instruments, tracerName string) (client.Client, error) {
	if cfg.Disabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(temporalotel.TracerOptions{
		Tracer: instruments.Tracer(tracerName),
	})
	if err != nil {
		return nil, err
	}
	options := client.Options{
		HostPort:  cfg.Address,
		Namespace: cfg.Namespace,
		Logger:    workerlog.NewStructuredLogger(instruments.Logger),
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}
