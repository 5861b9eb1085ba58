package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	pettypes "github.com/Apurer/petstore-api/internal/domains/pets/application/types"
	"github.com/Apurer/petstore-api/internal/domains/pets/domain"
	"github.com/Apurer/petstore-api/internal/domains/pets/ports"
	"github.com/Apurer/petstore-api/internal/shared/failure"
)

const tracerName = "github.com/Apurer/petstore-api/internal/domains/pets/adapters/observability/service"

// Service decorates the pets service with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

// WithLogger injects a slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithTracer injects a tracer implementation.
func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

// WithMeter injects the meter used to create service metrics instruments.
func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wires a decorator around the core service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  defaultLogger(),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = defaultLogger()
	}
	return s
}

// AddPet persists a new pet with instrumentation.
func (s *Service) AddPet(ctx context.Context, input pettypes.AddPetInput) (*domain.Pet, error) {
	ctx, span := s.startSpan(ctx, "Service.AddPet", attribute.Bool("pet.idempotent", input.IdempotencyKey != ""))
	defer span.End()

	s.logInfo(ctx, "adding pet", slog.String("name", deref(input.Name)), slog.String("category", deref(input.Category)))
	result, err := s.inner.AddPet(ctx, input)
	if err != nil {
		s.metrics.recordRejected(ctx, "add", err)
		return nil, s.handleError(ctx, span, err, "failed to add pet", slog.String("name", deref(input.Name)))
	}
	span.SetAttributes(attribute.Int64("pet.id", result.ID))
	s.metrics.recordCreated(ctx, result.Status)
	s.logInfo(ctx, "pet added", slog.Int64("pet.id", result.ID), slog.String("status", string(result.Status)))
	return result, nil
}

// UpdatePet applies a partial update.
func (s *Service) UpdatePet(ctx context.Context, input pettypes.UpdatePetInput) (*domain.Pet, error) {
	ctx, span := s.startSpan(ctx, "Service.UpdatePet", attribute.Int64("pet.id", input.ID))
	defer span.End()

	s.logInfo(ctx, "updating pet", slog.Int64("pet.id", input.ID),
		slog.Bool("name.set", input.Name.Set), slog.Bool("category.set", input.Category.Set), slog.Bool("status.set", input.Status.Set))
	result, err := s.inner.UpdatePet(ctx, input)
	if err != nil {
		s.metrics.recordRejected(ctx, "update", err)
		return nil, s.handleError(ctx, span, err, "failed to update pet", slog.Int64("pet.id", input.ID))
	}
	s.metrics.recordUpdated(ctx, result.Status)
	s.logInfo(ctx, "pet updated", slog.Int64("pet.id", result.ID), slog.String("status", string(result.Status)))
	return result, nil
}

// FindByStatus searches pets matching the requested status.
func (s *Service) FindByStatus(ctx context.Context, input pettypes.FindPetsByStatusInput) ([]*domain.Pet, error) {
	ctx, span := s.startSpan(ctx, "Service.FindByStatus", attribute.String("pet.status.requested", input.Status))
	defer span.End()

	s.logInfo(ctx, "finding pets by status", slog.String("status", input.Status))
	result, err := s.inner.FindByStatus(ctx, input)
	if err != nil {
		s.metrics.recordRejected(ctx, "find_by_status", err)
		return nil, s.handleError(ctx, span, err, "failed to find pets by status", slog.String("status", input.Status))
	}
	span.SetAttributes(attribute.Int("pet.result.count", len(result)))
	s.logInfo(ctx, "found pets by status", slog.Int("count", len(result)))
	return result, nil
}

// GetByID loads a single pet.
func (s *Service) GetByID(ctx context.Context, input pettypes.PetIdentifier) (*domain.Pet, error) {
	ctx, span := s.startSpan(ctx, "Service.GetByID", attribute.Int64("pet.id", input.ID))
	defer span.End()

	s.logInfo(ctx, "loading pet", slog.Int64("pet.id", input.ID))
	result, err := s.inner.GetByID(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load pet", slog.Int64("pet.id", input.ID))
	}
	return result, nil
}

// Delete removes a pet.
func (s *Service) Delete(ctx context.Context, input pettypes.PetIdentifier) error {
	ctx, span := s.startSpan(ctx, "Service.Delete", attribute.Int64("pet.id", input.ID))
	defer span.End()

	s.logInfo(ctx, "deleting pet", slog.Int64("pet.id", input.ID))
	if err := s.inner.Delete(ctx, input); err != nil {
		return s.handleError(ctx, span, err, "failed to delete pet", slog.Int64("pet.id", input.ID))
	}
	s.metrics.recordDeleted(ctx)
	s.logInfo(ctx, "pet deleted", slog.Int64("pet.id", input.ID))
	return nil
}

// UploadImage acknowledges an uploaded image.
func (s *Service) UploadImage(ctx context.Context, input pettypes.UploadImageInput) (*ports.UploadImageResult, error) {
	ctx, span := s.startSpan(ctx, "Service.UploadImage",
		attribute.Int64("pet.id", input.ID),
		attribute.String("asset.filename", input.Filename),
	)
	defer span.End()

	s.logInfo(ctx, "uploading image", slog.Int64("pet.id", input.ID), slog.String("filename", input.Filename))
	result, err := s.inner.UploadImage(ctx, input)
	if err != nil {
		s.metrics.recordRejected(ctx, "upload_image", err)
		return nil, s.handleError(ctx, span, err, "failed to upload image", slog.Int64("pet.id", input.ID))
	}
	s.metrics.recordUploaded(ctx)
	return result, nil
}

// List exposes all pets.
func (s *Service) List(ctx context.Context) ([]*domain.Pet, error) {
	ctx, span := s.startSpan(ctx, "Service.List")
	defer span.End()

	result, err := s.inner.List(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list pets")
	}
	span.SetAttributes(attribute.Int("pet.result.count", len(result)))
	return result, nil
}

func (s *Service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	tracer := s.tracer
	if tracer == nil {
		tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type serviceMetrics struct {
	petsCreated    metric.Int64Counter
	petsUpdated    metric.Int64Counter
	petsDeleted    metric.Int64Counter
	imagesUploaded metric.Int64Counter
	rejected       metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	petsCreated, _ := m.Int64Counter("pets.service.created", metric.WithDescription("Number of pets created"))
	petsUpdated, _ := m.Int64Counter("pets.service.updated", metric.WithDescription("Number of pets updated"))
	petsDeleted, _ := m.Int64Counter("pets.service.deleted", metric.WithDescription("Number of pets deleted"))
	imagesUploaded, _ := m.Int64Counter("pets.service.images_uploaded", metric.WithDescription("Number of acknowledged image uploads"))
	rejected, _ := m.Int64Counter("pets.service.rejected", metric.WithDescription("Number of pet operations rejected, by failure kind"))
	return serviceMetrics{
		petsCreated:    petsCreated,
		petsUpdated:    petsUpdated,
		petsDeleted:    petsDeleted,
		imagesUploaded: imagesUploaded,
		rejected:       rejected,
	}
}

func (m serviceMetrics) recordCreated(ctx context.Context, status domain.Status) {
	addCounter(ctx, m.petsCreated, 1, attribute.String("pet.status", string(status)))
}

func (m serviceMetrics) recordUpdated(ctx context.Context, status domain.Status) {
	addCounter(ctx, m.petsUpdated, 1, attribute.String("pet.status", string(status)))
}

func (m serviceMetrics) recordDeleted(ctx context.Context) {
	addCounter(ctx, m.petsDeleted, 1)
}

func (m serviceMetrics) recordUploaded(ctx context.Context) {
	addCounter(ctx, m.imagesUploaded, 1)
}

func (m serviceMetrics) recordRejected(ctx context.Context, operation string, err error) {
	kind, ok := failure.KindOf(err)
	if !ok {
		kind = "internal"
	}
	addCounter(ctx, m.rejected, 1, attribute.String("operation", operation), attribute.String("failure.kind", string(kind)))
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func addCounter(ctx context.Context, counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if counter == nil {
		return
	}
	counter.Add(ctx, value, metric.WithAttributes(attrs...))
}

var _ ports.Service = (*Service)(nil)
