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

	usertypes "github.com/Apurer/petstore-api/internal/domains/users/application/types"
	userdomain "github.com/Apurer/petstore-api/internal/domains/users/domain"
	userports "github.com/Apurer/petstore-api/internal/domains/users/ports"
	"github.com/Apurer/petstore-api/internal/shared/failure"
)

const tracerName = "github.com/Apurer/petstore-api/internal/domains/users/adapters/observability/service"

// Service decorates the user service with tracing, logging, and metrics.
type Service struct {
	inner   userports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) { s.tracer = tr }
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) { s.metrics = newServiceMetrics(m) }
}

// New wraps the core user service.
func New(inner userports.Service, opts ...Option) userports.Service {
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

func (s *Service) CreateUser(ctx context.Context, input usertypes.CreateUserInput) (*userdomain.User, error) {
	username := deref(input.Username)
	ctx, span := s.tracer.Start(ctx, "UserService.CreateUser", trace.WithAttributes(attribute.String("user.username", username)))
	defer span.End()
	s.logInfo(ctx, "creating user", slog.String("username", username))
	result, err := s.inner.CreateUser(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create user", slog.String("username", username))
	}
	span.SetAttributes(attribute.Int64("user.id", result.ID))
	s.metrics.recordCreated(ctx)
	s.logInfo(ctx, "user created", slog.String("username", result.Username), slog.Int64("user.id", result.ID))
	return result, nil
}

func (s *Service) GetByUsername(ctx context.Context, input usertypes.UserIdentifier) (*userdomain.User, error) {
	ctx, span := s.tracer.Start(ctx, "UserService.GetByUsername", trace.WithAttributes(attribute.String("user.username", input.Username)))
	defer span.End()
	result, err := s.inner.GetByUsername(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load user", slog.String("username", input.Username))
	}
	return result, nil
}

func (s *Service) Delete(ctx context.Context, input usertypes.UserIdentifier) (*userports.Ack, error) {
	ctx, span := s.tracer.Start(ctx, "UserService.Delete", trace.WithAttributes(attribute.String("user.username", input.Username)))
	defer span.End()
	result, err := s.inner.Delete(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to delete user", slog.String("username", input.Username))
	}
	s.metrics.recordDeleted(ctx)
	return result, nil
}

func (s *Service) Update(ctx context.Context, input usertypes.UpdateUserInput) (*userdomain.User, error) {
	ctx, span := s.tracer.Start(ctx, "UserService.Update", trace.WithAttributes(attribute.String("user.username", input.Username)))
	defer span.End()
	result, err := s.inner.Update(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update user", slog.String("username", input.Username))
	}
	s.metrics.recordUpdated(ctx)
	return result, nil
}

// Login never logs the supplied password.
func (s *Service) Login(ctx context.Context, input usertypes.LoginInput) (*userports.Ack, error) {
	ctx, span := s.tracer.Start(ctx, "UserService.Login", trace.WithAttributes(attribute.String("user.username", input.Username)))
	defer span.End()
	result, err := s.inner.Login(ctx, input)
	if err != nil {
		s.metrics.recordLoginFailure(ctx, err)
		return nil, s.handleError(ctx, span, err, "login failed", slog.String("username", input.Username))
	}
	s.metrics.recordLogin(ctx)
	return result, nil
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
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

type serviceMetrics struct {
	usersCreated  metric.Int64Counter
	usersUpdated  metric.Int64Counter
	usersDeleted  metric.Int64Counter
	logins        metric.Int64Counter
	loginFailures metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	created, _ := m.Int64Counter("users.service.created", metric.WithDescription("Number of users created"))
	updated, _ := m.Int64Counter("users.service.updated", metric.WithDescription("Number of users updated"))
	deleted, _ := m.Int64Counter("users.service.deleted", metric.WithDescription("Number of users deleted"))
	logins, _ := m.Int64Counter("users.service.logins", metric.WithDescription("Number of successful logins"))
	loginFailures, _ := m.Int64Counter("users.service.login_failures", metric.WithDescription("Number of rejected logins, by failure kind"))
	return serviceMetrics{usersCreated: created, usersUpdated: updated, usersDeleted: deleted, logins: logins, loginFailures: loginFailures}
}

func (m serviceMetrics) recordCreated(ctx context.Context) {
	if m.usersCreated != nil {
		m.usersCreated.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordUpdated(ctx context.Context) {
	if m.usersUpdated != nil {
		m.usersUpdated.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordDeleted(ctx context.Context) {
	if m.usersDeleted != nil {
		m.usersDeleted.Add(ctx, 1)
	}
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (m serviceMetrics) recordLogin(ctx context.Context) {
	if m.logins != nil {
		m.logins.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordLoginFailure(ctx context.Context, err error) {
	if m.loginFailures == nil {
		return
	}
	kind, ok := failure.KindOf(err)
	if !ok {
		kind = "internal"
	}
	m.loginFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("failure.kind", string(kind))))
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

var _ userports.Service = (*Service)(nil)
