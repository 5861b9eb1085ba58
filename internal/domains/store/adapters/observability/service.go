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

	storetypes "github.com/Apurer/petstore-api/internal/domains/store/application/types"
	storedomain "github.com/Apurer/petstore-api/internal/domains/store/domain"
	storeports "github.com/Apurer/petstore-api/internal/domains/store/ports"
	"github.com/Apurer/petstore-api/internal/shared/failure"
)

const tracerName = "github.com/Apurer/petstore-api/internal/domains/store/adapters/observability/service"

// Service decorates the store service with tracing, logging, and metrics.
type Service struct {
	inner   storeports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core store service.
func New(inner storeports.Service, opts ...Option) storeports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
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
	return s
}

func (s *Service) Inventory(ctx context.Context) (storedomain.Inventory, error) {
	ctx, span := s.tracer.Start(ctx, "StoreService.Inventory")
	defer span.End()

	result, err := s.inner.Inventory(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load inventory")
	}
	span.SetAttributes(attribute.Int("inventory.entries", len(result)))
	return result, nil
}

func (s *Service) Stock(ctx context.Context, input storetypes.StockInput) (*storeports.Ack, error) {
	ctx, span := s.tracer.Start(ctx, "StoreService.Stock", trace.WithAttributes(attribute.Int64("inventory.pet_id", input.PetID)))
	defer span.End()

	s.logInfo(ctx, "stocking pet", slog.Int64("pet.id", input.PetID), slog.Any("quantity", input.Quantity))
	result, err := s.inner.Stock(ctx, input)
	if err != nil {
		s.metrics.recordRejected(ctx, "stock", err)
		return nil, s.handleError(ctx, span, err, "failed to stock pet", slog.Int64("pet.id", input.PetID))
	}
	s.metrics.recordInventoryChange(ctx, "stock")
	s.logInfo(ctx, result.Message)
	return result, nil
}

func (s *Service) AddQuantity(ctx context.Context, input storetypes.InventoryChangeInput) (*storeports.Ack, error) {
	ctx, span := s.tracer.Start(ctx, "StoreService.AddQuantity")
	defer span.End()

	result, err := s.inner.AddQuantity(ctx, input)
	if err != nil {
		s.metrics.recordRejected(ctx, "add", err)
		return nil, s.handleError(ctx, span, err, "failed to add inventory", changeAttrs(input.PetID, input.Quantity)...)
	}
	s.metrics.recordInventoryChange(ctx, "add")
	s.logInfo(ctx, result.Message)
	return result, nil
}

func (s *Service) RemoveQuantity(ctx context.Context, input storetypes.InventoryChangeInput) (*storeports.Ack, error) {
	ctx, span := s.tracer.Start(ctx, "StoreService.RemoveQuantity")
	defer span.End()

	result, err := s.inner.RemoveQuantity(ctx, input)
	if err != nil {
		s.metrics.recordRejected(ctx, "remove", err)
		return nil, s.handleError(ctx, span, err, "failed to remove inventory", changeAttrs(input.PetID, input.Quantity)...)
	}
	s.metrics.recordInventoryChange(ctx, "remove")
	s.logInfo(ctx, result.Message)
	return result, nil
}

func (s *Service) PlaceOrder(ctx context.Context, input storetypes.PlaceOrderInput) (*storedomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "StoreService.PlaceOrder")
	defer span.End()

	s.logInfo(ctx, "placing order", changeAttrs(input.PetID, input.Quantity)...)
	result, err := s.inner.PlaceOrder(ctx, input)
	if err != nil {
		s.metrics.recordRejected(ctx, "place_order", err)
		return nil, s.handleError(ctx, span, err, "failed to place order", changeAttrs(input.PetID, input.Quantity)...)
	}
	span.SetAttributes(attribute.Int64("order.id", result.ID), attribute.Int64("order.pet_id", result.PetID))
	s.metrics.recordPlaced(ctx, result.Status)
	s.logInfo(ctx, "order placed", slog.Int64("order.id", result.ID), slog.String("status", string(result.Status)))
	return result, nil
}

func (s *Service) GetOrder(ctx context.Context, input storetypes.OrderIdentifier) (*storedomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "StoreService.GetOrder", trace.WithAttributes(attribute.Int64("order.id", input.ID)))
	defer span.End()

	result, err := s.inner.GetOrder(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load order", slog.Int64("order.id", input.ID))
	}
	return result, nil
}

func (s *Service) ListOrders(ctx context.Context) ([]*storedomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "StoreService.ListOrders")
	defer span.End()

	result, err := s.inner.ListOrders(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list orders")
	}
	span.SetAttributes(attribute.Int("order.result.count", len(result)))
	return result, nil
}

func (s *Service) DeleteOrder(ctx context.Context, input storetypes.OrderIdentifier) (*storeports.DeletedOrder, error) {
	ctx, span := s.tracer.Start(ctx, "StoreService.DeleteOrder", trace.WithAttributes(attribute.Int64("order.id", input.ID)))
	defer span.End()

	s.logInfo(ctx, "deleting order", slog.Int64("order.id", input.ID))
	result, err := s.inner.DeleteOrder(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to delete order", slog.Int64("order.id", input.ID))
	}
	s.metrics.recordDeleted(ctx)
	s.logInfo(ctx, "order deleted", slog.Int64("order.id", input.ID))
	return result, nil
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
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

func changeAttrs(petID, quantity *int64) []slog.Attr {
	var attrs []slog.Attr
	if petID != nil {
		attrs = append(attrs, slog.Int64("pet.id", *petID))
	}
	if quantity != nil {
		attrs = append(attrs, slog.Int64("quantity", *quantity))
	}
	return attrs
}

type serviceMetrics struct {
	ordersPlaced     metric.Int64Counter
	ordersDeleted    metric.Int64Counter
	inventoryChanges metric.Int64Counter
	rejected         metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	ordersPlaced, _ := m.Int64Counter("store.service.orders_placed", metric.WithDescription("Number of orders placed"))
	ordersDeleted, _ := m.Int64Counter("store.service.orders_deleted", metric.WithDescription("Number of orders deleted"))
	inventoryChanges, _ := m.Int64Counter("store.service.inventory_changes", metric.WithDescription("Number of applied inventory changes"))
	rejected, _ := m.Int64Counter("store.service.rejected", metric.WithDescription("Number of store operations rejected, by failure kind"))
	return serviceMetrics{
		ordersPlaced:     ordersPlaced,
		ordersDeleted:    ordersDeleted,
		inventoryChanges: inventoryChanges,
		rejected:         rejected,
	}
}

func (m serviceMetrics) recordPlaced(ctx context.Context, status storedomain.Status) {
	if m.ordersPlaced != nil {
		m.ordersPlaced.Add(ctx, 1, metric.WithAttributes(attribute.String("order.status", string(status))))
	}
}

func (m serviceMetrics) recordDeleted(ctx context.Context) {
	if m.ordersDeleted != nil {
		m.ordersDeleted.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordInventoryChange(ctx context.Context, operation string) {
	if m.inventoryChanges != nil {
		m.inventoryChanges.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", operation)))
	}
}

func (m serviceMetrics) recordRejected(ctx context.Context, operation string, err error) {
	if m.rejected == nil {
		return
	}
	kind, ok := failure.KindOf(err)
	if !ok {
		kind = "internal"
	}
	m.rejected.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", operation), attribute.String("failure.kind", string(kind))))
}

var _ storeports.Service = (*Service)(nil)
