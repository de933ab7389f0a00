package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/thiagolinoz/fastfood-orders/internal/domain"
	"github.com/thiagolinoz/fastfood-orders/internal/repository"
)

// Catalog resolves products from the external catalog service. Lookup by code
// is the canonical contract; lookup by display name is a secondary capability
// not every deployment supports.
type Catalog interface {
	ProductByCode(ctx context.Context, code string) (*domain.Product, error)
	ProductByName(ctx context.Context, name string) (*domain.Product, error)
}

// CustomerVerifier checks that a customer document is registered. The
// implementation decides the policy for empty documents (anonymous orders
// allowed or rejected).
type CustomerVerifier interface {
	VerifyExists(ctx context.Context, document string) error
}

// EventPublisher emits order lifecycle events. Publishing is best effort;
// workflows log failures and carry on.
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, order *domain.Order) error
	PublishOrderStatusChanged(ctx context.Context, order *domain.Order, previous domain.OrderStatus) error
}

type OrderService struct {
	orders    repository.OrderRepository
	payments  repository.PaymentRepository
	catalog   Catalog
	customers CustomerVerifier
	events    EventPublisher
	logger    *zap.Logger
}

func NewOrderService(
	orders repository.OrderRepository,
	payments repository.PaymentRepository,
	catalog Catalog,
	customers CustomerVerifier,
	events EventPublisher,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orders:    orders,
		payments:  payments,
		catalog:   catalog,
		customers: customers,
		events:    events,
		logger:    logger,
	}
}

func (s *OrderService) publishStatusChanged(ctx context.Context, order *domain.Order, previous domain.OrderStatus) {
	if err := s.events.PublishOrderStatusChanged(ctx, order, previous); err != nil {
		s.logger.Error("failed to publish order status event",
			zap.String("order_id", order.ID),
			zap.Error(err))
	}
}
