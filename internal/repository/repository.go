package repository

import (
	"context"
	"fmt"

	"github.com/thiagolinoz/fastfood-orders/internal/domain"
)

var (
	ErrOrderNotFound        = fmt.Errorf("order %w", domain.ErrNotFound)
	ErrPaymentNotFound      = fmt.Errorf("payment %w", domain.ErrNotFound)
	ErrDuplicateOrderNumber = fmt.Errorf("%w: order number already taken", domain.ErrValidation)
)

type Credentials struct {
	Host              string
	Port              int
	User              string
	Password          string
	DBName            string
	MigrationsDirPath string
}

// OrderRepository is the persistence and numbering boundary for orders.
// NextOrderNumber must be atomic: concurrent checkouts never share a number.
type OrderRepository interface {
	SaveOrder(ctx context.Context, order *domain.Order) error
	// UpdateOrder persists a status change guarded by the status the caller
	// read, so concurrent transitions from the same source state cannot both
	// win. Losing the race surfaces as a state conflict.
	UpdateOrder(ctx context.Context, order *domain.Order, expected domain.OrderStatus) error
	GetOrderByID(ctx context.Context, id string) (*domain.Order, error)
	GetOrderByNumber(ctx context.Context, number int) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
	ListOrdersByStatus(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error)
	NextOrderNumber(ctx context.Context) (int, error)
}

// PaymentRepository stores the append-only payment audit trail.
type PaymentRepository interface {
	SavePayment(ctx context.Context, payment *domain.Payment) error
	GetPaymentByOrderNumber(ctx context.Context, number int) (*domain.Payment, error)
	ListPaymentsByOrderID(ctx context.Context, orderID string) ([]*domain.Payment, error)
	ListPayments(ctx context.Context) ([]*domain.Payment, error)
}
