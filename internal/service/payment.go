package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/thiagolinoz/fastfood-orders/internal/domain"
	"github.com/thiagolinoz/fastfood-orders/internal/repository"
)

// PaymentWebhook carries one externally reported payment event.
type PaymentWebhook struct {
	OrderNumber   int
	Status        domain.PaymentStatus
	Amount        decimal.Decimal
	PaidAt        time.Time
	TransactionID string
	Origin        string
}

// ProcessPaymentWebhook records the reported payment and conditionally moves
// the order. The audit record is persisted on every call; the order only
// moves when the report is approved on an order still awaiting payment, or
// declined-like on an order not yet canceled. Everything else is a no-op for
// the order, which makes replayed and out-of-order deliveries harmless.
func (s *OrderService) ProcessPaymentWebhook(ctx context.Context, webhook *PaymentWebhook) error {
	if webhook == nil || webhook.OrderNumber <= 0 {
		return fmt.Errorf("%w: webhook payload requires an order number", domain.ErrValidation)
	}

	order, err := s.orders.GetOrderByNumber(ctx, webhook.OrderNumber)
	if err != nil {
		return err
	}

	origin := webhook.Origin
	if origin == "" {
		origin = domain.DefaultPaymentOrigin
	}

	payment := &domain.Payment{
		OrderID:       order.ID,
		OrderNumber:   webhook.OrderNumber,
		Status:        webhook.Status,
		Amount:        webhook.Amount,
		PaidAt:        webhook.PaidAt,
		TransactionID: webhook.TransactionID,
		Origin:        origin,
	}
	if err := s.payments.SavePayment(ctx, payment); err != nil {
		return fmt.Errorf("failed to save payment: %w", err)
	}

	s.logger.Info("payment recorded",
		zap.Int("order_number", webhook.OrderNumber),
		zap.String("status", webhook.Status.String()),
		zap.String("origin", origin))

	switch {
	case webhook.Status.IsApproved() && order.IsAwaitingPayment():
		return s.moveOrder(ctx, order, domain.OrderStatusReceived)
	case webhook.Status.IsDeclinedLike() && order.Status != domain.OrderStatusCanceled:
		return s.moveOrder(ctx, order, domain.OrderStatusCanceled)
	}
	return nil
}

func (s *OrderService) moveOrder(ctx context.Context, order *domain.Order, to domain.OrderStatus) error {
	previous := order.Status
	if err := order.UpdateStatus(to); err != nil {
		return err
	}
	if err := s.orders.UpdateOrder(ctx, order, previous); err != nil {
		return err
	}
	s.publishStatusChanged(ctx, order, previous)
	s.logger.Info("order moved after payment report",
		zap.Int("order_number", order.Number),
		zap.String("to", to.String()))
	return nil
}

// PaymentStatusByOrderNumber returns the latest reported payment status for
// the order. No payment record means not yet paid, which is PENDING rather
// than an error. The lookup is independent of the order's own status.
func (s *OrderService) PaymentStatusByOrderNumber(ctx context.Context, number int) (domain.PaymentStatus, error) {
	if number <= 0 {
		return "", fmt.Errorf("%w: order number is required", domain.ErrValidation)
	}

	if _, err := s.orders.GetOrderByNumber(ctx, number); err != nil {
		return "", err
	}

	payment, err := s.payments.GetPaymentByOrderNumber(ctx, number)
	if errors.Is(err, repository.ErrPaymentNotFound) {
		return domain.PaymentStatusPending, nil
	}
	if err != nil {
		return "", err
	}
	return payment.Status, nil
}
