package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/thiagolinoz/fastfood-orders/internal/domain"
)

type CheckoutItem struct {
	ProductCode string
	Quantity    int
}

type CheckoutRequest struct {
	CustomerDocument string // empty means anonymous
	Items            []CheckoutItem
}

// Checkout validates the cart, snapshots catalog prices, draws the next order
// number and persists a new order in AWAITING_PAYMENT. Validation failures
// happen before numbering, so a rejected cart never consumes a number.
func (s *OrderService) Checkout(ctx context.Context, req *CheckoutRequest) (*domain.Order, error) {
	if req == nil || len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: order must contain at least one item", domain.ErrValidation)
	}

	if err := s.customers.VerifyExists(ctx, req.CustomerDocument); err != nil {
		return nil, err
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		product, err := s.catalog.ProductByCode(ctx, line.ProductCode)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: product not found: %s", domain.ErrValidation, line.ProductCode)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to resolve product %s: %w", line.ProductCode, err)
		}
		if !product.Active {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnavailable, line.ProductCode)
		}

		// Snapshot of name and price at checkout time; later catalog changes
		// never touch this order.
		item, err := domain.NewOrderItem(product.Name, product.Code, line.Quantity, product.Price)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	number, err := s.orders.NextOrderNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate order number: %w", err)
	}

	order, err := domain.NewOrder(req.CustomerDocument, number, items)
	if err != nil {
		return nil, err
	}

	if err := s.orders.SaveOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	if err := s.events.PublishOrderCreated(ctx, order); err != nil {
		s.logger.Error("failed to publish order created event",
			zap.String("order_id", order.ID),
			zap.Error(err))
	}

	s.logger.Info("order created",
		zap.String("order_id", order.ID),
		zap.Int("order_number", order.Number),
		zap.String("total", order.Total().String()))

	return order, nil
}
