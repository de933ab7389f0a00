package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/thiagolinoz/fastfood-orders/internal/domain"
)

// UpdateOrderStatus applies a single legal transition to the order and
// persists it. Illegal transitions surface as state conflicts and leave the
// stored order untouched.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, fmt.Errorf("%w: order id is required", domain.ErrValidation)
	}
	if status == "" {
		return nil, fmt.Errorf("%w: target status is required", domain.ErrValidation)
	}

	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	previous := order.Status
	if err := order.UpdateStatus(status); err != nil {
		return nil, err
	}

	if err := s.orders.UpdateOrder(ctx, order, previous); err != nil {
		return nil, err
	}

	s.publishStatusChanged(ctx, order, previous)
	s.logger.Info("order status updated",
		zap.String("order_id", order.ID),
		zap.String("from", previous.String()),
		zap.String("to", order.Status.String()))

	return order, nil
}

func (s *OrderService) GetOrderByNumber(ctx context.Context, number int) (*domain.Order, error) {
	if number <= 0 {
		return nil, fmt.Errorf("%w: order number is required", domain.ErrValidation)
	}
	return s.orders.GetOrderByNumber(ctx, number)
}

func (s *OrderService) ListOrdersByStatus(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error) {
	if status == "" {
		return nil, fmt.Errorf("%w: status is required", domain.ErrValidation)
	}
	return s.orders.ListOrdersByStatus(ctx, status)
}

// kitchenPriority lists the statuses the kitchen works through, highest
// priority first. Orders in any other status stay off the queue.
var kitchenPriority = []domain.OrderStatus{
	domain.OrderStatusReady,
	domain.OrderStatusPreparing,
	domain.OrderStatusReceived,
}

// KitchenQueue returns the kitchen's working view: READY before PREPARING
// before RECEIVED, oldest first within each status. Orders awaiting payment,
// canceled or completed never appear.
func (s *OrderService) KitchenQueue(ctx context.Context) ([]*domain.Order, error) {
	all, err := s.orders.ListOrders(ctx)
	if err != nil {
		return nil, err
	}

	queue := make([]*domain.Order, 0, len(all))
	for _, status := range kitchenPriority {
		var bucket []*domain.Order
		for _, order := range all {
			if order.Status == status {
				bucket = append(bucket, order)
			}
		}
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].CreatedAt.Before(bucket[j].CreatedAt)
		})
		queue = append(queue, bucket...)
	}
	return queue, nil
}
