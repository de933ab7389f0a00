package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allOrderStatuses = []OrderStatus{
	OrderStatusAwaitingPayment,
	OrderStatusReceived,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusCompleted,
	OrderStatusCanceled,
}

func TestCanTransitionTo_LegalityTable(t *testing.T) {
	allowed := map[OrderStatus][]OrderStatus{
		OrderStatusAwaitingPayment: {OrderStatusReceived, OrderStatusCanceled},
		OrderStatusReceived:        {OrderStatusPreparing, OrderStatusCanceled},
		OrderStatusPreparing:       {OrderStatusReady, OrderStatusCanceled},
		OrderStatusReady:           {OrderStatusCompleted},
		OrderStatusCompleted:       {},
		OrderStatusCanceled:        {},
	}

	for _, from := range allOrderStatuses {
		for _, to := range allOrderStatuses {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	assert.True(t, OrderStatusCompleted.IsTerminal())
	assert.True(t, OrderStatusCanceled.IsTerminal())
	assert.False(t, OrderStatusAwaitingPayment.IsTerminal())
	assert.False(t, OrderStatusReady.IsTerminal())
}

func TestParseOrderStatus(t *testing.T) {
	s, err := ParseOrderStatus("preparing")
	require.NoError(t, err)
	assert.Equal(t, OrderStatusPreparing, s)

	_, err = ParseOrderStatus("SHIPPED")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNewOrderItem_Validation(t *testing.T) {
	_, err := NewOrderItem("", "P1", 1, decimal.NewFromInt(10))
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewOrderItem("Burger", "P1", 0, decimal.NewFromInt(10))
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewOrderItem("Burger", "P1", -2, decimal.NewFromInt(10))
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewOrderItem("Burger", "P1", 1, decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, ErrValidation)

	item, err := NewOrderItem("Burger", "P1", 2, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, item.Subtotal().IsZero())
}

func TestOrderItem_SameProduct(t *testing.T) {
	a, err := NewOrderItem("Burger", "P1", 1, decimal.NewFromInt(10))
	require.NoError(t, err)
	b, err := NewOrderItem("Burger Deluxe", "P1", 3, decimal.NewFromInt(25))
	require.NoError(t, err)
	c, err := NewOrderItem("Burger", "P2", 1, decimal.NewFromInt(10))
	require.NoError(t, err)

	assert.True(t, a.SameProduct(b), "same code is the same product line regardless of snapshot")
	assert.False(t, a.SameProduct(c))
}

func TestNewOrder_RequiresItems(t *testing.T) {
	_, err := NewOrder("12345678900", 1, nil)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewOrder("12345678900", 1, []OrderItem{})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNewOrder_Defaults(t *testing.T) {
	item, err := NewOrderItem("Burger", "P1", 1, decimal.NewFromInt(10))
	require.NoError(t, err)

	order, err := NewOrder("", 42, []OrderItem{item})
	require.NoError(t, err)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, 42, order.Number)
	assert.Equal(t, OrderStatusAwaitingPayment, order.Status)
	assert.Empty(t, order.CustomerDocument)
	assert.False(t, order.CreatedAt.IsZero())
	assert.Equal(t, order.CreatedAt, order.UpdatedAt)
}

func TestOrder_Total(t *testing.T) {
	first, err := NewOrderItem("Burger", "P1", 2, decimal.RequireFromString("25.90"))
	require.NoError(t, err)
	second, err := NewOrderItem("Fries", "P2", 3, decimal.RequireFromString("5.00"))
	require.NoError(t, err)

	order, err := NewOrder("", 1, []OrderItem{first, second})
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("66.80").Equal(order.Total()),
		"got %s", order.Total())
}

func TestOrder_UpdateStatus(t *testing.T) {
	item, err := NewOrderItem("Burger", "P1", 1, decimal.NewFromInt(10))
	require.NoError(t, err)
	order, err := NewOrder("", 1, []OrderItem{item})
	require.NoError(t, err)

	require.NoError(t, order.UpdateStatus(OrderStatusReceived))
	assert.Equal(t, OrderStatusReceived, order.Status)
	assert.True(t, order.UpdatedAt.After(order.CreatedAt) || order.UpdatedAt.Equal(order.CreatedAt))
}

func TestOrder_UpdateStatus_EmptyTarget(t *testing.T) {
	item, _ := NewOrderItem("Burger", "P1", 1, decimal.NewFromInt(10))
	order, err := NewOrder("", 1, []OrderItem{item})
	require.NoError(t, err)

	err = order.UpdateStatus("")
	assert.ErrorIs(t, err, ErrValidation)
	assert.False(t, errors.Is(err, ErrStateConflict), "missing target is validation, not conflict")
	assert.Equal(t, OrderStatusAwaitingPayment, order.Status)
}

func TestOrder_UpdateStatus_IllegalLeavesOrderUnchanged(t *testing.T) {
	item, _ := NewOrderItem("Burger", "P1", 1, decimal.NewFromInt(10))
	order, err := NewOrder("", 1, []OrderItem{item})
	require.NoError(t, err)

	require.NoError(t, order.UpdateStatus(OrderStatusReceived))
	require.NoError(t, order.UpdateStatus(OrderStatusPreparing))
	require.NoError(t, order.UpdateStatus(OrderStatusReady))
	before := order.UpdatedAt

	err = order.UpdateStatus(OrderStatusCanceled)
	assert.ErrorIs(t, err, ErrStateConflict)
	assert.Equal(t, OrderStatusReady, order.Status)
	assert.Equal(t, before, order.UpdatedAt)
}
