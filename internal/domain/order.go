package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusAwaitingPayment OrderStatus = "AWAITING_PAYMENT"
	OrderStatusReceived        OrderStatus = "RECEIVED"
	OrderStatusPreparing       OrderStatus = "PREPARING"
	OrderStatusReady           OrderStatus = "READY"
	OrderStatusCompleted       OrderStatus = "COMPLETED"
	OrderStatusCanceled        OrderStatus = "CANCELED"
)

// CanTransitionTo reports whether the status may legally move to next.
// Pure; the legality table is the single source of truth for the lifecycle.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderStatusAwaitingPayment:
		return next == OrderStatusReceived || next == OrderStatusCanceled
	case OrderStatusReceived:
		return next == OrderStatusPreparing || next == OrderStatusCanceled
	case OrderStatusPreparing:
		return next == OrderStatusReady || next == OrderStatusCanceled
	case OrderStatusReady:
		return next == OrderStatusCompleted
	default: // COMPLETED, CANCELED
		return false
	}
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCanceled
}

// String representation (for logging)
func (s OrderStatus) String() string {
	return string(s)
}

// ParseOrderStatus accepts the status name case-insensitively.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	switch s := OrderStatus(strings.ToUpper(raw)); s {
	case OrderStatusAwaitingPayment, OrderStatusReceived, OrderStatusPreparing,
		OrderStatusReady, OrderStatusCompleted, OrderStatusCanceled:
		return s, nil
	default:
		return "", fmt.Errorf("%w: unknown order status %q", ErrValidation, raw)
	}
}

// OrderItem is one line of an order. Name and price are snapshots taken from
// the catalog at checkout time and never re-read afterwards.
type OrderItem struct {
	ProductName string          `json:"product_name"`
	ProductCode string          `json:"product_code"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

func NewOrderItem(name, code string, quantity int, unitPrice decimal.Decimal) (OrderItem, error) {
	if strings.TrimSpace(name) == "" {
		return OrderItem{}, fmt.Errorf("%w: product name is required", ErrValidation)
	}
	if quantity <= 0 {
		return OrderItem{}, fmt.Errorf("%w: quantity must be greater than zero", ErrValidation)
	}
	if unitPrice.IsNegative() {
		return OrderItem{}, fmt.Errorf("%w: unit price cannot be negative", ErrValidation)
	}
	return OrderItem{
		ProductName: name,
		ProductCode: code,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
	}, nil
}

func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// SameProduct reports whether both items refer to the same product line.
// Identity is keyed by product code alone; captured name, price and quantity
// do not participate.
func (i OrderItem) SameProduct(other OrderItem) bool {
	return i.ProductCode == other.ProductCode
}

// Order is a customer's submitted cart tracked through the kitchen lifecycle.
// Orders are never deleted; terminal statuses are kept for history.
type Order struct {
	ID               string
	CustomerDocument string // empty means anonymous
	Status           OrderStatus
	Number           int
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Items            []OrderItem
}

// NewOrder builds a freshly numbered order in AWAITING_PAYMENT with at least
// one item.
func NewOrder(customerDocument string, number int, items []OrderItem) (*Order, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: order must contain at least one item", ErrValidation)
	}
	now := time.Now()
	return &Order{
		ID:               uuid.New().String(),
		CustomerDocument: customerDocument,
		Status:           OrderStatusAwaitingPayment,
		Number:           number,
		CreatedAt:        now,
		UpdatedAt:        now,
		Items:            items,
	}, nil
}

// UpdateStatus applies a single legal transition, refreshing UpdatedAt.
// A rejected transition leaves the order untouched.
func (o *Order) UpdateStatus(next OrderStatus) error {
	if next == "" {
		return fmt.Errorf("%w: target status is required", ErrValidation)
	}
	if !o.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: cannot move from %s to %s", ErrStateConflict, o.Status, next)
	}
	o.Status = next
	o.UpdatedAt = time.Now()
	return nil
}

func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

func (o *Order) IsAwaitingPayment() bool {
	return o.Status == OrderStatusAwaitingPayment
}
