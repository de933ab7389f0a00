package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/thiagolinoz/fastfood-orders/internal/domain"
	"github.com/thiagolinoz/fastfood-orders/internal/service"
)

// OrderService is the slice of the application service the order endpoints use.
type OrderService interface {
	Checkout(ctx context.Context, req *service.CheckoutRequest) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error)
	KitchenQueue(ctx context.Context) ([]*domain.Order, error)
	GetOrderByNumber(ctx context.Context, number int) (*domain.Order, error)
	ListOrdersByStatus(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error)
}

type OrderHandler struct {
	svc     OrderService
	timeout time.Duration
}

func NewOrderHandler(svc OrderService, timeout time.Duration) *OrderHandler {
	return &OrderHandler{
		svc:     svc,
		timeout: timeout,
	}
}

type CheckoutItemDTO struct {
	ProductCode string `json:"product_code"`
	Quantity    int    `json:"quantity"`
}

type CheckoutRequestDTO struct {
	CustomerDocument string            `json:"customer_document"`
	Items            []CheckoutItemDTO `json:"items"`
}

type OrderItemDTO struct {
	ProductName string `json:"product_name"`
	ProductCode string `json:"product_code"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	Subtotal    string `json:"subtotal"`
}

type OrderResponseDTO struct {
	ID               string         `json:"id"`
	CustomerDocument string         `json:"customer_document,omitempty"`
	Status           string         `json:"status"`
	OrderNumber      int            `json:"order_number"`
	TotalAmount      string         `json:"total_amount"`
	Items            []OrderItemDTO `json:"items"`
	CreatedAt        string         `json:"created_at"`
	UpdatedAt        string         `json:"updated_at"`
}

type UpdateStatusRequestDTO struct {
	Status string `json:"status"`
}

// POST /api/v1/orders/checkout
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var dto CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_body", "invalid request body")
		return
	}

	req := &service.CheckoutRequest{
		CustomerDocument: dto.CustomerDocument,
		Items:            make([]service.CheckoutItem, 0, len(dto.Items)),
	}
	for _, item := range dto.Items {
		req.Items = append(req.Items, service.CheckoutItem{
			ProductCode: item.ProductCode,
			Quantity:    item.Quantity,
		})
	}

	order, err := h.svc.Checkout(ctx, req)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, convertOrder(order))
}

// GET /api/v1/orders — the kitchen queue view.
func (h *OrderHandler) ListQueue(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	orders, err := h.svc.KitchenQueue(ctx)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	dtos := make([]OrderResponseDTO, 0, len(orders))
	for _, o := range orders {
		dtos = append(dtos, convertOrder(o))
	}
	respondJSON(w, http.StatusOK, dtos)
}

// GET /api/v1/orders/{orderNumber}
func (h *OrderHandler) GetByNumber(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	number, err := strconv.Atoi(chi.URLParam(r, "orderNumber"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "validation_error", "order number must be an integer")
		return
	}

	order, getErr := h.svc.GetOrderByNumber(ctx, number)
	if getErr != nil {
		handleDomainError(w, getErr)
		return
	}
	respondJSON(w, http.StatusOK, convertOrder(order))
}

// GET /api/v1/orders/status/{status}
func (h *OrderHandler) ListByStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	status, err := domain.ParseOrderStatus(chi.URLParam(r, "status"))
	if err != nil {
		handleDomainError(w, err)
		return
	}

	orders, listErr := h.svc.ListOrdersByStatus(ctx, status)
	if listErr != nil {
		handleDomainError(w, listErr)
		return
	}

	dtos := make([]OrderResponseDTO, 0, len(orders))
	for _, o := range orders {
		dtos = append(dtos, convertOrder(o))
	}
	respondJSON(w, http.StatusOK, dtos)
}

// PATCH /api/v1/orders/{orderId}/status
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var dto UpdateStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_body", "invalid request body")
		return
	}

	status, err := domain.ParseOrderStatus(dto.Status)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	order, updateErr := h.svc.UpdateOrderStatus(ctx, chi.URLParam(r, "orderId"), status)
	if updateErr != nil {
		handleDomainError(w, updateErr)
		return
	}
	respondJSON(w, http.StatusOK, convertOrder(order))
}

func convertOrder(order *domain.Order) OrderResponseDTO {
	items := make([]OrderItemDTO, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemDTO{
			ProductName: item.ProductName,
			ProductCode: item.ProductCode,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.String(),
			Subtotal:    item.Subtotal().String(),
		})
	}

	return OrderResponseDTO{
		ID:               order.ID,
		CustomerDocument: order.CustomerDocument,
		Status:           order.Status.String(),
		OrderNumber:      order.Number,
		TotalAmount:      order.Total().String(),
		Items:            items,
		CreatedAt:        order.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        order.UpdatedAt.Format(time.RFC3339),
	}
}
