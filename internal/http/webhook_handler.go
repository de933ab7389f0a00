package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/thiagolinoz/fastfood-orders/internal/domain"
	"github.com/thiagolinoz/fastfood-orders/internal/service"
)

// PaymentService is the slice of the application service the payment
// endpoints use.
type PaymentService interface {
	ProcessPaymentWebhook(ctx context.Context, webhook *service.PaymentWebhook) error
	PaymentStatusByOrderNumber(ctx context.Context, number int) (domain.PaymentStatus, error)
}

type WebhookHandler struct {
	svc     PaymentService
	timeout time.Duration
}

func NewWebhookHandler(svc PaymentService, timeout time.Duration) *WebhookHandler {
	return &WebhookHandler{
		svc:     svc,
		timeout: timeout,
	}
}

type PaymentWebhookDTO struct {
	OrderNumber   int             `json:"order_number"`
	PaymentStatus string          `json:"payment_status"`
	Amount        decimal.Decimal `json:"amount"`
	PaidAt        time.Time       `json:"paid_at"`
	TransactionID string          `json:"transaction_id"`
	Origin        string          `json:"origin"`
}

type PaymentWebhookResponseDTO struct {
	OrderNumber int    `json:"order_number"`
	Message     string `json:"message"`
}

type PaymentStatusResponseDTO struct {
	OrderNumber   int    `json:"order_number"`
	PaymentStatus string `json:"payment_status"`
}

// POST /api/v1/webhooks/payment
func (h *WebhookHandler) ReceivePayment(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var dto PaymentWebhookDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_body", "invalid webhook payload")
		return
	}

	status, err := domain.ParsePaymentStatus(dto.PaymentStatus)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	webhook := &service.PaymentWebhook{
		OrderNumber:   dto.OrderNumber,
		Status:        status,
		Amount:        dto.Amount,
		PaidAt:        dto.PaidAt,
		TransactionID: dto.TransactionID,
		Origin:        dto.Origin,
	}

	if err := h.svc.ProcessPaymentWebhook(ctx, webhook); err != nil {
		handleDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, PaymentWebhookResponseDTO{
		OrderNumber: dto.OrderNumber,
		Message:     "payment processed",
	})
}

// GET /api/v1/orders/{orderNumber}/payment-status
func (h *WebhookHandler) PaymentStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	number, err := strconv.Atoi(chi.URLParam(r, "orderNumber"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "validation_error", "order number must be an integer")
		return
	}

	status, getErr := h.svc.PaymentStatusByOrderNumber(ctx, number)
	if getErr != nil {
		handleDomainError(w, getErr)
		return
	}

	respondJSON(w, http.StatusOK, PaymentStatusResponseDTO{
		OrderNumber:   number,
		PaymentStatus: status.String(),
	})
}
