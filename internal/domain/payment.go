package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultPaymentOrigin is assumed when a webhook omits the source system.
const DefaultPaymentOrigin = "MERCADO_PAGO"

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusApproved PaymentStatus = "APPROVED"
	PaymentStatusDeclined PaymentStatus = "DECLINED"
	PaymentStatusCanceled PaymentStatus = "CANCELED"
)

func (s PaymentStatus) IsApproved() bool {
	return s == PaymentStatusApproved
}

// IsDeclinedLike groups gateway-declined and gateway-canceled outcomes, which
// both cancel the related order.
func (s PaymentStatus) IsDeclinedLike() bool {
	return s == PaymentStatusDeclined || s == PaymentStatusCanceled
}

func (s PaymentStatus) String() string {
	return string(s)
}

func ParsePaymentStatus(raw string) (PaymentStatus, error) {
	switch s := PaymentStatus(strings.ToUpper(raw)); s {
	case PaymentStatusPending, PaymentStatusApproved, PaymentStatusDeclined, PaymentStatusCanceled:
		return s, nil
	default:
		return "", fmt.Errorf("%w: unknown payment status %q", ErrValidation, raw)
	}
}

// Payment is one append-only audit entry for a reported payment event.
// Every webhook delivery creates a new record; records are never merged or
// overwritten. Identity is the record ID, assigned on first persistence.
type Payment struct {
	ID            string
	OrderID       string
	OrderNumber   int
	Status        PaymentStatus
	Amount        decimal.Decimal
	PaidAt        time.Time
	TransactionID string
	Origin        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
