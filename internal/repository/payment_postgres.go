package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/thiagolinoz/fastfood-orders/internal/domain"
)

const paymentColumns = `id, order_id, order_number, status, amount, paid_at, transaction_id, origin, created_at, updated_at`

// SavePayment appends a new audit record. The record ID is assigned here,
// on first persistence; existing rows are never touched.
func (r *Repository) SavePayment(ctx context.Context, payment *domain.Payment) error {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	now := time.Now()
	payment.CreatedAt = now
	payment.UpdatedAt = now

	query := `INSERT INTO payments (` + paymentColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		payment.ID,
		payment.OrderID,
		payment.OrderNumber,
		payment.Status.String(),
		payment.Amount,
		payment.PaidAt,
		payment.TransactionID,
		payment.Origin,
		payment.CreatedAt,
		payment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// GetPaymentByOrderNumber returns the latest reported payment for the order.
func (r *Repository) GetPaymentByOrderNumber(ctx context.Context, number int) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments
	          WHERE order_number = $1 ORDER BY created_at DESC LIMIT 1`

	payment, err := r.scanPayment(r.db.QueryRowContext(ctx, query, number))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPaymentNotFound
	}
	return payment, err
}

func (r *Repository) ListPaymentsByOrderID(ctx context.Context, orderID string) ([]*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE order_id = $1 ORDER BY created_at`
	return r.queryPayments(ctx, query, orderID)
}

func (r *Repository) ListPayments(ctx context.Context) ([]*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments ORDER BY created_at`
	return r.queryPayments(ctx, query)
}

func (r *Repository) scanPayment(row *sql.Row) (*domain.Payment, error) {
	var p domain.Payment
	var status string
	err := row.Scan(
		&p.ID,
		&p.OrderID,
		&p.OrderNumber,
		&status,
		&p.Amount,
		&p.PaidAt,
		&p.TransactionID,
		&p.Origin,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Status = domain.PaymentStatus(status)
	return &p, nil
}

func (r *Repository) queryPayments(ctx context.Context, query string, args ...any) ([]*domain.Payment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query payments: %w", err)
	}
	defer rows.Close()

	var payments []*domain.Payment
	for rows.Next() {
		var p domain.Payment
		var status string
		if err := rows.Scan(
			&p.ID,
			&p.OrderID,
			&p.OrderNumber,
			&status,
			&p.Amount,
			&p.PaidAt,
			&p.TransactionID,
			&p.Origin,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		p.Status = domain.PaymentStatus(status)
		payments = append(payments, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return payments, nil
}
