package service

import (
	"context"

	"github.com/thiagolinoz/fastfood-orders/internal/domain"
	"github.com/thiagolinoz/fastfood-orders/internal/repository"
)

// orderRepoMock implements repository.OrderRepository for testing.
type orderRepoMock struct {
	order   *domain.Order // returned by both Get methods
	getErr  error
	all     []*domain.Order
	listErr error

	nextNumber  int
	nextErr     error
	numberCalls int

	saveErr   error
	updateErr error

	saved           *domain.Order
	updated         *domain.Order
	updatedExpected domain.OrderStatus
}

func (m *orderRepoMock) SaveOrder(_ context.Context, order *domain.Order) error {
	m.saved = order
	return m.saveErr
}

func (m *orderRepoMock) UpdateOrder(_ context.Context, order *domain.Order, expected domain.OrderStatus) error {
	m.updated = order
	m.updatedExpected = expected
	return m.updateErr
}

func (m *orderRepoMock) GetOrderByID(_ context.Context, _ string) (*domain.Order, error) {
	return m.order, m.getErr
}

func (m *orderRepoMock) GetOrderByNumber(_ context.Context, _ int) (*domain.Order, error) {
	return m.order, m.getErr
}

func (m *orderRepoMock) ListOrders(_ context.Context) ([]*domain.Order, error) {
	return m.all, m.listErr
}

func (m *orderRepoMock) ListOrdersByStatus(_ context.Context, status domain.OrderStatus) ([]*domain.Order, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var matched []*domain.Order
	for _, o := range m.all {
		if o.Status == status {
			matched = append(matched, o)
		}
	}
	return matched, nil
}

func (m *orderRepoMock) NextOrderNumber(_ context.Context) (int, error) {
	if m.nextErr != nil {
		return 0, m.nextErr
	}
	m.numberCalls++
	m.nextNumber++
	return m.nextNumber, nil
}

// paymentRepoMock implements repository.PaymentRepository for testing.
type paymentRepoMock struct {
	payment *domain.Payment
	getErr  error
	saveErr error
	saved   []*domain.Payment
}

func (m *paymentRepoMock) SavePayment(_ context.Context, payment *domain.Payment) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, payment)
	return nil
}

func (m *paymentRepoMock) GetPaymentByOrderNumber(_ context.Context, _ int) (*domain.Payment, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.payment == nil {
		return nil, repository.ErrPaymentNotFound
	}
	return m.payment, nil
}

func (m *paymentRepoMock) ListPaymentsByOrderID(_ context.Context, _ string) ([]*domain.Payment, error) {
	return m.saved, nil
}

func (m *paymentRepoMock) ListPayments(_ context.Context) ([]*domain.Payment, error) {
	return m.saved, nil
}

// catalogMock implements Catalog for testing.
type catalogMock struct {
	products map[string]*domain.Product
	err      error
}

func (m *catalogMock) ProductByCode(_ context.Context, code string) (*domain.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	product, ok := m.products[code]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

func (m *catalogMock) ProductByName(_ context.Context, name string) (*domain.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, p := range m.products {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, domain.ErrNotFound
}

// customerMock implements CustomerVerifier for testing.
type customerMock struct {
	err       error
	documents []string
}

func (m *customerMock) VerifyExists(_ context.Context, document string) error {
	m.documents = append(m.documents, document)
	return m.err
}

// publisherMock implements EventPublisher for testing.
type publisherMock struct {
	created       int
	statusChanged int
	err           error
}

func (m *publisherMock) PublishOrderCreated(_ context.Context, _ *domain.Order) error {
	m.created++
	return m.err
}

func (m *publisherMock) PublishOrderStatusChanged(_ context.Context, _ *domain.Order, _ domain.OrderStatus) error {
	m.statusChanged++
	return m.err
}
