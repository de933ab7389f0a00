package customer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/thiagolinoz/fastfood-orders/internal/domain"
)

func newTestClient(allowAnonymous bool, handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewClient(Config{
		BaseURL:        server.URL,
		Timeout:        time.Second,
		AllowAnonymous: allowAnonymous,
	})
	return client, server
}

func TestVerifyExists_EmptyDocumentAnonymousAllowed(t *testing.T) {
	called := false
	client, server := newTestClient(true, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	defer server.Close()

	assert.NoError(t, client.VerifyExists(context.Background(), ""))
	assert.NoError(t, client.VerifyExists(context.Background(), "   "))
	assert.False(t, called, "anonymous orders skip the registry entirely")
}

func TestVerifyExists_EmptyDocumentAnonymousRejected(t *testing.T) {
	client, server := newTestClient(false, func(w http.ResponseWriter, r *http.Request) {})
	defer server.Close()

	err := client.VerifyExists(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestVerifyExists_Registered(t *testing.T) {
	client, server := newTestClient(true, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/persons/12345678900", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})
	defer server.Close()

	assert.NoError(t, client.VerifyExists(context.Background(), "12345678900"))
}

func TestVerifyExists_NotRegistered(t *testing.T) {
	client, server := newTestClient(true, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	defer server.Close()

	err := client.VerifyExists(context.Background(), "999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVerifyExists_RegistryFailure(t *testing.T) {
	client, server := newTestClient(true, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	defer server.Close()

	err := client.VerifyExists(context.Background(), "12345678900")
	assert.ErrorIs(t, err, domain.ErrUpstream)
}
