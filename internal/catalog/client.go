// Package catalog implements the product catalog port against the external
// catalog service's REST API.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker/v2"

	"github.com/thiagolinoz/fastfood-orders/internal/domain"
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[*domain.Product]
}

func NewClient(cfg Config) *Client {
	breaker := gobreaker.NewCircuitBreaker[*domain.Product](gobreaker.Settings{
		Name:    "catalog",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// A missing product is a catalog answer, not a catalog failure.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, domain.ErrNotFound)
		},
	})
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		breaker:    breaker,
	}
}

type productDTO struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
	Active bool            `json:"active"`
}

// ProductByCode resolves a product by its stable code, the canonical lookup.
func (c *Client) ProductByCode(ctx context.Context, code string) (*domain.Product, error) {
	endpoint := fmt.Sprintf("%s/api/v1/products/%s", c.baseURL, url.PathEscape(code))
	return c.fetch(ctx, endpoint, code)
}

// ProductByName resolves a product by display name. Secondary capability; not
// every catalog deployment supports it.
func (c *Client) ProductByName(ctx context.Context, name string) (*domain.Product, error) {
	endpoint := fmt.Sprintf("%s/api/v1/products/by-name/%s", c.baseURL, url.PathEscape(name))
	return c.fetch(ctx, endpoint, name)
}

func (c *Client) fetch(ctx context.Context, endpoint, identifier string) (*domain.Product, error) {
	product, err := c.breaker.Execute(func() (*domain.Product, error) {
		return c.doFetch(ctx, endpoint, identifier)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: catalog circuit open", domain.ErrUpstream)
	}
	return product, err
}

func (c *Client) doFetch(ctx context.Context, endpoint, identifier string) (*domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: catalog request failed: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, fmt.Errorf("product %s %w", identifier, domain.ErrNotFound)
	default:
		return nil, fmt.Errorf("%w: catalog returned status %d", domain.ErrUpstream, resp.StatusCode)
	}

	var dto productDTO
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return nil, fmt.Errorf("%w: decode catalog response: %v", domain.ErrUpstream, err)
	}

	return &domain.Product{
		Code:   dto.ID,
		Name:   dto.Name,
		Price:  dto.Price,
		Active: dto.Active,
	}, nil
}
