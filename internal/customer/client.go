// Package customer implements the customer verification port against the
// external person registry's REST API.
package customer

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/thiagolinoz/fastfood-orders/internal/domain"
)

type Config struct {
	BaseURL string
	Timeout time.Duration
	// AllowAnonymous controls the policy for empty documents: when true an
	// empty document is an anonymous order and verification is skipped, when
	// false it is rejected.
	AllowAnonymous bool
}

type Client struct {
	baseURL        string
	httpClient     *http.Client
	allowAnonymous bool
}

func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:        cfg.BaseURL,
		httpClient:     &http.Client{Timeout: cfg.Timeout},
		allowAnonymous: cfg.AllowAnonymous,
	}
}

// VerifyExists checks the document against the person registry.
func (c *Client) VerifyExists(ctx context.Context, document string) error {
	if strings.TrimSpace(document) == "" {
		if c.allowAnonymous {
			return nil
		}
		return fmt.Errorf("%w: customer document is required", domain.ErrValidation)
	}

	endpoint := fmt.Sprintf("%s/api/v1/persons/%s", c.baseURL, url.PathEscape(document))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build person request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: person registry request failed: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return fmt.Errorf("customer %s %w", document, domain.ErrNotFound)
	default:
		return fmt.Errorf("%w: person registry returned status %d", domain.ErrUpstream, resp.StatusCode)
	}
}
