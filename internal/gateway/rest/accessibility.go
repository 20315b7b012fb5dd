package rest

import (
	"context"
	"net/http"

	"github.com/joaomacarrao/storefront/internal/domain"
	"github.com/joaomacarrao/storefront/internal/ports"
)

var _ ports.AccessibilityGateway = (*AccessibilityClient)(nil)

// AccessibilityClient — REST-клиент конфигурации доступности и синтеза речи.
type AccessibilityClient struct {
	c *Client
}

// NewAccessibilityClient — клиент поверх общего HTTP-клиента.
func NewAccessibilityClient(c *Client) *AccessibilityClient {
	return &AccessibilityClient{c: c}
}

// Config — GET /accessibility/config/.
func (a *AccessibilityClient) Config(ctx context.Context) (*domain.AccessibilityConfig, error) {
	var cfg domain.AccessibilityConfig
	if err := a.c.do(ctx, http.MethodGet, "/accessibility/config/", nil, nil, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Synthesize — POST /accessibility/tts/.
func (a *AccessibilityClient) Synthesize(ctx context.Context, req *domain.TTSRequest) (*domain.TTSResponse, error) {
	var resp domain.TTSResponse
	if err := a.c.do(ctx, http.MethodPost, "/accessibility/tts/", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
