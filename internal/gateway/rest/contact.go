package rest

import (
	"context"
	"net/http"

	"github.com/joaomacarrao/storefront/internal/domain"
	"github.com/joaomacarrao/storefront/internal/ports"
)

var (
	_ ports.ContactGateway = (*ContactClient)(nil)
	_ ports.AdminGateway   = (*AdminClient)(nil)
)

// ContactClient — REST-клиент формы обратной связи.
type ContactClient struct {
	c *Client
}

// NewContactClient — клиент поверх общего HTTP-клиента.
func NewContactClient(c *Client) *ContactClient { return &ContactClient{c: c} }

// Send — POST /contact/.
func (cc *ContactClient) Send(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	var created domain.ContactMessage
	if err := cc.c.do(ctx, http.MethodPost, "/contact/", nil, msg, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// AdminClient — REST-клиент админской статистики.
type AdminClient struct {
	c *Client
}

// NewAdminClient — клиент поверх общего HTTP-клиента.
func NewAdminClient(c *Client) *AdminClient { return &AdminClient{c: c} }

// Stats — GET /admin/stats/.
func (ac *AdminClient) Stats(ctx context.Context) (*domain.AdminStats, error) {
	var stats domain.AdminStats
	if err := ac.c.do(ctx, http.MethodGet, "/admin/stats/", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
