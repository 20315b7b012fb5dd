package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/joaomacarrao/storefront/internal/domain"
	"github.com/joaomacarrao/storefront/internal/ports"
)

var _ ports.PaymentGateway = (*PaymentClient)(nil)

// PaymentClient — REST-клиент платежей.
type PaymentClient struct {
	c *Client
}

// NewPaymentClient — клиент поверх общего HTTP-клиента.
func NewPaymentClient(c *Client) *PaymentClient { return &PaymentClient{c: c} }

// CreatePayment — POST /payments/create/; ответ размечен по payment_method.
func (p *PaymentClient) CreatePayment(ctx context.Context, orderID int, method domain.PaymentMethod) (*domain.PaymentResponse, error) {
	body := struct {
		OrderID       int                  `json:"order_id"`
		PaymentMethod domain.PaymentMethod `json:"payment_method"`
	}{orderID, method}

	var resp domain.PaymentResponse
	if err := p.c.do(ctx, http.MethodPost, "/payments/create/", nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ConfirmPayment — POST /payments/confirm/.
func (p *PaymentClient) ConfirmPayment(ctx context.Context, paymentID int, transactionID string) error {
	body := struct {
		PaymentID     int    `json:"payment_id"`
		TransactionID string `json:"transaction_id"`
	}{paymentID, transactionID}

	return p.c.do(ctx, http.MethodPost, "/payments/confirm/", nil, body, nil)
}

// PaymentStatus — GET /payments/payments/{id}/status/.
func (p *PaymentClient) PaymentStatus(ctx context.Context, paymentID int) (string, error) {
	var resp struct {
		Status string `json:"status"`
	}
	path := fmt.Sprintf("/payments/payments/%d/status/", paymentID)
	if err := p.c.do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return "", err
	}
	return resp.Status, nil
}
