package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/joaomacarrao/storefront/internal/domain"
	"github.com/joaomacarrao/storefront/internal/ports"
)

// Проверка, что OrderClient удовлетворяет интерфейсу OrderGateway.
var _ ports.OrderGateway = (*OrderClient)(nil)

// OrderClient — REST-клиент заказов.
type OrderClient struct {
	c *Client
}

// NewOrderClient — клиент поверх общего HTTP-клиента.
func NewOrderClient(c *Client) *OrderClient { return &OrderClient{c: c} }

// CreateOrder — POST /orders/.
func (o *OrderClient) CreateOrder(ctx context.Context, req *domain.OrderCreate) (*domain.Order, error) {
	var order domain.Order
	if err := o.c.do(ctx, http.MethodPost, "/orders/", nil, req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOrder — GET /orders/{id}/.
func (o *OrderClient) GetOrder(ctx context.Context, orderID int) (*domain.Order, error) {
	var order domain.Order
	path := fmt.Sprintf("/orders/%d/", orderID)
	if err := o.c.do(ctx, http.MethodGet, path, nil, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// ListMyOrders — GET /orders/my_orders/ с фильтром по статусу,
// сортировкой и страницей; пустые параметры не передаются.
func (o *OrderClient) ListMyOrders(ctx context.Context, status, ordering string, page int) (*domain.OrderPage, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", status)
	}
	if ordering != "" {
		query.Set("ordering", ordering)
	}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}

	var pageResp domain.OrderPage
	if err := o.c.do(ctx, http.MethodGet, "/orders/my_orders/", query, nil, &pageResp); err != nil {
		return nil, err
	}
	return &pageResp, nil
}

// CancelOrder — POST /orders/{id}/cancel/.
func (o *OrderClient) CancelOrder(ctx context.Context, orderID int) (*domain.Order, error) {
	var order domain.Order
	path := fmt.Sprintf("/orders/%d/cancel/", orderID)
	if err := o.c.do(ctx, http.MethodPost, path, nil, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
