package ports

import (
	"context"

	"github.com/joaomacarrao/storefront/internal/domain"
)

// OrderGateway — REST-клиент бэкенда заказов.
// Токен авторизации берётся из контекста (ctxmeta).
type OrderGateway interface {
	CreateOrder(ctx context.Context, req *domain.OrderCreate) (*domain.Order, error)
	GetOrder(ctx context.Context, orderID int) (*domain.Order, error)
	ListMyOrders(ctx context.Context, status, ordering string, page int) (*domain.OrderPage, error)
	CancelOrder(ctx context.Context, orderID int) (*domain.Order, error)
}

// PaymentGateway — REST-клиент бэкенда платежей.
type PaymentGateway interface {
	// CreatePayment — создаёт платёж по заказу; ответ размечен по методу оплаты.
	CreatePayment(ctx context.Context, orderID int, method domain.PaymentMethod) (*domain.PaymentResponse, error)
	ConfirmPayment(ctx context.Context, paymentID int, transactionID string) error
	PaymentStatus(ctx context.Context, paymentID int) (status string, err error)
}
