package ports

import (
	"context"

	"github.com/joaomacarrao/storefront/internal/domain"
)

// OrderCache — кэш заказов, полученных от бэкенда.
// Требования к реализации: потокобезопасность; доступ по ключу не хуже O(1); возврат копий сущности.
type OrderCache interface {
	// Get — вернуть заказ по id; (order, true) при попадании, (nil, false) при промахе/истечении.
	Get(ctx context.Context, orderID int) (*domain.Order, bool)

	// Set — сохранить/обновить заказ в кэше.
	Set(ctx context.Context, order *domain.Order) error

	// Invalidate — выбросить запись (например, после смены статуса).
	Invalidate(ctx context.Context, orderID int)

	// WarmUp — прогрев кэша списком заказов (nil-элементы пропускаются).
	WarmUp(ctx context.Context, orders []*domain.Order) error
}
