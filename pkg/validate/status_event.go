package validate

import (
	"errors"
	"fmt"

	"github.com/joaomacarrao/storefront/internal/domain"
)

// ErrInvalidStatusEvent — базовая (sentinel error) ошибка валидации события смены статуса.
// Сообщения с такой ошибкой коммитятся и пропускаются навсегда.
var ErrInvalidStatusEvent = errors.New("order status event validation failed")

// ValidateStatusEvent — проверяет обязательные поля события из Kafka.
func ValidateStatusEvent(e *domain.OrderStatusEvent) error {
	if e == nil {
		return fmt.Errorf("%w: событие не может быть nil", ErrInvalidStatusEvent)
	}
	if e.OrderID <= 0 {
		return fmt.Errorf("%w: order_id обязателен", ErrInvalidStatusEvent)
	}
	if e.Status == "" {
		return fmt.Errorf("%w: status обязателен", ErrInvalidStatusEvent)
	}
	return nil
}
