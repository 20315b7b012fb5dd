package validate

import (
	"context"
	"errors"
	"fmt"

	"github.com/joaomacarrao/storefront/internal/domain"
	"github.com/joaomacarrao/storefront/internal/ports"
)

// Проверка, что CartValidator удовлетворяет интерфейсу SnapshotValidator.
var _ ports.SnapshotValidator = (*CartValidator)(nil)

// ErrInvalidSnapshot — базовая (sentinel error) ошибка валидации снимка корзины.
var ErrInvalidSnapshot = errors.New("cart snapshot validation failed")

// CartValidator — структура для валидации снимков корзины.
// Возвращает ErrInvalidSnapshot (с обёрнутой причиной) при любой проблеме.
type CartValidator struct{}

// NewCartValidator — конструктор CartValidator.
func NewCartValidator() *CartValidator { return &CartValidator{} }

// Validate — проверяет инварианты снимка:
// не более одной строки на блюдо, количество ≥ 1, корректные цены.
func (v *CartValidator) Validate(_ context.Context, snapshot *domain.CartSnapshot) error {
	if snapshot == nil {
		return fmt.Errorf("%w: снимок не может быть nil", ErrInvalidSnapshot)
	}
	if snapshot.DeliveryFee < 0 {
		return fmt.Errorf("%w: deliveryFee должен быть неотрицательным", ErrInvalidSnapshot)
	}

	seen := make(map[int]struct{}, len(snapshot.Items))
	for i := range snapshot.Items {
		if err := v.validateLine(&snapshot.Items[i], i); err != nil {
			return err
		}
		if _, dup := seen[snapshot.Items[i].Dish.ID]; dup {
			return fmt.Errorf("%w: блюдо id=%d встречается более одного раза", ErrInvalidSnapshot, snapshot.Items[i].Dish.ID)
		}
		seen[snapshot.Items[i].Dish.ID] = struct{}{}
	}
	return nil
}

// validateLine — валидация одной позиции.
func (v *CartValidator) validateLine(line *domain.CartLine, idx int) error {
	if line.Dish.ID <= 0 {
		return fmt.Errorf("%w: items[%d].dish.id обязателен", ErrInvalidSnapshot, idx)
	}
	if line.Dish.Name == "" {
		return fmt.Errorf("%w: items[%d].dish.name обязателен", ErrInvalidSnapshot, idx)
	}
	if line.Dish.Price < 0 {
		return fmt.Errorf("%w: items[%d].dish.price должен быть неотрицательным", ErrInvalidSnapshot, idx)
	}
	if line.Quantity < 1 {
		return fmt.Errorf("%w: items[%d].quantity должен быть ≥ 1", ErrInvalidSnapshot, idx)
	}
	return nil
}
