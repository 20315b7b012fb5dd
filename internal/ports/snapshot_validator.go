package ports

import (
	"context"

	"github.com/joaomacarrao/storefront/internal/domain"
)

// SnapshotValidator — проверка инвариантов снимка корзины
// (количества ≥ 1, неотрицательные цены, не более одной строки на блюдо).
type SnapshotValidator interface {
	Validate(ctx context.Context, snapshot *domain.CartSnapshot) error
}
