package ports

import (
	"context"

	"github.com/joaomacarrao/storefront/internal/domain"
)

// CartRepository — долговременное хранилище снимков корзины.
// Снимок хранится под фиксированным именем domain.CartStorageName,
// ключ — идентификатор клиентской сессии.
type CartRepository interface {
	// Get — вернуть снимок корзины; (nil, nil), если записи нет.
	Get(ctx context.Context, sessionID string) (*domain.CartSnapshot, error)

	// Save — идемпотентный upsert снимка.
	Save(ctx context.Context, sessionID string, snapshot *domain.CartSnapshot) error

	// Delete — удалить снимок (очистка сессии).
	Delete(ctx context.Context, sessionID string) error
}
