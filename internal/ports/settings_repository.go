package ports

import (
	"context"

	"github.com/joaomacarrao/storefront/internal/domain"
)

// SettingsRepository — долговременное хранилище настроек доступности.
type SettingsRepository interface {
	// Get — вернуть настройки сессии; (nil, nil), если записи нет.
	Get(ctx context.Context, sessionID string) (*domain.AccessibilitySettings, error)

	// Save — сохранить настройки целиком (write-through при каждом изменении).
	Save(ctx context.Context, sessionID string, settings *domain.AccessibilitySettings) error
}
