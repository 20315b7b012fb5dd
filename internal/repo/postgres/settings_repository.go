package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/joaomacarrao/storefront/internal/domain"
	"github.com/joaomacarrao/storefront/internal/ports"
)

var _ ports.SettingsRepository = (*SettingsRepository)(nil)

// SettingsRepository — хранилище настроек доступности на Postgres.
// Объект настроек сохраняется целиком при каждом изменении.
type SettingsRepository struct {
	pool *pgxpool.Pool
}

// NewSettingsRepository - конструктор SettingsRepository.
func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{pool: pool}
}

// Get — настройки сессии. Если записи нет, возвращает (nil, nil).
func (r *SettingsRepository) Get(ctx context.Context, sessionID string) (*domain.AccessibilitySettings, error) {
	var raw []byte
	err := r.pool.QueryRow(ctx, `
		SELECT settings FROM accessibility_settings
		WHERE session_id = $1 AND name = $2
	`, sessionID, domain.SettingsStorageName).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select accessibility settings: %w", err)
	}

	var settings domain.AccessibilitySettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return nil, fmt.Errorf("decode accessibility settings: %w", err)
	}
	return &settings, nil
}

// Save — идемпотентный upsert настроек целиком.
func (r *SettingsRepository) Save(ctx context.Context, sessionID string, settings *domain.AccessibilitySettings) error {
	if settings == nil {
		return errors.New("accessibility settings are required")
	}
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode accessibility settings: %w", err)
	}

	if _, err := r.pool.Exec(ctx, `
		INSERT INTO accessibility_settings (session_id, name, settings, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (session_id) DO UPDATE SET
			settings = EXCLUDED.settings,
			updated_at = now()
	`, sessionID, domain.SettingsStorageName, raw); err != nil {
		return fmt.Errorf("upsert accessibility settings: %w", err)
	}
	return nil
}
