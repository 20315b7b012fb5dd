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

// Проверка, что CartRepository удовлетворяет интерфейсу CartRepository.
var _ ports.CartRepository = (*CartRepository)(nil)

// CartRepository — хранилище снимков корзины на Postgres (pgxpool).
// Снимок лежит целиком в JSONB под фиксированным именем
// domain.CartStorageName, ключ — идентификатор сессии.
type CartRepository struct {
	pool *pgxpool.Pool
}

// NewCartRepository - конструктор CartRepository.
func NewCartRepository(pool *pgxpool.Pool) *CartRepository { return &CartRepository{pool: pool} }

// Get — снимок корзины сессии. Если записи нет, возвращает (nil, nil).
func (r *CartRepository) Get(ctx context.Context, sessionID string) (*domain.CartSnapshot, error) {
	var raw []byte
	err := r.pool.QueryRow(ctx, `
		SELECT snapshot FROM cart_snapshots
		WHERE session_id = $1 AND name = $2
	`, sessionID, domain.CartStorageName).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select cart snapshot: %w", err)
	}

	var snapshot domain.CartSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, fmt.Errorf("decode cart snapshot: %w", err)
	}
	return &snapshot, nil
}

// Save — идемпотентный upsert снимка целиком.
func (r *CartRepository) Save(ctx context.Context, sessionID string, snapshot *domain.CartSnapshot) error {
	if snapshot == nil {
		return errors.New("cart snapshot is required")
	}
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode cart snapshot: %w", err)
	}

	if _, err := r.pool.Exec(ctx, `
		INSERT INTO cart_snapshots (session_id, name, snapshot, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (session_id) DO UPDATE SET
			snapshot = EXCLUDED.snapshot,
			updated_at = now()
	`, sessionID, domain.CartStorageName, raw); err != nil {
		return fmt.Errorf("upsert cart snapshot: %w", err)
	}
	return nil
}

// Delete — удаляет снимок сессии; отсутствие записи — не ошибка.
func (r *CartRepository) Delete(ctx context.Context, sessionID string) error {
	if _, err := r.pool.Exec(ctx, `
		DELETE FROM cart_snapshots WHERE session_id = $1
	`, sessionID); err != nil {
		return fmt.Errorf("delete cart snapshot: %w", err)
	}
	return nil
}
