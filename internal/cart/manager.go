package cart

import (
	"context"
	"sync"

	"github.com/joaomacarrao/storefront/internal/ports"
)

// Manager — реестр живых корзин по сессиям.
// Повторное обращение той же сессии возвращает тот же *Store, поэтому
// конкурентные запросы одной сессии сериализуются на его мьютексе.
type Manager struct {
	mu     sync.Mutex
	stores map[string]*Store

	repo      ports.CartRepository
	validator ports.SnapshotValidator
	log       ports.Logger
}

// NewManager — реестр поверх хранилища снимков.
func NewManager(repo ports.CartRepository, validator ports.SnapshotValidator, log ports.Logger) *Manager {
	return &Manager{
		stores:    make(map[string]*Store),
		repo:      repo,
		validator: validator,
		log:       log,
	}
}

// Load — корзина сессии: живая из реестра либо гидрированная из хранилища.
// Повреждённый снимок (не прошедший валидацию) игнорируется: сессия
// начинает с пустой корзины, инцидент логируется.
func (m *Manager) Load(ctx context.Context, sessionID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	if st, ok := m.stores[sessionID]; ok {
		return st
	}

	st := NewStore(sessionID, m.repo, m.log)
	if snapshot, err := m.repo.Get(ctx, sessionID); err != nil {
		m.log.Warnf(ctx, "cart hydrate failed session=%s err=%v", sessionID, err)
	} else if snapshot != nil {
		if err := m.validator.Validate(ctx, snapshot); err != nil {
			m.log.Warnf(ctx, "cart snapshot rejected session=%s err=%v", sessionID, err)
		} else {
			st.restore(snapshot)
		}
	}

	m.stores[sessionID] = st
	return st
}

// Drop — выбрасывает корзину из реестра и хранилища (завершение сессии).
func (m *Manager) Drop(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	delete(m.stores, sessionID)
	m.mu.Unlock()

	return m.repo.Delete(ctx, sessionID)
}
