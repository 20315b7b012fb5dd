package a11y

import (
	"context"
	"sync"

	"github.com/joaomacarrao/storefront/internal/ports"
)

// Manager — реестр сервисов настроек по сессиям.
// Документ создаётся фабрикой на каждую сессию.
type Manager struct {
	mu       sync.Mutex
	services map[string]*Service

	newDoc func() Document
	repo   ports.SettingsRepository
	log    ports.Logger
}

// NewManager — реестр поверх хранилища настроек.
func NewManager(newDoc func() Document, repo ports.SettingsRepository, log ports.Logger) *Manager {
	return &Manager{
		services: make(map[string]*Service),
		newDoc:   newDoc,
		repo:     repo,
		log:      log,
	}
}

// Load — сервис настроек сессии: живой из реестра либо гидрированный
// из хранилища; при отсутствии записи — значения по умолчанию.
func (m *Manager) Load(ctx context.Context, sessionID string) *Service {
	m.mu.Lock()
	defer m.mu.Unlock()

	if svc, ok := m.services[sessionID]; ok {
		return svc
	}

	svc := NewService(sessionID, m.newDoc(), m.repo, m.log)
	if saved, err := m.repo.Get(ctx, sessionID); err != nil {
		m.log.Warnf(ctx, "accessibility settings hydrate failed session=%s err=%v", sessionID, err)
	} else if saved != nil {
		svc.restore(saved)
	}

	m.services[sessionID] = svc
	return svc
}
