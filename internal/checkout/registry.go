package checkout

import (
	"sync"

	"github.com/joaomacarrao/storefront/internal/cart"
	"github.com/joaomacarrao/storefront/internal/ports"
)

// Registry — активные чекаут-сессии по клиентским сессиям.
// Вход на страницу оформления создаёт свежую машину состояний,
// уход со страницы уничтожает её: перезапуск всегда с шага delivery.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session

	orders   ports.OrderGateway
	payments ports.PaymentGateway
	log      ports.Logger
}

// NewRegistry — реестр поверх шлюзов заказов и платежей.
func NewRegistry(orders ports.OrderGateway, payments ports.PaymentGateway, log ports.Logger) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		orders:   orders,
		payments: payments,
		log:      log,
	}
}

// Start — новая чекаут-сессия для клиента; существующая отбрасывается.
func (r *Registry) Start(sessionID string, c *cart.Store) *Session {
	s := NewSession(c, r.orders, r.payments, r.log)

	r.mu.Lock()
	r.sessions[sessionID] = s
	r.mu.Unlock()
	return s
}

// Get — активная чекаут-сессия клиента; nil, если оформление не начато.
func (r *Registry) Get(sessionID string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessions[sessionID]
}

// Remove — уничтожение чекаут-сессии (уход со страницы оформления).
func (r *Registry) Remove(sessionID string) {
	r.mu.Lock()
	delete(r.sessions, sessionID)
	r.mu.Unlock()
}
