package cart

import (
	"context"
	"sync"

	"github.com/joaomacarrao/storefront/internal/domain"
	"github.com/joaomacarrao/storefront/internal/ports"
	"github.com/joaomacarrao/storefront/pkg/metrics"
)

// Store — корзина одной клиентской сессии.
// Все мутации синхронны: производные суммы согласованы сразу после возврата.
// Персистентность — сквозная запись (write-through) при каждой мутации;
// сбой записи не роняет мутацию, а только логируется (best-effort).
type Store struct {
	mu          sync.Mutex
	sessionID   string
	lines       []domain.CartLine
	deliveryFee domain.Money

	repo ports.CartRepository
	log  ports.Logger
}

// NewStore — пустая корзина с таксой доставки по умолчанию.
func NewStore(sessionID string, repo ports.CartRepository, log ports.Logger) *Store {
	return &Store{
		sessionID:   sessionID,
		deliveryFee: domain.DefaultDeliveryFee,
		repo:        repo,
		log:         log,
	}
}

// restore — восстановление состояния из снимка (при гидрации из хранилища).
func (s *Store) restore(snapshot *domain.CartSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines[:0], snapshot.Items...)
	s.deliveryFee = snapshot.DeliveryFee
}

// AddItem — добавляет блюдо: существующая строка накапливает количество,
// заметка перезаписывается только непустым значением; иначе строка
// дописывается в конец. Количество меньше 1 трактуется как 1.
func (s *Store) AddItem(ctx context.Context, dish domain.Dish, quantity int, notes string) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	if idx := s.indexOf(dish.ID); idx >= 0 {
		s.lines[idx].Quantity += quantity
		if notes != "" {
			s.lines[idx].Notes = notes
		}
	} else {
		s.lines = append(s.lines, domain.CartLine{Dish: dish, Quantity: quantity, Notes: notes})
	}
	s.mu.Unlock()

	metrics.CartOps.WithLabelValues("add").Inc()
	s.persist(ctx)
}

// RemoveItem — удаляет строку блюда; отсутствие строки — no-op.
func (s *Store) RemoveItem(ctx context.Context, dishID int) {
	s.mu.Lock()
	s.removeLocked(dishID)
	s.mu.Unlock()

	metrics.CartOps.WithLabelValues("remove").Inc()
	s.persist(ctx)
}

// UpdateQuantity — замена количества (не накопление).
// Количество ≤ 0 эквивалентно удалению строки.
func (s *Store) UpdateQuantity(ctx context.Context, dishID, quantity int) {
	s.mu.Lock()
	if quantity <= 0 {
		s.removeLocked(dishID)
	} else if idx := s.indexOf(dishID); idx >= 0 {
		s.lines[idx].Quantity = quantity
	}
	s.mu.Unlock()

	metrics.CartOps.WithLabelValues("quantity").Inc()
	s.persist(ctx)
}

// UpdateNotes — замена заметки строки; отсутствие строки — no-op.
func (s *Store) UpdateNotes(ctx context.Context, dishID int, notes string) {
	s.mu.Lock()
	if idx := s.indexOf(dishID); idx >= 0 {
		s.lines[idx].Notes = notes
	}
	s.mu.Unlock()

	metrics.CartOps.WithLabelValues("notes").Inc()
	s.persist(ctx)
}

// Clear — опустошает корзину; такса доставки не трогается.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	s.lines = s.lines[:0]
	s.mu.Unlock()

	metrics.CartOps.WithLabelValues("clear").Inc()
	s.persist(ctx)
}

// SetDeliveryFee — безусловная замена таксы доставки (знак не проверяется).
func (s *Store) SetDeliveryFee(ctx context.Context, fee domain.Money) {
	s.mu.Lock()
	s.deliveryFee = fee
	s.mu.Unlock()

	metrics.CartOps.WithLabelValues("fee").Inc()
	s.persist(ctx)
}

// Subtotal — Σ(цена × количество); пересчитывается при каждом вызове.
func (s *Store) Subtotal() domain.Money {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sum domain.Money
	for i := range s.lines {
		sum += s.lines[i].Dish.Price.Mul(s.lines[i].Quantity)
	}
	return sum
}

// Total — subtotal + такса доставки.
func (s *Store) Total() domain.Money {
	return s.Subtotal() + s.DeliveryFee()
}

// ItemsCount — суммарное количество единиц в корзине.
func (s *Store) ItemsCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for i := range s.lines {
		count += s.lines[i].Quantity
	}
	return count
}

// DeliveryFee — текущая такса доставки.
func (s *Store) DeliveryFee() domain.Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deliveryFee
}

// GetItem — строка по id блюда; (line, true) при наличии.
func (s *Store) GetItem(dishID int) (domain.CartLine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := s.indexOf(dishID); idx >= 0 {
		return s.lines[idx], true
	}
	return domain.CartLine{}, false
}

// HasItem — есть ли строка для блюда.
func (s *Store) HasItem(dishID int) bool {
	_, ok := s.GetItem(dishID)
	return ok
}

// Snapshot — копия текущего состояния (для персистентности и чекаута).
func (s *Store) Snapshot() *domain.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]domain.CartLine, len(s.lines))
	copy(items, s.lines)
	return &domain.CartSnapshot{Items: items, DeliveryFee: s.deliveryFee}
}

// SessionID — идентификатор сессии-владельца.
func (s *Store) SessionID() string { return s.sessionID }

// ------вспомогательные функции------

// indexOf — позиция строки блюда; -1, если нет. Вызывать под мьютексом.
func (s *Store) indexOf(dishID int) int {
	for i := range s.lines {
		if s.lines[i].Dish.ID == dishID {
			return i
		}
	}
	return -1
}

// removeLocked — удаление строки с сохранением порядка остальных.
func (s *Store) removeLocked(dishID int) {
	if idx := s.indexOf(dishID); idx >= 0 {
		s.lines = append(s.lines[:idx], s.lines[idx+1:]...)
	}
}

// persist — сквозная запись снимка; сбой не выходит за пределы мутации.
func (s *Store) persist(ctx context.Context) {
	if s.repo == nil {
		return
	}
	if err := s.repo.Save(ctx, s.sessionID, s.Snapshot()); err != nil {
		metrics.CartPersistFailures.Inc()
		s.log.Warnf(ctx, "cart persist failed session=%s err=%v", s.sessionID, err)
	}
}
