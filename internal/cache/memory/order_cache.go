package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/joaomacarrao/storefront/internal/domain"
	"github.com/joaomacarrao/storefront/internal/ports"
	"github.com/joaomacarrao/storefront/pkg/metrics"
)

// Проверка, что LRUCacheTTL удовлетворяет интерфейсу OrderCache.
var _ ports.OrderCache = (*LRUCacheTTL)(nil)

type entry struct {
	id        int
	order     *domain.Order
	expiresAt time.Time
}

// LRUCacheTTL — кэш заказов бэкенда: LRU с обновлением TTL при чтении.
// Наружу всегда отдаются копии, внутренние значения не утекают.
type LRUCacheTTL struct {
	capacity int
	ttl      time.Duration

	ll    *list.List
	index map[int]*list.Element

	mu sync.Mutex
}

// NewLRUCacheTTL — кэш ёмкостью capacity; ttl <= 0 — без истечения.
func NewLRUCacheTTL(capacity int, ttl time.Duration) *LRUCacheTTL {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRUCacheTTL{
		capacity: capacity,
		ttl:      ttl,
		ll:       list.New(),
		index:    make(map[int]*list.Element),
	}
}

// Get — заказ по id; попадание продлевает TTL и освежает позицию LRU.
func (c *LRUCacheTTL) Get(_ context.Context, orderID int) (*domain.Order, bool) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[orderID]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	ent := elem.Value.(*entry)
	if c.isExpired(ent, now) {
		metrics.CacheOps.WithLabelValues("expired").Inc()
		c.removeElement(elem)
		metrics.CacheSize.Set(float64(len(c.index)))
		return nil, false
	}
	c.ll.MoveToFront(elem)

	if c.ttl > 0 {
		ent.expiresAt = c.expiryFrom(now)
	}

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return cloneOrder(ent.order), true
}

// Set — сохраняет/обновляет копию заказа.
func (c *LRUCacheTTL) Set(_ context.Context, order *domain.Order) error {
	if order == nil || order.ID == 0 {
		return nil
	}
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[order.ID]; ok {
		ent := elem.Value.(*entry)
		ent.order = cloneOrder(order)
		ent.expiresAt = c.expiryFrom(now)
		c.ll.MoveToFront(elem)
		return nil
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&entry{
		id:        order.ID,
		order:     cloneOrder(order),
		expiresAt: c.expiryFrom(now),
	})
	c.index[order.ID] = elem
	metrics.CacheSize.Set(float64(len(c.index)))

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	return nil
}

// WarmUp — прогрев кэша списком заказов. nil-элементы пропускаются.
func (c *LRUCacheTTL) WarmUp(ctx context.Context, orders []*domain.Order) error {
	for _, order := range orders {
		if order == nil {
			continue
		}
		if err := c.Set(ctx, order); err != nil {
			return err
		}
	}
	return nil
}

// Invalidate — выбрасывает запись после смены статуса заказа.
func (c *LRUCacheTTL) Invalidate(_ context.Context, orderID int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[orderID]; ok {
		c.removeElement(elem)
		metrics.CacheOps.WithLabelValues("invalidated").Inc()
		metrics.CacheSize.Set(float64(len(c.index)))
	}
}

// ------вспомогательные функции------

// evictLRU — удаляет наименее используемый элемент.
func (c *LRUCacheTTL) evictLRU() {
	if back := c.ll.Back(); back != nil {
		c.removeElement(back)
		metrics.CacheOps.WithLabelValues("evicted").Inc()
		metrics.CacheSize.Set(float64(len(c.index)))
	}
}

// removeElement — удаляет элемент из списка и индекса.
func (c *LRUCacheTTL) removeElement(elem *list.Element) {
	ent := elem.Value.(*entry)
	delete(c.index, ent.id)
	c.ll.Remove(elem)
}

// isExpired — проверяет истечение TTL.
func (c *LRUCacheTTL) isExpired(ent *entry, now time.Time) bool {
	if c.ttl <= 0 {
		return false
	}
	return now.After(ent.expiresAt)
}

// expiryFrom — вычисляет момент истечения для текущего времени.
func (c *LRUCacheTTL) expiryFrom(now time.Time) time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(c.ttl)
}

// pruneExpiredFromBack — удаляет элементы с истекшим TTL из хвоста до первого актуального.
func (c *LRUCacheTTL) pruneExpiredFromBack(now time.Time) {
	if c.ttl <= 0 {
		return
	}
	for {
		back := c.ll.Back()
		if back == nil {
			return
		}
		ent := back.Value.(*entry)
		if now.After(ent.expiresAt) {
			c.removeElement(back)
			metrics.CacheOps.WithLabelValues("expired").Inc()
			metrics.CacheSize.Set(float64(len(c.index)))
			continue
		}
		return
	}
}

// cloneOrder — глубокая копия заказа вместе с позициями.
func cloneOrder(order *domain.Order) *domain.Order {
	if order == nil {
		return nil
	}
	clonedOrder := *order
	if order.Items != nil {
		clonedOrder.Items = append([]domain.OrderItem(nil), order.Items...)
	}
	return &clonedOrder
}
