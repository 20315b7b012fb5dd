package memory

import (
	"context"
	"testing"
	"time"

	"github.com/joaomacarrao/storefront/internal/domain"
)

func newOrder(id int) *domain.Order {
	return &domain.Order{
		ID:    id,
		Items: []domain.OrderItem{{DishName: "x"}},
	}
}

func TestSetGet_HitMiss(t *testing.T) {
	c := NewLRUCacheTTL(2, 5*time.Minute)
	ctx := context.Background()

	// miss
	if _, ok := c.Get(ctx, 1); ok {
		t.Fatalf("expected miss before Set")
	}

	// hit после Set
	_ = c.Set(ctx, newOrder(1))
	got, ok := c.Get(ctx, 1)
	if !ok || got.ID != 1 {
		t.Fatalf("expected hit for order 1")
	}
}

func TestTTL_Expiry(t *testing.T) {
	c := NewLRUCacheTTL(2, 100*time.Millisecond)
	ctx := context.Background()

	_ = c.Set(ctx, newOrder(7))
	if _, ok := c.Get(ctx, 7); !ok {
		t.Fatalf("expected hit right after Set")
	}
	time.Sleep(150 * time.Millisecond)
	if _, ok := c.Get(ctx, 7); ok {
		t.Fatalf("expected miss after TTL expires")
	}
}

func TestLRUEviction(t *testing.T) {
	c := NewLRUCacheTTL(2, 0) // 0 = без TTL
	ctx := context.Background()

	_ = c.Set(ctx, newOrder(1))
	_ = c.Set(ctx, newOrder(2))
	// 1 сделать «свежим»
	if _, ok := c.Get(ctx, 1); !ok {
		t.Fatalf("expected hit for order 1")
	}
	// Добавляем 3 — вытеснит 2 (самый старый)
	_ = c.Set(ctx, newOrder(3))

	if _, ok := c.Get(ctx, 2); ok {
		t.Fatalf("expected order 2 to be evicted")
	}
	if _, ok := c.Get(ctx, 1); !ok || c.ll.Len() != 2 {
		t.Fatalf("expected orders 1 & 3 to stay in cache")
	}
}

func TestInvalidate(t *testing.T) {
	c := NewLRUCacheTTL(2, 0)
	ctx := context.Background()

	_ = c.Set(ctx, newOrder(5))
	c.Invalidate(ctx, 5)
	if _, ok := c.Get(ctx, 5); ok {
		t.Fatalf("expected miss after Invalidate")
	}
	// повторная инвалидация безопасна
	c.Invalidate(ctx, 5)
}

func TestWarmUp(t *testing.T) {
	c := NewLRUCacheTTL(3, 0)
	ctx := context.Background()

	if err := c.WarmUp(ctx, []*domain.Order{newOrder(1), nil, newOrder(2)}); err != nil {
		t.Fatalf("WarmUp: %v", err)
	}
	if _, ok := c.Get(ctx, 1); !ok {
		t.Fatalf("expected hit for order 1 after warm-up")
	}
	if _, ok := c.Get(ctx, 2); !ok {
		t.Fatalf("expected hit for order 2 after warm-up")
	}
}

func TestCloneImmutability(t *testing.T) {
	c := NewLRUCacheTTL(1, 0)
	ctx := context.Background()
	orig := newOrder(9)
	_ = c.Set(ctx, orig)

	// меняем то, что вернул Get — не должно влиять на кэш
	o1, _ := c.Get(ctx, 9)
	o1.Items[0].DishName = "changed"

	o2, _ := c.Get(ctx, 9)
	if o2.Items[0].DishName == "changed" {
		t.Fatalf("cache should return clones, not pointers to internal value")
	}
}
