package cart

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/joaomacarrao/storefront/internal/domain"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

// memRepo — потокобезопасное in-memory хранилище снимков для тестов.
type memRepo struct {
	mu        sync.Mutex
	snapshots map[string]*domain.CartSnapshot
	saveErr   error
	saves     int
}

func newMemRepo() *memRepo {
	return &memRepo{snapshots: make(map[string]*domain.CartSnapshot)}
}

func (r *memRepo) Get(_ context.Context, sessionID string) (*domain.CartSnapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshots[sessionID], nil
}

func (r *memRepo) Save(_ context.Context, sessionID string, s *domain.CartSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	if r.saveErr != nil {
		return r.saveErr
	}
	r.snapshots[sessionID] = s
	return nil
}

func (r *memRepo) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.snapshots, sessionID)
	return nil
}

var (
	pasta = domain.Dish{ID: 1, Name: "Spaghetti alla Carbonara", Price: domain.Money(3590), Category: "massas", Available: true}
	pizza = domain.Dish{ID: 2, Name: "Pizza Margherita", Price: domain.Money(4200), Category: "pizzas", Available: true}
)

func TestStore_AddItemAccumulatesQuantity(t *testing.T) {
	ctx := context.Background()
	st := NewStore("s1", newMemRepo(), noopLogger{})

	st.AddItem(ctx, pasta, 1, "")
	st.AddItem(ctx, pasta, 2, "")

	line, ok := st.GetItem(pasta.ID)
	if !ok {
		t.Fatalf("ожидали строку для блюда %d", pasta.ID)
	}
	if line.Quantity != 3 {
		t.Fatalf("quantity = %d, ожидали 3", line.Quantity)
	}
	if got := len(st.Snapshot().Items); got != 1 {
		t.Fatalf("строк = %d, ожидали 1", got)
	}
}

func TestStore_AddItemNotesOverwrittenOnlyWhenNonEmpty(t *testing.T) {
	ctx := context.Background()
	st := NewStore("s1", newMemRepo(), noopLogger{})

	st.AddItem(ctx, pasta, 1, "sem queijo")
	st.AddItem(ctx, pasta, 1, "")

	if line, _ := st.GetItem(pasta.ID); line.Notes != "sem queijo" {
		t.Fatalf("notes = %q, пустая заметка не должна затирать", line.Notes)
	}

	st.AddItem(ctx, pasta, 1, "bem passado")
	if line, _ := st.GetItem(pasta.ID); line.Notes != "bem passado" {
		t.Fatalf("notes = %q, ожидали перезапись непустой заметкой", line.Notes)
	}
}

func TestStore_DerivedTotals(t *testing.T) {
	ctx := context.Background()
	st := NewStore("s1", newMemRepo(), noopLogger{})

	st.AddItem(ctx, pasta, 2, "")
	st.AddItem(ctx, pizza, 1, "")

	if got := st.Subtotal(); got != domain.Money(11380) {
		t.Fatalf("subtotal = %v, ожидали 113.80", got)
	}
	if got := st.Total(); got != domain.Money(11880) {
		t.Fatalf("total = %v, ожидали 118.80", got)
	}
	if got := st.ItemsCount(); got != 3 {
		t.Fatalf("itemsCount = %d, ожидали 3", got)
	}
}

func TestStore_UpdateQuantityReplacesAndRemoves(t *testing.T) {
	ctx := context.Background()
	st := NewStore("s1", newMemRepo(), noopLogger{})

	st.AddItem(ctx, pasta, 5, "")
	st.UpdateQuantity(ctx, pasta.ID, 2)
	if line, _ := st.GetItem(pasta.ID); line.Quantity != 2 {
		t.Fatalf("quantity = %d, ожидали замену на 2", line.Quantity)
	}

	st.UpdateQuantity(ctx, pasta.ID, 0)
	if st.HasItem(pasta.ID) {
		t.Fatal("количество 0 должно удалять строку")
	}

	// Неизвестное блюдо — no-op, корзина не меняется.
	st.UpdateQuantity(ctx, 99, 3)
	if got := len(st.Snapshot().Items); got != 0 {
		t.Fatalf("строк = %d, ожидали 0", got)
	}
}

func TestStore_ClearKeepsDeliveryFee(t *testing.T) {
	ctx := context.Background()
	st := NewStore("s1", newMemRepo(), noopLogger{})

	st.SetDeliveryFee(ctx, domain.Money(800))
	st.AddItem(ctx, pasta, 1, "")
	st.Clear(ctx)

	if got := len(st.Snapshot().Items); got != 0 {
		t.Fatalf("после Clear строк = %d", got)
	}
	if got := st.DeliveryFee(); got != domain.Money(800) {
		t.Fatalf("deliveryFee = %v, Clear не должен сбрасывать таксу", got)
	}
	if got := st.Total(); got != domain.Money(800) {
		t.Fatalf("total пустой корзины = %v, ожидали таксу", got)
	}
}

func TestStore_RemoveItemMissingIsNoop(t *testing.T) {
	ctx := context.Background()
	st := NewStore("s1", newMemRepo(), noopLogger{})

	st.AddItem(ctx, pasta, 1, "")
	st.RemoveItem(ctx, 42)

	if !st.HasItem(pasta.ID) {
		t.Fatal("удаление чужого id не должно трогать другие строки")
	}
}

func TestStore_PersistFailureDoesNotBreakMutation(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	repo.saveErr = errors.New("storage down")
	st := NewStore("s1", repo, noopLogger{})

	st.AddItem(ctx, pasta, 1, "")

	if !st.HasItem(pasta.ID) {
		t.Fatal("мутация должна примениться несмотря на сбой записи")
	}
	if repo.saves == 0 {
		t.Fatal("ожидали попытку записи")
	}
}

func TestStore_WriteThroughPersistsEveryMutation(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	st := NewStore("s1", repo, noopLogger{})

	st.AddItem(ctx, pasta, 1, "")
	st.UpdateQuantity(ctx, pasta.ID, 3)
	st.UpdateNotes(ctx, pasta.ID, "picante")
	st.SetDeliveryFee(ctx, domain.Money(700))

	if repo.saves != 4 {
		t.Fatalf("saves = %d, ожидали запись после каждой мутации", repo.saves)
	}
	got := repo.snapshots["s1"]
	if got == nil || len(got.Items) != 1 || got.Items[0].Quantity != 3 || got.Items[0].Notes != "picante" {
		t.Fatalf("снимок в хранилище не отражает состояние: %+v", got)
	}
	if got.DeliveryFee != domain.Money(700) {
		t.Fatalf("deliveryFee в снимке = %v", got.DeliveryFee)
	}
}

func TestStore_ConcurrentAdds(t *testing.T) {
	ctx := context.Background()
	st := NewStore("s1", newMemRepo(), noopLogger{})

	const workers = 20
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			st.AddItem(ctx, pasta, 1, "")
		}()
	}
	wg.Wait()

	if got := st.ItemsCount(); got != workers {
		t.Fatalf("itemsCount = %d, ожидали %d", got, workers)
	}
	if got := len(st.Snapshot().Items); got != 1 {
		t.Fatalf("строк = %d, конкурентные добавления одного блюда дают одну строку", got)
	}
}
