package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"

	"github.com/joaomacarrao/storefront/internal/a11y"
	cachemem "github.com/joaomacarrao/storefront/internal/cache/memory"
	"github.com/joaomacarrao/storefront/internal/cart"
	"github.com/joaomacarrao/storefront/internal/checkout"
	"github.com/joaomacarrao/storefront/internal/domain"
	gw "github.com/joaomacarrao/storefront/internal/gateway/rest"
	"github.com/joaomacarrao/storefront/internal/ports/mocks"
	rest "github.com/joaomacarrao/storefront/internal/transport/http"
	"github.com/joaomacarrao/storefront/internal/usecase"
	"github.com/joaomacarrao/storefront/pkg/validate"
)

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

type nopDocument struct{}

func (nopDocument) SetRootFontSize(int)   {}
func (nopDocument) SetClass(string, bool) {}

// testEnv — собранный роутер и моки для ожиданий.
type testEnv struct {
	router  *gin.Engine
	orders  *mocks.MockOrderGateway
	pay     *mocks.MockPaymentGateway
	reviews *mocks.MockReviewGateway
	a11yGW  *mocks.MockAccessibilityGateway
	contact *mocks.MockContactGateway
	admin   *mocks.MockAdminGateway
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	cartRepo := mocks.NewMockCartRepository(ctrl)
	cartRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	cartRepo.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cartRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	settingsRepo := mocks.NewMockSettingsRepository(ctrl)
	settingsRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	settingsRepo.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	orders := mocks.NewMockOrderGateway(ctrl)
	pay := mocks.NewMockPaymentGateway(ctrl)
	reviews := mocks.NewMockReviewGateway(ctrl)
	a11yGW := mocks.NewMockAccessibilityGateway(ctrl)
	contact := mocks.NewMockContactGateway(ctrl)
	admin := mocks.NewMockAdminGateway(ctrl)

	log := nopLogger{}
	carts := cart.NewManager(cartRepo, validate.NewCartValidator(), log)
	settings := a11y.NewManager(func() a11y.Document { return nopDocument{} }, settingsRepo, log)
	orderCache := cachemem.NewLRUCacheTTL(16, 0)
	orderService := usecase.NewOrderService(orders, orderCache, log, nil)
	checkouts := checkout.NewRegistry(orders, pay, log)

	dispatcher := a11y.NewShortcutDispatcher(a11y.Shortcut{
		Key:         "H",
		Mods:        a11y.Modifiers{Ctrl: true, Alt: true},
		Description: "Alternar alto contraste",
		Enabled:     true,
	})

	h := rest.NewHandler(rest.Deps{
		Carts:         carts,
		Checkouts:     checkouts,
		Settings:      settings,
		Shortcuts:     dispatcher,
		Orders:        orderService,
		Payments:      pay,
		Reviews:       reviews,
		Accessibility: a11yGW,
		Contact:       contact,
		Admin:         admin,
		Log:           log,
	}, 0)

	return &testEnv{
		router:  rest.NewRouter(h, ""),
		orders:  orders,
		pay:     pay,
		reviews: reviews,
		a11yGW:  a11yGW,
		contact: contact,
		admin:   admin,
	}
}

// do — выполняет запрос с фиксированной сессией.
func (e *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("X-Session-ID", "sess-test")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response: %v (body=%s)", err, w.Body.String())
	}
}

func TestPing(t *testing.T) {
	e := newTestEnv(t)
	w := e.do(t, http.MethodGet, "/ping", "")
	if w.Code != http.StatusOK || w.Body.String() != "pong" {
		t.Fatalf("want 200 pong, got %d %q", w.Code, w.Body.String())
	}
}

func TestSessionID_IssuedWhenAbsent(t *testing.T) {
	e := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	if w.Header().Get("X-Session-ID") == "" {
		t.Fatal("expected X-Session-ID to be issued")
	}
}

func TestCart_AddAndTotals(t *testing.T) {
	e := newTestEnv(t)

	body := `{"dish":{"id":3,"name":"Spaghetti","price":35.90,"available":true},"quantity":2,"notes":"sem cebola"}`
	w := e.do(t, http.MethodPost, "/cart/items", body)
	if w.Code != http.StatusOK {
		t.Fatalf("add: want 200, got %d (%s)", w.Code, w.Body.String())
	}

	var view struct {
		Items      []domain.CartLine `json:"items"`
		Subtotal   float64           `json:"subtotal"`
		Total      float64           `json:"total"`
		ItemsCount int               `json:"items_count"`
	}
	decodeJSON(t, w, &view)
	if len(view.Items) != 1 || view.ItemsCount != 2 {
		t.Fatalf("want 1 line x2, got %+v", view)
	}
	if view.Subtotal != 71.80 {
		t.Fatalf("want subtotal 71.80, got %v", view.Subtotal)
	}
}

func TestCart_QuantityZeroRemovesLine(t *testing.T) {
	e := newTestEnv(t)

	e.do(t, http.MethodPost, "/cart/items", `{"dish":{"id":3,"name":"Spaghetti","price":35.90},"quantity":1}`)
	w := e.do(t, http.MethodPatch, "/cart/items/3/quantity", `{"quantity":0}`)
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}

	var view struct {
		Items []domain.CartLine `json:"items"`
	}
	decodeJSON(t, w, &view)
	if len(view.Items) != 0 {
		t.Fatalf("want empty cart, got %+v", view.Items)
	}
}

func TestCart_InvalidDishID(t *testing.T) {
	e := newTestEnv(t)
	w := e.do(t, http.MethodDelete, "/cart/items/abc", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", w.Code)
	}
}

func TestCheckout_StartWithEmptyCart(t *testing.T) {
	e := newTestEnv(t)
	w := e.do(t, http.MethodPost, "/checkout/start", "")
	if w.Code != http.StatusConflict {
		t.Fatalf("want 409, got %d", w.Code)
	}
}

func TestCheckout_HappyPath(t *testing.T) {
	e := newTestEnv(t)

	created := &domain.Order{ID: 41, Status: "pending"}
	e.orders.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(created, nil)
	e.pay.EXPECT().CreatePayment(gomock.Any(), 41, domain.PaymentPix).
		Return(&domain.PaymentResponse{Success: true, Data: domain.PixPayment{PaymentID: 9, CopyPaste: "copia", Amount: 7680}}, nil)

	e.do(t, http.MethodPost, "/cart/items", `{"dish":{"id":3,"name":"Spaghetti","price":35.90},"quantity":2}`)

	if w := e.do(t, http.MethodPost, "/checkout/start", ""); w.Code != http.StatusCreated {
		t.Fatalf("start: want 201, got %d", w.Code)
	}
	if w := e.do(t, http.MethodPut, "/checkout/delivery", `{"address":"Rua A, 1","city":"Recife"}`); w.Code != http.StatusOK {
		t.Fatalf("delivery: want 200, got %d", w.Code)
	}
	if w := e.do(t, http.MethodPost, "/checkout/next", ""); w.Code != http.StatusOK {
		t.Fatalf("next: want 200, got %d", w.Code)
	}
	if w := e.do(t, http.MethodPost, "/checkout/method", `{"payment_method":"pix"}`); w.Code != http.StatusOK {
		t.Fatalf("method: want 200, got %d", w.Code)
	}

	w := e.do(t, http.MethodPost, "/checkout/confirm", "")
	if w.Code != http.StatusOK {
		t.Fatalf("confirm: want 200, got %d (%s)", w.Code, w.Body.String())
	}

	var state struct {
		Step            string `json:"step"`
		CreatedOrderIDs []int  `json:"created_order_ids"`
	}
	decodeJSON(t, w, &state)
	if state.Step != "payment_process" {
		t.Fatalf("want step payment_process, got %s", state.Step)
	}
	if len(state.CreatedOrderIDs) != 1 || state.CreatedOrderIDs[0] != 41 {
		t.Fatalf("want created order 41, got %v", state.CreatedOrderIDs)
	}
}

func TestCheckout_DeliveryGuard(t *testing.T) {
	e := newTestEnv(t)

	e.do(t, http.MethodPost, "/cart/items", `{"dish":{"id":3,"name":"Spaghetti","price":35.90},"quantity":1}`)
	e.do(t, http.MethodPost, "/checkout/start", "")
	e.do(t, http.MethodPut, "/checkout/delivery", `{"address":"Rua A, 1"}`)

	w := e.do(t, http.MethodPost, "/checkout/next", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400 without city, got %d", w.Code)
	}
}

func TestCheckout_NotStarted(t *testing.T) {
	e := newTestEnv(t)
	w := e.do(t, http.MethodGet, "/checkout", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", w.Code)
	}
}

func TestOrders_GetByID_BackendErrorKeepsStatus(t *testing.T) {
	e := newTestEnv(t)

	e.orders.EXPECT().GetOrder(gomock.Any(), 77).
		Return(nil, &gw.APIError{StatusCode: http.StatusNotFound, Message: "pedido não encontrado"})

	w := e.do(t, http.MethodGet, "/orders/77", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404 passthrough, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "pedido não encontrado") {
		t.Fatalf("want backend message, got %s", w.Body.String())
	}
}

func TestOrders_GetByID_CachedOnSecondRead(t *testing.T) {
	e := newTestEnv(t)

	order := &domain.Order{ID: 5, Status: "pending"}
	// Бэкенд опрашивается ровно один раз: второе чтение из кэша
	e.orders.EXPECT().GetOrder(gomock.Any(), 5).Return(order, nil).Times(1)

	for i := 0; i < 2; i++ {
		w := e.do(t, http.MethodGet, "/orders/5", "")
		if w.Code != http.StatusOK {
			t.Fatalf("read %d: want 200, got %d", i, w.Code)
		}
	}
}

func TestReviews_CreateValidation(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(t, http.MethodPost, "/reviews", `{"dish":3,"rating":6}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400 for rating 6, got %d", w.Code)
	}
}

func TestReviews_Create(t *testing.T) {
	e := newTestEnv(t)

	e.reviews.EXPECT().CreateReview(gomock.Any(), gomock.Any()).
		Return(&domain.Review{ID: 1, Dish: 3, Rating: 5}, nil)

	w := e.do(t, http.MethodPost, "/reviews", `{"dish":3,"rating":5,"comment":"ótimo"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("want 201, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestReviews_ListLimitOffsetWindow(t *testing.T) {
	e := newTestEnv(t)

	all := make([]*domain.Review, 0, 5)
	for i := 1; i <= 5; i++ {
		all = append(all, &domain.Review{ID: i, Dish: 3, Rating: 5})
	}
	e.reviews.EXPECT().ListDishReviews(gomock.Any(), 3, gomock.Any()).
		Return(all, nil).AnyTimes()

	cases := []struct {
		query   string
		wantIDs []int
	}{
		{"limit=2&offset=1", []int{2, 3}},
		{"limit=2&offset=4", []int{5}},
		{"offset=99", []int{}},
		{"", []int{1, 2, 3, 4, 5}},
	}
	for _, tc := range cases {
		w := e.do(t, http.MethodGet, "/dishes/3/reviews?"+tc.query, "")
		if w.Code != http.StatusOK {
			t.Fatalf("query %q: want 200, got %d", tc.query, w.Code)
		}
		var got []*domain.Review
		decodeJSON(t, w, &got)
		if len(got) != len(tc.wantIDs) {
			t.Fatalf("query %q: got %d reviews, want %d", tc.query, len(got), len(tc.wantIDs))
		}
		for i, id := range tc.wantIDs {
			if got[i].ID != id {
				t.Fatalf("query %q: got[%d].ID = %d, want %d", tc.query, i, got[i].ID, id)
			}
		}
	}
}

func TestTTS_GatedOnSetting(t *testing.T) {
	e := newTestEnv(t)

	// По умолчанию TTS выключен
	w := e.do(t, http.MethodPost, "/accessibility/tts", `{"text":"olá"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("want 409 while disabled, got %d", w.Code)
	}

	if w := e.do(t, http.MethodPost, "/settings/toggles/tts", ""); w.Code != http.StatusOK {
		t.Fatalf("toggle: want 200, got %d", w.Code)
	}

	e.a11yGW.EXPECT().Synthesize(gomock.Any(), gomock.Any()).
		Return(&domain.TTSResponse{AudioContent: "UklGRg=="}, nil)

	w = e.do(t, http.MethodPost, "/accessibility/tts", `{"text":"olá"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("want 200 after enabling, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestSettings_FontStepAndClamp(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(t, http.MethodPost, "/settings/font/increase", "")
	var st domain.AccessibilitySettings
	decodeJSON(t, w, &st)
	if st.FontSize != 18 {
		t.Fatalf("want 18 after increase, got %d", st.FontSize)
	}

	w = e.do(t, http.MethodPut, "/settings/font", `{"size":99}`)
	decodeJSON(t, w, &st)
	if st.FontSize != domain.FontSizeMax {
		t.Fatalf("want clamp to %d, got %d", domain.FontSizeMax, st.FontSize)
	}
}

func TestSettings_UnknownToggle(t *testing.T) {
	e := newTestEnv(t)
	w := e.do(t, http.MethodPost, "/settings/toggles/unknown", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", w.Code)
	}
}

func TestShortcutsHelp(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(t, http.MethodGet, "/accessibility/shortcuts", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Ctrl + Alt + H") {
		t.Fatalf("want formatted shortcut in help, got %s", w.Body.String())
	}
}

func TestContact_Validation(t *testing.T) {
	e := newTestEnv(t)
	w := e.do(t, http.MethodPost, "/contact", `{"name":"Ana"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", w.Code)
	}
}
