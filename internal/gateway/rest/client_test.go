package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/joaomacarrao/storefront/internal/domain"
	"github.com/joaomacarrao/storefront/pkg/ctxmeta"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/api", 5*time.Second, noopLogger{})
}

func TestClient_BearerTokenFromContext(t *testing.T) {
	var gotAuth string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	})

	ctx := ctxmeta.WithAuthToken(context.Background(), "tok-123")
	if err := c.do(ctx, http.MethodGet, "/orders/1/", nil, nil, &struct{}{}); err != nil {
		t.Fatalf("do: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("Authorization = %q", gotAuth)
	}

	// Без токена заголовок не выставляется.
	if err := c.do(context.Background(), http.MethodGet, "/orders/1/", nil, nil, &struct{}{}); err != nil {
		t.Fatalf("do: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("Authorization без токена = %q", gotAuth)
	}
}

func TestClient_ErrorMessageExtraction(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"message", `{"message":"Pedido não encontrado"}`, "Pedido não encontrado"},
		{"detail", `{"detail":"As credenciais de autenticação não foram fornecidas."}`, "As credenciais de autenticação não foram fornecidas."},
		{"error", `{"error":"invalid"}`, "invalid"},
		{"fallback", `<html>bad gateway</html>`, "requisição falhou (status 404)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(tc.body))
			})

			err := c.do(context.Background(), http.MethodGet, "/orders/9/", nil, nil, nil)
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("err = %v", err)
			}
			if apiErr.StatusCode != http.StatusNotFound || apiErr.Message != tc.want {
				t.Fatalf("apiErr = %+v", apiErr)
			}
		})
	}
}

func TestOrderClient_CreateAndList(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/orders/":
			if r.Method != http.MethodPost {
				t.Fatalf("method = %s", r.Method)
			}
			var req domain.OrderCreate
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if req.PaymentMethod != "credit" || len(req.Items) != 1 {
				t.Fatalf("req = %+v", req)
			}
			json.NewEncoder(w).Encode(domain.Order{ID: 10, Status: domain.OrderStatusPending})
		case "/api/orders/my_orders/":
			q := r.URL.Query()
			if q.Get("status") != "pending" || q.Get("ordering") != "-created_at" || q.Get("page") != "2" {
				t.Fatalf("query = %v", q)
			}
			json.NewEncoder(w).Encode(domain.OrderPage{Count: 1, Results: []*domain.Order{{ID: 10}}})
		default:
			t.Fatalf("path = %s", r.URL.Path)
		}
	})
	orders := NewOrderClient(c)

	created, err := orders.CreateOrder(context.Background(), &domain.OrderCreate{
		PaymentMethod: "credit",
		Items:         []domain.OrderItemCreate{{DishID: 1, Quantity: 2}},
	})
	if err != nil || created.ID != 10 {
		t.Fatalf("CreateOrder: %v %+v", err, created)
	}

	page, err := orders.ListMyOrders(context.Background(), "pending", "-created_at", 2)
	if err != nil || page.Count != 1 || len(page.Results) != 1 {
		t.Fatalf("ListMyOrders: %v %+v", err, page)
	}
}

func TestPaymentClient_CreateDecodesPixVariant(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/payments/create/" {
			t.Fatalf("path = %s", r.URL.Path)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body["order_id"].(float64) != 10 || body["payment_method"] != "pix" {
			t.Fatalf("body = %v", body)
		}
		w.Write([]byte(`{"success":true,"payment_method":"pix","data":{"payment_id":3,"qr_code":"QR","copy_paste":"copia","amount":118.80}}`))
	})

	resp, err := NewPaymentClient(c).CreatePayment(context.Background(), 10, domain.PaymentPix)
	if err != nil {
		t.Fatalf("CreatePayment: %v", err)
	}
	pix, ok := resp.Data.(domain.PixPayment)
	if !ok {
		t.Fatalf("data = %T", resp.Data)
	}
	if pix.QRCode != "QR" || pix.Amount != domain.Money(11880) {
		t.Fatalf("pix = %+v", pix)
	}
}

func TestReviewClient_OrderingNormalized(t *testing.T) {
	var gotOrdering string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotOrdering = r.URL.Query().Get("ordering")
		w.Write([]byte(`[]`))
	})
	reviews := NewReviewClient(c)

	// Значения сортировки — контракт бэкенда, проверяются литералами.
	cases := []struct{ in, want string }{
		{"nonsense", "-created_at"},
		{"", "-created_at"},
		{"-rating", "-created_at"},
		{"helpful", "helpful"},
		{"rating_high", "rating_high"},
		{"rating_low", "rating_low"},
	}
	for _, tc := range cases {
		if _, err := reviews.ListDishReviews(context.Background(), 5, tc.in); err != nil {
			t.Fatalf("ListDishReviews(%q): %v", tc.in, err)
		}
		if gotOrdering != tc.want {
			t.Fatalf("ordering(%q) = %q, want %q", tc.in, gotOrdering, tc.want)
		}
	}
}

func TestAccessibilityClient_Synthesize(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/accessibility/tts/" {
			t.Fatalf("path = %s", r.URL.Path)
		}
		var req domain.TTSRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if req.LanguageCode != domain.LangPortuguese || req.VoiceGender != domain.VoiceNeutral {
			t.Fatalf("req = %+v", req)
		}
		json.NewEncoder(w).Encode(domain.TTSResponse{AudioContent: "YXVkaW8="})
	})

	resp, err := NewAccessibilityClient(c).Synthesize(context.Background(), &domain.TTSRequest{
		Text:         "olá",
		LanguageCode: domain.LangPortuguese,
		VoiceGender:  domain.VoiceNeutral,
	})
	if err != nil || resp.AudioContent != "YXVkaW8=" {
		t.Fatalf("Synthesize: %v %+v", err, resp)
	}
}

func TestContactClient_Send(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/contact/" || r.Method != http.MethodPost {
			t.Fatalf("%s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(domain.ContactMessage{ID: 1, Name: "Maria", Message: "Oi"})
	})

	created, err := NewContactClient(c).Send(context.Background(), &domain.ContactMessage{Name: "Maria", Message: "Oi"})
	if err != nil || created.ID != 1 {
		t.Fatalf("Send: %v %+v", err, created)
	}
}
