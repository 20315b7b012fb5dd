//go:build integration

package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/joaomacarrao/storefront/internal/a11y"
	cachemem "github.com/joaomacarrao/storefront/internal/cache/memory"
	"github.com/joaomacarrao/storefront/internal/cart"
	"github.com/joaomacarrao/storefront/internal/checkout"
	"github.com/joaomacarrao/storefront/internal/domain"
	pgrepo "github.com/joaomacarrao/storefront/internal/repo/postgres"
	"github.com/joaomacarrao/storefront/internal/testutil"
	rest "github.com/joaomacarrao/storefront/internal/transport/http"
	"github.com/joaomacarrao/storefront/internal/usecase"
	"github.com/joaomacarrao/storefront/pkg/validate"
)

// newIntegrationRouter — роутер поверх настоящего Postgres
// (внешние гейтвеи здесь не участвуют — проверяем сохранение клиентского состояния).
func newIntegrationRouter(t *testing.T, pool *pgxpool.Pool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := nopLogger{}
	carts := cart.NewManager(pgrepo.NewCartRepository(pool), validate.NewCartValidator(), log)
	settings := a11y.NewManager(func() a11y.Document { return nopDocument{} }, pgrepo.NewSettingsRepository(pool), log)

	h := rest.NewHandler(rest.Deps{
		Carts:     carts,
		Checkouts: checkout.NewRegistry(nil, nil, log),
		Settings:  settings,
		Shortcuts: a11y.NewShortcutDispatcher(),
		Orders:    usecase.NewOrderService(nil, cachemem.NewLRUCacheTTL(4, 0), log, nil),
		Log:       log,
	}, 0)
	return rest.NewRouter(h, "")
}

func startPG(t *testing.T) *pgxpool.Pool {
	t.Helper()

	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopPG(context.Background()) })

	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	pool, err := pgxpool.New(context.Background(), pg.DSN)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func doJSON(t *testing.T, r *gin.Engine, session, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("X-Session-ID", session)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Корзина переживает перезапуск: второй роутер с пустым реестром
// гидрирует её из Postgres по тому же session id.
func TestCart_SurvivesRestart_TC(t *testing.T) {
	pool := startPG(t)
	session := testutil.UniqSessionID()

	r1 := newIntegrationRouter(t, pool)
	w := doJSON(t, r1, session, http.MethodPost, "/cart/items",
		`{"dish":{"id":3,"name":"Spaghetti","price":35.90},"quantity":2,"notes":"sem cebola"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// "Перезапуск" — новый менеджер без живых корзин
	r2 := newIntegrationRouter(t, pool)
	w = doJSON(t, r2, session, http.MethodGet, "/cart", "")
	require.Equal(t, http.StatusOK, w.Code)

	var view struct {
		Items      []domain.CartLine `json:"items"`
		ItemsCount int               `json:"items_count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	require.Len(t, view.Items, 1)
	require.Equal(t, 2, view.ItemsCount)
	require.Equal(t, "sem cebola", view.Items[0].Notes)
}

// Настройки доступности переживают перезапуск тем же способом.
func TestSettings_SurviveRestart_TC(t *testing.T) {
	pool := startPG(t)
	session := testutil.UniqSessionID()

	r1 := newIntegrationRouter(t, pool)
	w := doJSON(t, r1, session, http.MethodPost, "/settings/toggles/high-contrast", "")
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r1, session, http.MethodPost, "/settings/font/increase", "")
	require.Equal(t, http.StatusOK, w.Code)

	r2 := newIntegrationRouter(t, pool)
	w = doJSON(t, r2, session, http.MethodGet, "/settings", "")
	require.Equal(t, http.StatusOK, w.Code)

	var st domain.AccessibilitySettings
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &st))
	require.True(t, st.HighContrast)
	require.Equal(t, 18, st.FontSize)
}
