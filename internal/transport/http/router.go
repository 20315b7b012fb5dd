package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/joaomacarrao/storefront/internal/a11y"
	"github.com/joaomacarrao/storefront/internal/cart"
	"github.com/joaomacarrao/storefront/internal/checkout"
	gw "github.com/joaomacarrao/storefront/internal/gateway/rest"
	"github.com/joaomacarrao/storefront/internal/ports"
	"github.com/joaomacarrao/storefront/internal/usecase"
	"github.com/joaomacarrao/storefront/pkg/ctxmeta"
	"github.com/joaomacarrao/storefront/pkg/httpx"
)

// Deps — зависимости HTTP-слоя.
type Deps struct {
	Carts         *cart.Manager
	Checkouts     *checkout.Registry
	Settings      *a11y.Manager
	Shortcuts     *a11y.ShortcutDispatcher
	Orders        *usecase.OrderService
	Payments      ports.PaymentGateway
	Reviews       ports.ReviewGateway
	Accessibility ports.AccessibilityGateway
	Contact       ports.ContactGateway
	Admin         ports.AdminGateway
	Log           ports.Logger
}

type Handler struct {
	deps           Deps
	handlerTimeout time.Duration
}

// NewHandler — конструктор. handlerTimeout <= 0 отключает таймаут обработчиков.
func NewHandler(deps Deps, handlerTimeout time.Duration) *Handler {
	return &Handler{deps: deps, handlerTimeout: handlerTimeout}
}

// NewRouter — собирает маршруты витрины.
// otelServiceName непустой — включается otelgin-мидлварь.
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.SessionIDMiddleware())
	r.Use(httpx.AuthTokenMiddleware())
	r.Use(httpx.RequestLogger(h.deps.Log))
	if h.handlerTimeout > 0 {
		r.Use(timeoutMiddleware(h.handlerTimeout))
	}

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/cart", h.getCart)
	r.POST("/cart/items", h.addCartItem)
	r.PATCH("/cart/items/:dishID/quantity", h.updateCartQuantity)
	r.PATCH("/cart/items/:dishID/notes", h.updateCartNotes)
	r.DELETE("/cart/items/:dishID", h.removeCartItem)
	r.DELETE("/cart", h.clearCart)
	r.PUT("/cart/delivery-fee", h.setDeliveryFee)

	r.POST("/checkout/start", h.startCheckout)
	r.GET("/checkout", h.checkoutState)
	r.PUT("/checkout/delivery", h.setCheckoutDelivery)
	r.POST("/checkout/next", h.checkoutNext)
	r.POST("/checkout/back", h.checkoutBack)
	r.POST("/checkout/method", h.selectPaymentMethod)
	r.POST("/checkout/confirm", h.confirmCheckout)
	r.POST("/checkout/retry", h.retryCheckout)
	r.POST("/checkout/complete", h.completeCheckout)
	r.POST("/checkout/fail", h.failCheckout)
	r.DELETE("/checkout", h.abandonCheckout)

	r.GET("/settings", h.getSettings)
	r.POST("/settings/reset", h.resetSettings)
	r.PUT("/settings/font", h.setFontSize)
	r.POST("/settings/font/increase", h.increaseFontSize)
	r.POST("/settings/font/decrease", h.decreaseFontSize)
	r.POST("/settings/font/reset", h.resetFontSize)
	r.POST("/settings/toggles/:feature", h.toggleFeature)
	r.PUT("/settings/language", h.setLanguage)
	r.PUT("/settings/voice", h.setVoiceGender)

	r.GET("/orders", h.listOrders)
	r.GET("/orders/:id", h.getOrderByID)
	r.POST("/orders/:id/cancel", h.cancelOrder)

	r.GET("/payments/:id/status", h.paymentStatus)
	r.POST("/payments/:id/confirm", h.confirmPayment)

	r.POST("/reviews", h.createReview)
	r.POST("/reviews/:id/helpful", h.markReviewHelpful)
	r.GET("/dishes/:id/reviews", h.listDishReviews)
	r.GET("/dishes/:id/reviews/stats", h.dishReviewStats)

	r.GET("/accessibility/config", h.accessibilityConfig)
	r.POST("/accessibility/tts", h.synthesizeSpeech)
	r.GET("/accessibility/shortcuts", h.shortcutsHelp)

	r.POST("/contact", h.sendContactMessage)
	r.GET("/admin/stats", h.adminStats)

	return r
}

// timeoutMiddleware — ограничивает время обработки одного запроса.
func timeoutMiddleware(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// sessionID — идентификатор сессии из контекста (middleware гарантирует наличие).
func sessionID(c *gin.Context) string {
	sid, _ := ctxmeta.SessionIDFromContext(c.Request.Context())
	return sid
}

// cartStore — корзина текущей сессии.
func (h *Handler) cartStore(c *gin.Context) *cart.Store {
	return h.deps.Carts.Load(c.Request.Context(), sessionID(c))
}

// settingsService — настройки доступности текущей сессии.
func (h *Handler) settingsService(c *gin.Context) *a11y.Service {
	return h.deps.Settings.Load(c.Request.Context(), sessionID(c))
}

// fail — перевод ошибки в HTTP-ответ:
// ошибки бэкенда сохраняют статус и сообщение, доменные ограничители — 400/409,
// всё остальное — 500 без деталей.
func (h *Handler) fail(c *gin.Context, err error) {
	var apiErr *gw.APIError
	switch {
	case errors.As(err, &apiErr):
		c.JSON(apiErr.StatusCode, gin.H{"error": apiErr.Message})
	case errors.Is(err, checkout.ErrMissingDeliveryFields),
		errors.Is(err, checkout.ErrNoPaymentMethod),
		errors.Is(err, checkout.ErrInvalidPaymentMethod),
		errors.Is(err, a11y.ErrUnknownLanguage),
		errors.Is(err, a11y.ErrUnknownVoice):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, checkout.ErrWrongStep), errors.Is(err, checkout.ErrInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.deps.Log.Errorf(c.Request.Context(), "handler error path=%s err=%v", c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
