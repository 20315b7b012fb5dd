package httpx

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joaomacarrao/storefront/pkg/ctxmeta"
)

// SessionIDMiddleware:
// - принимает X-Session-ID от клиента или генерирует UUID
// - кладёт session_id в контекст
// - возвращает его в ответном заголовке X-Session-ID,
//   чтобы клиент сохранил идентификатор и присылал дальше
func SessionIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader("X-Session-ID")
		if sessionID == "" {
			sessionID = uuid.New().String()
		}
		c.Header("X-Session-ID", sessionID)

		ctx := ctxmeta.WithSessionID(c.Request.Context(), sessionID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// AuthTokenMiddleware — пробрасывает bearer-токен клиента в контекст,
// дальше его подставляют REST-гейтвеи при обращении к бэкенду.
// Отсутствие токена не ошибка: часть маршрутов публичная.
func AuthTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if token, ok := strings.CutPrefix(auth, "Bearer "); ok && token != "" {
			ctx := ctxmeta.WithAuthToken(c.Request.Context(), token)
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}
