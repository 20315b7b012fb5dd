// Пакет ctxmeta — нейтральный слой для работы с метаданными запроса,
// которые прокидываются через context.Context (request_id, session_id,
// токен авторизации, trace_id и т.д.).
// Идея: HTTP-слой, гейтвеи и логгер зависят от небольшого общего пакета, но не друг от друга.
package ctxmeta

import "context"

type ctxKey string

const (
	// Ключи контекста (неэкспортируемые типы — чтобы избежать коллизий).
	KeyRequestID ctxKey = "request_id"
	KeySessionID ctxKey = "session_id"
	KeyAuthToken ctxKey = "auth_token"
)

// WithRequestID кладёт request_id в контекст (если пусто — ничего не делает).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	return stringFromContext(ctx, KeyRequestID)
}

// WithSessionID кладёт идентификатор клиентской сессии в контекст.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	if ctx == nil || sessionID == "" {
		return ctx
	}
	return context.WithValue(ctx, KeySessionID, sessionID)
}

// SessionIDFromContext достаёт идентификатор сессии из контекста.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	return stringFromContext(ctx, KeySessionID)
}

// WithAuthToken кладёт bearer-токен клиента для передачи бэкенду.
func WithAuthToken(ctx context.Context, token string) context.Context {
	if ctx == nil || token == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyAuthToken, token)
}

// AuthTokenFromContext достаёт bearer-токен из контекста.
func AuthTokenFromContext(ctx context.Context) (string, bool) {
	return stringFromContext(ctx, KeyAuthToken)
}

func stringFromContext(ctx context.Context, key ctxKey) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(key).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
