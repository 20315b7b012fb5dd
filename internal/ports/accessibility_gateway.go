package ports

import (
	"context"

	"github.com/joaomacarrao/storefront/internal/domain"
)

// AccessibilityGateway — REST-клиент конфигурации доступности и синтеза речи.
type AccessibilityGateway interface {
	Config(ctx context.Context) (*domain.AccessibilityConfig, error)
	Synthesize(ctx context.Context, req *domain.TTSRequest) (*domain.TTSResponse, error)
}
