package ports

import (
	"context"

	"github.com/joaomacarrao/storefront/internal/domain"
)

// ContactGateway — REST-клиент формы обратной связи.
type ContactGateway interface {
	Send(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error)
}

// AdminGateway — REST-клиент админской статистики.
type AdminGateway interface {
	Stats(ctx context.Context) (*domain.AdminStats, error)
}
