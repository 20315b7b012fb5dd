package ports

import (
	"context"

	"github.com/joaomacarrao/storefront/internal/domain"
)

// ReviewGateway — REST-клиент отзывов.
type ReviewGateway interface {
	CreateReview(ctx context.Context, req *domain.ReviewCreate) (*domain.Review, error)
	ListDishReviews(ctx context.Context, dishID int, ordering string) ([]*domain.Review, error)
	MarkHelpful(ctx context.Context, reviewID int) error
	DishStats(ctx context.Context, dishID int) (*domain.ReviewStats, error)
}
