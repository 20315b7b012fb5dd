package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/joaomacarrao/storefront/internal/domain"
	"github.com/joaomacarrao/storefront/internal/ports"
)

var _ ports.ReviewGateway = (*ReviewClient)(nil)

// ReviewClient — REST-клиент отзывов.
type ReviewClient struct {
	c *Client
}

// NewReviewClient — клиент поверх общего HTTP-клиента.
func NewReviewClient(c *Client) *ReviewClient { return &ReviewClient{c: c} }

// CreateReview — POST /reviews/.
func (r *ReviewClient) CreateReview(ctx context.Context, req *domain.ReviewCreate) (*domain.Review, error) {
	var review domain.Review
	if err := r.c.do(ctx, http.MethodPost, "/reviews/", nil, req, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

// ListDishReviews — GET /reviews/dish/{id}/. Неизвестная сортировка
// молча заменяется сортировкой по умолчанию.
func (r *ReviewClient) ListDishReviews(ctx context.Context, dishID int, ordering string) ([]*domain.Review, error) {
	query := url.Values{}
	query.Set("ordering", domain.NormalizeReviewOrdering(ordering))

	var reviews []*domain.Review
	path := fmt.Sprintf("/reviews/dish/%d/", dishID)
	if err := r.c.do(ctx, http.MethodGet, path, query, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// MarkHelpful — POST /reviews/{id}/mark_helpful/.
func (r *ReviewClient) MarkHelpful(ctx context.Context, reviewID int) error {
	path := fmt.Sprintf("/reviews/%d/mark_helpful/", reviewID)
	return r.c.do(ctx, http.MethodPost, path, nil, nil, nil)
}

// DishStats — GET /reviews/dish/{id}/stats/.
func (r *ReviewClient) DishStats(ctx context.Context, dishID int) (*domain.ReviewStats, error) {
	var stats domain.ReviewStats
	path := fmt.Sprintf("/reviews/dish/%d/stats/", dishID)
	if err := r.c.do(ctx, http.MethodGet, path, nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
