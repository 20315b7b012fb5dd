package domain

import "time"

// Review — отзыв о блюде.
type Review struct {
	ID           int       `json:"id"`
	Dish         int       `json:"dish"`
	UserName     string    `json:"user_name,omitempty"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment,omitempty"`
	HelpfulCount int       `json:"helpful_count"`
	IsApproved   bool      `json:"is_approved,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ReviewCreate — тело создания отзыва (rating 1..5).
type ReviewCreate struct {
	Dish    int    `json:"dish"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

// ReviewStats — агрегаты по блюду.
type ReviewStats struct {
	Dish          int            `json:"dish"`
	AverageRating float64        `json:"average_rating"`
	TotalReviews  int            `json:"total_reviews"`
	Distribution  map[string]int `json:"distribution,omitempty"`
}

// Допустимые значения параметра ordering у списка отзывов.
const (
	ReviewOrderNewest     = "-created_at"
	ReviewOrderHelpful    = "helpful"
	ReviewOrderRatingHigh = "rating_high"
	ReviewOrderRatingLow  = "rating_low"
)

// NormalizeReviewOrdering — неизвестное значение тихо заменяется дефолтом,
// как это делает бэкенд.
func NormalizeReviewOrdering(ordering string) string {
	switch ordering {
	case ReviewOrderNewest, ReviewOrderHelpful, ReviewOrderRatingHigh, ReviewOrderRatingLow:
		return ordering
	default:
		return ReviewOrderNewest
	}
}
