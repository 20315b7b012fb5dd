package domain

import "time"

// ContactMessage — сообщение из формы обратной связи.
type ContactMessage struct {
	ID        int       `json:"id,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// AdminStats — сводка для панели администратора.
type AdminStats struct {
	TotalOrders     int            `json:"total_orders"`
	PendingOrders   int            `json:"pending_orders"`
	TotalRevenue    Money          `json:"total_revenue"`
	OrdersByStatus  map[string]int `json:"orders_by_status,omitempty"`
	TopDishes       []Dish         `json:"top_dishes,omitempty"`
	AverageRating   float64        `json:"average_rating,omitempty"`
}
