package domain

import "time"

// Статусы заказа (как у бэкенда).
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusPreparing  = "preparing"
	OrderStatusReady      = "ready"
	OrderStatusDelivering = "delivering"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// OrderItemCreate — позиция в запросе создания заказа.
type OrderItemCreate struct {
	DishID   int    `json:"dish_id"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes"`
}

// OrderCreate — тело POST /orders/: снимок корзины + данные доставки.
type OrderCreate struct {
	PaymentMethod   string            `json:"payment_method"`
	DeliveryAddress string            `json:"delivery_address"`
	DeliveryCity    string            `json:"delivery_city"`
	DeliveryZipCode string            `json:"delivery_zip_code,omitempty"`
	DeliveryFee     Money             `json:"delivery_fee"`
	Notes           string            `json:"notes,omitempty"`
	Items           []OrderItemCreate `json:"items"`
}

// OrderItem — позиция созданного заказа.
type OrderItem struct {
	ID       int    `json:"id"`
	DishID   int    `json:"dish_id"`
	DishName string `json:"dish_name,omitempty"`
	Quantity int    `json:"quantity"`
	Price    Money  `json:"price"`
	Notes    string `json:"notes,omitempty"`
}

// Order — заказ, как его отдаёт бэкенд.
type Order struct {
	ID              int         `json:"id"`
	Status          string      `json:"status"`
	PaymentMethod   string      `json:"payment_method"`
	PaymentStatus   string      `json:"payment_status"`
	DeliveryAddress string      `json:"delivery_address"`
	DeliveryCity    string      `json:"delivery_city"`
	DeliveryZipCode string      `json:"delivery_zip_code,omitempty"`
	Subtotal        Money       `json:"subtotal"`
	DeliveryFee     Money       `json:"delivery_fee"`
	Total           Money       `json:"total"`
	Notes           string      `json:"notes,omitempty"`
	Items           []OrderItem `json:"items,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// OrderPage — страница списка заказов (DRF-пагинация).
type OrderPage struct {
	Count    int      `json:"count"`
	Next     string   `json:"next,omitempty"`
	Previous string   `json:"previous,omitempty"`
	Results  []*Order `json:"results"`
}

// OrderStatusEvent — событие смены статуса заказа из Kafka.
type OrderStatusEvent struct {
	OrderID       int    `json:"order_id"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status,omitempty"`
}
