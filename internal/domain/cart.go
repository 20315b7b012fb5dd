package domain

// Dish — блюдо из меню ресторана (приходит из бэкенда, мы его не владеем).
type Dish struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       Money  `json:"price"`
	Category    string `json:"category,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Available   bool   `json:"available"`
}

// CartLine — позиция корзины. Ключ идентичности — Dish.ID:
// в корзине не бывает двух строк на одно блюдо.
type CartLine struct {
	Dish     Dish   `json:"dish"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes,omitempty"`
}

// CartSnapshot — то, что уходит в долговременное хранилище
// под фиксированным именем CartStorageName.
type CartSnapshot struct {
	Items       []CartLine `json:"items"`
	DeliveryFee Money      `json:"deliveryFee"`
}

// CartStorageName — фиксированное имя записи корзины в хранилище.
const CartStorageName = "joao-macarrao-cart"

// DefaultDeliveryFee — таксa доставки по умолчанию (5.00).
const DefaultDeliveryFee = Money(500)
