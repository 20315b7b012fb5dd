//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/joaomacarrao/storefront/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// UniqSessionID — уникальный идентификатор сессии для изоляции тестов.
func UniqSessionID() string { return "sess-" + UniqSuffix() }

// Мини-генератор валидного снимка корзины
func MakeCartSnapshot(opts ...func(*domain.CartSnapshot)) domain.CartSnapshot {
	s := domain.CartSnapshot{
		Items: []domain.CartLine{
			{
				Dish: domain.Dish{
					ID:        1,
					Name:      "Spaghetti alla Carbonara",
					Price:     domain.Money(3590),
					Category:  "massas",
					Available: true,
				},
				Quantity: 2,
				Notes:    "sem queijo",
			},
			{
				Dish: domain.Dish{
					ID:        2,
					Name:      "Pizza Margherita",
					Price:     domain.Money(4200),
					Category:  "pizzas",
					Available: true,
				},
				Quantity: 1,
			},
		},
		DeliveryFee: domain.DefaultDeliveryFee,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithItems — оставить в снимке n первых позиций (0 — пустая корзина).
func WithItems(n int) func(*domain.CartSnapshot) {
	return func(s *domain.CartSnapshot) {
		if n < len(s.Items) {
			s.Items = s.Items[:n]
		}
	}
}

// MakeSettings — настройки доступности с отличиями от умолчаний.
func MakeSettings() domain.AccessibilitySettings {
	s := domain.DefaultAccessibilitySettings()
	s.FontSize = 20
	s.HighContrast = true
	s.TTSEnabled = true
	s.Language = domain.LangEnglish
	return s
}
