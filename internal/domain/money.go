package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Money — денежная сумма в сентаво (1/100 реала).
// Храним целым числом, чтобы производные суммы (subtotal/total) считались точно;
// на проводе остаётся обычное число с двумя знаками (35.90), как у бэкенда.
type Money int64

// MoneyFromFloat — перевод из float (например, из конфигурации) с округлением до сентаво.
func MoneyFromFloat(v float64) Money {
	return Money(math.Round(v * 100))
}

// Float — значение в реалах (для провайдеров, ожидающих float).
func (m Money) Float() float64 { return float64(m) / 100 }

// String — каноничная запись с двумя знаками после запятой.
func (m Money) String() string {
	v := int64(m)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// MarshalJSON — сериализуем как число (113.80), не как строку.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON — принимаем и число, и строку ("5.00" встречается у DRF-сериализаторов).
func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*m = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("money: %w", err)
	}
	*m = MoneyFromFloat(f)
	return nil
}

// Mul — умножение суммы на количество.
func (m Money) Mul(n int) Money { return m * Money(n) }
