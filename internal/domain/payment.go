package domain

import (
	"encoding/json"
	"fmt"
)

// PaymentMethod — способ оплаты на стороне витрины.
type PaymentMethod string

const (
	PaymentPix        PaymentMethod = "pix"
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentDebitCard  PaymentMethod = "debit_card"
	PaymentCash       PaymentMethod = "cash"
)

// Valid — метод из известного набора.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentPix, PaymentCreditCard, PaymentDebitCard, PaymentCash:
		return true
	}
	return false
}

// OrderCode — код метода в теле создания заказа
// (старый контракт бэкенда: credit/debit/money вместо полных имён).
func (m PaymentMethod) OrderCode() string {
	switch m {
	case PaymentCreditCard:
		return "credit"
	case PaymentDebitCard:
		return "debit"
	case PaymentCash:
		return "money"
	default:
		return string(m)
	}
}

// PaymentData — размеченное объединение ответа create-payment:
// по одному варианту на метод вместо нетипизированного payload.
type PaymentData interface {
	Method() PaymentMethod
}

// PixPayment — данные PIX: QR-код и строка copia-e-cola.
type PixPayment struct {
	PaymentID int    `json:"payment_id"`
	QRCode    string `json:"qr_code"`
	QRCodeURL string `json:"qr_code_url,omitempty"`
	CopyPaste string `json:"copy_paste"`
	Amount    Money  `json:"amount"`
	ExpiresAt string `json:"expires_at,omitempty"`
}

func (PixPayment) Method() PaymentMethod { return PaymentPix }

// CardPayment — данные карточного провайдера (credit и debit — один формат).
type CardPayment struct {
	PaymentID      int           `json:"payment_id"`
	ClientSecret   string        `json:"client_secret"`
	PublishableKey string        `json:"publishable_key"`
	Amount         Money         `json:"amount"`
	Card           PaymentMethod `json:"-"`
}

func (c CardPayment) Method() PaymentMethod {
	if c.Card == PaymentDebitCard {
		return PaymentDebitCard
	}
	return PaymentCreditCard
}

// CashPayment — оплата наличными при доставке: провайдеру нечего отдавать.
type CashPayment struct {
	PaymentID int `json:"payment_id,omitempty"`
}

func (CashPayment) Method() PaymentMethod { return PaymentCash }

// PaymentResponse — ответ create-payment целиком.
type PaymentResponse struct {
	Success bool
	Data    PaymentData
}

// PaymentID — идентификатор платежа независимо от метода; 0, если данных нет.
func (p *PaymentResponse) PaymentID() int {
	switch d := p.Data.(type) {
	case PixPayment:
		return d.PaymentID
	case CardPayment:
		return d.PaymentID
	case CashPayment:
		return d.PaymentID
	}
	return 0
}

// UnmarshalJSON — разбор по дискриминатору payment_method.
func (p *PaymentResponse) UnmarshalJSON(raw []byte) error {
	var head struct {
		Success       bool            `json:"success"`
		PaymentMethod PaymentMethod   `json:"payment_method"`
		Data          json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return err
	}

	p.Success = head.Success

	switch head.PaymentMethod {
	case PaymentPix:
		var d PixPayment
		if err := json.Unmarshal(head.Data, &d); err != nil {
			return fmt.Errorf("pix data: %w", err)
		}
		p.Data = d
	case PaymentCreditCard, PaymentDebitCard:
		var d CardPayment
		if err := json.Unmarshal(head.Data, &d); err != nil {
			return fmt.Errorf("card data: %w", err)
		}
		d.Card = head.PaymentMethod
		p.Data = d
	case PaymentCash:
		var d CashPayment
		if len(head.Data) > 0 {
			if err := json.Unmarshal(head.Data, &d); err != nil {
				return fmt.Errorf("cash data: %w", err)
			}
		}
		p.Data = d
	default:
		return fmt.Errorf("unknown payment_method %q", head.PaymentMethod)
	}
	return nil
}

// MarshalJSON — обратная сторона: отдаем наружу тот же формат, что принимаем.
func (p PaymentResponse) MarshalJSON() ([]byte, error) {
	if p.Data == nil {
		return nil, fmt.Errorf("payment response without data")
	}
	return json.Marshal(struct {
		Success       bool          `json:"success"`
		PaymentMethod PaymentMethod `json:"payment_method"`
		Data          PaymentData   `json:"data"`
	}{p.Success, p.Data.Method(), p.Data})
}
