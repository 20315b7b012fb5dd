package checkout

import (
	"context"
	"errors"
	"sync"

	"github.com/joaomacarrao/storefront/internal/cart"
	"github.com/joaomacarrao/storefront/internal/domain"
	"github.com/joaomacarrao/storefront/internal/ports"
	"github.com/joaomacarrao/storefront/pkg/metrics"
)

// Step — шаг оформления заказа.
type Step string

const (
	StepDelivery       Step = "delivery"
	StepPaymentMethod  Step = "payment_method"
	StepPaymentProcess Step = "payment_process"
	StepSuccess        Step = "success"
	StepError          Step = "error"
)

var (
	// ErrWrongStep — переход недопустим из текущего шага.
	ErrWrongStep = errors.New("checkout: transition not allowed from current step")
	// ErrMissingDeliveryFields — адрес и город обязательны для перехода дальше.
	ErrMissingDeliveryFields = errors.New("checkout: delivery address and city are required")
	// ErrNoPaymentMethod — способ оплаты не выбран.
	ErrNoPaymentMethod = errors.New("checkout: payment method is not selected")
	// ErrInvalidPaymentMethod — неизвестный способ оплаты.
	ErrInvalidPaymentMethod = errors.New("checkout: unknown payment method")
	// ErrInFlight — предыдущее подтверждение ещё выполняется.
	ErrInFlight = errors.New("checkout: confirmation already in flight")
)

// Session — машина состояний оформления одного заказа.
// Эфемерна: живёт в памяти, не переживает сброс и не персистится.
// Подтверждение сериализует два зависимых вызова (заказ, затем платёж);
// повторное подтверждение во время сетевых вызовов отсекается флагом inFlight.
type Session struct {
	mu   sync.Mutex
	step Step

	deliveryAddress string
	deliveryCity    string
	deliveryZipCode string
	orderNotes      string

	method          domain.PaymentMethod
	createdOrderIDs []int
	payment         *domain.PaymentResponse
	lastError       string
	inFlight        bool

	cart     *cart.Store
	orders   ports.OrderGateway
	payments ports.PaymentGateway
	log      ports.Logger
}

// State — наблюдаемый снимок сессии (для транспортного слоя).
type State struct {
	Step            Step                    `json:"step"`
	DeliveryAddress string                  `json:"delivery_address"`
	DeliveryCity    string                  `json:"delivery_city"`
	DeliveryZipCode string                  `json:"delivery_zip_code,omitempty"`
	OrderNotes      string                  `json:"order_notes,omitempty"`
	PaymentMethod   domain.PaymentMethod    `json:"payment_method,omitempty"`
	CreatedOrderIDs []int                   `json:"created_order_ids,omitempty"`
	Payment         *domain.PaymentResponse `json:"payment,omitempty"`
	LastError       string                  `json:"last_error,omitempty"`
	InFlight        bool                    `json:"in_flight"`
}

// NewSession — свежая сессия на шаге delivery.
func NewSession(c *cart.Store, orders ports.OrderGateway, payments ports.PaymentGateway, log ports.Logger) *Session {
	return &Session{
		step:     StepDelivery,
		cart:     c,
		orders:   orders,
		payments: payments,
		log:      log,
	}
}

// State — текущий снимок сессии.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int, len(s.createdOrderIDs))
	copy(ids, s.createdOrderIDs)
	return State{
		Step:            s.step,
		DeliveryAddress: s.deliveryAddress,
		DeliveryCity:    s.deliveryCity,
		DeliveryZipCode: s.deliveryZipCode,
		OrderNotes:      s.orderNotes,
		PaymentMethod:   s.method,
		CreatedOrderIDs: ids,
		Payment:         s.payment,
		LastError:       s.lastError,
		InFlight:        s.inFlight,
	}
}

// Step — текущий шаг.
func (s *Session) Step() Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// SetDelivery — сохраняет поля доставки; допустимо на любом шаге до
// подтверждения, валидация выполняется при переходе.
func (s *Session) SetDelivery(address, city, zipCode, notes string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deliveryAddress = address
	s.deliveryCity = city
	s.deliveryZipCode = zipCode
	s.orderNotes = notes
}

// ProceedToPaymentMethod — переход delivery → payment_method.
// Блокируется, пока адрес и город не заполнены оба.
func (s *Session) ProceedToPaymentMethod() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step != StepDelivery {
		return ErrWrongStep
	}
	if s.deliveryAddress == "" || s.deliveryCity == "" {
		return ErrMissingDeliveryFields
	}
	s.transitionLocked(StepPaymentMethod)
	return nil
}

// Back — возврат payment_method → delivery; поля доставки сохраняются.
func (s *Session) Back() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step != StepPaymentMethod {
		return ErrWrongStep
	}
	s.transitionLocked(StepDelivery)
	return nil
}

// SelectPaymentMethod — выбор способа оплаты на шаге payment_method.
func (s *Session) SelectPaymentMethod(m domain.PaymentMethod) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step != StepPaymentMethod {
		return ErrWrongStep
	}
	if !m.Valid() {
		return ErrInvalidPaymentMethod
	}
	s.method = m
	return nil
}

// Confirm — подтверждение: создаёт заказ из снимка корзины, затем платёж
// по возвращённому id. Сбой любого из вызовов переводит в error с текстом
// причины; уже созданный заказ не откатывается, его id остаётся в
// CreatedOrderIDs. Успех переводит в payment_process.
func (s *Session) Confirm(ctx context.Context) error {
	s.mu.Lock()
	if s.step != StepPaymentMethod {
		s.mu.Unlock()
		return ErrWrongStep
	}
	if s.method == "" {
		s.mu.Unlock()
		return ErrNoPaymentMethod
	}
	if s.inFlight {
		s.mu.Unlock()
		return ErrInFlight
	}
	s.inFlight = true
	req := s.buildOrderLocked()
	s.mu.Unlock()

	order, err := s.orders.CreateOrder(ctx, req)
	if err != nil {
		s.failConfirm(ctx, err)
		return err
	}

	s.mu.Lock()
	s.createdOrderIDs = append(s.createdOrderIDs, order.ID)
	if len(s.createdOrderIDs) > 1 {
		s.log.Warnf(ctx, "checkout retry created another order session orders=%v", s.createdOrderIDs)
	}
	method := s.method
	s.mu.Unlock()

	payment, err := s.payments.CreatePayment(ctx, order.ID, method)
	if err != nil {
		s.failConfirm(ctx, err)
		return err
	}

	s.mu.Lock()
	s.payment = payment
	s.inFlight = false
	s.transitionLocked(StepPaymentProcess)
	s.mu.Unlock()
	return nil
}

// PaymentSucceeded — колбэк успешной оплаты от платёжного виджета.
// Побочный эффект: корзина очищается.
func (s *Session) PaymentSucceeded(ctx context.Context) error {
	s.mu.Lock()
	if s.step != StepPaymentProcess {
		s.mu.Unlock()
		return ErrWrongStep
	}
	s.transitionLocked(StepSuccess)
	s.mu.Unlock()

	s.cart.Clear(ctx)
	return nil
}

// PaymentFailed — колбэк ошибки оплаты с текстом причины.
func (s *Session) PaymentFailed(message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step != StepPaymentProcess {
		return ErrWrongStep
	}
	s.lastError = message
	s.transitionLocked(StepError)
	return nil
}

// Retry — ручной повтор error → payment_method. Прежний заказ не
// переиспользуется: подтверждение создаст новый цикл заказ/платёж.
func (s *Session) Retry() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step != StepError {
		return ErrWrongStep
	}
	s.lastError = ""
	s.payment = nil
	s.transitionLocked(StepPaymentMethod)
	return nil
}

// buildOrderLocked — снимок корзины в тело запроса создания заказа.
func (s *Session) buildOrderLocked() *domain.OrderCreate {
	snapshot := s.cart.Snapshot()
	items := make([]domain.OrderItemCreate, 0, len(snapshot.Items))
	for _, line := range snapshot.Items {
		items = append(items, domain.OrderItemCreate{
			DishID:   line.Dish.ID,
			Quantity: line.Quantity,
			Notes:    line.Notes,
		})
	}
	return &domain.OrderCreate{
		PaymentMethod:   s.method.OrderCode(),
		DeliveryAddress: s.deliveryAddress,
		DeliveryCity:    s.deliveryCity,
		DeliveryZipCode: s.deliveryZipCode,
		DeliveryFee:     snapshot.DeliveryFee,
		Notes:           s.orderNotes,
		Items:           items,
	}
}

// failConfirm — перевод в error после сбоя заказа или платежа.
func (s *Session) failConfirm(ctx context.Context, cause error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inFlight = false
	s.lastError = cause.Error()
	s.transitionLocked(StepError)
	s.log.Errorf(ctx, "checkout confirm failed err=%v orders=%v", cause, s.createdOrderIDs)
}

// transitionLocked — смена шага с учётом метрики. Вызывать под мьютексом.
func (s *Session) transitionLocked(to Step) {
	s.step = to
	metrics.CheckoutTransitions.WithLabelValues(string(to)).Inc()
}
