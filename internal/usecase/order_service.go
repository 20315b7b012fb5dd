package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/joaomacarrao/storefront/internal/domain"
	"github.com/joaomacarrao/storefront/internal/ports"
	"github.com/joaomacarrao/storefront/pkg/validate"
)

// announcer — канал ARIA-объявлений о смене статуса заказа.
// Отдельный узкий интерфейс, чтобы не тянуть весь пакет a11y в usecase.
type announcer interface {
	AnnounceInfo(message string)
}

// OrderService — прикладная логика работы с заказами (без знаний о транспорте).
// Чтение идёт через кэш (read-through), записи и отмены уходят в бэкенд.
type OrderService struct {
	gateway   ports.OrderGateway // REST-клиент бэкенда заказов
	cache     ports.OrderCache   // LRU+TTL кэш заказов
	log       ports.Logger
	announcer announcer // опционально (nil — без объявлений)
}

// NewOrderService — DI-конструктор. announcer может быть nil.
func NewOrderService(
	gateway ports.OrderGateway,
	cache ports.OrderCache,
	log ports.Logger,
	a announcer,
) *OrderService {
	return &OrderService{
		gateway:   gateway,
		cache:     cache,
		log:       log,
		announcer: a,
	}
}

// GetOrder — получить заказ по id: сначала из кэша, при промахе — из бэкенда с записью в кэш.
func (s *OrderService) GetOrder(ctx context.Context, orderID int) (*domain.Order, error) {
	if order, found := s.cache.Get(ctx, orderID); found {
		s.log.Infof(ctx, "cache hit for order=%d", orderID)
		return order, nil
	}
	s.log.Infof(ctx, "cache miss for order=%d", orderID)

	start := time.Now()
	order, err := s.gateway.GetOrder(ctx, orderID)
	if err != nil {
		s.log.Errorf(ctx, "gateway.GetOrder failed order_id=%d err=%v", orderID, err)
		return nil, err
	}

	if order != nil {
		// Кэшируем результат
		if setErr := s.cache.Set(ctx, order); setErr != nil {
			s.log.Warnf(ctx, "cache.Set failed order_id=%d err=%v", orderID, setErr)
		}
	}

	s.log.Infof(ctx, "backend fetch order_id=%d took=%s", orderID, time.Since(start))
	return order, nil
}

// ListMyOrders — история заказов клиента; страница результата прогревает кэш.
func (s *OrderService) ListMyOrders(ctx context.Context, status, ordering string, page int) (*domain.OrderPage, error) {
	result, err := s.gateway.ListMyOrders(ctx, status, ordering, page)
	if err != nil {
		return nil, err
	}
	if result != nil && len(result.Results) > 0 {
		if warmErr := s.cache.WarmUp(ctx, result.Results); warmErr != nil {
			s.log.Warnf(ctx, "cache.WarmUp failed err=%v", warmErr)
		}
	}
	return result, nil
}

// CancelOrder — отмена заказа в бэкенде; кэш обновляется актуальным состоянием.
func (s *OrderService) CancelOrder(ctx context.Context, orderID int) (*domain.Order, error) {
	order, err := s.gateway.CancelOrder(ctx, orderID)
	if err != nil {
		s.log.Errorf(ctx, "gateway.CancelOrder failed order_id=%d err=%v", orderID, err)
		return nil, err
	}

	if order != nil {
		if setErr := s.cache.Set(ctx, order); setErr != nil {
			s.log.Warnf(ctx, "cache.Set failed order_id=%d err=%v", orderID, setErr)
		}
	} else {
		s.cache.Invalidate(ctx, orderID)
	}
	return order, nil
}

// HandleStatusMessage — применить событие смены статуса, пришедшее из Kafka (raw JSON).
// Шаги:
//  1. строгий парсинг JSON (DisallowUnknownFields) —> отлавливаем незадокументированные поля;
//  2. доменная валидация (вернёт validate.ErrInvalidStatusEvent при проблемах);
//  3. обновление кэша: кэшированный заказ получает новый статус, иначе запись выбрасывается;
//  4. вежливое ARIA-объявление о смене статуса.
func (s *OrderService) HandleStatusMessage(ctx context.Context, raw []byte) error {
	// Строгое декодирование: запрещаем неизвестные поля.
	var event domain.OrderStatusEvent
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&event); err != nil {
		s.log.Warnf(ctx, "invalid json err=%v", err)
		return fmt.Errorf("%w: invalid json: %v", validate.ErrInvalidStatusEvent, err)
	}

	// Убеждаемся, что после объекта нет лишних данных.
	if err := dec.Decode(new(struct{})); err != io.EOF {
		s.log.Warnf(ctx, "invalid json: trailing data")
		return fmt.Errorf("%w: invalid json: trailing data", validate.ErrInvalidStatusEvent)
	}

	// Доменная валидация (обязательные поля).
	if err := validate.ValidateStatusEvent(&event); err != nil {
		s.log.Warnf(ctx, "validation failed order_id=%d err=%v", event.OrderID, err)
		return err
	}

	// Обновление кэша.
	if cached, found := s.cache.Get(ctx, event.OrderID); found {
		cached.Status = event.Status
		if event.PaymentStatus != "" {
			cached.PaymentStatus = event.PaymentStatus
		}
		if setErr := s.cache.Set(ctx, cached); setErr != nil {
			s.log.Warnf(ctx, "cache.Set failed order_id=%d err=%v", event.OrderID, setErr)
		}
	} else {
		// Нет кэшированной копии: следующий GetOrder заберёт свежее состояние из бэкенда.
		s.cache.Invalidate(ctx, event.OrderID)
	}

	if s.announcer != nil {
		s.announcer.AnnounceInfo(fmt.Sprintf("Pedido #%d: %s", event.OrderID, event.Status))
	}

	s.log.Infof(ctx, "order status applied order_id=%d status=%s", event.OrderID, event.Status)
	return nil
}
