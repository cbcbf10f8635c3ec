package consumer

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/PKOOOO/cosmix-booking-service/internal/domain"
	"github.com/PKOOOO/cosmix-booking-service/internal/usecase/transition_status"
)

// Routing keys платёжных событий
const (
	KeyPaymentSucceeded = "payment.succeeded"
	KeyPaymentFailed    = "payment.failed"
	KeyPaymentRefunded  = "payment.refunded"
)

// PaymentKeys все routing keys, на которые подписывается consumer
var PaymentKeys = []string{KeyPaymentSucceeded, KeyPaymentFailed, KeyPaymentRefunded}

// targetByKey целевой статус бронирования для каждого платёжного события
var targetByKey = map[string]domain.BookingStatus{
	KeyPaymentSucceeded: domain.StatusConfirmed,
	KeyPaymentFailed:    domain.StatusFailed,
	KeyPaymentRefunded:  domain.StatusCancelled,
}

// paymentEvent событие платёжного сервиса.
// Поддерживаются одиночная и пакетная формы.
type paymentEvent struct {
	BookingID  int64   `json:"booking_id"`
	BookingIDs []int64 `json:"booking_ids"`
}

// TransitionUseCase интерфейс usecase пакетного перевода статусов
type TransitionUseCase interface {
	Execute(ctx context.Context, req transition_status.Request) (*transition_status.Response, error)
}

// Deliveries источник входящих сообщений брокера
type Deliveries interface {
	Deliveries(ctx context.Context) (<-chan amqp.Delivery, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// PaymentConsumer переводит статусы бронирований по платёжным событиям
type PaymentConsumer struct {
	source     Deliveries
	transition TransitionUseCase
	logger     Logger
}

// NewPaymentConsumer создает новый экземпляр consumer-а платёжных событий
func NewPaymentConsumer(source Deliveries, transition TransitionUseCase, logger Logger) *PaymentConsumer {
	return &PaymentConsumer{
		source:     source,
		transition: transition,
		logger:     logger,
	}
}

// Run обрабатывает события до отмены контекста или закрытия канала
func (c *PaymentConsumer) Run(ctx context.Context) error {
	deliveries, err := c.source.Deliveries(ctx)
	if err != nil {
		return err
	}

	c.logger.Info("PaymentConsumer: started")

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("PaymentConsumer: stopped: %v", ctx.Err())
			return nil
		case delivery, ok := <-deliveries:
			if !ok {
				c.logger.Warn("PaymentConsumer: deliveries channel closed")
				return nil
			}
			c.handle(ctx, delivery)
		}
	}
}

func (c *PaymentConsumer) handle(ctx context.Context, delivery amqp.Delivery) {
	target, known := targetByKey[delivery.RoutingKey]
	if !known {
		c.logger.Warn("PaymentConsumer: unknown routing key %q, dropping", delivery.RoutingKey)
		_ = delivery.Ack(false)
		return
	}

	var event paymentEvent
	if err := json.Unmarshal(delivery.Body, &event); err != nil {
		// Битый payload переигрывать бессмысленно
		c.logger.Error("PaymentConsumer: malformed payload for %q: %v", delivery.RoutingKey, err)
		_ = delivery.Nack(false, false)
		return
	}

	ids := event.BookingIDs
	if len(ids) == 0 && event.BookingID > 0 {
		ids = []int64{event.BookingID}
	}
	if len(ids) == 0 {
		c.logger.Error("PaymentConsumer: %q without booking ids, dropping", delivery.RoutingKey)
		_ = delivery.Nack(false, false)
		return
	}

	resp, err := c.transition.Execute(ctx, transition_status.Request{
		BookingIDs: ids,
		NewStatus:  target,
	})
	if err != nil {
		c.logger.Error("PaymentConsumer: transition for %q failed: %v", delivery.RoutingKey, err)
		_ = delivery.Nack(false, true)
		return
	}

	c.logger.Info("PaymentConsumer: %q processed: %d of %d bookings moved to %s",
		delivery.RoutingKey, resp.Updated, resp.Requested, target)
	_ = delivery.Ack(false)
}
