package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/m04kA/CourtBookingService/internal/domain"
)

// Publisher публикует события бронирований в topic exchange RabbitMQ.
// amqp.Channel не потокобезопасен, поэтому публикация идёт под мьютексом.
type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	mu       sync.Mutex
}

// NewPublisher подключается к брокеру и объявляет durable topic exchange
func NewPublisher(url, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("%w: dial: %v", ErrConnect, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: open channel: %v", ErrConnect, err)
	}

	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("%w: declare exchange %s: %v", ErrConnect, exchange, err)
	}

	return &Publisher{conn: conn, ch: ch, exchange: exchange}, nil
}

// PublishBookingCreated публикует booking.created
func (p *Publisher) PublishBookingCreated(ctx context.Context, booking *domain.Booking) error {
	return p.publish(ctx, RoutingKeyBookingCreated, newBookingCreatedEvent(booking, time.Now()))
}

// PublishBookingStatusChanged публикует booking.status_changed
func (p *Publisher) PublishBookingStatusChanged(ctx context.Context, bookingID int64, status domain.BookingStatus) error {
	return p.publish(ctx, RoutingKeyBookingStatusChanged, BookingStatusChangedEvent{
		BookingID:  bookingID,
		Status:     string(status),
		OccurredAt: time.Now().UTC(),
	})
}

func (p *Publisher) publish(ctx context.Context, routingKey string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: %s - encode: %v", ErrPublish, routingKey, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrPublish, routingKey, err)
	}

	return nil
}

// Close закрывает канал и соединение
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ch.Close(); err != nil {
		_ = p.conn.Close()
		return err
	}
	return p.conn.Close()
}

// NopPublisher используется, когда брокер выключен в конфигурации
type NopPublisher struct{}

func (NopPublisher) PublishBookingCreated(context.Context, *domain.Booking) error {
	return nil
}

func (NopPublisher) PublishBookingStatusChanged(context.Context, int64, domain.BookingStatus) error {
	return nil
}
