package webhook

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shenikar/campus_geofence/internal/models"
)

const (
	exchangeName = "campus.events"
	queueName    = "campus_breach_alerts"
)

// AMQPPublisher рассылает события нарушения через fanout-exchange RabbitMQ
type AMQPPublisher struct {
	ch *amqp.Channel
}

// NewAMQPPublisher объявляет exchange и очередь и возвращает публикатор
func NewAMQPPublisher(conn *amqp.Connection) (*AMQPPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchangeName, "fanout", true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare queue: %w", err)
	}
	if err := ch.QueueBind(queueName, "", exchangeName, false, nil); err != nil {
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	return &AMQPPublisher{ch: ch}, nil
}

// Publish отправляет событие в exchange
func (p *AMQPPublisher) Publish(ctx context.Context, ev models.BreachEvent) error {
	body, err := json.Marshal(NewWebhookEvent(ev))
	if err != nil {
		return fmt.Errorf("marshal breach event: %w", err)
	}

	return p.ch.PublishWithContext(ctx, exchangeName, "", false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    ev.ID.String(),
		Timestamp:    ev.Timestamp,
		Type:         EventTypeBreach,
		Body:         body,
	})
}

// Close закрывает канал
func (p *AMQPPublisher) Close() error {
	return p.ch.Close()
}

// NewRabbitMQ открывает соединение с брокером
func NewRabbitMQ(url string) (*amqp.Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq connect: %w", err)
	}
	return conn, nil
}
