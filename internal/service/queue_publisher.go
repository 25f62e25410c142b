// Package service holds outbound integrations used by the handlers.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/bloodbanker/bloodbanker-server/internal/queue"
)

// QueuePublisher sends donation events to a durable RabbitMQ queue.  Each
// publish opens its own connection; events are low volume.
type QueuePublisher struct {
	URL   string
	Queue string
}

func NewQueuePublisher(url, queueName string) *QueuePublisher {
	return &QueuePublisher{URL: url, Queue: queueName}
}

// Publish marshals ev and publishes it persistently on the default
// exchange with the queue name as routing key.
func (p *QueuePublisher) Publish(ctx context.Context, ev queue.DonationEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	conn, err := amqp.DialConfig(p.URL, amqp.Config{Dial: amqp.DefaultDial(5 * time.Second)})
	if err != nil {
		return fmt.Errorf("rabbitmq dial: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("rabbitmq channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	// Durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(p.Queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("rabbitmq queue declare: %w", err)
	}

	return ch.PublishWithContext(ctx, "", p.Queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		MessageId:    ev.ID,
		Type:         ev.Type,
		Body:         body,
	})
}
