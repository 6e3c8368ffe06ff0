package broker

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Consumer lê a fila de eventos com auto-ack; quem perde mensagem é o
// cliente desconectado, não a fila.
type Consumer struct {
	conn       *amqp.Connection
	ch         *amqp.Channel
	queue      string
	deliveries <-chan amqp.Delivery
	log        *slog.Logger
}

func NewConsumer(uri, queue, tag string, prefetch int, log *slog.Logger) (*Consumer, error) {
	if log == nil {
		log = slog.Default()
	}
	conn, err := amqp.Dial(uri)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	fail := func(err error) (*Consumer, error) {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return fail(err)
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		return fail(err)
	}
	deliveries, err := ch.Consume(queue, tag, true, false, false, false, nil)
	if err != nil {
		return fail(err)
	}

	log = log.With("cmp", "broker.consumer", "queue", queue)
	log.Info("rabbit_consumer_started")
	return &Consumer{conn: conn, ch: ch, queue: queue, deliveries: deliveries, log: log}, nil
}

// Run entrega action e corpo de cada mensagem a fn até ctx terminar ou o
// canal de entregas fechar.
func (c *Consumer) Run(ctx context.Context, fn func(action string, body []byte)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-c.deliveries:
			if !ok {
				c.log.Warn("deliveries_channel_closed")
				return errors.New("deliveries channel closed")
			}
			fn(DeliveryAction(d), d.Body)
		}
	}
}

// DeliveryAction lê o header "action"; sem header, tenta o corpo JSON.
func DeliveryAction(d amqp.Delivery) string {
	if a, ok := d.Headers["action"].(string); ok && a != "" {
		return a
	}
	var ev Event
	if err := json.Unmarshal(d.Body, &ev); err == nil {
		return ev.Action
	}
	return ""
}

func (c *Consumer) Close() error {
	return errors.Join(c.ch.Close(), c.conn.Close())
}
