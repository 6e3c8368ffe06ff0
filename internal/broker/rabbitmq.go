package broker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

const appID = "office-admin"

var ErrNotConfirmed = errors.New("event not confirmed by broker")

// channel é o subconjunto de *amqp.Channel usado pelo Publisher.
type channel interface {
	PublishWithDeferredConfirmWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) (*amqp.DeferredConfirmation, error)
	Close() error
}

// Publisher grava eventos do prédio na fila durável, em modo confirm:
// PublishEvent só retorna nil depois do ack do broker.
type Publisher struct {
	conn  *amqp.Connection
	ch    channel
	queue string
}

func NewPublisher(uri, queue string) (*Publisher, error) {
	conn, err := amqp.Dial(uri)
	if err != nil {
		return nil, fmt.Errorf("rabbit dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbit channel: %w", err)
	}
	fail := func(step string, err error) (*Publisher, error) {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("rabbit %s: %w", step, err)
	}

	// mesma declaração do consumidor do feed
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return fail("queue declare", err)
	}
	if err := ch.Confirm(false); err != nil {
		return fail("confirm mode", err)
	}
	return &Publisher{conn: conn, ch: ch, queue: queue}, nil
}

// eventMessage monta a mensagem AMQP: corpo JSON do Event e os headers
// action/entity_id que o feed usa para filtrar sem decodificar o corpo.
func eventMessage(ev Event) (amqp.Publishing, error) {
	body, err := json.Marshal(ev)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("marshal event: %w", err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Type:         ev.Action,
		AppId:        appID,
		Timestamp:    ev.Timestamp,
		Body:         body,
		Headers: amqp.Table{
			"action":    ev.Action,
			"entity_id": ev.EntityID,
		},
	}, nil
}

func (p *Publisher) PublishEvent(ctx context.Context, ev Event) error {
	msg, err := eventMessage(ev)
	if err != nil {
		return err
	}
	// default exchange, routing key = nome da fila
	dc, err := p.ch.PublishWithDeferredConfirmWithContext(ctx, "", p.queue, false, false, msg)
	if err != nil {
		return fmt.Errorf("publish %s: %w", ev.Action, err)
	}
	if dc == nil { // canal fora do modo confirm
		return nil
	}
	acked, err := dc.WaitContext(ctx)
	if err != nil {
		return fmt.Errorf("publish %s: %w", ev.Action, err)
	}
	if !acked {
		return fmt.Errorf("publish %s: %w", ev.Action, ErrNotConfirmed)
	}
	return nil
}

func (p *Publisher) Close() error {
	var errCh, errConn error
	if p.ch != nil {
		errCh = p.ch.Close()
	}
	if p.conn != nil {
		errConn = p.conn.Close()
	}
	return errors.Join(errCh, errConn)
}
