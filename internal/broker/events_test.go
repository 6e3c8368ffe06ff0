package broker

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pubMock struct {
	events []Event
	err    error
}

func (p *pubMock) PublishEvent(_ context.Context, ev Event) error {
	p.events = append(p.events, ev)
	return p.err
}

func TestNotifier_BuildsEvent(t *testing.T) {
	pm := &pubMock{}
	NewNotifier(pm, slog.Default()).Notify(context.Background(), ActionEmployeeCreated, "abc", "Tran Van E")

	require.Len(t, pm.events, 1)
	ev := pm.events[0]
	assert.Equal(t, ActionEmployeeCreated, ev.Action)
	assert.Equal(t, "abc", ev.EntityID)
	assert.Equal(t, "Tran Van E", ev.EntityName)
	assert.False(t, ev.Timestamp.IsZero())
	assert.Equal(t, time.UTC, ev.Timestamp.Location())
}

type channelMock struct {
	key    string
	msg    amqp.Publishing
	err    error
	closed bool
}

func (c *channelMock) PublishWithDeferredConfirmWithContext(_ context.Context, _, key string, _, _ bool, msg amqp.Publishing) (*amqp.DeferredConfirmation, error) {
	c.key, c.msg = key, msg
	return nil, c.err
}

func (c *channelMock) Close() error {
	c.closed = true
	return nil
}

func TestPublisher_PublishEvent(t *testing.T) {
	ch := &channelMock{}
	p := &Publisher{ch: ch, queue: "building_events"}
	ts := time.Date(2024, 1, 5, 1, 0, 0, 0, time.UTC)

	require.NoError(t, p.PublishEvent(context.Background(), Event{Action: ActionEmployeeDeleted, EntityID: "abc", Timestamp: ts}))

	assert.Equal(t, "building_events", ch.key)
	assert.Equal(t, "application/json", ch.msg.ContentType)
	assert.Equal(t, amqp.Persistent, ch.msg.DeliveryMode)
	assert.Equal(t, ActionEmployeeDeleted, ch.msg.Type)
	assert.Equal(t, ts, ch.msg.Timestamp)
	assert.Equal(t, amqp.Table{"action": ActionEmployeeDeleted, "entity_id": "abc"}, ch.msg.Headers)

	var ev Event
	require.NoError(t, json.Unmarshal(ch.msg.Body, &ev))
	assert.Equal(t, "abc", ev.EntityID)
	// entity_name vazio é omitido
	assert.NotContains(t, string(ch.msg.Body), "entity_name")

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}

func TestPublisher_PublishEventError(t *testing.T) {
	p := &Publisher{ch: &channelMock{err: amqp.ErrClosed}, queue: "q"}
	err := p.PublishEvent(context.Background(), Event{Action: ActionEmployeeCreated})
	require.ErrorIs(t, err, amqp.ErrClosed)
	assert.Contains(t, err.Error(), ActionEmployeeCreated)
}

func TestNotifier_ErrorsAreSwallowed(t *testing.T) {
	pm := &pubMock{err: errors.New("boom")}
	assert.NotPanics(t, func() {
		NewNotifier(pm, nil).Notify(context.Background(), ActionEmployeeDeleted, "abc", "")
	})
}

func TestNotifier_NilIsNoop(t *testing.T) {
	var n *Notifier
	assert.NotPanics(t, func() { n.Notify(context.Background(), ActionEmployeeUpdated, "x", "") })
	assert.NotPanics(t, func() { NewNotifier(nil, nil).Notify(context.Background(), ActionEmployeeUpdated, "x", "") })
}

func TestDeliveryAction(t *testing.T) {
	fromHeader := amqp.Delivery{Headers: amqp.Table{"action": ActionEmployeeDeleted}, Body: []byte(`{"action":"other"}`)}
	assert.Equal(t, ActionEmployeeDeleted, DeliveryAction(fromHeader))

	fromBody := amqp.Delivery{Body: []byte(`{"action":"employee.updated","entity_id":"x"}`)}
	assert.Equal(t, ActionEmployeeUpdated, DeliveryAction(fromBody))

	assert.Equal(t, "", DeliveryAction(amqp.Delivery{Body: []byte("not json")}))
}
