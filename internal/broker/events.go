package broker

import (
	"context"
	"log/slog"
	"time"
)

const (
	ActionEmployeeCreated = "employee.created"
	ActionEmployeeUpdated = "employee.updated"
	ActionEmployeeDeleted = "employee.deleted"
)

// Event é o corpo JSON publicado na fila de eventos do prédio.
type Event struct {
	Action     string    `json:"action"`
	EntityID   string    `json:"entity_id"`
	EntityName string    `json:"entity_name,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

type publisher interface {
	PublishEvent(ctx context.Context, ev Event) error
}

// Notifier publica eventos sem nunca falhar o comando que os gerou:
// com publisher nil vira no-op e erros só são logados.
type Notifier struct {
	pub publisher
	log *slog.Logger
}

func NewNotifier(pub publisher, log *slog.Logger) *Notifier {
	if log == nil {
		log = slog.Default()
	}
	return &Notifier{pub: pub, log: log.With("cmp", "broker.notifier")}
}

func (n *Notifier) Notify(ctx context.Context, action, entityID, entityName string) {
	if n == nil || n.pub == nil {
		return
	}
	ev := Event{Action: action, EntityID: entityID, EntityName: entityName, Timestamp: time.Now().UTC()}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := n.pub.PublishEvent(ctx, ev); err != nil {
		n.log.Warn("event_publish_error", "action", action, "entity_id", entityID, "err", err)
		return
	}
	n.log.Debug("event_published", "action", action, "entity_id", entityID)
}
