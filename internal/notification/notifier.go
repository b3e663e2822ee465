package notification

import (
	"context"
	"log/slog"

	"github.com/aosmicepp/platform/internal/core/events"
)

// Notifier subscribes to domain events and records a notification entry for
// each. Delivery is log-based: the original platform pushed these to staff
// through email, which is out of scope here.
type Notifier struct {
	logger *slog.Logger
}

func NewNotifier(logger *slog.Logger) *Notifier {
	return &Notifier{logger: logger}
}

// Register wires the notifier onto the bus for every event type it cares
// about.
func (n *Notifier) Register(bus *events.EventBus) {
	for _, eventType := range []string{
		events.TypeDemandeCreated,
		events.TypeDemandeStatusChanged,
		events.TypeDemandeAssigned,
		events.TypeReclamationCreated,
		events.TypeReclamationStatusChanged,
		events.TypeReclamationAssigned,
		events.TypeUserRegistered,
	} {
		bus.Subscribe(eventType, n.handle)
	}
}

func (n *Notifier) handle(_ context.Context, event events.Event) error {
	n.logger.Info("notification",
		"event_type", event.EventType(),
		"event_id", event.EventID(),
		"occurred_at", event.OccurredAt(),
		"payload", event.Payload())
	return nil
}
