package chatevents

import (
	"context"

	"manasfit-be/internal/pkg/logger"
	"manasfit-be/pkg/events"
	pktNats "manasfit-be/pkg/nats"
)

const auditConsumer = "chat-audit"

// Source is the subscribe side of the event bus.
type Source interface {
	Subscribe(ctx context.Context, subject, durableName string, handler pktNats.EventHandler) error
}

// StartAudit copies every chat and storage event into the event log.
func StartAudit(ctx context.Context, source Source, eventLogger logger.ILogger) error {
	return source.Subscribe(ctx, pktNats.SubjectPrefix+">", auditConsumer, func(ctx context.Context, event events.Event) error {
		details := make(map[string]interface{}, len(event.Payload())+1)
		for k, v := range event.Payload() {
			details[k] = v
		}
		details["event_type"] = event.EventType()

		if event.EventType() == events.TypeStorageDegraded {
			eventLogger.Warn("EVENTS", event.EventType(), details)
		} else {
			eventLogger.Info("EVENTS", event.EventType(), details)
		}
		return nil
	})
}
