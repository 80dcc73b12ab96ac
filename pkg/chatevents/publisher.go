package chatevents

import (
	"context"
	"time"

	"manasfit-be/internal/pkg/logger"
	"manasfit-be/pkg/events"
	pktNats "manasfit-be/pkg/nats"
)

// Publisher abstracts event publishing for chat and storage operations.
// Publishing is fire-and-forget: failures are logged, never returned.
type Publisher interface {
	PublishSessionSaved(ctx context.Context, sessionId, userId, storage string)
	PublishSessionDeleted(ctx context.Context, sessionId, userId string)
	PublishFallbackReply(ctx context.Context, sessionId, userId, reason, topic string)
	PublishStorageDegraded(ctx context.Context, storage, operation string, cause error)
}

// Sink is the transport the publisher writes to.
type Sink interface {
	Publish(ctx context.Context, event events.Event) error
}

type NatsPublisher struct {
	sink   Sink
	logger logger.ILogger
	now    func() time.Time
}

// NewNatsPublisher wraps a NATS publisher. A nil publisher yields a no-op.
func NewNatsPublisher(publisher *pktNats.Publisher, logger logger.ILogger) *NatsPublisher {
	if publisher == nil {
		return NewPublisher(nil, logger)
	}
	return NewPublisher(publisher, logger)
}

func NewPublisher(sink Sink, logger logger.ILogger) *NatsPublisher {
	return &NatsPublisher{sink: sink, logger: logger, now: time.Now}
}

func (p *NatsPublisher) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if p == nil || p.sink == nil {
		return
	}
	now := p.now()
	data["occurred_at"] = now
	evt := events.BaseEvent{Type: eventType, Data: data, OccurredAt: now}

	if err := p.sink.Publish(ctx, evt); err != nil {
		p.logger.Error("EVENTS", "Failed to publish "+eventType+" event", map[string]interface{}{"error": err.Error()})
	}
}

func (p *NatsPublisher) PublishSessionSaved(ctx context.Context, sessionId, userId, storage string) {
	p.publish(ctx, events.TypeSessionSaved, map[string]interface{}{
		"session_id":  sessionId,
		"user_id":     userId,
		"storage":     storage,
		"entity_type": "chat_session",
		"entity_id":   sessionId,
	})
}

func (p *NatsPublisher) PublishSessionDeleted(ctx context.Context, sessionId, userId string) {
	p.publish(ctx, events.TypeSessionDeleted, map[string]interface{}{
		"session_id":  sessionId,
		"user_id":     userId,
		"entity_type": "chat_session",
		"entity_id":   sessionId,
	})
}

func (p *NatsPublisher) PublishFallbackReply(ctx context.Context, sessionId, userId, reason, topic string) {
	p.publish(ctx, events.TypeFallbackReply, map[string]interface{}{
		"session_id": sessionId,
		"user_id":    userId,
		"reason":     reason,
		"topic":      topic,
	})
}

func (p *NatsPublisher) PublishStorageDegraded(ctx context.Context, storage, operation string, cause error) {
	data := map[string]interface{}{
		"storage":   storage,
		"operation": operation,
	}
	if cause != nil {
		data["error"] = cause.Error()
	}
	p.publish(ctx, events.TypeStorageDegraded, data)
}
