package service

import (
	"context"
	"encoding/json"
	"time"

	"manasfit-be/internal/dto"
	"manasfit-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService applies auto-save requests by touching the session so its
// UpdatedAt reflects the latest activity.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	storage   ChatStorage
	logger    logger.ILogger
	now       func() time.Time
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	storage ChatStorage,
	logger logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		storage:   storage,
		logger:    logger,
		now:       time.Now,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.AutoSaveMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("AUTOSAVE", "Failed to unmarshal message", map[string]interface{}{"error": err.Error()})
		msg.Ack() // malformed payloads never become valid
		return
	}

	conv, err := cs.storage.LoadSession(ctx, payload.SessionId, payload.UserId)
	if err != nil {
		cs.logger.Warn("AUTOSAVE", "Failed to load session", map[string]interface{}{
			"session_id": payload.SessionId,
			"error":      err.Error(),
		})
		msg.Ack() // auto-save is best effort; the next send schedules another
		return
	}
	if conv == nil {
		// Not saved yet, or deleted since.
		msg.Ack()
		return
	}

	session := *conv.Session
	session.UpdatedAt = cs.now()
	if _, err := cs.storage.Save(ctx, &session, nil); err != nil {
		cs.logger.Warn("AUTOSAVE", "Failed to touch session", map[string]interface{}{
			"session_id": payload.SessionId,
			"error":      err.Error(),
		})
		msg.Ack()
		return
	}

	cs.logger.Debug("AUTOSAVE", "Session auto-saved", map[string]interface{}{"session_id": payload.SessionId})
	msg.Ack()
}
