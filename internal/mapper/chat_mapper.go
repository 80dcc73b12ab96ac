package mapper

import (
	"encoding/json"
	"time"

	"manasfit-be/internal/entity"
	"manasfit-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

// toJSON encodes v, mapping nil and encoding failures to SQL NULL.
func toJSON(v interface{}) datatypes.JSON {
	b, err := json.Marshal(v)
	if err != nil || string(b) == "null" {
		return nil
	}
	return datatypes.JSON(b)
}

func fromJSON(raw datatypes.JSON, v interface{}) {
	if len(raw) == 0 {
		return
	}
	_ = json.Unmarshal(raw, v)
}

// Session Mappers

func (m *ChatMapper) ChatSessionToEntity(s *model.ChatSession) *entity.ChatSession {
	if s == nil {
		return nil
	}

	var deletedAt *time.Time
	if s.DeletedAt.Valid {
		t := s.DeletedAt.Time
		deletedAt = &t
	}

	var ctxData entity.SessionContext
	fromJSON(s.ContextData, &ctxData)

	return &entity.ChatSession{
		Id:          s.Id,
		UserId:      s.UserId,
		SessionName: s.SessionName,
		SessionType: entity.SessionType(s.SessionType),
		Context:     ctxData,
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}

func (m *ChatMapper) ChatSessionToModel(s *entity.ChatSession) *model.ChatSession {
	if s == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if s.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *s.DeletedAt, Valid: true}
	}

	return &model.ChatSession{
		Id:          s.Id,
		UserId:      s.UserId,
		SessionName: s.SessionName,
		SessionType: string(s.SessionType),
		ContextData: toJSON(s.Context),
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}

// Message Mappers

func (m *ChatMapper) ChatMessageToEntity(msg *model.ChatMessage) *entity.ChatMessage {
	if msg == nil {
		return nil
	}

	var meta entity.MessageMetadata
	fromJSON(msg.Metadata, &meta)

	return &entity.ChatMessage{
		Id:        msg.Id,
		SessionId: msg.SessionId,
		UserId:    msg.UserId,
		Role:      entity.MessageRole(msg.Role),
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
		Metadata:  meta,
	}
}

func (m *ChatMapper) ChatMessageToModel(msg *entity.ChatMessage) *model.ChatMessage {
	if msg == nil {
		return nil
	}

	return &model.ChatMessage{
		Id:        msg.Id,
		SessionId: msg.SessionId,
		UserId:    msg.UserId,
		Role:      string(msg.Role),
		Content:   msg.Content,
		Metadata:  toJSON(msg.Metadata),
		CreatedAt: msg.CreatedAt,
	}
}

func (m *ChatMapper) ChatMessagesToEntities(models []*model.ChatMessage) []*entity.ChatMessage {
	out := make([]*entity.ChatMessage, len(models))
	for i, msg := range models {
		out[i] = m.ChatMessageToEntity(msg)
	}
	return out
}
