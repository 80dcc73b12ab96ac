package dto

import (
	"time"

	"manasfit-be/internal/entity"
)

// ChatContext is everything a reply depends on besides the user's text.
type ChatContext struct {
	UserId    string
	UserName  string
	UserEmail string
	Timezone  string
	Language  string
	SessionId string
	// History holds the prior turns, oldest first.
	History []*entity.ChatMessage
	// CompanionMode selects the persona; empty means mentor.
	CompanionMode string
	// SurfaceFailureDetail swaps the empathetic fallback for an explanation
	// of why the generative service could not answer.
	SurfaceFailureDetail bool
}

// ChatResponse always carries a message. Success is true even when the
// message is a fallback reply.
type ChatResponse struct {
	Success bool
	Message *entity.ChatMessage
}

// AutoSaveMessage is the payload of the debounced auto-save request.
type AutoSaveMessage struct {
	SessionId   string    `json:"session_id"`
	UserId      string    `json:"user_id"`
	RequestedAt time.Time `json:"requested_at"`
}

type ExchangeResult struct {
	Session          *entity.ChatSession
	UserMessage      *entity.ChatMessage
	AssistantMessage *entity.ChatMessage
	Saved            bool
}

// HTTP

type ChatProfileRequest struct {
	UserName             string `json:"user_name"`
	UserEmail            string `json:"user_email" validate:"omitempty,email"`
	Timezone             string `json:"timezone"`
	Language             string `json:"language"`
	CompanionMode        string `json:"companion_mode"`
	SurfaceFailureDetail bool   `json:"surface_failure_detail"`
}

type ChatMessageDTO struct {
	Id        string                 `json:"id"`
	SessionId string                 `json:"session_id"`
	Role      string                 `json:"role" validate:"required,oneof=user assistant system"`
	Content   string                 `json:"content" validate:"required"`
	CreatedAt time.Time              `json:"created_at"`
	Metadata  entity.MessageMetadata `json:"metadata"`
}

type ChatSessionDTO struct {
	Id          string                `json:"id"`
	SessionName string                `json:"session_name"`
	SessionType string                `json:"session_type"`
	Context     entity.SessionContext `json:"context"`
	IsActive    bool                  `json:"is_active"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

type ConversationResponse struct {
	Session  ChatSessionDTO   `json:"session"`
	Messages []ChatMessageDTO `json:"messages"`
}

type SendMessageRequest struct {
	ChatProfileRequest
	SessionId string           `json:"session_id" validate:"required"`
	Content   string           `json:"content" validate:"required"`
	History   []ChatMessageDTO `json:"history" validate:"dive"`
}

type SendMessageResponse struct {
	Success bool           `json:"success"`
	Message ChatMessageDTO `json:"message"`
}

type SaveChatSessionRequest struct {
	SessionName string                `json:"session_name" validate:"required,max=200"`
	SessionType string                `json:"session_type" validate:"omitempty,oneof=general wellness academic crisis goal_setting"`
	Context     entity.SessionContext `json:"context"`
	IsActive    *bool                 `json:"is_active"`
	CreatedAt   *time.Time            `json:"created_at"`
	UpdatedAt   *time.Time            `json:"updated_at"`
	Message     *ChatMessageDTO       `json:"message"`
}

type RenameChatSessionRequest struct {
	SessionName string `json:"session_name" validate:"required,max=200"`
}

type ExchangeRequest struct {
	ChatProfileRequest
	SessionId string `json:"session_id"`
	Content   string `json:"content" validate:"required"`
}

type ExchangeResponse struct {
	Session          ChatSessionDTO `json:"session"`
	UserMessage      ChatMessageDTO `json:"user_message"`
	AssistantMessage ChatMessageDTO `json:"assistant_message"`
	Saved            bool           `json:"saved"`
}

type SuggestedQuestionsResponse struct {
	Mode      string   `json:"mode"`
	Questions []string `json:"questions"`
}

func ToChatSessionDTO(s *entity.ChatSession) ChatSessionDTO {
	return ChatSessionDTO{
		Id:          s.Id,
		SessionName: s.SessionName,
		SessionType: string(s.SessionType),
		Context:     s.Context,
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func ToChatMessageDTO(m *entity.ChatMessage) ChatMessageDTO {
	return ChatMessageDTO{
		Id:        m.Id,
		SessionId: m.SessionId,
		Role:      string(m.Role),
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		Metadata:  m.Metadata,
	}
}
