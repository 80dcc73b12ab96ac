package entity

import (
	"sort"
	"time"
)

type MessageRole string

const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
	MessageRoleSystem    MessageRole = "system"
)

func (r MessageRole) Valid() bool {
	return r == MessageRoleUser || r == MessageRoleAssistant || r == MessageRoleSystem
}

// MessageMetadata is best-effort and never needed for correctness.
type MessageMetadata struct {
	TokensUsed     *int     `json:"tokens_used,omitempty"`
	ResponseTimeMs *int64   `json:"response_time_ms,omitempty"`
	SentimentScore *float64 `json:"sentiment_score,omitempty"`
	Topics         []string `json:"topics,omitempty"`
	IsFallback     bool     `json:"is_fallback,omitempty"`
	FailureReason  string   `json:"failure_reason,omitempty"`
	CompanionMode  string   `json:"companion_mode,omitempty"`
}

type ChatMessage struct {
	Id        string
	SessionId string
	UserId    string
	Role      MessageRole
	Content   string
	CreatedAt time.Time
	Metadata  MessageMetadata
}

// Conversation is a session with its messages in chronological order.
type Conversation struct {
	Session  *ChatSession
	Messages []*ChatMessage
}

// SortMessages orders by CreatedAt ascending, ties by id.
func SortMessages(messages []*ChatMessage) {
	sort.SliceStable(messages, func(i, j int) bool {
		if !messages[i].CreatedAt.Equal(messages[j].CreatedAt) {
			return messages[i].CreatedAt.Before(messages[j].CreatedAt)
		}
		return messages[i].Id < messages[j].Id
	})
}
