// Package chatstore persists chat sessions and messages through one of
// several interchangeable backends.
package chatstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"manasfit-be/internal/entity"
)

var (
	ErrUnavailable      = errors.New("chat storage unavailable")
	ErrSessionOwnership = errors.New("chat session belongs to another user")
	ErrSessionDeleted   = errors.New("chat session has been deleted")
)

// IsDomainError reports errors that describe the request rather than the
// backend. They must reach the caller unchanged.
func IsDomainError(err error) bool {
	return errors.Is(err, ErrSessionOwnership) || errors.Is(err, ErrSessionDeleted)
}

type Storage interface {
	Name() string
	Available() bool

	// SaveSession upserts the session. CreatedAt of an existing session is
	// kept and UpdatedAt never moves backwards.
	SaveSession(ctx context.Context, session *entity.ChatSession) error
	// SaveMessage inserts the message; an id that already exists is left as is.
	SaveMessage(ctx context.Context, message *entity.ChatMessage) error
	// LoadSession returns nil, nil when the user has no such session.
	LoadSession(ctx context.Context, sessionId, userId string) (*entity.Conversation, error)
	ListSessions(ctx context.Context, userId string) ([]*entity.ChatSession, error)
	DeleteSession(ctx context.Context, sessionId, userId string) error
}

type StorageType string

const (
	StorageTypeRemote  StorageType = "supabase"
	StorageTypeBackend StorageType = "backend"
	StorageTypeLocal   StorageType = "local"
)

func ParseStorageType(s string) (StorageType, error) {
	switch t := StorageType(strings.ToLower(strings.TrimSpace(s))); t {
	case StorageTypeRemote, StorageTypeBackend, StorageTypeLocal:
		return t, nil
	case "":
		return StorageTypeRemote, nil
	default:
		return "", fmt.Errorf("unknown chat storage type %q", s)
	}
}

func validateSession(session *entity.ChatSession) error {
	if session == nil || session.Id == "" || session.UserId == "" {
		return errors.New("chat session requires id and user id")
	}
	return nil
}

func validateMessage(message *entity.ChatMessage) error {
	if message == nil || message.Id == "" || message.SessionId == "" || message.UserId == "" {
		return errors.New("chat message requires id, session id and user id")
	}
	if !message.Role.Valid() {
		return fmt.Errorf("invalid message role %q", message.Role)
	}
	return nil
}

// mergeExisting applies the upsert rules for a session already on record.
func mergeExisting(existing, incoming *entity.ChatSession) *entity.ChatSession {
	merged := *incoming
	merged.CreatedAt = existing.CreatedAt
	if existing.UpdatedAt.After(merged.UpdatedAt) {
		merged.UpdatedAt = existing.UpdatedAt
	}
	merged.DeletedAt = nil
	return &merged
}
