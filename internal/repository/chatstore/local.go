package chatstore

import (
	"context"
	"strings"
	"time"

	"manasfit-be/internal/entity"
	"manasfit-be/internal/repository/local"
	"manasfit-be/pkg/kvstore"
)

type tombstone struct {
	UserId    string    `json:"user_id"`
	DeletedAt time.Time `json:"deleted_at"`
}

// LocalStorage keeps chats in the key-value store. It is always available.
type LocalStorage struct {
	store kvstore.Store
	keys  local.Keys
	now   func() time.Time
}

func NewLocalStorage(store kvstore.Store, keys local.Keys) *LocalStorage {
	return &LocalStorage{store: store, keys: keys, now: time.Now}
}

func (s *LocalStorage) Name() string { return string(StorageTypeLocal) }

func (s *LocalStorage) Available() bool { return s.store != nil }

func (s *LocalStorage) deleted(ctx context.Context, sessionId string) (bool, error) {
	_, ok, err := s.store.Get(ctx, s.keys.Tombstone(sessionId))
	return ok, err
}

func (s *LocalStorage) getSession(ctx context.Context, sessionId string) (*entity.ChatSession, error) {
	var session entity.ChatSession
	ok, err := local.GetJSON(ctx, s.store, s.keys.Session(sessionId), &session)
	if err != nil || !ok {
		return nil, err
	}
	return &session, nil
}

func (s *LocalStorage) SaveSession(ctx context.Context, session *entity.ChatSession) error {
	if err := validateSession(session); err != nil {
		return err
	}
	gone, err := s.deleted(ctx, session.Id)
	if err != nil {
		return err
	}
	if gone {
		return ErrSessionDeleted
	}

	existing, err := s.getSession(ctx, session.Id)
	if err != nil {
		return err
	}

	record := *session
	if existing != nil {
		if existing.UserId != session.UserId {
			return ErrSessionOwnership
		}
		record = *mergeExisting(existing, session)
	} else {
		if record.CreatedAt.IsZero() {
			record.CreatedAt = s.now()
		}
		if record.UpdatedAt.IsZero() {
			record.UpdatedAt = record.CreatedAt
		}
	}

	return local.SetJSON(ctx, s.store, s.keys.Session(session.Id), &record)
}

func (s *LocalStorage) SaveMessage(ctx context.Context, message *entity.ChatMessage) error {
	if err := validateMessage(message); err != nil {
		return err
	}
	gone, err := s.deleted(ctx, message.SessionId)
	if err != nil {
		return err
	}
	if gone {
		return ErrSessionDeleted
	}

	session, err := s.getSession(ctx, message.SessionId)
	if err != nil {
		return err
	}
	if session != nil && session.UserId != message.UserId {
		return ErrSessionOwnership
	}

	key := s.keys.Message(message.SessionId, message.Id)
	if _, ok, err := s.store.Get(ctx, key); err != nil || ok {
		return err
	}

	record := *message
	if record.CreatedAt.IsZero() {
		record.CreatedAt = s.now()
	}
	return local.SetJSON(ctx, s.store, key, &record)
}

func (s *LocalStorage) loadMessages(ctx context.Context, sessionId string) ([]*entity.ChatMessage, []string, error) {
	keys, err := s.store.Keys(ctx, s.keys.MessagePrefix(sessionId))
	if err != nil {
		return nil, nil, err
	}

	messages := make([]*entity.ChatMessage, 0, len(keys))
	owned := make([]string, 0, len(keys))
	for _, key := range keys {
		var message entity.ChatMessage
		ok, err := local.GetJSON(ctx, s.store, key, &message)
		if err != nil {
			return nil, nil, err
		}
		if !ok || message.SessionId != sessionId {
			continue
		}
		messages = append(messages, &message)
		owned = append(owned, key)
	}
	entity.SortMessages(messages)
	return messages, owned, nil
}

func (s *LocalStorage) LoadSession(ctx context.Context, sessionId, userId string) (*entity.Conversation, error) {
	session, err := s.getSession(ctx, sessionId)
	if err != nil || session == nil || session.UserId != userId {
		return nil, err
	}

	messages, _, err := s.loadMessages(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	return &entity.Conversation{Session: session, Messages: messages}, nil
}

// ListSessions scans every session record, so there is no shared index to
// keep consistent between writers.
func (s *LocalStorage) ListSessions(ctx context.Context, userId string) ([]*entity.ChatSession, error) {
	prefix := s.keys.SessionPrefix()
	keys, err := s.store.Keys(ctx, prefix)
	if err != nil {
		return nil, err
	}

	sessions := make([]*entity.ChatSession, 0)
	for _, key := range keys {
		session, err := s.getSession(ctx, strings.TrimPrefix(key, prefix))
		if err != nil {
			return nil, err
		}
		if session == nil || session.UserId != userId || !session.IsActive {
			continue
		}
		sessions = append(sessions, session)
	}
	entity.SortSessionsByUpdatedDesc(sessions)
	return sessions, nil
}

// DeleteSession leaves a tombstone so the id cannot be saved again.
func (s *LocalStorage) DeleteSession(ctx context.Context, sessionId, userId string) error {
	session, err := s.getSession(ctx, sessionId)
	if err != nil {
		return err
	}
	if session != nil && session.UserId != userId {
		return ErrSessionOwnership
	}

	if err := local.SetJSON(ctx, s.store, s.keys.Tombstone(sessionId), tombstone{UserId: userId, DeletedAt: s.now()}); err != nil {
		return err
	}

	_, messageKeys, err := s.loadMessages(ctx, sessionId)
	if err != nil {
		return err
	}
	return s.store.Delete(ctx, append(messageKeys, s.keys.Session(sessionId))...)
}
