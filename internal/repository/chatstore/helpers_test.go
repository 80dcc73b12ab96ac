package chatstore

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"manasfit-be/internal/entity"
	"manasfit-be/internal/pkg/logger"
	"manasfit-be/internal/pkg/testdb"
	"manasfit-be/internal/repository/local"
	"manasfit-be/internal/repository/unitofwork"
	"manasfit-be/pkg/kvstore"
)

var errBoom = errors.New("connection reset by peer")

// flakyStorage forwards to inner until failing is switched on.
type flakyStorage struct {
	Storage
	mu      sync.Mutex
	failing bool
}

func (s *flakyStorage) setFailing(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failing = v
}

func (s *flakyStorage) fail() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failing
}

func (s *flakyStorage) SaveSession(ctx context.Context, session *entity.ChatSession) error {
	if s.fail() {
		return errBoom
	}
	return s.Storage.SaveSession(ctx, session)
}

func (s *flakyStorage) SaveMessage(ctx context.Context, message *entity.ChatMessage) error {
	if s.fail() {
		return errBoom
	}
	return s.Storage.SaveMessage(ctx, message)
}

func (s *flakyStorage) LoadSession(ctx context.Context, sessionId, userId string) (*entity.Conversation, error) {
	if s.fail() {
		return nil, errBoom
	}
	return s.Storage.LoadSession(ctx, sessionId, userId)
}

func (s *flakyStorage) ListSessions(ctx context.Context, userId string) ([]*entity.ChatSession, error) {
	if s.fail() {
		return nil, errBoom
	}
	return s.Storage.ListSessions(ctx, userId)
}

func (s *flakyStorage) DeleteSession(ctx context.Context, sessionId, userId string) error {
	if s.fail() {
		return errBoom
	}
	return s.Storage.DeleteSession(ctx, sessionId, userId)
}

type degradedEvent struct {
	storage, operation string
}

type recordingEvents struct {
	mu       sync.Mutex
	degraded []degradedEvent
}

func (r *recordingEvents) PublishSessionSaved(ctx context.Context, sessionId, userId, storage string) {}

func (r *recordingEvents) PublishSessionDeleted(ctx context.Context, sessionId, userId string) {}

func (r *recordingEvents) PublishFallbackReply(ctx context.Context, sessionId, userId, reason, topic string) {}

func (r *recordingEvents) PublishStorageDegraded(ctx context.Context, storage, operation string, cause error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.degraded = append(r.degraded, degradedEvent{storage: storage, operation: operation})
}

func newRemote(t *testing.T) *RemoteStorage {
	t.Helper()
	return NewRemoteStorage(unitofwork.NewRepositoryFactory(testdb.Open(t)))
}

func newLocal() *LocalStorage {
	return NewLocalStorage(kvstore.NewMemoryStore(), local.NewKeys(""))
}

func nopLogger() *logger.ZapLogger { return logger.NewNopLogger() }

func newFallback(primary Storage, localStore *LocalStorage) (*FallbackStorage, *recordingEvents) {
	events := &recordingEvents{}
	return NewFallbackStorage(primary, localStore, logger.NewNopLogger(), events), events
}

var baseTime = time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

func testSession(id, userId, name string) *entity.ChatSession {
	return &entity.ChatSession{
		Id:          id,
		UserId:      userId,
		SessionName: name,
		SessionType: entity.SessionTypeGeneral,
		IsActive:    true,
		CreatedAt:   baseTime,
		UpdatedAt:   baseTime,
	}
}

func testMessage(id, sessionId, userId, content string, at time.Time) *entity.ChatMessage {
	return &entity.ChatMessage{
		Id:        id,
		SessionId: sessionId,
		UserId:    userId,
		Role:      entity.MessageRoleUser,
		Content:   content,
		CreatedAt: at,
	}
}
