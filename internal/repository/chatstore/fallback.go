package chatstore

import (
	"context"
	"errors"
	"time"

	"manasfit-be/internal/entity"
	"manasfit-be/internal/pkg/logger"
	"manasfit-be/pkg/chatevents"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"
)

const (
	logModule = "CHAT_STORAGE"

	ownerTTL             = 24 * time.Hour
	ownerCleanupInterval = time.Hour
)

// FallbackStorage routes every call to the preferred backend and substitutes
// local storage whenever that backend is unavailable or fails. Domain errors
// are returned as they are.
type FallbackStorage struct {
	primary Storage
	local   Storage
	logger  logger.ILogger
	events  chatevents.Publisher

	// owners maps session id to the user the primary last reported for it,
	// so local writes during an outage cannot take over a remote session.
	owners *cache.Cache
}

func NewFallbackStorage(primary, local Storage, logger logger.ILogger, events chatevents.Publisher) *FallbackStorage {
	return &FallbackStorage{
		primary: primary,
		local:   local,
		logger:  logger,
		events:  events,
		owners:  cache.New(ownerTTL, ownerCleanupInterval),
	}
}

func (f *FallbackStorage) rememberOwner(sessionId, userId string) {
	if sessionId == "" || userId == "" {
		return
	}
	f.owners.SetDefault(sessionId, userId)
}

// checkOwner rejects a write for a session the primary knows under another user.
func (f *FallbackStorage) checkOwner(sessionId, userId string) error {
	owner, ok := f.owners.Get(sessionId)
	if ok && owner.(string) != userId {
		return ErrSessionOwnership
	}
	return nil
}

func (f *FallbackStorage) Name() string { return f.primary.Name() }

func (f *FallbackStorage) Available() bool { return f.primary.Available() || f.local.Available() }

func (f *FallbackStorage) Primary() Storage { return f.primary }

func (f *FallbackStorage) hasFallback() bool { return f.primary != f.local }

// usePrimary reports whether the primary should be tried at all.
func (f *FallbackStorage) usePrimary(operation string) bool {
	if f.primary.Available() {
		return true
	}
	if f.hasFallback() {
		f.logger.Debug(logModule, "Primary storage unavailable, using local", map[string]interface{}{
			"storage":   f.primary.Name(),
			"operation": operation,
		})
	}
	return false
}

func (f *FallbackStorage) degraded(ctx context.Context, operation string, err error) {
	f.logger.Warn(logModule, "Primary storage failed, using local", map[string]interface{}{
		"storage":   f.primary.Name(),
		"operation": operation,
		"error":     err.Error(),
	})
	if f.events != nil {
		f.events.PublishStorageDegraded(ctx, f.primary.Name(), operation, err)
	}
}

func saveBoth(ctx context.Context, s Storage, session *entity.ChatSession, message *entity.ChatMessage) error {
	if session != nil {
		if err := s.SaveSession(ctx, session); err != nil {
			return err
		}
	}
	if message != nil {
		if err := s.SaveMessage(ctx, message); err != nil {
			return err
		}
	}
	return nil
}

// Save writes the session and then the message to one backend. Either may be
// nil. It returns the name of the backend that took the write.
func (f *FallbackStorage) Save(ctx context.Context, session *entity.ChatSession, message *entity.ChatMessage) (string, error) {
	if f.usePrimary("save") {
		err := saveBoth(ctx, f.primary, session, message)
		if err == nil {
			if session != nil {
				f.rememberOwner(session.Id, session.UserId)
			}
			if message != nil {
				f.rememberOwner(message.SessionId, message.UserId)
			}
			return f.primary.Name(), nil
		}
		if IsDomainError(err) || !f.hasFallback() {
			return "", err
		}
		f.degraded(ctx, "save", err)
	}

	if session != nil {
		if err := f.checkOwner(session.Id, session.UserId); err != nil {
			return "", err
		}
	}
	if message != nil {
		if err := f.checkOwner(message.SessionId, message.UserId); err != nil {
			return "", err
		}
	}
	if err := saveBoth(ctx, f.local, session, message); err != nil {
		return "", err
	}
	return f.local.Name(), nil
}

func (f *FallbackStorage) SaveSession(ctx context.Context, session *entity.ChatSession) error {
	_, err := f.Save(ctx, session, nil)
	return err
}

func (f *FallbackStorage) SaveMessage(ctx context.Context, message *entity.ChatMessage) error {
	_, err := f.Save(ctx, nil, message)
	return err
}

// LoadSession prefers the primary copy and folds in any messages that were
// written locally while the primary was down.
func (f *FallbackStorage) LoadSession(ctx context.Context, sessionId, userId string) (*entity.Conversation, error) {
	var primary *entity.Conversation
	if f.usePrimary("load") {
		conv, err := f.primary.LoadSession(ctx, sessionId, userId)
		if err != nil {
			if IsDomainError(err) || !f.hasFallback() {
				return nil, err
			}
			f.degraded(ctx, "load", err)
		}
		primary = conv
		if conv != nil && conv.Session != nil {
			f.rememberOwner(conv.Session.Id, conv.Session.UserId)
		}
	}
	if !f.hasFallback() {
		return primary, nil
	}

	localConv, err := f.local.LoadSession(ctx, sessionId, userId)
	if err != nil {
		if primary != nil {
			f.logger.Warn(logModule, "Local read failed during load", map[string]interface{}{"session_id": sessionId, "error": err.Error()})
			return primary, nil
		}
		return nil, err
	}
	return mergeConversations(primary, localConv), nil
}

func mergeConversations(a, b *entity.Conversation) *entity.Conversation {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}

	session := a.Session
	if b.Session.UpdatedAt.After(session.UpdatedAt) {
		session = b.Session
	}

	seen := make(map[string]bool, len(a.Messages)+len(b.Messages))
	messages := make([]*entity.ChatMessage, 0, len(a.Messages)+len(b.Messages))
	for _, list := range [][]*entity.ChatMessage{a.Messages, b.Messages} {
		for _, m := range list {
			if seen[m.Id] {
				continue
			}
			seen[m.Id] = true
			messages = append(messages, m)
		}
	}
	entity.SortMessages(messages)
	return &entity.Conversation{Session: session, Messages: messages}
}

// ListSessions unions the primary and local listings.
func (f *FallbackStorage) ListSessions(ctx context.Context, userId string) ([]*entity.ChatSession, error) {
	if !f.hasFallback() {
		return f.primary.ListSessions(ctx, userId)
	}

	var primary, localSessions []*entity.ChatSession
	var primaryErr error
	primaryOK := false
	var g errgroup.Group
	if f.usePrimary("list") {
		g.Go(func() error {
			primary, primaryErr = f.primary.ListSessions(ctx, userId)
			primaryOK = primaryErr == nil
			return nil
		})
	}
	g.Go(func() error {
		var err error
		localSessions, err = f.local.ListSessions(ctx, userId)
		return err
	})
	localErr := g.Wait()

	if primaryErr != nil {
		f.degraded(ctx, "list", primaryErr)
	}
	for _, session := range primary {
		f.rememberOwner(session.Id, session.UserId)
	}
	if localErr != nil {
		if !primaryOK {
			return nil, localErr
		}
		f.logger.Warn(logModule, "Local listing failed", map[string]interface{}{"user_id": userId, "error": localErr.Error()})
	}

	byId := make(map[string]*entity.ChatSession, len(primary)+len(localSessions))
	for _, list := range [][]*entity.ChatSession{primary, localSessions} {
		for _, s := range list {
			if prev, ok := byId[s.Id]; !ok || s.UpdatedAt.After(prev.UpdatedAt) {
				byId[s.Id] = s
			}
		}
	}
	sessions := make([]*entity.ChatSession, 0, len(byId))
	for _, s := range byId {
		sessions = append(sessions, s)
	}
	entity.SortSessionsByUpdatedDesc(sessions)
	return sessions, nil
}

// DeleteSession removes the session from the primary when reachable and from
// local storage always. A reachable primary that fails the delete is reported.
func (f *FallbackStorage) DeleteSession(ctx context.Context, sessionId, userId string) error {
	var primaryErr error
	if f.usePrimary("delete") {
		primaryErr = f.primary.DeleteSession(ctx, sessionId, userId)
		if IsDomainError(primaryErr) {
			return primaryErr
		}
		if !f.hasFallback() {
			return primaryErr
		}
		if primaryErr != nil {
			f.degraded(ctx, "delete", primaryErr)
		}
	}
	if err := f.checkOwner(sessionId, userId); err != nil {
		return err
	}

	localErr := f.local.DeleteSession(ctx, sessionId, userId)
	return errors.Join(primaryErr, localErr)
}
