package chatstore

import (
	"context"
	"time"

	"manasfit-be/internal/entity"
	"manasfit-be/internal/repository/specification"
	"manasfit-be/internal/repository/unitofwork"
)

// RemoteStorage keeps chats in the shared database.
type RemoteStorage struct {
	repoFactory unitofwork.RepositoryFactory
	now         func() time.Time
}

// NewRemoteStorage accepts a nil factory, in which case the storage reports
// itself unavailable.
func NewRemoteStorage(repoFactory unitofwork.RepositoryFactory) *RemoteStorage {
	return &RemoteStorage{repoFactory: repoFactory, now: time.Now}
}

func (s *RemoteStorage) Name() string { return string(StorageTypeRemote) }

func (s *RemoteStorage) Available() bool { return s != nil && s.repoFactory != nil }

func (s *RemoteStorage) SaveSession(ctx context.Context, session *entity.ChatSession) error {
	if !s.Available() {
		return ErrUnavailable
	}
	if err := validateSession(session); err != nil {
		return err
	}

	uow := s.repoFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	repo := uow.ChatSessionRepository()
	existing, err := repo.FindOne(ctx,
		specification.ByID{ID: session.Id},
		specification.IncludeDeleted{},
	)
	if err != nil {
		return err
	}

	switch {
	case existing == nil:
		record := *session
		now := s.now()
		if record.CreatedAt.IsZero() {
			record.CreatedAt = now
		}
		if record.UpdatedAt.IsZero() {
			record.UpdatedAt = record.CreatedAt
		}
		if err := repo.Create(ctx, &record); err != nil {
			return err
		}
	case existing.DeletedAt != nil:
		return ErrSessionDeleted
	case existing.UserId != session.UserId:
		return ErrSessionOwnership
	default:
		if err := repo.Update(ctx, mergeExisting(existing, session)); err != nil {
			return err
		}
	}

	return uow.Commit()
}

func (s *RemoteStorage) SaveMessage(ctx context.Context, message *entity.ChatMessage) error {
	if !s.Available() {
		return ErrUnavailable
	}
	if err := validateMessage(message); err != nil {
		return err
	}

	uow := s.repoFactory.NewUnitOfWork(ctx)
	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: message.SessionId},
		specification.IncludeDeleted{},
	)
	if err != nil {
		return err
	}
	if session != nil {
		if session.DeletedAt != nil {
			return ErrSessionDeleted
		}
		if session.UserId != message.UserId {
			return ErrSessionOwnership
		}
	}

	record := *message
	if record.CreatedAt.IsZero() {
		record.CreatedAt = s.now()
	}
	_, err = uow.ChatMessageRepository().CreateIfAbsent(ctx, &record)
	return err
}

func (s *RemoteStorage) LoadSession(ctx context.Context, sessionId, userId string) (*entity.Conversation, error) {
	if !s.Available() {
		return nil, ErrUnavailable
	}

	uow := s.repoFactory.NewUnitOfWork(ctx)
	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.ByUserID{UserID: userId},
	)
	if err != nil || session == nil {
		return nil, err
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.Chronological{},
	)
	if err != nil {
		return nil, err
	}
	entity.SortMessages(messages)

	return &entity.Conversation{Session: session, Messages: messages}, nil
}

func (s *RemoteStorage) ListSessions(ctx context.Context, userId string) ([]*entity.ChatSession, error) {
	if !s.Available() {
		return nil, ErrUnavailable
	}

	uow := s.repoFactory.NewUnitOfWork(ctx)
	return uow.ChatSessionRepository().FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.ActiveOnly{},
		specification.RecentlyUpdated{},
	)
}

// DeleteSession removes the messages first and only then soft deletes the
// session, inside one transaction.
func (s *RemoteStorage) DeleteSession(ctx context.Context, sessionId, userId string) error {
	if !s.Available() {
		return ErrUnavailable
	}

	uow := s.repoFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	sessionRepo := uow.ChatSessionRepository()
	session, err := sessionRepo.FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.IncludeDeleted{},
	)
	if err != nil {
		return err
	}
	if session == nil || session.DeletedAt != nil {
		return nil
	}
	if session.UserId != userId {
		return ErrSessionOwnership
	}

	if err := uow.ChatMessageRepository().DeleteBySessionId(ctx, sessionId); err != nil {
		return err
	}
	if err := sessionRepo.Delete(ctx, sessionId); err != nil {
		return err
	}

	return uow.Commit()
}
