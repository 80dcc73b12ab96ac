package contract

import (
	"context"

	"manasfit-be/internal/entity"
	"manasfit-be/internal/repository/specification"
)

type ChatMessageRepository interface {
	// CreateIfAbsent inserts the message unless its id already exists.
	// It reports whether a row was written; existing rows are never updated.
	CreateIfAbsent(ctx context.Context, message *entity.ChatMessage) (bool, error)
	DeleteBySessionId(ctx context.Context, sessionId string) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
