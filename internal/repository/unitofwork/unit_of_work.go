package unitofwork

import (
	"context"

	"manasfit-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ChatSessionRepository() contract.ChatSessionRepository
	ChatMessageRepository() contract.ChatMessageRepository
	WellnessProfileRepository() contract.WellnessProfileRepository
	WellnessEntryRepository() contract.WellnessEntryRepository
	CompanionSelectionRepository() contract.CompanionSelectionRepository
}
