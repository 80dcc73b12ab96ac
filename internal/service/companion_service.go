package service

import (
	"context"
	"time"

	"manasfit-be/internal/entity"
	"manasfit-be/internal/pkg/logger"
	"manasfit-be/internal/repository/local"
	"manasfit-be/internal/repository/unitofwork"
	"manasfit-be/pkg/companion"
)

type ICompanionService interface {
	SaveSelection(ctx context.Context, userId string, selection *entity.CompanionSelection) (*entity.CompanionSelection, error)
	// GetSelection returns nil when the user has not chosen yet.
	GetSelection(ctx context.Context, userId string) (*entity.CompanionSelection, error)
	// ActiveCompanionMode is the persona the chat should use for the user.
	ActiveCompanionMode(ctx context.Context, userId string) companion.Mode
}

type companionService struct {
	uowFactory unitofwork.RepositoryFactory
	prefs      *local.PreferenceStore
	logger     logger.ILogger
	now        func() time.Time
}

func NewCompanionService(uowFactory unitofwork.RepositoryFactory, prefs *local.PreferenceStore, logger logger.ILogger) ICompanionService {
	return &companionService{uowFactory: uowFactory, prefs: prefs, logger: logger, now: time.Now}
}

// SaveSelection writes locally first. The database copy is best effort: a
// failed database write is logged and the local copy stays authoritative.
func (s *companionService) SaveSelection(ctx context.Context, userId string, selection *entity.CompanionSelection) (*entity.CompanionSelection, error) {
	record := *selection
	record.UserId = userId
	record.Normalize()
	if err := record.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	record.UpdatedAt = now

	if err := s.prefs.SetCompanionSelection(ctx, &record); err != nil {
		return nil, err
	}

	if s.uowFactory != nil {
		if err := s.uowFactory.NewUnitOfWork(ctx).CompanionSelectionRepository().Upsert(ctx, &record); err != nil {
			s.logger.Warn("COMPANION", "Failed to save selection to database", map[string]interface{}{
				"user_id": userId,
				"error":   err.Error(),
			})
		}
	}
	return &record, nil
}

func (s *companionService) GetSelection(ctx context.Context, userId string) (*entity.CompanionSelection, error) {
	selection, err := s.prefs.GetCompanionSelection(ctx, userId)
	if err != nil || selection != nil || s.uowFactory == nil {
		return selection, err
	}

	selection, err = s.uowFactory.NewUnitOfWork(ctx).CompanionSelectionRepository().FindByUserId(ctx, userId)
	if err != nil {
		s.logger.Warn("COMPANION", "Failed to read selection from database", map[string]interface{}{
			"user_id": userId,
			"error":   err.Error(),
		})
		return nil, nil
	}
	if selection != nil {
		_ = s.prefs.SetCompanionSelection(ctx, selection)
	}
	return selection, nil
}

func (s *companionService) ActiveCompanionMode(ctx context.Context, userId string) companion.Mode {
	selection, err := s.GetSelection(ctx, userId)
	if err != nil || selection == nil {
		return companion.DefaultMode
	}
	if selection.Kind == entity.SelectionKindPet {
		return companion.ModeBuddy
	}
	return companion.ParseMode(selection.CompanionType)
}
