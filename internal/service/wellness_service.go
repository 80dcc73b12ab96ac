package service

import (
	"context"
	"errors"
	"time"

	"manasfit-be/internal/entity"
	"manasfit-be/internal/pkg/logger"
	"manasfit-be/internal/repository/local"
	"manasfit-be/internal/repository/specification"
	"manasfit-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const defaultEntryDays = 7

var ErrInvalidEntryDate = errors.New("entry date must be YYYY-MM-DD")

type IWellnessService interface {
	SaveProfile(ctx context.Context, userId string, patch *entity.WellnessProfile) (*entity.WellnessProfile, error)
	// GetProfile returns nil when the user has no profile yet.
	GetProfile(ctx context.Context, userId string) (*entity.WellnessProfile, error)
	DeleteProfile(ctx context.Context, userId string) error
	HasCompletedProfile(ctx context.Context, userId string) bool
	SaveEntry(ctx context.Context, userId string, entry *entity.WellnessEntry) (*entity.WellnessEntry, error)
	ListEntries(ctx context.Context, userId string, days int) ([]*entity.WellnessEntry, error)
}

// wellnessService prefers the database and keeps a local copy only while the
// database cannot take the write.
type wellnessService struct {
	uowFactory unitofwork.RepositoryFactory
	prefs      *local.PreferenceStore
	logger     logger.ILogger
	now        func() time.Time
}

// NewWellnessService accepts a nil uowFactory when no database is configured.
func NewWellnessService(uowFactory unitofwork.RepositoryFactory, prefs *local.PreferenceStore, logger logger.ILogger) IWellnessService {
	return &wellnessService{uowFactory: uowFactory, prefs: prefs, logger: logger, now: time.Now}
}

func (s *wellnessService) remote() bool { return s.uowFactory != nil }

func (s *wellnessService) degraded(operation string, err error) {
	s.logger.Warn("WELLNESS", "Database unavailable, using local storage", map[string]interface{}{
		"operation": operation,
		"error":     err.Error(),
	})
}

func (s *wellnessService) GetProfile(ctx context.Context, userId string) (*entity.WellnessProfile, error) {
	if s.remote() {
		profile, err := s.uowFactory.NewUnitOfWork(ctx).WellnessProfileRepository().FindByUserId(ctx, userId)
		if err == nil && profile != nil {
			return profile, nil
		}
		if err != nil {
			s.degraded("get_profile", err)
		}
	}
	return s.prefs.GetWellnessProfile(ctx, userId)
}

// SaveProfile merges patch into the stored profile. Completion is always
// derived here; whatever the caller sent for it is ignored.
func (s *wellnessService) SaveProfile(ctx context.Context, userId string, patch *entity.WellnessProfile) (*entity.WellnessProfile, error) {
	existing, err := s.GetProfile(ctx, userId)
	if err != nil {
		return nil, err
	}

	now := s.now()
	profile := existing
	if profile == nil {
		profile = &entity.WellnessProfile{Id: uuid.NewString(), UserId: userId, CreatedAt: now}
	}
	profile.Merge(patch)
	profile.UserId = userId
	profile.Recompute()
	profile.UpdatedAt = now

	if s.remote() {
		err := s.uowFactory.NewUnitOfWork(ctx).WellnessProfileRepository().Upsert(ctx, profile)
		if err == nil {
			return profile, nil
		}
		s.degraded("save_profile", err)
	}
	if err := s.prefs.SetWellnessProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *wellnessService) DeleteProfile(ctx context.Context, userId string) error {
	var remoteErr error
	if s.remote() {
		remoteErr = s.uowFactory.NewUnitOfWork(ctx).WellnessProfileRepository().DeleteByUserId(ctx, userId)
	}
	return errors.Join(remoteErr, s.prefs.DeleteWellnessProfile(ctx, userId))
}

func (s *wellnessService) HasCompletedProfile(ctx context.Context, userId string) bool {
	profile, err := s.GetProfile(ctx, userId)
	if err != nil || profile == nil {
		return false
	}
	return profile.IsCompleted
}

func (s *wellnessService) today() string {
	return s.now().Format(entity.EntryDateLayout)
}

func (s *wellnessService) findEntry(ctx context.Context, userId, date string) (*entity.WellnessEntry, error) {
	if s.remote() {
		entry, err := s.uowFactory.NewUnitOfWork(ctx).WellnessEntryRepository().FindOne(ctx,
			specification.ByUserID{UserID: userId},
			specification.ByEntryDate{Date: date},
		)
		if err == nil && entry != nil {
			return entry, nil
		}
		if err != nil {
			s.degraded("find_entry", err)
		}
	}

	entries, err := s.prefs.GetWellnessEntries(ctx, userId)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.EntryDate == date {
			return e, nil
		}
	}
	return nil, nil
}

// SaveEntry merges entry into what is already recorded for its date. An
// empty date means today.
func (s *wellnessService) SaveEntry(ctx context.Context, userId string, entry *entity.WellnessEntry) (*entity.WellnessEntry, error) {
	date := entry.EntryDate
	if date == "" {
		date = s.today()
	}
	if _, err := time.Parse(entity.EntryDateLayout, date); err != nil {
		return nil, ErrInvalidEntryDate
	}

	existing, err := s.findEntry(ctx, userId, date)
	if err != nil {
		return nil, err
	}

	now := s.now()
	record := existing
	if record == nil {
		record = &entity.WellnessEntry{Id: uuid.NewString(), UserId: userId, EntryDate: date, CreatedAt: now}
	}
	record.Merge(entry)
	record.UpdatedAt = now

	if s.remote() {
		err := s.uowFactory.NewUnitOfWork(ctx).WellnessEntryRepository().Upsert(ctx, record)
		if err == nil {
			return record, nil
		}
		s.degraded("save_entry", err)
	}
	if err := s.prefs.PutWellnessEntry(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// ListEntries returns the entries of the last days days, newest first.
func (s *wellnessService) ListEntries(ctx context.Context, userId string, days int) ([]*entity.WellnessEntry, error) {
	if days <= 0 {
		days = defaultEntryDays
	}
	since := s.now().AddDate(0, 0, -(days - 1)).Format(entity.EntryDateLayout)

	if s.remote() {
		entries, err := s.uowFactory.NewUnitOfWork(ctx).WellnessEntryRepository().FindAll(ctx,
			specification.ByUserID{UserID: userId},
			specification.EntryDateSince{Date: since},
		)
		if err == nil {
			return entries, nil
		}
		s.degraded("list_entries", err)
	}

	stored, err := s.prefs.GetWellnessEntries(ctx, userId)
	if err != nil {
		return nil, err
	}
	entries := make([]*entity.WellnessEntry, 0, len(stored))
	for _, e := range stored {
		if e.EntryDate >= since {
			entries = append(entries, e)
		}
	}
	return entries, nil
}
