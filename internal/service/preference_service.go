package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"manasfit-be/internal/entity"
	"manasfit-be/internal/repository/local"
)

const defaultPetMood = "neutral"

var (
	ErrInvalidTheme    = errors.New("theme must be light or dark")
	ErrPetNameRequired = errors.New("pet name is required")
	ErrInvalidPetImage = errors.New("pet image must be pet1 or pet2")
)

type IPreferenceService interface {
	GetTheme(ctx context.Context, userId string) (entity.Theme, error)
	SetTheme(ctx context.Context, userId string, theme entity.Theme) error
	GetPetProfile(ctx context.Context, userId string) (*entity.PetProfile, error)
	SetPetProfile(ctx context.Context, userId string, profile *entity.PetProfile) (*entity.PetProfile, error)
}

type preferenceService struct {
	prefs *local.PreferenceStore
	now   func() time.Time
}

func NewPreferenceService(prefs *local.PreferenceStore) IPreferenceService {
	return &preferenceService{prefs: prefs, now: time.Now}
}

func (s *preferenceService) GetTheme(ctx context.Context, userId string) (entity.Theme, error) {
	theme, ok, err := s.prefs.GetTheme(ctx, userId)
	if err != nil {
		return "", err
	}
	if !ok || !theme.Valid() {
		return entity.ThemeLight, nil
	}
	return theme, nil
}

func (s *preferenceService) SetTheme(ctx context.Context, userId string, theme entity.Theme) error {
	if !theme.Valid() {
		return ErrInvalidTheme
	}
	return s.prefs.SetTheme(ctx, userId, theme)
}

func (s *preferenceService) GetPetProfile(ctx context.Context, userId string) (*entity.PetProfile, error) {
	return s.prefs.GetPetProfile(ctx, userId)
}

func (s *preferenceService) SetPetProfile(ctx context.Context, userId string, profile *entity.PetProfile) (*entity.PetProfile, error) {
	record := *profile
	record.Name = strings.TrimSpace(record.Name)
	if record.Name == "" {
		return nil, ErrPetNameRequired
	}
	switch record.ImageKey {
	case "":
		record.ImageKey = entity.PetImageOne
	case entity.PetImageOne, entity.PetImageTwo:
	default:
		return nil, ErrInvalidPetImage
	}
	if record.StartDate == "" {
		record.StartDate = s.now().Format(entity.EntryDateLayout)
	}
	if strings.TrimSpace(record.Mood) == "" {
		record.Mood = defaultPetMood
	}

	if err := s.prefs.SetPetProfile(ctx, userId, &record); err != nil {
		return nil, err
	}
	return &record, nil
}
