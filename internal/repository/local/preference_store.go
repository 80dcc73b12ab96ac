package local

import (
	"context"
	"sort"

	"manasfit-be/internal/entity"
	"manasfit-be/pkg/kvstore"
)

// PreferenceStore keeps the per-user records that live only on this node,
// plus the local copies written when the database is unreachable.
type PreferenceStore struct {
	store kvstore.Store
	keys  Keys
}

func NewPreferenceStore(store kvstore.Store, keys Keys) *PreferenceStore {
	return &PreferenceStore{store: store, keys: keys}
}

func (s *PreferenceStore) GetTheme(ctx context.Context, userId string) (entity.Theme, bool, error) {
	raw, ok, err := s.store.Get(ctx, s.keys.Theme(userId))
	if err != nil || !ok {
		return "", false, err
	}
	return entity.Theme(raw), true, nil
}

func (s *PreferenceStore) SetTheme(ctx context.Context, userId string, theme entity.Theme) error {
	return s.store.Set(ctx, s.keys.Theme(userId), string(theme))
}

func (s *PreferenceStore) GetPetProfile(ctx context.Context, userId string) (*entity.PetProfile, error) {
	var profile entity.PetProfile
	ok, err := GetJSON(ctx, s.store, s.keys.PetProfile(userId), &profile)
	if err != nil || !ok {
		return nil, err
	}
	return &profile, nil
}

func (s *PreferenceStore) SetPetProfile(ctx context.Context, userId string, profile *entity.PetProfile) error {
	return SetJSON(ctx, s.store, s.keys.PetProfile(userId), profile)
}

func (s *PreferenceStore) GetWellnessProfile(ctx context.Context, userId string) (*entity.WellnessProfile, error) {
	var profile entity.WellnessProfile
	ok, err := GetJSON(ctx, s.store, s.keys.WellnessProfile(userId), &profile)
	if err != nil || !ok {
		return nil, err
	}
	return &profile, nil
}

func (s *PreferenceStore) SetWellnessProfile(ctx context.Context, profile *entity.WellnessProfile) error {
	return SetJSON(ctx, s.store, s.keys.WellnessProfile(profile.UserId), profile)
}

func (s *PreferenceStore) DeleteWellnessProfile(ctx context.Context, userId string) error {
	return s.store.Delete(ctx, s.keys.WellnessProfile(userId))
}

// GetWellnessEntries returns the stored entries newest date first.
func (s *PreferenceStore) GetWellnessEntries(ctx context.Context, userId string) ([]*entity.WellnessEntry, error) {
	byDate := map[string]*entity.WellnessEntry{}
	if _, err := GetJSON(ctx, s.store, s.keys.WellnessEntries(userId), &byDate); err != nil {
		return nil, err
	}
	entries := make([]*entity.WellnessEntry, 0, len(byDate))
	for _, e := range byDate {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].EntryDate > entries[j].EntryDate
	})
	return entries, nil
}

// PutWellnessEntry replaces the entry stored for entry.EntryDate.
func (s *PreferenceStore) PutWellnessEntry(ctx context.Context, entry *entity.WellnessEntry) error {
	key := s.keys.WellnessEntries(entry.UserId)
	byDate := map[string]*entity.WellnessEntry{}
	if _, err := GetJSON(ctx, s.store, key, &byDate); err != nil {
		return err
	}
	byDate[entry.EntryDate] = entry
	return SetJSON(ctx, s.store, key, byDate)
}

func (s *PreferenceStore) GetCompanionSelection(ctx context.Context, userId string) (*entity.CompanionSelection, error) {
	var selection entity.CompanionSelection
	ok, err := GetJSON(ctx, s.store, s.keys.CompanionSelection(userId), &selection)
	if err != nil || !ok {
		return nil, err
	}
	return &selection, nil
}

func (s *PreferenceStore) SetCompanionSelection(ctx context.Context, selection *entity.CompanionSelection) error {
	return SetJSON(ctx, s.store, s.keys.CompanionSelection(selection.UserId), selection)
}
