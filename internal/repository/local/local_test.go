package local

import (
	"context"
	"testing"

	"manasfit-be/internal/entity"
	"manasfit-be/pkg/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeys_Layout(t *testing.T) {
	k := NewKeys("")
	assert.Equal(t, "nachiketa-session-s1", k.Session("s1"))
	assert.Equal(t, "nachiketa-message-s1-m1", k.Message("s1", "m1"))
	assert.Equal(t, "nachiketa-deleted-s1", k.Tombstone("s1"))
	assert.Equal(t, "manasfit_wellness_profile_u1", k.WellnessProfile("u1"))
	assert.Equal(t, "manasfit_companion_selection_u1", k.CompanionSelection("u1"))
	assert.Equal(t, "manasfit-theme_u1", k.Theme("u1"))
	assert.Equal(t, "petProfile_u1", k.PetProfile("u1"))

	assert.Equal(t, "custom-session-s1", NewKeys("custom").Session("s1"))
}

func TestGetJSON_Corrupt(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "k", "{not json"))

	var v map[string]string
	ok, err := GetJSON(ctx, store, "k", &v)
	assert.Error(t, err)
	assert.False(t, ok)

	ok, err = GetJSON(ctx, store, "missing", &v)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestPreferenceStore_ThemeAndPet(t *testing.T) {
	ctx := context.Background()
	s := NewPreferenceStore(kvstore.NewMemoryStore(), NewKeys(""))

	_, ok, err := s.GetTheme(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.SetTheme(ctx, "u1", entity.ThemeDark))
	theme, ok, err := s.GetTheme(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, entity.ThemeDark, theme)

	pet, err := s.GetPetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, pet)

	require.NoError(t, s.SetPetProfile(ctx, "u1", &entity.PetProfile{Name: "Momo", ImageKey: entity.PetImageTwo, Mood: "happy"}))
	pet, err = s.GetPetProfile(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, pet)
	assert.Equal(t, "Momo", pet.Name)
	assert.Equal(t, entity.PetImageTwo, pet.ImageKey)
}

func TestPreferenceStore_WellnessEntriesByDate(t *testing.T) {
	ctx := context.Background()
	s := NewPreferenceStore(kvstore.NewMemoryStore(), NewKeys(""))
	mood := 6

	require.NoError(t, s.PutWellnessEntry(ctx, &entity.WellnessEntry{UserId: "u1", EntryDate: "2026-10-01"}))
	require.NoError(t, s.PutWellnessEntry(ctx, &entity.WellnessEntry{UserId: "u1", EntryDate: "2026-10-03"}))
	require.NoError(t, s.PutWellnessEntry(ctx, &entity.WellnessEntry{UserId: "u1", EntryDate: "2026-10-01", MoodScore: &mood}))

	entries, err := s.GetWellnessEntries(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "2026-10-03", entries[0].EntryDate)
	require.NotNil(t, entries[1].MoodScore)
	assert.Equal(t, 6, *entries[1].MoodScore)

	none, err := s.GetWellnessEntries(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, none)
}
