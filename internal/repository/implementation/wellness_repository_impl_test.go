package implementation

import (
	"context"
	"testing"

	"manasfit-be/internal/entity"
	"manasfit-be/internal/pkg/testdb"
	"manasfit-be/internal/repository/specification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestWellnessProfileRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	repo := NewWellnessProfileRepository(testdb.Open(t))

	profile := &entity.WellnessProfile{Id: "p1", UserId: "u1", SleepSchedule: strPtr("regular"), SleepIssues: []string{"insomnia"}}
	profile.Recompute()
	require.NoError(t, repo.Upsert(ctx, profile))

	profile.StressLevel = intPtr(4)
	profile.Recompute()
	require.NoError(t, repo.Upsert(ctx, &entity.WellnessProfile{
		Id: "p2", UserId: "u1", SleepSchedule: profile.SleepSchedule, SleepIssues: profile.SleepIssues,
		StressLevel: profile.StressLevel, CompletionPercentage: profile.CompletionPercentage,
	}))

	found, err := repo.FindByUserId(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "p1", found.Id)
	assert.Equal(t, 4, *found.StressLevel)
	assert.Equal(t, []string{"insomnia"}, found.SleepIssues)
	assert.Equal(t, profile.CompletionPercentage, found.CompletionPercentage)

	require.NoError(t, repo.DeleteByUserId(ctx, "u1"))
	found, err = repo.FindByUserId(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestWellnessEntryRepository_UpsertPerDay(t *testing.T) {
	ctx := context.Background()
	repo := NewWellnessEntryRepository(testdb.Open(t))

	require.NoError(t, repo.Upsert(ctx, &entity.WellnessEntry{Id: "e1", UserId: "u1", EntryDate: "2026-10-01", MoodScore: intPtr(3)}))
	require.NoError(t, repo.Upsert(ctx, &entity.WellnessEntry{Id: "e2", UserId: "u1", EntryDate: "2026-10-01", MoodScore: intPtr(5)}))
	require.NoError(t, repo.Upsert(ctx, &entity.WellnessEntry{Id: "e3", UserId: "u1", EntryDate: "2026-10-02"}))

	entry, err := repo.FindOne(ctx, specification.ByUserID{UserID: "u1"}, specification.ByEntryDate{Date: "2026-10-01"})
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, 5, *entry.MoodScore)

	entries, err := repo.FindAll(ctx, specification.ByUserID{UserID: "u1"}, specification.OrderBy{Field: "entry_date", Desc: true})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "2026-10-02", entries[0].EntryDate)
}

func TestCompanionSelectionRepository_SwitchKind(t *testing.T) {
	ctx := context.Background()
	repo := NewCompanionSelectionRepository(testdb.Open(t))

	require.NoError(t, repo.Upsert(ctx, &entity.CompanionSelection{UserId: "u1", Kind: entity.SelectionKindPet, Character: "fox"}))
	require.NoError(t, repo.Upsert(ctx, &entity.CompanionSelection{UserId: "u1", Kind: entity.SelectionKindCompanion, CompanionType: "mentor"}))

	found, err := repo.FindByUserId(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, entity.SelectionKindCompanion, found.Kind)
	assert.Equal(t, "mentor", found.CompanionType)
	assert.Empty(t, found.Character)

	missing, err := repo.FindByUserId(ctx, "u2")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
