package service

import (
	"context"
	"testing"

	"manasfit-be/internal/entity"
	"manasfit-be/internal/pkg/logger"
	"manasfit-be/internal/pkg/testdb"
	"manasfit-be/internal/repository/unitofwork"
	"manasfit-be/pkg/companion"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanionService_SaveNormalisesAndValidates(t *testing.T) {
	ctx := context.Background()
	factory := unitofwork.NewRepositoryFactory(testdb.Open(t))
	svc := NewCompanionService(factory, newPrefs(), logger.NewNopLogger())

	assert.Equal(t, companion.ModeMentor, svc.ActiveCompanionMode(ctx, "U1"))

	_, err := svc.SaveSelection(ctx, "U1", &entity.CompanionSelection{Kind: entity.SelectionKindPet})
	assert.ErrorIs(t, err, entity.ErrMissingCharacter)
	_, err = svc.SaveSelection(ctx, "U1", &entity.CompanionSelection{Kind: "robot"})
	assert.ErrorIs(t, err, entity.ErrInvalidSelectionKind)

	saved, err := svc.SaveSelection(ctx, "U1", &entity.CompanionSelection{Kind: entity.SelectionKindPet, Character: "fox", CompanionType: "mentor"})
	require.NoError(t, err)
	assert.Equal(t, "fox", saved.Character)
	assert.Empty(t, saved.CompanionType)
	assert.Equal(t, companion.ModeBuddy, svc.ActiveCompanionMode(ctx, "U1"))

	_, err = svc.SaveSelection(ctx, "U1", &entity.CompanionSelection{Kind: entity.SelectionKindCompanion, CompanionType: "fitness_trainer", Character: "fox"})
	require.NoError(t, err)
	assert.Equal(t, companion.ModeFitnessTrainer, svc.ActiveCompanionMode(ctx, "U1"))

	remote, err := factory.NewUnitOfWork(ctx).CompanionSelectionRepository().FindByUserId(ctx, "U1")
	require.NoError(t, err)
	require.NotNil(t, remote)
	assert.Equal(t, entity.SelectionKindCompanion, remote.Kind)
	assert.Empty(t, remote.Character)
}

func TestCompanionService_ReadsDatabaseWhenLocalIsEmpty(t *testing.T) {
	ctx := context.Background()
	factory := unitofwork.NewRepositoryFactory(testdb.Open(t))
	require.NoError(t, factory.NewUnitOfWork(ctx).CompanionSelectionRepository().Upsert(ctx,
		&entity.CompanionSelection{UserId: "U1", Kind: entity.SelectionKindCompanion, CompanionType: "smart_router"}))

	svc := NewCompanionService(factory, newPrefs(), logger.NewNopLogger())
	selection, err := svc.GetSelection(ctx, "U1")
	require.NoError(t, err)
	require.NotNil(t, selection)
	assert.Equal(t, "smart_router", selection.CompanionType)
	assert.Equal(t, companion.ModeSmartRouter, svc.ActiveCompanionMode(ctx, "U1"))
}

func TestCompanionService_LocalOnly(t *testing.T) {
	ctx := context.Background()
	svc := NewCompanionService(nil, newPrefs(), logger.NewNopLogger())

	_, err := svc.SaveSelection(ctx, "U1", &entity.CompanionSelection{Kind: entity.SelectionKindCompanion, CompanionType: "buddy"})
	require.NoError(t, err)

	selection, err := svc.GetSelection(ctx, "U1")
	require.NoError(t, err)
	require.NotNil(t, selection)
	assert.Equal(t, "U1", selection.UserId)
}
