package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tracklight/wellbeing/internal/errs"
	"github.com/tracklight/wellbeing/internal/repositories/memory"
	"github.com/tracklight/wellbeing/internal/utils"
)

func TestWellBeingCreate_AssignsColorAndRemovable(t *testing.T) {
	svc := NewWellBeingService(memory.NewWellBeingRepository())
	accountID := uuid.New()

	wellBeing, err := svc.Create(context.Background(), accountID, "  Sleep  ")

	require.NoError(t, err)
	assert.Equal(t, "Sleep", wellBeing.Name, "name is trimmed")
	assert.True(t, wellBeing.Removable)
	assert.True(t, utils.ValidHexColor(wellBeing.AccentColor))
}

func TestWellBeingCreate_DuplicateCaseInsensitive(t *testing.T) {
	svc := NewWellBeingService(memory.NewWellBeingRepository())
	accountID := uuid.New()
	ctx := context.Background()

	_, err := svc.Create(ctx, accountID, "General")
	require.NoError(t, err)

	_, err = svc.Create(ctx, accountID, "general")

	require.Error(t, err)
	assert.Equal(t, errs.KindDuplicateName, errs.KindOf(err))
}

func TestWellBeingCreate_SameNameDifferentAccounts(t *testing.T) {
	svc := NewWellBeingService(memory.NewWellBeingRepository())
	ctx := context.Background()

	_, err := svc.Create(ctx, uuid.New(), "Sleep")
	require.NoError(t, err)

	// Uniqueness is per account.
	_, err = svc.Create(ctx, uuid.New(), "Sleep")
	assert.NoError(t, err)
}

func TestWellBeingRemove_NotRemovable(t *testing.T) {
	repo := memory.NewWellBeingRepository()
	svc := NewWellBeingService(repo)
	accountID := uuid.New()
	ctx := context.Background()

	seeded, err := svc.SeedDefaults(ctx, accountID)
	require.NoError(t, err)
	general := seeded[0]
	require.False(t, general.Removable)

	err = svc.Remove(ctx, accountID, general.ID)

	require.Error(t, err)
	assert.Equal(t, errs.KindNotRemovable, errs.KindOf(err))
}

func TestWellBeingRemove_OwnedRemovable(t *testing.T) {
	svc := NewWellBeingService(memory.NewWellBeingRepository())
	accountID := uuid.New()
	ctx := context.Background()

	wellBeing, err := svc.Create(ctx, accountID, "Sleep")
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, accountID, wellBeing.ID))

	remaining, err := svc.List(ctx, accountID)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestWellBeingRemove_CrossAccountLooksAbsent(t *testing.T) {
	svc := NewWellBeingService(memory.NewWellBeingRepository())
	ctx := context.Background()

	owner := uuid.New()
	wellBeing, err := svc.Create(ctx, owner, "Sleep")
	require.NoError(t, err)

	err = svc.Remove(ctx, uuid.New(), wellBeing.ID)

	require.Error(t, err)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))

	// Still there for the owner.
	list, err := svc.List(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestWellBeingList_ScopedToAccount(t *testing.T) {
	svc := NewWellBeingService(memory.NewWellBeingRepository())
	ctx := context.Background()
	a, b := uuid.New(), uuid.New()

	_, err := svc.Create(ctx, a, "Sleep")
	require.NoError(t, err)
	_, err = svc.Create(ctx, b, "Focus")
	require.NoError(t, err)

	listA, err := svc.List(ctx, a)
	require.NoError(t, err)
	require.Len(t, listA, 1)
	assert.Equal(t, "Sleep", listA[0].Name)
}

func TestSeedDefaults_FixedPalette(t *testing.T) {
	svc := NewWellBeingService(memory.NewWellBeingRepository())

	seeded, err := svc.SeedDefaults(context.Background(), uuid.New())

	require.NoError(t, err)
	require.Len(t, seeded, 5)
	assert.Equal(t, "#3F48CC", seeded[0].AccentColor)
	assert.Equal(t, "General", seeded[0].Name)
	assert.False(t, seeded[0].Removable)
	for _, wb := range seeded[1:] {
		assert.True(t, wb.Removable)
	}
}
