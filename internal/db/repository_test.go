package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/beastmaster/internal/model"
)

func TestCharacterRepository_LoadOrCreate(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewCharacterRepository(pool)
	ctx := context.Background()

	row, created, err := repo.LoadOrCreate(ctx, "Rexxar", model.ClassHunter, 20, 2)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "Rexxar", row.Name)
	assert.Equal(t, model.ClassHunter, row.ClassID)
	assert.Equal(t, int32(20), row.Level)
	assert.Equal(t, uint32(2), row.FactionID)

	// Second login keeps the stored class and level.
	again, created, err := repo.LoadOrCreate(ctx, "Rexxar", model.ClassMage, 70, 2)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, row.ID, again.ID)
	assert.Equal(t, model.ClassHunter, again.ClassID)

	require.NoError(t, repo.UpdateLevel(ctx, row.ID, 42))
	loaded, err := repo.LoadByName(ctx, "Rexxar")
	require.NoError(t, err)
	assert.Equal(t, int32(42), loaded.Level)

	_, err = repo.LoadByName(ctx, "Nobody")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.UpdateLevel(ctx, row.ID+1000, 10), ErrNotFound)
}

func TestSpellRepository(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewSpellRepository(pool)
	ctx := context.Background()
	char := mustCharacter(t, pool, "Rexxar")

	require.NoError(t, repo.Add(ctx, char.ID, 883))
	require.NoError(t, repo.Add(ctx, char.ID, 53270))
	require.NoError(t, repo.Add(ctx, char.ID, 883))

	spells, err := repo.LoadByCharacterID(ctx, char.ID)
	require.NoError(t, err)
	assert.Equal(t, []int32{883, 53270}, spells)

	require.NoError(t, repo.Delete(ctx, char.ID, 883))
	spells, err = repo.LoadByCharacterID(ctx, char.ID)
	require.NoError(t, err)
	assert.Equal(t, []int32{53270}, spells)

	require.NoError(t, repo.AddTalent(ctx, char.ID, 1, 53270))
	talents, err := repo.LoadTalents(ctx, char.ID)
	require.NoError(t, err)
	assert.Equal(t, map[uint8][]int32{1: {53270}}, talents)
}

func TestPetRepository(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewPetRepository(pool)
	ctx := context.Background()
	char := mustCharacter(t, pool, "Rexxar")

	n, err := repo.MaxPetNumber(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = repo.LoadCurrent(ctx, char.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	current := petRow(char.ID, 7, PetSlotCurrent)
	require.NoError(t, repo.Save(ctx, current))

	got, err := repo.LoadCurrent(ctx, char.ID)
	require.NoError(t, err)
	assert.Equal(t, current, got)

	// Upsert by pet number.
	current.Level = 21
	require.NoError(t, repo.Save(ctx, current))
	got, err = repo.LoadCurrent(ctx, char.ID)
	require.NoError(t, err)
	assert.Equal(t, int32(21), got.Level)

	require.NoError(t, repo.SetSlot(ctx, 7, 2))
	_, err = repo.LoadCurrent(ctx, char.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	stabled, err := repo.LoadStabled(ctx, char.ID)
	require.NoError(t, err)
	require.Len(t, stabled, 1)
	assert.Equal(t, uint8(2), stabled[0].Slot)

	require.NoError(t, repo.Save(ctx, petRow(char.ID, 9, PetSlotCurrent)))
	n, err = repo.MaxPetNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint32(9), n)

	require.NoError(t, repo.Delete(ctx, 9))
	_, err = repo.LoadCurrent(ctx, char.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.SetSlot(ctx, 999, 1), ErrNotFound)
}

func TestPlayerPersistenceService(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	char := mustCharacter(t, pool, "Rexxar")

	spells := NewSpellRepository(pool)
	pets := NewPetRepository(pool)
	svc := NewPlayerPersistenceService(pool, spells, pets)

	p, err := model.NewPlayer(0x10000001, char.ID, char.Name, char.ClassID, 30, char.FactionID)
	require.NoError(t, err)
	p.AddSpell(883)
	p.AddSpell(982)
	require.NoError(t, svc.SavePlayer(ctx, p))

	require.NoError(t, pets.Save(ctx, petRow(char.ID, 3, PetSlotCurrent)))

	data, err := svc.LoadPlayerData(ctx, char.ID)
	require.NoError(t, err)
	assert.Equal(t, []int32{883, 982}, data.Spells)
	require.NotNil(t, data.Pet)
	assert.Equal(t, uint32(3), data.Pet.PetNumber)

	loaded, err := NewCharacterRepository(pool).LoadByName(ctx, char.Name)
	require.NoError(t, err)
	assert.Equal(t, int32(30), loaded.Level)

	// Saving an empty spellbook clears it.
	p.RemoveSpell(883)
	p.RemoveSpell(982)
	require.NoError(t, svc.SavePlayer(ctx, p))
	data, err = svc.LoadPlayerData(ctx, char.ID)
	require.NoError(t, err)
	assert.Empty(t, data.Spells)
}
