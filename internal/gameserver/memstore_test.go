package gameserver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/beastmaster/internal/db"
	"github.com/udisondev/beastmaster/internal/model"
)

func TestMemoryStores_Characters(t *testing.T) {
	ctx := context.Background()
	s := MemoryStores()

	row, created, err := s.Characters.LoadOrCreate(ctx, "Rexxar", model.ClassHunter, 60, 1)
	require.NoError(t, err)
	assert.True(t, created)

	again, created, err := s.Characters.LoadOrCreate(ctx, "REXXAR", model.ClassMage, 1, 2)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, row, again)

	require.NoError(t, s.Characters.UpdateLevel(ctx, row.ID, 70))
	assert.ErrorIs(t, s.Characters.UpdateLevel(ctx, 999, 70), db.ErrNotFound)
}

func TestMemoryStores_PetSlots(t *testing.T) {
	ctx := context.Background()
	s := MemoryStores()

	require.NoError(t, s.Pets.Save(ctx, db.PetRow{PetNumber: 1, OwnerID: 7, Name: "Wolf", Slot: 0}))
	require.NoError(t, s.Pets.Save(ctx, db.PetRow{PetNumber: 2, OwnerID: 7, Name: "Bear", Slot: 3}))
	require.NoError(t, s.Pets.Save(ctx, db.PetRow{PetNumber: 3, OwnerID: 7, Name: "Cat", Slot: 1}))

	assert.Error(t, s.Pets.Save(ctx, db.PetRow{PetNumber: 4, OwnerID: 7, Slot: 3}), "slot taken")
	require.NoError(t, s.Pets.Save(ctx, db.PetRow{PetNumber: 5, OwnerID: 8, Slot: 3}), "other owner")

	cur, err := s.Pets.LoadCurrent(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "Wolf", cur.Name)

	stabled, err := s.Pets.LoadStabled(ctx, 7)
	require.NoError(t, err)
	require.Len(t, stabled, 2)
	assert.Equal(t, "Cat", stabled[0].Name)
	assert.Equal(t, "Bear", stabled[1].Name)

	require.NoError(t, s.Pets.Delete(ctx, 1))
	require.NoError(t, s.Pets.SetSlot(ctx, 3, db.PetSlotCurrent))
	cur, err = s.Pets.LoadCurrent(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "Cat", cur.Name)

	assert.ErrorIs(t, s.Pets.SetSlot(ctx, 99, 1), db.ErrNotFound)

	highest, err := s.Pets.MaxPetNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint32(5), highest)
}

func TestMemoryStores_SpellsAndTalents(t *testing.T) {
	ctx := context.Background()
	s := MemoryStores()
	row, _, err := s.Characters.LoadOrCreate(ctx, "Rexxar", model.ClassHunter, 60, 1)
	require.NoError(t, err)

	require.NoError(t, s.Spells.Add(ctx, row.ID, 982))
	require.NoError(t, s.Spells.Add(ctx, row.ID, 883))
	require.NoError(t, s.Spells.Delete(ctx, row.ID, 982))
	require.NoError(t, s.Spells.AddTalent(ctx, row.ID, 1, 53270))
	require.NoError(t, s.Spells.AddTalent(ctx, row.ID, 1, 53270))

	pdata, err := s.Players.LoadPlayerData(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, []int32{883}, pdata.Spells)
	assert.Equal(t, map[uint8][]int32{1: {53270}}, pdata.Talents)
	assert.Nil(t, pdata.Pet)

	p, err := model.NewPlayer(1, row.ID, "Rexxar", model.ClassHunter, 61, 1)
	require.NoError(t, err)
	p.AddSpell(1462)
	require.NoError(t, s.Players.SavePlayer(ctx, p))

	pdata, err = s.Players.LoadPlayerData(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, []int32{1462}, pdata.Spells)
}
