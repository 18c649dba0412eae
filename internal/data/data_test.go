package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/beastmaster/internal/model"
)

func TestLoadAll(t *testing.T) {
	require.NoError(t, LoadAll())

	wolf := GetCreatureTemplate(69)
	require.NotNil(t, wolf)
	assert.Equal(t, "Timber Wolf", wolf.Name)
	assert.True(t, wolf.IsTameable())

	npc := GetCreatureTemplate(601026)
	require.NotNil(t, npc)
	assert.False(t, npc.IsTameable())

	assert.Nil(t, GetCreatureTemplate(1))

	// Every tameable creature belongs to a known family.
	for entry, c := range CreatureTable {
		if c.IsTameable() {
			assert.NotNil(t, GetPetFamily(c.Family), "creature %d family %d", entry, c.Family)
		}
	}

	assert.NotEmpty(t, VendorItems(601026))
	assert.Empty(t, VendorItems(69))
}

func TestLevelupSpells(t *testing.T) {
	ClearTestTables()
	SetTestPetFamily(PetFamily{
		ID:   1,
		Name: "Wolf",
		Spells: []LevelupSpell{
			{SpellID: 100, Level: 1},
			{SpellID: 200, Level: 10},
			{SpellID: 300, Level: 30},
		},
	})

	tests := []struct {
		family uint32
		level  int32
		want   []int32
	}{
		{1, 1, []int32{100}},
		{1, 10, []int32{100, 200}},
		{1, 80, []int32{100, 200, 300}},
		{2, 80, nil},
	}
	for _, tt := range tests {
		got := LevelupSpells(tt.family, tt.level)
		assert.Equal(t, tt.want, got, "family %d level %d", tt.family, tt.level)
	}
}

func TestPetStatsForLevel(t *testing.T) {
	tmpl := &CreatureTemplate{
		Entry: 1, Family: 1, MinLevel: 10, MaxLevel: 10,
		Health: 100, HealthPerLevel: 10,
		Armor: 50, ArmorPerLevel: 5,
		MinDamage: 10, MaxDamage: 20, DamagePerLevel: 1.5,
	}

	stats, ok := PetStatsForLevel(tmpl, 20)
	require.True(t, ok)
	assert.Equal(t, model.PetStats{MaxHealth: 200, Armor: 100, MinDamage: 25, MaxDamage: 35}, stats)

	// Below template level uses base values.
	stats, ok = PetStatsForLevel(tmpl, 5)
	require.True(t, ok)
	assert.Equal(t, int32(100), stats.MaxHealth)

	_, ok = PetStatsForLevel(&CreatureTemplate{Entry: 2}, 20)
	assert.False(t, ok)

	_, ok = PetStatsForLevel(nil, 20)
	assert.False(t, ok)
}

func TestBaseStats(t *testing.T) {
	s := BaseStats(nil, 10)
	assert.Equal(t, model.PetStats{MaxHealth: 400, Armor: 200, MinDamage: 10, MaxDamage: 15}, s)

	s = BaseStats(&CreatureTemplate{Health: 7, Armor: 3, MinDamage: 1.4, MaxDamage: 2.6}, 10)
	assert.Equal(t, model.PetStats{MaxHealth: 7, Armor: 3, MinDamage: 1, MaxDamage: 3}, s)
}

func TestTalentPointsForLevel(t *testing.T) {
	tests := []struct {
		level int32
		want  int32
	}{
		{1, 0},
		{19, 0},
		{20, 1},
		{24, 2},
		{60, 11},
		{80, 16},
	}
	for _, tt := range tests {
		if got := TalentPointsForLevel(tt.level); got != tt.want {
			t.Errorf("TalentPointsForLevel(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}
