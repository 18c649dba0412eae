package beastmaster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type mapConf map[string]string

func (m mapConf) GetStringDefault(key, def string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}

func (m mapConf) GetBoolDefault(key string, def bool) bool {
	v, ok := m[key]
	if !ok {
		return def
	}
	return v == "1"
}

func (m mapConf) GetIntDefault(key string, def int) int {
	switch m[key] {
	case "":
		return def
	case "2":
		return 2
	default:
		return def
	}
}

func TestLoadSettings_Defaults(t *testing.T) {
	s := LoadSettings(mapConf{})

	assert.True(t, s.Announce)
	assert.True(t, s.HunterOnly)
	assert.True(t, s.ExoticNoSpec)
	assert.False(t, s.KeepPetHappy)
	assert.Equal(t, 1, s.PetScale)
	assert.Empty(t, s.PetsPage1)
	assert.Empty(t, s.RarePetsPage1)
}

func TestLoadSettings_Values(t *testing.T) {
	s := LoadSettings(mapConf{
		KeyAnnounce:        "0",
		KeyHunterOnly:      "0",
		KeyExoticNoSpec:    "0",
		KeyKeepPetHappy:    "1",
		KeyPetScale:        "2",
		KeyPetsPage1:       "Wolf,1",
		KeyPetsPage2:       "Bear,2",
		KeyPetsPage3:       "Cat,3",
		KeyExoticPetsPage1: "Chimaera,4",
		KeyRarePetsPage1:   "Loque'nahak,32517",
	})

	assert.False(t, s.Announce)
	assert.False(t, s.HunterOnly)
	assert.False(t, s.ExoticNoSpec)
	assert.True(t, s.KeepPetHappy)
	assert.Equal(t, 2, s.PetScale)

	assert.Equal(t, Catalog{"Wolf": 1}, s.Catalog(PagePets1))
	assert.Equal(t, Catalog{"Bear": 2}, s.Catalog(PagePets2))
	assert.Equal(t, Catalog{"Cat": 3}, s.Catalog(PagePets3))
	assert.Equal(t, Catalog{"Chimaera": 4}, s.Catalog(PageExotic))
	assert.Equal(t, Catalog{"Loque'nahak": 32517}, s.Catalog(PageRare))
	assert.Nil(t, s.Catalog(PageRoot))
}
