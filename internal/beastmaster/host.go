package beastmaster

import (
	"github.com/udisondev/beastmaster/internal/game/gossip"
	"github.com/udisondev/beastmaster/internal/model"
)

// Player is the read view of a player the module decides on.
type Player interface {
	ObjectID() uint32
	Name() string
	ClassID() model.ClassID
	Level() int32
	FactionID() uint32
	HasSpell(spellID int32) bool
	HasTalent(spellID int32, spec uint8) bool
	ActiveSpec() uint8
}

// Creature is the NPC the player is talking to.
type Creature interface {
	ObjectID() uint32
	Name() string
}

// Pet is a host-owned companion.
type Pet interface {
	Name() string
	PetType() model.PetType
	Level() int32
	Happiness() int32
	SetHappiness(v int32)
	SetCreatedBy(objectID uint32)
	SetFactionID(id uint32)
	SetLevel(level int32)
	SetScale(scale float32)
	SetPetNumber(n uint32)
}

// Dialog is the host gossip menu surface.
type Dialog interface {
	ClearMenu(p Player)
	AddMenuItem(p Player, icon gossip.Icon, text string, action gossip.Action)
	SendMenu(p Player, npc Creature, textID uint32)
	CloseMenu(p Player)
	ShowStable(p Player, npc Creature)
	ShowVendor(p Player, npc Creature)
}

// Chat is the host speech, emote and sound surface.
type Chat interface {
	Whisper(npc Creature, p Player, text string)
	Emote(npc Creature, emote model.Emote)
	PlayDirectSound(p Player, soundID uint32)
	SendSysMessage(p Player, text string)
}

// Spellbook grants and revokes player spells.
// LearnSpell notifies the player, AddSpell is silent.
type Spellbook interface {
	LearnSpell(p Player, spellID int32)
	AddSpell(p Player, spellID int32)
	RemoveSpell(p Player, spellID int32)
}

// PetHost creates, initializes and persists companions.
type PetHost interface {
	// ActivePet returns nil when the player has no pet.
	ActivePet(p Player) Pet
	// CreateTamedPet returns nil when the template cannot be tamed.
	CreateTamedPet(p Player, entry uint32, spellID int32) Pet
	AddToMap(pet Pet)
	InitTalentForLevel(pet Pet)
	InitStatsForLevel(pet Pet, level int32) bool
	UpdateAllStats(pet Pet)
	SetMinion(p Player, pet Pet)
	GeneratePetNumber() uint32
	PetSpellInitialize(p Player)
	InitLevelupSpellsForLevel(pet Pet)
	SavePetAsCurrent(p Player, pet Pet)
}

// Host is everything the module needs from the world server.
type Host interface {
	Dialog
	Chat
	Spellbook
	PetHost
}
