package beastmaster

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/udisondev/beastmaster/internal/game/gossip"
	"github.com/udisondev/beastmaster/internal/model"
)

// fakeHost records every host call in order.
type fakeHost struct {
	calls []string
	items []gossip.Item

	pets        map[uint32]*model.Pet
	createFails bool
	noStats     bool
	nextNumber  uint32
	nextObject  uint32
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		pets:       make(map[uint32]*model.Pet),
		nextNumber: 100,
		nextObject: 0x40000000,
	}
}

func (h *fakeHost) record(format string, args ...any) {
	h.calls = append(h.calls, fmt.Sprintf(format, args...))
}

func (h *fakeHost) ClearMenu(Player) {
	h.items = nil
	h.record("clear")
}

func (h *fakeHost) AddMenuItem(_ Player, icon gossip.Icon, text string, action gossip.Action) {
	h.items = append(h.items, gossip.Item{Icon: icon, Text: text, Action: action})
	h.record("item %s", text)
}

func (h *fakeHost) SendMenu(_ Player, _ Creature, textID uint32) { h.record("send %d", textID) }
func (h *fakeHost) CloseMenu(Player)                             { h.record("close") }
func (h *fakeHost) ShowStable(Player, Creature)                  { h.record("stable") }
func (h *fakeHost) ShowVendor(Player, Creature)                  { h.record("vendor") }

func (h *fakeHost) Whisper(_ Creature, _ Player, text string) { h.record("whisper %s", text) }
func (h *fakeHost) Emote(_ Creature, e model.Emote)           { h.record("emote %s", e) }
func (h *fakeHost) PlayDirectSound(_ Player, id uint32)       { h.record("sound %d", id) }
func (h *fakeHost) SendSysMessage(_ Player, text string)      { h.record("sys %s", text) }

func (h *fakeHost) LearnSpell(p Player, id int32) {
	p.(*model.Player).AddSpell(id)
	h.record("learn %d", id)
}

func (h *fakeHost) AddSpell(p Player, id int32) {
	p.(*model.Player).AddSpell(id)
	h.record("add %d", id)
}

func (h *fakeHost) RemoveSpell(p Player, id int32) {
	p.(*model.Player).RemoveSpell(id)
	h.record("remove %d", id)
}

func (h *fakeHost) ActivePet(p Player) Pet {
	pet, ok := h.pets[p.ObjectID()]
	if !ok {
		return nil
	}
	return pet
}

func (h *fakeHost) CreateTamedPet(p Player, entry uint32, spellID int32) Pet {
	h.record("create %d %d", entry, spellID)
	if h.createFails {
		return nil
	}
	h.nextObject++
	pet := model.NewPet(h.nextObject, p.ObjectID(), entry, "Wolf", model.PetTypeHunter, 1)
	pet.SetCreatedBySpell(spellID)
	return pet
}

func (h *fakeHost) AddToMap(pet Pet)           { h.record("addtomap level=%d", pet.Level()) }
func (h *fakeHost) InitTalentForLevel(pet Pet) { h.record("talents level=%d", pet.Level()) }

func (h *fakeHost) InitStatsForLevel(_ Pet, level int32) bool {
	h.record("stats %d", level)
	return !h.noStats
}

func (h *fakeHost) UpdateAllStats(Pet) { h.record("updatestats") }

func (h *fakeHost) SetMinion(p Player, pet Pet) {
	h.pets[p.ObjectID()] = pet.(*model.Pet)
	h.record("minion")
}

func (h *fakeHost) GeneratePetNumber() uint32 {
	h.nextNumber++
	h.record("petnumber %d", h.nextNumber)
	return h.nextNumber
}

func (h *fakeHost) PetSpellInitialize(Player)        { h.record("petbar") }
func (h *fakeHost) InitLevelupSpellsForLevel(Pet)    { h.record("levelupspells") }
func (h *fakeHost) SavePetAsCurrent(_ Player, _ Pet) { h.record("save") }

func (h *fakeHost) itemTexts() []string {
	texts := make([]string, len(h.items))
	for i, it := range h.items {
		texts[i] = it.Text
	}
	return texts
}

func (h *fakeHost) reset() {
	h.calls = nil
	h.items = nil
}

func newPlayer(t *testing.T, class model.ClassID, level int32) *model.Player {
	t.Helper()
	p, err := model.NewPlayer(0x10000001, 1, "Rexxar", class, level, 1)
	require.NoError(t, err)
	return p
}

func newNpc() *model.Npc {
	return model.NewNpc(0x20000001, NpcEntry, "White Fang", "BeastMaster", 35, model.Location{})
}

var _ Host = (*fakeHost)(nil)
