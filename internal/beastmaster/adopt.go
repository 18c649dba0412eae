package beastmaster

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/beastmaster/internal/model"
)

// adopt creates a tamed pet of entry for p and makes it the active pet.
func (m *Menu) adopt(p Player, npc Creature, entry uint32) {
	if !m.allowed(p, npc) {
		return
	}

	if m.host.ActivePet(p) != nil {
		m.host.Whisper(npc, p, msgAlreadyHasPet)
		m.host.CloseMenu(p)
		return
	}

	pet := m.host.CreateTamedPet(p, entry, SpellCallPet)
	if pet == nil {
		slog.Warn("beastmaster: tamed pet creation failed",
			"player", p.Name(),
			"entry", entry)
		return
	}

	level := p.Level()

	pet.SetHappiness(model.MaxHappiness)
	pet.SetCreatedBy(p.ObjectID())
	pet.SetFactionID(p.FactionID())
	pet.SetLevel(level)

	// Enter the map one level down so the client plays the level-up visual.
	pet.SetLevel(level - 1)
	m.host.AddToMap(pet)
	pet.SetLevel(level)

	m.host.InitTalentForLevel(pet)
	if !m.host.InitStatsForLevel(pet, level) {
		slog.Debug("beastmaster: no level stats for pet, recomputing",
			"entry", entry,
			"level", level)
		m.host.UpdateAllStats(pet)
	}

	pet.SetScale(float32(m.settings.PetScale))

	m.host.SetMinion(p, pet)

	pet.SetPetNumber(m.host.GeneratePetNumber())
	m.host.PetSpellInitialize(p)
	m.host.InitLevelupSpellsForLevel(pet)
	m.host.SavePetAsCurrent(p, pet)

	// Call Pet stands in for the whole kit: if the player has it, they
	// already learned the rest.
	if p.ClassID() != PetHandlingClass && !p.HasSpell(SpellCallPet) {
		for _, spellID := range CompanionSpells {
			m.host.LearnSpell(p, spellID)
		}
	}

	slog.Info("beastmaster: pet adopted",
		"player", p.Name(),
		"entry", entry,
		"pet", pet.Name(),
		"level", level)

	m.host.Whisper(npc, p, fmt.Sprintf(msgAdopted, p.Name(), pet.Name()))
	m.host.CloseMenu(p)
	m.host.Emote(npc, model.EmoteOneshotPoint)
}
