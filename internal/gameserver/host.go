package gameserver

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/udisondev/beastmaster/internal/beastmaster"
	"github.com/udisondev/beastmaster/internal/data"
	"github.com/udisondev/beastmaster/internal/db"
	"github.com/udisondev/beastmaster/internal/game/gossip"
	"github.com/udisondev/beastmaster/internal/html"
	"github.com/udisondev/beastmaster/internal/model"
)

var _ beastmaster.Host = (*Engine)(nil)

// session resolves a script-facing player to its online session.
func (e *Engine) session(p beastmaster.Player) *Session {
	s := e.sessions.ByObjectID(p.ObjectID())
	if s == nil {
		slog.Warn("script addressed offline player", "player", p.Name(), "objectID", p.ObjectID())
	}
	return s
}

func asPet(pet beastmaster.Pet) *model.Pet {
	mp, ok := pet.(*model.Pet)
	if !ok {
		panic(fmt.Sprintf("gameserver: foreign pet type %T", pet))
	}
	return mp
}

func dialogData(p beastmaster.Player, npc beastmaster.Creature) html.DialogData {
	return html.DialogData{
		"npcname":  npc.Name(),
		"name":     p.Name(),
		"objectId": npc.ObjectID(),
	}
}

// --- Dialog ---

func (e *Engine) ClearMenu(p beastmaster.Player) {
	if s := e.session(p); s != nil {
		s.menu.Clear()
	}
}

func (e *Engine) AddMenuItem(p beastmaster.Player, icon gossip.Icon, text string, action gossip.Action) {
	if s := e.session(p); s != nil {
		s.menu.AddItem(icon, text, action)
	}
}

func (e *Engine) SendMenu(p beastmaster.Player, npc beastmaster.Creature, textID uint32) {
	s := e.session(p)
	if s == nil {
		return
	}

	menuID := s.menu.Send(textID, npc.ObjectID())
	body, err := e.dialogs.RenderMenu(npc.ObjectID(), menuID, textID, s.menu.Items(), dialogData(p, npc))
	if err != nil {
		slog.Error("rendering gossip menu",
			"player", p.Name(),
			"textID", textID,
			"error", err)
		return
	}

	lines := make([]string, 0, len(s.menu.Items()))
	for i, it := range s.menu.Items() {
		lines = append(lines, strconv.Itoa(i)+") "+it.Text)
	}
	e.sink.Send(Message{Kind: MsgGossip, To: p.Name(), From: npc.Name(), Text: body, Lines: lines})
}

func (e *Engine) CloseMenu(p beastmaster.Player) {
	if s := e.session(p); s != nil {
		s.menu.Close()
	}
	e.sink.Send(Message{Kind: MsgClose, To: p.Name()})
}

func (e *Engine) ShowStable(p beastmaster.Player, npc beastmaster.Creature) {
	s := e.session(p)
	if s == nil {
		return
	}

	lines := make([]string, 0, int(db.PetSlotStableMax))
	for _, row := range s.stabled {
		lines = append(lines, fmt.Sprintf("slot %d: %s (level %d)", row.Slot, row.Name, row.Level))
	}
	e.sink.Send(Message{
		Kind:  MsgStable,
		To:    p.Name(),
		From:  npc.Name(),
		Text:  fmt.Sprintf("%d/%d slots used", len(s.stabled), db.PetSlotStableMax),
		Lines: lines,
	})
}

func (e *Engine) ShowVendor(p beastmaster.Player, npc beastmaster.Creature) {
	var entry uint32
	if n, ok := npc.(*model.Npc); ok {
		entry = n.Entry()
	}

	items := data.VendorItems(entry)
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, fmt.Sprintf("%d %s (level %d+) %dc", it.ItemID, it.Name, it.MinLevel, it.Price))
	}
	e.sink.Send(Message{Kind: MsgVendor, To: p.Name(), From: npc.Name(), Lines: lines})
}

// --- Chat ---

func (e *Engine) Whisper(npc beastmaster.Creature, p beastmaster.Player, text string) {
	e.sink.Send(Message{Kind: MsgWhisper, To: p.Name(), From: npc.Name(), Text: text})
}

func (e *Engine) Emote(npc beastmaster.Creature, emote model.Emote) {
	e.sink.Send(Message{Kind: MsgEmote, From: npc.Name(), Text: emote.String()})
}

func (e *Engine) PlayDirectSound(p beastmaster.Player, soundID uint32) {
	e.sink.Send(Message{Kind: MsgSound, To: p.Name(), Text: strconv.FormatUint(uint64(soundID), 10)})
}

func (e *Engine) SendSysMessage(p beastmaster.Player, text string) {
	e.sink.Send(Message{Kind: MsgSystem, To: p.Name(), Text: text})
}

// --- Spellbook ---

func (e *Engine) LearnSpell(p beastmaster.Player, spellID int32) {
	if e.addSpell(p, spellID) {
		e.sink.Send(Message{Kind: MsgSpellLearned, To: p.Name(), Text: strconv.Itoa(int(spellID))})
	}
}

func (e *Engine) AddSpell(p beastmaster.Player, spellID int32) {
	e.addSpell(p, spellID)
}

func (e *Engine) addSpell(p beastmaster.Player, spellID int32) bool {
	s := e.session(p)
	if s == nil || !s.player.AddSpell(spellID) {
		return false
	}

	charID := s.player.CharacterID()
	e.enqueueSave("spell add", func(ctx context.Context) error {
		return e.stores.Spells.Add(ctx, charID, spellID)
	})
	return true
}

func (e *Engine) RemoveSpell(p beastmaster.Player, spellID int32) {
	s := e.session(p)
	if s == nil || !s.player.RemoveSpell(spellID) {
		return
	}

	charID := s.player.CharacterID()
	e.enqueueSave("spell remove", func(ctx context.Context) error {
		return e.stores.Spells.Delete(ctx, charID, spellID)
	})
	e.sink.Send(Message{Kind: MsgSpellRemoved, To: p.Name(), Text: strconv.Itoa(int(spellID))})
}

// --- PetHost ---

func (e *Engine) ActivePet(p beastmaster.Player) beastmaster.Pet {
	s := e.session(p)
	if s == nil {
		return nil
	}
	if pet := s.player.Pet(); pet != nil {
		return pet
	}
	return nil
}

func (e *Engine) CreateTamedPet(p beastmaster.Player, entry uint32, spellID int32) beastmaster.Pet {
	tmpl := data.GetCreatureTemplate(entry)
	if tmpl == nil || !tmpl.IsTameable() {
		slog.Warn("cannot tame creature",
			"player", p.Name(),
			"entry", entry,
			"known", tmpl != nil)
		return nil
	}

	pet := model.NewPet(e.ids.NextPetID(), p.ObjectID(), entry, tmpl.Name, model.PetTypeHunter, p.Level())
	pet.SetCreatedBySpell(spellID)
	return pet
}

func (e *Engine) AddToMap(pet beastmaster.Pet) {
	if err := e.world.AddPet(asPet(pet)); err != nil {
		slog.Error("adding pet to world",
			"pet", pet.Name(),
			"error", err)
	}
}

func (e *Engine) InitTalentForLevel(pet beastmaster.Pet) {
	mp := asPet(pet)
	mp.SetTalentPoints(data.TalentPointsForLevel(mp.Level()))
}

func (e *Engine) InitStatsForLevel(pet beastmaster.Pet, level int32) bool {
	mp := asPet(pet)
	stats, ok := data.PetStatsForLevel(data.GetCreatureTemplate(mp.Entry()), level)
	if !ok {
		return false
	}
	mp.SetStats(stats)
	return true
}

func (e *Engine) UpdateAllStats(pet beastmaster.Pet) {
	mp := asPet(pet)
	mp.SetStats(data.BaseStats(data.GetCreatureTemplate(mp.Entry()), mp.Level()))
}

func (e *Engine) SetMinion(p beastmaster.Player, pet beastmaster.Pet) {
	if s := e.session(p); s != nil {
		s.player.SetPet(asPet(pet))
	}
}

func (e *Engine) GeneratePetNumber() uint32 {
	return e.petNumbers.Next()
}

func (e *Engine) PetSpellInitialize(p beastmaster.Player) {
	s := e.session(p)
	if s == nil {
		return
	}
	pet := s.player.Pet()
	if pet == nil {
		return
	}

	lines := make([]string, 0, len(pet.Spells()))
	for _, id := range pet.Spells() {
		lines = append(lines, strconv.Itoa(int(id)))
	}
	e.sink.Send(Message{
		Kind:  MsgPetBar,
		To:    p.Name(),
		Text:  fmt.Sprintf("%s level %d", pet.Name(), pet.Level()),
		Lines: lines,
	})
}

func (e *Engine) InitLevelupSpellsForLevel(pet beastmaster.Pet) {
	mp := asPet(pet)
	tmpl := data.GetCreatureTemplate(mp.Entry())
	if tmpl == nil {
		return
	}
	for _, id := range data.LevelupSpells(tmpl.Family, mp.Level()) {
		mp.LearnSpell(id)
	}
}

func (e *Engine) SavePetAsCurrent(p beastmaster.Player, pet beastmaster.Pet) {
	s := e.session(p)
	if s == nil {
		return
	}
	e.savePet(s.player, asPet(pet), db.PetSlotCurrent)
}

// savePet snapshots pet on the loop and writes it on the save worker.
func (e *Engine) savePet(owner *model.Player, pet *model.Pet, slot uint8) {
	row := petRow(owner, pet, slot)
	e.enqueueSave("pet", func(ctx context.Context) error {
		return e.stores.Pets.Save(ctx, row)
	})
}

func petRow(owner *model.Player, pet *model.Pet, slot uint8) db.PetRow {
	return db.PetRow{
		PetNumber:      pet.PetNumber(),
		OwnerID:        owner.CharacterID(),
		Entry:          pet.Entry(),
		Name:           pet.Name(),
		PetType:        pet.PetType(),
		Level:          pet.Level(),
		Happiness:      pet.Happiness(),
		Scale:          pet.Scale(),
		CreatedBySpell: pet.CreatedBySpell(),
		Slot:           slot,
	}
}
