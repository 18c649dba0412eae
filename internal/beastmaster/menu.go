package beastmaster

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/beastmaster/internal/game/gossip"
	"github.com/udisondev/beastmaster/internal/model"
)

// Menu drives the beastmaster dialog. It keeps no per-player state:
// every call is decided from the player, the settings and the action.
type Menu struct {
	host     Host
	settings *Settings
}

// NewMenu creates a menu controller over host with fixed settings.
func NewMenu(host Host, settings *Settings) *Menu {
	return &Menu{host: host, settings: settings}
}

// Hello handles a player approaching the NPC. Returns false when the
// player is turned away and no menu is shown.
func (m *Menu) Hello(p Player, npc Creature) bool {
	m.host.Emote(npc, model.EmoteOneshotRoar)
	m.host.ClearMenu(p)

	if !m.allowed(p, npc) {
		return false
	}
	if p.Level() < MinLevel {
		slog.Debug("beastmaster: player under level",
			"player", p.Name(),
			"level", p.Level())
		m.reject(p, npc, msgUnderLevel)
		return false
	}

	m.addRootItems(p)
	m.host.SendMenu(p, npc, GreetingTextID)

	m.host.PlayDirectSound(p, HowlSound)
	m.host.Emote(npc, model.EmoteOneshotRoar)
	return true
}

// Select handles a picked menu item.
func (m *Menu) Select(p Player, npc Creature, action Action) bool {
	m.host.ClearMenu(p)

	slog.Debug("beastmaster: menu select",
		"player", p.Name(),
		"action", action.String(),
		"code", action.Code())

	switch action.Kind {
	case ActionNavigate:
		m.navigate(p, npc, action.Page)
	case ActionSelectPet:
		m.adopt(p, npc, action.Entry)
	case ActionStable:
		m.host.ShowStable(p, npc)
	case ActionVendor:
		m.host.ShowVendor(p, npc)
	default:
		slog.Warn("beastmaster: unknown action",
			"player", p.Name(),
			"action", action.String())
		m.host.CloseMenu(p)
	}
	return true
}

func (m *Menu) navigate(p Player, npc Creature, page Page) {
	switch page {
	case PageRoot:
		m.addRootItems(p)

	case PagePets1:
		m.addBack(p)
		m.host.AddMenuItem(p, gossip.IconInteract1, "Next..", Navigate(PagePets2))
		m.addCatalog(p, m.settings.PetsPage1)

	case PagePets2:
		m.addBack(p)
		m.host.AddMenuItem(p, gossip.IconInteract1, "Previous..", Navigate(PagePets1))
		m.host.AddMenuItem(p, gossip.IconInteract1, "Next..", Navigate(PagePets3))
		m.addCatalog(p, m.settings.PetsPage2)

	case PagePets3:
		m.addBack(p)
		m.host.AddMenuItem(p, gossip.IconInteract1, "Previous..", Navigate(PagePets2))
		m.addCatalog(p, m.settings.PetsPage3)

	case PageExotic:
		// Spirit beasts need Beast Mastery to stay tamed.
		if !canTameExotic(p) {
			m.host.AddSpell(p, SpellBeastMastery)
			m.host.Whisper(npc, p, fmt.Sprintf(msgTaughtExotic, p.Name()))
			slog.Info("beastmaster: taught beast mastery", "player", p.Name())
		}
		m.addBack(p)
		m.addCatalog(p, m.settings.ExoticPetsPage1)

	case PageRare:
		m.addBack(p)
		m.addCatalog(p, m.settings.RarePetsPage1)

	case PageRemoveSkills:
		for _, spellID := range CompanionSpells {
			m.host.RemoveSpell(p, spellID)
		}
		m.host.RemoveSpell(p, SpellBeastMastery)
		m.host.CloseMenu(p)
		slog.Info("beastmaster: removed pet skills", "player", p.Name())
		return

	default:
		slog.Warn("beastmaster: unknown page",
			"player", p.Name(),
			"page", page.String())
		m.host.CloseMenu(p)
		return
	}

	m.host.SendMenu(p, npc, gossip.DefaultTextID)
}

// addRootItems lists the main menu entries visible to p.
func (m *Menu) addRootItems(p Player) {
	hunter := p.ClassID() == PetHandlingClass

	m.host.AddMenuItem(p, gossip.IconBattle, "Browse Pets", Navigate(PagePets1))
	m.host.AddMenuItem(p, gossip.IconBattle, "Browse Rare Pets", Navigate(PageRare))

	if m.exoticVisible(p) {
		m.host.AddMenuItem(p, gossip.IconBattle, "Browse Exotic Pets", Navigate(PageExotic))
	}
	if !hunter {
		m.host.AddMenuItem(p, gossip.IconBattle, "Remove Pet Skills", Navigate(PageRemoveSkills))
	}
	// Stable slots only exist for hunters.
	if hunter {
		m.host.AddMenuItem(p, gossip.IconTaxi, "Visit Stable", Stable())
	}
	m.host.AddMenuItem(p, gossip.IconMoneyBag, "Buy Pet Food", Vendor())
}

// exoticVisible: without ExoticNoSpec only hunters able to tame exotics
// see the page; with it every other class sees it too.
func (m *Menu) exoticVisible(p Player) bool {
	hunter := p.ClassID() == PetHandlingClass
	if !m.settings.ExoticNoSpec {
		return hunter && canTameExotic(p)
	}
	return !hunter || canTameExotic(p)
}

func (m *Menu) addBack(p Player) {
	m.host.AddMenuItem(p, gossip.IconTalk, "Back..", Navigate(PageRoot))
}

func (m *Menu) addCatalog(p Player, c Catalog) {
	for _, name := range c.Names() {
		m.host.AddMenuItem(p, gossip.IconVendor, name, SelectPet(c[name]))
	}
}

// allowed applies the hunter-only rule, rejecting the player if needed.
func (m *Menu) allowed(p Player, npc Creature) bool {
	if m.settings.HunterOnly && p.ClassID() != PetHandlingClass {
		slog.Debug("beastmaster: hunter only",
			"player", p.Name(),
			"class", p.ClassID().String())
		m.reject(p, npc, msgHunterOnly)
		return false
	}
	return true
}

func (m *Menu) reject(p Player, npc Creature, text string) {
	m.host.Whisper(npc, p, text)
	m.host.Emote(npc, model.EmoteOneshotLaugh)
	m.host.CloseMenu(p)
}

func canTameExotic(p Player) bool {
	return p.HasSpell(SpellBeastMastery) || p.HasTalent(SpellBeastMastery, p.ActiveSpec())
}
