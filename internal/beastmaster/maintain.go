package beastmaster

import (
	"time"

	"github.com/udisondev/beastmaster/internal/model"
)

// Announcer tells players on login that the module is running.
type Announcer struct {
	host     Chat
	settings *Settings
}

// NewAnnouncer creates a login announcer.
func NewAnnouncer(host Chat, settings *Settings) *Announcer {
	return &Announcer{host: host, settings: settings}
}

// OnLogin sends the announce system message when enabled.
func (a *Announcer) OnLogin(p Player) {
	if !a.settings.Announce {
		return
	}
	a.host.SendSysMessage(p, MsgAnnounce)
}

// Maintainer keeps hunter pets at maximum happiness.
type Maintainer struct {
	host     PetHost
	settings *Settings
}

// NewMaintainer creates a per-tick maintainer.
func NewMaintainer(host PetHost, settings *Settings) *Maintainer {
	return &Maintainer{host: host, settings: settings}
}

// OnBeforeUpdate runs every tick for every online player.
func (m *Maintainer) OnBeforeUpdate(p Player, _ time.Duration) {
	if !m.settings.KeepPetHappy {
		return
	}
	pet := m.host.ActivePet(p)
	if pet == nil || pet.PetType() != model.PetTypeHunter {
		return
	}
	pet.SetHappiness(model.MaxHappiness)
}
