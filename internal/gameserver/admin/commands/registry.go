package commands

import "github.com/udisondev/beastmaster/internal/gameserver/admin"

// RegisterAll registers all console commands into the handler.
func RegisterAll(h *admin.Handler, w World) {
	// Sessions
	h.Register(NewLogin(w))
	h.Register(NewLogout(w))
	h.Register(NewWho(w))

	// Dialog
	h.Register(NewTalk(w))
	h.Register(NewSelect(w))
	h.Register(NewBypass(w))

	// Pets
	h.Register(NewPetInfo(w))
	h.Register(NewAbandon(w))
	h.Register(NewStable(w))
	h.Register(NewUnstable(w))

	// Character
	h.Register(NewSetLevel(w))
	h.Register(NewSpells(w))
	h.Register(NewLearn(w))
	h.Register(NewTalent(w))

	h.Register(NewReload(w))
	h.Register(NewHelp(h))
}
