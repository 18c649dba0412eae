// Package script implements the server's script hook framework.
// Scripts register hook functions that fire on world events (config
// load, player login, player update) and on NPC gossip interaction.
package script

import (
	"time"

	"github.com/udisondev/beastmaster/internal/game/gossip"
	"github.com/udisondev/beastmaster/internal/model"
)

// ConfigLoadFunc runs when server configuration is (re)loaded.
type ConfigLoadFunc func(reload bool)

// LoginFunc runs once when a player enters the world.
type LoginFunc func(player *model.Player)

// UpdateFunc runs on every world tick for every online player,
// before the player's own update.
type UpdateFunc func(player *model.Player, diff time.Duration)

// GossipHelloFunc runs when a player opens dialog with an NPC.
// Returning false tells the host the script did not show a menu.
type GossipHelloFunc func(player *model.Player, npc *model.Npc) bool

// GossipSelectFunc runs when a player picks an item from a menu sent
// by the script.
type GossipSelectFunc func(player *model.Player, npc *model.Npc, action gossip.Action) bool

// Script is a named set of hooks.
type Script struct {
	name string

	onConfigLoad ConfigLoadFunc
	onLogin      LoginFunc
	onUpdate     UpdateFunc

	// NPC entry → hook
	onGossipHello  map[uint32]GossipHelloFunc
	onGossipSelect map[uint32]GossipSelectFunc
}

// NewScript creates an empty script definition.
func NewScript(name string) *Script {
	return &Script{
		name:           name,
		onGossipHello:  make(map[uint32]GossipHelloFunc, 1),
		onGossipSelect: make(map[uint32]GossipSelectFunc, 1),
	}
}

// Name returns the script name.
func (s *Script) Name() string { return s.name }

// SetOnConfigLoad sets the config load hook.
func (s *Script) SetOnConfigLoad(fn ConfigLoadFunc) {
	s.onConfigLoad = fn
}

// SetOnLogin sets the player login hook.
func (s *Script) SetOnLogin(fn LoginFunc) {
	s.onLogin = fn
}

// SetOnBeforeUpdate sets the per-tick player hook.
func (s *Script) SetOnBeforeUpdate(fn UpdateFunc) {
	s.onUpdate = fn
}

// AddGossipHello binds a dialog-open hook to an NPC entry.
func (s *Script) AddGossipHello(entry uint32, fn GossipHelloFunc) {
	s.onGossipHello[entry] = fn
}

// AddGossipSelect binds a menu-select hook to an NPC entry.
func (s *Script) AddGossipSelect(entry uint32, fn GossipSelectFunc) {
	s.onGossipSelect[entry] = fn
}

// GossipEntries returns NPC entries this script handles dialog for.
func (s *Script) GossipEntries() []uint32 {
	seen := make(map[uint32]struct{}, len(s.onGossipHello)+len(s.onGossipSelect))
	entries := make([]uint32, 0, len(seen))
	for e := range s.onGossipHello {
		seen[e] = struct{}{}
		entries = append(entries, e)
	}
	for e := range s.onGossipSelect {
		if _, ok := seen[e]; !ok {
			entries = append(entries, e)
		}
	}
	return entries
}
