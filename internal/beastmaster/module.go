// Package beastmaster implements the BeastMaster NPC: a creature that
// lets players adopt tamed pets from configurable catalogs.
//
// The package talks to the server only through the interfaces in
// host.go. Register wires it into a script.Manager.
package beastmaster

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/udisondev/beastmaster/internal/game/gossip"
	"github.com/udisondev/beastmaster/internal/game/script"
	"github.com/udisondev/beastmaster/internal/model"
)

// Script names, one per hook group.
const (
	ScriptConf     = "BeastMasterConf"
	ScriptAnnounce = "BeastMasterAnnounce"
	ScriptNpc      = "BeastMaster"
	ScriptPlayer   = "BeastMaster_PlayerScript"
)

// ConfManager is the host config manager. Satisfied by *config.Conf.
type ConfManager interface {
	ConfSource
	LoadMore(path string) error
}

type components struct {
	settings   *Settings
	menu       *Menu
	announcer  *Announcer
	maintainer *Maintainer
}

// Module owns the current settings and the components built from them.
type Module struct {
	host  Host
	conf  ConfManager
	paths []string
	entry uint32

	state atomic.Pointer[components]
}

// NewModule creates the module with default settings. paths are conf
// files loaded in order on the first config load; entry is the NPC
// template the dialog binds to.
func NewModule(host Host, conf ConfManager, paths []string, entry uint32) *Module {
	m := &Module{
		host:  host,
		conf:  conf,
		paths: paths,
		entry: entry,
	}
	m.apply(DefaultSettings())
	return m
}

// Settings returns the settings in force.
func (m *Module) Settings() *Settings {
	return m.state.Load().settings
}

// Entry returns the NPC template the dialog is bound to.
func (m *Module) Entry() uint32 {
	return m.entry
}

func (m *Module) apply(s *Settings) {
	m.state.Store(&components{
		settings:   s,
		menu:       NewMenu(m.host, s),
		announcer:  NewAnnouncer(m.host, s),
		maintainer: NewMaintainer(m.host, s),
	})
}

// OnConfigLoad loads the conf files and rebuilds settings. Reloads are
// ignored: settings are read once at startup.
func (m *Module) OnConfigLoad(reload bool) {
	if reload {
		slog.Debug("beastmaster: config reload ignored")
		return
	}

	for _, path := range m.paths {
		if err := m.conf.LoadMore(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				slog.Warn("beastmaster: conf file not found", "path", path)
				continue
			}
			slog.Error("beastmaster: loading conf file", "path", path, "error", err)
			continue
		}
		slog.Debug("beastmaster: conf file loaded", "path", path)
	}

	s := LoadSettings(m.conf)
	m.apply(s)

	slog.Info("beastmaster: settings loaded",
		"announce", s.Announce,
		"hunterOnly", s.HunterOnly,
		"exoticNoSpec", s.ExoticNoSpec,
		"petScale", s.PetScale,
		"keepPetHappy", s.KeepPetHappy,
		"pets", len(s.PetsPage1)+len(s.PetsPage2)+len(s.PetsPage3),
		"exotic", len(s.ExoticPetsPage1),
		"rare", len(s.RarePetsPage1))
}

// OnLogin runs the login announcer.
func (m *Module) OnLogin(p Player) {
	m.state.Load().announcer.OnLogin(p)
}

// OnBeforeUpdate runs the happiness maintainer.
func (m *Module) OnBeforeUpdate(p Player, diff time.Duration) {
	m.state.Load().maintainer.OnBeforeUpdate(p, diff)
}

// OnGossipHello opens the dialog.
func (m *Module) OnGossipHello(p Player, npc Creature) bool {
	return m.state.Load().menu.Hello(p, npc)
}

// OnGossipSelect handles a picked item. Actions of other types are
// not ours and are ignored.
func (m *Module) OnGossipSelect(p Player, npc Creature, action gossip.Action) bool {
	a, ok := action.(Action)
	if !ok {
		slog.Warn("beastmaster: foreign gossip action",
			"player", p.Name(),
			"action", fmt.Sprint(action))
		return false
	}
	return m.state.Load().menu.Select(p, npc, a)
}

// Scripts returns the module hooks grouped the way they register.
func (m *Module) Scripts() []*script.Script {
	conf := script.NewScript(ScriptConf)
	conf.SetOnConfigLoad(m.OnConfigLoad)

	announce := script.NewScript(ScriptAnnounce)
	announce.SetOnLogin(func(p *model.Player) { m.OnLogin(p) })

	npc := script.NewScript(ScriptNpc)
	npc.AddGossipHello(m.entry, func(p *model.Player, c *model.Npc) bool {
		return m.OnGossipHello(p, c)
	})
	npc.AddGossipSelect(m.entry, func(p *model.Player, c *model.Npc, a gossip.Action) bool {
		return m.OnGossipSelect(p, c, a)
	})

	player := script.NewScript(ScriptPlayer)
	player.SetOnBeforeUpdate(func(p *model.Player, diff time.Duration) {
		m.OnBeforeUpdate(p, diff)
	})

	return []*script.Script{conf, announce, npc, player}
}

// Register adds all module scripts to mgr.
func (m *Module) Register(mgr *script.Manager) error {
	for _, s := range m.Scripts() {
		if err := mgr.RegisterScript(s); err != nil {
			return fmt.Errorf("registering script %s: %w", s.Name(), err)
		}
	}
	return nil
}
