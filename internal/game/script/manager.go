package script

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/udisondev/beastmaster/internal/game/gossip"
	"github.com/udisondev/beastmaster/internal/model"
)

// ErrDuplicateScript is returned when a script name is registered twice.
var ErrDuplicateScript = errors.New("script already registered")

// Manager holds registered scripts and dispatches events to their hooks.
// Registration happens at startup; dispatch is safe for concurrent use.
type Manager struct {
	mu sync.RWMutex

	scripts []*Script
	byName  map[string]*Script

	// NPC entry → script owning its dialog
	gossipIndex map[uint32]*Script
}

// NewManager creates an empty script manager.
func NewManager() *Manager {
	return &Manager{
		scripts:     make([]*Script, 0, 8),
		byName:      make(map[string]*Script, 8),
		gossipIndex: make(map[uint32]*Script, 8),
	}
}

// RegisterScript adds a script and indexes its gossip hooks.
// A later script claiming an NPC entry already claimed is rejected.
func (m *Manager) RegisterScript(s *Script) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byName[s.name]; exists {
		return fmt.Errorf("script %q: %w", s.name, ErrDuplicateScript)
	}
	for _, entry := range s.GossipEntries() {
		if owner, ok := m.gossipIndex[entry]; ok {
			return fmt.Errorf("script %q: npc entry %d already handled by %q", s.name, entry, owner.name)
		}
	}

	m.scripts = append(m.scripts, s)
	m.byName[s.name] = s
	for _, entry := range s.GossipEntries() {
		m.gossipIndex[entry] = s
	}

	slog.Debug("script registered", "script", s.name)
	return nil
}

// ScriptCount returns the number of registered scripts.
func (m *Manager) ScriptCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.scripts)
}

// HasGossip reports whether a script handles dialog for the NPC entry.
func (m *Manager) HasGossip(entry uint32) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.gossipIndex[entry]
	return ok
}

func (m *Manager) snapshot() []*Script {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*Script(nil), m.scripts...)
}

// DispatchConfigLoad fires config load hooks in registration order.
func (m *Manager) DispatchConfigLoad(reload bool) {
	for _, s := range m.snapshot() {
		if s.onConfigLoad != nil {
			s.onConfigLoad(reload)
		}
	}
}

// DispatchLogin fires login hooks.
func (m *Manager) DispatchLogin(player *model.Player) {
	for _, s := range m.snapshot() {
		if s.onLogin != nil {
			s.onLogin(player)
		}
	}
}

// DispatchBeforeUpdate fires per-tick player hooks.
func (m *Manager) DispatchBeforeUpdate(player *model.Player, diff time.Duration) {
	for _, s := range m.snapshot() {
		if s.onUpdate != nil {
			s.onUpdate(player, diff)
		}
	}
}

// DispatchGossipHello runs the dialog-open hook for the NPC.
// Returns false if no script handles the NPC or the hook declined.
func (m *Manager) DispatchGossipHello(player *model.Player, npc *model.Npc) bool {
	m.mu.RLock()
	s := m.gossipIndex[npc.Entry()]
	m.mu.RUnlock()

	if s == nil {
		return false
	}
	fn := s.onGossipHello[npc.Entry()]
	if fn == nil {
		return false
	}
	return fn(player, npc)
}

// DispatchGossipSelect runs the menu-select hook for the NPC.
func (m *Manager) DispatchGossipSelect(player *model.Player, npc *model.Npc, action gossip.Action) bool {
	m.mu.RLock()
	s := m.gossipIndex[npc.Entry()]
	m.mu.RUnlock()

	if s == nil {
		return false
	}
	fn := s.onGossipSelect[npc.Entry()]
	if fn == nil {
		return false
	}
	return fn(player, npc, action)
}
