package gameserver

import (
	"slices"
	"strings"
	"sync"

	"github.com/udisondev/beastmaster/internal/db"
	"github.com/udisondev/beastmaster/internal/game/gossip"
	"github.com/udisondev/beastmaster/internal/model"
)

// Session is an online player with its dialog state.
type Session struct {
	player *model.Player
	menu   *gossip.Menu

	// stabled pets, ordered by slot
	stabled []db.PetRow
}

// Player returns the session's player.
func (s *Session) Player() *model.Player {
	return s.player
}

// freeStableSlot returns the first unused stable slot, 0 if all are taken.
func (s *Session) freeStableSlot() uint8 {
	for slot := db.PetSlotStableMin; slot <= db.PetSlotStableMax; slot++ {
		if !slices.ContainsFunc(s.stabled, func(p db.PetRow) bool { return p.Slot == slot }) {
			return slot
		}
	}
	return 0
}

func (s *Session) stable(row db.PetRow) {
	s.stabled = append(s.stabled, row)
	slices.SortFunc(s.stabled, func(a, b db.PetRow) int { return int(a.Slot) - int(b.Slot) })
}

func (s *Session) unstable(slot uint8) (db.PetRow, bool) {
	i := slices.IndexFunc(s.stabled, func(p db.PetRow) bool { return p.Slot == slot })
	if i < 0 {
		return db.PetRow{}, false
	}
	row := s.stabled[i]
	s.stabled = slices.Delete(s.stabled, i, i+1)
	return row, true
}

// SessionManager indexes online players by name and object id.
// Thread-safe for concurrent access.
type SessionManager struct {
	mu sync.RWMutex

	byName     map[string]*Session // key: lowercase name
	byObjectID map[uint32]*Session
}

// NewSessionManager creates an empty session manager.
func NewSessionManager() *SessionManager {
	return &SessionManager{
		byName:     make(map[string]*Session, 64),
		byObjectID: make(map[uint32]*Session, 64),
	}
}

// Register adds a session. Returns false if the name is already online.
func (sm *SessionManager) Register(s *Session) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	key := strings.ToLower(s.player.Name())
	if _, ok := sm.byName[key]; ok {
		return false
	}
	sm.byName[key] = s
	sm.byObjectID[s.player.ObjectID()] = s
	return true
}

// Unregister removes a session.
func (sm *SessionManager) Unregister(s *Session) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	delete(sm.byName, strings.ToLower(s.player.Name()))
	delete(sm.byObjectID, s.player.ObjectID())
}

// ByName finds an online player by name (case-insensitive).
func (sm *SessionManager) ByName(name string) *Session {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.byName[strings.ToLower(name)]
}

// ByObjectID returns the session of a player object, nil if offline.
func (sm *SessionManager) ByObjectID(objectID uint32) *Session {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.byObjectID[objectID]
}

// Count returns number of online players.
func (sm *SessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.byName)
}

// All returns online sessions ordered by name.
func (sm *SessionManager) All() []*Session {
	sm.mu.RLock()
	out := make([]*Session, 0, len(sm.byName))
	for _, s := range sm.byName {
		out = append(out, s)
	}
	sm.mu.RUnlock()

	slices.SortFunc(out, func(a, b *Session) int {
		return strings.Compare(a.player.Name(), b.player.Name())
	})
	return out
}
