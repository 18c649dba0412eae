package gameserver

import (
	"testing"

	"github.com/udisondev/beastmaster/internal/db"
	"github.com/udisondev/beastmaster/internal/game/gossip"
	"github.com/udisondev/beastmaster/internal/model"
)

func newSession(t *testing.T, objectID uint32, name string) *Session {
	t.Helper()
	p, err := model.NewPlayer(objectID, int64(objectID), name, model.ClassHunter, 60, 1)
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	return &Session{player: p, menu: gossip.NewMenu()}
}

func TestSessionManager_Register_Unregister(t *testing.T) {
	sm := NewSessionManager()
	if sm.Count() != 0 {
		t.Errorf("Initial Count() = %d, want 0", sm.Count())
	}

	s1 := newSession(t, 1, "Rexxar")
	s2 := newSession(t, 2, "Sylvanas")

	if !sm.Register(s1) || !sm.Register(s2) {
		t.Fatal("Register returned false for new sessions")
	}
	if sm.Count() != 2 {
		t.Errorf("Count() = %d, want 2", sm.Count())
	}

	if got := sm.ByName("rexxar"); got != s1 {
		t.Error("ByName is not case-insensitive")
	}
	if got := sm.ByObjectID(2); got != s2 {
		t.Error("ByObjectID returned wrong session")
	}

	if sm.Register(newSession(t, 3, "REXXAR")) {
		t.Error("Register accepted a duplicate name")
	}

	sm.Unregister(s1)
	if sm.ByName("Rexxar") != nil || sm.ByObjectID(1) != nil {
		t.Error("session still indexed after Unregister")
	}
	if sm.Count() != 1 {
		t.Errorf("Count() = %d, want 1", sm.Count())
	}
}

func TestSessionManager_AllSorted(t *testing.T) {
	sm := NewSessionManager()
	sm.Register(newSession(t, 1, "Zul"))
	sm.Register(newSession(t, 2, "Alleria"))
	sm.Register(newSession(t, 3, "Muradin"))

	all := sm.All()
	want := []string{"Alleria", "Muradin", "Zul"}
	if len(all) != len(want) {
		t.Fatalf("All() len = %d, want %d", len(all), len(want))
	}
	for i, s := range all {
		if s.Player().Name() != want[i] {
			t.Errorf("All()[%d] = %s, want %s", i, s.Player().Name(), want[i])
		}
	}
}

func TestSession_StableSlots(t *testing.T) {
	s := newSession(t, 1, "Rexxar")

	if got := s.freeStableSlot(); got != db.PetSlotStableMin {
		t.Fatalf("freeStableSlot() = %d, want %d", got, db.PetSlotStableMin)
	}

	s.stable(db.PetRow{PetNumber: 10, Slot: 2})
	s.stable(db.PetRow{PetNumber: 11, Slot: 1})
	if got := s.freeStableSlot(); got != 3 {
		t.Errorf("freeStableSlot() = %d, want 3", got)
	}
	if s.stabled[0].Slot != 1 || s.stabled[1].Slot != 2 {
		t.Errorf("stabled not ordered by slot: %+v", s.stabled)
	}

	s.stable(db.PetRow{PetNumber: 12, Slot: 3})
	s.stable(db.PetRow{PetNumber: 13, Slot: 4})
	if got := s.freeStableSlot(); got != 0 {
		t.Errorf("freeStableSlot() on full stable = %d, want 0", got)
	}

	row, ok := s.unstable(2)
	if !ok || row.PetNumber != 10 {
		t.Errorf("unstable(2) = %+v, %v; want pet 10", row, ok)
	}
	if _, ok := s.unstable(2); ok {
		t.Error("unstable(2) succeeded twice")
	}
	if got := s.freeStableSlot(); got != 2 {
		t.Errorf("freeStableSlot() = %d, want 2", got)
	}
}
