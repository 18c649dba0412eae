package beastmaster

import (
	"testing"
	"time"

	"github.com/udisondev/beastmaster/internal/model"
)

func TestMaintainer_OnBeforeUpdate(t *testing.T) {
	tests := []struct {
		name      string
		keepHappy bool
		petType   model.PetType
		want      int32
	}{
		{"disabled", false, model.PetTypeHunter, 500},
		{"hunter pet pinned", true, model.PetTypeHunter, model.MaxHappiness},
		{"summon untouched", true, model.PetTypeSummon, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			s.KeepPetHappy = tt.keepHappy
			h := newFakeHost()
			p := newPlayer(t, model.ClassHunter, 20)

			pet := model.NewPet(0x40000001, p.ObjectID(), 1, "Wolf", tt.petType, 20)
			pet.SetHappiness(500)
			h.pets[p.ObjectID()] = pet

			NewMaintainer(h, s).OnBeforeUpdate(p, 100*time.Millisecond)

			if got := pet.Happiness(); got != tt.want {
				t.Errorf("happiness = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMaintainer_NoPet(t *testing.T) {
	s := DefaultSettings()
	s.KeepPetHappy = true
	h := newFakeHost()

	NewMaintainer(h, s).OnBeforeUpdate(newPlayer(t, model.ClassHunter, 20), time.Second)

	if len(h.calls) != 0 {
		t.Errorf("unexpected calls %v", h.calls)
	}
}

func TestAnnouncer_OnLogin(t *testing.T) {
	for _, enabled := range []bool{true, false} {
		s := DefaultSettings()
		s.Announce = enabled
		h := newFakeHost()

		NewAnnouncer(h, s).OnLogin(newPlayer(t, model.ClassMage, 1))

		if enabled {
			if len(h.calls) != 1 || h.calls[0] != "sys "+MsgAnnounce {
				t.Errorf("enabled: calls = %v", h.calls)
			}
			continue
		}
		if len(h.calls) != 0 {
			t.Errorf("disabled: calls = %v", h.calls)
		}
	}
}
