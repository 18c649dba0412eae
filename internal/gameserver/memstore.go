package gameserver

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/udisondev/beastmaster/internal/db"
	"github.com/udisondev/beastmaster/internal/model"
)

// memoryDB keeps everything the database would when persistence is
// disabled. Contents are lost on restart.
type memoryDB struct {
	mu sync.Mutex

	nextCharID int64
	chars      map[string]*db.CharacterRow // lowercase name
	charsByID  map[int64]*db.CharacterRow
	spells     map[int64]map[int32]struct{}
	talents    map[int64]map[uint8][]int32
	pets       map[uint32]db.PetRow // pet number
}

// MemoryStores builds stores that keep data in process memory.
func MemoryStores() Stores {
	m := &memoryDB{
		chars:     make(map[string]*db.CharacterRow),
		charsByID: make(map[int64]*db.CharacterRow),
		spells:    make(map[int64]map[int32]struct{}),
		talents:   make(map[int64]map[uint8][]int32),
		pets:      make(map[uint32]db.PetRow),
	}
	return Stores{
		Characters: memCharacters{m},
		Spells:     memSpells{m},
		Pets:       memPets{m},
		Players:    memPlayers{memSpells{m}, memPets{m}},
	}
}

type memCharacters struct{ m *memoryDB }

func (s memCharacters) LoadOrCreate(_ context.Context, name string, classID model.ClassID, level int32, factionID uint32) (db.CharacterRow, bool, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	key := strings.ToLower(name)
	if row, ok := s.m.chars[key]; ok {
		return *row, false, nil
	}

	s.m.nextCharID++
	row := &db.CharacterRow{
		ID:        s.m.nextCharID,
		Name:      name,
		ClassID:   classID,
		Level:     level,
		FactionID: factionID,
	}
	s.m.chars[key] = row
	s.m.charsByID[row.ID] = row
	return *row, true, nil
}

func (s memCharacters) UpdateLevel(_ context.Context, characterID int64, level int32) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	row, ok := s.m.charsByID[characterID]
	if !ok {
		return fmt.Errorf("updating level of character %d: %w", characterID, db.ErrNotFound)
	}
	row.Level = level
	return nil
}

type memSpells struct{ m *memoryDB }

func (s memSpells) LoadByCharacterID(_ context.Context, charID int64) ([]int32, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	return slices.Sorted(maps.Keys(s.m.spells[charID])), nil
}

func (s memSpells) Add(_ context.Context, charID int64, spellID int32) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if s.m.spells[charID] == nil {
		s.m.spells[charID] = make(map[int32]struct{})
	}
	s.m.spells[charID][spellID] = struct{}{}
	return nil
}

func (s memSpells) Delete(_ context.Context, charID int64, spellID int32) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	delete(s.m.spells[charID], spellID)
	return nil
}

func (s memSpells) LoadTalents(_ context.Context, charID int64) (map[uint8][]int32, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	out := make(map[uint8][]int32, len(s.m.talents[charID]))
	for spec, ids := range s.m.talents[charID] {
		out[spec] = slices.Clone(ids)
	}
	return out, nil
}

func (s memSpells) AddTalent(_ context.Context, charID int64, spec uint8, spellID int32) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	if s.m.talents[charID] == nil {
		s.m.talents[charID] = make(map[uint8][]int32)
	}
	if !slices.Contains(s.m.talents[charID][spec], spellID) {
		s.m.talents[charID][spec] = append(s.m.talents[charID][spec], spellID)
	}
	return nil
}

type memPets struct{ m *memoryDB }

func (s memPets) Save(_ context.Context, p db.PetRow) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	for n, other := range s.m.pets {
		if n != p.PetNumber && other.OwnerID == p.OwnerID && other.Slot == p.Slot {
			return fmt.Errorf("saving pet %d: slot %d of character %d taken by pet %d", p.PetNumber, p.Slot, p.OwnerID, n)
		}
	}
	s.m.pets[p.PetNumber] = p
	return nil
}

func (s memPets) LoadCurrent(_ context.Context, ownerID int64) (db.PetRow, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	for _, p := range s.m.pets {
		if p.OwnerID == ownerID && p.Slot == db.PetSlotCurrent {
			return p, nil
		}
	}
	return db.PetRow{}, fmt.Errorf("loading current pet of character %d: %w", ownerID, db.ErrNotFound)
}

func (s memPets) LoadStabled(_ context.Context, ownerID int64) ([]db.PetRow, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	var out []db.PetRow
	for _, p := range s.m.pets {
		if p.OwnerID == ownerID && p.Slot >= db.PetSlotStableMin && p.Slot <= db.PetSlotStableMax {
			out = append(out, p)
		}
	}
	slices.SortFunc(out, func(a, b db.PetRow) int { return int(a.Slot) - int(b.Slot) })
	return out, nil
}

func (s memPets) SetSlot(_ context.Context, petNumber uint32, slot uint8) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	p, ok := s.m.pets[petNumber]
	if !ok {
		return fmt.Errorf("moving pet %d to slot %d: %w", petNumber, slot, db.ErrNotFound)
	}
	p.Slot = slot
	s.m.pets[petNumber] = p
	return nil
}

func (s memPets) Delete(_ context.Context, petNumber uint32) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	delete(s.m.pets, petNumber)
	return nil
}

func (s memPets) MaxPetNumber(context.Context) (uint32, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	var highest uint32
	for n := range s.m.pets {
		highest = max(highest, n)
	}
	return highest, nil
}

type memPlayers struct {
	spells memSpells
	pets   memPets
}

func (s memPlayers) LoadPlayerData(ctx context.Context, charID int64) (db.PlayerData, error) {
	spells, _ := s.spells.LoadByCharacterID(ctx, charID)
	talents, _ := s.spells.LoadTalents(ctx, charID)
	out := db.PlayerData{Spells: spells, Talents: talents}

	if pet, err := s.pets.LoadCurrent(ctx, charID); err == nil {
		out.Pet = &pet
	}
	return out, nil
}

func (s memPlayers) SavePlayer(_ context.Context, player *model.Player) error {
	m := s.spells.m
	m.mu.Lock()
	defer m.mu.Unlock()

	row, ok := m.charsByID[player.CharacterID()]
	if !ok {
		return fmt.Errorf("saving character %d: %w", player.CharacterID(), db.ErrNotFound)
	}
	row.Level = player.Level()
	row.ActiveSpec = player.ActiveSpec()

	spells := make(map[int32]struct{})
	for _, id := range player.Spells() {
		spells[id] = struct{}{}
	}
	m.spells[row.ID] = spells
	return nil
}
