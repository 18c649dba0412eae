package model

import (
	"fmt"
	"slices"
	"sync"
)

// MaxTalentSpecs is the number of talent specs (dual spec).
const MaxTalentSpecs = 2

// Player is an online character.
type Player struct {
	*WorldObject

	characterID int64
	classID     ClassID

	playerMu sync.RWMutex

	level       int32
	factionID   uint32
	accessLevel int32

	// Spellbook: learned spell ids.
	spells map[int32]struct{}

	// Talents per spec, activeSpec indexes into it.
	talents    [MaxTalentSpecs]map[int32]struct{}
	activeSpec uint8

	// Active pet. Nil if none.
	pet *Pet
}

// NewPlayer creates a player. Level must be in 1..MaxPlayerLevel.
func NewPlayer(objectID uint32, characterID int64, name string, classID ClassID, level int32, factionID uint32) (*Player, error) {
	if name == "" {
		return nil, fmt.Errorf("player name cannot be empty")
	}
	if !classID.Valid() {
		return nil, fmt.Errorf("unknown class %d", classID)
	}
	if level < 1 || level > MaxPlayerLevel {
		return nil, fmt.Errorf("level must be between 1 and %d, got %d", MaxPlayerLevel, level)
	}

	p := &Player{
		WorldObject: NewWorldObject(objectID, name, Location{}),
		characterID: characterID,
		classID:     classID,
		level:       level,
		factionID:   factionID,
		spells:      make(map[int32]struct{}, 16),
	}
	for i := range p.talents {
		p.talents[i] = make(map[int32]struct{}, 4)
	}
	p.WorldObject.Data = p
	return p, nil
}

// CharacterID returns database id.
func (p *Player) CharacterID() int64 {
	return p.characterID
}

// ClassID returns player class.
func (p *Player) ClassID() ClassID {
	return p.classID
}

// Level returns current level.
func (p *Player) Level() int32 {
	p.playerMu.RLock()
	defer p.playerMu.RUnlock()
	return p.level
}

// SetLevel changes level (1..MaxPlayerLevel).
func (p *Player) SetLevel(level int32) error {
	if level < 1 || level > MaxPlayerLevel {
		return fmt.Errorf("level must be between 1 and %d, got %d", MaxPlayerLevel, level)
	}
	p.playerMu.Lock()
	defer p.playerMu.Unlock()
	p.level = level
	return nil
}

// FactionID returns faction template id.
func (p *Player) FactionID() uint32 {
	p.playerMu.RLock()
	defer p.playerMu.RUnlock()
	return p.factionID
}

// AccessLevel returns GM access level (0 = player).
func (p *Player) AccessLevel() int32 {
	p.playerMu.RLock()
	defer p.playerMu.RUnlock()
	return p.accessLevel
}

// SetAccessLevel sets GM access level.
func (p *Player) SetAccessLevel(level int32) {
	p.playerMu.Lock()
	defer p.playerMu.Unlock()
	p.accessLevel = level
}

// HasSpell reports whether the spell is in the spellbook.
func (p *Player) HasSpell(spellID int32) bool {
	p.playerMu.RLock()
	defer p.playerMu.RUnlock()
	_, ok := p.spells[spellID]
	return ok
}

// AddSpell adds spell to spellbook. Returns false if already known.
func (p *Player) AddSpell(spellID int32) bool {
	p.playerMu.Lock()
	defer p.playerMu.Unlock()
	if _, ok := p.spells[spellID]; ok {
		return false
	}
	p.spells[spellID] = struct{}{}
	return true
}

// RemoveSpell removes spell from spellbook. Returns false if it was not known.
func (p *Player) RemoveSpell(spellID int32) bool {
	p.playerMu.Lock()
	defer p.playerMu.Unlock()
	if _, ok := p.spells[spellID]; !ok {
		return false
	}
	delete(p.spells, spellID)
	return true
}

// Spells returns learned spell ids in ascending order.
func (p *Player) Spells() []int32 {
	p.playerMu.RLock()
	ids := make([]int32, 0, len(p.spells))
	for id := range p.spells {
		ids = append(ids, id)
	}
	p.playerMu.RUnlock()

	slices.Sort(ids)
	return ids
}

// ActiveSpec returns active talent spec index.
func (p *Player) ActiveSpec() uint8 {
	p.playerMu.RLock()
	defer p.playerMu.RUnlock()
	return p.activeSpec
}

// SetActiveSpec switches talent spec.
func (p *Player) SetActiveSpec(spec uint8) error {
	if spec >= MaxTalentSpecs {
		return fmt.Errorf("spec must be < %d, got %d", MaxTalentSpecs, spec)
	}
	p.playerMu.Lock()
	defer p.playerMu.Unlock()
	p.activeSpec = spec
	return nil
}

// HasTalent reports whether talent spell is learned in the given spec.
func (p *Player) HasTalent(spellID int32, spec uint8) bool {
	if spec >= MaxTalentSpecs {
		return false
	}
	p.playerMu.RLock()
	defer p.playerMu.RUnlock()
	_, ok := p.talents[spec][spellID]
	return ok
}

// LearnTalent adds a talent to the active spec.
func (p *Player) LearnTalent(spellID int32) {
	p.playerMu.Lock()
	defer p.playerMu.Unlock()
	p.talents[p.activeSpec][spellID] = struct{}{}
}

// Pet returns active pet (nil if none).
func (p *Player) Pet() *Pet {
	p.playerMu.RLock()
	defer p.playerMu.RUnlock()
	return p.pet
}

// HasPet reports whether a pet is active.
func (p *Player) HasPet() bool {
	return p.Pet() != nil
}

// SetPet binds the active pet.
func (p *Player) SetPet(pet *Pet) {
	p.playerMu.Lock()
	defer p.playerMu.Unlock()
	p.pet = pet
}

// ClearPet unbinds the active pet and returns it.
func (p *Player) ClearPet() *Pet {
	p.playerMu.Lock()
	defer p.playerMu.Unlock()
	pet := p.pet
	p.pet = nil
	return pet
}
