package model

import (
	"slices"
	"sync"
	"sync/atomic"
)

// PetType distinguishes tamed companions from summoned minions.
type PetType uint8

const (
	// PetTypeSummon: warlock/DK style minion, no happiness.
	PetTypeSummon PetType = 0
	// PetTypeHunter: tamed beast with happiness and talents.
	PetTypeHunter PetType = 1
)

func (t PetType) String() string {
	if t == PetTypeHunter {
		return "hunter"
	}
	return "summon"
}

// MaxHappiness is the happiness power cap of a hunter pet.
const MaxHappiness int32 = 1048000

// PetStats are level-derived combat stats.
type PetStats struct {
	MaxHealth int32
	Armor     int32
	MinDamage int32
	MaxDamage int32
}

// Pet is a creature bound to a player as its active companion.
type Pet struct {
	*WorldObject

	ownerID uint32
	entry   uint32
	petType PetType

	petMu sync.RWMutex

	petNumber      uint32
	createdBy      uint32
	createdBySpell int32
	level          int32
	factionID      uint32
	happiness      int32
	scale          float32
	talentPoints   int32
	stats          PetStats
	spells         map[int32]struct{}

	inWorld atomic.Bool
}

// NewPet creates a pet owned by ownerID from creature template entry.
func NewPet(objectID, ownerID, entry uint32, name string, petType PetType, level int32) *Pet {
	p := &Pet{
		WorldObject: NewWorldObject(objectID, name, Location{}),
		ownerID:     ownerID,
		entry:       entry,
		petType:     petType,
		level:       level,
		scale:       1,
		spells:      make(map[int32]struct{}, 8),
	}
	p.WorldObject.Data = p
	return p
}

// OwnerID returns owner player's object id.
func (p *Pet) OwnerID() uint32 {
	return p.ownerID
}

// Entry returns creature template id.
func (p *Pet) Entry() uint32 {
	return p.entry
}

// PetType returns pet kind.
func (p *Pet) PetType() PetType {
	return p.petType
}

// PetNumber returns persistent pet id (0 until assigned).
func (p *Pet) PetNumber() uint32 {
	p.petMu.RLock()
	defer p.petMu.RUnlock()
	return p.petNumber
}

// SetPetNumber assigns persistent pet id.
func (p *Pet) SetPetNumber(n uint32) {
	p.petMu.Lock()
	defer p.petMu.Unlock()
	p.petNumber = n
}

// CreatedBy returns object id of the creator.
func (p *Pet) CreatedBy() uint32 {
	p.petMu.RLock()
	defer p.petMu.RUnlock()
	return p.createdBy
}

// SetCreatedBy marks the creator.
func (p *Pet) SetCreatedBy(objectID uint32) {
	p.petMu.Lock()
	defer p.petMu.Unlock()
	p.createdBy = objectID
}

// CreatedBySpell returns the spell that created the pet.
func (p *Pet) CreatedBySpell() int32 {
	p.petMu.RLock()
	defer p.petMu.RUnlock()
	return p.createdBySpell
}

// SetCreatedBySpell records the spell that created the pet.
func (p *Pet) SetCreatedBySpell(spellID int32) {
	p.petMu.Lock()
	defer p.petMu.Unlock()
	p.createdBySpell = spellID
}

// Level returns current level.
func (p *Pet) Level() int32 {
	p.petMu.RLock()
	defer p.petMu.RUnlock()
	return p.level
}

// SetLevel sets level (minimum 1).
func (p *Pet) SetLevel(level int32) {
	if level < 1 {
		level = 1
	}
	p.petMu.Lock()
	defer p.petMu.Unlock()
	p.level = level
}

// FactionID returns faction template id.
func (p *Pet) FactionID() uint32 {
	p.petMu.RLock()
	defer p.petMu.RUnlock()
	return p.factionID
}

// SetFactionID sets faction template id.
func (p *Pet) SetFactionID(id uint32) {
	p.petMu.Lock()
	defer p.petMu.Unlock()
	p.factionID = id
}

// Happiness returns happiness power.
func (p *Pet) Happiness() int32 {
	p.petMu.RLock()
	defer p.petMu.RUnlock()
	return p.happiness
}

// SetHappiness sets happiness power (clamped to 0..MaxHappiness).
func (p *Pet) SetHappiness(v int32) {
	v = max(0, min(v, MaxHappiness))
	p.petMu.Lock()
	defer p.petMu.Unlock()
	p.happiness = v
}

// Scale returns display scale.
func (p *Pet) Scale() float32 {
	p.petMu.RLock()
	defer p.petMu.RUnlock()
	return p.scale
}

// SetScale sets display scale.
func (p *Pet) SetScale(scale float32) {
	p.petMu.Lock()
	defer p.petMu.Unlock()
	p.scale = scale
}

// TalentPoints returns free pet talent points.
func (p *Pet) TalentPoints() int32 {
	p.petMu.RLock()
	defer p.petMu.RUnlock()
	return p.talentPoints
}

// SetTalentPoints sets free pet talent points.
func (p *Pet) SetTalentPoints(n int32) {
	p.petMu.Lock()
	defer p.petMu.Unlock()
	p.talentPoints = n
}

// Stats returns a copy of combat stats.
func (p *Pet) Stats() PetStats {
	p.petMu.RLock()
	defer p.petMu.RUnlock()
	return p.stats
}

// SetStats replaces combat stats.
func (p *Pet) SetStats(s PetStats) {
	p.petMu.Lock()
	defer p.petMu.Unlock()
	p.stats = s
}

// LearnSpell adds a pet spell. Returns false if already known.
func (p *Pet) LearnSpell(spellID int32) bool {
	p.petMu.Lock()
	defer p.petMu.Unlock()
	if _, ok := p.spells[spellID]; ok {
		return false
	}
	p.spells[spellID] = struct{}{}
	return true
}

// Spells returns pet spell ids in ascending order.
func (p *Pet) Spells() []int32 {
	p.petMu.RLock()
	ids := make([]int32, 0, len(p.spells))
	for id := range p.spells {
		ids = append(ids, id)
	}
	p.petMu.RUnlock()

	slices.Sort(ids)
	return ids
}

// IsInWorld reports whether the pet was added to a map.
func (p *Pet) IsInWorld() bool {
	return p.inWorld.Load()
}

// SetInWorld sets map membership flag.
func (p *Pet) SetInWorld(v bool) {
	p.inWorld.Store(v)
}
