package world

import "sync/atomic"

// ObjectIDGenerator generates unique object IDs for all world entities.
//
// ID ranges:
//
//	0x00000000 - 0x0FFFFFFF: Reserved (0 = invalid)
//	0x10000000 - 0x1FFFFFFF: Players
//	0x20000000 - 0x2FFFFFFF: NPCs
//	0x30000000 - 0x3FFFFFFF: Pets
type ObjectIDGenerator struct {
	nextPlayerID atomic.Uint32
	nextNpcID    atomic.Uint32
	nextPetID    atomic.Uint32
}

const (
	PlayerIDBase uint32 = 0x10000000
	NpcIDBase    uint32 = 0x20000000
	PetIDBase    uint32 = 0x30000000
	petIDEnd     uint32 = 0x40000000
)

// NewObjectIDGenerator creates a new ID generator.
func NewObjectIDGenerator() *ObjectIDGenerator {
	gen := &ObjectIDGenerator{}
	gen.nextPlayerID.Store(PlayerIDBase)
	gen.nextNpcID.Store(NpcIDBase)
	gen.nextPetID.Store(PetIDBase)
	return gen
}

// NextPlayerID generates next unique player object ID.
func (g *ObjectIDGenerator) NextPlayerID() uint32 {
	return g.nextPlayerID.Add(1)
}

// NextNpcID generates next unique NPC object ID.
func (g *ObjectIDGenerator) NextNpcID() uint32 {
	return g.nextNpcID.Add(1)
}

// NextPetID generates next unique pet object ID.
func (g *ObjectIDGenerator) NextPetID() uint32 {
	return g.nextPetID.Add(1)
}

// IsNpcID reports whether id is in the NPC range.
func IsNpcID(id uint32) bool {
	return id >= NpcIDBase && id < PetIDBase
}

// IsPetID reports whether id is in the pet range.
func IsPetID(id uint32) bool {
	return id >= PetIDBase && id < petIDEnd
}

// PetNumberGenerator hands out persistent pet numbers. Unlike object
// IDs they survive restarts, so the counter is seeded from storage.
type PetNumberGenerator struct {
	next atomic.Uint32
}

// NewPetNumberGenerator continues after last, the highest number in use.
func NewPetNumberGenerator(last uint32) *PetNumberGenerator {
	g := &PetNumberGenerator{}
	g.next.Store(last)
	return g
}

// Next returns the next pet number.
func (g *PetNumberGenerator) Next() uint32 {
	return g.next.Add(1)
}
