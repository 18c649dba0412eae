package model

// Npc is a spawned creature that players can interact with.
type Npc struct {
	*WorldObject

	entry     uint32
	factionID uint32
	subName   string
}

// NewNpc creates an NPC spawned from creature template entry.
func NewNpc(objectID, entry uint32, name, subName string, factionID uint32, loc Location) *Npc {
	n := &Npc{
		WorldObject: NewWorldObject(objectID, name, loc),
		entry:       entry,
		factionID:   factionID,
		subName:     subName,
	}
	n.WorldObject.Data = n
	return n
}

// Entry returns creature template id.
func (n *Npc) Entry() uint32 {
	return n.entry
}

// FactionID returns faction template id.
func (n *Npc) FactionID() uint32 {
	return n.factionID
}

// SubName returns the title shown under the name ("Beastmaster").
func (n *Npc) SubName() string {
	return n.subName
}
