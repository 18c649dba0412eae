package world

import (
	"fmt"
	"sync"

	"github.com/udisondev/beastmaster/internal/model"
)

// World tracks every object placed on a map.
type World struct {
	objects sync.Map // map[uint32]*model.WorldObject: objectID → object
	npcs    sync.Map // map[uint32]*model.Npc
	pets    sync.Map // map[uint32]*model.Pet
}

// New creates an empty world.
func New() *World {
	return &World{}
}

// AddObject places object in the world.
// Returns error if the ID is already taken.
func (w *World) AddObject(obj *model.WorldObject) error {
	if obj.ObjectID() == 0 {
		return fmt.Errorf("object %q has no id", obj.Name())
	}
	if _, loaded := w.objects.LoadOrStore(obj.ObjectID(), obj); loaded {
		return fmt.Errorf("object %d already in world", obj.ObjectID())
	}
	return nil
}

// AddNpc adds NPC to world and registers it in npcs map.
func (w *World) AddNpc(npc *model.Npc) error {
	if err := w.AddObject(npc.WorldObject); err != nil {
		return fmt.Errorf("adding npc to world: %w", err)
	}
	w.npcs.Store(npc.ObjectID(), npc)
	return nil
}

// AddPet adds pet to world and marks it in world.
func (w *World) AddPet(pet *model.Pet) error {
	if err := w.AddObject(pet.WorldObject); err != nil {
		return fmt.Errorf("adding pet to world: %w", err)
	}
	w.pets.Store(pet.ObjectID(), pet)
	pet.SetInWorld(true)
	return nil
}

// RemoveObject removes object from world.
func (w *World) RemoveObject(objectID uint32) {
	if _, ok := w.objects.LoadAndDelete(objectID); !ok {
		return
	}

	switch {
	case IsNpcID(objectID):
		w.npcs.Delete(objectID)
	case IsPetID(objectID):
		if v, ok := w.pets.LoadAndDelete(objectID); ok {
			v.(*model.Pet).SetInWorld(false)
		}
	}
}

// GetObject returns object by ID
func (w *World) GetObject(objectID uint32) (*model.WorldObject, bool) {
	value, ok := w.objects.Load(objectID)
	if !ok {
		return nil, false
	}
	return value.(*model.WorldObject), true
}

// GetNpc returns NPC by ObjectID.
func (w *World) GetNpc(objectID uint32) (*model.Npc, bool) {
	value, ok := w.npcs.Load(objectID)
	if !ok {
		return nil, false
	}
	return value.(*model.Npc), true
}

// GetPet returns pet by ObjectID.
func (w *World) GetPet(objectID uint32) (*model.Pet, bool) {
	value, ok := w.pets.Load(objectID)
	if !ok {
		return nil, false
	}
	return value.(*model.Pet), true
}

// FindNpcByEntry returns the first NPC spawned from the template entry.
func (w *World) FindNpcByEntry(entry uint32) (*model.Npc, bool) {
	var found *model.Npc
	w.npcs.Range(func(_, value any) bool {
		npc := value.(*model.Npc)
		if npc.Entry() == entry {
			found = npc
			return false
		}
		return true
	})
	return found, found != nil
}

// ObjectCount returns total number of objects in world (O(N)).
func (w *World) ObjectCount() int {
	count := 0
	w.objects.Range(func(key, value any) bool {
		count++
		return true
	})
	return count
}
