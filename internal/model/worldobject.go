package model

import "sync"

// WorldObject is the base of every entity placed in the world.
// Data points back to the owning Player, Npc or Pet.
type WorldObject struct {
	objectID uint32
	name     string
	location Location
	Data     any

	mu sync.RWMutex
}

// NewWorldObject creates a world object.
func NewWorldObject(objectID uint32, name string, loc Location) *WorldObject {
	return &WorldObject{
		objectID: objectID,
		name:     name,
		location: loc,
	}
}

// ObjectID returns the unique object id (immutable).
func (w *WorldObject) ObjectID() uint32 {
	return w.objectID
}

// Name returns display name.
func (w *WorldObject) Name() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.name
}

// SetName sets display name.
func (w *WorldObject) SetName(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.name = name
}

// Location returns a copy of the position.
func (w *WorldObject) Location() Location {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.location
}

// SetLocation moves the object.
func (w *WorldObject) SetLocation(loc Location) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.location = loc
}
