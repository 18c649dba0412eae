package model

// Location is a position on a map. Value type.
type Location struct {
	MapID       uint32
	X, Y, Z     float32
	Orientation float32
}

// NewLocation creates a Location on the given map.
func NewLocation(mapID uint32, x, y, z, o float32) Location {
	return Location{MapID: mapID, X: x, Y: y, Z: z, Orientation: o}
}

// DistanceSquared returns squared 3D distance, or -1 for different maps.
func (l Location) DistanceSquared(other Location) float32 {
	if l.MapID != other.MapID {
		return -1
	}
	dx := l.X - other.X
	dy := l.Y - other.Y
	dz := l.Z - other.Z
	return dx*dx + dy*dy + dz*dz
}
