package model

import "testing"

func TestNewLocation(t *testing.T) {
	loc := NewLocation(1, -8913.23, -133.9, 80.5, 3.14)

	want := Location{MapID: 1, X: -8913.23, Y: -133.9, Z: 80.5, Orientation: 3.14}
	if loc != want {
		t.Errorf("NewLocation() = %+v, want %+v", loc, want)
	}
}

func TestLocation_DistanceSquared(t *testing.T) {
	tests := []struct {
		name string
		a, b Location
		want float32
	}{
		{"same point", NewLocation(0, 10, 10, 10, 0), NewLocation(0, 10, 10, 10, 1), 0},
		{"3-4-0", NewLocation(0, 0, 0, 0, 0), NewLocation(0, 3, 4, 0, 0), 25},
		{"with z", NewLocation(1, 1, 2, 3, 0), NewLocation(1, 2, 4, 5, 0), 9},
		{"other map", NewLocation(0, 0, 0, 0, 0), NewLocation(1, 0, 0, 0, 0), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.DistanceSquared(tt.b); got != tt.want {
				t.Errorf("DistanceSquared() = %v, want %v", got, tt.want)
			}
			// Симметрично
			if got := tt.b.DistanceSquared(tt.a); got != tt.want {
				t.Errorf("reverse DistanceSquared() = %v, want %v", got, tt.want)
			}
		})
	}
}
