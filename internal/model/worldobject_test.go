package model

import (
	"fmt"
	"sync"
	"testing"
)

func TestNewWorldObject(t *testing.T) {
	loc := NewLocation(0, 100, 200, 300, 1.5)
	obj := NewWorldObject(12345, "TestObject", loc)

	if obj.ObjectID() != 12345 {
		t.Errorf("ObjectID() = %d, want 12345", obj.ObjectID())
	}
	if obj.Name() != "TestObject" {
		t.Errorf("Name() = %q, want %q", obj.Name(), "TestObject")
	}
	if got := obj.Location(); got != loc {
		t.Errorf("Location() = %+v, want %+v", got, loc)
	}
}

func TestWorldObject_Name(t *testing.T) {
	obj := NewWorldObject(1, "InitialName", Location{})

	obj.SetName("UpdatedName")
	if obj.Name() != "UpdatedName" {
		t.Errorf("After SetName, Name() = %q, want %q", obj.Name(), "UpdatedName")
	}

	// Пустое имя валидно
	obj.SetName("")
	if obj.Name() != "" {
		t.Errorf("After SetName empty, Name() = %q, want empty", obj.Name())
	}
}

func TestWorldObject_Location(t *testing.T) {
	obj := NewWorldObject(1, "Test", NewLocation(0, 1, 2, 3, 0))

	newLoc := NewLocation(1, 400, 500, 600, 2)
	obj.SetLocation(newLoc)
	if got := obj.Location(); got != newLoc {
		t.Errorf("After SetLocation, Location() = %+v, want %+v", got, newLoc)
	}

	// Location() возвращает копию
	returned := obj.Location()
	returned.X = 999
	if obj.Location().X == 999 {
		t.Error("Location() did not return a copy - original was mutated")
	}
}

func TestWorldObject_ConcurrentAccess(t *testing.T) {
	obj := NewWorldObject(1, "Test", Location{})

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers * 2)

	for i := range workers {
		go func(id int) {
			defer wg.Done()
			for j := range 100 {
				obj.SetName(fmt.Sprintf("Writer%d-%d", id, j))
				obj.SetLocation(NewLocation(0, float32(id), float32(j), 0, 0))
			}
		}(i)
		go func() {
			defer wg.Done()
			for range 100 {
				_ = obj.Name()
				_ = obj.Location()
			}
		}()
	}

	wg.Wait()

	if obj.Name() == "" {
		t.Error("Name is empty after concurrent writes")
	}
}
