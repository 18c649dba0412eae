package db

import (
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/udisondev/beastmaster/internal/model"
)

// ErrNotFound возвращается, когда запись отсутствует.
var ErrNotFound = errors.New("not found")

// Pet slots. Slot 0 holds the current pet.
const (
	PetSlotCurrent   uint8 = 0
	PetSlotStableMin uint8 = 1
	PetSlotStableMax uint8 = 4
)

// CharacterRow: строка таблицы characters.
type CharacterRow struct {
	ID         int64
	Name       string
	ClassID    model.ClassID
	Level      int32
	FactionID  uint32
	ActiveSpec uint8
}

// PetRow: строка таблицы character_pets.
type PetRow struct {
	PetNumber      uint32
	OwnerID        int64
	Entry          uint32
	Name           string
	PetType        model.PetType
	Level          int32
	Happiness      int32
	Scale          float32
	CreatedBySpell int32
	Slot           uint8
}

// notFound maps pgx.ErrNoRows to ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
