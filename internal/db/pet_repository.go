package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/beastmaster/internal/model"
)

// PetRepository управляет питомцами персонажей в БД.
type PetRepository struct {
	db *pgxpool.Pool
}

// NewPetRepository создаёт новый PetRepository.
func NewPetRepository(db *pgxpool.Pool) *PetRepository {
	return &PetRepository{db: db}
}

const petColumns = `id, owner_id, entry, name, pet_type, level, happiness, scale, created_by_spell, slot`

// Save вставляет или обновляет питомца по pet number.
func (r *PetRepository) Save(ctx context.Context, p PetRow) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO character_pets (`+petColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (id) DO UPDATE SET
		     name = EXCLUDED.name,
		     level = EXCLUDED.level,
		     happiness = EXCLUDED.happiness,
		     scale = EXCLUDED.scale,
		     slot = EXCLUDED.slot,
		     updated_at = now()`,
		int64(p.PetNumber), p.OwnerID, int64(p.Entry), p.Name, int16(p.PetType),
		p.Level, p.Happiness, p.Scale, p.CreatedBySpell, int16(p.Slot),
	)
	if err != nil {
		return fmt.Errorf("saving pet %d of character %d: %w", p.PetNumber, p.OwnerID, err)
	}
	return nil
}

// LoadCurrent загружает текущего питомца персонажа.
// Returns ErrNotFound if the character has no current pet.
func (r *PetRepository) LoadCurrent(ctx context.Context, ownerID int64) (PetRow, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+petColumns+` FROM character_pets WHERE owner_id = $1 AND slot = $2`,
		ownerID, int16(PetSlotCurrent),
	)
	if err != nil {
		return PetRow{}, fmt.Errorf("querying current pet of character %d: %w", ownerID, err)
	}

	row, err := pgx.CollectExactlyOneRow(rows, scanPet)
	if err != nil {
		return PetRow{}, fmt.Errorf("loading current pet of character %d: %w", ownerID, notFound(err))
	}
	return row, nil
}

// LoadStabled загружает питомцев в стойле, по номеру слота.
func (r *PetRepository) LoadStabled(ctx context.Context, ownerID int64) ([]PetRow, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+petColumns+` FROM character_pets
		 WHERE owner_id = $1 AND slot BETWEEN $2 AND $3
		 ORDER BY slot`,
		ownerID, int16(PetSlotStableMin), int16(PetSlotStableMax),
	)
	if err != nil {
		return nil, fmt.Errorf("querying stabled pets of character %d: %w", ownerID, err)
	}

	pets, err := pgx.CollectRows(rows, scanPet)
	if err != nil {
		return nil, fmt.Errorf("scanning stabled pets of character %d: %w", ownerID, err)
	}
	return pets, nil
}

// SetSlot перемещает питомца в слот.
func (r *PetRepository) SetSlot(ctx context.Context, petNumber uint32, slot uint8) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE character_pets SET slot = $1, updated_at = now() WHERE id = $2`,
		int16(slot), int64(petNumber),
	)
	if err != nil {
		return fmt.Errorf("moving pet %d to slot %d: %w", petNumber, slot, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("moving pet %d to slot %d: %w", petNumber, slot, ErrNotFound)
	}
	return nil
}

// Delete удаляет питомца.
func (r *PetRepository) Delete(ctx context.Context, petNumber uint32) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM character_pets WHERE id = $1`, int64(petNumber)); err != nil {
		return fmt.Errorf("deleting pet %d: %w", petNumber, err)
	}
	return nil
}

// MaxPetNumber returns the highest pet number in use, 0 if none.
func (r *PetRepository) MaxPetNumber(ctx context.Context) (uint32, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COALESCE(MAX(id), 0) FROM character_pets`).Scan(&n); err != nil {
		return 0, fmt.Errorf("querying max pet number: %w", err)
	}
	return uint32(n), nil
}

func scanPet(row pgx.CollectableRow) (PetRow, error) {
	var (
		p             PetRow
		number, entry int64
		petType, slot int16
	)
	err := row.Scan(&number, &p.OwnerID, &entry, &p.Name, &petType,
		&p.Level, &p.Happiness, &p.Scale, &p.CreatedBySpell, &slot)
	if err != nil {
		return PetRow{}, err
	}
	p.PetNumber = uint32(number)
	p.Entry = uint32(entry)
	p.PetType = model.PetType(petType)
	p.Slot = uint8(slot)
	return p, nil
}
