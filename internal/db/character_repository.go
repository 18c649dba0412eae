package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/beastmaster/internal/model"
)

// CharacterRepository управляет персонажами в БД.
type CharacterRepository struct {
	db *pgxpool.Pool
}

// NewCharacterRepository создаёт новый CharacterRepository.
func NewCharacterRepository(db *pgxpool.Pool) *CharacterRepository {
	return &CharacterRepository{db: db}
}

// LoadOrCreate returns the character by name, creating it with the
// given class, level and faction when absent. created reports whether
// a new row was inserted. Class and level of an existing character are
// kept as stored.
func (r *CharacterRepository) LoadOrCreate(ctx context.Context, name string, classID model.ClassID, level int32, factionID uint32) (row CharacterRow, created bool, err error) {
	// ON CONFLICT DO NOTHING защищает от гонки двух одновременных логинов.
	tag, err := r.db.Exec(ctx,
		`INSERT INTO characters (name, class_id, level, faction_id)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (name) DO NOTHING`,
		name, int16(classID), level, int64(factionID),
	)
	if err != nil {
		return CharacterRow{}, false, fmt.Errorf("creating character %q: %w", name, err)
	}

	row, err = r.LoadByName(ctx, name)
	if err != nil {
		return CharacterRow{}, false, err
	}
	return row, tag.RowsAffected() == 1, nil
}

// LoadByName загружает персонажа по имени.
// Returns ErrNotFound if absent.
func (r *CharacterRepository) LoadByName(ctx context.Context, name string) (CharacterRow, error) {
	var (
		row       CharacterRow
		classID   int16
		factionID int64
		spec      int16
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, name, class_id, level, faction_id, active_spec
		 FROM characters WHERE name = $1`, name,
	).Scan(&row.ID, &row.Name, &classID, &row.Level, &factionID, &spec)
	if err != nil {
		return CharacterRow{}, fmt.Errorf("loading character %q: %w", name, notFound(err))
	}

	row.ClassID = model.ClassID(classID)
	row.FactionID = uint32(factionID)
	row.ActiveSpec = uint8(spec)
	return row, nil
}

// UpdateLevel сохраняет уровень персонажа.
func (r *CharacterRepository) UpdateLevel(ctx context.Context, characterID int64, level int32) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE characters SET level = $1 WHERE id = $2`,
		level, characterID,
	)
	if err != nil {
		return fmt.Errorf("updating level of character %d: %w", characterID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("updating level of character %d: %w", characterID, ErrNotFound)
	}
	return nil
}
