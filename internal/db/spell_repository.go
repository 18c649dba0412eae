package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SpellRepository управляет спеллами и талантами персонажей в БД.
type SpellRepository struct {
	db *pgxpool.Pool
}

// NewSpellRepository создаёт новый SpellRepository.
func NewSpellRepository(db *pgxpool.Pool) *SpellRepository {
	return &SpellRepository{db: db}
}

// LoadByCharacterID загружает все спеллы персонажа.
func (r *SpellRepository) LoadByCharacterID(ctx context.Context, charID int64) ([]int32, error) {
	rows, err := r.db.Query(ctx,
		`SELECT spell_id FROM character_spells WHERE character_id = $1 ORDER BY spell_id`,
		charID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying spells for character %d: %w", charID, err)
	}

	spells, err := pgx.CollectRows(rows, pgx.RowTo[int32])
	if err != nil {
		return nil, fmt.Errorf("scanning spells for character %d: %w", charID, err)
	}
	return spells, nil
}

// Add сохраняет спелл. Повторное добавление: no-op.
func (r *SpellRepository) Add(ctx context.Context, charID int64, spellID int32) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO character_spells (character_id, spell_id) VALUES ($1, $2)
		 ON CONFLICT DO NOTHING`,
		charID, spellID,
	)
	if err != nil {
		return fmt.Errorf("adding spell %d to character %d: %w", spellID, charID, err)
	}
	return nil
}

// Delete удаляет спелл персонажа.
func (r *SpellRepository) Delete(ctx context.Context, charID int64, spellID int32) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM character_spells WHERE character_id = $1 AND spell_id = $2`,
		charID, spellID,
	)
	if err != nil {
		return fmt.Errorf("deleting spell %d of character %d: %w", spellID, charID, err)
	}
	return nil
}

// ReplaceTx перезаписывает все спеллы персонажа в транзакции.
func (r *SpellRepository) ReplaceTx(ctx context.Context, tx pgx.Tx, charID int64, spells []int32) error {
	if _, err := tx.Exec(ctx, `DELETE FROM character_spells WHERE character_id = $1`, charID); err != nil {
		return fmt.Errorf("deleting existing spells: %w", err)
	}
	if len(spells) == 0 {
		return nil
	}

	rows := make([][]any, len(spells))
	for i, id := range spells {
		rows[i] = []any{charID, id}
	}
	if _, err := tx.CopyFrom(ctx,
		pgx.Identifier{"character_spells"},
		[]string{"character_id", "spell_id"},
		pgx.CopyFromRows(rows),
	); err != nil {
		return fmt.Errorf("inserting spells: %w", err)
	}
	return nil
}

// LoadTalents загружает таланты персонажа по спекам.
func (r *SpellRepository) LoadTalents(ctx context.Context, charID int64) (map[uint8][]int32, error) {
	rows, err := r.db.Query(ctx,
		`SELECT spec, spell_id FROM character_talents WHERE character_id = $1 ORDER BY spec, spell_id`,
		charID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying talents for character %d: %w", charID, err)
	}
	defer rows.Close()

	talents := make(map[uint8][]int32, 2)
	for rows.Next() {
		var (
			spec    int16
			spellID int32
		)
		if err := rows.Scan(&spec, &spellID); err != nil {
			return nil, fmt.Errorf("scanning talent row: %w", err)
		}
		talents[uint8(spec)] = append(talents[uint8(spec)], spellID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating talent rows: %w", err)
	}
	return talents, nil
}

// AddTalent сохраняет талант в спеке.
func (r *SpellRepository) AddTalent(ctx context.Context, charID int64, spec uint8, spellID int32) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO character_talents (character_id, spec, spell_id) VALUES ($1, $2, $3)
		 ON CONFLICT DO NOTHING`,
		charID, int16(spec), spellID,
	)
	if err != nil {
		return fmt.Errorf("adding talent %d to character %d: %w", spellID, charID, err)
	}
	return nil
}
