package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/beastmaster/internal/model"
)

// PlayerData is everything loaded for a character at login.
type PlayerData struct {
	Spells  []int32
	Talents map[uint8][]int32
	Pet     *PetRow // nil if no current pet
}

// PlayerPersistenceService сохраняет/загружает данные игрока.
type PlayerPersistenceService struct {
	pool      *pgxpool.Pool
	spellRepo *SpellRepository
	petRepo   *PetRepository
}

// NewPlayerPersistenceService создаёт новый сервис.
func NewPlayerPersistenceService(pool *pgxpool.Pool, spellRepo *SpellRepository, petRepo *PetRepository) *PlayerPersistenceService {
	return &PlayerPersistenceService{
		pool:      pool,
		spellRepo: spellRepo,
		petRepo:   petRepo,
	}
}

// SavePlayer saves level and spellbook in a single transaction.
func (s *PlayerPersistenceService) SavePlayer(ctx context.Context, player *model.Player) error {
	charID := player.CharacterID()

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction for character %d: %w", charID, err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && err.Error() != "tx is closed" {
			slog.Error("rollback failed", "characterID", charID, "error", err)
		}
	}()

	if _, err := tx.Exec(ctx,
		`UPDATE characters SET level = $1, active_spec = $2 WHERE id = $3`,
		player.Level(), int16(player.ActiveSpec()), charID,
	); err != nil {
		return fmt.Errorf("saving character %d: %w", charID, err)
	}

	if err := s.spellRepo.ReplaceTx(ctx, tx, charID, player.Spells()); err != nil {
		return fmt.Errorf("saving spells for character %d: %w", charID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction for character %d: %w", charID, err)
	}

	slog.Debug("player saved", "characterID", charID, "name", player.Name())
	return nil
}

// LoadPlayerData loads spells, talents and the current pet.
func (s *PlayerPersistenceService) LoadPlayerData(ctx context.Context, charID int64) (PlayerData, error) {
	spells, err := s.spellRepo.LoadByCharacterID(ctx, charID)
	if err != nil {
		return PlayerData{}, fmt.Errorf("loading spells: %w", err)
	}

	talents, err := s.spellRepo.LoadTalents(ctx, charID)
	if err != nil {
		return PlayerData{}, fmt.Errorf("loading talents: %w", err)
	}

	data := PlayerData{Spells: spells, Talents: talents}

	pet, err := s.petRepo.LoadCurrent(ctx, charID)
	switch {
	case err == nil:
		data.Pet = &pet
	case errors.Is(err, ErrNotFound):
	default:
		return PlayerData{}, fmt.Errorf("loading current pet: %w", err)
	}
	return data, nil
}
