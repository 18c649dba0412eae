package gameserver

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/beastmaster/internal/db"
	"github.com/udisondev/beastmaster/internal/model"
)

// CharacterStore loads and updates characters.
// Satisfied by *db.CharacterRepository and the memory store.
type CharacterStore interface {
	LoadOrCreate(ctx context.Context, name string, classID model.ClassID, level int32, factionID uint32) (db.CharacterRow, bool, error)
	UpdateLevel(ctx context.Context, characterID int64, level int32) error
}

// SpellStore persists spellbooks and talents.
// Satisfied by *db.SpellRepository and the memory store.
type SpellStore interface {
	LoadByCharacterID(ctx context.Context, charID int64) ([]int32, error)
	Add(ctx context.Context, charID int64, spellID int32) error
	Delete(ctx context.Context, charID int64, spellID int32) error
	LoadTalents(ctx context.Context, charID int64) (map[uint8][]int32, error)
	AddTalent(ctx context.Context, charID int64, spec uint8, spellID int32) error
}

// PetStore persists pets. Satisfied by *db.PetRepository and the
// memory store.
type PetStore interface {
	Save(ctx context.Context, p db.PetRow) error
	LoadCurrent(ctx context.Context, ownerID int64) (db.PetRow, error)
	LoadStabled(ctx context.Context, ownerID int64) ([]db.PetRow, error)
	SetSlot(ctx context.Context, petNumber uint32, slot uint8) error
	Delete(ctx context.Context, petNumber uint32) error
	MaxPetNumber(ctx context.Context) (uint32, error)
}

// PlayerPersister loads a player at login and saves it on logout and
// shutdown. Satisfied by *db.PlayerPersistenceService and the memory store.
type PlayerPersister interface {
	LoadPlayerData(ctx context.Context, charID int64) (db.PlayerData, error)
	SavePlayer(ctx context.Context, player *model.Player) error
}

// Stores bundles the persistence backends the engine uses.
type Stores struct {
	Characters CharacterStore
	Spells     SpellStore
	Pets       PetStore
	Players    PlayerPersister
}

// DBStores builds stores backed by PostgreSQL.
func DBStores(pool *pgxpool.Pool) Stores {
	spells := db.NewSpellRepository(pool)
	pets := db.NewPetRepository(pool)
	return Stores{
		Characters: db.NewCharacterRepository(pool),
		Spells:     spells,
		Pets:       pets,
		Players:    db.NewPlayerPersistenceService(pool, spells, pets),
	}
}
