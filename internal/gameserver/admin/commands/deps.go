package commands

import (
	"context"

	"github.com/udisondev/beastmaster/internal/db"
	"github.com/udisondev/beastmaster/internal/model"
)

// World is the engine surface console commands drive.
// Interface to avoid import cycle with gameserver package.
type World interface {
	// Login loads or creates a character and enters it into the world.
	Login(ctx context.Context, name string, classID model.ClassID, level int32) (*model.Player, bool, error)
	Logout(ctx context.Context, name string) error
	// Players returns online players ordered by name.
	Players() []*model.Player

	Talk(ctx context.Context, name string) error
	Select(ctx context.Context, name string, index int) error
	Bypass(ctx context.Context, name, bypass string) error

	// Pet returns the active pet, nil if none.
	Pet(ctx context.Context, name string) (*model.Pet, error)
	Stabled(ctx context.Context, name string) ([]db.PetRow, error)
	Abandon(ctx context.Context, name string) error
	Stable(ctx context.Context, name string) (uint8, error)
	Unstable(ctx context.Context, name string, slot uint8) error

	SetLevel(ctx context.Context, name string, level int32) error
	Spells(ctx context.Context, name string) ([]int32, error)
	Learn(ctx context.Context, name string, spellID int32) error
	Talent(ctx context.Context, name string, spellID int32) error

	// Reload re-reads script configuration.
	Reload(ctx context.Context) error
}
