package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/udisondev/beastmaster/internal/model"
)

// SetLevel handles "setlevel <name> <level>": changes a player's level.
type SetLevel struct {
	world World
}

func NewSetLevel(w World) *SetLevel { return &SetLevel{world: w} }

func (c *SetLevel) Names() []string { return []string{"setlevel", "set_level"} }
func (c *SetLevel) Usage() string   { return "setlevel <name> <level>" }

func (c *SetLevel) Handle(ctx context.Context, out io.Writer, args []string) error {
	if len(args) != 3 {
		return usageError(c.Usage())
	}

	level, err := parseInt32("level", args[2])
	if err != nil {
		return err
	}
	if level < 1 || level > model.MaxPlayerLevel {
		return fmt.Errorf("level must be between 1 and %d, got %d", model.MaxPlayerLevel, level)
	}

	if err := c.world.SetLevel(ctx, args[1], level); err != nil {
		return fmt.Errorf("set level: %w", err)
	}

	fmt.Fprintf(out, "Set %s level to %d\n", args[1], level)
	return nil
}
