package commands

import (
	"context"
	"fmt"
	"io"
)

// Spells handles "spells <name>": lists the spellbook.
type Spells struct {
	world World
}

func NewSpells(w World) *Spells { return &Spells{world: w} }

func (c *Spells) Names() []string { return []string{"spells"} }
func (c *Spells) Usage() string   { return "spells <name>" }

func (c *Spells) Handle(ctx context.Context, out io.Writer, args []string) error {
	if len(args) != 2 {
		return usageError(c.Usage())
	}
	spells, err := c.world.Spells(ctx, args[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s knows %d spells: %v\n", args[1], len(spells), spells)
	return nil
}

// Learn handles "learn <name> <spell>".
type Learn struct {
	world World
}

func NewLearn(w World) *Learn { return &Learn{world: w} }

func (c *Learn) Names() []string { return []string{"learn"} }
func (c *Learn) Usage() string   { return "learn <name> <spell>" }

func (c *Learn) Handle(ctx context.Context, _ io.Writer, args []string) error {
	if len(args) != 3 {
		return usageError(c.Usage())
	}
	spellID, err := parseInt32("spell", args[2])
	if err != nil {
		return err
	}
	return c.world.Learn(ctx, args[1], spellID)
}

// Talent handles "talent <name> <spell>": learns a talent in the active spec.
type Talent struct {
	world World
}

func NewTalent(w World) *Talent { return &Talent{world: w} }

func (c *Talent) Names() []string { return []string{"talent"} }
func (c *Talent) Usage() string   { return "talent <name> <spell>" }

func (c *Talent) Handle(ctx context.Context, out io.Writer, args []string) error {
	if len(args) != 3 {
		return usageError(c.Usage())
	}
	spellID, err := parseInt32("spell", args[2])
	if err != nil {
		return err
	}
	if err := c.world.Talent(ctx, args[1], spellID); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s learned talent %d\n", args[1], spellID)
	return nil
}
