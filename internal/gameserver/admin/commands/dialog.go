package commands

import (
	"context"
	"io"
	"strconv"
	"strings"
)

// Talk handles "talk <name>": opens the beastmaster dialog.
type Talk struct {
	world World
}

func NewTalk(w World) *Talk { return &Talk{world: w} }

func (c *Talk) Names() []string { return []string{"talk", "gossip"} }
func (c *Talk) Usage() string   { return "talk <name>" }

func (c *Talk) Handle(ctx context.Context, _ io.Writer, args []string) error {
	if len(args) != 2 {
		return usageError(c.Usage())
	}
	return c.world.Talk(ctx, args[1])
}

// Select handles "select <name> <index>": picks a menu item.
type Select struct {
	world World
}

func NewSelect(w World) *Select { return &Select{world: w} }

func (c *Select) Names() []string { return []string{"select", "sel"} }
func (c *Select) Usage() string   { return "select <name> <index>" }

func (c *Select) Handle(ctx context.Context, _ io.Writer, args []string) error {
	if len(args) != 3 {
		return usageError(c.Usage())
	}
	index, err := strconv.Atoi(args[2])
	if err != nil {
		return usageError(c.Usage())
	}
	return c.world.Select(ctx, args[1], index)
}

// Bypass handles "bypass <name> <bypass...>": replays a raw menu link.
type Bypass struct {
	world World
}

func NewBypass(w World) *Bypass { return &Bypass{world: w} }

func (c *Bypass) Names() []string { return []string{"bypass"} }
func (c *Bypass) Usage() string   { return "bypass <name> <npc_<id>_Gossip <menu> <index>>" }

func (c *Bypass) Handle(ctx context.Context, _ io.Writer, args []string) error {
	if len(args) < 3 {
		return usageError(c.Usage())
	}
	return c.world.Bypass(ctx, args[1], strings.Join(args[2:], " "))
}
