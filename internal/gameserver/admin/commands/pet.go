package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/udisondev/beastmaster/internal/db"
)

// PetInfo handles "pet <name>": shows the active pet and the stable.
type PetInfo struct {
	world World
}

func NewPetInfo(w World) *PetInfo { return &PetInfo{world: w} }

func (c *PetInfo) Names() []string { return []string{"pet"} }
func (c *PetInfo) Usage() string   { return "pet <name>" }

func (c *PetInfo) Handle(ctx context.Context, out io.Writer, args []string) error {
	if len(args) != 2 {
		return usageError(c.Usage())
	}

	pet, err := c.world.Pet(ctx, args[1])
	if err != nil {
		return err
	}
	if pet == nil {
		fmt.Fprintf(out, "%s has no pet\n", args[1])
	} else {
		io.WriteString(out, formatPetInfo(pet))
	}

	rows, err := c.world.Stabled(ctx, args[1])
	if err != nil {
		return err
	}
	io.WriteString(out, formatStabled(rows))
	return nil
}

// Abandon handles "abandon <name>".
type Abandon struct {
	world World
}

func NewAbandon(w World) *Abandon { return &Abandon{world: w} }

func (c *Abandon) Names() []string { return []string{"abandon"} }
func (c *Abandon) Usage() string   { return "abandon <name>" }

func (c *Abandon) Handle(ctx context.Context, _ io.Writer, args []string) error {
	if len(args) != 2 {
		return usageError(c.Usage())
	}
	return c.world.Abandon(ctx, args[1])
}

// Stable handles "stable <name>": stables the active pet.
type Stable struct {
	world World
}

func NewStable(w World) *Stable { return &Stable{world: w} }

func (c *Stable) Names() []string { return []string{"stable"} }
func (c *Stable) Usage() string   { return "stable <name>" }

func (c *Stable) Handle(ctx context.Context, _ io.Writer, args []string) error {
	if len(args) != 2 {
		return usageError(c.Usage())
	}
	_, err := c.world.Stable(ctx, args[1])
	return err
}

// Unstable handles "unstable <name> <slot>".
type Unstable struct {
	world World
}

func NewUnstable(w World) *Unstable { return &Unstable{world: w} }

func (c *Unstable) Names() []string { return []string{"unstable"} }
func (c *Unstable) Usage() string   { return "unstable <name> <slot>" }

func (c *Unstable) Handle(ctx context.Context, out io.Writer, args []string) error {
	if len(args) != 3 {
		return usageError(c.Usage())
	}

	slot, err := strconv.ParseUint(args[2], 10, 8)
	if err != nil || uint8(slot) < db.PetSlotStableMin || uint8(slot) > db.PetSlotStableMax {
		return fmt.Errorf("slot must be between %d and %d, got %q", db.PetSlotStableMin, db.PetSlotStableMax, args[2])
	}
	if err := c.world.Unstable(ctx, args[1], uint8(slot)); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s took back the pet from slot %d\n", args[1], slot)
	return nil
}
