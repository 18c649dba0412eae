package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/udisondev/beastmaster/internal/model"
)

// Login handles "login <name> <class> <level>".
// Class is a name ("hunter") or id (3).
type Login struct {
	world World
}

func NewLogin(w World) *Login { return &Login{world: w} }

func (c *Login) Names() []string { return []string{"login"} }
func (c *Login) Usage() string   { return "login <name> <class> <level>" }

func (c *Login) Handle(ctx context.Context, out io.Writer, args []string) error {
	if len(args) != 4 {
		return usageError(c.Usage())
	}

	classID, ok := model.ParseClass(args[2])
	if !ok {
		return fmt.Errorf("unknown class %q", args[2])
	}
	level, err := parseInt32("level", args[3])
	if err != nil {
		return err
	}
	if level < 1 || level > model.MaxPlayerLevel {
		return fmt.Errorf("level must be between 1 and %d, got %d", model.MaxPlayerLevel, level)
	}

	player, created, err := c.world.Login(ctx, args[1], classID, level)
	if err != nil {
		return err
	}

	verb := "Welcome back"
	if created {
		verb = "Created"
	}
	fmt.Fprintf(out, "%s %s\n", verb, formatPlayer(player))
	return nil
}

// Logout handles "logout <name>".
type Logout struct {
	world World
}

func NewLogout(w World) *Logout { return &Logout{world: w} }

func (c *Logout) Names() []string { return []string{"logout"} }
func (c *Logout) Usage() string   { return "logout <name>" }

func (c *Logout) Handle(ctx context.Context, out io.Writer, args []string) error {
	if len(args) != 2 {
		return usageError(c.Usage())
	}
	if err := c.world.Logout(ctx, args[1]); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s logged out\n", args[1])
	return nil
}

// Who handles "who": lists online players.
type Who struct {
	world World
}

func NewWho(w World) *Who { return &Who{world: w} }

func (c *Who) Names() []string { return []string{"who", "online"} }
func (c *Who) Usage() string   { return "who" }

func (c *Who) Handle(_ context.Context, out io.Writer, _ []string) error {
	players := c.world.Players()
	fmt.Fprintf(out, "Online: %d players\n", len(players))
	for _, p := range players {
		fmt.Fprintf(out, "  %s\n", formatPlayer(p))
	}
	return nil
}
