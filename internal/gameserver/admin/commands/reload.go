package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/udisondev/beastmaster/internal/gameserver/admin"
)

// Reload handles "reload": re-runs script config hooks.
type Reload struct {
	world World
}

func NewReload(w World) *Reload { return &Reload{world: w} }

func (c *Reload) Names() []string { return []string{"reload"} }
func (c *Reload) Usage() string   { return "reload" }

func (c *Reload) Handle(ctx context.Context, out io.Writer, _ []string) error {
	if err := c.world.Reload(ctx); err != nil {
		return err
	}
	fmt.Fprintln(out, "Config reload dispatched")
	return nil
}

// Help handles "help": lists commands.
type Help struct {
	handler *admin.Handler
}

func NewHelp(h *admin.Handler) *Help { return &Help{handler: h} }

func (c *Help) Names() []string { return []string{"help", "?"} }
func (c *Help) Usage() string   { return "help" }

func (c *Help) Handle(_ context.Context, out io.Writer, _ []string) error {
	for _, u := range c.handler.Usages() {
		fmt.Fprintf(out, "  %s\n", u)
	}
	return nil
}
