package gameserver

import (
	"github.com/udisondev/beastmaster/internal/gameserver/admin"
	"github.com/udisondev/beastmaster/internal/gameserver/admin/commands"
)

var _ commands.World = (*Engine)(nil)

// NewConsole builds the operator console driving e.
func NewConsole(e *Engine) *admin.Handler {
	h := admin.NewHandler()
	commands.RegisterAll(h, e)
	return h
}
