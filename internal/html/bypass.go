package html

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// BypassCommand represents a parsed NPC bypass command.
// Format: "npc_<objectID>_<command> [args...]"
type BypassCommand struct {
	ObjectID uint32
	Command  string   // "Gossip", "Close"
	Args     []string // arguments after space in command part
}

const (
	CmdGossip = "Gossip"
	CmdClose  = "Close"
)

// allowedCommands is a whitelist of valid NPC bypass commands.
var allowedCommands = map[string]bool{
	CmdGossip: true,
	CmdClose:  true,
}

// ParseNpcBypass parses a bypass string in format "npc_<objectID>_<command> [args...]".
func ParseNpcBypass(bypass string) (*BypassCommand, error) {
	if !strings.HasPrefix(bypass, "npc_") {
		return nil, fmt.Errorf("not an NPC bypass: %s", bypass)
	}

	// Split "npc_<objectID>_<command> args" into ["npc", "<objectID>", "<command> args"]
	parts := strings.SplitN(bypass, "_", 3)
	if len(parts) < 3 {
		return nil, fmt.Errorf("malformed NPC bypass: %s", bypass)
	}

	objectID, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid objectID in bypass %q: %w", bypass, err)
	}

	cmdName, rest, _ := strings.Cut(parts[2], " ")
	if !allowedCommands[cmdName] {
		return nil, fmt.Errorf("unknown bypass command: %s", cmdName)
	}

	return &BypassCommand{
		ObjectID: uint32(objectID),
		Command:  cmdName,
		Args:     strings.Fields(rest),
	}, nil
}

// GossipSelection extracts menu id and item index from a Gossip bypass.
func (b *BypassCommand) GossipSelection() (uuid.UUID, int, error) {
	if b.Command != CmdGossip {
		return uuid.Nil, 0, fmt.Errorf("not a gossip bypass: %s", b.Command)
	}
	if len(b.Args) != 2 {
		return uuid.Nil, 0, fmt.Errorf("gossip bypass wants <menu> <index>, got %d args", len(b.Args))
	}

	menuID, err := uuid.Parse(b.Args[0])
	if err != nil {
		return uuid.Nil, 0, fmt.Errorf("invalid menu id %q: %w", b.Args[0], err)
	}
	index, err := strconv.Atoi(b.Args[1])
	if err != nil || index < 0 {
		return uuid.Nil, 0, fmt.Errorf("invalid item index %q", b.Args[1])
	}
	return menuID, index, nil
}

// GossipBypass builds the bypass selecting item index of menu menuID.
func GossipBypass(npcObjectID uint32, menuID uuid.UUID, index int) string {
	return fmt.Sprintf("npc_%d_%s %s %d", npcObjectID, CmdGossip, menuID, index)
}

// CloseBypass builds the bypass closing the dialog.
func CloseBypass(npcObjectID uint32) string {
	return fmt.Sprintf("npc_%d_%s", npcObjectID, CmdClose)
}
