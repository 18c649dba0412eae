package admin

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"
)

// Command is a console command.
type Command interface {
	// Handle executes the command. args includes command name at [0].
	// Output for the operator goes to out.
	Handle(ctx context.Context, out io.Writer, args []string) error
	// Names returns all registered command names.
	Names() []string
	// Usage returns a one-line synopsis ("talk <name>").
	Usage() string
}

// Handler dispatches console commands.
// Thread-safe: commands are registered once at startup, then read-only.
type Handler struct {
	mu   sync.RWMutex
	cmds map[string]Command // name → Command (lowercase)
}

// NewHandler creates a new command handler.
func NewHandler() *Handler {
	return &Handler{
		cmds: make(map[string]Command, 32),
	}
}

// Register registers a command.
// All command names are lowercased for case-insensitive lookup.
func (h *Handler) Register(cmd Command) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, name := range cmd.Names() {
		h.cmds[strings.ToLower(name)] = cmd
	}
}

// HandleLine processes one console line.
// Returns true if a command was found and executed.
func (h *Handler) HandleLine(ctx context.Context, out io.Writer, line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false
	}
	cmdName := strings.ToLower(parts[0])

	h.mu.RLock()
	cmd, ok := h.cmds[cmdName]
	h.mu.RUnlock()

	if !ok {
		fmt.Fprintf(out, "Unknown command: %s (try help)\n", cmdName)
		return false
	}

	slog.Debug("console command", "command", line)

	if err := cmd.Handle(ctx, out, parts); err != nil {
		fmt.Fprintf(out, "Command error: %s\n", err)
		slog.Warn("console command failed",
			"command", line,
			"error", err)
	}
	return true
}

// Run reads commands from r until EOF or ctx is cancelled.
func (h *Handler) Run(ctx context.Context, r io.Reader, out io.Writer) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- sc.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					if err != nil {
						return fmt.Errorf("reading console: %w", err)
					}
				default:
				}
				return nil
			}
			h.HandleLine(ctx, out, line)
		}
	}
}

// Usages returns the synopsis of every command, sorted.
func (h *Handler) Usages() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	seen := make(map[Command]bool, len(h.cmds))
	out := make([]string, 0, len(h.cmds))
	for _, cmd := range h.cmds {
		if seen[cmd] {
			continue
		}
		seen[cmd] = true
		out = append(out, cmd.Usage())
	}
	slices.Sort(out)
	return out
}

// CommandCount returns number of registered command names.
func (h *Handler) CommandCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.cmds)
}
