package admin

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

// mockCmd is a test console command.
type mockCmd struct {
	names       []string
	err         error
	handleCalls int
	lastArgs    []string
}

func (c *mockCmd) Names() []string { return c.names }
func (c *mockCmd) Usage() string   { return c.names[0] + " <arg>" }
func (c *mockCmd) Handle(_ context.Context, out io.Writer, args []string) error {
	c.handleCalls++
	c.lastArgs = args
	if c.err != nil {
		return c.err
	}
	_, err := io.WriteString(out, "ok: "+args[0]+"\n")
	return err
}

func TestHandler_RegisterAndCount(t *testing.T) {
	h := NewHandler()
	if h.CommandCount() != 0 {
		t.Errorf("CommandCount = %d, want 0", h.CommandCount())
	}

	h.Register(&mockCmd{names: []string{"test", "test2"}})
	if h.CommandCount() != 2 {
		t.Errorf("CommandCount = %d, want 2 (two aliases)", h.CommandCount())
	}
	if got := h.Usages(); len(got) != 1 {
		t.Errorf("Usages() = %v, want one entry per command", got)
	}
}

func TestHandler_HandleLine_Success(t *testing.T) {
	h := NewHandler()
	cmd := &mockCmd{names: []string{"talk"}}
	h.Register(cmd)

	var out bytes.Buffer
	if !h.HandleLine(context.Background(), &out, "  TALK   Rexxar ") {
		t.Fatal("HandleLine returned false, want true")
	}
	if cmd.handleCalls != 1 {
		t.Errorf("handleCalls = %d, want 1", cmd.handleCalls)
	}
	if len(cmd.lastArgs) != 2 || cmd.lastArgs[1] != "Rexxar" {
		t.Errorf("lastArgs = %v, want [TALK Rexxar]", cmd.lastArgs)
	}
	if out.String() != "ok: TALK\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestHandler_HandleLine_Unknown(t *testing.T) {
	h := NewHandler()

	var out bytes.Buffer
	if h.HandleLine(context.Background(), &out, "nonexistent") {
		t.Error("HandleLine returned true for unknown command")
	}
	if !strings.Contains(out.String(), "Unknown command: nonexistent") {
		t.Errorf("output = %q, want unknown command message", out.String())
	}
}

func TestHandler_HandleLine_Empty(t *testing.T) {
	h := NewHandler()

	var out bytes.Buffer
	if h.HandleLine(context.Background(), &out, "   ") {
		t.Error("HandleLine returned true for empty line")
	}
	if out.Len() != 0 {
		t.Errorf("output = %q, want nothing", out.String())
	}
}

func TestHandler_HandleLine_Error(t *testing.T) {
	h := NewHandler()
	h.Register(&mockCmd{names: []string{"fail"}, err: errors.New("boom")})

	var out bytes.Buffer
	if !h.HandleLine(context.Background(), &out, "fail") {
		t.Error("HandleLine returned false for failing command")
	}
	if !strings.Contains(out.String(), "Command error: boom") {
		t.Errorf("output = %q, want error message", out.String())
	}
}

func TestHandler_Run_ReadsUntilEOF(t *testing.T) {
	h := NewHandler()
	cmd := &mockCmd{names: []string{"who"}}
	h.Register(cmd)

	var out bytes.Buffer
	in := strings.NewReader("who\n\nwho extra\nbogus\n")
	if err := h.Run(context.Background(), in, &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if cmd.handleCalls != 2 {
		t.Errorf("handleCalls = %d, want 2", cmd.handleCalls)
	}
	if !strings.Contains(out.String(), "Unknown command: bogus") {
		t.Errorf("output = %q", out.String())
	}
}

func TestHandler_Run_StopsOnCancel(t *testing.T) {
	h := NewHandler()
	r, w := io.Pipe()
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- h.Run(ctx, r, io.Discard) }()

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Run after cancel = %v, want nil", err)
	}
}
