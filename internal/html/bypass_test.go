package html

import (
	"testing"

	"github.com/google/uuid"
)

func TestParseNpcBypass(t *testing.T) {
	tests := []struct {
		name      string
		bypass    string
		wantObjID uint32
		wantCmd   string
		wantArgs  int
		wantErr   bool
	}{
		{name: "close", bypass: "npc_12345_Close", wantObjID: 12345, wantCmd: CmdClose},
		{name: "gossip", bypass: "npc_99_Gossip 0b8c2f5e-3f3a-4c1e-9d55-1b2a3c4d5e6f 3", wantObjID: 99, wantCmd: CmdGossip, wantArgs: 2},
		{name: "extra spaces", bypass: "npc_99_Gossip   a    b", wantObjID: 99, wantCmd: CmdGossip, wantArgs: 2},
		{name: "not npc", bypass: "admin_reload", wantErr: true},
		{name: "no command", bypass: "npc_12", wantErr: true},
		{name: "bad object id", bypass: "npc_abc_Close", wantErr: true},
		{name: "unknown command", bypass: "npc_1_Shop", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cmd, err := ParseNpcBypass(tc.bypass)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseNpcBypass(%q) = %+v, want error", tc.bypass, cmd)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseNpcBypass(%q): %v", tc.bypass, err)
			}
			if cmd.ObjectID != tc.wantObjID {
				t.Errorf("ObjectID = %d, want %d", cmd.ObjectID, tc.wantObjID)
			}
			if cmd.Command != tc.wantCmd {
				t.Errorf("Command = %q, want %q", cmd.Command, tc.wantCmd)
			}
			if len(cmd.Args) != tc.wantArgs {
				t.Errorf("Args = %v, want %d args", cmd.Args, tc.wantArgs)
			}
		})
	}
}

func TestGossipBypass_RoundTrip(t *testing.T) {
	menuID := uuid.New()
	bypass := GossipBypass(0x20000001, menuID, 4)

	cmd, err := ParseNpcBypass(bypass)
	if err != nil {
		t.Fatalf("ParseNpcBypass(%q): %v", bypass, err)
	}
	gotMenu, gotIndex, err := cmd.GossipSelection()
	if err != nil {
		t.Fatalf("GossipSelection: %v", err)
	}
	if cmd.ObjectID != 0x20000001 || gotMenu != menuID || gotIndex != 4 {
		t.Errorf("got object %d menu %s index %d", cmd.ObjectID, gotMenu, gotIndex)
	}
}

func TestGossipSelection_Errors(t *testing.T) {
	tests := []struct {
		name string
		cmd  BypassCommand
	}{
		{"close command", BypassCommand{Command: CmdClose}},
		{"missing index", BypassCommand{Command: CmdGossip, Args: []string{uuid.NewString()}}},
		{"bad uuid", BypassCommand{Command: CmdGossip, Args: []string{"menu", "1"}}},
		{"bad index", BypassCommand{Command: CmdGossip, Args: []string{uuid.NewString(), "x"}}},
		{"negative index", BypassCommand{Command: CmdGossip, Args: []string{uuid.NewString(), "-1"}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := tc.cmd.GossipSelection(); err == nil {
				t.Error("expected error")
			}
		})
	}
}
