package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func TestConf_LoadMore_Parse(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "npc_beastmaster.conf.dist", `
# BeastMaster settings
BeastMaster.Announce = 1
BeastMaster.HunterOnly=0
BeastMaster.PetScale = 2
BeastMaster.PetsPage1 = "Bat,28233,Bear,29319"
   # indented comment
BeastMaster.Empty =
`)

	c := NewConf()
	if err := c.LoadMore(path); err != nil {
		t.Fatalf("LoadMore: %v", err)
	}

	if !c.GetBoolDefault("BeastMaster.Announce", false) {
		t.Error("Announce: want true")
	}
	if c.GetBoolDefault("BeastMaster.HunterOnly", true) {
		t.Error("HunterOnly: want false")
	}
	if got := c.GetIntDefault("BeastMaster.PetScale", 1); got != 2 {
		t.Errorf("PetScale = %d, want 2", got)
	}
	if got := c.GetStringDefault("BeastMaster.PetsPage1", ""); got != "Bat,28233,Bear,29319" {
		t.Errorf("PetsPage1 = %q, want unquoted list", got)
	}
	if got := c.GetStringDefault("BeastMaster.Empty", "x"); got != "" {
		t.Errorf("Empty = %q, want empty string (present key)", got)
	}
	if got := c.GetStringDefault("BeastMaster.Missing", "def"); got != "def" {
		t.Errorf("Missing = %q, want default", got)
	}
}

func TestConf_LaterFileOverrides(t *testing.T) {
	dir := t.TempDir()
	dist := writeFile(t, dir, "a.conf.dist", "K.A = 1\nK.B = dist\n")
	site := writeFile(t, dir, "a.conf", "K.B = site\n")

	c := NewConf()
	if err := c.LoadMore(dist); err != nil {
		t.Fatalf("LoadMore dist: %v", err)
	}
	if err := c.LoadMore(site); err != nil {
		t.Fatalf("LoadMore site: %v", err)
	}

	if got := c.GetStringDefault("K.B", ""); got != "site" {
		t.Errorf("K.B = %q, want site", got)
	}
	if got := c.GetStringDefault("K.A", ""); got != "1" {
		t.Errorf("K.A = %q, want 1 (kept from dist)", got)
	}
	if files := c.Files(); len(files) != 2 || files[1] != site {
		t.Errorf("Files() = %v", files)
	}
}

func TestConf_LoadMore_Errors(t *testing.T) {
	dir := t.TempDir()
	c := NewConf()

	if err := c.LoadMore(filepath.Join(dir, "missing.conf")); err == nil {
		t.Error("expected error for missing file")
	} else if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}

	bad := writeFile(t, dir, "bad.conf", "K.A = 1\nK.B = \\u12zz\n")
	if err := c.LoadMore(bad); err == nil {
		t.Error("expected parse error")
	}
	if _, ok := c.lookup("K.A"); ok {
		t.Error("a file with a parse error must not be partially merged")
	}
	if len(c.Files()) != 0 {
		t.Errorf("Files() = %v, want none", c.Files())
	}
}

func TestConf_ValuesAreNotExpanded(t *testing.T) {
	path := writeFile(t, t.TempDir(), "x.conf", "K.A = ${K.B}\nK.B = \"quoted value\"  \n")

	c := NewConf()
	if err := c.LoadMore(path); err != nil {
		t.Fatalf("LoadMore: %v", err)
	}
	if got := c.GetStringDefault("K.A", ""); got != "${K.B}" {
		t.Errorf("K.A = %q, want literal ${K.B}", got)
	}
	if got := c.GetStringDefault("K.B", ""); got != "quoted value" {
		t.Errorf("K.B = %q, want unquoted", got)
	}
}

func TestConf_GetBoolDefault(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{"yes", true},
		{"0", false},
		{"false", false},
		{"no", false},
		{"2", false},
		{"", false},
	}
	for _, tt := range tests {
		c := NewConf()
		c.Set("K", tt.value)
		if got := c.GetBoolDefault("K", !tt.want); got != tt.want {
			t.Errorf("GetBoolDefault(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestConf_GetIntDefault_Invalid(t *testing.T) {
	c := NewConf()
	c.Set("K", "abc")
	if got := c.GetIntDefault("K", 7); got != 7 {
		t.Errorf("GetIntDefault(abc) = %d, want default 7", got)
	}
	c.Set("K", " -3 ")
	if got := c.GetIntDefault("K", 7); got != -3 {
		t.Errorf("GetIntDefault(-3) = %d, want -3", got)
	}
}
