package config

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/magiconair/properties"
)

// Conf is the key=value settings store shared by server scripts.
// Files are merged in load order: a key from a later file replaces
// the same key from an earlier one.
//
// Line format:
//
//	# comment
//	BeastMaster.Announce = 1
//	BeastMaster.PetsPage1 = "Bat,28233,Bear,29319"
type Conf struct {
	mu    sync.RWMutex
	props *properties.Properties
	files []string
}

// NewConf creates an empty store.
func NewConf() *Conf {
	p := properties.NewProperties()
	p.DisableExpansion = true
	return &Conf{props: p}
}

// LoadMore merges a .conf file into the store. A file that fails to
// parse is not merged at all.
func (c *Conf) LoadMore(path string) error {
	loader := properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	parsed, err := loader.LoadFile(path)
	if err != nil {
		return fmt.Errorf("loading conf %s: %w", path, err)
	}

	c.mu.Lock()
	c.props.Merge(parsed)
	c.files = append(c.files, path)
	c.mu.Unlock()

	slog.Debug("conf loaded", "path", path, "keys", parsed.Len())
	return nil
}

// Set stores a value directly (tests, console overrides).
func (c *Conf) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	// без expansion Set не возвращает ошибок
	_, _, _ = c.props.Set(key, value)
}

// Files returns loaded file paths in load order.
func (c *Conf) Files() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.files...)
}

// lookup returns the value of key with surrounding quotes removed.
func (c *Conf) lookup(key string) (string, bool) {
	c.mu.RLock()
	v, ok := c.props.Get(key)
	c.mu.RUnlock()
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	if len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"' {
		v = v[1 : len(v)-1]
	}
	return v, true
}

// GetStringDefault returns the unquoted value of key or def if absent.
func (c *Conf) GetStringDefault(key, def string) string {
	if v, ok := c.lookup(key); ok {
		return v
	}
	return def
}

// GetBoolDefault interprets 1/true/yes (any case) as true.
// Any other present value is false.
func (c *Conf) GetBoolDefault(key string, def bool) bool {
	v, ok := c.lookup(key)
	if !ok {
		return def
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

// GetIntDefault returns key as int, or def if absent or not a number.
func (c *Conf) GetIntDefault(key string, def int) int {
	v, ok := c.lookup(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("conf value is not an integer, using default",
			"key", key,
			"value", v,
			"default", def)
		return def
	}
	return n
}
