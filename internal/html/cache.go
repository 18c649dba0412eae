// Package html renders gossip dialogs: text templates by text id, menu
// items as bypass links, and parsing of bypass strings sent back.
package html

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"strings"
	"text/template"
)

const maxHTMLFileSize = 8192

// DialogData is a flexible key→value map for template substitution.
// Common keys: "npcname", "name" (player), "objectId".
type DialogData map[string]any

// Cache holds compiled gossip templates keyed by slash path relative to
// the html root ("gossip/601026.htm"). Read-only after construction.
type Cache struct {
	templates map[string]*template.Template
}

// NewCache loads every .htm file under htmlDir. A missing directory
// yields an empty cache and built-in dialogs.
func NewCache(htmlDir string) (*Cache, error) {
	info, err := os.Stat(htmlDir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		slog.Warn("html directory does not exist, using built-in dialogs", "dir", htmlDir)
		return &Cache{templates: map[string]*template.Template{}}, nil
	case err != nil:
		return nil, fmt.Errorf("stat html dir: %w", err)
	case !info.IsDir():
		return nil, fmt.Errorf("html dir is not a directory: %s", htmlDir)
	}
	return NewCacheFS(os.DirFS(htmlDir))
}

// NewCacheFS loads every .htm file of fsys. Broken or oversized files are
// logged and skipped.
func NewCacheFS(fsys fs.FS) (*Cache, error) {
	c := &Cache{templates: make(map[string]*template.Template)}

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(path.Ext(p), ".htm") {
			return nil
		}
		tmpl, err := compile(fsys, p)
		if err != nil {
			slog.Warn("skipping gossip template", "path", p, "error", err)
			return nil
		}
		c.templates[p] = tmpl
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking html dir: %w", err)
	}

	slog.Debug("gossip templates loaded", "count", len(c.templates))
	return c, nil
}

func compile(fsys fs.FS, p string) (*template.Template, error) {
	info, err := fs.Stat(fsys, p)
	if err != nil {
		return nil, err
	}
	if info.Size() > maxHTMLFileSize {
		return nil, fmt.Errorf("file too large (%d bytes, max %d)", info.Size(), maxHTMLFileSize)
	}
	raw, err := fs.ReadFile(fsys, p)
	if err != nil {
		return nil, err
	}
	// missingkey=zero: неизвестные ключи рендерятся пустыми
	return template.New(p).Option("missingkey=zero").Parse(string(raw))
}

// Exists reports whether a template is loaded for p.
func (c *Cache) Exists(p string) bool {
	_, ok := c.templates[p]
	return ok
}

// Execute renders the template at p.
func (c *Cache) Execute(p string, data DialogData) (string, error) {
	tmpl, ok := c.templates[p]
	if !ok {
		return "", fmt.Errorf("template not found: %s", p)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any(data)); err != nil {
		return "", fmt.Errorf("executing template %s: %w", p, err)
	}
	return buf.String(), nil
}

// Len returns the number of loaded templates.
func (c *Cache) Len() int {
	return len(c.templates)
}
