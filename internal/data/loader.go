package data

import (
	"embed"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"
)

//go:embed yaml/*.yaml
var yamlFS embed.FS

// decodeYAML decodes an embedded yaml file into v. Unknown fields are
// rejected so typos in data files fail at startup.
func decodeYAML(name string, v any) error {
	f, err := yamlFS.Open("yaml/" + name)
	if err != nil {
		return fmt.Errorf("opening %s: %w", name, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decoding %s: %w", name, err)
	}
	return nil
}

// LoadAll loads every data table. Call once at startup.
func LoadAll() error {
	loaders := []struct {
		name string
		fn   func() error
	}{
		{"creature templates", LoadCreatureTemplates},
		{"pet families", LoadPetFamilies},
		{"vendors", LoadVendors},
	}
	for _, l := range loaders {
		if err := l.fn(); err != nil {
			return fmt.Errorf("loading %s: %w", l.name, err)
		}
	}
	slog.Info("data tables loaded")
	return nil
}
