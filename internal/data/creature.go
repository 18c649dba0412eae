package data

import (
	"fmt"
	"log/slog"
)

// CreatureTemplate is a creature definition from creatures.yaml.
type CreatureTemplate struct {
	Entry    uint32 `yaml:"entry"`
	Name     string `yaml:"name"`
	SubName  string `yaml:"sub_name"`
	Family   uint32 `yaml:"family"` // pet family, 0 for non-beasts
	Exotic   bool   `yaml:"exotic"`
	Rare     bool   `yaml:"rare"`
	MinLevel int32  `yaml:"min_level"`
	MaxLevel int32  `yaml:"max_level"`

	Health         int32   `yaml:"health"`
	HealthPerLevel int32   `yaml:"health_per_level"`
	Armor          int32   `yaml:"armor"`
	ArmorPerLevel  int32   `yaml:"armor_per_level"`
	MinDamage      float64 `yaml:"min_damage"`
	MaxDamage      float64 `yaml:"max_damage"`
	DamagePerLevel float64 `yaml:"damage_per_level"`
}

// IsTameable reports whether the creature belongs to a pet family.
func (t *CreatureTemplate) IsTameable() bool {
	return t.Family != 0
}

// CreatureTable maps entry to template.
var CreatureTable map[uint32]*CreatureTemplate

// GetCreatureTemplate returns the template by entry, nil if unknown.
func GetCreatureTemplate(entry uint32) *CreatureTemplate {
	if CreatureTable == nil {
		return nil
	}
	return CreatureTable[entry]
}

// LoadCreatureTemplates builds CreatureTable from creatures.yaml.
func LoadCreatureTemplates() error {
	var file struct {
		Creatures []CreatureTemplate `yaml:"creatures"`
	}
	if err := decodeYAML("creatures.yaml", &file); err != nil {
		return err
	}

	table := make(map[uint32]*CreatureTemplate, len(file.Creatures))
	for i := range file.Creatures {
		c := &file.Creatures[i]
		if _, dup := table[c.Entry]; dup {
			return fmt.Errorf("duplicate creature entry %d", c.Entry)
		}
		if c.MaxLevel < c.MinLevel {
			return fmt.Errorf("creature %d: max_level %d below min_level %d", c.Entry, c.MaxLevel, c.MinLevel)
		}
		table[c.Entry] = c
	}
	CreatureTable = table

	slog.Info("loaded creature templates", "count", len(CreatureTable))
	return nil
}
