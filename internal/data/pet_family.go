package data

import (
	"fmt"
	"log/slog"
	"slices"
)

// PetFamily is a hunter pet family with its level-up spells.
type PetFamily struct {
	ID     uint32         `yaml:"id"`
	Name   string         `yaml:"name"`
	Exotic bool           `yaml:"exotic"`
	Spells []LevelupSpell `yaml:"spells"`
}

// LevelupSpell is learned by a pet on reaching Level.
type LevelupSpell struct {
	SpellID int32 `yaml:"spell"`
	Level   int32 `yaml:"level"`
}

// PetFamilyTable maps family id to family.
var PetFamilyTable map[uint32]*PetFamily

// GetPetFamily returns the family by id, nil if unknown.
func GetPetFamily(id uint32) *PetFamily {
	if PetFamilyTable == nil {
		return nil
	}
	return PetFamilyTable[id]
}

// LevelupSpells returns spells a pet of the family knows at level,
// in ascending level order.
func LevelupSpells(family uint32, level int32) []int32 {
	f := GetPetFamily(family)
	if f == nil {
		return nil
	}
	var spells []int32
	for _, s := range f.Spells {
		if s.Level <= level {
			spells = append(spells, s.SpellID)
		}
	}
	return spells
}

// LoadPetFamilies builds PetFamilyTable from pet_families.yaml.
func LoadPetFamilies() error {
	var file struct {
		Families []PetFamily `yaml:"families"`
	}
	if err := decodeYAML("pet_families.yaml", &file); err != nil {
		return err
	}

	table := make(map[uint32]*PetFamily, len(file.Families))
	for i := range file.Families {
		f := &file.Families[i]
		if f.ID == 0 {
			return fmt.Errorf("pet family %q: id 0 is reserved", f.Name)
		}
		if _, dup := table[f.ID]; dup {
			return fmt.Errorf("duplicate pet family %d", f.ID)
		}
		slices.SortStableFunc(f.Spells, func(a, b LevelupSpell) int {
			return int(a.Level - b.Level)
		})
		table[f.ID] = f
	}
	PetFamilyTable = table

	slog.Info("loaded pet families", "count", len(PetFamilyTable))
	return nil
}
