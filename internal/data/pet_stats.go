package data

import (
	"math"

	"github.com/udisondev/beastmaster/internal/model"
)

// Hunter pets gain talent points from this level.
const petTalentMinLevel = 20

// PetStatsForLevel computes pet stats at level from the template.
// Returns false for templates outside any pet family: the caller
// then recomputes stats from scratch.
func PetStatsForLevel(tmpl *CreatureTemplate, level int32) (model.PetStats, bool) {
	if tmpl == nil || !tmpl.IsTameable() {
		return model.PetStats{}, false
	}

	above := max(level-tmpl.MinLevel, 0)
	dmg := tmpl.DamagePerLevel * float64(above)

	return model.PetStats{
		MaxHealth: tmpl.Health + tmpl.HealthPerLevel*above,
		Armor:     tmpl.Armor + tmpl.ArmorPerLevel*above,
		MinDamage: int32(math.Round(tmpl.MinDamage + dmg)),
		MaxDamage: int32(math.Round(tmpl.MaxDamage + dmg)),
	}, true
}

// BaseStats are stats recomputed without level data: the template base
// values, or a flat per-level fallback for unknown templates.
func BaseStats(tmpl *CreatureTemplate, level int32) model.PetStats {
	if tmpl == nil {
		return model.PetStats{
			MaxHealth: 40 * level,
			Armor:     20 * level,
			MinDamage: max(level, 1),
			MaxDamage: max(level+level/2, 1),
		}
	}
	return model.PetStats{
		MaxHealth: tmpl.Health,
		Armor:     tmpl.Armor,
		MinDamage: int32(math.Round(tmpl.MinDamage)),
		MaxDamage: int32(math.Round(tmpl.MaxDamage)),
	}
}

// TalentPointsForLevel is the pet talent budget at level.
func TalentPointsForLevel(level int32) int32 {
	if level < petTalentMinLevel {
		return 0
	}
	return (level - 16) / 4
}
