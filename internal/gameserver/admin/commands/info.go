package commands

import (
	"fmt"
	"strings"

	"github.com/udisondev/beastmaster/internal/db"
	"github.com/udisondev/beastmaster/internal/model"
)

func formatPlayer(p *model.Player) string {
	s := fmt.Sprintf("%s (%s, level %d)", p.Name(), p.ClassID(), p.Level())
	if pet := p.Pet(); pet != nil {
		s += fmt.Sprintf(" with %s", pet.Name())
	}
	return s
}

func formatPetInfo(pet *model.Pet) string {
	var b strings.Builder
	stats := pet.Stats()

	b.WriteString("=== Pet ===\n")
	fmt.Fprintf(&b, "Name: %s (entry %d, #%d)\n", pet.Name(), pet.Entry(), pet.PetNumber())
	fmt.Fprintf(&b, "Type: %s  Level: %d  Scale: %.2f\n", pet.PetType(), pet.Level(), pet.Scale())
	fmt.Fprintf(&b, "Happiness: %d/%d\n", pet.Happiness(), model.MaxHappiness)
	fmt.Fprintf(&b, "Health: %d  Armor: %d  Damage: %d-%d\n", stats.MaxHealth, stats.Armor, stats.MinDamage, stats.MaxDamage)
	fmt.Fprintf(&b, "Talent points: %d\n", pet.TalentPoints())
	fmt.Fprintf(&b, "Spells: %v\n", pet.Spells())
	return b.String()
}

func formatStabled(rows []db.PetRow) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Stable: %d/%d\n", len(rows), db.PetSlotStableMax)
	for _, r := range rows {
		fmt.Fprintf(&b, "  slot %d: %s (level %d, #%d)\n", r.Slot, r.Name, r.Level, r.PetNumber)
	}
	return b.String()
}
