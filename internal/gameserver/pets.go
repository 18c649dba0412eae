package gameserver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/udisondev/beastmaster/internal/db"
	"github.com/udisondev/beastmaster/internal/model"
)

// summonPet restores a stored pet as the player's active pet.
func (e *Engine) summonPet(player *model.Player, row db.PetRow) *model.Pet {
	pet := model.NewPet(e.ids.NextPetID(), player.ObjectID(), row.Entry, row.Name, row.PetType, row.Level)
	pet.SetPetNumber(row.PetNumber)
	pet.SetCreatedBy(player.ObjectID())
	pet.SetCreatedBySpell(row.CreatedBySpell)
	pet.SetFactionID(player.FactionID())
	pet.SetHappiness(row.Happiness)
	pet.SetScale(row.Scale)

	if !e.InitStatsForLevel(pet, row.Level) {
		e.UpdateAllStats(pet)
	}
	e.InitTalentForLevel(pet)
	e.InitLevelupSpellsForLevel(pet)

	e.AddToMap(pet)
	player.SetPet(pet)
	e.PetSpellInitialize(player)
	return pet
}

// dismissPet unbinds the active pet and removes it from the world.
func (e *Engine) dismissPet(player *model.Player) *model.Pet {
	pet := player.ClearPet()
	if pet != nil {
		e.world.RemoveObject(pet.ObjectID())
	}
	return pet
}

// Pet returns the player's active pet, nil if none.
func (e *Engine) Pet(ctx context.Context, name string) (*model.Pet, error) {
	var pet *model.Pet
	err := e.withSession(ctx, name, func(s *Session) error {
		pet = s.player.Pet()
		return nil
	})
	return pet, err
}

// Stabled returns the player's stabled pets ordered by slot.
func (e *Engine) Stabled(ctx context.Context, name string) ([]db.PetRow, error) {
	var rows []db.PetRow
	err := e.withSession(ctx, name, func(s *Session) error {
		rows = append(rows, s.stabled...)
		return nil
	})
	return rows, err
}

// Abandon releases the active pet for good.
func (e *Engine) Abandon(ctx context.Context, name string) error {
	return e.withSession(ctx, name, func(s *Session) error {
		pet := e.dismissPet(s.player)
		if pet == nil {
			return ErrNoPet
		}

		number := pet.PetNumber()
		e.enqueueSave("pet delete", func(ctx context.Context) error {
			return e.stores.Pets.Delete(ctx, number)
		})

		slog.Info("pet abandoned",
			"player", s.player.Name(),
			"pet", pet.Name(),
			"petNumber", number)
		e.sink.Send(Message{Kind: MsgSystem, To: s.player.Name(), Text: fmt.Sprintf("You abandoned %s.", pet.Name())})
		return nil
	})
}

// Stable moves the active pet to the first free stable slot.
func (e *Engine) Stable(ctx context.Context, name string) (uint8, error) {
	var slot uint8
	err := e.withSession(ctx, name, func(s *Session) error {
		if !s.player.HasPet() {
			return ErrNoPet
		}
		slot = s.freeStableSlot()
		if slot == 0 {
			return ErrStableFull
		}

		pet := e.dismissPet(s.player)
		row := petRow(s.player, pet, slot)
		s.stable(row)
		e.enqueueSave("pet stable", func(ctx context.Context) error {
			return e.stores.Pets.Save(ctx, row)
		})

		slog.Info("pet stabled",
			"player", s.player.Name(),
			"pet", pet.Name(),
			"slot", slot)
		e.sink.Send(Message{Kind: MsgSystem, To: s.player.Name(), Text: fmt.Sprintf("%s is now in stable slot %d.", pet.Name(), slot)})
		return nil
	})
	return slot, err
}

// Unstable brings the pet in slot back as the active pet.
func (e *Engine) Unstable(ctx context.Context, name string, slot uint8) error {
	return e.withSession(ctx, name, func(s *Session) error {
		if s.player.HasPet() {
			return ErrPetActive
		}
		row, ok := s.unstable(slot)
		if !ok {
			return fmt.Errorf("slot %d: %w", slot, ErrEmptySlot)
		}

		e.enqueueSave("pet unstable", func(ctx context.Context) error {
			return e.stores.Pets.SetSlot(ctx, row.PetNumber, db.PetSlotCurrent)
		})
		pet := e.summonPet(s.player, row)

		slog.Info("pet unstabled",
			"player", s.player.Name(),
			"pet", pet.Name(),
			"slot", slot)
		return nil
	})
}
