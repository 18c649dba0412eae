package gameserver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/udisondev/beastmaster/internal/db"
	"github.com/udisondev/beastmaster/internal/game/gossip"
	"github.com/udisondev/beastmaster/internal/html"
	"github.com/udisondev/beastmaster/internal/model"
)

// defaultFactionID is the faction new characters are created with.
const defaultFactionID uint32 = 1

// Login loads or creates a character and enters it into the world.
// An existing character keeps its stored class and level. created
// reports whether the character is new.
func (e *Engine) Login(ctx context.Context, name string, classID model.ClassID, level int32) (player *model.Player, created bool, err error) {
	if e.sessions.ByName(name) != nil {
		return nil, false, fmt.Errorf("login %s: %w", name, ErrAlreadyOnline)
	}

	row, created, err := e.stores.Characters.LoadOrCreate(ctx, name, classID, level, defaultFactionID)
	if err != nil {
		return nil, false, fmt.Errorf("loading character %s: %w", name, err)
	}
	pdata, err := e.stores.Players.LoadPlayerData(ctx, row.ID)
	if err != nil {
		return nil, false, fmt.Errorf("loading character %s: %w", name, err)
	}
	stabled, err := e.stores.Pets.LoadStabled(ctx, row.ID)
	if err != nil {
		return nil, false, fmt.Errorf("loading stable of %s: %w", name, err)
	}

	var applyErr error
	if err := e.Do(ctx, func() {
		player, applyErr = e.enterWorld(row, pdata, stabled)
	}); err != nil {
		return nil, false, err
	}
	if applyErr != nil {
		return nil, false, applyErr
	}
	return player, created, nil
}

func (e *Engine) enterWorld(row db.CharacterRow, pdata db.PlayerData, stabled []db.PetRow) (*model.Player, error) {
	player, err := model.NewPlayer(e.ids.NextPlayerID(), row.ID, row.Name, row.ClassID, row.Level, row.FactionID)
	if err != nil {
		return nil, fmt.Errorf("creating player %s: %w", row.Name, err)
	}

	for _, id := range pdata.Spells {
		player.AddSpell(id)
	}
	for spec, ids := range pdata.Talents {
		if err := player.SetActiveSpec(spec); err != nil {
			slog.Warn("skipping talents of unknown spec", "player", row.Name, "spec", spec)
			continue
		}
		for _, id := range ids {
			player.LearnTalent(id)
		}
	}
	if err := player.SetActiveSpec(row.ActiveSpec); err != nil {
		return nil, fmt.Errorf("restoring spec of %s: %w", row.Name, err)
	}

	s := &Session{player: player, menu: gossip.NewMenu(), stabled: stabled}
	if !e.sessions.Register(s) {
		return nil, fmt.Errorf("login %s: %w", row.Name, ErrAlreadyOnline)
	}
	if err := e.world.AddObject(player.WorldObject); err != nil {
		e.sessions.Unregister(s)
		return nil, fmt.Errorf("adding %s to world: %w", row.Name, err)
	}

	if pdata.Pet != nil {
		e.summonPet(player, *pdata.Pet)
	}

	slog.Info("player entered world",
		"player", player.Name(),
		"class", player.ClassID(),
		"level", player.Level(),
		"pet", pdata.Pet != nil,
		"stabled", len(stabled))

	e.scripts.DispatchLogin(player)
	return player, nil
}

// Logout saves and removes a player from the world.
func (e *Engine) Logout(ctx context.Context, name string) error {
	return e.withSession(ctx, name, func(s *Session) error {
		e.logout(s)
		return nil
	})
}

func (e *Engine) logout(s *Session) {
	player := s.player
	s.menu.Close()

	if pet := player.ClearPet(); pet != nil {
		e.savePet(player, pet, db.PetSlotCurrent)
		e.world.RemoveObject(pet.ObjectID())
	}
	e.enqueueSave("player", func(ctx context.Context) error {
		return e.stores.Players.SavePlayer(ctx, player)
	})

	e.world.RemoveObject(player.ObjectID())
	e.sessions.Unregister(s)
	slog.Info("player left world", "player", player.Name())
}

// Players returns online players ordered by name.
func (e *Engine) Players() []*model.Player {
	sessions := e.sessions.All()
	out := make([]*model.Player, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, s.player)
	}
	return out
}

// Talk opens the beastmaster dialog for a player.
func (e *Engine) Talk(ctx context.Context, name string) error {
	return e.withSession(ctx, name, func(s *Session) error {
		if e.scripts.HasGossip(e.npc.Entry()) {
			// false from the script means it turned the player away
			e.scripts.DispatchGossipHello(s.player, e.npc)
			return nil
		}

		// no script claims the npc: plain greeting
		text, err := e.dialogs.GossipText(gossip.DefaultTextID, dialogData(s.player, e.npc))
		if err != nil {
			return fmt.Errorf("rendering default gossip: %w", err)
		}
		e.sink.Send(Message{Kind: MsgGossip, To: s.player.Name(), From: e.npc.Name(), Text: text})
		return nil
	})
}

// Select picks item index of the player's open menu.
func (e *Engine) Select(ctx context.Context, name string, index int) error {
	return e.withSession(ctx, name, func(s *Session) error {
		return e.selectItem(s, s.menu.ID(), index)
	})
}

// Bypass handles a raw client bypass ("npc_<id>_Gossip <menu> <index>").
func (e *Engine) Bypass(ctx context.Context, name, bypass string) error {
	cmd, err := html.ParseNpcBypass(bypass)
	if err != nil {
		return err
	}

	return e.withSession(ctx, name, func(s *Session) error {
		if cmd.ObjectID != s.menu.NpcObjectID() {
			return fmt.Errorf("bypass for npc %d, menu belongs to %d: %w", cmd.ObjectID, s.menu.NpcObjectID(), gossip.ErrStaleMenu)
		}
		if cmd.Command == html.CmdClose {
			s.menu.Close()
			e.sink.Send(Message{Kind: MsgClose, To: s.player.Name()})
			return nil
		}

		menuID, index, err := cmd.GossipSelection()
		if err != nil {
			return err
		}
		return e.selectItem(s, menuID, index)
	})
}

func (e *Engine) selectItem(s *Session, menuID uuid.UUID, index int) error {
	item, err := s.menu.Select(menuID, index)
	if err != nil {
		return fmt.Errorf("select %d: %w", index, err)
	}

	npc, ok := e.world.GetNpc(s.menu.NpcObjectID())
	if !ok {
		s.menu.Close()
		return fmt.Errorf("npc %d is gone", s.menu.NpcObjectID())
	}

	if !e.scripts.DispatchGossipSelect(s.player, npc, item.Action) {
		s.menu.Close()
		e.sink.Send(Message{Kind: MsgClose, To: s.player.Name()})
	}
	return nil
}

// SetLevel changes a player's level.
func (e *Engine) SetLevel(ctx context.Context, name string, level int32) error {
	return e.withSession(ctx, name, func(s *Session) error {
		if err := s.player.SetLevel(level); err != nil {
			return err
		}
		charID := s.player.CharacterID()
		e.enqueueSave("level", func(ctx context.Context) error {
			return e.stores.Characters.UpdateLevel(ctx, charID, level)
		})
		return nil
	})
}

// Spells returns a player's spellbook.
func (e *Engine) Spells(ctx context.Context, name string) ([]int32, error) {
	var spells []int32
	err := e.withSession(ctx, name, func(s *Session) error {
		spells = s.player.Spells()
		return nil
	})
	return spells, err
}

// Learn teaches a player a spell.
func (e *Engine) Learn(ctx context.Context, name string, spellID int32) error {
	return e.withSession(ctx, name, func(s *Session) error {
		e.LearnSpell(s.player, spellID)
		return nil
	})
}

// Talent learns a talent in the player's active spec.
func (e *Engine) Talent(ctx context.Context, name string, spellID int32) error {
	return e.withSession(ctx, name, func(s *Session) error {
		s.player.LearnTalent(spellID)
		charID, spec := s.player.CharacterID(), s.player.ActiveSpec()
		e.enqueueSave("talent", func(ctx context.Context) error {
			return e.stores.Spells.AddTalent(ctx, charID, spec, spellID)
		})
		return nil
	})
}

// Reload re-runs the config load hooks of all scripts.
func (e *Engine) Reload(ctx context.Context) error {
	return e.Do(ctx, func() {
		e.scripts.DispatchConfigLoad(true)
	})
}

// withSession runs fn on the loop with the named player's session.
func (e *Engine) withSession(ctx context.Context, name string, fn func(s *Session) error) error {
	var fnErr error
	if err := e.Do(ctx, func() {
		s := e.sessions.ByName(name)
		if s == nil {
			fnErr = fmt.Errorf("%s: %w", name, ErrNotOnline)
			return
		}
		fnErr = fn(s)
	}); err != nil {
		return err
	}
	return fnErr
}
