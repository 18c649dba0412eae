package gameserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/beastmaster/internal/config"
	"github.com/udisondev/beastmaster/internal/game/script"
	"github.com/udisondev/beastmaster/internal/html"
	"github.com/udisondev/beastmaster/internal/model"
	"github.com/udisondev/beastmaster/internal/world"
)

var (
	ErrStopped       = errors.New("engine stopped")
	ErrAlreadyOnline = errors.New("player already online")
	ErrNotOnline     = errors.New("player not online")
	ErrNoPet         = errors.New("player has no pet")
	ErrPetActive     = errors.New("player already has a pet")
	ErrStableFull    = errors.New("stable is full")
	ErrEmptySlot     = errors.New("stable slot is empty")
)

// saveJob is a pending write to the store.
type saveJob struct {
	what string
	fn   func(ctx context.Context) error
}

// Engine is the world server. Script callbacks, console commands and
// ticks all run on the loop goroutine; store writes run on the save
// worker.
type Engine struct {
	cfg     config.Server
	scripts *script.Manager
	dialogs *html.DialogManager
	sink    Sink
	stores  Stores

	world      *world.World
	ids        *world.ObjectIDGenerator
	petNumbers *world.PetNumberGenerator
	sessions   *SessionManager
	npc        *model.Npc

	ops   chan func()
	saves chan saveJob
	done  chan struct{}
}

// New creates the engine and spawns the beastmaster NPC.
// The pet number generator continues from the highest stored number.
func New(ctx context.Context, cfg config.Server, scripts *script.Manager, dialogs *html.DialogManager, sink Sink, stores Stores) (*Engine, error) {
	last, err := stores.Pets.MaxPetNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading last pet number: %w", err)
	}

	e := &Engine{
		cfg:        cfg,
		scripts:    scripts,
		dialogs:    dialogs,
		sink:       sink,
		stores:     stores,
		world:      world.New(),
		ids:        world.NewObjectIDGenerator(),
		petNumbers: world.NewPetNumberGenerator(last),
		sessions:   NewSessionManager(),
		ops:        make(chan func()),
		saves:      make(chan saveJob, cfg.SaveQueueSize),
		done:       make(chan struct{}),
	}

	spawn := cfg.BeastMaster
	e.npc = model.NewNpc(e.ids.NextNpcID(), spawn.Entry, spawn.Name, spawn.SubName, spawn.Faction,
		model.Location{MapID: spawn.MapID, X: spawn.X, Y: spawn.Y, Z: spawn.Z})
	if err := e.world.AddNpc(e.npc); err != nil {
		return nil, fmt.Errorf("spawning %s: %w", spawn.Name, err)
	}

	slog.Info("npc spawned",
		"name", spawn.Name,
		"entry", spawn.Entry,
		"objectID", e.npc.ObjectID(),
		"lastPetNumber", last)
	return e, nil
}

// Npc returns the spawned beastmaster.
func (e *Engine) Npc() *model.Npc {
	return e.npc
}

// Run drives the tick loop and the save worker until ctx is cancelled.
// On shutdown online players are saved and pending writes drained
// within cfg.ShutdownTimeout.
func (e *Engine) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return e.loop(gctx) })
	g.Go(func() error { return e.saveWorker(gctx) })
	return g.Wait()
}

// Do runs fn on the loop goroutine and waits for it.
func (e *Engine) Do(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	op := func() {
		defer close(finished)
		fn()
	}

	select {
	case e.ops <- op:
	case <-ctx.Done():
		return ctx.Err()
	case <-e.done:
		return ErrStopped
	}
	<-finished
	return nil
}

// Flush waits until every write queued before the call reaches the store.
func (e *Engine) Flush(ctx context.Context) error {
	written := make(chan struct{})
	err := e.Do(ctx, func() {
		e.enqueueSave("flush", func(context.Context) error {
			close(written)
			return nil
		})
	})
	if err != nil {
		return err
	}

	select {
	case <-written:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (e *Engine) loop(ctx context.Context) error {
	defer close(e.done)
	defer close(e.saves)

	ticker := time.NewTicker(e.cfg.TickInterval)
	defer ticker.Stop()

	slog.Info("world loop started", "tick", e.cfg.TickInterval)

	last := time.Now()
	for {
		select {
		case op := <-e.ops:
			op()
		case now := <-ticker.C:
			e.tick(now.Sub(last))
			last = now
		case <-ctx.Done():
			e.logoutAll()
			return nil
		}
	}
}

func (e *Engine) tick(diff time.Duration) {
	for _, s := range e.sessions.All() {
		e.scripts.DispatchBeforeUpdate(s.player, diff)
	}
}

// logoutAll saves all online players. Called during graceful shutdown.
func (e *Engine) logoutAll() {
	sessions := e.sessions.All()
	for _, s := range sessions {
		e.logout(s)
	}
	if len(sessions) > 0 {
		slog.Info("saved players on shutdown", "count", len(sessions))
	}
}

// enqueueSave hands a write to the save worker without blocking the loop.
// A full queue drops the write.
func (e *Engine) enqueueSave(what string, fn func(ctx context.Context) error) {
	select {
	case e.saves <- saveJob{what: what, fn: fn}:
	default:
		slog.Error("save queue full, dropping write",
			"what", what,
			"queueSize", cap(e.saves))
	}
}

func (e *Engine) saveWorker(ctx context.Context) error {
	base := context.WithoutCancel(ctx)
	for {
		select {
		case job, ok := <-e.saves:
			if !ok {
				return nil
			}
			e.runSave(base, job)
		case <-ctx.Done():
			return e.drainSaves(base)
		}
	}
}

func (e *Engine) drainSaves(base context.Context) error {
	ctx, cancel := context.WithTimeout(base, e.cfg.ShutdownTimeout)
	defer cancel()

	for {
		select {
		case job, ok := <-e.saves:
			if !ok {
				return nil
			}
			e.runSave(ctx, job)
		case <-ctx.Done():
			return fmt.Errorf("draining save queue (%d pending): %w", len(e.saves), ctx.Err())
		}
	}
}

func (e *Engine) runSave(ctx context.Context, job saveJob) {
	saveCtx, cancel := context.WithTimeout(ctx, e.cfg.SaveTimeout)
	defer cancel()

	if err := job.fn(saveCtx); err != nil {
		slog.Error("save failed",
			"what", job.what,
			"error", err)
	}
}
