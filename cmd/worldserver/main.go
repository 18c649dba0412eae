package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/beastmaster/internal/beastmaster"
	"github.com/udisondev/beastmaster/internal/config"
	"github.com/udisondev/beastmaster/internal/data"
	"github.com/udisondev/beastmaster/internal/db"
	"github.com/udisondev/beastmaster/internal/game/script"
	"github.com/udisondev/beastmaster/internal/gameserver"
	"github.com/udisondev/beastmaster/internal/html"
)

const ConfigPath = "config/worldserver.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("BEASTMASTER_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadServer(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))
	slog.Info("world server starting",
		"log_level", cfg.LogLevel,
		"conf_dir", cfg.ConfDir,
		"database", cfg.Database.Enabled)

	if err := data.LoadAll(); err != nil {
		return fmt.Errorf("loading data: %w", err)
	}

	stores := gameserver.MemoryStores()
	if cfg.Database.Enabled {
		pool, err := db.Open(ctx, cfg.Database.DSN(), cfg.Database.MaxConns)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer pool.Close()
		slog.Info("database connected")

		if cfg.Database.Migrate {
			if err := db.Migrate(ctx, pool); err != nil {
				return fmt.Errorf("running migrations: %w", err)
			}
		}
		stores = gameserver.DBStores(pool)
	} else {
		slog.Warn("database disabled, characters and pets are kept in memory")
	}

	cache, err := html.NewCache(cfg.HTMLDir)
	if err != nil {
		return fmt.Errorf("loading gossip texts: %w", err)
	}
	slog.Info("gossip texts loaded", "count", cache.Len())

	scripts := script.NewManager()
	eng, err := gameserver.New(ctx, cfg, scripts, html.NewDialogManager(cache), gameserver.NewWriterSink(os.Stdout), stores)
	if err != nil {
		return fmt.Errorf("creating engine: %w", err)
	}

	mod := beastmaster.NewModule(eng, config.NewConf(), cfg.ScriptConfPaths(beastmaster.ConfName), cfg.BeastMaster.Entry)
	if err := mod.Register(scripts); err != nil {
		return fmt.Errorf("registering beastmaster: %w", err)
	}
	scripts.DispatchConfigLoad(false)
	slog.Info("scripts loaded", "count", scripts.ScriptCount())

	console := gameserver.NewConsole(eng)

	// EOF on stdin stops the server like a signal does.
	ctx, stop := context.WithCancel(ctx)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return eng.Run(gctx)
	})
	g.Go(func() error {
		defer stop()
		fmt.Fprintln(os.Stdout, "Type help for commands.")
		return console.Run(gctx, os.Stdin, os.Stdout)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	slog.Info("world server stopped")
	return nil
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
