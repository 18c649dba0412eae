package testutil

import (
	"sync"
	"testing"
	"time"

	"github.com/udisondev/beastmaster/internal/config"
	"github.com/udisondev/beastmaster/internal/data"
)

var loadDataOnce = sync.OnceValue(data.LoadAll)

// LoadGameData загружает встроенные таблицы (creatures, pet families, vendors) один раз на процесс.
func LoadGameData(tb testing.TB) {
	tb.Helper()
	if err := loadDataOnce(); err != nil {
		tb.Fatalf("loading game data: %v", err)
	}
}

// ServerConfig возвращает конфиг сервера с быстрыми тиками и короткими таймаутами.
func ServerConfig() config.Server {
	cfg := config.DefaultServer()
	cfg.TickInterval = 10 * time.Millisecond
	cfg.SaveQueueSize = 64
	cfg.SaveTimeout = time.Second
	cfg.ShutdownTimeout = 2 * time.Second
	return cfg
}
