package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Server holds all configuration for the world server process.
type Server struct {
	LogLevel string `yaml:"log_level" env:"BEASTMASTER_LOG_LEVEL"`

	// World update period
	TickInterval time.Duration `yaml:"tick_interval" env:"BEASTMASTER_TICK_INTERVAL"`

	// Script settings (.conf files) and gossip text templates
	ConfDir string `yaml:"conf_dir" env:"BEASTMASTER_CONF_DIR"`
	HTMLDir string `yaml:"html_dir" env:"BEASTMASTER_HTML_DIR"`

	// Persistence. SaveQueueSize bounds pending pet saves, SaveTimeout is the
	// per-save deadline and ShutdownTimeout bounds the final drain.
	Database        DatabaseConfig `yaml:"database" envPrefix:"BEASTMASTER_DB_"`
	SaveQueueSize   int            `yaml:"save_queue_size" env:"BEASTMASTER_SAVE_QUEUE_SIZE"`
	SaveTimeout     time.Duration  `yaml:"save_timeout" env:"BEASTMASTER_SAVE_TIMEOUT"`
	ShutdownTimeout time.Duration  `yaml:"shutdown_timeout" env:"BEASTMASTER_SHUTDOWN_TIMEOUT"`

	// Spawn of the beastmaster NPC
	BeastMaster SpawnConfig `yaml:"beastmaster"`
}

// SpawnConfig places an NPC in the world.
type SpawnConfig struct {
	Entry   uint32  `yaml:"entry"`
	Name    string  `yaml:"name"`
	SubName string  `yaml:"sub_name"`
	Faction uint32  `yaml:"faction"`
	MapID   uint32  `yaml:"map_id"`
	X       float32 `yaml:"x"`
	Y       float32 `yaml:"y"`
	Z       float32 `yaml:"z"`
}

// DefaultServer returns Server config with sensible defaults.
func DefaultServer() Server {
	return Server{
		LogLevel:        "info",
		TickInterval:    100 * time.Millisecond,
		ConfDir:         "config",
		HTMLDir:         "data/html",
		SaveQueueSize:   256,
		SaveTimeout:     5 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		Database: DatabaseConfig{
			Enabled:  false,
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "beastmaster",
			Password: "beastmaster",
			DBName:   "beastmaster",
			SSLMode:  "disable",
			MaxConns: 8,
			Migrate:  true,
		},
		BeastMaster: SpawnConfig{
			Entry:   601026,
			Name:    "White Fang",
			SubName: "BeastMaster",
			Faction: 35,
			MapID:   0,
			X:       -8829.8,
			Y:       625.7,
			Z:       94.2,
		},
	}
}

// LoadServer loads server config from a YAML file and applies env overrides.
// If the file doesn't exist, defaults are used.
func LoadServer(path string) (Server, error) {
	cfg := DefaultServer()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}

	if cfg.TickInterval <= 0 {
		return cfg, fmt.Errorf("tick_interval must be positive, got %s", cfg.TickInterval)
	}
	if cfg.SaveQueueSize <= 0 {
		return cfg, fmt.Errorf("save_queue_size must be positive, got %d", cfg.SaveQueueSize)
	}

	return cfg, nil
}

// ParseEnv overlays environment variables onto target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ScriptConfPaths returns the distributed defaults file followed by the
// site override file for a script conf name ("npc_beastmaster.conf").
func (s Server) ScriptConfPaths(name string) []string {
	base := filepath.Join(s.ConfDir, name)
	return []string{base + ".dist", base}
}
