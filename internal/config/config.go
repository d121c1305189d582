package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "cadence"

type Config struct {
	PlaylistName string `koanf:"playlist_name"` // name of the startup playlist
	HistoryLimit int    `koanf:"history_limit"` // recent plays shown in views (default: 5)
	ShuffleSeed  uint64 `koanf:"shuffle_seed"`  // fixed shuffle seed; 0 = time-seeded

	Catalog CatalogConfig `koanf:"catalog"`
}

// CatalogConfig selects the catalog backend.
type CatalogConfig struct {
	Backend string `koanf:"backend"` // "memory" (default) or "sqlite"
	Path    string `koanf:"path"`    // sqlite file; empty = in-memory database
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.Catalog.Path != "" {
		cfg.Catalog.Path = expandPath(cfg.Catalog.Path)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. XDG config dir, usually ~/.config/cadence/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetPlaylistName returns the configured playlist name or a default.
func (c *Config) GetPlaylistName() string {
	if c.PlaylistName == "" {
		return "My Playlist"
	}
	return c.PlaylistName
}

// GetHistoryLimit returns the history display limit with defaults applied.
func (c *Config) GetHistoryLimit() int {
	if c.HistoryLimit <= 0 {
		return 5
	}
	return c.HistoryLimit
}

// UseSQLiteCatalog returns true if the sqlite catalog backend is selected.
func (c *Config) UseSQLiteCatalog() bool {
	return strings.EqualFold(c.Catalog.Backend, "sqlite")
}
