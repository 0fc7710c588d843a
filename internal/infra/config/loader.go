// Package config loads tool configuration from TOML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/sh0mura/taskdeck/internal/domain"
)

// Loader loads configuration from TOML files. Repository config takes
// precedence over global config, which takes precedence over defaults.
type Loader struct {
	repoRoot      string // Directory holding the repo-level .taskdeck.toml
	globalConfDir string // Global config directory (e.g. ~/.config/taskdeck)
}

// NewLoader creates a new Loader rooted at the given directory.
func NewLoader(repoRoot string) *Loader {
	return &Loader{
		repoRoot:      repoRoot,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a Loader with a custom global config
// directory. This is useful for testing.
func NewLoaderWithGlobalDir(repoRoot, globalConfDir string) *Loader {
	return &Loader{
		repoRoot:      repoRoot,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the XDG config directory for taskdeck.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "taskdeck")
}

// Load returns the merged configuration.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	if l.globalConfDir != "" {
		global, err := l.loadFile(filepath.Join(l.globalConfDir, "config.toml"))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if global != nil {
			mergeConfig(base, global)
		}
	}

	repo, err := l.loadFile(filepath.Join(l.repoRoot, domain.ConfigFileName))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if repo != nil {
		mergeConfig(base, repo)
	}

	return base, nil
}

// loadFile parses a single TOML config file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg domain.Config
	if err := toml.Unmarshal(content, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// mergeConfig overlays the non-empty fields of src onto dst.
func mergeConfig(dst, src *domain.Config) {
	if src.Store.File != "" {
		dst.Store.File = src.Store.File
	}
	if src.UI.Color != "" {
		dst.UI.Color = src.UI.Color
	}
	if src.Log.File != "" {
		dst.Log.File = src.Log.File
	}
	if src.Log.Level != "" {
		dst.Log.Level = src.Log.Level
	}
}
