package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ControllerConfig selects which MIDI ports belong to the grid controller
type ControllerConfig struct {
	PortMatch   string `json:"portMatch"` // case-insensitive substring of the port name
	AutoConnect bool   `json:"autoConnect"`
}

// PageConfig sets the option count of each column on one page
type PageConfig struct {
	Page       int    `json:"page"`
	MaxOptions [8]int `json:"maxOptions"`
}

// Config is the main configuration structure
type Config struct {
	Controller ControllerConfig `json:"controller"`
	FaderMode  string           `json:"faderMode"` // "mute" or "random"
	Tempo      int              `json:"tempo,omitempty"`
	Pages      []PageConfig     `json:"pages,omitempty"`
	Palette    string           `json:"palette,omitempty"` // GIMP .gpl file for the TUI
	Debug      bool             `json:"debug,omitempty"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Controller: ControllerConfig{
			PortMatch:   "apc mini mk2",
			AutoConnect: true,
		},
		FaderMode: "random",
		Tempo:     120,
		Pages: []PageConfig{
			{Page: 0, MaxOptions: [8]int{6, 0, 0, 0, 0, 0, 0, 6}},
		},
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "go-vjgrid"), nil
}

// ConfigPath returns the full path to config.json
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFile(path)
}

// LoadFile reads a config file. Missing fields keep their defaults; a
// present "pages" list replaces the default layout entirely.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	defaultPages := cfg.Pages
	cfg.Pages = nil
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Pages == nil {
		cfg.Pages = defaultPages
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks values the controller would otherwise reject at runtime
func (c *Config) Validate() error {
	switch c.FaderMode {
	case "mute", "random":
	default:
		return fmt.Errorf("faderMode must be mute or random, got %q", c.FaderMode)
	}
	seen := make(map[int]bool)
	for _, p := range c.Pages {
		if p.Page < 0 || p.Page >= 8 {
			return fmt.Errorf("page %d out of range", p.Page)
		}
		if seen[p.Page] {
			return fmt.Errorf("page %d configured twice", p.Page)
		}
		seen[p.Page] = true
	}
	return nil
}

// SaveFile writes the config to path, creating the directory
func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// FindPage returns the layout for a page, or nil
func (c *Config) FindPage(page int) *PageConfig {
	for i := range c.Pages {
		if c.Pages[i].Page == page {
			return &c.Pages[i]
		}
	}
	return nil
}

// SetPage adds or replaces a page layout
func (c *Config) SetPage(p PageConfig) {
	for i := range c.Pages {
		if c.Pages[i].Page == p.Page {
			c.Pages[i] = p
			return
		}
	}
	c.Pages = append(c.Pages, p)
}
