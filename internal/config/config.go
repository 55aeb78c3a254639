// Package config persists user settings for consulta in a JSON file under
// ~/.consulta. All accessors are safe for concurrent use.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// DefaultServerURL is the local development address of the trámites backend.
const DefaultServerURL = "http://localhost:5000"

// DefaultTheme is the theme applied when none is configured.
const DefaultTheme = "institutional"

// PanelRect is the persisted panel geometry. Zero width/height means the
// panel has never been placed and defaults apply.
type PanelRect struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// IsZero reports whether the rectangle has never been set.
func (r PanelRect) IsZero() bool {
	return r.Width == 0 && r.Height == 0
}

// Config holds the application configuration
type Config struct {
	ServerURL            string    `json:"server_url"`
	Theme                string    `json:"theme,omitempty"`
	NotificationsEnabled bool      `json:"notifications_enabled,omitempty"`
	Panel                PanelRect `json:"panel,omitempty"`
	ClientID             string    `json:"client_id,omitempty"`
	LastSeenVersion      string    `json:"last_seen_version,omitempty"`

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".consulta"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or creates a new one if it doesn't exist.
// A client ID is minted on first load and kept for the install's lifetime.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ServerURL:            DefaultServerURL,
		Theme:                DefaultTheme,
		NotificationsEnabled: true,
		filePath:             path,
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg.ClientID = uuid.New().String()
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	cfg.ensureInitialized()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ensureInitialized fills fields an older or hand-edited config file may
// leave empty. Not thread-safe; only called from Load() before the Config is
// shared across goroutines.
func (c *Config) ensureInitialized() {
	if c.ServerURL == "" {
		c.ServerURL = DefaultServerURL
	}
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
	if c.ClientID == "" {
		c.ClientID = uuid.New().String()
	}
}

// Validate checks that the config is internally consistent.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	u, err := url.Parse(c.ServerURL)
	if err != nil {
		return fmt.Errorf("invalid server URL %q: %w", c.ServerURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("server URL %q must use http or https", c.ServerURL)
	}
	if u.Host == "" {
		return fmt.Errorf("server URL %q has no host", c.ServerURL)
	}

	if c.Panel.Width < 0 || c.Panel.Height < 0 {
		return fmt.Errorf("panel rectangle has negative size: %dx%d", c.Panel.Width, c.Panel.Height)
	}

	return nil
}

// Save writes the config to disk. A Config built by hand rather than by Load
// derives its file path on first save.
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	path := c.filePath
	if path == "" {
		p, err := configPath()
		if err != nil {
			return err
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// GetServerURL returns the backend origin
func (c *Config) GetServerURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ServerURL
}

// SetServerURL sets the backend origin
func (c *Config) SetServerURL(serverURL string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ServerURL = serverURL
}

// GetTheme returns the UI theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the UI theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled sets whether desktop notifications are enabled
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}

// GetPanelRect returns the persisted panel geometry
func (c *Config) GetPanelRect() PanelRect {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Panel
}

// SetPanelRect persists the panel geometry
func (c *Config) SetPanelRect(rect PanelRect) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Panel = rect
}

// GetClientID returns the stable per-install identifier
func (c *Config) GetClientID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ClientID
}

// GetLastSeenVersion returns the version whose release notes were last shown
func (c *Config) GetLastSeenVersion() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.LastSeenVersion
}

// SetLastSeenVersion records that release notes up to this version were shown
func (c *Config) SetLastSeenVersion(version string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.LastSeenVersion = version
}

// SetFilePath overrides where Save writes. Tests point this at a temp file.
func (c *Config) SetFilePath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filePath = path
}
