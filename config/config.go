package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// LocaleConfig is the locale the installed system will generate.
type LocaleConfig struct {
	Lang     string `json:"lang"`
	Encoding string `json:"encoding"`
	Modifier string `json:"modifier,omitempty"`
}

// Config holds the answers collected by the wizard.
type Config struct {
	KeyboardLayout string       `json:"keyboard_layout"`
	Locale         LocaleConfig `json:"locale"`
	Mirror         string       `json:"mirror"`
	Hostname       string       `json:"hostname"`
	Timezone       string       `json:"timezone"`
}

// Default returns the answers a fresh session starts from.
func Default() Config {
	return Config{
		KeyboardLayout: "us",
		Locale: LocaleConfig{
			Lang:     "en_US",
			Encoding: "UTF-8",
		},
		Hostname: "artix",
	}
}

// Path returns ~/.config/artixide/config.json (or XDG_CONFIG_HOME).
// Returns empty string if the home directory cannot be determined.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "artixide", "config.json")
}

// Load loads the config from disk; returns defaults on error.
func Load() Config {
	cfg := Default()
	p := Path()
	if p == "" {
		return cfg
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return cfg
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default()
	}
	return cfg
}

// Save writes the config to disk.
func Save(cfg Config) error {
	path := Path()
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
